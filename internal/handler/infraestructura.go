package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (h *Handler) CreateEquipamientoInfraestructura(w http.ResponseWriter, r *http.Request) {
	var e domain.EquipamientoInfraestructura
	if err := h.readJSON(r, &e); err != nil {
		h.badRequest(w, r, err)
		return
	}

	e.ID = 0
	if err := h.repository.CreateEquipamientoInfraestructura(&e); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, e)
}

func (h *Handler) GetEquipamientoInfraestructura(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	e, err := h.repository.GetEquipamientoInfraestructura(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Equipamiento no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, e)
}

func (h *Handler) GetAllEquipamientoInfraestructura(w http.ResponseWriter, r *http.Request) {
	equipamientos, err := h.repository.GetAllEquipamientosInfraestructura()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, equipamientos)
}

func (h *Handler) UpdateEquipamientoInfraestructura(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var e domain.EquipamientoInfraestructura
	if err := h.readJSON(r, &e); err != nil {
		h.badRequest(w, r, err)
		return
	}

	e.ID = id
	if err := h.repository.UpdateEquipamientoInfraestructura(&e); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Equipamiento no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, e)
}

func (h *Handler) DeleteEquipamientoInfraestructura(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteEquipamientoInfraestructura(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateDocumentacionBiblioteca(w http.ResponseWriter, r *http.Request) {
	var d domain.DocumentacionBiblioteca
	if err := h.readJSON(r, &d); err != nil {
		h.badRequest(w, r, err)
		return
	}

	d.ID = 0
	if err := h.repository.CreateDocumentacionBiblioteca(&d); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, d)
}

func (h *Handler) GetDocumentacionBiblioteca(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	d, err := h.repository.GetDocumentacionBiblioteca(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Documentación no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, d)
}

func (h *Handler) GetAllDocumentacionBiblioteca(w http.ResponseWriter, r *http.Request) {
	documentacion, err := h.repository.GetAllDocumentacionBiblioteca()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, documentacion)
}

func (h *Handler) UpdateDocumentacionBiblioteca(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var d domain.DocumentacionBiblioteca
	if err := h.readJSON(r, &d); err != nil {
		h.badRequest(w, r, err)
		return
	}

	d.ID = id
	if err := h.repository.UpdateDocumentacionBiblioteca(&d); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Documentación no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, d)
}

func (h *Handler) DeleteDocumentacionBiblioteca(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteDocumentacionBiblioteca(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
