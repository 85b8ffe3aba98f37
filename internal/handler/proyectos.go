package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (h *Handler) CreateProyectoInvestigacion(w http.ResponseWriter, r *http.Request) {
	var p domain.ProyectoInvestigacion
	if err := h.readJSON(r, &p); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p.ID = 0
	if err := h.repository.CreateProyectoInvestigacion(&p); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, p)
}

func (h *Handler) GetProyectoInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	p, err := h.repository.GetProyectoInvestigacion(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Proyecto de investigación no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, p)
}

func (h *Handler) GetAllProyectosInvestigacion(w http.ResponseWriter, r *http.Request) {
	proyectos, err := h.repository.GetAllProyectosInvestigacion()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, proyectos)
}

func (h *Handler) UpdateProyectoInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var p domain.ProyectoInvestigacion
	if err := h.readJSON(r, &p); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p.ID = id
	if err := h.repository.UpdateProyectoInvestigacion(&p); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Proyecto de investigación no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, p)
}

func (h *Handler) DeleteProyectoInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteProyectoInvestigacion(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
