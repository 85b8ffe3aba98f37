package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (h *Handler) CreatePatente(w http.ResponseWriter, r *http.Request) {
	var p domain.Patente
	if err := h.readJSON(r, &p); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p.ID = 0
	if err := h.repository.CreatePatente(&p); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, p)
}

func (h *Handler) GetPatente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	p, err := h.repository.GetPatente(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Patente no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, p)
}

func (h *Handler) GetPatentes(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	patentes, count, err := h.repository.GetPatentes(limit, offset)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, PaginatedResponse{Count: count, Results: patentes})
}

func (h *Handler) UpdatePatente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var p domain.Patente
	if err := h.readJSON(r, &p); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p.ID = id
	if err := h.repository.UpdatePatente(&p); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Patente no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, p)
}

func (h *Handler) DeletePatente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeletePatente(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateTipoDeRegistro(w http.ResponseWriter, r *http.Request) {
	var t domain.TipoDeRegistro
	if err := h.readJSON(r, &t); err != nil {
		h.badRequest(w, r, err)
		return
	}

	t.ID = 0
	if err := h.repository.CreateTipoDeRegistro(&t); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, t)
}

func (h *Handler) GetTipoDeRegistro(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	t, err := h.repository.GetTipoDeRegistro(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Tipo de registro no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) GetAllTiposDeRegistro(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.repository.GetAllTiposDeRegistro()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, tipos)
}

func (h *Handler) UpdateTipoDeRegistro(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var t domain.TipoDeRegistro
	if err := h.readJSON(r, &t); err != nil {
		h.badRequest(w, r, err)
		return
	}

	t.ID = id
	if err := h.repository.UpdateTipoDeRegistro(&t); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Tipo de registro no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) DeleteTipoDeRegistro(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteTipoDeRegistro(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateRegistro(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registro
	if err := h.readJSON(r, &reg); err != nil {
		h.badRequest(w, r, err)
		return
	}

	reg.ID = 0
	if err := h.repository.CreateRegistro(&reg); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, reg)
}

func (h *Handler) GetRegistro(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	reg, err := h.repository.GetRegistro(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Registro no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, reg)
}

func (h *Handler) GetRegistros(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	registros, count, err := h.repository.GetRegistros(limit, offset)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, PaginatedResponse{Count: count, Results: registros})
}

func (h *Handler) UpdateRegistro(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var reg domain.Registro
	if err := h.readJSON(r, &reg); err != nil {
		h.badRequest(w, r, err)
		return
	}

	reg.ID = id
	if err := h.repository.UpdateRegistro(&reg); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Registro no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, reg)
}

func (h *Handler) DeleteRegistro(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteRegistro(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
