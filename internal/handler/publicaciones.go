package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (h *Handler) CreateAutor(w http.ResponseWriter, r *http.Request) {
	var a domain.Autor
	if err := h.readJSON(r, &a); err != nil {
		h.badRequest(w, r, err)
		return
	}

	a.ID = 0
	if err := h.repository.CreateAutor(&a); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, a)
}

func (h *Handler) GetAutor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	a, err := h.repository.GetAutor(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Autor no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, a)
}

func (h *Handler) GetAllAutores(w http.ResponseWriter, r *http.Request) {
	autores, err := h.repository.GetAllAutores()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, autores)
}

func (h *Handler) UpdateAutor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var a domain.Autor
	if err := h.readJSON(r, &a); err != nil {
		h.badRequest(w, r, err)
		return
	}

	a.ID = id
	if err := h.repository.UpdateAutor(&a); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Autor no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, a)
}

func (h *Handler) DeleteAutor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteAutor(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateTipoTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	var tp domain.TipoTrabajoPublicado
	if err := h.readJSON(r, &tp); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tp.ID = 0
	if err := h.repository.CreateTipoTrabajoPublicado(&tp); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, tp)
}

func (h *Handler) GetTipoTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	tp, err := h.repository.GetTipoTrabajoPublicado(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Tipo de trabajo publicado no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, tp)
}

func (h *Handler) GetAllTiposTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.repository.GetAllTiposTrabajoPublicado()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, tipos)
}

func (h *Handler) UpdateTipoTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var tp domain.TipoTrabajoPublicado
	if err := h.readJSON(r, &tp); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tp.ID = id
	if err := h.repository.UpdateTipoTrabajoPublicado(&tp); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Tipo de trabajo publicado no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, tp)
}

func (h *Handler) DeleteTipoTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteTipoTrabajoPublicado(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	var t domain.TrabajoPublicado
	if err := h.readJSON(r, &t); err != nil {
		h.badRequest(w, r, err)
		return
	}

	t.ID = 0
	if err := h.repository.CreateTrabajoPublicado(&t); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, t)
}

func (h *Handler) GetTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	t, err := h.repository.GetTrabajoPublicado(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Trabajo publicado no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) GetTrabajosPublicados(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	trabajos, count, err := h.repository.GetTrabajosPublicados(limit, offset)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, PaginatedResponse{Count: count, Results: trabajos})
}

func (h *Handler) UpdateTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var t domain.TrabajoPublicado
	if err := h.readJSON(r, &t); err != nil {
		h.badRequest(w, r, err)
		return
	}

	t.ID = id
	if err := h.repository.UpdateTrabajoPublicado(&t); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Trabajo publicado no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) DeleteTrabajoPublicado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteTrabajoPublicado(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateTrabajoPresentado(w http.ResponseWriter, r *http.Request) {
	var t domain.TrabajoPresentado
	if err := h.readJSON(r, &t); err != nil {
		h.badRequest(w, r, err)
		return
	}

	t.ID = 0
	if err := h.repository.CreateTrabajoPresentado(&t); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, t)
}

func (h *Handler) GetTrabajoPresentado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	t, err := h.repository.GetTrabajoPresentado(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Trabajo presentado no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) GetTrabajosPresentados(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	trabajos, count, err := h.repository.GetTrabajosPresentados(limit, offset)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, PaginatedResponse{Count: count, Results: trabajos})
}

func (h *Handler) UpdateTrabajoPresentado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var t domain.TrabajoPresentado
	if err := h.readJSON(r, &t); err != nil {
		h.badRequest(w, r, err)
		return
	}

	t.ID = id
	if err := h.repository.UpdateTrabajoPresentado(&t); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Trabajo presentado no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) DeleteTrabajoPresentado(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteTrabajoPresentado(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
