package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (h *Handler) CreateActividad(w http.ResponseWriter, r *http.Request) {
	var a domain.Actividad
	if err := h.readJSON(r, &a); err != nil {
		h.badRequest(w, r, err)
		return
	}

	a.ID = 0
	if err := h.repository.CreateActividad(&a); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, a)
}

func (h *Handler) GetActividad(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	a, err := h.repository.GetActividad(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Actividad no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, a)
}

func (h *Handler) GetAllActividades(w http.ResponseWriter, r *http.Request) {
	actividades, err := h.repository.GetAllActividades()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, actividades)
}

func (h *Handler) UpdateActividad(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var a domain.Actividad
	if err := h.readJSON(r, &a); err != nil {
		h.badRequest(w, r, err)
		return
	}

	a.ID = id
	if err := h.repository.UpdateActividad(&a); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Actividad no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, a)
}

func (h *Handler) DeleteActividad(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteActividad(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateActividadXPersona(w http.ResponseWriter, r *http.Request) {
	var ap domain.ActividadXPersona
	if err := h.readJSON(r, &ap); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ap.ID = 0
	if err := h.repository.CreateActividadXPersona(&ap); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, ap)
}

func (h *Handler) GetActividadXPersona(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	ap, err := h.repository.GetActividadXPersona(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Asignación no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, ap)
}

func (h *Handler) GetAllActividadesXPersona(w http.ResponseWriter, r *http.Request) {
	asignaciones, err := h.repository.GetAllActividadesXPersona()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, asignaciones)
}

func (h *Handler) DeleteActividadXPersona(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteActividadXPersona(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateActividadTransferencia(w http.ResponseWriter, r *http.Request) {
	var at domain.ActividadTransferencia
	if err := h.readJSON(r, &at); err != nil {
		h.badRequest(w, r, err)
		return
	}

	at.ID = 0
	if err := h.repository.CreateActividadTransferencia(&at); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, at)
}

func (h *Handler) GetActividadTransferencia(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	at, err := h.repository.GetActividadTransferencia(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Actividad de transferencia no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, at)
}

func (h *Handler) GetAllActividadesTransferencia(w http.ResponseWriter, r *http.Request) {
	actividades, err := h.repository.GetAllActividadesTransferencia()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, actividades)
}

func (h *Handler) UpdateActividadTransferencia(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var at domain.ActividadTransferencia
	if err := h.readJSON(r, &at); err != nil {
		h.badRequest(w, r, err)
		return
	}

	at.ID = id
	if err := h.repository.UpdateActividadTransferencia(&at); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Actividad de transferencia no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, at)
}

func (h *Handler) DeleteActividadTransferencia(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteActividadTransferencia(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateParteExterna(w http.ResponseWriter, r *http.Request) {
	var pe domain.ParteExterna
	if err := h.readJSON(r, &pe); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pe.ID = 0
	if err := h.repository.CreateParteExterna(&pe); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, pe)
}

func (h *Handler) GetParteExterna(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	pe, err := h.repository.GetParteExterna(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Parte externa no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, pe)
}

func (h *Handler) GetAllPartesExternas(w http.ResponseWriter, r *http.Request) {
	partes, err := h.repository.GetAllPartesExternas()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, partes)
}

func (h *Handler) UpdateParteExterna(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var pe domain.ParteExterna
	if err := h.readJSON(r, &pe); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pe.ID = id
	if err := h.repository.UpdateParteExterna(&pe); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Parte externa no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, pe)
}

func (h *Handler) DeleteParteExterna(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteParteExterna(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
