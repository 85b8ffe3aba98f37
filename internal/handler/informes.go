package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (h *Handler) CreateInformeRendicionCuentas(w http.ResponseWriter, r *http.Request) {
	var i domain.InformeRendicionCuentas
	if err := h.readJSON(r, &i); err != nil {
		h.badRequest(w, r, err)
		return
	}

	i.ID = 0
	if err := h.repository.CreateInformeRendicionCuentas(&i); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, i)
}

func (h *Handler) GetInformeRendicionCuentas(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	i, err := h.repository.GetInformeRendicionCuentas(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Informe de rendición de cuentas no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, i)
}

func (h *Handler) GetAllInformesRendicionCuentas(w http.ResponseWriter, r *http.Request) {
	informes, err := h.repository.GetAllInformesRendicionCuentas()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, informes)
}

func (h *Handler) UpdateInformeRendicionCuentas(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var i domain.InformeRendicionCuentas
	if err := h.readJSON(r, &i); err != nil {
		h.badRequest(w, r, err)
		return
	}

	i.ID = id
	if err := h.repository.UpdateInformeRendicionCuentas(&i); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Informe de rendición de cuentas no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, i)
}

func (h *Handler) DeleteInformeRendicionCuentas(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteInformeRendicionCuentas(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateErogacion(w http.ResponseWriter, r *http.Request) {
	var e domain.Erogacion
	if err := h.readJSON(r, &e); err != nil {
		h.badRequest(w, r, err)
		return
	}

	e.ID = 0
	if err := h.repository.CreateErogacion(&e); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, e)
}

func (h *Handler) GetErogacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	e, err := h.repository.GetErogacion(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Erogación no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, e)
}

func (h *Handler) GetAllErogaciones(w http.ResponseWriter, r *http.Request) {
	erogaciones, err := h.repository.GetAllErogaciones()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, erogaciones)
}

func (h *Handler) UpdateErogacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var e domain.Erogacion
	if err := h.readJSON(r, &e); err != nil {
		h.badRequest(w, r, err)
		return
	}

	e.ID = id
	if err := h.repository.UpdateErogacion(&e); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Erogación no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, e)
}

func (h *Handler) DeleteErogacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteErogacion(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
