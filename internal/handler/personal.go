package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (h *Handler) CreateActividadDocente(w http.ResponseWriter, r *http.Request) {
	var a domain.ActividadDocente
	if err := h.readJSON(r, &a); err != nil {
		h.badRequest(w, r, err)
		return
	}

	a.ID = 0
	if err := h.repository.CreateActividadDocente(&a); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, a)
}

func (h *Handler) GetActividadDocente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	a, err := h.repository.GetActividadDocente(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Actividad docente no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, a)
}

func (h *Handler) GetAllActividadesDocentes(w http.ResponseWriter, r *http.Request) {
	actividades, err := h.repository.GetAllActividadesDocentes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, actividades)
}

func (h *Handler) UpdateActividadDocente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var a domain.ActividadDocente
	if err := h.readJSON(r, &a); err != nil {
		h.badRequest(w, r, err)
		return
	}

	a.ID = id
	if err := h.repository.UpdateActividadDocente(&a); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Actividad docente no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, a)
}

func (h *Handler) DeleteActividadDocente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteActividadDocente(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateInvestigadorDocente(w http.ResponseWriter, r *http.Request) {
	var i domain.InvestigadorDocente
	if err := h.readJSON(r, &i); err != nil {
		h.badRequest(w, r, err)
		return
	}

	i.ID = 0
	if err := h.repository.CreateInvestigadorDocente(&i); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, i)
}

func (h *Handler) GetInvestigadorDocente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	i, err := h.repository.GetInvestigadorDocente(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Investigador docente no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, i)
}

func (h *Handler) GetAllInvestigadoresDocentes(w http.ResponseWriter, r *http.Request) {
	investigadores, err := h.repository.GetAllInvestigadoresDocentes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, investigadores)
}

func (h *Handler) UpdateInvestigadorDocente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var i domain.InvestigadorDocente
	if err := h.readJSON(r, &i); err != nil {
		h.badRequest(w, r, err)
		return
	}

	i.ID = id
	if err := h.repository.UpdateInvestigadorDocente(&i); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Investigador docente no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, i)
}

func (h *Handler) DeleteInvestigadorDocente(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteInvestigadorDocente(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateBecarioPersonalFormacion(w http.ResponseWriter, r *http.Request) {
	var b domain.BecarioPersonalFormacion
	if err := h.readJSON(r, &b); err != nil {
		h.badRequest(w, r, err)
		return
	}

	b.ID = 0
	if err := h.repository.CreateBecarioPersonalFormacion(&b); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, b)
}

func (h *Handler) GetBecarioPersonalFormacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	b, err := h.repository.GetBecarioPersonalFormacion(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Becario no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, b)
}

func (h *Handler) GetAllBecariosPersonalFormacion(w http.ResponseWriter, r *http.Request) {
	becarios, err := h.repository.GetAllBecariosPersonalFormacion()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, becarios)
}

func (h *Handler) UpdateBecarioPersonalFormacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var b domain.BecarioPersonalFormacion
	if err := h.readJSON(r, &b); err != nil {
		h.badRequest(w, r, err)
		return
	}

	b.ID = id
	if err := h.repository.UpdateBecarioPersonalFormacion(&b); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Becario no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, b)
}

func (h *Handler) DeleteBecarioPersonalFormacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteBecarioPersonalFormacion(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateInvestigador(w http.ResponseWriter, r *http.Request) {
	var i domain.Investigador
	if err := h.readJSON(r, &i); err != nil {
		h.badRequest(w, r, err)
		return
	}

	i.ID = 0
	if err := h.repository.CreateInvestigador(&i); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, i)
}

func (h *Handler) GetInvestigador(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	i, err := h.repository.GetInvestigador(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Investigador no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, i)
}

func (h *Handler) GetAllInvestigadores(w http.ResponseWriter, r *http.Request) {
	investigadores, err := h.repository.GetAllInvestigadores()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, investigadores)
}

func (h *Handler) UpdateInvestigador(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var i domain.Investigador
	if err := h.readJSON(r, &i); err != nil {
		h.badRequest(w, r, err)
		return
	}

	i.ID = id
	if err := h.repository.UpdateInvestigador(&i); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Investigador no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, i)
}

func (h *Handler) DeleteInvestigador(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteInvestigador(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
