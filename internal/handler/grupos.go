package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (h *Handler) CreateProgramaActividades(w http.ResponseWriter, r *http.Request) {
	var pa domain.ProgramaActividades
	if err := h.readJSON(r, &pa); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pa.ID = 0
	if err := h.repository.CreateProgramaActividades(&pa); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, pa)
}

func (h *Handler) GetProgramaActividades(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	pa, err := h.repository.GetProgramaActividades(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Programa de actividades no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, pa)
}

func (h *Handler) GetAllProgramasActividades(w http.ResponseWriter, r *http.Request) {
	programas, err := h.repository.GetAllProgramasActividades()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, programas)
}

func (h *Handler) UpdateProgramaActividades(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var pa domain.ProgramaActividades
	if err := h.readJSON(r, &pa); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pa.ID = id
	if err := h.repository.UpdateProgramaActividades(&pa); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Programa de actividades no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, pa)
}

func (h *Handler) DeleteProgramaActividades(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteProgramaActividades(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateGrupoInvestigacion(w http.ResponseWriter, r *http.Request) {
	var g domain.GrupoInvestigacion
	if err := h.readJSON(r, &g); err != nil {
		h.badRequest(w, r, err)
		return
	}

	g.ID = 0
	if err := h.repository.CreateGrupoInvestigacion(&g); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, g)
}

func (h *Handler) GetGrupoInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	g, err := h.repository.GetGrupoInvestigacion(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Grupo de investigación no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, g)
}

func (h *Handler) GetAllGruposInvestigacion(w http.ResponseWriter, r *http.Request) {
	grupos, err := h.repository.GetAllGruposInvestigacion()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, grupos)
}

func (h *Handler) UpdateGrupoInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var g domain.GrupoInvestigacion
	if err := h.readJSON(r, &g); err != nil {
		h.badRequest(w, r, err)
		return
	}

	g.ID = id
	if err := h.repository.UpdateGrupoInvestigacion(&g); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Grupo de investigación no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, g)
}

func (h *Handler) DeleteGrupoInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteGrupoInvestigacion(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateLineaDeInvestigacion(w http.ResponseWriter, r *http.Request) {
	var l domain.LineaDeInvestigacion
	if err := h.readJSON(r, &l); err != nil {
		h.badRequest(w, r, err)
		return
	}

	l.ID = 0
	if err := h.repository.CreateLineaDeInvestigacion(&l); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, l)
}

func (h *Handler) GetLineaDeInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	l, err := h.repository.GetLineaDeInvestigacion(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Línea de investigación no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, l)
}

func (h *Handler) GetAllLineasDeInvestigacion(w http.ResponseWriter, r *http.Request) {
	lineas, err := h.repository.GetAllLineasDeInvestigacion()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, lineas)
}

func (h *Handler) UpdateLineaDeInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var l domain.LineaDeInvestigacion
	if err := h.readJSON(r, &l); err != nil {
		h.badRequest(w, r, err)
		return
	}

	l.ID = id
	if err := h.repository.UpdateLineaDeInvestigacion(&l); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Línea de investigación no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, l)
}

func (h *Handler) DeleteLineaDeInvestigacion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteLineaDeInvestigacion(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
