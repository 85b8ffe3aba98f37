package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

// En el alta de una memoria los integrantes y las actividades llegan como
// objetos con la clave del destino, y las otras tres colecciones como listas
// planas de ids.
type integranteMemoriaRequest struct {
	PersonaID      int64  `json:"personaId"`
	Rol            string `json:"rol"`
	Dedicacion     string `json:"dedicacion"`
	HorasSemanales int32  `json:"horasSemanales"`
}

type actividadMemoriaRequest struct {
	ActividadID   int64  `json:"actividadId"`
	Observaciones string `json:"observaciones"`
}

// CreateMemoriaAnual crea la memoria junto con todas sus colecciones asociadas.
// La escritura es atómica: si cualquier fila falla, no queda nada persistido.
// La respuesta lleva solo los campos escalares; las colecciones se consultan en
// sus propios recursos.
func (h *Handler) CreateMemoriaAnual(w http.ResponseWriter, r *http.Request) {
	var req struct {
		domain.MemoriaAnual
		Integrantes   []integranteMemoriaRequest `json:"integrantes"`
		Actividades   []actividadMemoriaRequest  `json:"actividades"`
		Publicaciones []int64                    `json:"publicaciones"`
		Patentes      []int64                    `json:"patentes"`
		Proyectos     []int64                    `json:"proyectos"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Ano == 0 {
		h.errorResponse(w, r, http.StatusBadRequest, "El año es requerido")
		return
	}

	m := req.MemoriaAnual
	m.ID = 0
	for _, im := range req.Integrantes {
		m.Integrantes = append(m.Integrantes, domain.IntegranteMemoria{
			PersonaID:      im.PersonaID,
			Rol:            im.Rol,
			Dedicacion:     im.Dedicacion,
			HorasSemanales: im.HorasSemanales,
		})
	}
	for _, am := range req.Actividades {
		m.Actividades = append(m.Actividades, domain.ActividadMemoria{
			ActividadID:   am.ActividadID,
			Observaciones: am.Observaciones,
		})
	}
	for _, id := range req.Publicaciones {
		m.Publicaciones = append(m.Publicaciones, domain.PublicacionMemoria{TrabajoPublicadoID: id})
	}
	for _, id := range req.Patentes {
		m.Patentes = append(m.Patentes, domain.PatenteMemoria{PatenteID: id})
	}
	for _, id := range req.Proyectos {
		m.Proyectos = append(m.Proyectos, domain.ProyectoMemoria{ProyectoInvestigacionID: id})
	}

	if err := h.repository.CreateMemoriaAnual(&m); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, m)
}

func (h *Handler) GetMemoriaAnual(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	m, err := h.repository.GetMemoriaAnual(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Memoria anual no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, m)
}

func (h *Handler) GetAllMemoriasAnuales(w http.ResponseWriter, r *http.Request) {
	memorias, err := h.repository.GetAllMemoriasAnuales()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, memorias)
}

// UpdateMemoriaAnual actualiza solo los campos escalares de la memoria; las
// colecciones asociadas se administran en sus propios recursos.
func (h *Handler) UpdateMemoriaAnual(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var m domain.MemoriaAnual
	if err := h.readJSON(r, &m); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if m.Ano == 0 {
		h.errorResponse(w, r, http.StatusBadRequest, "El año es requerido")
		return
	}

	m.ID = id
	if err := h.repository.UpdateMemoriaAnual(&m); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Memoria anual no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, m)
}

func (h *Handler) DeleteMemoriaAnual(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteMemoriaAnual(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// memoriaFilter lee el parámetro opcional ?memoria= de las listas de recursos
// asociados. Devuelve 0 cuando no se filtra.
func (h *Handler) memoriaFilter(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("memoria")
	if raw == "" {
		return 0, true
	}

	memoriaID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || memoriaID <= 0 {
		h.errorResponse(w, r, http.StatusBadRequest, "Parámetro memoria inválido")
		return 0, false
	}

	return memoriaID, true
}

func (h *Handler) checkMemoriaExists(w http.ResponseWriter, r *http.Request, memoriaID int64) bool {
	exists, err := h.repository.ExistsMemoriaAnual(memoriaID)
	if err != nil {
		h.internalServerError(w, r, err)
		return false
	}
	if !exists {
		h.errorResponse(w, r, http.StatusBadRequest, "La memoria anual no existe")
		return false
	}
	return true
}

func (h *Handler) CreateIntegranteMemoria(w http.ResponseWriter, r *http.Request) {
	var im domain.IntegranteMemoria
	if err := h.readJSON(r, &im); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !h.checkMemoriaExists(w, r, im.MemoriaAnualID) {
		return
	}

	im.ID = 0
	if err := h.repository.CreateIntegranteMemoria(&im); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, im)
}

func (h *Handler) GetIntegranteMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	im, err := h.repository.GetIntegranteMemoria(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Integrante no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, im)
}

func (h *Handler) GetIntegrantesMemoria(w http.ResponseWriter, r *http.Request) {
	memoriaID, ok := h.memoriaFilter(w, r)
	if !ok {
		return
	}

	integrantes, err := h.repository.GetIntegrantesMemoria(memoriaID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, integrantes)
}

func (h *Handler) UpdateIntegranteMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var im domain.IntegranteMemoria
	if err := h.readJSON(r, &im); err != nil {
		h.badRequest(w, r, err)
		return
	}

	im.ID = id
	if err := h.repository.UpdateIntegranteMemoria(&im); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Integrante no encontrado")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, im)
}

func (h *Handler) DeleteIntegranteMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteIntegranteMemoria(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateActividadMemoria(w http.ResponseWriter, r *http.Request) {
	var am domain.ActividadMemoria
	if err := h.readJSON(r, &am); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !h.checkMemoriaExists(w, r, am.MemoriaAnualID) {
		return
	}

	am.ID = 0
	if err := h.repository.CreateActividadMemoria(&am); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, am)
}

func (h *Handler) GetActividadMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	am, err := h.repository.GetActividadMemoria(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Actividad de memoria no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, am)
}

func (h *Handler) GetActividadesMemoria(w http.ResponseWriter, r *http.Request) {
	memoriaID, ok := h.memoriaFilter(w, r)
	if !ok {
		return
	}

	actividades, err := h.repository.GetActividadesMemoria(memoriaID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, actividades)
}

func (h *Handler) UpdateActividadMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	var am domain.ActividadMemoria
	if err := h.readJSON(r, &am); err != nil {
		h.badRequest(w, r, err)
		return
	}

	am.ID = id
	if err := h.repository.UpdateActividadMemoria(&am); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Actividad de memoria no encontrada")
		default:
			h.dbWriteError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, am)
}

func (h *Handler) DeleteActividadMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteActividadMemoria(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreatePublicacionMemoria(w http.ResponseWriter, r *http.Request) {
	var pm domain.PublicacionMemoria
	if err := h.readJSON(r, &pm); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !h.checkMemoriaExists(w, r, pm.MemoriaAnualID) {
		return
	}

	pm.ID = 0
	if err := h.repository.CreatePublicacionMemoria(&pm); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, pm)
}

func (h *Handler) GetPublicacionMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	pm, err := h.repository.GetPublicacionMemoria(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Publicación de memoria no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, pm)
}

func (h *Handler) GetPublicacionesMemoria(w http.ResponseWriter, r *http.Request) {
	memoriaID, ok := h.memoriaFilter(w, r)
	if !ok {
		return
	}

	publicaciones, err := h.repository.GetPublicacionesMemoria(memoriaID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, publicaciones)
}

func (h *Handler) DeletePublicacionMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeletePublicacionMemoria(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreatePatenteMemoria(w http.ResponseWriter, r *http.Request) {
	var pm domain.PatenteMemoria
	if err := h.readJSON(r, &pm); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !h.checkMemoriaExists(w, r, pm.MemoriaAnualID) {
		return
	}

	pm.ID = 0
	if err := h.repository.CreatePatenteMemoria(&pm); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, pm)
}

func (h *Handler) GetPatenteMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	pm, err := h.repository.GetPatenteMemoria(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Patente de memoria no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, pm)
}

func (h *Handler) GetPatentesMemoria(w http.ResponseWriter, r *http.Request) {
	memoriaID, ok := h.memoriaFilter(w, r)
	if !ok {
		return
	}

	patentes, err := h.repository.GetPatentesMemoria(memoriaID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, patentes)
}

func (h *Handler) DeletePatenteMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeletePatenteMemoria(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateProyectoMemoria(w http.ResponseWriter, r *http.Request) {
	var pm domain.ProyectoMemoria
	if err := h.readJSON(r, &pm); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !h.checkMemoriaExists(w, r, pm.MemoriaAnualID) {
		return
	}

	pm.ID = 0
	if err := h.repository.CreateProyectoMemoria(&pm); err != nil {
		h.dbWriteError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, pm)
}

func (h *Handler) GetProyectoMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	pm, err := h.repository.GetProyectoMemoria(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Proyecto de memoria no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, pm)
}

func (h *Handler) GetProyectosMemoria(w http.ResponseWriter, r *http.Request) {
	memoriaID, ok := h.memoriaFilter(w, r)
	if !ok {
		return
	}

	proyectos, err := h.repository.GetProyectosMemoria(memoriaID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, proyectos)
}

func (h *Handler) DeleteProyectoMemoria(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.repository.DeleteProyectoMemoria(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
