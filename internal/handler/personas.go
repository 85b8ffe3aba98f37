package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetPerfil(w http.ResponseWriter, r *http.Request) {
	persona := r.Context().Value(PerfilCtxKey).(*domain.Persona)
	h.writeJSON(w, r, http.StatusOK, persona)
}

func (h *Handler) UpdatePerfil(w http.ResponseWriter, r *http.Request) {
	persona := r.Context().Value(PerfilCtxKey).(*domain.Persona)

	var req struct {
		Nombre             *string `json:"nombre"`
		Apellido           *string `json:"apellido"`
		HorasSemanales     *int32  `json:"horasSemanales"`
		TipoDePersonal     *int64  `json:"tipoDePersonal"`
		GrupoInvestigacion *int64  `json:"GrupoInvestigacion"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Nombre != nil {
		persona.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		persona.Apellido = *req.Apellido
	}
	if req.HorasSemanales != nil {
		if *req.HorasSemanales < 1 || *req.HorasSemanales > 168 {
			h.errorResponse(w, r, http.StatusBadRequest, "Las horas semanales deben ser un número entre 1 y 168")
			return
		}
		persona.HorasSemanales = *req.HorasSemanales
	}
	if req.TipoDePersonal != nil {
		if _, err := h.repository.GetTipoDePersonal(*req.TipoDePersonal); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusBadRequest, "Tipo de personal inválido")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		persona.TipoDePersonalID = req.TipoDePersonal
	}
	if req.GrupoInvestigacion != nil {
		persona.GrupoInvestigacionID = req.GrupoInvestigacion
	}

	if err := h.repository.UpdatePersona(persona); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, persona)
}

func (h *Handler) DeletePerfil(w http.ResponseWriter, r *http.Request) {
	persona := r.Context().Value(PerfilCtxKey).(*domain.Persona)

	if err := h.repository.DeletePersona(persona.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CambiarContrasena(w http.ResponseWriter, r *http.Request) {
	persona := r.Context().Value(PerfilCtxKey).(*domain.Persona)

	var req struct {
		ContrasenaActual string `json:"contrasenaActual" validate:"required"`
		ContrasenaNueva  string `json:"contrasenaNueva" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(persona.ContrasenaHash), []byte(req.ContrasenaActual)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			h.errorResponse(w, r, http.StatusBadRequest, "La contraseña actual es incorrecta")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if len(req.ContrasenaNueva) < 6 {
		h.errorResponse(w, r, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		return
	}

	contrasenaHash, err := bcrypt.GenerateFromPassword([]byte(req.ContrasenaNueva), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	persona.ContrasenaHash = string(contrasenaHash)
	if err := h.repository.UpdatePersona(persona); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, MessageResponse{Mensaje: "Contraseña actualizada correctamente"})
}

func (h *Handler) GetAllPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := h.repository.GetAllPersonas()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, personas)
}

func (h *Handler) GetPersona(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "ID inválido")
		return
	}

	persona, err := h.repository.GetPersonaByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Persona no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, persona)
}

func (h *Handler) GetAllTiposPersonal(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.repository.GetAllTiposDePersonal()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, tipos)
}

const opcionesPerfilCacheKey = "opciones_perfil"

type opcionPerfil struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

type opcionesPerfilResponse struct {
	TiposPersonal       []*domain.TipoDePersonal     `json:"tiposPersonal"`
	GruposInvestigacion []*domain.GrupoInvestigacion `json:"gruposInvestigacion"`
	GradosAcademicos    []opcionPerfil               `json:"gradosAcademicos"`
	CategoriasUTN       []opcionPerfil               `json:"categoriasUTN"`
	Dedicaciones        []opcionPerfil               `json:"dedicaciones"`
	ProgramasIncentivos []opcionPerfil               `json:"programasIncentivos"`
	CursosCatedras      []opcionPerfil               `json:"cursosCatedras"`
	Roles               []opcionPerfil               `json:"roles"`
}

// Listas fijas del formulario de perfil, no tienen tabla propia.
var (
	gradosAcademicos = []opcionPerfil{
		{1, "Licenciatura"},
		{2, "Maestría"},
		{3, "Doctorado"},
		{4, "Post-Doctorado"},
	}
	categoriasUTN = []opcionPerfil{
		{1, "Categoría I"},
		{2, "Categoría II"},
		{3, "Categoría III"},
		{4, "Categoría IV"},
		{5, "Categoría V"},
	}
	dedicaciones = []opcionPerfil{
		{1, "Simple"},
		{2, "Semi-Exclusiva"},
		{3, "Exclusiva"},
	}
	programasIncentivos = []opcionPerfil{
		{1, "Programa Nacional de Incentivos"},
		{2, "Programa Provincial"},
		{3, "Otro"},
	}
	cursosCatedras = []opcionPerfil{
		{1, "Análisis Matemático"},
		{2, "Álgebra"},
		{3, "Física"},
		{4, "Química"},
		{5, "Programación"},
	}
	rolesDocentes = []opcionPerfil{
		{1, "Profesor Titular"},
		{2, "Profesor Adjunto"},
		{3, "Jefe de Trabajos Prácticos"},
		{4, "Auxiliar Docente"},
	}
)

// GetOpcionesPerfil devuelve los catálogos que el formulario de perfil
// necesita. El resultado se cachea en redis porque cambian muy poco.
func (h *Handler) GetOpcionesPerfil(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	cached, err := h.redisClient.Get(ctx, opcionesPerfilCacheKey).Bytes()
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cached)
		return
	}
	if !errors.Is(err, redis.Nil) {
		// Redis caído no debe tumbar el endpoint: se sigue contra la base.
		h.logInternalServerError(r, err)
	}

	tipos, err := h.repository.GetAllTiposDePersonal()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	grupos, err := h.repository.GetAllGruposInvestigacion()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	opciones := opcionesPerfilResponse{
		TiposPersonal:       tipos,
		GruposInvestigacion: grupos,
		GradosAcademicos:    gradosAcademicos,
		CategoriasUTN:       categoriasUTN,
		Dedicaciones:        dedicaciones,
		ProgramasIncentivos: programasIncentivos,
		CursosCatedras:      cursosCatedras,
		Roles:               rolesDocentes,
	}

	payload, err := json.Marshal(opciones)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.redisClient.Set(ctx, opcionesPerfilCacheKey, payload, time.Duration(h.config.Redis.CacheExpiration)*time.Second).Err(); err != nil {
		h.logInternalServerError(r, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
