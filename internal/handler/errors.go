package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Mensajes para las restricciones de unicidad con significado de negocio.
var constraintMessages = map[string]string{
	"personas_correo_key":                         "El correo ya está registrado",
	"grupos_investigacion_nombre_key":             "Ya existe un grupo con ese nombre",
	"grupos_investigacion_correo_key":             "Ya existe un grupo con ese correo",
	"grupos_investigacion_sigla_key":              "Ya existe un grupo con esa sigla",
	"proyectos_investigacion_codigo_proyecto_key": "Ya existe un proyecto con ese código",
	"trabajos_publicados_titulo_key":              "Ya existe un trabajo con ese título",
	"trabajos_publicados_issn_key":                "Ya existe un trabajo con ese ISSN",
	"patentes_numero_key":                         "Ya existe una patente con ese número",
	"registros_patente_id_key":                    "La patente ya tiene un registro asociado",
	"uq_actividades_x_persona":                    "La persona ya está asignada a esa actividad",
	"uq_integrantes_memoria":                      "La persona ya es integrante de esa memoria",
	"uq_actividades_memoria":                      "La actividad ya está asociada a esa memoria",
	"uq_publicaciones_memoria":                    "La publicación ya está asociada a esa memoria",
	"uq_patentes_memoria":                         "La patente ya está asociada a esa memoria",
	"uq_proyectos_memoria":                        "El proyecto ya está asociado a esa memoria",
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// dbWriteError traduce violaciones de restricciones a respuestas 400; todo lo
// demás es un error interno.
func (h *Handler) dbWriteError(w http.ResponseWriter, r *http.Request, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if msg, ok := constraintMessages[pgErr.ConstraintName]; ok {
				h.errorResponse(w, r, http.StatusBadRequest, msg)
				return
			}
			h.errorResponse(w, r, http.StatusBadRequest, "Valor duplicado")
			return
		case pgForeignKeyViolation:
			h.errorResponse(w, r, http.StatusBadRequest, "Referencia inválida")
			return
		}
	}

	h.internalServerError(w, r, err)
}
