package domain

import "time"

// MemoriaAnual es el resumen anual de un grupo de investigación. El director y el
// vicedirector son texto libre: pueden contener el oid de una persona o un nombre
// escrito a mano, por eso no son claves foráneas.
type MemoriaAnual struct {
	ID                int64      `json:"oidMemoriaAnual"`
	Ano               int32      `json:"ano"`
	Titulo            string     `json:"titulo"`
	FechaCreacion     time.Time  `json:"fechaCreacion"`
	FechaModificacion time.Time  `json:"fechaModificacion"`
	FechaInicio       *time.Time `json:"fechaInicio"`
	FechaFin          *time.Time `json:"fechaFin"`

	Director           string  `json:"director"`
	DirectorNombre     *string `json:"directorNombre"`
	Vicedirector       string  `json:"vicedirector"`
	VicedirectorNombre *string `json:"vicedirectorNombre"`

	ObjetivosGenerales    string `json:"objetivosGenerales"`
	ObjetivosEspecificos  string `json:"objetivosEspecificos"`
	ActividadesRealizadas string `json:"actividadesRealizadas"`
	ResultadosObtenidos   string `json:"resultadosObtenidos"`

	GrupoInvestigacionID *int64 `json:"GrupoInvestigacion"`

	// Colecciones asociadas, solo se usan al crear la memoria. Nunca se devuelven
	// al serializar la memoria en sí, cada una tiene su propio recurso.
	Integrantes   []IntegranteMemoria  `json:"-"`
	Actividades   []ActividadMemoria   `json:"-"`
	Publicaciones []PublicacionMemoria `json:"-"`
	Patentes      []PatenteMemoria     `json:"-"`
	Proyectos     []ProyectoMemoria    `json:"-"`
}

type IntegranteMemoria struct {
	ID              int64  `json:"oidIntegranteMemoria"`
	MemoriaAnualID  int64  `json:"MemoriaAnual"`
	PersonaID       int64  `json:"Persona"`
	Rol             string `json:"rol"`
	Dedicacion      string `json:"dedicacion"`
	HorasSemanales  int32  `json:"horasSemanales"`
	PersonaNombre   string `json:"personaNombre,omitempty"`
	PersonaApellido string `json:"personaApellido,omitempty"`
}

type ActividadMemoria struct {
	ID             int64  `json:"oidActividadMemoria"`
	MemoriaAnualID int64  `json:"MemoriaAnual"`
	ActividadID    int64  `json:"Actividad"`
	Observaciones  string `json:"observaciones"`
}

type PublicacionMemoria struct {
	ID                 int64 `json:"oidPublicacionMemoria"`
	MemoriaAnualID     int64 `json:"MemoriaAnual"`
	TrabajoPublicadoID int64 `json:"TrabajoPublicado"`
}

type PatenteMemoria struct {
	ID             int64 `json:"oidPatenteMemoria"`
	MemoriaAnualID int64 `json:"MemoriaAnual"`
	PatenteID      int64 `json:"Patente"`
}

type ProyectoMemoria struct {
	ID                      int64 `json:"oidProyectoMemoria"`
	MemoriaAnualID          int64 `json:"MemoriaAnual"`
	ProyectoInvestigacionID int64 `json:"ProyectoInvestigacion"`
}
