package domain

import "time"

type ProyectoInvestigacion struct {
	ID                   int64     `json:"oidProyectoInvestigacion"`
	CodigoProyecto       string    `json:"codigoProyecto"`
	Descripcion          string    `json:"descripcion"`
	ObjectType           string    `json:"objectType"`
	FechaInicio          time.Time `json:"fechaInicio"`
	FechaFinalizacion    time.Time `json:"fechaFinalizacion"`
	Nombre               string    `json:"nombre"`
	TipoProyecto         string    `json:"tipoProyecto"`
	LogrosObtenidos      string    `json:"logrosObtenidos"`
	FuenteFinanciamiento string    `json:"fuenteFinanciamiento"`
	GrupoInvestigacionID int64     `json:"GrupoInvestigacion"`
}
