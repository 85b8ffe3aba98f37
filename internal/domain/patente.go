package domain

import "time"

type Patente struct {
	ID                   int64      `json:"oidPatente"`
	Descripcion          string     `json:"descripcion"`
	Tipo                 string     `json:"tipo"`
	Numero               string     `json:"numero"`
	Fecha                *time.Time `json:"fecha"`
	Inventor             string     `json:"inventor"`
	GrupoInvestigacionID int64      `json:"GrupoInvestigacion"`
}

type TipoDeRegistro struct {
	ID     int64  `json:"oidTipoDeRegistro"`
	Nombre string `json:"nombre"`
}

type Registro struct {
	ID               int64  `json:"oidRegistro"`
	Descripcion      string `json:"descripcion"`
	TipoDeRegistroID int64  `json:"TipoDeRegistro"`
	PatenteID        int64  `json:"Patente"`
}
