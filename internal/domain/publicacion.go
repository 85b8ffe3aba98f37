package domain

import "time"

type Autor struct {
	ID       int64  `json:"oidAutor"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

type TipoTrabajoPublicado struct {
	ID     int64  `json:"oidTipoTrabajoPublicado"`
	Nombre string `json:"nombre"`
}

type TrabajoPublicado struct {
	ID                     int64  `json:"oidTrabajoPublicado"`
	Titulo                 string `json:"titulo"`
	ISSN                   string `json:"ISSN"`
	Editorial              string `json:"editorial"`
	NombreRevista          string `json:"nombreRevista"`
	Pais                   string `json:"pais"`
	Estado                 string `json:"estado"`
	TipoTrabajoPublicadoID int64  `json:"tipoTrabajoPublicado"`
	AutorID                int64  `json:"Autor"`
	GrupoInvestigacionID   int64  `json:"GrupoInvestigacion"`
}

type TrabajoPresentado struct {
	ID                   int64     `json:"oidTrabajoPresentado"`
	Ciudad               string    `json:"ciudad"`
	FechaInicio          time.Time `json:"fechaInicio"`
	NombreReunion        string    `json:"nombreReunion"`
	TituloTrabajo        string    `json:"tituloTrabajo"`
	GrupoInvestigacionID int64     `json:"GrupoInvestigacion"`
}
