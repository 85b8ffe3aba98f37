package domain

import "time"

type EquipamientoInfraestructura struct {
	ID                   int64     `json:"oidEquipamientoInfraestructura"`
	Denominacion         string    `json:"denominacion"`
	Descripcion          string    `json:"descripcion"`
	FechaIncorporacion   time.Time `json:"fechaIncorporacion"`
	MontoInvertido       float64   `json:"montoInvertido"`
	GrupoInvestigacionID int64     `json:"GrupoInvestigacion"`
}

type DocumentacionBiblioteca struct {
	ID                   int64  `json:"oidDocumentacionBiblioteca"`
	Anio                 int32  `json:"anio"`
	Editorial            string `json:"editorial"`
	Titulo               string `json:"titulo"`
	Autor                string `json:"autor"`
	GrupoInvestigacionID int64  `json:"GrupoInvestigacion"`
}
