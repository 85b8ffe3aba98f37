package domain

import "time"

type Actividad struct {
	ID                     int64     `json:"oidActividad"`
	Descripcion            string    `json:"descripcion"`
	FechaInicio            time.Time `json:"fechaInicio"`
	FechaFin               time.Time `json:"fechaFin"`
	Nro                    int32     `json:"nro"`
	PresupuestoAsignado    float64   `json:"presupuestoAsignado"`
	ResultadosEsperados    string    `json:"resultadosEsperados"`
	LineaDeInvestigacionID int64     `json:"LineaDeInvestigacion"`
}

// ActividadXPersona vincula una actividad con una persona; el par debe ser único.
type ActividadXPersona struct {
	ID          int64 `json:"oidActividadXPersona"`
	ActividadID int64 `json:"Actividad"`
	PersonaID   int64 `json:"persona"`
}

type ActividadTransferencia struct {
	ID                        int64   `json:"oidActividadTransferencia"`
	Descripcion               string  `json:"descripcion"`
	Denominacion              string  `json:"denominacion"`
	Monto                     float64 `json:"monto"`
	NroActividadTransferencia int32   `json:"nroActividadTransferencia"`
	TipoActividad             string  `json:"tipoActividad"`
	GrupoInvestigacionID      int64   `json:"GrupoInvestigacion"`
}

type ParteExterna struct {
	ID                       int64  `json:"oidParteExterna"`
	Descripcion              string `json:"descripcion"`
	Nombre                   string `json:"nombre"`
	TipoParte                string `json:"tipoParte"`
	ActividadTransferenciaID int64  `json:"ActividadTransferencia"`
}
