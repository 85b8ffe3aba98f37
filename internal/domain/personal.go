package domain

import "time"

type ActividadDocente struct {
	ID                       int64     `json:"oidActividadDocente"`
	DenominacionCursoCatedra string    `json:"denominacionCursoCatedra"`
	FechaPeriodoDictado      time.Time `json:"fechaPeriodoDictado"`
	RolDesempeniado          string    `json:"rolDesempeniado"`
}

type InvestigadorDocente struct {
	ID                 int64  `json:"oidInvestigadorDocente"`
	GradoAcademico     string `json:"gradoAcademico"`
	PersonaID          int64  `json:"persona"`
	ActividadDocenteID int64  `json:"ActividadDocente"`
}

type BecarioPersonalFormacion struct {
	ID                   int64  `json:"oidBecarioPersonalFormacion"`
	TipoFormacion        string `json:"tipoFormacion"`
	FuenteFinanciamiento string `json:"fuenteFinanciamiento"`
	PersonaID            int64  `json:"persona"`
}

type Investigador struct {
	ID                   int64  `json:"oidInvestigador"`
	TipoInvestigador     string `json:"tipoInvestigador"`
	CategoriaUTN         string `json:"categoriaUtn"`
	Dedicacion           string `json:"dedicacion"`
	ProgramaDeIncentivos string `json:"programaDeIncentivos"`
	PersonaID            int64  `json:"persona"`
	GrupoInvestigacionID int64  `json:"GrupoInvestigacion"`
}
