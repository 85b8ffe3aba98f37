package domain

type InformeRendicionCuentas struct {
	ID                   int64  `json:"oidInformeRendicionCuentas"`
	PeriodoReportado     string `json:"periodoReportado"`
	GrupoInvestigacionID int64  `json:"GrupoInvestigacion"`
}

type Erogacion struct {
	ID                        int64   `json:"oidErogacion"`
	Egresos                   float64 `json:"egresos"`
	Ingresos                  float64 `json:"ingresos"`
	Numero                    int32   `json:"numero"`
	TipoErogacion             string  `json:"tipoErogacion"`
	InformeRendicionCuentasID int64   `json:"InformeRendicionCuentas"`
}
