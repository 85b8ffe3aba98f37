package domain

type ProgramaActividades struct {
	ID                    int64  `json:"oidProgramaActividades"`
	Anio                  int32  `json:"anio"`
	ObjetivosEstrategicos string `json:"objetivosEstrategicos"`
}

type GrupoInvestigacion struct {
	ID                       int64  `json:"oidGrupoInvestigacion"`
	Nombre                   string `json:"nombre"`
	FacultadRegionalAsignada string `json:"facultadRegionalAsignada"`
	Correo                   string `json:"correo"`
	Organigrama              string `json:"organigrama"`
	Sigla                    string `json:"sigla"`
	FuenteFinanciamiento     string `json:"fuenteFinanciamiento"`
	ProgramaActividadesID    int64  `json:"ProgramaActividades"`
}

type LineaDeInvestigacion struct {
	ID                    int64  `json:"oidLineaDeInvestigacion"`
	Nombre                string `json:"nombre"`
	Descripcion           string `json:"descripcion"`
	ProgramaActividadesID int64  `json:"ProgramaActividades"`
}
