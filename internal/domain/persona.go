package domain

type TipoDePersonal struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type Persona struct {
	ID                   int64  `json:"oidpersona"`
	Nombre               string `json:"nombre"`
	Apellido             string `json:"apellido"`
	Correo               string `json:"correo"`
	ContrasenaHash       string `json:"-"`
	HorasSemanales       int32  `json:"horasSemanales"`
	TipoDePersonalID     *int64 `json:"tipoDePersonal"`
	TipoDePersonalNombre *string `json:"tipoDePersonalNombre"`
	GrupoInvestigacionID *int64 `json:"GrupoInvestigacion"`
}

func (p *Persona) NombreCompleto() string {
	return p.Nombre + " " + p.Apellido
}
