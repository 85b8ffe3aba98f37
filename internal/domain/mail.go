package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type RecuperarPasswordMailData struct {
	Nombre   string `json:"nombre"`
	ResetURL string `json:"resetUrl"`
}
