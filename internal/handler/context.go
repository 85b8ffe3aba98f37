package handler

type ContextKey string

var (
	SubCtxKey    ContextKey = "sub"
	PerfilCtxKey ContextKey = "perfil"
)
