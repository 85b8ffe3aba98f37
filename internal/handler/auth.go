package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
	"github.com/utn-dasi/sigrupos/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type AuthClaims struct {
	TokenType string `json:"token_type"`
	Correo    string `json:"correo"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	jwt.RegisteredClaims
}

func (h *Handler) generateToken(persona *domain.Persona, tokenType string, expiration int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		TokenType: tokenType,
		Correo:    persona.Correo,
		Nombre:    persona.Nombre,
		Apellido:  persona.Apellido,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiration) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(persona.ID, 10),
		},
	})

	return token.SignedString([]byte(h.config.JWT.Secret))
}

type tokenPairResponse struct {
	Access  string          `json:"access"`
	Refresh string          `json:"refresh"`
	Persona *domain.Persona `json:"persona"`
}

func (h *Handler) writeTokenPair(w http.ResponseWriter, r *http.Request, status int, persona *domain.Persona) {
	access, err := h.generateToken(persona, tokenTypeAccess, h.config.JWT.AccessExpiration)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	refresh, err := h.generateToken(persona, tokenTypeRefresh, h.config.JWT.RefreshExpiration)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, status, tokenPairResponse{
		Access:  access,
		Refresh: refresh,
		Persona: persona,
	})
}

// Login responde 401 con el mismo mensaje tanto si el correo no existe como si
// la contraseña es incorrecta, para no revelar qué correos están registrados.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Correo     string `json:"correo" validate:"required"`
		Contrasena string `json:"contrasena" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	persona, err := h.repository.GetPersonaByCorreo(req.Correo)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.unauthorized(w, r, "Credenciales inválidas")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(persona.ContrasenaHash), []byte(req.Contrasena)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			h.unauthorized(w, r, "Credenciales inválidas")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeTokenPair(w, r, http.StatusOK, persona)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	claims := &AuthClaims{}
	_, err := jwt.ParseWithClaims(req.Refresh, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.config.JWT.Secret), nil
	})
	if err != nil || claims.TokenType != tokenTypeRefresh {
		h.unauthorized(w, r, "Token de refresco inválido")
		return
	}

	sub, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		h.unauthorized(w, r, "Token de refresco inválido")
		return
	}

	persona, err := h.repository.GetPersonaByID(sub)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.unauthorized(w, r, "Token de refresco inválido")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	access, err := h.generateToken(persona, tokenTypeAccess, h.config.JWT.AccessExpiration)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"access": access})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nombre             string `json:"nombre"`
		Apellido           string `json:"apellido"`
		Correo             string `json:"correo"`
		Contrasena         string `json:"contrasena"`
		HorasSemanales     int32  `json:"horasSemanales"`
		TipoDePersonal     *int64 `json:"tipoDePersonal"`
		GrupoInvestigacion *int64 `json:"GrupoInvestigacion"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Nombre == "" || req.Apellido == "" || req.Correo == "" || req.Contrasena == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "Todos los campos son requeridos")
		return
	}

	exists, err := h.repository.CheckCorreoIfExists(req.Correo)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.errorResponse(w, r, http.StatusBadRequest, "El correo ya está registrado")
		return
	}

	if len(req.Contrasena) < 6 {
		h.errorResponse(w, r, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		return
	}
	if req.HorasSemanales < 1 || req.HorasSemanales > 168 {
		h.errorResponse(w, r, http.StatusBadRequest, "Las horas semanales deben ser un número entre 1 y 168")
		return
	}

	if req.TipoDePersonal != nil {
		if _, err := h.repository.GetTipoDePersonal(*req.TipoDePersonal); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusBadRequest, "Tipo de personal inválido")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	}

	contrasenaHash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	persona := &domain.Persona{
		Nombre:               req.Nombre,
		Apellido:             req.Apellido,
		Correo:               req.Correo,
		ContrasenaHash:       string(contrasenaHash),
		HorasSemanales:       req.HorasSemanales,
		TipoDePersonalID:     req.TipoDePersonal,
		GrupoInvestigacionID: req.GrupoInvestigacion,
	}

	if err := h.repository.CreatePersona(persona); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "personas_correo_key":
			h.errorResponse(w, r, http.StatusBadRequest, "El correo ya está registrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeTokenPair(w, r, http.StatusCreated, persona)
}

type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// RecuperarPassword responde siempre el mismo mensaje, exista o no el correo.
func (h *Handler) RecuperarPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Correo string `json:"correo" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	const mensaje = "Si el email existe, recibirás un enlace de recuperación"

	persona, err := h.repository.GetPersonaByCorreo(req.Correo)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.writeJSON(w, r, http.StatusOK, MessageResponse{Mensaje: mensaje})
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	token := utils.GenerateResetToken(persona.ID, time.Now(), h.config.Reset.Secret)
	resetURL := fmt.Sprintf("%s?token=%s", h.config.Reset.URL, token)

	mailMessage := domain.MailMessage{
		Type: "recuperar_password",
		To:   persona.Correo,
		Data: domain.RecuperarPasswordMailData{
			Nombre:   persona.NombreCompleto(),
			ResetURL: resetURL,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		// La respuesta no distingue fallas de envío: se registra y se sigue.
		slog.Error("no se pudo encolar el correo de recuperación", "error", err)
	}

	h.writeJSON(w, r, http.StatusOK, MessageResponse{Mensaje: mensaje})
}

func (h *Handler) RestablecerPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token      string `json:"token" validate:"required"`
		Contrasena string `json:"contrasena" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	oidPersona, err := utils.ParseResetToken(req.Token, int64(h.config.Reset.Expiration), time.Now(), h.config.Reset.Secret)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrResetTokenExpirado):
			h.errorResponse(w, r, http.StatusBadRequest, "El enlace ha expirado. Solicita uno nuevo.")
		default:
			h.errorResponse(w, r, http.StatusBadRequest, "Token inválido")
		}
		return
	}

	if len(req.Contrasena) < 6 {
		h.errorResponse(w, r, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		return
	}

	persona, err := h.repository.GetPersonaByID(oidPersona)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusBadRequest, "Token inválido")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(persona.ContrasenaHash), []byte(req.Contrasena)) == nil {
		h.errorResponse(w, r, http.StatusBadRequest, "La nueva contraseña no puede ser igual a la contraseña actual")
		return
	}

	contrasenaHash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	persona.ContrasenaHash = string(contrasenaHash)
	if err := h.repository.UpdatePersona(persona); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, MessageResponse{Mensaje: "Contraseña restablecida correctamente"})
}
