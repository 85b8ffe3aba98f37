package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrResetTokenInvalido = errors.New("token de restablecimiento inválido")
	ErrResetTokenExpirado = errors.New("token de restablecimiento expirado")
)

// GenerateResetToken genera un token de restablecimiento de contraseña para la
// persona indicada. El token lleva el oid, el instante de emisión y una firma
// HMAC-SHA256 sobre ambos, por lo que no requiere estado en el servidor.
func GenerateResetToken(oidPersona int64, issuedAt time.Time, secret string) string {
	payload := fmt.Sprintf("%d:%d", oidPersona, issuedAt.Unix())
	token := fmt.Sprintf("%s:%s", payload, signResetPayload(payload, secret))
	return base64.RawURLEncoding.EncodeToString([]byte(token))
}

// ParseResetToken valida la firma y la antigüedad del token y devuelve el oid
// de la persona. Un token con más de maxAge segundos devuelve
// ErrResetTokenExpirado; cualquier otro defecto devuelve ErrResetTokenInvalido.
func ParseResetToken(token string, maxAge int64, now time.Time, secret string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrResetTokenInvalido
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return 0, ErrResetTokenInvalido
	}

	oidPersona, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrResetTokenInvalido
	}

	issuedAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrResetTokenInvalido
	}

	payload := fmt.Sprintf("%s:%s", parts[0], parts[1])
	if !hmac.Equal([]byte(signResetPayload(payload, secret)), []byte(parts[2])) {
		return 0, ErrResetTokenInvalido
	}

	age := now.Unix() - issuedAt
	if age < 0 {
		return 0, ErrResetTokenInvalido
	}
	if age > maxAge {
		return 0, ErrResetTokenExpirado
	}

	return oidPersona, nil
}

func signResetPayload(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
