package utils

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

const testSecret = "secreto-de-prueba"

func TestParseResetTokenRoundTrip(t *testing.T) {
	issuedAt := time.Now()
	token := GenerateResetToken(42, issuedAt, testSecret)

	oid, err := ParseResetToken(token, 86400, issuedAt.Add(time.Hour), testSecret)
	if err != nil {
		t.Fatalf("no se esperaba error: %v", err)
	}
	if oid != 42 {
		t.Fatalf("oid esperado 42, se obtuvo %d", oid)
	}
}

func TestParseResetTokenVentanaDeExpiracion(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	token := GenerateResetToken(7, issuedAt, testSecret)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"justo antes del límite", issuedAt.Add(86399 * time.Second), nil},
		{"exactamente en el límite", issuedAt.Add(86400 * time.Second), nil},
		{"un segundo después del límite", issuedAt.Add(86401 * time.Second), ErrResetTokenExpirado},
		{"emitido en el futuro", issuedAt.Add(-time.Second), ErrResetTokenInvalido},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResetToken(token, 86400, tt.now, testSecret)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error esperado %v, se obtuvo %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseResetTokenFirmaInvalida(t *testing.T) {
	issuedAt := time.Now()
	token := GenerateResetToken(7, issuedAt, testSecret)

	// Misma carga, otro secreto
	if _, err := ParseResetToken(token, 86400, issuedAt, "otro-secreto"); !errors.Is(err, ErrResetTokenInvalido) {
		t.Fatalf("error esperado %v, se obtuvo %v", ErrResetTokenInvalido, err)
	}

	// Carga adulterada: cambiar el oid sin volver a firmar
	raw, _ := base64.RawURLEncoding.DecodeString(token)
	adulterado := base64.RawURLEncoding.EncodeToString(append([]byte("9"), raw...))
	if _, err := ParseResetToken(adulterado, 86400, issuedAt, testSecret); !errors.Is(err, ErrResetTokenInvalido) {
		t.Fatalf("error esperado %v, se obtuvo %v", ErrResetTokenInvalido, err)
	}
}

func TestParseResetTokenMalformado(t *testing.T) {
	issuedAt := time.Now()

	tokens := []string{
		"",
		"no-es-base64!!!",
		base64.RawURLEncoding.EncodeToString([]byte("sin-separadores")),
		base64.RawURLEncoding.EncodeToString([]byte("1:2")),
		base64.RawURLEncoding.EncodeToString([]byte("abc:123:deadbeef")),
		base64.RawURLEncoding.EncodeToString([]byte("1:abc:deadbeef")),
	}

	for _, token := range tokens {
		if _, err := ParseResetToken(token, 86400, issuedAt, testSecret); !errors.Is(err, ErrResetTokenInvalido) {
			t.Fatalf("token %q: error esperado %v, se obtuvo %v", token, ErrResetTokenInvalido, err)
		}
	}
}
