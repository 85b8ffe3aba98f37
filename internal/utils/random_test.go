package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateCorreoFromNombre(t *testing.T) {
	correo := GenerateCorreoFromNombre("María", "Gómez", "frd.utn.edu.ar")

	if !strings.HasSuffix(correo, "@frd.utn.edu.ar") {
		t.Fatalf("el correo %q no tiene el dominio esperado", correo)
	}
	if !strings.HasPrefix(correo, "maria.gomez") {
		t.Fatalf("el correo %q no empieza con el nombre normalizado", correo)
	}
	if strings.ContainsAny(correo, "áéíóúñ") {
		t.Fatalf("el correo %q contiene acentos", correo)
	}
}

func TestGenerateRandomPersona(t *testing.T) {
	persona, err := GenerateRandomPersona("clave-de-prueba", "frd.utn.edu.ar")
	if err != nil {
		t.Fatalf("no se esperaba error: %v", err)
	}

	if persona.Nombre == "" || persona.Apellido == "" {
		t.Fatal("la persona generada no tiene nombre completo")
	}
	if persona.HorasSemanales < 1 || persona.HorasSemanales > 168 {
		t.Fatalf("horas semanales fuera de rango: %d", persona.HorasSemanales)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(persona.ContrasenaHash), []byte("clave-de-prueba")); err != nil {
		t.Fatalf("el hash no corresponde a la contraseña: %v", err)
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(16)
	if len(password) != 16 {
		t.Fatalf("longitud esperada 16, se obtuvo %d", len(password))
	}
}
