package utils

import (
	"math/rand"
	"strings"

	"github.com/utn-dasi/sigrupos/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonNombres = []string{
	"Juan", "María", "Carlos", "Ana", "José", "Laura", "Miguel", "Sofía", "Pedro", "Lucía",
	"Diego", "Valentina", "Martín", "Camila", "Javier", "Paula", "Andrés", "Julieta", "Pablo", "Florencia",
}

var commonApellidos = []string{
	"González", "Rodríguez", "Gómez", "Fernández", "López", "Díaz", "Martínez", "Pérez", "García", "Sánchez",
	"Romero", "Sosa", "Álvarez", "Torres", "Ruiz", "Ramírez", "Flores", "Acosta", "Benítez", "Medina",
}

func GenerateRandomNombre() string {
	return commonNombres[rand.Intn(len(commonNombres))]
}

func GenerateRandomApellido() string {
	return commonApellidos[rand.Intn(len(commonApellidos))]
}

var digits = "0123456789"

var acentos = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
)

// GenerateCorreoFromNombre construye un correo institucional a partir del
// nombre y apellido, sin acentos y con un sufijo numérico aleatorio.
func GenerateCorreoFromNombre(nombre string, apellido string, emailDomainName string) string {
	local := acentos.Replace(strings.ToLower(nombre)) + "." + acentos.Replace(strings.ToLower(apellido))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomainName
}

func GenerateRandomPersona(password string, emailDomainName string) (*domain.Persona, error) {
	nombre := GenerateRandomNombre()
	apellido := GenerateRandomApellido()
	contrasenaHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	persona := &domain.Persona{
		Nombre:         nombre,
		Apellido:       apellido,
		Correo:         GenerateCorreoFromNombre(nombre, apellido, emailDomainName),
		ContrasenaHash: string(contrasenaHash),
		HorasSemanales: int32(rand.Intn(40) + 1),
	}

	return persona, nil
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}
