package seed

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/utn-dasi/sigrupos/backend/internal/domain"
	"github.com/utn-dasi/sigrupos/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var tiposDePersonal = []string{
	"Docente",
	"No docente",
	"Alumno",
	"Graduado",
	"Becario",
}

var tiposTrabajoPublicado = []string{
	"Artículo en revista",
	"Libro",
	"Capítulo de libro",
	"Trabajo en congreso",
}

var tiposDeRegistro = []string{
	"Patente de invención",
	"Modelo de utilidad",
	"Derecho de autor",
	"Marca",
}

// SeedCatalogos inserta los catálogos básicos. Es idempotente a nivel práctico
// solo si la base está vacía: los nombres repetidos quedan duplicados porque
// los catálogos no tienen restricción de unicidad.
func SeedCatalogos(r *repository.Repository) {
	cnt := 0
	for _, nombre := range tiposDePersonal {
		tp := &domain.TipoDePersonal{Nombre: nombre}
		if err := r.CreateTipoDePersonal(tp); err != nil {
			slog.Error("no se pudo insertar el tipo de personal", "nombre", nombre, "error", err)
			continue
		}
		cnt++
	}

	for _, nombre := range tiposTrabajoPublicado {
		tp := &domain.TipoTrabajoPublicado{Nombre: nombre}
		if err := r.CreateTipoTrabajoPublicado(tp); err != nil {
			slog.Error("no se pudo insertar el tipo de trabajo publicado", "nombre", nombre, "error", err)
			continue
		}
		cnt++
	}

	for _, nombre := range tiposDeRegistro {
		t := &domain.TipoDeRegistro{Nombre: nombre}
		if err := r.CreateTipoDeRegistro(t); err != nil {
			slog.Error("no se pudo insertar el tipo de registro", "nombre", nombre, "error", err)
			continue
		}
		cnt++
	}

	slog.Info("catálogos insertados", "count", cnt)
}

// SeedPersonasCSV importa personas desde un CSV con columnas nombre, apellido,
// correo y horasSemanales. Las personas cuyo correo ya existe se omiten.
func SeedPersonasCSV(r *repository.Repository, path string, password string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("no se pudo abrir el archivo", "path", path, "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	headers, err := reader.Read()
	if err != nil {
		slog.Error("no se pudo leer el encabezado", "error", err)
		return
	}

	col := make(map[string]int)
	for i, header := range headers {
		col[header] = i
	}
	for _, required := range []string{"nombre", "apellido", "correo"} {
		if _, ok := col[required]; !ok {
			slog.Error("falta una columna requerida", "columna", required)
			return
		}
	}

	contrasenaHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("no se pudo generar el hash de la contraseña", "error", err)
		return
	}

	cnt := 0
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			slog.Error("no se pudo leer el archivo", "error", err)
			return
		}

		correo := row[col["correo"]]
		if correo == "" {
			slog.Error("fila sin correo, se omite", "row", row)
			continue
		}

		if _, err := r.GetPersonaByCorreo(correo); err == nil {
			// Ya existe, no se vuelve a insertar
			continue
		} else if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("no se pudo consultar la persona", "correo", correo, "error", err)
			continue
		}

		horasSemanales := int32(10)
		if i, ok := col["horasSemanales"]; ok && row[i] != "" {
			n, err := strconv.ParseInt(row[i], 10, 32)
			if err != nil || n < 1 || n > 168 {
				slog.Error("horas semanales inválidas, se omite la fila", "row", row)
				continue
			}
			horasSemanales = int32(n)
		}

		persona := &domain.Persona{
			Nombre:         row[col["nombre"]],
			Apellido:       row[col["apellido"]],
			Correo:         correo,
			ContrasenaHash: string(contrasenaHash),
			HorasSemanales: horasSemanales,
		}

		if err := r.CreatePersona(persona); err != nil {
			slog.Error("no se pudo insertar la persona", "correo", correo, "error", err)
			continue
		}
		cnt++
	}

	slog.Info("personas importadas", "count", cnt)
}
