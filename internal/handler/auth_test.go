package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/utn-dasi/sigrupos/backend/internal/config"
	"github.com/utn-dasi/sigrupos/backend/internal/repository"
	"github.com/utn-dasi/sigrupos/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("no se pudo crear el mock de la base de datos: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 10
	cfg.JWT.Secret = "secreto-de-prueba"
	cfg.JWT.AccessExpiration = 3600
	cfg.JWT.RefreshExpiration = 604800
	cfg.Reset.Secret = "secreto-reset"
	cfg.Reset.Expiration = 86400
	cfg.Reset.URL = "http://localhost:5173/reset-password"

	h, err := NewHandler(cfg, repository.NewRepository(cfg, db), nil, nil)
	if err != nil {
		t.Fatalf("no se pudo crear el handler: %v", err)
	}
	h.RegisterRoutes()

	return h, mock
}

func doRequest(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("no se pudo codificar el cuerpo: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	return rec
}

func personaRowColumns() []string {
	return []string{"oid_persona", "nombre", "apellido", "contrasena_hash", "horas_semanales", "tipo_de_personal_id", "tp_nombre", "grupo_investigacion_id"}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("no se pudo generar el hash: %v", err)
	}
	return string(hash)
}

// Las dos causas de fallo del login devuelven exactamente la misma respuesta,
// para que no se pueda inferir qué correos existen.
func TestLoginNoRevelaSiElCorreoExiste(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM personas").
		WithArgs("nadie@frd.utn.edu.ar").
		WillReturnError(sql.ErrNoRows)

	recInexistente := doRequest(t, h, http.MethodPost, "/login", map[string]string{
		"correo":     "nadie@frd.utn.edu.ar",
		"contrasena": "cualquiera",
	})

	mock.ExpectQuery("FROM personas").
		WithArgs("juan@frd.utn.edu.ar").
		WillReturnRows(sqlmock.NewRows(personaRowColumns()).
			AddRow(int64(1), "Juan", "González", mustHash(t, "correcta"), int32(40), nil, nil, nil))

	recContrasenaMal := doRequest(t, h, http.MethodPost, "/login", map[string]string{
		"correo":     "juan@frd.utn.edu.ar",
		"contrasena": "incorrecta",
	})

	if recInexistente.Code != http.StatusUnauthorized || recContrasenaMal.Code != http.StatusUnauthorized {
		t.Fatalf("ambos intentos deben devolver 401, se obtuvo %d y %d", recInexistente.Code, recContrasenaMal.Code)
	}
	if recInexistente.Body.String() != recContrasenaMal.Body.String() {
		t.Fatalf("las respuestas deben ser idénticas: %q vs %q", recInexistente.Body.String(), recContrasenaMal.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(recInexistente.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Error != "Credenciales inválidas" {
		t.Fatalf("mensaje inesperado: %q", resp.Error)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestLoginDevuelveParDeTokens(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM personas").
		WithArgs("juan@frd.utn.edu.ar").
		WillReturnRows(sqlmock.NewRows(personaRowColumns()).
			AddRow(int64(7), "Juan", "González", mustHash(t, "correcta"), int32(40), nil, nil, nil))

	rec := doRequest(t, h, http.MethodPost, "/login", map[string]string{
		"correo":     "juan@frd.utn.edu.ar",
		"contrasena": "correcta",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status esperado 200, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
		Persona struct {
			Correo string `json:"correo"`
		} `json:"persona"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Access == "" || resp.Refresh == "" {
		t.Fatal("faltan tokens en la respuesta")
	}
	if resp.Persona.Correo != "juan@frd.utn.edu.ar" {
		t.Fatalf("correo inesperado en la respuesta: %q", resp.Persona.Correo)
	}
}

func TestRegisterValidaLaEntrada(t *testing.T) {
	cuerpoBase := func() map[string]any {
		return map[string]any{
			"nombre":         "Ana",
			"apellido":       "López",
			"correo":         "ana@frd.utn.edu.ar",
			"contrasena":     "segura1",
			"horasSemanales": 20,
		}
	}

	tests := []struct {
		name       string
		modifica   func(m map[string]any)
		consultaDB bool
		mensaje    string
	}{
		{
			name:     "correo vacío",
			modifica: func(m map[string]any) { m["correo"] = "" },
			mensaje:  "Todos los campos son requeridos",
		},
		{
			name:       "contraseña corta",
			modifica:   func(m map[string]any) { m["contrasena"] = "corta" },
			consultaDB: true,
			mensaje:    "La contraseña debe tener al menos 6 caracteres",
		},
		{
			name:       "horas en cero",
			modifica:   func(m map[string]any) { m["horasSemanales"] = 0 },
			consultaDB: true,
			mensaje:    "Las horas semanales deben ser un número entre 1 y 168",
		},
		{
			name:       "horas por encima del máximo",
			modifica:   func(m map[string]any) { m["horasSemanales"] = 169 },
			consultaDB: true,
			mensaje:    "Las horas semanales deben ser un número entre 1 y 168",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newTestHandler(t)
			if tt.consultaDB {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs("ana@frd.utn.edu.ar").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			}

			cuerpo := cuerpoBase()
			tt.modifica(cuerpo)

			rec := doRequest(t, h, http.MethodPost, "/register", cuerpo)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status esperado 400, se obtuvo %d: %s", rec.Code, rec.Body.String())
			}

			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("respuesta inválida: %v", err)
			}
			if resp.Error != tt.mensaje {
				t.Fatalf("mensaje esperado %q, se obtuvo %q", tt.mensaje, resp.Error)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectativas sin cumplir: %v", err)
			}
		})
	}
}

// El correo duplicado se informa antes que cualquier otra validación, como en
// el flujo de registro existente.
func TestRegisterPrefiereElErrorDeCorreoDuplicado(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ana@frd.utn.edu.ar").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rec := doRequest(t, h, http.MethodPost, "/register", map[string]any{
		"nombre":         "Ana",
		"apellido":       "López",
		"correo":         "ana@frd.utn.edu.ar",
		"contrasena":     "corta",
		"horasSemanales": 0,
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Error != "El correo ya está registrado" {
		t.Fatalf("mensaje esperado %q, se obtuvo %q", "El correo ya está registrado", resp.Error)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestRegisterRechazaCorreoDuplicado(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ana@frd.utn.edu.ar").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rec := doRequest(t, h, http.MethodPost, "/register", map[string]any{
		"nombre":         "Ana",
		"apellido":       "López",
		"correo":         "ana@frd.utn.edu.ar",
		"contrasena":     "segura1",
		"horasSemanales": 20,
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Error != "El correo ya está registrado" {
		t.Fatalf("mensaje inesperado: %q", resp.Error)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestRefreshTokenRechazaUnTokenDeAcceso(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM personas").
		WithArgs("juan@frd.utn.edu.ar").
		WillReturnRows(sqlmock.NewRows(personaRowColumns()).
			AddRow(int64(7), "Juan", "González", mustHash(t, "correcta"), int32(40), nil, nil, nil))

	recLogin := doRequest(t, h, http.MethodPost, "/login", map[string]string{
		"correo":     "juan@frd.utn.edu.ar",
		"contrasena": "correcta",
	})
	if recLogin.Code != http.StatusOK {
		t.Fatalf("login esperado 200, se obtuvo %d", recLogin.Code)
	}

	var tokens struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(recLogin.Body.Bytes(), &tokens); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}

	rec := doRequest(t, h, http.MethodPost, "/refresh-token", map[string]string{
		"refresh": tokens.Access,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status esperado 401, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRefreshTokenEmiteUnNuevoAccess(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM personas").
		WithArgs("juan@frd.utn.edu.ar").
		WillReturnRows(sqlmock.NewRows(personaRowColumns()).
			AddRow(int64(7), "Juan", "González", mustHash(t, "correcta"), int32(40), nil, nil, nil))

	recLogin := doRequest(t, h, http.MethodPost, "/login", map[string]string{
		"correo":     "juan@frd.utn.edu.ar",
		"contrasena": "correcta",
	})

	var tokens struct {
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(recLogin.Body.Bytes(), &tokens); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}

	mock.ExpectQuery("FROM personas").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"nombre", "apellido", "correo", "contrasena_hash", "horas_semanales", "tipo_de_personal_id", "tp_nombre", "grupo_investigacion_id"}).
			AddRow("Juan", "González", "juan@frd.utn.edu.ar", "x", int32(40), nil, nil, nil))

	rec := doRequest(t, h, http.MethodPost, "/refresh-token", map[string]string{
		"refresh": tokens.Refresh,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status esperado 200, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp["access"] == "" {
		t.Fatal("falta el nuevo token de acceso")
	}
	if _, ok := resp["refresh"]; ok {
		t.Fatal("el refresco no debe emitir un nuevo token de refresco")
	}
}

func TestRecuperarPasswordNoRevelaSiElCorreoExiste(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM personas").
		WithArgs("nadie@frd.utn.edu.ar").
		WillReturnError(sql.ErrNoRows)

	rec := doRequest(t, h, http.MethodPost, "/recuperar-password", map[string]string{
		"correo": "nadie@frd.utn.edu.ar",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status esperado 200, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Mensaje != "Si el email existe, recibirás un enlace de recuperación" {
		t.Fatalf("mensaje inesperado: %q", resp.Mensaje)
	}
}

func TestRestablecerPasswordActualizaLaContrasena(t *testing.T) {
	h, mock := newTestHandler(t)

	token := utils.GenerateResetToken(7, time.Now().Add(-time.Hour), "secreto-reset")

	mock.ExpectQuery("FROM personas").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"nombre", "apellido", "correo", "contrasena_hash", "horas_semanales", "tipo_de_personal_id", "tp_nombre", "grupo_investigacion_id"}).
			AddRow("Juan", "González", "juan@frd.utn.edu.ar", mustHash(t, "vieja123"), int32(40), nil, nil, nil))
	mock.ExpectQuery("UPDATE personas").
		WillReturnRows(sqlmock.NewRows([]string{"oid_persona"}).AddRow(int64(7)))

	rec := doRequest(t, h, http.MethodPost, "/restablecer-password", map[string]string{
		"token":      token,
		"contrasena": "nueva123",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status esperado 200, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestRestablecerPasswordRechazaTokenVencido(t *testing.T) {
	h, _ := newTestHandler(t)

	token := utils.GenerateResetToken(7, time.Now().Add(-86401*time.Second), "secreto-reset")

	rec := doRequest(t, h, http.MethodPost, "/restablecer-password", map[string]string{
		"token":      token,
		"contrasena": "nueva123",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Error != "El enlace ha expirado. Solicita uno nuevo." {
		t.Fatalf("mensaje inesperado: %q", resp.Error)
	}
}

func TestRestablecerPasswordRechazaLaMismaContrasena(t *testing.T) {
	h, mock := newTestHandler(t)

	token := utils.GenerateResetToken(7, time.Now(), "secreto-reset")

	mock.ExpectQuery("FROM personas").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"nombre", "apellido", "correo", "contrasena_hash", "horas_semanales", "tipo_de_personal_id", "tp_nombre", "grupo_investigacion_id"}).
			AddRow("Juan", "González", "juan@frd.utn.edu.ar", mustHash(t, "nueva123"), int32(40), nil, nil, nil))

	rec := doRequest(t, h, http.MethodPost, "/restablecer-password", map[string]string{
		"token":      token,
		"contrasena": "nueva123",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Error != "La nueva contraseña no puede ser igual a la contraseña actual" {
		t.Fatalf("mensaje inesperado: %q", resp.Error)
	}
}
