package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func doAuthRequest(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	access, err := h.generateToken(&domain.Persona{
		ID:       7,
		Nombre:   "Juan",
		Apellido: "González",
		Correo:   "juan@frd.utn.edu.ar",
	}, tokenTypeAccess, h.config.JWT.AccessExpiration)
	if err != nil {
		t.Fatalf("no se pudo generar el token de acceso: %v", err)
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("no se pudo codificar el cuerpo: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	return rec
}

func TestCreateMemoriaAnualRequiereAutenticacion(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/memorias-anuales", map[string]any{
		"ano":    2025,
		"titulo": "Memoria 2025",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status esperado 401, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateMemoriaAnualRequiereElAno(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doAuthRequest(t, h, http.MethodPost, "/memorias-anuales", map[string]any{
		"titulo": "Memoria 2025",
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
	if resp.Error != "El año es requerido" {
		t.Fatalf("mensaje inesperado: %q", resp.Error)
	}
}

// El título es opcional: solo el año es obligatorio.
func TestCreateMemoriaAnualAceptaTituloVacio(t *testing.T) {
	h, mock := newTestHandler(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO memorias_anuales").
		WillReturnRows(sqlmock.NewRows([]string{"oid_memoria_anual", "fecha_creacion", "fecha_modificacion"}).AddRow(int64(11), now, now))
	mock.ExpectCommit()

	rec := doAuthRequest(t, h, http.MethodPost, "/memorias-anuales", map[string]any{
		"ano": 2025,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status esperado 201, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestCreateMemoriaAnualPersisteElAgregadoYDevuelveLosEscalares(t *testing.T) {
	h, mock := newTestHandler(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO memorias_anuales").
		WillReturnRows(sqlmock.NewRows([]string{"oid_memoria_anual", "fecha_creacion", "fecha_modificacion"}).AddRow(int64(10), now, now))
	mock.ExpectQuery("INSERT INTO integrantes_memoria").
		WithArgs(int64(10), int64(7), "Director", "Exclusiva", int32(40)).
		WillReturnRows(sqlmock.NewRows([]string{"oid_integrante_memoria"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO actividades_memoria").
		WithArgs(int64(10), int64(3), "en curso").
		WillReturnRows(sqlmock.NewRows([]string{"oid_actividad_memoria"}).AddRow(int64(200)))
	mock.ExpectQuery("INSERT INTO publicaciones_memoria").
		WithArgs(int64(10), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"oid_publicacion_memoria"}).AddRow(int64(300)))
	mock.ExpectCommit()

	// Integrantes y actividades viajan como objetos con la clave del destino;
	// publicaciones, patentes y proyectos como listas planas de ids.
	rec := doAuthRequest(t, h, http.MethodPost, "/memorias-anuales", map[string]any{
		"ano":    2025,
		"titulo": "Memoria 2025",
		"integrantes": []map[string]any{
			{"personaId": 7, "rol": "Director", "dedicacion": "Exclusiva", "horasSemanales": 40},
		},
		"actividades": []map[string]any{
			{"actividadId": 3, "observaciones": "en curso"},
		},
		"publicaciones": []int{4},
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status esperado 201, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if oid, _ := resp["oidMemoriaAnual"].(float64); oid != 10 {
		t.Fatalf("oid esperado 10, se obtuvo %v", resp["oidMemoriaAnual"])
	}
	// Las colecciones no se devuelven en la respuesta del alta
	if _, ok := resp["integrantes"]; ok {
		t.Fatal("la respuesta no debe incluir los integrantes")
	}
	if _, ok := resp["publicaciones"]; ok {
		t.Fatal("la respuesta no debe incluir las publicaciones")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestCreateIntegranteMemoriaRechazaMemoriaInexistente(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rec := doAuthRequest(t, h, http.MethodPost, "/integrantes-memoria", map[string]any{
		"MemoriaAnual":   99,
		"Persona":        1,
		"rol":            "Director",
		"dedicacion":     "Exclusiva",
		"horasSemanales": 40,
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
	if resp.Error != "La memoria anual no existe" {
		t.Fatalf("mensaje inesperado: %q", resp.Error)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestGetIntegrantesMemoriaFiltraPorMemoria(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM integrantes_memoria").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"oid_integrante_memoria", "memoria_anual_id", "persona_id", "rol", "dedicacion", "horas_semanales", "nombre", "apellido"}).
			AddRow(int64(100), int64(3), int64(1), "Director", "Exclusiva", int32(40), "Juan", "González"))

	rec := doAuthRequest(t, h, http.MethodGet, "/integrantes-memoria?memoria=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status esperado 200, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp []struct {
		MemoriaAnual int64 `json:"MemoriaAnual"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if len(resp) != 1 || resp[0].MemoriaAnual != 3 {
		t.Fatalf("resultados inesperados: %+v", resp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestGetIntegrantesMemoriaRechazaFiltroInvalido(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doAuthRequest(t, h, http.MethodGet, "/integrantes-memoria?memoria=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetTrabajosPublicadosPagina(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery("FROM trabajos_publicados").
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"oid_trabajo_publicado", "titulo", "issn", "editorial", "nombre_revista", "pais", "estado", "tipo_trabajo_publicado_id", "autor_id", "grupo_investigacion_id"}).
			AddRow(int64(11), "Título", "1234-5678", "Editorial", "Revista", "Argentina", "publicado", int64(1), int64(2), int64(3)))

	rec := doRequest(t, h, http.MethodGet, "/trabajos-publicados?limit=5&offset=10", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status esperado 200, se obtuvo %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Count   int `json:"count"`
		Results []struct {
			ID int64 `json:"oidTrabajoPublicado"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Count != 42 {
		t.Fatalf("count esperado 42, se obtuvo %d", resp.Count)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 11 {
		t.Fatalf("resultados inesperados: %+v", resp.Results)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}
