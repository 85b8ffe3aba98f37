package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/utn-dasi/sigrupos/backend/internal/config"
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("no se pudo crear el mock de la base de datos: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 10

	return NewRepository(cfg, db), mock
}

func TestCreateMemoriaAnualInsertaTodoEnUnaTransaccion(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO memorias_anuales").
		WillReturnRows(sqlmock.NewRows([]string{"oid_memoria_anual", "fecha_creacion", "fecha_modificacion"}).AddRow(int64(10), now, now))
	mock.ExpectQuery("INSERT INTO integrantes_memoria").
		WithArgs(int64(10), int64(1), "Director", "Exclusiva", int32(40)).
		WillReturnRows(sqlmock.NewRows([]string{"oid_integrante_memoria"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO integrantes_memoria").
		WithArgs(int64(10), int64(2), "Becario", "Simple", int32(10)).
		WillReturnRows(sqlmock.NewRows([]string{"oid_integrante_memoria"}).AddRow(int64(101)))
	mock.ExpectQuery("INSERT INTO actividades_memoria").
		WithArgs(int64(10), int64(3), "en curso").
		WillReturnRows(sqlmock.NewRows([]string{"oid_actividad_memoria"}).AddRow(int64(200)))
	mock.ExpectQuery("INSERT INTO publicaciones_memoria").
		WithArgs(int64(10), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"oid_publicacion_memoria"}).AddRow(int64(300)))
	mock.ExpectQuery("INSERT INTO patentes_memoria").
		WithArgs(int64(10), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"oid_patente_memoria"}).AddRow(int64(400)))
	mock.ExpectQuery("INSERT INTO proyectos_memoria").
		WithArgs(int64(10), int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"oid_proyecto_memoria"}).AddRow(int64(500)))
	mock.ExpectCommit()

	m := &domain.MemoriaAnual{
		Ano:    2025,
		Titulo: "Memoria 2025",
		Integrantes: []domain.IntegranteMemoria{
			{PersonaID: 1, Rol: "Director", Dedicacion: "Exclusiva", HorasSemanales: 40},
			{PersonaID: 2, Rol: "Becario", Dedicacion: "Simple", HorasSemanales: 10},
		},
		Actividades:   []domain.ActividadMemoria{{ActividadID: 3, Observaciones: "en curso"}},
		Publicaciones: []domain.PublicacionMemoria{{TrabajoPublicadoID: 4}},
		Patentes:      []domain.PatenteMemoria{{PatenteID: 5}},
		Proyectos:     []domain.ProyectoMemoria{{ProyectoInvestigacionID: 6}},
	}

	if err := repo.CreateMemoriaAnual(m); err != nil {
		t.Fatalf("no se esperaba error: %v", err)
	}

	if m.ID != 10 {
		t.Fatalf("oid esperado 10, se obtuvo %d", m.ID)
	}
	if m.Integrantes[1].ID != 101 || m.Integrantes[1].MemoriaAnualID != 10 {
		t.Fatalf("el integrante no quedó vinculado a la memoria: %+v", m.Integrantes[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestCreateMemoriaAnualRevierteTodoSiUnaFilaFalla(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	duplicado := &pgconn.PgError{Code: "23505", ConstraintName: "uq_integrantes_memoria"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO memorias_anuales").
		WillReturnRows(sqlmock.NewRows([]string{"oid_memoria_anual", "fecha_creacion", "fecha_modificacion"}).AddRow(int64(10), now, now))
	mock.ExpectQuery("INSERT INTO integrantes_memoria").
		WillReturnRows(sqlmock.NewRows([]string{"oid_integrante_memoria"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO integrantes_memoria").
		WillReturnError(duplicado)
	mock.ExpectRollback()

	m := &domain.MemoriaAnual{
		Ano:    2025,
		Titulo: "Memoria 2025",
		Integrantes: []domain.IntegranteMemoria{
			{PersonaID: 1, Rol: "Director", Dedicacion: "Exclusiva", HorasSemanales: 40},
			{PersonaID: 1, Rol: "Director", Dedicacion: "Exclusiva", HorasSemanales: 40},
		},
	}

	if err := repo.CreateMemoriaAnual(m); err == nil {
		t.Fatal("se esperaba un error por el integrante duplicado")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}

func TestGetMemoriaAnualResuelveDirectores(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	columns := []string{
		"ano", "titulo", "fecha_creacion", "fecha_modificacion", "fecha_inicio", "fecha_fin",
		"director", "vicedirector", "objetivos_generales", "objetivos_especificos",
		"actividades_realizadas", "resultados_obtenidos", "grupo_investigacion_id",
	}

	mock.ExpectQuery("FROM memorias_anuales WHERE oid_memoria_anual").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int32(2025), "Memoria 2025", now, now, nil, nil, "7", "Dra. Pérez", "", "", "", "", nil))

	// El director "7" es un oid de persona; el vicedirector es texto libre
	personaColumns := []string{"nombre", "apellido", "correo", "contrasena_hash", "horas_semanales", "tipo_de_personal_id", "tp_nombre", "grupo_investigacion_id"}
	mock.ExpectQuery("FROM personas").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(personaColumns).
			AddRow("Juan", "González", "juan.gonzalez@frd.utn.edu.ar", "x", int32(40), nil, nil, nil))

	m, err := repo.GetMemoriaAnual(10)
	if err != nil {
		t.Fatalf("no se esperaba error: %v", err)
	}

	if m.DirectorNombre == nil || *m.DirectorNombre != "Juan González" {
		t.Fatalf("directorNombre esperado \"Juan González\", se obtuvo %v", m.DirectorNombre)
	}
	if m.VicedirectorNombre == nil || *m.VicedirectorNombre != "Dra. Pérez" {
		t.Fatalf("vicedirectorNombre esperado \"Dra. Pérez\", se obtuvo %v", m.VicedirectorNombre)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas sin cumplir: %v", err)
	}
}
