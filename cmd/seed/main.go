package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/utn-dasi/sigrupos/backend/internal/config"
	"github.com/utn-dasi/sigrupos/backend/internal/repository"
	"github.com/utn-dasi/sigrupos/backend/internal/seed"
	"github.com/utn-dasi/sigrupos/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var csvPath string

	flag.IntVar(&op, "op", 0, "operación a ejecutar (1: insertar personas aleatorias, 2: insertar catálogos, 3: importar personas desde CSV)")
	flag.IntVar(&n, "n", 5, "cantidad de registros a insertar")
	flag.StringVar(&csvPath, "csv", "./internal/seed/data/personas.csv", "ruta del CSV de personas")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("no se pudo crear el pool de conexiones", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("no se pudo conectar a la base de datos", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no se especificó una operación")
	case 1:
		if n <= 0 {
			slog.Error("la cantidad de personas debe ser positiva")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				persona, err := utils.GenerateRandomPersona(cfg.Seed.Persona.Password, "frd.utn.edu.ar")
				if err != nil {
					slog.Error("no se pudo generar la persona", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreatePersona(persona); err != nil {
					slog.Error("no se pudo insertar la persona", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("personas insertadas", slog.Int("count", n-cnt))
		}
	case 2:
		seed.SeedCatalogos(repo)
	case 3:
		seed.SeedPersonasCSV(repo, csvPath, cfg.Seed.Persona.Password)
	default:
		slog.Error("la operación especificada no es válida")
	}
}
