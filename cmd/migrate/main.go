// Comando migrate aplica las migraciones SQL embebidas (esquema y catálogo inicial).
package main

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/raash-api/internal/infrastructure/postgres"
	"github.com/jhoicas/raash-api/pkg/config"
	"github.com/jhoicas/raash-api/pkg/logger"
)

func main() {
	cfg := config.LoadDatabase()
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: os.Getenv("LOG_LEVEL"), Service: "migrate"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer conn.Close(context.Background())

	applied, err := postgres.Migrate(ctx, conn, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Strs("applied", applied).Int("count", len(applied)).Msg("migraciones al día")
}
