package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator lo implementan *pgx.Conn y *pgxpool.Pool.
type Migrator interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migration archivo SQL embebido, identificado por su nombre (NNN_descripcion.sql).
type Migration struct {
	Name string
	SQL  string
}

// Migrations devuelve las migraciones embebidas ordenadas por nombre.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones: %w", err)
	}
	list := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := migrationsFS.ReadFile("migrations/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", e.Name(), err)
		}
		list = append(list, Migration{Name: e.Name(), SQL: string(b)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Migrate aplica, cada una en su propia transacción, las migraciones que aún no figuran en schema_migrations.
// Devuelve los nombres aplicados en esta ejecución.
func Migrate(ctx context.Context, db Migrator, log zerolog.Logger) ([]string, error) {
	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name       VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return nil, fmt.Errorf("crear schema_migrations: %w", err)
	}

	migrations, err := Migrations()
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, m := range migrations {
		var exists bool
		if err := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, m.Name,
		).Scan(&exists); err != nil {
			return applied, fmt.Errorf("consultar %s: %w", m.Name, err)
		}
		if exists {
			log.Debug().Str("migration", m.Name).Msg("ya aplicada")
			continue
		}
		if err := applyMigration(ctx, db, m); err != nil {
			return applied, err
		}
		log.Info().Str("migration", m.Name).Msg("migración aplicada")
		applied = append(applied, m.Name)
	}
	return applied, nil
}

func applyMigration(ctx context.Context, db Migrator, m Migration) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin %s: %w", m.Name, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return fmt.Errorf("ejecutar %s: %w", m.Name, err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, m.Name); err != nil {
		return fmt.Errorf("registrar %s: %w", m.Name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s: %w", m.Name, err)
	}
	return nil
}
