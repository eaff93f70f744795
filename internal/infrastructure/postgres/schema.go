package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea la tabla de categorías y sus índices si no existen.
// El FK de parent_id respalda la validación de padre del caso de uso; los
// índices por parent_id y name no son críticos para la corrección, solo
// para el rendimiento de las consultas.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL,
			parent_id  UUID REFERENCES categories(id),
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_parent_id ON categories (parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_name ON categories (name)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
