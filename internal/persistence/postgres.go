package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"visionstage-backend/internal/database"
)

// PostgresBackend keeps records in the records table of a PostgreSQL
// database, migrating the schema on open.
type PostgresBackend struct {
	db *sql.DB
}

func NewPostgresBackend(dbURL string, logger *zap.Logger) (*PostgresBackend, error) {
	db, err := database.Open(dbURL)
	if err != nil {
		return nil, err
	}

	if err := database.NewMigrator(db, logger).Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

func (p *PostgresBackend) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := database.LoadRecord(ctx, p.db, key)
	if errors.Is(err, database.ErrNoRecord) {
		return nil, ErrNotFound
	}
	return data, err
}

func (p *PostgresBackend) Save(ctx context.Context, key string, data []byte) error {
	return database.SaveRecord(ctx, p.db, key, data)
}

func (p *PostgresBackend) Close() error {
	return p.db.Close()
}
