package persistence

import (
	"fmt"

	"go.uber.org/zap"
	"visionstage-backend/internal/config"
	"visionstage-backend/internal/supabase"
)

// Open builds the backend selected by cfg.PersistenceBackend.
func Open(cfg *config.Config, logger *zap.Logger) (Backend, error) {
	switch cfg.PersistenceBackend {
	case config.BackendBadger, "":
		logger.Info("opening badger persistence", zap.String("path", cfg.BadgerPath))
		return NewBadgerBackend(cfg.BadgerPath)
	case config.BackendPostgres:
		logger.Info("opening postgres persistence")
		return NewPostgresBackend(cfg.DatabaseURL, logger)
	case config.BackendSupabase:
		logger.Info("opening supabase persistence", zap.String("url", cfg.SupabaseURL))
		client, err := supabase.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewSupabaseBackend(client), nil
	default:
		return nil, fmt.Errorf("unknown persistence backend %q", cfg.PersistenceBackend)
	}
}
