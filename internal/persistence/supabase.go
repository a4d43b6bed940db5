package persistence

import (
	"context"
	"errors"

	"visionstage-backend/internal/supabase"
)

// SupabaseBackend keeps records in the records table through the Supabase
// REST API. The table is created by the same migration the postgres backend
// runs.
type SupabaseBackend struct {
	client *supabase.Client
}

func NewSupabaseBackend(client *supabase.Client) *SupabaseBackend {
	return &SupabaseBackend{client: client}
}

func (s *SupabaseBackend) Load(_ context.Context, key string) ([]byte, error) {
	data, err := s.client.LoadRecord(key)
	if errors.Is(err, supabase.ErrNoRecord) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *SupabaseBackend) Save(_ context.Context, key string, data []byte) error {
	return s.client.SaveRecord(key, data)
}

func (s *SupabaseBackend) Close() error {
	return nil
}
