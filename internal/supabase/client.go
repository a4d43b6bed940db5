package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/supabase-community/supabase-go"
	"visionstage-backend/internal/config"
)

const recordsTable = "records"

var ErrNoRecord = errors.New("no record for key")

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

type recordRow struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// LoadRecord reads one row of the records table through PostgREST.
func (c *Client) LoadRecord(key string) ([]byte, error) {
	data, _, err := c.Supabase.From(recordsTable).
		Select("key,value", "", false).
		Eq("key", key).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to load record %s: %w", key, err)
	}

	var rows []recordRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRecord
	}
	return rows[0].Value, nil
}

func (c *Client) SaveRecord(key string, value []byte) error {
	row := recordRow{
		Key:       key,
		Value:     json.RawMessage(value),
		UpdatedAt: time.Now().UTC(),
	}
	_, _, err := c.Supabase.From(recordsTable).
		Upsert(row, "key", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", key, err)
	}
	return nil
}
