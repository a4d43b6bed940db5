// Package persistence holds the key-addressed records that back the listing
// store and the custom style registry. Every record is rewritten wholesale on
// each mutation.
package persistence

import (
	"context"
	"errors"
)

const (
	ListingsKey     = "visionstage_listings"
	CustomStylesKey = "visionstage_custom_styles"
)

var ErrNotFound = errors.New("record not found")

// Backend stores opaque records by key.
type Backend interface {
	// Load returns ErrNotFound when nothing was ever saved under key.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}
