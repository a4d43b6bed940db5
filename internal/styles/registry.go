// Package styles is the catalog of staging aesthetics: the built-in set plus
// the agent's custom styles, which are persisted as one record.
package styles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"visionstage-backend/internal/id"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/persistence"
)

const (
	CustomIDPrefix     = "custom"
	CustomDescription  = "Personalized staging aesthetic."
	DefaultCustomIcon  = "✨"
	variantNamePrefix  = "Variant of "
	unknownVariantBase = "Custom"
)

type Registry struct {
	backend persistence.Backend
	logger  *zap.Logger

	mu     sync.RWMutex
	custom []models.StagingStyle
}

func NewRegistry(backend persistence.Backend, logger *zap.Logger) *Registry {
	return &Registry{
		backend: backend,
		logger:  logger.Named("styles"),
	}
}

// Load reads the custom styles record. A missing record means no custom
// styles yet. Entries whose id collides with an earlier style are dropped so
// ids stay unique across the whole catalog.
func (r *Registry) Load(ctx context.Context) error {
	data, err := r.backend.Load(ctx, persistence.CustomStylesKey)
	if errors.Is(err, persistence.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load custom styles: %w", err)
	}

	var loaded []models.StagingStyle
	if err := persistence.Decode(data, &loaded); err != nil {
		return fmt.Errorf("failed to decode custom styles: %w", err)
	}

	seen := make(map[string]bool, len(builtins)+len(loaded))
	for _, s := range builtins {
		seen[s.ID] = true
	}
	custom := make([]models.StagingStyle, 0, len(loaded))
	for _, s := range loaded {
		if seen[s.ID] {
			r.logger.Warn("dropping custom style with duplicate id", zap.String("style_id", s.ID))
			continue
		}
		seen[s.ID] = true
		s.IsCustom = true
		custom = append(custom, s)
	}

	r.mu.Lock()
	r.custom = custom
	r.mu.Unlock()

	r.logger.Info("custom styles loaded", zap.Int("count", len(custom)))
	return nil
}

// ListAll returns built-ins in their fixed order followed by custom styles in
// creation order.
func (r *Registry) ListAll() []models.StagingStyle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.StagingStyle, 0, len(builtins)+len(r.custom))
	out = append(out, builtins...)
	out = append(out, r.custom...)
	return out
}

func (r *Registry) Resolve(styleID string) (models.StagingStyle, bool) {
	for _, s := range builtins {
		if s.ID == styleID {
			return s, true
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.custom {
		if s.ID == styleID {
			return s, true
		}
	}
	return models.StagingStyle{}, false
}

// Default is the first built-in style, used whenever a lookup misses.
func (r *Registry) Default() models.StagingStyle {
	return builtins[0]
}

func (r *Registry) ResolveOrDefault(styleID string) models.StagingStyle {
	if s, ok := r.Resolve(styleID); ok {
		return s
	}
	return r.Default()
}

// CreateCustomStyle registers a new custom style. Blank name or prompt is a
// failed precondition and leaves the registry untouched.
func (r *Registry) CreateCustomStyle(ctx context.Context, name, prompt, icon string) (models.StagingStyle, models.Outcome, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(prompt) == "" {
		return models.StagingStyle{}, models.OutcomeFailedPrecondition, nil
	}
	if strings.TrimSpace(icon) == "" {
		icon = DefaultCustomIcon
	}

	styleID, err := id.Generate(CustomIDPrefix)
	if err != nil {
		return models.StagingStyle{}, "", err
	}
	style := models.StagingStyle{
		ID:          styleID,
		Name:        name,
		Description: CustomDescription,
		Prompt:      prompt,
		Icon:        icon,
		IsCustom:    true,
	}

	r.mu.Lock()
	next := make([]models.StagingStyle, len(r.custom), len(r.custom)+1)
	copy(next, r.custom)
	next = append(next, style)
	if err := r.flush(ctx, next); err != nil {
		r.mu.Unlock()
		return models.StagingStyle{}, "", err
	}
	r.custom = next
	r.mu.Unlock()

	r.logger.Info("custom style created",
		zap.String("style_id", style.ID),
		zap.String("name", style.Name),
	)
	return style, models.OutcomeCreated, nil
}

// DeriveVariant pre-fills a custom style from the style that produced an
// image: "Variant of <name>" with the base prompt. An unknown base yields
// "Variant of Custom" with an empty prompt.
func (r *Registry) DeriveVariant(styleID string) (name, prompt string) {
	base, ok := r.Resolve(styleID)
	if !ok {
		return variantNamePrefix + unknownVariantBase, ""
	}
	return variantNamePrefix + base.Name, base.Prompt
}

func (r *Registry) flush(ctx context.Context, custom []models.StagingStyle) error {
	data, err := persistence.Encode(custom)
	if err != nil {
		return err
	}
	if err := r.backend.Save(ctx, persistence.CustomStylesKey, data); err != nil {
		return fmt.Errorf("failed to persist custom styles: %w", err)
	}
	return nil
}
