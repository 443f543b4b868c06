package encounters

//go:generate mockgen -destination=mock/mock.go -package=mockencounters -source=repository.go

import (
	"context"

	"github.com/venwyn/realm-bot/internal/entities"
)

// Repository defines the interface for encounter catalog lookups.
// Encounters are immutable configuration data, so the interface is
// read-only.
type Repository interface {
	// Get retrieves an encounter by key
	Get(ctx context.Context, key string) (*entities.Encounter, error)

	// List returns every encounter in the catalog
	List(ctx context.Context) ([]*entities.Encounter, error)
}
