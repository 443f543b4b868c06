package cities

//go:generate mockgen -destination=mock/mock.go -package=mockcities -source=repository.go

import (
	"context"

	"github.com/venwyn/realm-bot/internal/entities"
)

// Repository defines the interface for world map lookups. Cities are
// immutable configuration data.
type Repository interface {
	// Get retrieves a city by key
	Get(ctx context.Context, key string) (*entities.City, error)

	// List returns every city on the map
	List(ctx context.Context) ([]*entities.City, error)
}
