package cities

import (
	"context"
	"sync"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	cities  map[string]*entities.City
	ordered []string
}

// NewInMemoryRepository creates a city repository seeded with the given map
func NewInMemoryRepository(worldMap []*entities.City) Repository {
	repo := &inMemoryRepository{
		cities:  make(map[string]*entities.City, len(worldMap)),
		ordered: make([]string, 0, len(worldMap)),
	}

	for _, city := range worldMap {
		if _, exists := repo.cities[city.Key]; exists {
			continue
		}
		repo.cities[city.Key] = city
		repo.ordered = append(repo.ordered, city.Key)
	}

	return repo
}

// Get retrieves a city by key
func (r *inMemoryRepository) Get(ctx context.Context, key string) (*entities.City, error) {
	if key == "" {
		return nil, rberr.InvalidArgument("city key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	city, exists := r.cities[key]
	if !exists {
		return nil, rberr.NotFoundf("city with key '%s' not found", key).
			WithMeta("city_key", key)
	}

	return city, nil
}

// List returns every city in map order
func (r *inMemoryRepository) List(ctx context.Context) ([]*entities.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.City, 0, len(r.ordered))
	for _, key := range r.ordered {
		result = append(result, r.cities[key])
	}

	return result, nil
}
