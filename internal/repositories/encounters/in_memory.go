package encounters

import (
	"context"
	"sync"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
)

type inMemoryRepository struct {
	mu         sync.RWMutex
	encounters map[string]*entities.Encounter
	ordered    []string // keys in catalog order, for stable listings
}

// NewInMemoryRepository creates an encounter repository seeded with the
// given catalog
func NewInMemoryRepository(catalog []*entities.Encounter) Repository {
	repo := &inMemoryRepository{
		encounters: make(map[string]*entities.Encounter, len(catalog)),
		ordered:    make([]string, 0, len(catalog)),
	}

	for _, encounter := range catalog {
		if _, exists := repo.encounters[encounter.Key]; exists {
			continue
		}
		repo.encounters[encounter.Key] = encounter
		repo.ordered = append(repo.ordered, encounter.Key)
	}

	return repo
}

// Get retrieves an encounter by key
func (r *inMemoryRepository) Get(ctx context.Context, key string) (*entities.Encounter, error) {
	if key == "" {
		return nil, rberr.InvalidArgument("encounter key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	encounter, exists := r.encounters[key]
	if !exists {
		return nil, rberr.NotFoundf("encounter with key '%s' not found", key).
			WithMeta("encounter_key", key)
	}

	return encounter, nil
}

// List returns every encounter in catalog order
func (r *inMemoryRepository) List(ctx context.Context) ([]*entities.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Encounter, 0, len(r.ordered))
	for _, key := range r.ordered {
		result = append(result, r.encounters[key])
	}

	return result, nil
}
