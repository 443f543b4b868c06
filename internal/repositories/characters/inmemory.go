package characters

import (
	"context"
	"sync"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and for running without Redis.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*entities.Character),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return rberr.InvalidArgument("character cannot be nil")
	}

	if character.ID == "" {
		return rberr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; exists {
		return rberr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	r.characters[character.ID] = character.Clone()

	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, rberr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, exists := r.characters[id]
	if !exists {
		return nil, rberr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return character.Clone(), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, rberr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Character
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			result = append(result, char.Clone())
		}
	}

	return result, nil
}

// Update updates an existing character
func (r *InMemoryRepository) Update(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return rberr.InvalidArgument("character cannot be nil")
	}

	if character.ID == "" {
		return rberr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; !exists {
		return rberr.NotFoundf("character with ID '%s' not found", character.ID).
			WithMeta("character_id", character.ID)
	}

	r.characters[character.ID] = character.Clone()

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return rberr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return rberr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)

	return nil
}
