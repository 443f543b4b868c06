package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
)

// characterData is the serialized form of a character in Redis
type characterData struct {
	ID            string                           `json:"id"`
	OwnerID       string                           `json:"owner_id"`
	Name          string                           `json:"name"`
	Level         int                              `json:"level"`
	Experience    int                              `json:"experience"`
	Coins         int                              `json:"coins"`
	BaseMaxHealth int                              `json:"base_max_health"`
	BaseMaxEnergy int                              `json:"base_max_energy"`
	Health        int                              `json:"health"`
	Energy        int                              `json:"energy"`
	Skills        map[entities.Skill]int           `json:"skills"`
	EquippedSlots map[entities.Slot]*entities.Item `json:"equipped_slots,omitempty"`
	CityKey       string                           `json:"city_key"`
	Achievements  []string                         `json:"achievements,omitempty"`
	CreatedAt     time.Time                        `json:"created_at"`
	UpdatedAt     time.Time                        `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
	clock  func() time.Time
}

func characterKey(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

func toData(character *entities.Character) *characterData {
	return &characterData{
		ID:            character.ID,
		OwnerID:       character.OwnerID,
		Name:          character.Name,
		Level:         character.Level,
		Experience:    character.Experience,
		Coins:         character.Coins,
		BaseMaxHealth: character.BaseMaxHealth,
		BaseMaxEnergy: character.BaseMaxEnergy,
		Health:        character.Health,
		Energy:        character.Energy,
		Skills:        character.Skills,
		EquippedSlots: character.EquippedSlots,
		CityKey:       character.CityKey,
		Achievements:  character.Achievements,
		CreatedAt:     character.CreatedAt,
		UpdatedAt:     character.UpdatedAt,
	}
}

func toEntity(data *characterData) *entities.Character {
	return &entities.Character{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Level:         data.Level,
		Experience:    data.Experience,
		Coins:         data.Coins,
		BaseMaxHealth: data.BaseMaxHealth,
		BaseMaxEnergy: data.BaseMaxEnergy,
		Health:        data.Health,
		Energy:        data.Energy,
		Skills:        data.Skills,
		EquippedSlots: data.EquippedSlots,
		CityKey:       data.CityKey,
		Achievements:  data.Achievements,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return rberr.InvalidArgument("character cannot be nil")
	}

	if character.ID == "" {
		return rberr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, characterKey(character.ID)).Result()
	if err != nil {
		return rberr.Wrapf(err, "failed to check character '%s'", character.ID)
	}
	if exists > 0 {
		return rberr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	now := r.clock()
	character.CreatedAt = now
	character.UpdatedAt = now

	return r.set(ctx, character)
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, rberr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, characterKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, rberr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, rberr.Wrapf(err, "failed to get character '%s'", id)
	}

	var data characterData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, rberr.Wrapf(err, "failed to unmarshal character '%s'", id)
	}

	return toEntity(&data), nil
}

// GetByOwner retrieves all characters for a specific owner. Members of the
// owner index are fetched concurrently; ids whose document has vanished are
// skipped rather than failing the listing.
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, rberr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, rberr.Wrapf(err, "failed to list characters for owner '%s'", ownerID)
	}

	fetched := make([]*entities.Character, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			char, getErr := r.Get(gctx, id)
			if getErr != nil {
				if rberr.IsNotFound(getErr) {
					return nil
				}
				return getErr
			}
			fetched[i] = char
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result []*entities.Character
	for _, char := range fetched {
		if char != nil {
			result = append(result, char)
		}
	}

	return result, nil
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return rberr.InvalidArgument("character cannot be nil")
	}

	if character.ID == "" {
		return rberr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, characterKey(character.ID)).Result()
	if err != nil {
		return rberr.Wrapf(err, "failed to check character '%s'", character.ID)
	}
	if exists == 0 {
		return rberr.NotFoundf("character with ID '%s' not found", character.ID).
			WithMeta("character_id", character.ID)
	}

	character.UpdatedAt = r.clock()

	return r.set(ctx, character)
}

// Delete removes a character and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return rberr.InvalidArgument("character ID is required")
	}

	character, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, characterKey(id))
	pipe.SRem(ctx, ownerKey(character.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return rberr.Wrapf(err, "failed to delete character '%s'", id)
	}

	return nil
}

func (r *redisRepo) set(ctx context.Context, character *entities.Character) error {
	jsonData, err := json.Marshal(toData(character))
	if err != nil {
		return rberr.Wrapf(err, "failed to marshal character '%s'", character.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, characterKey(character.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerKey(character.OwnerID), character.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return rberr.Wrapf(err, "failed to store character '%s'", character.ID)
	}

	return nil
}
