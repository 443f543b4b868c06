package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
	"github.com/venwyn/realm-bot/internal/repositories/characters"
	"github.com/venwyn/realm-bot/internal/testutils"
)

// These tests run the Redis repository against an in-process miniredis
// server, exercising real command round-trips.

func TestRedisRepository_RoundTrip(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := characters.NewRedis(client)
	ctx := context.Background()

	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	require.NoError(t, char.Equip(&entities.Item{
		Key:      "iron-cuirass",
		Name:     "Iron Cuirass",
		Category: entities.ItemCategoryArmor,
		Rarity:   entities.RarityUncommon,
		Bonuses:  map[string]int{"endurance": 3},
		Defense:  4,
	}))

	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)

	assert.Equal(t, char.Name, got.Name)
	assert.Equal(t, char.Coins, got.Coins)
	assert.Equal(t, char.Skills, got.Skills)
	require.Contains(t, got.EquippedSlots, entities.SlotArmor)
	assert.Equal(t, "iron-cuirass", got.EquippedSlots[entities.SlotArmor].Key)
	assert.Equal(t, 3, got.EquippedSlots[entities.SlotArmor].BonusFor("endurance"))
	assert.False(t, got.CreatedAt.IsZero())

	stats := got.DeriveStats()
	assert.Equal(t, 115, stats.MaxHealth, "derived stats survive the round trip")
}

func TestRedisRepository_GetByOwner(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := characters.NewRedis(client)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-1", "user-1", "Theron")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-2", "user-1", "Mira")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-3", "user-2", "Oswin")))

	chars, err := repo.GetByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, chars, 2)

	chars, err = repo.GetByOwner(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, chars)
}

func TestRedisRepository_UpdatePersistsProgress(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := characters.NewRedis(client)
	ctx := context.Background()

	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	require.NoError(t, repo.Create(ctx, char))

	char.Experience = 950
	result, err := char.AddExperience(100)
	require.NoError(t, err)
	require.True(t, result.LeveledUp)

	require.NoError(t, repo.Update(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 50, got.Experience)
	assert.Equal(t, 105, got.BaseMaxHealth)
}

func TestRedisRepository_DeleteCleansOwnerIndex(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := characters.NewRedis(client)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-1", "user-1", "Theron")))
	require.NoError(t, repo.Delete(ctx, "char-1"))

	_, err := repo.Get(ctx, "char-1")
	assert.True(t, rberr.IsNotFound(err))

	chars, err := repo.GetByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, chars)
}
