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

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Theron", got.Name)
	assert.Equal(t, "user-1", got.OwnerID)

	// the repository hands out copies
	got.Name = "mutated"
	again, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Theron", again.Name)
}

func TestInMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	require.NoError(t, repo.Create(ctx, char))

	err := repo.Create(ctx, char)
	require.Error(t, err)
	assert.True(t, rberr.IsAlreadyExists(err))
}

func TestInMemoryRepository_CreateValidation(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	err := repo.Create(ctx, nil)
	assert.True(t, rberr.IsInvalidArgument(err))

	err = repo.Create(ctx, &entities.Character{})
	assert.True(t, rberr.IsInvalidArgument(err))
}

func TestInMemoryRepository_GetMissing(t *testing.T) {
	repo := characters.NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, rberr.IsNotFound(err))
}

func TestInMemoryRepository_GetByOwner(t *testing.T) {
	repo := characters.NewInMemoryRepository()
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

func TestInMemoryRepository_Update(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	require.NoError(t, repo.Create(ctx, char))

	char.Coins = 500
	require.NoError(t, repo.Update(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 500, got.Coins)

	err = repo.Update(ctx, testutils.CreateTestCharacter("ghost", "user-1", "Nobody"))
	assert.True(t, rberr.IsNotFound(err))
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-1", "user-1", "Theron")))
	require.NoError(t, repo.Delete(ctx, "char-1"))

	_, err := repo.Get(ctx, "char-1")
	assert.True(t, rberr.IsNotFound(err))

	err = repo.Delete(ctx, "char-1")
	assert.True(t, rberr.IsNotFound(err))
}
