package encounters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venwyn/realm-bot/internal/content"
	rberr "github.com/venwyn/realm-bot/internal/errors"
	"github.com/venwyn/realm-bot/internal/repositories/encounters"
)

func TestInMemoryRepository_Get(t *testing.T) {
	repo := encounters.NewInMemoryRepository(content.Encounters())
	ctx := context.Background()

	encounter, err := repo.Get(ctx, "collapsed-bridge")
	require.NoError(t, err)
	assert.Equal(t, "Collapsed Bridge", encounter.Name)

	_, err = repo.Get(ctx, "no-such-encounter")
	assert.True(t, rberr.IsNotFound(err))

	_, err = repo.Get(ctx, "")
	assert.True(t, rberr.IsInvalidArgument(err))
}

func TestInMemoryRepository_ListKeepsCatalogOrder(t *testing.T) {
	catalog := content.Encounters()
	repo := encounters.NewInMemoryRepository(catalog)

	listed, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, len(catalog))

	for i := range catalog {
		assert.Equal(t, catalog[i].Key, listed[i].Key)
	}
}
