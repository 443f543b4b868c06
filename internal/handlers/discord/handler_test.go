package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
	"github.com/venwyn/realm-bot/internal/services"
	mockprogression "github.com/venwyn/realm-bot/internal/services/progression/mock"
	"github.com/venwyn/realm-bot/internal/testutils"
)

func TestNewHandler_RequiresProvider(t *testing.T) {
	assert.Panics(t, func() {
		NewHandler(&HandlerConfig{})
	})
}

func TestInteractionUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
		},
	}
	assert.Equal(t, "user-1", interactionUserID(guild))

	dm := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			User: &discordgo.User{ID: "user-2"},
		},
	}
	assert.Equal(t, "user-2", interactionUserID(dm))

	assert.Empty(t, interactionUserID(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}))
}

func TestActiveCharacter(t *testing.T) {
	ctrl := gomock.NewController(t)
	progressionSvc := mockprogression.NewMockService(ctrl)

	h := NewHandler(&HandlerConfig{
		ServiceProvider: &services.Provider{ProgressionService: progressionSvc},
	})

	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
		},
	}

	progressionSvc.EXPECT().ListCharacters(gomock.Any(), "user-1").Return([]*entities.Character{
		testutils.CreateTestCharacter("char-1", "user-1", "Theron"),
	}, nil)

	char, err := h.activeCharacter(context.Background(), interaction)
	require.NoError(t, err)
	assert.Equal(t, "char-1", char.ID)
}

func TestActiveCharacter_NoCharacters(t *testing.T) {
	ctrl := gomock.NewController(t)
	progressionSvc := mockprogression.NewMockService(ctrl)

	h := NewHandler(&HandlerConfig{
		ServiceProvider: &services.Provider{ProgressionService: progressionSvc},
	})

	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			User: &discordgo.User{ID: "user-1"},
		},
	}

	progressionSvc.EXPECT().ListCharacters(gomock.Any(), "user-1").Return(nil, nil)

	_, err := h.activeCharacter(context.Background(), interaction)
	assert.True(t, rberr.IsNotFound(err))
}
