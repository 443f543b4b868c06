package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (f *fakeEmbedSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channelID = channelID
	f.embeds = append(f.embeds, embed)
	return nil, f.err
}

func TestDiscordNotifier_NotifyLevelUp(t *testing.T) {
	fake := &fakeEmbedSender{}
	notifier := &DiscordNotifier{session: fake, channelID: "chan-1"}

	notifier.NotifyLevelUp(context.Background(), &LevelUpEvent{
		CharacterName: "Theron",
		NewLevel:      5,
		BonusHealth:   5,
		BonusEnergy:   3,
	})

	require.Len(t, fake.embeds, 1)
	assert.Equal(t, "chan-1", fake.channelID)
	assert.Contains(t, fake.embeds[0].Description, "Theron")
	assert.Contains(t, fake.embeds[0].Description, "5")
}

func TestDiscordNotifier_NotifyAchievement(t *testing.T) {
	fake := &fakeEmbedSender{}
	notifier := &DiscordNotifier{session: fake, channelID: "chan-1"}

	notifier.NotifyAchievement(context.Background(), &AchievementEvent{
		CharacterName: "Theron",
		Key:           "level-5",
		Title:         "Seasoned Adventurer",
	})

	require.Len(t, fake.embeds, 1)
	assert.Contains(t, fake.embeds[0].Description, "Seasoned Adventurer")
}

func TestDiscordNotifier_SendFailureIsSwallowed(t *testing.T) {
	fake := &fakeEmbedSender{err: errors.New("channel gone")}
	notifier := &DiscordNotifier{session: fake, channelID: "chan-1"}

	// must not panic or surface the error
	notifier.NotifyLevelUp(context.Background(), &LevelUpEvent{CharacterName: "Theron", NewLevel: 2})
	notifier.NotifyAchievement(context.Background(), &AchievementEvent{CharacterName: "Theron", Title: "x"})
}
