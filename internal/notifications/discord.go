package notifications

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// embedSender is the slice of discordgo.Session the notifier needs,
// narrowed so tests can fake it
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier announces milestones as embeds in a Discord channel
type DiscordNotifier struct {
	session   embedSender
	channelID string
}

// NewDiscordNotifier creates a notifier posting to the given channel
func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

// NotifyLevelUp implements Notifier. Send failures are logged and dropped.
func (n *DiscordNotifier) NotifyLevelUp(ctx context.Context, event *LevelUpEvent) {
	embed := &discordgo.MessageEmbed{
		Title:       "Level Up!",
		Description: fmt.Sprintf("**%s** reached level **%d**", event.CharacterName, event.NewLevel),
		Color:       0xF1C40F,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Max Health", Value: fmt.Sprintf("+%d", event.BonusHealth), Inline: true},
			{Name: "Max Energy", Value: fmt.Sprintf("+%d", event.BonusEnergy), Inline: true},
		},
	}

	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		log.Printf("Failed to send level-up announcement for %s: %v", event.CharacterName, err)
	}
}

// NotifyAchievement implements Notifier. Send failures are logged and
// dropped.
func (n *DiscordNotifier) NotifyAchievement(ctx context.Context, event *AchievementEvent) {
	embed := &discordgo.MessageEmbed{
		Title:       "Achievement Unlocked",
		Description: fmt.Sprintf("**%s** earned **%s**", event.CharacterName, event.Title),
		Color:       0x9B59B6,
	}

	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		log.Printf("Failed to send achievement announcement for %s: %v", event.CharacterName, err)
	}
}
