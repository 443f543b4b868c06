package notifications

//go:generate mockgen -destination=mock/mock.go -package=mocknotifications -source=notifier.go

import (
	"context"
)

// LevelUpEvent describes a level-up announcement
type LevelUpEvent struct {
	CharacterName string
	NewLevel      int
	BonusHealth   int
	BonusEnergy   int
}

// AchievementEvent describes an achievement announcement
type AchievementEvent struct {
	CharacterName string
	Key           string
	Title         string
}

// Notifier announces player milestones. Implementations are fire-and-forget
// and best-effort: they never return errors, and a failed announcement must
// never affect game state.
type Notifier interface {
	// NotifyLevelUp announces a level-up
	NotifyLevelUp(ctx context.Context, event *LevelUpEvent)

	// NotifyAchievement announces an earned achievement
	NotifyAchievement(ctx context.Context, event *AchievementEvent)
}

// NoopNotifier discards all announcements. Used when no announcement
// channel is configured.
type NoopNotifier struct{}

// NewNoopNotifier creates a notifier that discards everything
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

// NotifyLevelUp implements Notifier
func (n *NoopNotifier) NotifyLevelUp(ctx context.Context, event *LevelUpEvent) {}

// NotifyAchievement implements Notifier
func (n *NoopNotifier) NotifyAchievement(ctx context.Context, event *AchievementEvent) {}
