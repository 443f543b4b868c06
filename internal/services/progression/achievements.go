package progression

import (
	"github.com/venwyn/realm-bot/internal/entities"
)

// achievement is a milestone granted once per character
type achievement struct {
	key    string
	title  string
	earned func(char *entities.Character) bool
}

var milestones = []achievement{
	{
		key:    "level-5",
		title:  "Seasoned Adventurer",
		earned: func(char *entities.Character) bool { return char.Level >= 5 },
	},
	{
		key:    "level-10",
		title:  "Veteran of the Roads",
		earned: func(char *entities.Character) bool { return char.Level >= 10 },
	},
	{
		key:    "level-20",
		title:  "Living Legend",
		earned: func(char *entities.Character) bool { return char.Level >= 20 },
	},
	{
		key:    "coins-1000",
		title:  "Heavy Purse",
		earned: func(char *entities.Character) bool { return char.Coins >= 1000 },
	},
}

// checkAchievements grants any newly earned milestones and returns them.
// Already-granted keys are skipped so each announcement fires once.
func (s *service) checkAchievements(char *entities.Character) []achievement {
	var granted []achievement
	for _, milestone := range milestones {
		if !milestone.earned(char) {
			continue
		}
		if char.GrantAchievement(milestone.key) {
			granted = append(granted, milestone)
		}
	}
	return granted
}
