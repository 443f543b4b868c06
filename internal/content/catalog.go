// Package content holds the static game catalog: the world map, item
// templates, and travel encounters. The original data lived in a hosted
// backend; here it ships with the binary and is served through the
// read-only repositories.
package content

import (
	"github.com/venwyn/realm-bot/internal/entities"
)

// Cities returns the world map
func Cities() []*entities.City {
	return []*entities.City{
		{Key: "eastford", Name: "Eastford", X: 20, Y: 30},
		{Key: "silverkeep", Name: "Silverkeep", X: 55, Y: 25},
		{Key: "thornwall", Name: "Thornwall", X: 80, Y: 60},
		{Key: "mirefen", Name: "Mirefen", X: 35, Y: 75},
		{Key: "duskharbor", Name: "Duskharbor", X: 5, Y: 90},
	}
}

// Items returns the item template catalog
func Items() []*entities.Item {
	return []*entities.Item{
		{
			Key:      "rusty-sword",
			Name:     "Rusty Sword",
			Category: entities.ItemCategoryWeapon,
			Rarity:   entities.RarityCommon,
			Damage:   3,
		},
		{
			Key:      "steel-sword",
			Name:     "Steel Sword",
			Category: entities.ItemCategoryWeapon,
			Rarity:   entities.RarityUncommon,
			Bonuses:  map[string]int{"strength": 1},
			Damage:   6,
		},
		{
			Key:      "iron-cuirass",
			Name:     "Iron Cuirass",
			Category: entities.ItemCategoryArmor,
			Rarity:   entities.RarityUncommon,
			Bonuses:  map[string]int{"endurance": 3},
			Defense:  4,
		},
		{
			// legacy template: predates the endurance rename
			Key:      "worn-hauberk",
			Name:     "Worn Hauberk",
			Category: entities.ItemCategoryArmor,
			Rarity:   entities.RarityCommon,
			Bonuses:  map[string]int{"stamina": 2},
			Defense:  2,
		},
		{
			Key:      "bear-talisman",
			Name:     "Bear Talisman",
			Category: entities.ItemCategoryAccessory,
			Rarity:   entities.RarityRare,
			Bonuses:  map[string]int{"endurance": 2, "strength": 1},
		},
		{
			Key:         "sage-ring",
			Name:        "Sage's Ring",
			Category:    entities.ItemCategoryAccessory,
			Rarity:      entities.RarityEpic,
			Bonuses:     map[string]int{"knowledge": 3},
			Effect:      "focus",
			EffectValue: 2,
		},
		{
			Key:         "hard-bread",
			Name:        "Hard Bread",
			Category:    entities.ItemCategoryFood,
			Rarity:      entities.RarityCommon,
			Effect:      "restore-energy",
			EffectValue: 10,
		},
	}
}

// ItemByKey returns the item template with the given key, nil when unknown
func ItemByKey(key string) *entities.Item {
	for _, item := range Items() {
		if item.Key == key {
			return item
		}
	}
	return nil
}

// Encounters returns the travel encounter catalog
func Encounters() []*entities.Encounter {
	return []*entities.Encounter{
		{
			Key:         "collapsed-bridge",
			Name:        "Collapsed Bridge",
			Description: "The river bridge has collapsed. A narrow ledge remains along the gorge wall.",
			Choices: []entities.Choice{
				{
					Label:          "Climb across the ledge",
					Skill:          entities.SkillAgility,
					Difficulty:     12,
					SuccessText:    "You cross the ledge without slipping and find a dropped coin purse.",
					FailureText:    "You slip and scrape down the bank into the shallows.",
					SuccessReward:  entities.ResourceDelta{Gold: 15, Experience: 40},
					FailurePenalty: entities.ResourceDelta{Health: -8},
				},
				{
					Label:          "Wade through the current",
					Skill:          entities.SkillStrength,
					Difficulty:     10,
					SuccessText:    "You brace against the rocks and push through the water.",
					FailureText:    "The current drags you under and empties your pockets.",
					SuccessReward:  entities.ResourceDelta{Experience: 25},
					FailurePenalty: entities.ResourceDelta{Gold: -15, Health: -5},
				},
			},
		},
		{
			Key:         "wandering-scholar",
			Name:        "Wandering Scholar",
			Description: "A scholar argues with her mule beside a broken cart, scrolls scattered across the road.",
			Choices: []entities.Choice{
				{
					Label:          "Debate the old texts",
					Skill:          entities.SkillKnowledge,
					Difficulty:     11,
					SuccessText:    "She concedes the point and pays you for the lesson.",
					FailureText:    "You misquote the chronicle and wager away a few coins.",
					SuccessReward:  entities.ResourceDelta{Gold: 25, Experience: 35},
					FailurePenalty: entities.ResourceDelta{Gold: -10},
				},
				{
					Label:          "Lift the cart back onto the road",
					Skill:          entities.SkillStrength,
					Difficulty:     13,
					SuccessText:    "The cart settles onto its wheels. She rewards your back, not your wit.",
					FailureText:    "The cart slips and lands on your foot.",
					SuccessReward:  entities.ResourceDelta{Gold: 20, Experience: 30},
					FailurePenalty: entities.ResourceDelta{Health: -6},
				},
			},
		},
		{
			Key:         "glimmering-shrine",
			Name:        "Glimmering Shrine",
			Description: "A roadside shrine hums faintly. Something behind the altar stone glows.",
			Choices: []entities.Choice{
				{
					Label:          "Channel the shrine's energy",
					Skill:          entities.SkillMagic,
					Difficulty:     14,
					SuccessText:    "Warm light knits your wounds closed.",
					FailureText:    "The backlash sears your palms.",
					SuccessReward:  entities.ResourceDelta{Experience: 60, Health: 15},
					FailurePenalty: entities.ResourceDelta{Health: -12},
				},
				{
					Label:          "Pry out the glowing stone",
					Skill:          entities.SkillAgility,
					Difficulty:     12,
					SuccessText:    "The stone comes free. A jeweler will pay well for it.",
					FailureText:    "The altar grinds shut, pinching your fingers.",
					SuccessReward:  entities.ResourceDelta{Gold: 40, Experience: 20},
					FailurePenalty: entities.ResourceDelta{Health: -4},
				},
				{
					Label:          "Leave an offering and move on",
					Skill:          entities.SkillKnowledge,
					Difficulty:     8,
					SuccessText:    "The shrine dims approvingly. The road feels shorter.",
					FailureText:    "Your coin rolls into a crack, unacknowledged.",
					SuccessReward:  entities.ResourceDelta{Experience: 15},
					FailurePenalty: entities.ResourceDelta{Gold: -5},
				},
			},
		},
	}
}
