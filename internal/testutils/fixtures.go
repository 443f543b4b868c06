package testutils

import (
	"github.com/venwyn/realm-bot/internal/entities"
)

// CreateTestCharacter builds a level-1 character with sane capacities for
// repository and service tests
func CreateTestCharacter(id, ownerID, name string) *entities.Character {
	return &entities.Character{
		ID:            id,
		OwnerID:       ownerID,
		Name:          name,
		Level:         1,
		Experience:    0,
		Coins:         100,
		BaseMaxHealth: 100,
		BaseMaxEnergy: 100,
		Health:        100,
		Energy:        100,
		Skills: map[entities.Skill]int{
			entities.SkillStrength:  5,
			entities.SkillKnowledge: 3,
			entities.SkillAgility:   4,
			entities.SkillMagic:     1,
		},
		CityKey: "eastford",
	}
}

// CreateTestEncounter builds a two-choice encounter for resolver tests
func CreateTestEncounter(key string) *entities.Encounter {
	return &entities.Encounter{
		Key:         key,
		Name:        "Collapsed Bridge",
		Description: "The river bridge has collapsed. A narrow ledge remains.",
		Choices: []entities.Choice{
			{
				Label:          "Climb across the ledge",
				Skill:          entities.SkillAgility,
				Difficulty:     12,
				SuccessText:    "You cross without slipping.",
				FailureText:    "You slip and scrape down the bank.",
				SuccessReward:  entities.ResourceDelta{Gold: 10, Experience: 40},
				FailurePenalty: entities.ResourceDelta{Health: -8},
			},
			{
				Label:          "Wade through the current",
				Skill:          entities.SkillStrength,
				Difficulty:     10,
				SuccessText:    "You push through the water.",
				FailureText:    "The current drags you under.",
				SuccessReward:  entities.ResourceDelta{Experience: 25},
				FailurePenalty: entities.ResourceDelta{Gold: -15, Health: -5},
			},
		},
	}
}
