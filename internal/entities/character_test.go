package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
)

func newTestCharacter() *entities.Character {
	return &entities.Character{
		ID:            "char-1",
		OwnerID:       "user-1",
		Name:          "Theron",
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
		},
	}
}

func TestExperienceRequiredForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{level: 0, want: 1000},
		{level: 1, want: 1000},
		{level: 2, want: 1100},
		{level: 3, want: 1210},
		{level: 4, want: 1331},
		{level: 10, want: 2358},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, entities.ExperienceRequiredForLevel(tt.level), "level %d", tt.level)
	}
}

func TestExperienceRequiredForLevel_Monotonic(t *testing.T) {
	for level := 1; level < 100; level++ {
		assert.Greater(t,
			entities.ExperienceRequiredForLevel(level+1),
			entities.ExperienceRequiredForLevel(level),
			"curve must increase at level %d", level)
	}
}

func TestAddExperience_LevelUp(t *testing.T) {
	char := newTestCharacter()
	char.Experience = 950

	result, err := char.AddExperience(100)
	require.NoError(t, err)

	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.NewLevel)
	assert.Equal(t, 2, char.Level)
	assert.Equal(t, 50, char.Experience, "950+100 minus the 1000 requirement")
	assert.Equal(t, 105, char.BaseMaxHealth)
	assert.Equal(t, 103, char.BaseMaxEnergy)
}

func TestAddExperience_BelowThreshold(t *testing.T) {
	char := newTestCharacter()
	char.Experience = 950

	result, err := char.AddExperience(10)
	require.NoError(t, err)

	assert.False(t, result.LeveledUp)
	assert.Equal(t, 1, char.Level)
	assert.Equal(t, 960, char.Experience)
	assert.Equal(t, 100, char.BaseMaxHealth)
	assert.Equal(t, 100, char.BaseMaxEnergy)
}

func TestAddExperience_SingleStepOnly(t *testing.T) {
	char := newTestCharacter()

	// 2500 clears level 1 (1000) and would clear level 2 (1100), but a
	// single call only advances one level
	result, err := char.AddExperience(2500)
	require.NoError(t, err)

	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, char.Level)
	assert.Equal(t, 1500, char.Experience)

	// the caller loops to settle the remainder
	result, err = char.AddExperience(0)
	require.NoError(t, err)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 3, char.Level)
	assert.Equal(t, 400, char.Experience)
}

func TestAddExperience_RejectsNegativeAmount(t *testing.T) {
	char := newTestCharacter()
	char.Experience = 500

	_, err := char.AddExperience(-10)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrNegativeExperience)
	assert.True(t, rberr.IsInvalidArgument(err))
	assert.Equal(t, 500, char.Experience, "rejected amount must not be applied")
}

func TestDeriveStats_EquipmentBonuses(t *testing.T) {
	char := newTestCharacter()
	char.EquippedSlots = map[entities.Slot]*entities.Item{
		entities.SlotArmor: {
			Key:      "iron-cuirass",
			Category: entities.ItemCategoryArmor,
			Bonuses:  map[string]int{"endurance": 3},
			Defense:  4,
		},
		entities.SlotAccessory: {
			Key:      "bear-talisman",
			Category: entities.ItemCategoryAccessory,
			Bonuses:  map[string]int{"endurance": 2},
		},
	}

	stats := char.DeriveStats()

	assert.Equal(t, 125, stats.MaxHealth, "100 + 5*5")
	assert.Equal(t, 120, stats.MaxEnergy, "100 + 4*5")
	assert.Equal(t, 4, stats.Defense)
}

func TestDeriveStats_LegacyAttributeAlias(t *testing.T) {
	char := newTestCharacter()
	char.EquippedSlots = map[entities.Slot]*entities.Item{
		// old item data stored endurance under "stamina"; both names are
		// the same logical quantity and must sum together
		entities.SlotArmor: {
			Key:      "worn-hauberk",
			Category: entities.ItemCategoryArmor,
			Bonuses:  map[string]int{"stamina": 2},
		},
		entities.SlotAccessory: {
			Key:      "bear-talisman",
			Category: entities.ItemCategoryAccessory,
			Bonuses:  map[string]int{"endurance": 3},
		},
	}

	stats := char.DeriveStats()

	assert.Equal(t, 125, stats.MaxHealth)
	assert.Equal(t, 120, stats.MaxEnergy)
}

func TestDeriveStats_ClampsCurrentResourcesDown(t *testing.T) {
	char := newTestCharacter()
	talisman := &entities.Item{
		Key:      "bear-talisman",
		Category: entities.ItemCategoryAccessory,
		Bonuses:  map[string]int{"endurance": 5},
	}
	require.NoError(t, char.Equip(talisman))

	stats := char.DeriveStats()
	assert.Equal(t, 125, stats.MaxHealth)
	assert.Equal(t, 100, char.Health, "capacity increase never raises current health")

	char.Health = 125
	char.Energy = 120

	char.Unequip(entities.SlotAccessory)

	stats = char.DeriveStats()
	assert.Equal(t, 100, stats.MaxHealth)
	assert.Equal(t, 100, char.Health, "current health clamps down with the max")
	assert.Equal(t, 100, char.Energy)
}

func TestApplyResourceDelta_Reward(t *testing.T) {
	char := newTestCharacter()
	char.Health = 90

	result := char.ApplyResourceDelta(entities.ResourceDelta{Gold: 50, Experience: 100, Health: 5})

	assert.False(t, result.LeveledUp)
	assert.Equal(t, 150, char.Coins)
	assert.Equal(t, 100, char.Experience)
	assert.Equal(t, 95, char.Health)
}

func TestApplyResourceDelta_RewardCanLevelUp(t *testing.T) {
	char := newTestCharacter()
	char.Experience = 950

	result := char.ApplyResourceDelta(entities.ResourceDelta{Experience: 100})

	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.NewLevel)
	assert.Equal(t, 50, char.Experience)
}

func TestApplyResourceDelta_PenaltyFloors(t *testing.T) {
	char := newTestCharacter()
	char.Coins = 20
	char.Experience = 30
	char.Health = 10

	result := char.ApplyResourceDelta(entities.ResourceDelta{Gold: -50, Experience: -100, Health: -25})

	assert.False(t, result.LeveledUp)
	assert.Equal(t, 0, char.Coins, "gold never goes negative")
	assert.Equal(t, 0, char.Experience, "experience never goes negative")
	assert.Equal(t, 1, char.Health, "health losses floor at one")
}

func TestApplyResourceDelta_HealthClampsToEffectiveMax(t *testing.T) {
	char := newTestCharacter()
	char.Health = 95

	char.ApplyResourceDelta(entities.ResourceDelta{Health: 50})
	assert.Equal(t, 100, char.Health)

	// with endurance equipment the ceiling moves up
	require.NoError(t, char.Equip(&entities.Item{
		Key:      "bear-talisman",
		Category: entities.ItemCategoryAccessory,
		Bonuses:  map[string]int{"endurance": 2},
	}))
	char.ApplyResourceDelta(entities.ResourceDelta{Health: 50})
	assert.Equal(t, 110, char.Health)
}

func TestEquip_RejectsUnequippableCategories(t *testing.T) {
	char := newTestCharacter()

	err := char.Equip(&entities.Item{Key: "hard-bread", Category: entities.ItemCategoryFood})
	require.Error(t, err)
	assert.True(t, rberr.IsInvalidArgument(err))

	err = char.Equip(nil)
	require.Error(t, err)
	assert.True(t, rberr.IsInvalidArgument(err))
}

func TestEquip_ReplacesSlotOccupant(t *testing.T) {
	char := newTestCharacter()

	require.NoError(t, char.Equip(&entities.Item{Key: "rusty-sword", Category: entities.ItemCategoryWeapon}))
	require.NoError(t, char.Equip(&entities.Item{Key: "steel-sword", Category: entities.ItemCategoryWeapon}))

	require.Len(t, char.EquippedSlots, 1)
	assert.Equal(t, "steel-sword", char.EquippedSlots[entities.SlotWeapon].Key)
}

func TestSkillValue_DefaultsToZero(t *testing.T) {
	char := newTestCharacter()
	assert.Equal(t, 5, char.SkillValue(entities.SkillStrength))
	assert.Equal(t, 0, char.SkillValue(entities.SkillMagic))

	char.Skills = nil
	assert.Equal(t, 0, char.SkillValue(entities.SkillStrength))
}

func TestGrantAchievement_FiresOnce(t *testing.T) {
	char := newTestCharacter()

	assert.True(t, char.GrantAchievement("level-5"))
	assert.False(t, char.GrantAchievement("level-5"))
	assert.True(t, char.HasAchievement("level-5"))
}

func TestClone_IsDeep(t *testing.T) {
	char := newTestCharacter()
	require.NoError(t, char.Equip(&entities.Item{Key: "rusty-sword", Category: entities.ItemCategoryWeapon}))
	char.GrantAchievement("first-steps")

	clone := char.Clone()
	clone.Skills[entities.SkillStrength] = 99
	clone.EquippedSlots[entities.SlotWeapon] = nil
	clone.Achievements[0] = "changed"

	assert.Equal(t, 5, char.Skills[entities.SkillStrength])
	assert.Equal(t, "rusty-sword", char.EquippedSlots[entities.SlotWeapon].Key)
	assert.Equal(t, "first-steps", char.Achievements[0])
}
