package entities

import (
	"math"
	"time"

	rberr "github.com/venwyn/realm-bot/internal/errors"
)

// Slot identifies an equipment slot on a character
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
	SlotNone      Slot = "none"
)

// Skill names a raw character attribute tested by encounter choices
type Skill string

const (
	SkillStrength  Skill = "strength"
	SkillKnowledge Skill = "knowledge"
	SkillAgility   Skill = "agility"
	SkillMagic     Skill = "magic"
)

const (
	// capacity granted per point of endurance from equipment
	healthPerEndurance = 5
	energyPerEndurance = 4

	// LevelUpHealthBonus is the base max health granted on each level-up
	LevelUpHealthBonus = 5

	// LevelUpEnergyBonus is the base max energy granted on each level-up
	LevelUpEnergyBonus = 3

	// experience curve: baseExperience at level 1, growing 10% per level
	baseExperience   = 1000
	experienceGrowth = 1.1
)

// ErrNegativeExperience is returned when a negative amount is passed to
// AddExperience. Penalties go through ApplyResourceDelta instead, so a
// negative amount here is a caller bug and must not be clamped away.
var ErrNegativeExperience = rberr.InvalidArgument("experience amount cannot be negative")

// Character is the player's persistent avatar
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`

	Level      int `json:"level"`
	Experience int `json:"experience"`
	Coins      int `json:"coins"`

	BaseMaxHealth int `json:"base_max_health"`
	BaseMaxEnergy int `json:"base_max_energy"`
	Health        int `json:"health"`
	Energy        int `json:"energy"`

	Skills map[Skill]int `json:"skills"`

	EquippedSlots map[Slot]*Item `json:"equipped_slots"`

	CityKey      string   `json:"city_key"`
	Achievements []string `json:"achievements,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DerivedStats are the player-visible statistics computed from base
// capacities plus equipped items. They are recomputed on demand, never
// stored.
type DerivedStats struct {
	MaxHealth int
	MaxEnergy int
	Defense   int
}

// LevelUpResult reports whether applying experience advanced the character
type LevelUpResult struct {
	LeveledUp bool
	NewLevel  int
}

// ResourceDelta is a signed adjustment to a character's resources. Rewards
// and penalties use the same shape; consumers always add, never branch on
// sign conventions.
type ResourceDelta struct {
	Gold       int `json:"gold"`
	Experience int `json:"experience"`
	Health     int `json:"health"`
}

// DeriveStats computes effective maxima from base capacities and equipped
// items, and clamps current health/energy down to the new maxima. Capacity
// increases never raise current resources.
func (c *Character) DeriveStats() DerivedStats {
	endurance := 0
	defense := 0

	for _, item := range c.EquippedSlots {
		if item == nil {
			continue
		}
		endurance += item.BonusFor(AttributeEndurance)
		defense += item.Defense
	}

	stats := DerivedStats{
		MaxHealth: c.BaseMaxHealth + healthPerEndurance*endurance,
		MaxEnergy: c.BaseMaxEnergy + energyPerEndurance*endurance,
		Defense:   defense,
	}

	if c.Health > stats.MaxHealth {
		c.Health = stats.MaxHealth
	}
	if c.Energy > stats.MaxEnergy {
		c.Energy = stats.MaxEnergy
	}

	return stats
}

// ExperienceRequiredForLevel returns the experience needed to advance past
// the given level. Rounds half up.
func ExperienceRequiredForLevel(level int) int {
	if level <= 1 {
		return baseExperience
	}
	return int(math.Round(baseExperience * math.Pow(experienceGrowth, float64(level-1))))
}

// AddExperience adds a non-negative experience amount and advances the
// character at most one level. Overflow past a second level threshold is
// kept as experience; callers that can grant huge amounts loop until
// LeveledUp is false.
func (c *Character) AddExperience(amount int) (LevelUpResult, error) {
	if amount < 0 {
		return LevelUpResult{}, ErrNegativeExperience
	}

	newExperience := c.Experience + amount
	required := ExperienceRequiredForLevel(c.Level)

	if newExperience < required {
		c.Experience = newExperience
		return LevelUpResult{}, nil
	}

	c.Experience = newExperience - required
	c.Level++
	c.BaseMaxHealth += LevelUpHealthBonus
	c.BaseMaxEnergy += LevelUpEnergyBonus

	return LevelUpResult{LeveledUp: true, NewLevel: c.Level}, nil
}

// ApplyResourceDelta applies a signed gold/experience/health adjustment.
// Gold floors at zero. Health gains clamp to the effective maximum, losses
// floor at one. Positive experience routes through AddExperience and may
// level the character up; negative experience is applied directly and
// floors at zero.
func (c *Character) ApplyResourceDelta(delta ResourceDelta) LevelUpResult {
	c.Coins += delta.Gold
	if c.Coins < 0 {
		c.Coins = 0
	}

	if delta.Health != 0 {
		stats := c.DeriveStats()
		c.Health += delta.Health
		if delta.Health > 0 && c.Health > stats.MaxHealth {
			c.Health = stats.MaxHealth
		}
		if delta.Health < 0 && c.Health < 1 {
			c.Health = 1
		}
	}

	var result LevelUpResult
	if delta.Experience > 0 {
		// amount is positive, AddExperience cannot fail
		result, _ = c.AddExperience(delta.Experience)
	} else if delta.Experience < 0 {
		c.Experience += delta.Experience
		if c.Experience < 0 {
			c.Experience = 0
		}
	}

	return result
}

// SkillValue returns the character's value for the named skill, zero when
// the character has no such skill
func (c *Character) SkillValue(skill Skill) int {
	if c.Skills == nil {
		return 0
	}
	return c.Skills[skill]
}

// Equip places the item in its slot, replacing whatever was there, and
// re-derives stats so reduced capacity clamps current resources
func (c *Character) Equip(item *Item) error {
	if item == nil {
		return rberr.InvalidArgument("item cannot be nil")
	}

	slot := item.Slot()
	if slot == SlotNone {
		return rberr.InvalidArgumentf("item %q (%s) cannot be equipped", item.Key, item.Category)
	}

	if c.EquippedSlots == nil {
		c.EquippedSlots = make(map[Slot]*Item)
	}
	c.EquippedSlots[slot] = item
	c.DeriveStats()

	return nil
}

// Unequip clears the given slot and re-derives stats. Unequipping an empty
// slot is a no-op.
func (c *Character) Unequip(slot Slot) {
	if c.EquippedSlots == nil {
		return
	}
	delete(c.EquippedSlots, slot)
	c.DeriveStats()
}

// HasAchievement reports whether the achievement key was already granted
func (c *Character) HasAchievement(key string) bool {
	for _, earned := range c.Achievements {
		if earned == key {
			return true
		}
	}
	return false
}

// GrantAchievement records the achievement key. Returns false when it was
// already granted, so notifications fire once.
func (c *Character) GrantAchievement(key string) bool {
	if c.HasAchievement(key) {
		return false
	}
	c.Achievements = append(c.Achievements, key)
	return true
}

// Clone returns a deep copy so repositories can hand out snapshots without
// sharing mutable maps
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c

	if c.Skills != nil {
		clone.Skills = make(map[Skill]int, len(c.Skills))
		for skill, value := range c.Skills {
			clone.Skills[skill] = value
		}
	}

	if c.EquippedSlots != nil {
		clone.EquippedSlots = make(map[Slot]*Item, len(c.EquippedSlots))
		for slot, item := range c.EquippedSlots {
			clone.EquippedSlots[slot] = item
		}
	}

	if c.Achievements != nil {
		clone.Achievements = append([]string(nil), c.Achievements...)
	}

	return &clone
}
