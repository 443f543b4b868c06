package entities

// ItemCategory classifies an item template
type ItemCategory string

const (
	ItemCategoryWeapon     ItemCategory = "weapon"
	ItemCategoryArmor      ItemCategory = "armor"
	ItemCategoryAccessory  ItemCategory = "accessory"
	ItemCategoryConsumable ItemCategory = "consumable"
	ItemCategoryMaterial   ItemCategory = "material"
	ItemCategoryFood       ItemCategory = "food"
)

// Rarity orders item templates from common to legendary
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var rarityRanks = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Rank returns the ordering position of the rarity, unknown rarities rank
// below common
func (r Rarity) Rank() int {
	if rank, ok := rarityRanks[r]; ok {
		return rank
	}
	return -1
}

// AttributeEndurance is the canonical name of the attribute that grants
// bonus health and energy capacity
const AttributeEndurance = "endurance"

// attributeAliases maps legacy attribute names, still present on old item
// data, to their canonical form
var attributeAliases = map[string]string{
	"stamina": AttributeEndurance,
}

// Item is an immutable item template. Possession and equipped state live on
// the Character, never here.
type Item struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Category    ItemCategory   `json:"category"`
	Rarity      Rarity         `json:"rarity"`
	Bonuses     map[string]int `json:"bonuses,omitempty"`
	Damage      int            `json:"damage,omitempty"`
	Defense     int            `json:"defense,omitempty"`
	Effect      string         `json:"effect,omitempty"`
	EffectValue int            `json:"effect_value,omitempty"`
}

// CanonicalBonuses returns the attribute bonus map with legacy names merged
// into their canonical form. All bonus arithmetic reads this map, never the
// raw one.
func (i *Item) CanonicalBonuses() map[string]int {
	if len(i.Bonuses) == 0 {
		return nil
	}

	canonical := make(map[string]int, len(i.Bonuses))
	for name, bonus := range i.Bonuses {
		if alias, ok := attributeAliases[name]; ok {
			name = alias
		}
		canonical[name] += bonus
	}
	return canonical
}

// BonusFor returns the item's canonical bonus for the named attribute,
// zero when absent
func (i *Item) BonusFor(attribute string) int {
	return i.CanonicalBonuses()[attribute]
}

// Slot returns the equipment slot this item belongs in, SlotNone for
// categories that cannot be equipped
func (i *Item) Slot() Slot {
	switch i.Category {
	case ItemCategoryWeapon:
		return SlotWeapon
	case ItemCategoryArmor:
		return SlotArmor
	case ItemCategoryAccessory:
		return SlotAccessory
	default:
		return SlotNone
	}
}
