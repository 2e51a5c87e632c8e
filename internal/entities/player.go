package entities

import "fmt"

// MasteryKey builds the ZoneMastery map key for a world/zone pair.
func MasteryKey(worldID string, zoneIndex int) string {
	return fmt.Sprintf("%s_%d", worldID, zoneIndex)
}

// CurrentSchemaVersion is stamped on every persisted player record. Loads of
// older records are migrated forward before use.
const CurrentSchemaVersion = 1

// Slot identifies an equipment slot.
type Slot string

// Equipment slots.
const (
	SlotHead      Slot = "head"
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotLegs      Slot = "legs"
	SlotFeet      Slot = "feet"
	SlotAccessory Slot = "accessory"
	SlotTool1     Slot = "tool1"
	SlotTool2     Slot = "tool2"
)

// AllSlots lists every equipment slot in display order.
var AllSlots = []Slot{
	SlotHead, SlotWeapon, SlotArmor, SlotLegs,
	SlotFeet, SlotAccessory, SlotTool1, SlotTool2,
}

// Stats is a bundle of combat-relevant stats. BaseStats holds the player's
// intrinsic values; aggregated stats add equipment contributions on top.
type Stats struct {
	DamageMin int
	DamageMax int
	Defense   int
	Luck      int
}

// Add returns the element-wise sum of two stat bundles.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		DamageMin: s.DamageMin + o.DamageMin,
		DamageMax: s.DamageMax + o.DamageMax,
		Defense:   s.Defense + o.Defense,
		Luck:      s.Luck + o.Luck,
	}
}

// ItemInstance is an owned copy of a catalog item. Equipment carries
// durability; materials carry a stack quantity.
type ItemInstance struct {
	InstanceID string
	ItemID     string
	Quantity   int
	Durability int
}

// Broken reports whether a durability-bearing instance has worn out.
// Instances of items without durability never break.
func (i *ItemInstance) Broken(maxDurability int) bool {
	return maxDurability > 0 && i.Durability <= 0
}

// EnemySnapshot is the mutable copy of an enemy taken when combat starts.
// Difficulty multipliers are already applied.
type EnemySnapshot struct {
	EnemyID string
	Name    string
	Rarity  string
	Level   int
	HP      int
	MaxHP   int
	XP      int
	Gold    int
}

// CombatState tracks whether the player is locked in combat and with what.
type CombatState struct {
	InCombat bool
	Enemy    *EnemySnapshot
}

// QuestProgress is one active daily quest.
type QuestProgress struct {
	TemplateID  string
	Progress    int
	IsCompleted bool
	IsClaimed   bool
}

// QuestLog holds the player's daily quest set and when it was generated.
type QuestLog struct {
	Active        []QuestProgress
	LastGenerated int64
}

// Player is the full persisted game state of one player.
type Player struct {
	ID            string
	Name          string
	SchemaVersion int

	// Version increments on every save and guards concurrent writers.
	Version int64

	Level     int
	XP        int
	MaxXP     int
	CurrentHP int
	MaxHP     int
	Gold      int

	BaseStats  Stats
	Aggregated Stats

	RankID       string
	DifficultyID string

	CurrentWorld  string
	CurrentZone   int
	UnlockedZones map[string]int
	ZoneMastery   map[string]int

	Equipment map[Slot]*ItemInstance
	Inventory []ItemInstance

	Pity int

	Combat        CombatState
	ActiveEventID string

	// Gathering maps a gather type to the unix time of its last use.
	Gathering map[string]int64

	Quests QuestLog

	CreatedAt int64
	UpdatedAt int64
}

// InventoryCount sums the owned quantity of an item across all stacks.
func (p *Player) InventoryCount(itemID string) int {
	total := 0
	for i := range p.Inventory {
		if p.Inventory[i].ItemID == itemID {
			total += max(1, p.Inventory[i].Quantity)
		}
	}
	return total
}

// HasItem reports whether the item is present in the inventory or equipped.
func (p *Player) HasItem(itemID string) bool {
	for i := range p.Inventory {
		if p.Inventory[i].ItemID == itemID {
			return true
		}
	}
	for _, inst := range p.Equipment {
		if inst != nil && inst.ItemID == itemID {
			return true
		}
	}
	return false
}
