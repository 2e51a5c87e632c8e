package catalog

import "time"

// Rarity names an item or enemy rarity tier. Tiers and their roll weights are
// declared by the content tables, in order from most to least common.
type Rarity string

// Rarity tiers shipped with the default content.
const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityBoss      Rarity = "Boss"
)

// RarityWeight is one entry of the weighted rarity table. A zero weight makes
// the tier unreachable by random rolls (the Boss tier).
type RarityWeight struct {
	Name   Rarity `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// ItemType classifies an item and determines its equipment slot, if any.
type ItemType string

// Item types.
const (
	ItemTypeWeapon     ItemType = "Weapon"
	ItemTypeArmor      ItemType = "Armor"
	ItemTypeHead       ItemType = "Head"
	ItemTypeLegs       ItemType = "Legs"
	ItemTypeFeet       ItemType = "Feet"
	ItemTypeAccessory  ItemType = "Accessory"
	ItemTypeTool       ItemType = "Tool"
	ItemTypeConsumable ItemType = "Consumable"
	ItemTypeMaterial   ItemType = "Material"
)

// EquippableTypes lists the types that occupy a typed equipment slot.
// Tools are also equippable but route to the shared tool slots.
var EquippableTypes = []ItemType{
	ItemTypeWeapon, ItemTypeArmor, ItemTypeHead,
	ItemTypeLegs, ItemTypeFeet, ItemTypeAccessory,
}

// ItemStats are the stat modifiers an equipped item contributes.
// Damage feeds both the minimum and maximum damage stat.
type ItemStats struct {
	Damage  int `yaml:"damage,omitempty"`
	Defense int `yaml:"defense,omitempty"`
	Luck    int `yaml:"luck,omitempty"`
}

// ConsumableEffect is the effect applied when a consumable item is used.
type ConsumableEffect struct {
	Kind   EffectKind `yaml:"kind"`
	Amount int        `yaml:"amount"`
}

// ItemDefinition is an immutable item template.
type ItemDefinition struct {
	ID             string            `yaml:"id"`
	Name           string            `yaml:"name"`
	Type           ItemType          `yaml:"type"`
	Rarity         Rarity            `yaml:"rarity"`
	Value          int               `yaml:"value"`
	Stats          *ItemStats        `yaml:"stats,omitempty"`
	MaxDurability  int               `yaml:"maxDurability,omitempty"`
	Effect         *ConsumableEffect `yaml:"effect,omitempty"`
	GachaExclusive bool              `yaml:"gachaExclusive,omitempty"`
	Description    string            `yaml:"description,omitempty"`
}

// Equippable reports whether the item goes into an equipment slot.
func (d *ItemDefinition) Equippable() bool {
	if d.Type == ItemTypeTool {
		return true
	}
	for _, t := range EquippableTypes {
		if d.Type == t {
			return true
		}
	}
	return false
}

// LootEntry is one independently-rolled drop of an enemy loot table.
// MinQty/MaxQty of 0 mean a single unit.
type LootEntry struct {
	ItemID string  `yaml:"itemId"`
	Chance float64 `yaml:"chance"`
	MinQty int     `yaml:"minQty,omitempty"`
	MaxQty int     `yaml:"maxQty,omitempty"`
}

// EnemyDefinition is an immutable enemy template.
type EnemyDefinition struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	MaxHP  int         `yaml:"maxHp"`
	XP     int         `yaml:"xp"`
	Gold   int         `yaml:"gold"`
	Level  int         `yaml:"level,omitempty"`
	Rarity Rarity      `yaml:"rarity"`
	Loot   []LootEntry `yaml:"loot,omitempty"`
}

// EventType splits the event pool for the exploration event branch.
type EventType string

// Event types.
const (
	EventTypeNarrative EventType = "narrative"
	EventTypeGathering EventType = "gathering"
)

// RequirementKind tags the Requirement variant.
type RequirementKind string

// Requirement variants.
const (
	RequirementGold RequirementKind = "gold"
	RequirementItem RequirementKind = "item"
	RequirementStat RequirementKind = "stat"
)

// Requirement gates an event choice. Exactly the fields of its Kind are set:
// Gold uses Amount; Item uses ItemID/ItemName/Consume; Stat uses Stat/Amount.
type Requirement struct {
	Kind     RequirementKind `yaml:"kind"`
	Amount   int             `yaml:"amount,omitempty"`
	ItemID   string          `yaml:"itemId,omitempty"`
	ItemName string          `yaml:"itemName,omitempty"`
	Consume  bool            `yaml:"consume,omitempty"`
	Stat     string          `yaml:"stat,omitempty"`
}

// EffectKind tags the Effect variant.
type EffectKind string

// Effect variants.
const (
	EffectHeal   EffectKind = "heal"
	EffectDamage EffectKind = "damage"
	EffectGold   EffectKind = "gold"
	EffectXP     EffectKind = "xp"
	EffectItem   EffectKind = "item"
	EffectCombat EffectKind = "combat"
	EffectText   EffectKind = "text"
)

// Effect is the outcome of an event choice. A nil Chance means certain; an
// explicit 0 always fails. On a failed roll Fail is applied instead (a nil
// Fail is a no-op).
type Effect struct {
	Kind        EffectKind `yaml:"kind"`
	Amount      int        `yaml:"amount,omitempty"`
	Chance      *float64   `yaml:"chance,omitempty"`
	Rarity      Rarity     `yaml:"rarity,omitempty"`
	ItemID      string     `yaml:"itemId,omitempty"`
	EnemyRarity Rarity     `yaml:"enemyRarity,omitempty"`
	Message     string     `yaml:"message,omitempty"`
	Fail        *Effect    `yaml:"fail,omitempty"`
}

// SuccessChance returns the roll probability, defaulting to certain.
func (e *Effect) SuccessChance() float64 {
	if e.Chance == nil {
		return 1.0
	}
	return *e.Chance
}

// EventChoice is one selectable option of an event.
type EventChoice struct {
	ID          string       `yaml:"id"`
	Text        string       `yaml:"text"`
	Requirement *Requirement `yaml:"requirement,omitempty"`
	Effect      Effect       `yaml:"effect"`
}

// EventDefinition is an immutable choice-based exploration event.
type EventDefinition struct {
	ID          string        `yaml:"id"`
	Type        EventType     `yaml:"type"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Choices     []EventChoice `yaml:"choices"`
}

// Choice finds a choice by id, nil if absent.
func (d *EventDefinition) Choice(id string) *EventChoice {
	for i := range d.Choices {
		if d.Choices[i].ID == id {
			return &d.Choices[i]
		}
	}
	return nil
}

// ZoneDefinition is one zone of a world. Zones are ordered; the index within
// WorldDefinition.Zones is the zone's identity.
type ZoneDefinition struct {
	Name        string `yaml:"name"`
	MinLevel    int    `yaml:"minLevel"`
	BossID      string `yaml:"bossId,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// WorldDefinition is an immutable world with its ordered zones.
type WorldDefinition struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	MinLevel    int              `yaml:"minLevel"`
	Zones       []ZoneDefinition `yaml:"zones"`
}

// RankDefinition is a level-gated player title.
type RankDefinition struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	MinLevel int    `yaml:"minLevel"`
}

// DifficultyMultipliers scale combat and loot outcomes.
type DifficultyMultipliers struct {
	XP             float64 `yaml:"xp"`
	EnemyHP        float64 `yaml:"enemyHp"`
	EnemyDmg       float64 `yaml:"enemyDmg"`
	LootChance     float64 `yaml:"lootChance"`
	RareLootChance float64 `yaml:"rareLootChance"`
}

// DifficultyDefinition is a selectable difficulty setting.
type DifficultyDefinition struct {
	ID          string                `yaml:"id"`
	Name        string                `yaml:"name"`
	Description string                `yaml:"description,omitempty"`
	Default     bool                  `yaml:"default,omitempty"`
	Multipliers DifficultyMultipliers `yaml:"multipliers"`
}

// GachaPoolType filters a banner's item pool.
type GachaPoolType string

// Gacha pool types.
const (
	GachaPoolAll       GachaPoolType = "all"
	GachaPoolEquipment GachaPoolType = "equipment"
)

// GachaRate is one bucket of a banner's rarity-percentage table. Buckets are
// walked in declared order when resolving a pull.
type GachaRate struct {
	Rarity  Rarity  `yaml:"rarity"`
	Percent float64 `yaml:"percent"`
}

// GachaBanner is an immutable gacha offering.
type GachaBanner struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Cost        int           `yaml:"cost"`
	Rates       []GachaRate   `yaml:"rates"`
	PoolType    GachaPoolType `yaml:"poolType"`
}

// QuestKind tags a quest template.
type QuestKind string

// Quest kinds.
const (
	QuestHunt    QuestKind = "hunt"
	QuestCollect QuestKind = "collect"
)

// QuestReward is the payout of a claimed quest.
type QuestReward struct {
	Gold int `yaml:"gold"`
	XP   int `yaml:"xp"`
}

// QuestTemplate is an immutable daily quest template.
type QuestTemplate struct {
	ID          string      `yaml:"id"`
	Kind        QuestKind   `yaml:"kind"`
	TargetID    string      `yaml:"targetId"`
	TargetName  string      `yaml:"targetName"`
	Amount      int         `yaml:"amount"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Reward      QuestReward `yaml:"reward"`
}

// GatherTier is one bucket of a gathering probability table. Tiers are walked
// in order; Threshold is the upper bound of the cumulative roll in [0,1).
type GatherTier struct {
	Threshold float64 `yaml:"threshold"`
	ItemID    string  `yaml:"itemId"`
	XP        int     `yaml:"xp"`
	Message   string  `yaml:"message"`
}

// GatherTable is the tier table for one gathering type.
type GatherTable struct {
	Type         string       `yaml:"type"`
	RequiredTool string       `yaml:"requiredTool,omitempty"`
	Tiers        []GatherTier `yaml:"tiers"`
}

// Mechanics holds the tunable numeric constants of the simulation.
type Mechanics struct {
	PlayerBaseHP         int     `yaml:"playerBaseHp"`
	PlayerBaseDamageMin  int     `yaml:"playerBaseDamageMin"`
	PlayerBaseDamageMax  int     `yaml:"playerBaseDamageMax"`
	HealCost             int     `yaml:"healCost"`
	HealAmount           int     `yaml:"healAmount"`
	XPLevelMultiplier    float64 `yaml:"xpLevelMultiplier"`
	HPGainPerLevel       int     `yaml:"hpGainPerLevel"`
	StackLimit           int     `yaml:"stackLimit"`
	PityThreshold        int     `yaml:"pityThreshold"`
	GatherCooldownSecs   int     `yaml:"gatherCooldownSecs"`
	ShopMarkup           float64 `yaml:"shopMarkup"`
	LuckRarityBonus      float64 `yaml:"luckRarityBonus"`
	LuckLootChanceBonus  float64 `yaml:"luckLootChanceBonus"`
	FleeBaseChance       int     `yaml:"fleeBaseChance"`
	FleeLuckBonus        int     `yaml:"fleeLuckBonus"`
	FleeEnemyLevelMalus  int     `yaml:"fleeEnemyLevelMalus"`
	FleeFailDamageFrac   float64 `yaml:"fleeFailDamageFrac"`
	RepairCostFrac       float64 `yaml:"repairCostFrac"`
	DailyQuestCount      int     `yaml:"dailyQuestCount"`
	MasteryPerKill       int     `yaml:"masteryPerKill"`
	MasteryPerEvent      int     `yaml:"masteryPerEvent"`
	MasteryPerItemFind   int     `yaml:"masteryPerItemFind"`
	MasteryPerTextFind   int     `yaml:"masteryPerTextFind"`
	MasteryBossThreshold int     `yaml:"masteryBossThreshold"`
}

// GatherCooldown returns the per-type gathering cooldown.
func (m Mechanics) GatherCooldown() time.Duration {
	return time.Duration(m.GatherCooldownSecs) * time.Second
}
