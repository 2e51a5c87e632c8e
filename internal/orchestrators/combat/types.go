package combat

import (
	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
)

// EnterCombatInput defines the input for starting combat
type EnterCombatInput struct {
	Player  *entities.Player
	EnemyID string
}

// EnterCombatOutput defines the output for starting combat
type EnterCombatOutput struct {
	Player *entities.Player
	Enemy  *entities.EnemySnapshot
}

// AttackInput defines the input for one attack turn
type AttackInput struct {
	Player *entities.Player
}

// LootDrop is one granted loot roll
type LootDrop struct {
	Item     *catalog.ItemDefinition
	Quantity int
}

// AttackOutput defines the output of one attack turn
type AttackOutput struct {
	Player  *entities.Player
	Log     []string
	Victory bool
	Defeat  bool
	Loot    []LootDrop
}

// HealInput defines the input for healing
type HealInput struct {
	Player *entities.Player
}

// HealOutput defines the output for healing
type HealOutput struct {
	Player  *entities.Player
	Message string
}

// FleeInput defines the input for a flee attempt
type FleeInput struct {
	Player *entities.Player
}

// FleeOutput defines the output of a flee attempt
type FleeOutput struct {
	Player  *entities.Player
	Success bool
	Message string
}
