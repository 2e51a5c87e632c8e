package explore

import (
	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
)

// Action selects a non-default explore behavior.
type Action string

// ActionBoss challenges the current zone's boss instead of rolling the
// outcome table.
const ActionBoss Action = "boss"

// ResultKind tags what an exploration roll produced.
type ResultKind string

// Exploration result kinds.
const (
	ResultEvent ResultKind = "event"
	ResultEnemy ResultKind = "enemy"
	ResultItem  ResultKind = "item"
	ResultText  ResultKind = "text"
)

// ExploreInput contains the player and an optional action override
type ExploreInput struct {
	Player *entities.Player
	Action Action
}

// ExploreOutput describes one exploration outcome. Exactly one of Event,
// Enemy, or Item is set for the matching Kind; Message is always set.
type ExploreOutput struct {
	Player  *entities.Player
	Kind    ResultKind
	Event   *catalog.EventDefinition
	Enemy   *entities.EnemySnapshot
	Item    *catalog.ItemDefinition
	Message string
}

// ResolveEventChoiceInput identifies a choice of the player's active event
type ResolveEventChoiceInput struct {
	Player   *entities.Player
	ChoiceID string
}

// ResolveEventChoiceOutput contains the applied outcome. Item is set when an
// item was granted, Enemy when the effect triggered combat.
type ResolveEventChoiceOutput struct {
	Player  *entities.Player
	Message string
	Item    *catalog.ItemDefinition
	Enemy   *entities.EnemySnapshot
}

// GatherInput names the gathering table to work
type GatherInput struct {
	Player *entities.Player
	Type   string
}

// GatherOutput contains the granted item and xp
type GatherOutput struct {
	Player  *entities.Player
	Item    *catalog.ItemDefinition
	XP      int
	Message string
}

// SetZoneInput contains the target zone index within the current world
type SetZoneInput struct {
	Player    *entities.Player
	ZoneIndex int
}

// SetZoneOutput contains the updated player
type SetZoneOutput struct {
	Player  *entities.Player
	Message string
}
