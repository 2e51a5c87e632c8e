package game

import (
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/orchestrators/explore"
	"github.com/greenvalley/rpg-core/internal/orchestrators/inventory"
)

// CreatePlayerInput contains the identity of the player to register
type CreatePlayerInput struct {
	ID   string
	Name string
}

// CreatePlayerOutput contains the stored starting state
type CreatePlayerOutput struct {
	Player *entities.Player
}

// GetPlayerInput identifies the player to load
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput contains the loaded player
type GetPlayerOutput struct {
	Player *entities.Player
}

// ActionInput is the input for actions that need no parameters beyond the
// player
type ActionInput struct {
	PlayerID string
}

// ExploreInput contains an optional action override
type ExploreInput struct {
	PlayerID string
	Action   explore.Action
}

// ResolveEventChoiceInput identifies a choice of the player's active event
type ResolveEventChoiceInput struct {
	PlayerID string
	ChoiceID string
}

// GatherInput names the gathering table to work
type GatherInput struct {
	PlayerID string
	Type     string
}

// SetZoneInput contains the target zone index
type SetZoneInput struct {
	PlayerID  string
	ZoneIndex int
}

// GachaPullInput identifies a banner and the number of pulls
type GachaPullInput struct {
	PlayerID string
	BannerID string
	Amount   int
}

// InventoryIndexInput addresses one inventory stack
type InventoryIndexInput struct {
	PlayerID string
	Index    int
}

// UnequipInput identifies the equipment slot to clear
type UnequipInput struct {
	PlayerID string
	Slot     entities.Slot
}

// RepairItemInput locates the item to repair
type RepairItemInput struct {
	PlayerID string
	Location inventory.RepairLocation
	Slot     entities.Slot
	Index    int
}

// BuyInput identifies the catalog item to purchase
type BuyInput struct {
	PlayerID string
	ItemID   string
}

// ClaimQuestInput identifies a quest in the player's active set
type ClaimQuestInput struct {
	PlayerID   string
	QuestIndex int
}
