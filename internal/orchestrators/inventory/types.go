package inventory

import (
	"github.com/greenvalley/rpg-core/internal/entities"
)

// RepairLocation says where the item to repair lives.
type RepairLocation string

// Repair locations.
const (
	RepairEquipment RepairLocation = "equipment"
	RepairInventory RepairLocation = "inventory"
)

// EquipInput identifies an inventory item to equip
type EquipInput struct {
	Player         *entities.Player
	InventoryIndex int
}

// EquipOutput reports the slot the item landed in
type EquipOutput struct {
	Player *entities.Player
	Slot   entities.Slot
}

// UnequipInput identifies the slot to clear
type UnequipInput struct {
	Player *entities.Player
	Slot   entities.Slot
}

// UnequipOutput contains the updated player
type UnequipOutput struct {
	Player *entities.Player
}

// UseItemInput identifies an inventory consumable
type UseItemInput struct {
	Player         *entities.Player
	InventoryIndex int
}

// UseItemOutput contains the updated player and an effect summary
type UseItemOutput struct {
	Player  *entities.Player
	Message string
}

// StackInventoryInput contains the player whose materials to re-bucket
type StackInventoryInput struct {
	Player *entities.Player
}

// StackInventoryOutput contains the updated player
type StackInventoryOutput struct {
	Player  *entities.Player
	Message string
}

// SplitItemInput identifies the stack to split
type SplitItemInput struct {
	Player         *entities.Player
	InventoryIndex int
}

// SplitItemOutput contains the updated player
type SplitItemOutput struct {
	Player  *entities.Player
	Message string
}

// RepairItemInput locates an item by equipment slot or inventory index
type RepairItemInput struct {
	Player         *entities.Player
	Location       RepairLocation
	Slot           entities.Slot
	InventoryIndex int
}

// RepairItemOutput reports the gold charged
type RepairItemOutput struct {
	Player  *entities.Player
	Cost    int
	Message string
}

// BuyInput identifies the catalog item to purchase
type BuyInput struct {
	Player *entities.Player
	ItemID string
}

// BuyOutput reports the price paid
type BuyOutput struct {
	Player  *entities.Player
	Price   int
	Message string
}

// SellInput identifies the inventory stack to sell
type SellInput struct {
	Player         *entities.Player
	InventoryIndex int
}

// SellOutput reports the gold received
type SellOutput struct {
	Player   *entities.Player
	Proceeds int
	Message  string
}
