// Package inventory implements the inventory orchestrator: equipment
// management, consumables, stack housekeeping, repair, and the shop.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/greenvalley/rpg-core/internal/orchestrators/inventory Service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
	"github.com/greenvalley/rpg-core/internal/rules"
)

// Service defines the interface for inventory operations
type Service interface {
	// Equip moves an inventory item into its equipment slot, swapping out
	// any occupant
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Unequip moves an equipped item back to the inventory
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	// UseItem consumes a consumable and applies its effect
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// StackInventory re-buckets all material stacks up to the stack limit
	StackInventory(ctx context.Context, input *StackInventoryInput) (*StackInventoryOutput, error)

	// SplitItem splits a stack of two or more into two stacks
	SplitItem(ctx context.Context, input *SplitItemInput) (*SplitItemOutput, error)

	// RepairItem restores an item to full durability for gold
	RepairItem(ctx context.Context, input *RepairItemInput) (*RepairItemOutput, error)

	// Buy purchases a catalog item at the shop markup
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)

	// Sell sells a whole inventory stack at catalog value
	Sell(ctx context.Context, input *SellInput) (*SellOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	Catalog     *catalog.Catalog
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog *catalog.Catalog
	idGen   idgen.Generator
}

// NewOrchestrator creates a new inventory orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		idGen:   cfg.IDGenerator,
	}, nil
}

// slotFor routes an item type to its equipment slot. Tools prefer an empty
// tool slot and swap tool1 when both are occupied.
func slotFor(t catalog.ItemType, equipment map[entities.Slot]*entities.ItemInstance) (entities.Slot, bool) {
	switch t {
	case catalog.ItemTypeWeapon:
		return entities.SlotWeapon, true
	case catalog.ItemTypeArmor:
		return entities.SlotArmor, true
	case catalog.ItemTypeHead:
		return entities.SlotHead, true
	case catalog.ItemTypeLegs:
		return entities.SlotLegs, true
	case catalog.ItemTypeFeet:
		return entities.SlotFeet, true
	case catalog.ItemTypeAccessory:
		return entities.SlotAccessory, true
	case catalog.ItemTypeTool:
		if equipment[entities.SlotTool1] == nil {
			return entities.SlotTool1, true
		}
		if equipment[entities.SlotTool2] == nil {
			return entities.SlotTool2, true
		}
		return entities.SlotTool1, true
	default:
		return "", false
	}
}

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if input.InventoryIndex < 0 || input.InventoryIndex >= len(p.Inventory) {
		return nil, errors.NotFoundf("no inventory item at index %d", input.InventoryIndex)
	}

	instance := p.Inventory[input.InventoryIndex]
	def, err := o.catalog.Item(instance.ItemID)
	if err != nil {
		return nil, err
	}

	slot, ok := slotFor(def.Type, p.Equipment)
	if !ok {
		return nil, errors.FailedPreconditionf("cannot equip %s", def.Name)
	}

	if p.Equipment == nil {
		p.Equipment = map[entities.Slot]*entities.ItemInstance{}
	}
	if occupant := p.Equipment[slot]; occupant != nil {
		p.Inventory = append(p.Inventory, *occupant)
	}
	p.Equipment[slot] = &instance
	p.Inventory = append(p.Inventory[:input.InventoryIndex], p.Inventory[input.InventoryIndex+1:]...)

	rules.Recompute(p, o.catalog)

	slog.DebugContext(ctx, "equipped",
		"player_id", p.ID, "item_id", def.ID, "slot", slot)

	return &EquipOutput{Player: p, Slot: slot}, nil
}

func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player

	occupant := p.Equipment[input.Slot]
	if occupant == nil {
		return nil, errors.FailedPreconditionf("slot %s is empty", input.Slot)
	}

	p.Inventory = append(p.Inventory, *occupant)
	delete(p.Equipment, input.Slot)

	rules.Recompute(p, o.catalog)

	return &UnequipOutput{Player: p}, nil
}

func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if input.InventoryIndex < 0 || input.InventoryIndex >= len(p.Inventory) {
		return nil, errors.NotFoundf("no inventory item at index %d", input.InventoryIndex)
	}

	instance := &p.Inventory[input.InventoryIndex]
	def, err := o.catalog.Item(instance.ItemID)
	if err != nil {
		return nil, err
	}
	if def.Type != catalog.ItemTypeConsumable {
		return nil, errors.FailedPreconditionf("%s is not usable", def.Name)
	}

	message := fmt.Sprintf("Used %s.", def.Name)
	if def.Effect != nil && def.Effect.Kind == catalog.EffectHeal {
		p.CurrentHP += def.Effect.Amount
		if p.CurrentHP > p.MaxHP {
			p.CurrentHP = p.MaxHP
		}
		message = fmt.Sprintf("Used %s, healed %d HP.", def.Name, def.Effect.Amount)
	}

	if instance.Quantity > 1 {
		instance.Quantity--
	} else {
		p.Inventory = append(p.Inventory[:input.InventoryIndex], p.Inventory[input.InventoryIndex+1:]...)
	}

	return &UseItemOutput{Player: p, Message: message}, nil
}

func (o *orchestrator) StackInventory(ctx context.Context, input *StackInventoryInput) (*StackInventoryOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	limit := o.catalog.Mechanics().StackLimit

	totals := map[string]int{}
	order := []string{}
	var rest []entities.ItemInstance

	for _, instance := range p.Inventory {
		def, err := o.catalog.Item(instance.ItemID)
		if err == nil && def.Type == catalog.ItemTypeMaterial {
			if _, seen := totals[instance.ItemID]; !seen {
				order = append(order, instance.ItemID)
			}
			qty := instance.Quantity
			if qty < 1 {
				qty = 1
			}
			totals[instance.ItemID] += qty
			continue
		}
		rest = append(rest, instance)
	}

	stacked := make([]entities.ItemInstance, 0, len(p.Inventory))
	for _, itemID := range order {
		remaining := totals[itemID]
		for remaining > 0 {
			count := remaining
			if count > limit {
				count = limit
			}
			stacked = append(stacked, entities.ItemInstance{
				InstanceID: o.idGen.Generate(),
				ItemID:     itemID,
				Quantity:   count,
			})
			remaining -= count
		}
	}
	p.Inventory = append(stacked, rest...)

	return &StackInventoryOutput{Player: p, Message: "Inventory stacked."}, nil
}

func (o *orchestrator) SplitItem(ctx context.Context, input *SplitItemInput) (*SplitItemOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if input.InventoryIndex < 0 || input.InventoryIndex >= len(p.Inventory) {
		return nil, errors.NotFoundf("no inventory item at index %d", input.InventoryIndex)
	}

	instance := &p.Inventory[input.InventoryIndex]
	if instance.Quantity < 2 {
		return nil, errors.FailedPrecondition("cannot split a single item")
	}

	split := instance.Quantity / 2
	instance.Quantity -= split

	moved := *instance
	moved.InstanceID = o.idGen.Generate()
	moved.Quantity = split
	p.Inventory = append(p.Inventory, moved)

	return &SplitItemOutput{
		Player:  p,
		Message: fmt.Sprintf("Split stack into %d and %d.", instance.Quantity, split),
	}, nil
}

func (o *orchestrator) RepairItem(ctx context.Context, input *RepairItemInput) (*RepairItemOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player

	var instance *entities.ItemInstance
	switch input.Location {
	case RepairEquipment:
		instance = p.Equipment[input.Slot]
		if instance == nil {
			return nil, errors.FailedPreconditionf("slot %s is empty", input.Slot)
		}
	case RepairInventory:
		if input.InventoryIndex < 0 || input.InventoryIndex >= len(p.Inventory) {
			return nil, errors.NotFoundf("no inventory item at index %d", input.InventoryIndex)
		}
		instance = &p.Inventory[input.InventoryIndex]
	default:
		return nil, errors.InvalidArgumentf("unknown repair location %q", input.Location)
	}

	def, err := o.catalog.Item(instance.ItemID)
	if err != nil {
		return nil, err
	}
	if def.MaxDurability <= 0 {
		return nil, errors.FailedPreconditionf("%s does not wear out", def.Name)
	}

	cost := rules.RepairCost(instance, def, o.catalog.Mechanics().RepairCostFrac)
	if cost == 0 {
		return nil, errors.FailedPreconditionf("%s is already fully repaired", def.Name)
	}
	if p.Gold < cost {
		return nil, errors.FailedPreconditionf("repair costs %d gold", cost)
	}

	wasBroken := instance.Broken(def.MaxDurability)
	p.Gold -= cost
	instance.Durability = def.MaxDurability

	// A broken equipped item resumes contributing stats once repaired.
	if input.Location == RepairEquipment && wasBroken {
		rules.Recompute(p, o.catalog)
	}

	return &RepairItemOutput{
		Player:  p,
		Cost:    cost,
		Message: fmt.Sprintf("Repaired %s for %d gold.", def.Name, cost),
	}, nil
}

func (o *orchestrator) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player

	def, err := o.catalog.Item(input.ItemID)
	if err != nil {
		return nil, err
	}

	price := int(math.Ceil(float64(def.Value) * o.catalog.Mechanics().ShopMarkup))
	if p.Gold < price {
		return nil, errors.FailedPreconditionf("%s costs %d gold", def.Name, price)
	}

	p.Gold -= price
	rules.AddItem(p, def, 1, o.idGen, o.catalog.Mechanics().StackLimit)

	slog.DebugContext(ctx, "shop purchase",
		"player_id", p.ID, "item_id", def.ID, "price", price)

	return &BuyOutput{
		Player:  p,
		Price:   price,
		Message: fmt.Sprintf("Bought %s.", def.Name),
	}, nil
}

func (o *orchestrator) Sell(ctx context.Context, input *SellInput) (*SellOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if input.InventoryIndex < 0 || input.InventoryIndex >= len(p.Inventory) {
		return nil, errors.NotFoundf("no inventory item at index %d", input.InventoryIndex)
	}

	instance := p.Inventory[input.InventoryIndex]
	def, err := o.catalog.Item(instance.ItemID)
	if err != nil {
		return nil, err
	}

	qty := instance.Quantity
	if qty < 1 {
		qty = 1
	}
	proceeds := def.Value * qty

	p.Gold += proceeds
	p.Inventory = append(p.Inventory[:input.InventoryIndex], p.Inventory[input.InventoryIndex+1:]...)

	return &SellOutput{
		Player:   p,
		Proceeds: proceeds,
		Message:  fmt.Sprintf("Sold %s for %d gold.", def.Name, proceeds),
	}, nil
}
