package rules

import (
	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
)

// AddItem grants quantity units of an item. Materials top up existing stacks
// before minting new ones, capped at stackLimit per stack; everything else is
// minted as one instance per unit, carrying full durability when the item
// has any.
func AddItem(p *entities.Player, def *catalog.ItemDefinition, quantity int, gen idgen.Generator, stackLimit int) {
	if quantity <= 0 {
		return
	}

	if def.Type == catalog.ItemTypeMaterial {
		remaining := quantity
		for i := range p.Inventory {
			if remaining == 0 {
				return
			}
			inst := &p.Inventory[i]
			if inst.ItemID != def.ID {
				continue
			}
			q := inst.Quantity
			if q < 1 {
				q = 1
			}
			if q >= stackLimit {
				continue
			}
			add := stackLimit - q
			if add > remaining {
				add = remaining
			}
			inst.Quantity = q + add
			remaining -= add
		}
		for remaining > 0 {
			count := remaining
			if count > stackLimit {
				count = stackLimit
			}
			p.Inventory = append(p.Inventory, entities.ItemInstance{
				InstanceID: gen.Generate(),
				ItemID:     def.ID,
				Quantity:   count,
			})
			remaining -= count
		}
		return
	}

	for i := 0; i < quantity; i++ {
		inst := entities.ItemInstance{
			InstanceID: gen.Generate(),
			ItemID:     def.ID,
			Quantity:   1,
		}
		if def.MaxDurability > 0 {
			inst.Durability = def.MaxDurability
		}
		p.Inventory = append(p.Inventory, inst)
	}
}

// RemoveItems deducts amount units of an item from the inventory, draining
// stacks from the back and dropping emptied ones. Returns false without
// mutating when the player owns fewer than amount.
func RemoveItems(p *entities.Player, itemID string, amount int) bool {
	if p.InventoryCount(itemID) < amount {
		return false
	}
	remaining := amount
	for i := len(p.Inventory) - 1; i >= 0 && remaining > 0; i-- {
		if p.Inventory[i].ItemID != itemID {
			continue
		}
		q := p.Inventory[i].Quantity
		if q < 1 {
			q = 1
		}
		if q > remaining {
			p.Inventory[i].Quantity = q - remaining
			remaining = 0
		} else {
			remaining -= q
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		}
	}
	return true
}
