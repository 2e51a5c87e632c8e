package rules

import (
	"math"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
)

// Wear reduces an equipped instance's durability by one point, reporting
// whether it just broke. Items without durability never wear.
func Wear(inst *entities.ItemInstance, def *catalog.ItemDefinition) (broke bool) {
	if inst == nil || def.MaxDurability <= 0 {
		return false
	}
	if inst.Durability <= 0 {
		return false
	}
	inst.Durability--
	return inst.Durability == 0
}

// RepairCost prices restoring an instance to full durability, proportional to
// the missing fraction of the item's value. Any repair costs at least 1 gold.
func RepairCost(inst *entities.ItemInstance, def *catalog.ItemDefinition, costFrac float64) int {
	missing := def.MaxDurability - inst.Durability
	if missing <= 0 || def.MaxDurability <= 0 {
		return 0
	}
	cost := math.Ceil(float64(missing) * float64(def.Value) / float64(def.MaxDurability) * costFrac)
	if cost < 1 {
		return 1
	}
	return int(cost)
}
