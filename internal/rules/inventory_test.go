package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
	"github.com/greenvalley/rpg-core/internal/rules"
)

func TestAddItem_MaterialsStack(t *testing.T) {
	gen := idgen.NewSequential("inst")
	p := basePlayer()
	def := &catalog.ItemDefinition{ID: "mat_wood", Type: catalog.ItemTypeMaterial}

	rules.AddItem(p, def, 60, gen, 64)
	require.Len(t, p.Inventory, 1)
	assert.Equal(t, 60, p.Inventory[0].Quantity)

	// Tops up the existing stack, then overflows into a new one.
	rules.AddItem(p, def, 10, gen, 64)
	require.Len(t, p.Inventory, 2)
	assert.Equal(t, 64, p.Inventory[0].Quantity)
	assert.Equal(t, 6, p.Inventory[1].Quantity)
}

func TestAddItem_EquipmentMintsInstances(t *testing.T) {
	gen := idgen.NewSequential("inst")
	p := basePlayer()
	def := &catalog.ItemDefinition{ID: "item_stick", Type: catalog.ItemTypeWeapon, MaxDurability: 20}

	rules.AddItem(p, def, 3, gen, 64)

	require.Len(t, p.Inventory, 3)
	for _, inst := range p.Inventory {
		assert.Equal(t, 20, inst.Durability)
		assert.Equal(t, 1, inst.Quantity)
	}
	assert.NotEqual(t, p.Inventory[0].InstanceID, p.Inventory[1].InstanceID)
}

func TestRemoveItems(t *testing.T) {
	gen := idgen.NewSequential("inst")
	p := basePlayer()
	def := &catalog.ItemDefinition{ID: "mat_berry", Type: catalog.ItemTypeMaterial}

	rules.AddItem(p, def, 64, gen, 64)
	rules.AddItem(p, def, 6, gen, 64)
	require.Len(t, p.Inventory, 2)

	// Drains from the back first and drops the emptied stack.
	assert.True(t, rules.RemoveItems(p, "mat_berry", 10))
	require.Len(t, p.Inventory, 1)
	assert.Equal(t, 60, p.Inventory[0].Quantity)
}

func TestRemoveItems_InsufficientLeavesStateUntouched(t *testing.T) {
	gen := idgen.NewSequential("inst")
	p := basePlayer()
	def := &catalog.ItemDefinition{ID: "mat_berry", Type: catalog.ItemTypeMaterial}
	rules.AddItem(p, def, 5, gen, 64)

	assert.False(t, rules.RemoveItems(p, "mat_berry", 6))
	assert.Equal(t, 5, p.Inventory[0].Quantity)
}
