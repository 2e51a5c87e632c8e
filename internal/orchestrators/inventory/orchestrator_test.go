package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/orchestrators/inventory"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
	"github.com/greenvalley/rpg-core/internal/rules"
)

type OrchestratorTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	service inventory.Service
	ctx     context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	var err error
	s.catalog, err = catalog.New(&catalog.Config{Fallback: catalog.FallbackStrict}, catalog.Default())
	s.Require().NoError(err)

	s.service, err = inventory.NewOrchestrator(&inventory.Config{
		Catalog:     s.catalog,
		IDGenerator: idgen.NewSequential("inst"),
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) newPlayer() *entities.Player {
	p := &entities.Player{
		ID:        "player-1",
		Level:     1,
		MaxXP:     100,
		CurrentHP: 100,
		MaxHP:     100,
		BaseStats: entities.Stats{DamageMin: 5, DamageMax: 10},
		Equipment: map[entities.Slot]*entities.ItemInstance{},
	}
	rules.Recompute(p, s.catalog)
	return p
}

func (s *OrchestratorTestSuite) TestEquipWeapon() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "item_stick", Quantity: 1, Durability: 20},
	}

	output, err := s.service.Equip(s.ctx, &inventory.EquipInput{Player: p, InventoryIndex: 0})
	s.Require().NoError(err)

	s.Equal(entities.SlotWeapon, output.Slot)
	s.Empty(p.Inventory)
	s.Require().NotNil(p.Equipment[entities.SlotWeapon])
	s.Equal("item_stick", p.Equipment[entities.SlotWeapon].ItemID)
	s.Equal(7, p.Aggregated.DamageMin)
	s.Equal(1, p.Aggregated.Luck)
}

func (s *OrchestratorTestSuite) TestEquipSwapsOccupant() {
	p := s.newPlayer()
	p.Equipment[entities.SlotWeapon] = &entities.ItemInstance{
		InstanceID: "old", ItemID: "item_rock", Quantity: 1, Durability: 15,
	}
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "new", ItemID: "item_shortsword", Quantity: 1, Durability: 50},
	}

	_, err := s.service.Equip(s.ctx, &inventory.EquipInput{Player: p, InventoryIndex: 0})
	s.Require().NoError(err)

	s.Equal("item_shortsword", p.Equipment[entities.SlotWeapon].ItemID)
	s.Require().Len(p.Inventory, 1)
	s.Equal("item_rock", p.Inventory[0].ItemID)
	s.Equal(11, p.Aggregated.DamageMin) // 5 + 6
}

func (s *OrchestratorTestSuite) TestEquipToolsFillBothSlots() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "item_pickaxe", Quantity: 1},
		{InstanceID: "b", ItemID: "item_gloves", Quantity: 1},
		{InstanceID: "c", ItemID: "item_pickaxe", Quantity: 1},
	}

	output, err := s.service.Equip(s.ctx, &inventory.EquipInput{Player: p, InventoryIndex: 0})
	s.Require().NoError(err)
	s.Equal(entities.SlotTool1, output.Slot)

	output, err = s.service.Equip(s.ctx, &inventory.EquipInput{Player: p, InventoryIndex: 0})
	s.Require().NoError(err)
	s.Equal(entities.SlotTool2, output.Slot)

	// both full: the third tool swaps tool1
	output, err = s.service.Equip(s.ctx, &inventory.EquipInput{Player: p, InventoryIndex: 0})
	s.Require().NoError(err)
	s.Equal(entities.SlotTool1, output.Slot)
	s.Equal("c", p.Equipment[entities.SlotTool1].InstanceID)
	s.Require().Len(p.Inventory, 1)
	s.Equal("a", p.Inventory[0].InstanceID)
}

func (s *OrchestratorTestSuite) TestEquipRejectsMaterial() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "mat_stone", Quantity: 5},
	}

	_, err := s.service.Equip(s.ctx, &inventory.EquipInput{Player: p, InventoryIndex: 0})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestUnequip() {
	p := s.newPlayer()
	p.Equipment[entities.SlotWeapon] = &entities.ItemInstance{
		InstanceID: "a", ItemID: "item_stick", Quantity: 1, Durability: 20,
	}
	rules.Recompute(p, s.catalog)

	_, err := s.service.Unequip(s.ctx, &inventory.UnequipInput{Player: p, Slot: entities.SlotWeapon})
	s.Require().NoError(err)

	s.Nil(p.Equipment[entities.SlotWeapon])
	s.Require().Len(p.Inventory, 1)
	s.Equal(5, p.Aggregated.DamageMin)

	_, err = s.service.Unequip(s.ctx, &inventory.UnequipInput{Player: p, Slot: entities.SlotWeapon})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestUseItemHeals() {
	p := s.newPlayer()
	p.CurrentHP = 50
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "item_apple", Quantity: 1},
	}

	output, err := s.service.UseItem(s.ctx, &inventory.UseItemInput{Player: p, InventoryIndex: 0})
	s.Require().NoError(err)

	s.Equal(60, p.CurrentHP)
	s.Empty(p.Inventory)
	s.NotEmpty(output.Message)
}

func (s *OrchestratorTestSuite) TestUseItemRejectsNonConsumable() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "item_stick", Quantity: 1, Durability: 20},
	}

	_, err := s.service.UseItem(s.ctx, &inventory.UseItemInput{Player: p, InventoryIndex: 0})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestStackInventory() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "mat_stone", Quantity: 40},
		{InstanceID: "b", ItemID: "item_apple", Quantity: 1},
		{InstanceID: "c", ItemID: "mat_stone", Quantity: 40},
		{InstanceID: "d", ItemID: "mat_wood", Quantity: 10},
	}

	_, err := s.service.StackInventory(s.ctx, &inventory.StackInventoryInput{Player: p})
	s.Require().NoError(err)

	s.Require().Len(p.Inventory, 4)
	s.Equal("mat_stone", p.Inventory[0].ItemID)
	s.Equal(64, p.Inventory[0].Quantity)
	s.Equal("mat_stone", p.Inventory[1].ItemID)
	s.Equal(16, p.Inventory[1].Quantity)
	s.Equal("mat_wood", p.Inventory[2].ItemID)
	s.Equal(10, p.Inventory[2].Quantity)
	s.Equal("item_apple", p.Inventory[3].ItemID)
}

func (s *OrchestratorTestSuite) TestSplitItem() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "mat_stone", Quantity: 7},
	}

	_, err := s.service.SplitItem(s.ctx, &inventory.SplitItemInput{Player: p, InventoryIndex: 0})
	s.Require().NoError(err)

	s.Require().Len(p.Inventory, 2)
	s.Equal(4, p.Inventory[0].Quantity)
	s.Equal(3, p.Inventory[1].Quantity)
	s.NotEqual(p.Inventory[0].InstanceID, p.Inventory[1].InstanceID)
}

func (s *OrchestratorTestSuite) TestSplitItemRejectsSingle() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "item_apple", Quantity: 1},
	}

	_, err := s.service.SplitItem(s.ctx, &inventory.SplitItemInput{Player: p, InventoryIndex: 0})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestRepairEquippedWeapon() {
	p := s.newPlayer()
	p.Gold = 100
	// item_longsword: value 100, max durability 100
	p.Equipment[entities.SlotWeapon] = &entities.ItemInstance{
		InstanceID: "a", ItemID: "item_longsword", Quantity: 1, Durability: 50,
	}
	rules.Recompute(p, s.catalog)

	output, err := s.service.RepairItem(s.ctx, &inventory.RepairItemInput{
		Player: p, Location: inventory.RepairEquipment, Slot: entities.SlotWeapon,
	})
	s.Require().NoError(err)

	// ceil(50 * 100/100 * 0.5) = 25
	s.Equal(25, output.Cost)
	s.Equal(75, p.Gold)
	s.Equal(100, p.Equipment[entities.SlotWeapon].Durability)
}

func (s *OrchestratorTestSuite) TestRepairBrokenWeaponRestoresStats() {
	p := s.newPlayer()
	p.Gold = 100
	p.Equipment[entities.SlotWeapon] = &entities.ItemInstance{
		InstanceID: "a", ItemID: "item_stick", Quantity: 1, Durability: 0,
	}
	rules.Recompute(p, s.catalog)
	s.Equal(5, p.Aggregated.DamageMin)

	_, err := s.service.RepairItem(s.ctx, &inventory.RepairItemInput{
		Player: p, Location: inventory.RepairEquipment, Slot: entities.SlotWeapon,
	})
	s.Require().NoError(err)

	s.Equal(7, p.Aggregated.DamageMin)
}

func (s *OrchestratorTestSuite) TestRepairRejections() {
	p := s.newPlayer()
	p.Gold = 1
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "item_longsword", Quantity: 1, Durability: 100},
		{InstanceID: "b", ItemID: "item_longsword", Quantity: 1, Durability: 10},
		{InstanceID: "c", ItemID: "mat_stone", Quantity: 1},
	}

	// already at full durability
	_, err := s.service.RepairItem(s.ctx, &inventory.RepairItemInput{
		Player: p, Location: inventory.RepairInventory, InventoryIndex: 0,
	})
	s.Error(err)

	// not enough gold
	_, err = s.service.RepairItem(s.ctx, &inventory.RepairItemInput{
		Player: p, Location: inventory.RepairInventory, InventoryIndex: 1,
	})
	s.Error(err)

	// materials have no durability
	_, err = s.service.RepairItem(s.ctx, &inventory.RepairItemInput{
		Player: p, Location: inventory.RepairInventory, InventoryIndex: 2,
	})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestBuy() {
	p := s.newPlayer()
	p.Gold = 10

	// item_stick: value 5, price ceil(5*1.5) = 8
	output, err := s.service.Buy(s.ctx, &inventory.BuyInput{Player: p, ItemID: "item_stick"})
	s.Require().NoError(err)

	s.Equal(8, output.Price)
	s.Equal(2, p.Gold)
	s.Equal(1, p.InventoryCount("item_stick"))

	_, err = s.service.Buy(s.ctx, &inventory.BuyInput{Player: p, ItemID: "item_stick"})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestSellUsesCatalogValue() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "a", ItemID: "mat_iron_ore", Quantity: 4},
	}

	output, err := s.service.Sell(s.ctx, &inventory.SellInput{Player: p, InventoryIndex: 0})
	s.Require().NoError(err)

	// value 5 each
	s.Equal(20, output.Proceeds)
	s.Equal(20, p.Gold)
	s.Empty(p.Inventory)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
