package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/rules"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(&catalog.Config{Fallback: catalog.FallbackStrict}, catalog.Default())
	require.NoError(t, err)
	return c
}

func basePlayer() *entities.Player {
	return &entities.Player{
		ID:           "player_test",
		Level:        1,
		XP:           0,
		MaxXP:        100,
		CurrentHP:    100,
		MaxHP:        100,
		BaseStats:    entities.Stats{DamageMin: 5, DamageMax: 10},
		RankID:       "rank_adventurer",
		DifficultyID: "difficulty_normal",
		CurrentWorld: "world_green_valley",
		Equipment:    make(map[entities.Slot]*entities.ItemInstance),
	}
}

func TestRecompute_AddsEquipmentStats(t *testing.T) {
	cat := testCatalog(t)
	p := basePlayer()

	// Sturdy Stick: damage 2, luck 1.
	p.Equipment[entities.SlotWeapon] = &entities.ItemInstance{
		InstanceID: "inst_1", ItemID: "item_stick", Durability: 20,
	}
	rules.Recompute(p, cat)

	assert.Equal(t, 7, p.Aggregated.DamageMin)
	assert.Equal(t, 12, p.Aggregated.DamageMax)
	assert.Equal(t, 1, p.Aggregated.Luck)
}

func TestRecompute_BrokenItemContributesNothing(t *testing.T) {
	cat := testCatalog(t)
	p := basePlayer()

	p.Equipment[entities.SlotWeapon] = &entities.ItemInstance{
		InstanceID: "inst_1", ItemID: "item_stick", Durability: 0,
	}
	rules.Recompute(p, cat)

	assert.Equal(t, p.BaseStats, p.Aggregated)
}

func TestWear(t *testing.T) {
	def := &catalog.ItemDefinition{ID: "item_stick", MaxDurability: 20, Value: 5}
	inst := &entities.ItemInstance{ItemID: "item_stick", Durability: 2}

	assert.False(t, rules.Wear(inst, def))
	assert.Equal(t, 1, inst.Durability)

	assert.True(t, rules.Wear(inst, def), "final point of wear reports breakage")
	assert.Zero(t, inst.Durability)

	assert.False(t, rules.Wear(inst, def), "already-broken items do not wear further")
	assert.Zero(t, inst.Durability)
}

func TestWear_NoDurability(t *testing.T) {
	def := &catalog.ItemDefinition{ID: "mat_stone"}
	inst := &entities.ItemInstance{ItemID: "mat_stone"}

	assert.False(t, rules.Wear(inst, def))
}

func TestRepairCost(t *testing.T) {
	def := &catalog.ItemDefinition{ID: "item_longsword", Value: 100, MaxDurability: 100}

	full := &entities.ItemInstance{ItemID: "item_longsword", Durability: 100}
	assert.Zero(t, rules.RepairCost(full, def, 0.5))

	half := &entities.ItemInstance{ItemID: "item_longsword", Durability: 50}
	assert.Equal(t, 25, rules.RepairCost(half, def, 0.5))

	// Cheap items still cost at least 1 gold to repair.
	cheap := &catalog.ItemDefinition{ID: "item_rags", Value: 3, MaxDurability: 15}
	scuffed := &entities.ItemInstance{ItemID: "item_rags", Durability: 14}
	assert.Equal(t, 1, rules.RepairCost(scuffed, cheap, 0.5))
}

func TestApplyLevelUps(t *testing.T) {
	m := catalog.Default().Mechanics
	p := basePlayer()
	p.XP = 250
	p.CurrentHP = 40

	gained := rules.ApplyLevelUps(p, m)

	// 250 xp: level 2 consumes 100 (maxXp -> 150), level 3 consumes 150
	// (maxXp -> 225), leaving 0.
	assert.Equal(t, 2, gained)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 225, p.MaxXP)
	assert.Equal(t, 120, p.MaxHP)
	assert.Equal(t, p.MaxHP, p.CurrentHP, "level up fully heals")
}

func TestApplyLevelUps_NoLevel(t *testing.T) {
	m := catalog.Default().Mechanics
	p := basePlayer()
	p.XP = 99

	assert.Zero(t, rules.ApplyLevelUps(p, m))
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 99, p.XP)
}

func TestUpdateRank(t *testing.T) {
	ranks := catalog.Default().Ranks
	p := basePlayer()

	assert.False(t, rules.UpdateRank(p, ranks))

	p.Level = 25
	assert.True(t, rules.UpdateRank(p, ranks))
	assert.Equal(t, "rank_elite", p.RankID)

	p.Level = 120
	assert.True(t, rules.UpdateRank(p, ranks))
	assert.Equal(t, "rank_legend", p.RankID)
}

func TestAddMastery_CapsAtThreshold(t *testing.T) {
	m := catalog.Default().Mechanics
	p := basePlayer()

	assert.Equal(t, 5, rules.AddMastery(p, 5, m))

	p.ZoneMastery[entities.MasteryKey(p.CurrentWorld, p.CurrentZone)] = 98
	assert.Equal(t, 100, rules.AddMastery(p, 5, m))
}

func TestHandleBossVictory_UnlocksFrontier(t *testing.T) {
	cat := testCatalog(t)
	world, err := cat.World("world_green_valley")
	require.NoError(t, err)

	p := basePlayer()
	p.CurrentZone = 0
	p.ZoneMastery = map[string]int{entities.MasteryKey(p.CurrentWorld, 0): 100}

	unlocked := rules.HandleBossVictory(p, world)

	assert.True(t, unlocked)
	assert.Equal(t, 1, p.UnlockedZones[p.CurrentWorld])
	assert.Zero(t, p.ZoneMastery[entities.MasteryKey(p.CurrentWorld, 0)], "mastery resets so the boss can be farmed")
}

func TestHandleBossVictory_NonFrontierZone(t *testing.T) {
	cat := testCatalog(t)
	world, err := cat.World("world_green_valley")
	require.NoError(t, err)

	p := basePlayer()
	p.CurrentZone = 0
	p.UnlockedZones = map[string]int{p.CurrentWorld: 2}

	assert.False(t, rules.HandleBossVictory(p, world))
	assert.Equal(t, 2, p.UnlockedZones[p.CurrentWorld])
}

func TestHandleBossVictory_LastZone(t *testing.T) {
	cat := testCatalog(t)
	world, err := cat.World("world_green_valley")
	require.NoError(t, err)

	p := basePlayer()
	p.CurrentZone = len(world.Zones) - 1
	p.UnlockedZones = map[string]int{p.CurrentWorld: len(world.Zones) - 1}

	assert.False(t, rules.HandleBossVictory(p, world))
	assert.Equal(t, len(world.Zones)-1, p.UnlockedZones[p.CurrentWorld])
}
