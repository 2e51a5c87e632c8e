package explore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/orchestrators/combat"
	"github.com/greenvalley/rpg-core/internal/orchestrators/explore"
	"github.com/greenvalley/rpg-core/internal/pkg/clock"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
	"github.com/greenvalley/rpg-core/internal/pkg/rng"
	"github.com/greenvalley/rpg-core/internal/rules"
)

type noopTracker struct{}

func (noopTracker) OnEnemyDefeated(*entities.Player, string) []string { return nil }

type OrchestratorTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	roller  *rng.Stub
	clock   *clock.Fixed
	service explore.Service
	ctx     context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	var err error
	s.catalog, err = catalog.New(&catalog.Config{Fallback: catalog.FallbackStrict}, catalog.Default())
	s.Require().NoError(err)

	s.roller = &rng.Stub{}
	s.clock = clock.NewFixed(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	combatSvc, err := combat.NewOrchestrator(&combat.Config{
		Catalog:     s.catalog,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("inst"),
		HuntTracker: noopTracker{},
	})
	s.Require().NoError(err)

	s.service, err = explore.NewOrchestrator(&explore.Config{
		Catalog:     s.catalog,
		Roller:      s.roller,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("inst"),
		Combat:      combatSvc,
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) newPlayer() *entities.Player {
	p := &entities.Player{
		ID:            "player-1",
		Name:          "Tester",
		Level:         1,
		MaxXP:         100,
		CurrentHP:     100,
		MaxHP:         100,
		BaseStats:     entities.Stats{DamageMin: 5, DamageMax: 10},
		DifficultyID:  "difficulty_normal",
		RankID:        "rank_adventurer",
		CurrentWorld:  "world_green_valley",
		CurrentZone:   0,
		UnlockedZones: map[string]int{"world_green_valley": 0},
		ZoneMastery:   map[string]int{},
		Equipment:     map[entities.Slot]*entities.ItemInstance{},
		Gathering:     map[string]int64{},
	}
	rules.Recompute(p, s.catalog)
	return p
}

func (s *OrchestratorTestSuite) masteryKey(p *entities.Player) string {
	return entities.MasteryKey(p.CurrentWorld, p.CurrentZone)
}

func (s *OrchestratorTestSuite) TestExploreRejectsDuringCombat() {
	p := s.newPlayer()
	p.Combat = entities.CombatState{InCombat: true, Enemy: &entities.EnemySnapshot{}}

	_, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestExploreRejectsWithPendingEvent() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_shrine"

	_, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestExploreLevelGate() {
	p := s.newPlayer()
	p.CurrentZone = 1 // requires level 5

	_, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestExploreEventBranchGatheringPool() {
	p := s.newPlayer()
	s.roller.Floats = []float64{0.10, 0.5} // r=10 event branch, gathering sub-pool
	s.roller.Ints = []int{0}

	output, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Require().NoError(err)

	s.Equal(explore.ResultEvent, output.Kind)
	s.Equal("evt_mining", output.Event.ID)
	s.Equal("evt_mining", p.ActiveEventID)
	s.Equal(2, p.ZoneMastery[s.masteryKey(p)])
}

func (s *OrchestratorTestSuite) TestExploreEventBranchNarrativePool() {
	p := s.newPlayer()
	s.roller.Floats = []float64{0.10, 0.9} // narrative sub-pool
	s.roller.Ints = []int{0}

	output, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Require().NoError(err)

	s.Equal("evt_shrine", output.Event.ID)
}

func (s *OrchestratorTestSuite) TestExploreEnemyBranch() {
	p := s.newPlayer()
	s.roller.Floats = []float64{0.40, 0.0} // r=40 enemy branch, Common rarity
	s.roller.Ints = []int{0}

	output, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Require().NoError(err)

	s.Equal(explore.ResultEnemy, output.Kind)
	s.Equal("enemy_slime", output.Enemy.EnemyID)
	s.True(p.Combat.InCombat)
}

func (s *OrchestratorTestSuite) TestExploreItemBranch() {
	p := s.newPlayer()
	s.roller.Floats = []float64{0.80, 0.0} // r=80 item branch, Common rarity
	s.roller.Ints = []int{0}

	output, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Require().NoError(err)

	s.Equal(explore.ResultItem, output.Kind)
	s.Equal("item_stick", output.Item.ID)
	s.Equal(1, p.InventoryCount("item_stick"))
	s.Equal(3, p.ZoneMastery[s.masteryKey(p)])
}

func (s *OrchestratorTestSuite) TestExploreItemWindowScalesWithDifficulty() {
	p := s.newPlayer()
	p.DifficultyID = "difficulty_hard" // loot window extends to 96
	s.roller.Floats = []float64{0.955, 0.0}
	s.roller.Ints = []int{0}

	output, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Require().NoError(err)
	s.Equal(explore.ResultItem, output.Kind)

	p2 := s.newPlayer()
	s.roller.Floats = []float64{0.955}
	s.roller.Ints = []int{0}

	output, err = s.service.Explore(s.ctx, &explore.ExploreInput{Player: p2})
	s.Require().NoError(err)
	s.Equal(explore.ResultText, output.Kind)
}

func (s *OrchestratorTestSuite) TestExploreTextBranch() {
	p := s.newPlayer()
	s.roller.Floats = []float64{0.99}
	s.roller.Ints = []int{0}

	output, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p})
	s.Require().NoError(err)

	s.Equal(explore.ResultText, output.Kind)
	s.NotEmpty(output.Message)
	s.Equal(1, p.ZoneMastery[s.masteryKey(p)])
}

func (s *OrchestratorTestSuite) TestExploreBossRequiresFullMastery() {
	p := s.newPlayer()
	p.ZoneMastery[s.masteryKey(p)] = 50

	_, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p, Action: explore.ActionBoss})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestExploreBoss() {
	p := s.newPlayer()
	p.ZoneMastery[s.masteryKey(p)] = 100

	output, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: p, Action: explore.ActionBoss})
	s.Require().NoError(err)

	s.Equal(explore.ResultEnemy, output.Kind)
	s.Equal("boss_slime_king", output.Enemy.EnemyID)
	s.True(p.Combat.InCombat)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceNoActiveEvent() {
	p := s.newPlayer()

	_, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "pray"})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceUnknownChoice() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_shrine"

	_, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "dance"})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceHealSuccess() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_shrine"
	p.CurrentHP = 40

	s.roller.Floats = []float64{0.5} // under the 0.8 success chance

	output, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "pray"})
	s.Require().NoError(err)

	s.Equal(90, p.CurrentHP)
	s.Empty(p.ActiveEventID)
	s.NotEmpty(output.Message)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceFailEffect() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_shrine"
	p.CurrentHP = 50

	s.roller.Floats = []float64{0.9} // over the 0.8 success chance

	output, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "pray"})
	s.Require().NoError(err)

	s.Equal(40, p.CurrentHP)
	s.Equal("The shrine rejects you!", output.Message)
	s.Empty(p.ActiveEventID)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceGoldRequirement() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_merchant"
	p.Gold = 30

	_, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "buy"})
	s.Error(err)
	s.Equal(30, p.Gold)
	s.Equal("evt_merchant", p.ActiveEventID) // still pending
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceGoldDeducted() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_merchant"
	p.Gold = 60

	s.roller.Floats = []float64{0.3} // under the 0.4 box chance
	s.roller.Ints = []int{0}

	output, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "buy"})
	s.Require().NoError(err)

	s.Equal(10, p.Gold)
	s.Require().NotNil(output.Item)
	s.Equal(catalog.RarityRare, output.Item.Rarity)
	s.Equal(1, p.InventoryCount(output.Item.ID))
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceConsumesRequiredItem() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_chest_locked"
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "inst-1", ItemID: "item_key", Quantity: 2},
	}

	s.roller.Floats = []float64{0.5}
	s.roller.Ints = []int{0}

	output, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "key"})
	s.Require().NoError(err)

	s.Equal(1, p.InventoryCount("item_key"))
	s.NotNil(output.Item)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceEquippedToolNotConsumed() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_mining"
	p.Equipment[entities.SlotTool1] = &entities.ItemInstance{
		InstanceID: "inst-1", ItemID: "item_pickaxe", Quantity: 1,
	}

	s.roller.Floats = []float64{0.5}

	_, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "mine"})
	s.Require().NoError(err)

	s.Equal(75, p.Gold)
	s.NotNil(p.Equipment[entities.SlotTool1])
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceStatRequirement() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_chest_locked"

	_, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "pick"})
	s.Error(err) // luck 0 < 5

	p.BaseStats.Luck = 8
	rules.Recompute(p, s.catalog)
	s.roller.Floats = []float64{0.5}
	s.roller.Ints = []int{0}

	output, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "pick"})
	s.Require().NoError(err)
	s.NotNil(output.Item)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceCombatTrigger() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_shrine"

	s.roller.Floats = []float64{0.6} // over the 0.5 steal chance
	s.roller.Ints = []int{0}

	output, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "loot"})
	s.Require().NoError(err)

	s.Equal("A guardian spirit attacks!", output.Message)
	s.Require().NotNil(output.Enemy)
	s.Equal("enemy_wolf", output.Enemy.EnemyID)
	s.True(p.Combat.InCombat)
	s.Empty(p.ActiveEventID)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceZeroChanceAlwaysFails() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_foraging"

	s.roller.Floats = []float64{0.0}

	output, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "grab"})
	s.Require().NoError(err)

	s.Equal("The thorns cut your hands deeply!", output.Message)
	s.Equal(85, p.CurrentHP)
}

func (s *OrchestratorTestSuite) TestResolveEventChoiceXPLevelsUp() {
	p := s.newPlayer()
	p.ActiveEventID = "evt_traveler"
	p.Gold = 20

	s.roller.Floats = []float64{0.5}

	_, err := s.service.ResolveEventChoice(s.ctx, &explore.ResolveEventChoiceInput{Player: p, ChoiceID: "help"})
	s.Require().NoError(err)

	s.Equal(0, p.Gold)
	s.Equal(2, p.Level)
	s.Equal(0, p.XP)
}

func (s *OrchestratorTestSuite) TestGatherMiningRequiresPickaxe() {
	p := s.newPlayer()

	_, err := s.service.Gather(s.ctx, &explore.GatherInput{Player: p, Type: "mining"})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestGatherMiningTiers() {
	p := s.newPlayer()
	p.Inventory = []entities.ItemInstance{
		{InstanceID: "inst-1", ItemID: "item_pickaxe", Quantity: 1},
	}

	s.roller.Floats = []float64{0.5}
	output, err := s.service.Gather(s.ctx, &explore.GatherInput{Player: p, Type: "mining"})
	s.Require().NoError(err)

	s.Equal("mat_stone", output.Item.ID)
	s.Equal(5, output.XP)
	s.Equal(5, p.XP)
	s.Equal(s.clock.Now().Unix(), p.Gathering["mining"])

	s.clock.Advance(61 * time.Second)
	s.roller.Floats = []float64{0.95}
	output, err = s.service.Gather(s.ctx, &explore.GatherInput{Player: p, Type: "mining"})
	s.Require().NoError(err)

	s.Equal("mat_gold_ore", output.Item.ID)
	s.Equal(30, output.XP)
}

func (s *OrchestratorTestSuite) TestGatherCooldown() {
	p := s.newPlayer()

	s.roller.Floats = []float64{0.1}
	_, err := s.service.Gather(s.ctx, &explore.GatherInput{Player: p, Type: "foraging"})
	s.Require().NoError(err)

	s.clock.Advance(30 * time.Second)
	_, err = s.service.Gather(s.ctx, &explore.GatherInput{Player: p, Type: "foraging"})
	s.Error(err)

	s.clock.Advance(31 * time.Second)
	s.roller.Floats = []float64{0.55}
	output, err := s.service.Gather(s.ctx, &explore.GatherInput{Player: p, Type: "foraging"})
	s.Require().NoError(err)
	s.Equal("mat_wood", output.Item.ID)
}

func (s *OrchestratorTestSuite) TestGatherUnknownType() {
	p := s.newPlayer()

	_, err := s.service.Gather(s.ctx, &explore.GatherInput{Player: p, Type: "fishing"})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestSetZone() {
	p := s.newPlayer()

	_, err := s.service.SetZone(s.ctx, &explore.SetZoneInput{Player: p, ZoneIndex: 1})
	s.Error(err) // frontier is 0

	p.UnlockedZones[p.CurrentWorld] = 1
	output, err := s.service.SetZone(s.ctx, &explore.SetZoneInput{Player: p, ZoneIndex: 1})
	s.Require().NoError(err)
	s.Equal(1, p.CurrentZone)
	s.NotEmpty(output.Message)

	_, err = s.service.SetZone(s.ctx, &explore.SetZoneInput{Player: p, ZoneIndex: 5})
	s.Error(err)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
