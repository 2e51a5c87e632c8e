// Package explore implements the exploration orchestrator: the explore roll
// table, event choice resolution, gathering, and zone travel.
package explore

//go:generate mockgen -destination=mock/mock_service.go -package=exploremock github.com/greenvalley/rpg-core/internal/orchestrators/explore Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/orchestrators/combat"
	"github.com/greenvalley/rpg-core/internal/pkg/clock"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
	"github.com/greenvalley/rpg-core/internal/pkg/rng"
	"github.com/greenvalley/rpg-core/internal/rules"
)

// Exploration roll table boundaries, in percent.
const (
	eventBranchMax    = 35.0
	enemyBranchMax    = 75.0
	itemBranchBase    = 90.0
	gatheringPoolOdds = 0.8
)

// Service defines the interface for exploration operations
type Service interface {
	// Explore rolls one exploration outcome for the player's current zone
	Explore(ctx context.Context, input *ExploreInput) (*ExploreOutput, error)

	// ResolveEventChoice resolves the player's active event with one of its
	// choices
	ResolveEventChoice(ctx context.Context, input *ResolveEventChoiceInput) (*ResolveEventChoiceOutput, error)

	// Gather works a gathering table, subject to its per-type cooldown
	Gather(ctx context.Context, input *GatherInput) (*GatherOutput, error)

	// SetZone moves the player to an unlocked zone of the current world
	SetZone(ctx context.Context, input *SetZoneInput) (*SetZoneOutput, error)
}

// Config holds the dependencies for the exploration orchestrator
type Config struct {
	Catalog     *catalog.Catalog
	Roller      rng.Roller
	Clock       clock.Clock
	IDGenerator idgen.Generator
	Combat      combat.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog *catalog.Catalog
	roller  rng.Roller
	clock   clock.Clock
	idGen   idgen.Generator
	combat  combat.Service
}

// NewOrchestrator creates a new exploration orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		clock:   cfg.Clock,
		idGen:   cfg.IDGenerator,
		combat:  cfg.Combat,
	}, nil
}

func (o *orchestrator) Explore(ctx context.Context, input *ExploreInput) (*ExploreOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if p.Combat.InCombat {
		return nil, errors.FailedPrecondition("cannot explore while in combat")
	}
	if p.ActiveEventID != "" {
		return nil, errors.FailedPrecondition("resolve the current event first")
	}

	world, err := o.catalog.World(p.CurrentWorld)
	if err != nil {
		return nil, err
	}
	if p.CurrentZone < 0 || p.CurrentZone >= len(world.Zones) {
		return nil, errors.Internalf("player zone %d out of range for world %q", p.CurrentZone, world.ID)
	}
	zone := world.Zones[p.CurrentZone]

	if input.Action == ActionBoss {
		return o.exploreBoss(ctx, p, zone)
	}

	if p.Level < world.MinLevel {
		return nil, errors.FailedPreconditionf("requires level %d for %s", world.MinLevel, world.Name)
	}
	if p.Level < zone.MinLevel {
		return nil, errors.FailedPreconditionf("requires level %d for %s", zone.MinLevel, zone.Name)
	}

	m := o.catalog.Mechanics()
	r := o.roller.Float64() * 100

	switch {
	case r < eventBranchMax:
		return o.exploreEvent(ctx, p, m)
	case r < enemyBranchMax:
		return o.exploreEnemy(ctx, p)
	case r < itemBranchBase+5*o.lootChanceMult(p):
		return o.exploreItem(ctx, p, m)
	default:
		return o.exploreText(p, m), nil
	}
}

func (o *orchestrator) lootChanceMult(p *entities.Player) float64 {
	diff, err := o.catalog.Difficulty(p.DifficultyID)
	if err != nil {
		return 1
	}
	return diff.Multipliers.LootChance
}

func (o *orchestrator) exploreBoss(ctx context.Context, p *entities.Player, zone catalog.ZoneDefinition) (*ExploreOutput, error) {
	m := o.catalog.Mechanics()
	key := entities.MasteryKey(p.CurrentWorld, p.CurrentZone)
	if p.ZoneMastery[key] < m.MasteryBossThreshold {
		return nil, errors.FailedPreconditionf("zone mastery %d/%d, the boss will not show itself",
			p.ZoneMastery[key], m.MasteryBossThreshold)
	}
	if zone.BossID == "" {
		return nil, errors.FailedPrecondition("this zone has no boss")
	}

	entered, err := o.combat.EnterCombat(ctx, &combat.EnterCombatInput{Player: p, EnemyID: zone.BossID})
	if err != nil {
		return nil, err
	}
	return &ExploreOutput{
		Player:  p,
		Kind:    ResultEnemy,
		Enemy:   entered.Enemy,
		Message: fmt.Sprintf("%s emerges!", entered.Enemy.Name),
	}, nil
}

func (o *orchestrator) exploreEvent(ctx context.Context, p *entities.Player, m catalog.Mechanics) (*ExploreOutput, error) {
	all := o.catalog.Events()
	if len(all) == 0 {
		return nil, errors.Internal("no events configured")
	}

	wanted := catalog.EventTypeNarrative
	if o.roller.Float64() < gatheringPoolOdds {
		wanted = catalog.EventTypeGathering
	}
	pool := make([]catalog.EventDefinition, 0, len(all))
	for _, evt := range all {
		if evt.Type == wanted {
			pool = append(pool, evt)
		}
	}
	if len(pool) == 0 {
		pool = all
	}

	event := pool[o.roller.Intn(len(pool))]
	p.ActiveEventID = event.ID
	rules.AddMastery(p, m.MasteryPerEvent, m)

	slog.DebugContext(ctx, "exploration event started",
		"player_id", p.ID, "event_id", event.ID)

	return &ExploreOutput{
		Player:  p,
		Kind:    ResultEvent,
		Event:   &event,
		Message: event.Description,
	}, nil
}

func (o *orchestrator) exploreEnemy(ctx context.Context, p *entities.Player) (*ExploreOutput, error) {
	rarity := rules.RollRarity(o.roller, o.catalog.Rarities(), 0, o.catalog.Mechanics().LuckRarityBonus)
	enemy := rules.PickEnemyOfRarity(o.roller, o.catalog.Enemies(), rarity)
	if enemy == nil {
		return nil, errors.Internal("no enemies configured")
	}

	entered, err := o.combat.EnterCombat(ctx, &combat.EnterCombatInput{Player: p, EnemyID: enemy.ID})
	if err != nil {
		return nil, err
	}
	return &ExploreOutput{
		Player:  p,
		Kind:    ResultEnemy,
		Enemy:   entered.Enemy,
		Message: fmt.Sprintf("A wild %s appears!", entered.Enemy.Name),
	}, nil
}

func (o *orchestrator) exploreItem(ctx context.Context, p *entities.Player, m catalog.Mechanics) (*ExploreOutput, error) {
	rarity := rules.RollRarity(o.roller, o.catalog.Rarities(), p.Aggregated.Luck, m.LuckRarityBonus)
	item := rules.PickItemOfRarity(o.roller, o.catalog.Items(), rarity, false)
	if item == nil {
		return nil, errors.Internal("no items configured")
	}

	rules.AddItem(p, item, 1, o.idGen, m.StackLimit)
	rules.AddMastery(p, m.MasteryPerItemFind, m)

	slog.DebugContext(ctx, "exploration item found",
		"player_id", p.ID, "item_id", item.ID, "rarity", item.Rarity)

	return &ExploreOutput{
		Player:  p,
		Kind:    ResultItem,
		Item:    item,
		Message: fmt.Sprintf("You found: %s!", item.Name),
	}, nil
}

func (o *orchestrator) exploreText(p *entities.Player, m catalog.Mechanics) *ExploreOutput {
	lines := o.catalog.Encounters()
	message := "The area is quiet."
	if len(lines) > 0 {
		message = lines[o.roller.Intn(len(lines))]
	}
	rules.AddMastery(p, m.MasteryPerTextFind, m)

	return &ExploreOutput{Player: p, Kind: ResultText, Message: message}
}

func (o *orchestrator) SetZone(ctx context.Context, input *SetZoneInput) (*SetZoneOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if p.Combat.InCombat {
		return nil, errors.FailedPrecondition("cannot travel while in combat")
	}

	world, err := o.catalog.World(p.CurrentWorld)
	if err != nil {
		return nil, err
	}
	if input.ZoneIndex < 0 || input.ZoneIndex >= len(world.Zones) {
		return nil, errors.InvalidArgumentf("no zone %d in %s", input.ZoneIndex, world.Name)
	}
	if input.ZoneIndex > p.UnlockedZones[p.CurrentWorld] {
		return nil, errors.FailedPrecondition("zone not yet unlocked")
	}

	p.CurrentZone = input.ZoneIndex
	zone := world.Zones[input.ZoneIndex]

	return &SetZoneOutput{
		Player:  p,
		Message: fmt.Sprintf("Traveled to %s.", zone.Name),
	}, nil
}
