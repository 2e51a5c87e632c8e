// Package combat implements the combat orchestrator: entering combat,
// attack turns with retaliation, paid healing, and flee attempts.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/greenvalley/rpg-core/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
	"github.com/greenvalley/rpg-core/internal/pkg/rng"
	"github.com/greenvalley/rpg-core/internal/rules"
)

// Service defines the interface for combat operations
type Service interface {
	// EnterCombat snapshots an enemy and locks the player into combat
	EnterCombat(ctx context.Context, input *EnterCombatInput) (*EnterCombatOutput, error)

	// Attack resolves one combat turn
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// Heal trades gold for hp, in or out of combat
	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)

	// Flee attempts to escape the current combat
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)
}

// HuntTracker receives enemy-defeated notifications so quest progress can
// advance without this package knowing about quest internals.
type HuntTracker interface {
	OnEnemyDefeated(player *entities.Player, enemyID string) []string
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Catalog     *catalog.Catalog
	Roller      rng.Roller
	IDGenerator idgen.Generator
	HuntTracker HuntTracker
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.HuntTracker == nil {
		vb.RequiredField("HuntTracker")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog *catalog.Catalog
	roller  rng.Roller
	idGen   idgen.Generator
	hunts   HuntTracker
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		idGen:   cfg.IDGenerator,
		hunts:   cfg.HuntTracker,
	}, nil
}

func (o *orchestrator) EnterCombat(ctx context.Context, input *EnterCombatInput) (*EnterCombatOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}
	p := input.Player
	if p.Combat.InCombat {
		return nil, errors.FailedPrecondition("already in combat")
	}

	enemy, err := o.catalog.Enemy(input.EnemyID)
	if err != nil {
		return nil, err
	}
	diff, err := o.catalog.Difficulty(p.DifficultyID)
	if err != nil {
		return nil, err
	}

	snapshot := snapshotEnemy(enemy, diff)
	p.Combat = entities.CombatState{InCombat: true, Enemy: snapshot}

	slog.DebugContext(ctx, "combat started",
		"player_id", p.ID,
		"enemy_id", enemy.ID,
		"enemy_hp", snapshot.MaxHP,
	)

	return &EnterCombatOutput{Player: p, Enemy: snapshot}, nil
}

// snapshotEnemy clones an enemy definition with difficulty multipliers baked
// in, so later turns work on plain numbers.
func snapshotEnemy(enemy *catalog.EnemyDefinition, diff *catalog.DifficultyDefinition) *entities.EnemySnapshot {
	maxHP := int(float64(enemy.MaxHP) * diff.Multipliers.EnemyHP)
	return &entities.EnemySnapshot{
		EnemyID: enemy.ID,
		Name:    enemy.Name,
		Rarity:  string(enemy.Rarity),
		Level:   enemy.Level,
		HP:      maxHP,
		MaxHP:   maxHP,
		XP:      int(float64(enemy.XP) * diff.Multipliers.XP),
		Gold:    enemy.Gold,
	}
}

func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if !p.Combat.InCombat || p.Combat.Enemy == nil {
		return nil, errors.FailedPrecondition("not in combat")
	}

	enemy := p.Combat.Enemy
	out := &AttackOutput{Player: p}

	dmg := rng.IntBetween(o.roller, p.Aggregated.DamageMin, p.Aggregated.DamageMax)
	enemy.HP -= dmg
	out.Log = append(out.Log, fmt.Sprintf("You hit %s for %d damage.", enemy.Name, dmg))

	o.wearWeapon(p, out)

	if enemy.HP <= 0 {
		if err := o.resolveVictory(ctx, p, enemy, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	o.retaliate(p, enemy, out)
	return out, nil
}

func (o *orchestrator) wearWeapon(p *entities.Player, out *AttackOutput) {
	weapon := p.Equipment[entities.SlotWeapon]
	if weapon == nil {
		return
	}
	def, err := o.catalog.Item(weapon.ItemID)
	if err != nil {
		return
	}
	if rules.Wear(weapon, def) {
		out.Log = append(out.Log, "Your weapon has broken!")
		rules.Recompute(p, o.catalog)
	}
}

func (o *orchestrator) resolveVictory(ctx context.Context, p *entities.Player, enemy *entities.EnemySnapshot, out *AttackOutput) error {
	m := o.catalog.Mechanics()

	out.Victory = true
	p.Combat = entities.CombatState{}
	p.XP += enemy.XP
	p.Gold += enemy.Gold
	out.Log = append(out.Log, fmt.Sprintf("Victory! Gained %d XP and %d Gold.", enemy.XP, enemy.Gold))

	out.Log = append(out.Log, o.hunts.OnEnemyDefeated(p, enemy.EnemyID)...)

	if enemy.Rarity == string(catalog.RarityBoss) {
		world, err := o.catalog.World(p.CurrentWorld)
		if err != nil {
			return err
		}
		out.Log = append(out.Log, "Zone boss defeated! Mastery reset.")
		if rules.HandleBossVictory(p, world) {
			out.Log = append(out.Log, "New zone unlocked!")
		}
	} else {
		rules.AddMastery(p, m.MasteryPerKill, m)
	}

	if gained := rules.ApplyLevelUps(p, m); gained > 0 {
		out.Log = append(out.Log, fmt.Sprintf("Level up! You are now level %d.", p.Level))
		rules.UpdateRank(p, o.catalog.Ranks())
	}

	if err := o.rollLoot(ctx, p, enemy, out); err != nil {
		return err
	}
	return nil
}

// rollLoot rolls each loot table entry independently. The effective chance is
// the entry's chance scaled by the difficulty loot multiplier and the
// player's luck, capped at certainty.
func (o *orchestrator) rollLoot(ctx context.Context, p *entities.Player, enemy *entities.EnemySnapshot, out *AttackOutput) error {
	def, err := o.catalog.Enemy(enemy.EnemyID)
	if err != nil {
		return err
	}
	if len(def.Loot) == 0 {
		return nil
	}

	diff, err := o.catalog.Difficulty(p.DifficultyID)
	if err != nil {
		return err
	}
	m := o.catalog.Mechanics()

	for _, entry := range def.Loot {
		effective := entry.Chance * diff.Multipliers.LootChance * (1 + float64(p.Aggregated.Luck)*m.LuckLootChanceBonus)
		if effective > 1 {
			effective = 1
		}
		if o.roller.Float64() >= effective {
			continue
		}

		item, err := o.catalog.Item(entry.ItemID)
		if err != nil {
			slog.WarnContext(ctx, "skipping unresolvable loot entry",
				"enemy_id", def.ID, "item_id", entry.ItemID)
			continue
		}

		qty := 1
		if entry.MaxQty > entry.MinQty {
			qty = rng.IntBetween(o.roller, entry.MinQty, entry.MaxQty)
		} else if entry.MinQty > 1 {
			qty = entry.MinQty
		}

		rules.AddItem(p, item, qty, o.idGen, m.StackLimit)
		out.Loot = append(out.Loot, LootDrop{Item: item, Quantity: qty})
		out.Log = append(out.Log, fmt.Sprintf("Loot: %s!", item.Name))
	}
	return nil
}

func (o *orchestrator) retaliate(p *entities.Player, enemy *entities.EnemySnapshot, out *AttackOutput) {
	diff, err := o.catalog.Difficulty(p.DifficultyID)
	if err != nil {
		// Difficulty resolution failed under a strict catalog; fight on
		// with neutral multipliers rather than aborting mid-turn.
		diff = &catalog.DifficultyDefinition{
			Multipliers: catalog.DifficultyMultipliers{EnemyDmg: 1},
		}
	}

	dmg := rng.IntBetween(o.roller, 2, 10)
	dmg = int(float64(dmg) * diff.Multipliers.EnemyDmg)
	dmg -= p.Aggregated.Defense / 2
	if dmg < 1 {
		dmg = 1
	}

	p.CurrentHP -= dmg
	out.Log = append(out.Log, fmt.Sprintf("%s hits you for %d damage.", enemy.Name, dmg))

	if p.CurrentHP <= 0 {
		out.Defeat = true
		p.CurrentHP = 0
		p.Combat = entities.CombatState{}
		out.Log = append(out.Log, "You were defeated.")
	}
}

func (o *orchestrator) Heal(ctx context.Context, input *HealInput) (*HealOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	m := o.catalog.Mechanics()

	if p.Gold < m.HealCost {
		return nil, errors.FailedPreconditionf("healing costs %d gold", m.HealCost)
	}
	if p.CurrentHP >= p.MaxHP {
		return nil, errors.FailedPrecondition("already at full health")
	}

	p.Gold -= m.HealCost
	p.CurrentHP += m.HealAmount
	if p.CurrentHP > p.MaxHP {
		p.CurrentHP = p.MaxHP
	}

	return &HealOutput{
		Player:  p,
		Message: fmt.Sprintf("Healed for %d HP.", m.HealAmount),
	}, nil
}

func (o *orchestrator) Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if !p.Combat.InCombat || p.Combat.Enemy == nil {
		return nil, errors.FailedPrecondition("not in combat")
	}

	m := o.catalog.Mechanics()
	chance := m.FleeBaseChance + m.FleeLuckBonus*p.Aggregated.Luck - m.FleeEnemyLevelMalus*p.Combat.Enemy.Level
	if chance < 10 {
		chance = 10
	}
	if chance > 90 {
		chance = 90
	}

	roll := o.roller.Float64() * 100
	if roll < float64(chance) {
		p.Combat = entities.CombatState{}
		return &FleeOutput{Player: p, Success: true, Message: "You fled safely!"}, nil
	}

	dmg := int(float64(p.MaxHP) * m.FleeFailDamageFrac)
	p.CurrentHP -= dmg
	if p.CurrentHP < 1 {
		p.CurrentHP = 1
	}

	return &FleeOutput{
		Player:  p,
		Success: false,
		Message: fmt.Sprintf("Failed to flee! Took %d damage.", dmg),
	}, nil
}
