package explore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/orchestrators/combat"
	"github.com/greenvalley/rpg-core/internal/rules"
)

func (o *orchestrator) ResolveEventChoice(ctx context.Context, input *ResolveEventChoiceInput) (*ResolveEventChoiceOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if p.ActiveEventID == "" {
		return nil, errors.FailedPrecondition("no active event")
	}

	event, err := o.catalog.Event(p.ActiveEventID)
	if err != nil {
		return nil, err
	}
	choice := event.Choice(input.ChoiceID)
	if choice == nil {
		return nil, errors.NotFoundf("event %s has no choice %q", event.ID, input.ChoiceID)
	}

	if err := o.payRequirement(p, choice.Requirement); err != nil {
		return nil, err
	}

	effect := &choice.Effect
	if effect.Chance != nil && o.roller.Float64() >= *effect.Chance {
		effect = effect.Fail
		if effect == nil {
			effect = &catalog.Effect{Kind: catalog.EffectText, Message: "Nothing happened."}
		}
	}

	output, err := o.applyEffect(ctx, p, effect)
	if err != nil {
		return nil, err
	}

	p.ActiveEventID = ""

	slog.DebugContext(ctx, "event resolved",
		"player_id", p.ID, "event_id", event.ID, "choice_id", input.ChoiceID)

	return output, nil
}

// payRequirement validates a choice's requirement and applies its cost.
// Gold is deducted; items are consumed from inventory only, never from
// equipment.
func (o *orchestrator) payRequirement(p *entities.Player, req *catalog.Requirement) error {
	if req == nil {
		return nil
	}
	switch req.Kind {
	case catalog.RequirementGold:
		if p.Gold < req.Amount {
			return errors.FailedPreconditionf("requires %d gold", req.Amount)
		}
		p.Gold -= req.Amount
		return nil
	case catalog.RequirementItem:
		if !p.HasItem(req.ItemID) {
			name := req.ItemName
			if name == "" {
				name = req.ItemID
			}
			return errors.FailedPreconditionf("missing required item: %s", name)
		}
		if req.Consume && p.InventoryCount(req.ItemID) > 0 {
			rules.RemoveItems(p, req.ItemID, 1)
		}
		return nil
	case catalog.RequirementStat:
		if statValue(p, req.Stat) < req.Amount {
			return errors.FailedPreconditionf("requires %d %s", req.Amount, req.Stat)
		}
		return nil
	default:
		return errors.Internalf("unknown requirement kind %q", req.Kind)
	}
}

func statValue(p *entities.Player, stat string) int {
	switch stat {
	case "luck":
		return p.Aggregated.Luck
	case "defense":
		return p.Aggregated.Defense
	case "damageMin":
		return p.Aggregated.DamageMin
	case "damageMax":
		return p.Aggregated.DamageMax
	default:
		return 0
	}
}

func (o *orchestrator) applyEffect(ctx context.Context, p *entities.Player, effect *catalog.Effect) (*ResolveEventChoiceOutput, error) {
	out := &ResolveEventChoiceOutput{Player: p, Message: effect.Message}
	m := o.catalog.Mechanics()

	switch effect.Kind {
	case catalog.EffectHeal:
		p.CurrentHP += effect.Amount
		if p.CurrentHP > p.MaxHP {
			p.CurrentHP = p.MaxHP
		}
		if out.Message == "" {
			out.Message = fmt.Sprintf("You healed for %d HP.", effect.Amount)
		}

	case catalog.EffectDamage:
		p.CurrentHP -= effect.Amount
		if p.CurrentHP < 0 {
			p.CurrentHP = 0
		}
		if out.Message == "" {
			out.Message = fmt.Sprintf("You took %d damage.", effect.Amount)
		}

	case catalog.EffectGold:
		p.Gold += effect.Amount
		if out.Message == "" {
			out.Message = fmt.Sprintf("You found %d Gold.", effect.Amount)
		}

	case catalog.EffectXP:
		p.XP += effect.Amount
		if rules.ApplyLevelUps(p, m) > 0 {
			rules.UpdateRank(p, o.catalog.Ranks())
		}
		if out.Message == "" {
			out.Message = fmt.Sprintf("You gained %d XP.", effect.Amount)
		}

	case catalog.EffectItem:
		item, err := o.resolveEffectItem(effect)
		if err != nil {
			return nil, err
		}
		rules.AddItem(p, item, 1, o.idGen, m.StackLimit)
		out.Item = item
		if out.Message == "" {
			out.Message = fmt.Sprintf("You received: %s", item.Name)
		}

	case catalog.EffectCombat:
		rarity := effect.EnemyRarity
		if rarity == "" {
			rarity = catalog.RarityCommon
		}
		enemy := rules.PickEnemyOfRarity(o.roller, o.catalog.Enemies(), rarity)
		if enemy == nil {
			return nil, errors.Internal("no enemies configured")
		}
		entered, err := o.combat.EnterCombat(ctx, &combat.EnterCombatInput{Player: p, EnemyID: enemy.ID})
		if err != nil {
			return nil, err
		}
		out.Enemy = entered.Enemy
		if out.Message == "" {
			out.Message = fmt.Sprintf("A %s attacks!", entered.Enemy.Name)
		}

	case catalog.EffectText:
		if out.Message == "" {
			out.Message = "Nothing happened."
		}

	default:
		return nil, errors.Internalf("unknown effect kind %q", effect.Kind)
	}

	return out, nil
}

func (o *orchestrator) resolveEffectItem(effect *catalog.Effect) (*catalog.ItemDefinition, error) {
	if effect.ItemID != "" {
		return o.catalog.Item(effect.ItemID)
	}
	rarity := effect.Rarity
	if rarity == "" {
		rarity = catalog.RarityCommon
	}
	item := rules.PickItemOfRarity(o.roller, o.catalog.Items(), rarity, false)
	if item == nil {
		return nil, errors.Internal("no items configured")
	}
	return item, nil
}
