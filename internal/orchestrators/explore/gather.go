package explore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/rules"
)

func (o *orchestrator) Gather(ctx context.Context, input *GatherInput) (*GatherOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player
	if p.Combat.InCombat {
		return nil, errors.FailedPrecondition("cannot gather while in combat")
	}

	table, err := o.catalog.GatherTableFor(input.Type)
	if err != nil {
		return nil, err
	}

	m := o.catalog.Mechanics()
	now := o.clock.Now()
	if last, ok := p.Gathering[table.Type]; ok {
		elapsed := now.Unix() - last
		cooldown := int64(m.GatherCooldownSecs)
		if elapsed < cooldown {
			return nil, errors.FailedPreconditionf("%s available in %ds", table.Type, cooldown-elapsed)
		}
	}

	if table.RequiredTool != "" && !p.HasItem(table.RequiredTool) {
		tool, toolErr := o.catalog.Item(table.RequiredTool)
		if toolErr != nil {
			return nil, toolErr
		}
		return nil, errors.FailedPreconditionf("requires a %s", tool.Name)
	}

	roll := o.roller.Float64()
	tier := table.Tiers[len(table.Tiers)-1]
	for _, t := range table.Tiers {
		if roll < t.Threshold {
			tier = t
			break
		}
	}

	item, err := o.catalog.Item(tier.ItemID)
	if err != nil {
		return nil, err
	}

	rules.AddItem(p, item, 1, o.idGen, m.StackLimit)
	p.XP += tier.XP
	if rules.ApplyLevelUps(p, m) > 0 {
		rules.UpdateRank(p, o.catalog.Ranks())
	}
	if p.Gathering == nil {
		p.Gathering = map[string]int64{}
	}
	p.Gathering[table.Type] = now.Unix()

	message := tier.Message
	if message == "" {
		message = fmt.Sprintf("You gathered: %s.", item.Name)
	}

	slog.DebugContext(ctx, "gathered",
		"player_id", p.ID, "type", table.Type, "item_id", item.ID, "xp", tier.XP)

	return &GatherOutput{
		Player:  p,
		Item:    item,
		XP:      tier.XP,
		Message: message,
	}, nil
}
