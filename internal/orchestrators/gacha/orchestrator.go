// Package gacha implements the banner pull engine with its pity guarantee.
package gacha

//go:generate mockgen -destination=mock/mock_service.go -package=gachamock github.com/greenvalley/rpg-core/internal/orchestrators/gacha Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
	"github.com/greenvalley/rpg-core/internal/pkg/rng"
	"github.com/greenvalley/rpg-core/internal/rules"
)

// Service defines the interface for gacha operations
type Service interface {
	// Pull performs amount pulls on a banner, charging the full cost up
	// front
	Pull(ctx context.Context, input *PullInput) (*PullOutput, error)
}

// Config holds the dependencies for the gacha orchestrator
type Config struct {
	Catalog     *catalog.Catalog
	Roller      rng.Roller
	IDGenerator idgen.Generator
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

	return vb.Build()
}

type orchestrator struct {
	catalog *catalog.Catalog
	roller  rng.Roller
	idGen   idgen.Generator
}

// NewOrchestrator creates a new gacha orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		idGen:   cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) Pull(ctx context.Context, input *PullInput) (*PullOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Amount < 1 {
		return nil, errors.InvalidArgument("amount must be at least 1")
	}
	p := input.Player

	banner, err := o.catalog.Banner(input.BannerID)
	if err != nil {
		return nil, err
	}

	totalCost := banner.Cost * input.Amount
	if p.Gold < totalCost {
		return nil, errors.FailedPreconditionf("requires %d gold", totalCost)
	}
	p.Gold -= totalCost

	m := o.catalog.Mechanics()
	highest := o.highestRarity(banner)

	output := &PullOutput{Player: p}
	for i := 0; i < input.Amount; i++ {
		p.Pity++

		rarity := catalog.RarityCommon
		if p.Pity >= m.PityThreshold {
			rarity = highest
		} else {
			rarity = o.rollBannerRarity(banner)
		}
		if rarity == highest {
			p.Pity = 0
		}

		item := o.resolveItem(banner, rarity)
		rules.AddItem(p, item, 1, o.idGen, m.StackLimit)
		output.Items = append(output.Items, item)
	}

	output.Message = fmt.Sprintf("Summoned %d items.", input.Amount)

	slog.DebugContext(ctx, "gacha pulled",
		"player_id", p.ID,
		"banner_id", banner.ID,
		"amount", input.Amount,
		"cost", totalCost,
		"pity", p.Pity,
	)

	return output, nil
}

// highestRarity finds the rarest tier the banner's rate table can produce,
// using the catalog's rarity table as the canonical order.
func (o *orchestrator) highestRarity(banner *catalog.GachaBanner) catalog.Rarity {
	highest := catalog.RarityCommon
	for _, rw := range o.catalog.Rarities() {
		for _, rate := range banner.Rates {
			if rate.Rarity == rw.Name {
				highest = rw.Name
			}
		}
	}
	return highest
}

// rollBannerRarity walks the banner's rate buckets in declared order,
// selecting the first whose cumulative percentage exceeds the roll.
func (o *orchestrator) rollBannerRarity(banner *catalog.GachaBanner) catalog.Rarity {
	roll := o.roller.Float64() * 100
	cumulative := 0.0
	for _, rate := range banner.Rates {
		cumulative += rate.Percent
		if roll < cumulative {
			return rate.Rarity
		}
	}
	return catalog.RarityCommon
}

// resolveItem picks a uniform random gacha-exclusive item of the tier.
// Equipment banners only produce wearable types. Empty pools fall back to
// exclusive Commons, then to any Common.
func (o *orchestrator) resolveItem(banner *catalog.GachaBanner, rarity catalog.Rarity) *catalog.ItemDefinition {
	all := o.catalog.Items()

	pool := o.filterPool(all, banner, rarity)
	if len(pool) == 0 {
		// The fallbacks ignore the banner's pool type.
		for i := range all {
			if all[i].Rarity == catalog.RarityCommon && all[i].GachaExclusive {
				pool = append(pool, &all[i])
			}
		}
	}
	if len(pool) == 0 {
		for i := range all {
			if all[i].Rarity == catalog.RarityCommon {
				pool = append(pool, &all[i])
			}
		}
	}
	return pool[o.roller.Intn(len(pool))]
}

// wearable reports whether the type occupies a typed equipment slot. Tools
// are deliberately absent: equipment banners never produce them.
func wearable(t catalog.ItemType) bool {
	for _, et := range catalog.EquippableTypes {
		if t == et {
			return true
		}
	}
	return false
}

func (o *orchestrator) filterPool(all []catalog.ItemDefinition, banner *catalog.GachaBanner, rarity catalog.Rarity) []*catalog.ItemDefinition {
	var pool []*catalog.ItemDefinition
	for i := range all {
		if all[i].Rarity != rarity || !all[i].GachaExclusive {
			continue
		}
		if banner.PoolType == catalog.GachaPoolEquipment && !wearable(all[i].Type) {
			continue
		}
		pool = append(pool, &all[i])
	}
	return pool
}
