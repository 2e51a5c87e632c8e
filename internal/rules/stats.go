// Package rules implements the deterministic simulation formulas: stat
// aggregation, weighted rarity rolls, durability wear, leveling and zone
// progression. Everything here is pure state transformation; persistence and
// orchestration live elsewhere.
package rules

import (
	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
)

// Recompute derives the player's aggregated stats from base stats plus every
// equipped, non-broken item and caches the result on the player. Broken
// equipment stays in its slot but contributes nothing.
func Recompute(p *entities.Player, cat *catalog.Catalog) {
	agg := p.BaseStats
	for _, inst := range p.Equipment {
		if inst == nil {
			continue
		}
		def, err := cat.Item(inst.ItemID)
		if err != nil {
			continue
		}
		if inst.Broken(def.MaxDurability) {
			continue
		}
		if def.Stats == nil {
			continue
		}
		agg.DamageMin += def.Stats.Damage
		agg.DamageMax += def.Stats.Damage
		agg.Defense += def.Stats.Defense
		agg.Luck += def.Stats.Luck
	}
	p.Aggregated = agg
}
