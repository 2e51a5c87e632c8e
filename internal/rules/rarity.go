package rules

import (
	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/pkg/rng"
)

// RollRarity performs a weighted roll over the rarity table. Luck inflates
// every non-Common weight by luckBonus per point, truncated to an integer, so
// zero-weight tiers stay unreachable. The table is walked in declared order;
// ties from truncation resolve toward earlier entries.
func RollRarity(r rng.Roller, table []catalog.RarityWeight, luck int, luckBonus float64) catalog.Rarity {
	weights := make([]int, len(table))
	total := 0
	for i, rw := range table {
		w := rw.Weight
		if rw.Name != catalog.RarityCommon {
			w = int(float64(w) * (1 + float64(luck)*luckBonus))
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return catalog.RarityCommon
	}

	roll := r.Float64() * float64(total)
	for i, rw := range table {
		roll -= float64(weights[i])
		if roll <= 0 {
			return rw.Name
		}
	}
	return catalog.RarityCommon
}

// PickItemOfRarity picks a uniform random item of the given tier. When the
// tier holds no eligible items the first item of the table stands in, so a
// roll always yields something.
func PickItemOfRarity(r rng.Roller, all []catalog.ItemDefinition, rarity catalog.Rarity, includeExclusive bool) *catalog.ItemDefinition {
	var pool []*catalog.ItemDefinition
	for i := range all {
		if all[i].Rarity != rarity {
			continue
		}
		if !includeExclusive && all[i].GachaExclusive {
			continue
		}
		pool = append(pool, &all[i])
	}
	if len(pool) == 0 {
		return &all[0]
	}
	return pool[r.Intn(len(pool))]
}

// PickEnemyOfRarity picks a uniform random enemy of the given tier, falling
// back to the first enemy of the table for empty tiers.
func PickEnemyOfRarity(r rng.Roller, all []catalog.EnemyDefinition, rarity catalog.Rarity) *catalog.EnemyDefinition {
	var pool []*catalog.EnemyDefinition
	for i := range all {
		if all[i].Rarity == rarity {
			pool = append(pool, &all[i])
		}
	}
	if len(pool) == 0 {
		return &all[0]
	}
	return pool[r.Intn(len(pool))]
}
