package rules

import (
	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
)

// ApplyLevelUps consumes banked xp, returning the number of levels gained.
// Each level raises the xp requirement geometrically, grants max hp, and
// fully heals the player.
func ApplyLevelUps(p *entities.Player, m catalog.Mechanics) int {
	gained := 0
	for p.MaxXP > 0 && p.XP >= p.MaxXP {
		p.Level++
		p.XP -= p.MaxXP
		p.MaxXP = int(float64(p.MaxXP) * m.XPLevelMultiplier)
		p.MaxHP += m.HPGainPerLevel
		p.CurrentHP = p.MaxHP
		gained++
	}
	return gained
}

// UpdateRank promotes the player to the highest rank whose level requirement
// is met, reporting whether the rank changed. Ranks are never lost.
func UpdateRank(p *entities.Player, ranks []catalog.RankDefinition) bool {
	best := p.RankID
	bestLevel := -1
	for i := range ranks {
		if p.Level >= ranks[i].MinLevel && ranks[i].MinLevel > bestLevel {
			best = ranks[i].ID
			bestLevel = ranks[i].MinLevel
		}
	}
	if best == p.RankID {
		return false
	}
	p.RankID = best
	return true
}
