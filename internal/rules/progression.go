package rules

import (
	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
)

// AddMastery raises the player's mastery of their current zone, capped at the
// boss threshold, and returns the new value.
func AddMastery(p *entities.Player, amount int, m catalog.Mechanics) int {
	if p.ZoneMastery == nil {
		p.ZoneMastery = make(map[string]int)
	}
	key := entities.MasteryKey(p.CurrentWorld, p.CurrentZone)
	v := p.ZoneMastery[key] + amount
	if v > m.MasteryBossThreshold {
		v = m.MasteryBossThreshold
	}
	p.ZoneMastery[key] = v
	return v
}

// HandleBossVictory resets the current zone's mastery so the boss can be
// farmed again, and unlocks the next zone when the defeated zone is the
// player's frontier and the world has one. Reports whether a zone unlocked.
func HandleBossVictory(p *entities.Player, world *catalog.WorldDefinition) bool {
	if p.ZoneMastery == nil {
		p.ZoneMastery = make(map[string]int)
	}
	if p.UnlockedZones == nil {
		p.UnlockedZones = make(map[string]int)
	}

	p.ZoneMastery[entities.MasteryKey(p.CurrentWorld, p.CurrentZone)] = 0

	frontier := p.UnlockedZones[p.CurrentWorld]
	if p.CurrentZone == frontier && p.CurrentZone < len(world.Zones)-1 {
		p.UnlockedZones[p.CurrentWorld] = frontier + 1
		return true
	}
	return false
}
