package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/greenvalley/rpg-core/internal/errors"
)

// Load parses a yaml content file and overlays it on the built-in defaults.
// Overriding is per section: a file that declares only `items` keeps the
// default tables for everything else.
func Load(path string) (Content, error) {
	base := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, errors.Wrapf(err, "reading content file %s", path)
	}

	var overlay Content
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Content{}, errors.Wrapf(err, "parsing content file %s", path)
	}

	merge(&base, &overlay)
	return base, nil
}

func merge(base, overlay *Content) {
	zero := Mechanics{}
	if overlay.Mechanics != zero {
		base.Mechanics = overlay.Mechanics
	}
	if len(overlay.Rarities) > 0 {
		base.Rarities = overlay.Rarities
	}
	if len(overlay.Difficulties) > 0 {
		base.Difficulties = overlay.Difficulties
	}
	if len(overlay.Ranks) > 0 {
		base.Ranks = overlay.Ranks
	}
	if len(overlay.Worlds) > 0 {
		base.Worlds = overlay.Worlds
	}
	if len(overlay.Items) > 0 {
		base.Items = overlay.Items
	}
	if len(overlay.Enemies) > 0 {
		base.Enemies = overlay.Enemies
	}
	if len(overlay.Events) > 0 {
		base.Events = overlay.Events
	}
	if len(overlay.Banners) > 0 {
		base.Banners = overlay.Banners
	}
	if len(overlay.Quests) > 0 {
		base.Quests = overlay.Quests
	}
	if len(overlay.GatherTables) > 0 {
		base.GatherTables = overlay.GatherTables
	}
	if len(overlay.Encounters) > 0 {
		base.Encounters = overlay.Encounters
	}
}
