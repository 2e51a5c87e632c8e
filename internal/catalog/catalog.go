// Package catalog holds the immutable game content tables: items, enemies,
// worlds, events, banners, quest templates and the numeric mechanics
// constants. A Catalog is built once at startup and shared read-only.
package catalog

import (
	"fmt"
	"log/slog"

	"github.com/greenvalley/rpg-core/internal/errors"
)

// FallbackPolicy controls how the catalog resolves a dangling content
// reference (a stored id that no longer exists in the tables).
type FallbackPolicy string

// Fallback policies.
const (
	// FallbackStrict surfaces a NotFound error for dangling references.
	FallbackStrict FallbackPolicy = "strict"
	// FallbackSubstitute logs the dangling reference and returns the first
	// declared entry of the table instead.
	FallbackSubstitute FallbackPolicy = "substitute"
)

// Content is the full set of raw tables a Catalog is built from.
type Content struct {
	Mechanics    Mechanics              `yaml:"mechanics"`
	Rarities     []RarityWeight         `yaml:"rarities"`
	Difficulties []DifficultyDefinition `yaml:"difficulties"`
	Ranks        []RankDefinition       `yaml:"ranks"`
	Worlds       []WorldDefinition      `yaml:"worlds"`
	Items        []ItemDefinition       `yaml:"items"`
	Enemies      []EnemyDefinition      `yaml:"enemies"`
	Events       []EventDefinition      `yaml:"events"`
	Banners      []GachaBanner          `yaml:"banners"`
	Quests       []QuestTemplate        `yaml:"quests"`
	GatherTables []GatherTable          `yaml:"gatherTables"`
	Encounters   []string               `yaml:"encounters"`
}

// Config configures catalog construction.
type Config struct {
	Fallback FallbackPolicy
}

// Validate checks the config is complete.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	switch c.Fallback {
	case FallbackStrict, FallbackSubstitute:
	case "":
		vb.RequiredField("Fallback")
	default:
		vb.Fieldf("Fallback", "unknown policy %q", c.Fallback)
	}
	return vb.Build()
}

// Catalog is an indexed, immutable view over a Content set.
type Catalog struct {
	fallback FallbackPolicy
	content  Content

	items        map[string]*ItemDefinition
	enemies      map[string]*EnemyDefinition
	events       map[string]*EventDefinition
	worlds       map[string]*WorldDefinition
	ranks        map[string]*RankDefinition
	difficulties map[string]*DifficultyDefinition
	banners      map[string]*GachaBanner
	quests       map[string]*QuestTemplate
	gather       map[string]*GatherTable
}

// New builds a Catalog from content, checking internal consistency.
func New(cfg *Config, content Content) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		fallback:     cfg.Fallback,
		content:      content,
		items:        make(map[string]*ItemDefinition, len(content.Items)),
		enemies:      make(map[string]*EnemyDefinition, len(content.Enemies)),
		events:       make(map[string]*EventDefinition, len(content.Events)),
		worlds:       make(map[string]*WorldDefinition, len(content.Worlds)),
		ranks:        make(map[string]*RankDefinition, len(content.Ranks)),
		difficulties: make(map[string]*DifficultyDefinition, len(content.Difficulties)),
		banners:      make(map[string]*GachaBanner, len(content.Banners)),
		quests:       make(map[string]*QuestTemplate, len(content.Quests)),
		gather:       make(map[string]*GatherTable, len(content.GatherTables)),
	}

	for i := range content.Items {
		d := &content.Items[i]
		if _, dup := c.items[d.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate item id %q", d.ID)
		}
		c.items[d.ID] = d
	}
	for i := range content.Enemies {
		d := &content.Enemies[i]
		if _, dup := c.enemies[d.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate enemy id %q", d.ID)
		}
		c.enemies[d.ID] = d
	}
	for i := range content.Events {
		d := &content.Events[i]
		if _, dup := c.events[d.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate event id %q", d.ID)
		}
		c.events[d.ID] = d
	}
	for i := range content.Worlds {
		d := &content.Worlds[i]
		c.worlds[d.ID] = d
		for _, z := range d.Zones {
			if z.BossID != "" {
				if _, ok := c.enemies[z.BossID]; !ok {
					return nil, errors.InvalidArgumentf("world %q zone %q references unknown boss %q", d.ID, z.Name, z.BossID)
				}
			}
		}
	}
	for i := range content.Ranks {
		c.ranks[content.Ranks[i].ID] = &content.Ranks[i]
	}
	for i := range content.Difficulties {
		c.difficulties[content.Difficulties[i].ID] = &content.Difficulties[i]
	}
	for i := range content.Banners {
		c.banners[content.Banners[i].ID] = &content.Banners[i]
	}
	for i := range content.Quests {
		d := &content.Quests[i]
		c.quests[d.ID] = d
	}
	for i := range content.GatherTables {
		c.gather[content.GatherTables[i].Type] = &content.GatherTables[i]
	}

	if len(c.content.Rarities) == 0 {
		return nil, errors.InvalidArgument("rarity table is empty")
	}
	if len(c.content.Items) == 0 {
		return nil, errors.InvalidArgument("item table is empty")
	}
	return c, nil
}

// Mechanics returns the numeric constants table.
func (c *Catalog) Mechanics() Mechanics { return c.content.Mechanics }

// Rarities returns the rarity weight table in declared order.
func (c *Catalog) Rarities() []RarityWeight { return c.content.Rarities }

// Items returns all item definitions in declared order.
func (c *Catalog) Items() []ItemDefinition { return c.content.Items }

// Enemies returns all enemy definitions in declared order.
func (c *Catalog) Enemies() []EnemyDefinition { return c.content.Enemies }

// Events returns all event definitions in declared order.
func (c *Catalog) Events() []EventDefinition { return c.content.Events }

// Quests returns all quest templates in declared order.
func (c *Catalog) Quests() []QuestTemplate { return c.content.Quests }

// Difficulties returns all difficulty definitions in declared order.
func (c *Catalog) Difficulties() []DifficultyDefinition { return c.content.Difficulties }

// Ranks returns all rank definitions in declared order.
func (c *Catalog) Ranks() []RankDefinition { return c.content.Ranks }

// Banners returns all gacha banners in declared order.
func (c *Catalog) Banners() []GachaBanner { return c.content.Banners }

// Worlds returns all world definitions in declared order.
func (c *Catalog) Worlds() []WorldDefinition { return c.content.Worlds }

// Encounters returns the flavor encounter strings.
func (c *Catalog) Encounters() []string { return c.content.Encounters }

// Item resolves an item id, applying the fallback policy.
func (c *Catalog) Item(id string) (*ItemDefinition, error) {
	if d, ok := c.items[id]; ok {
		return d, nil
	}
	if c.fallback == FallbackSubstitute && len(c.content.Items) > 0 {
		slog.Warn("substituting dangling item reference", "item_id", id)
		return &c.content.Items[0], nil
	}
	return nil, errors.NotFoundf("item %q not found", id)
}

// Enemy resolves an enemy id, applying the fallback policy.
func (c *Catalog) Enemy(id string) (*EnemyDefinition, error) {
	if d, ok := c.enemies[id]; ok {
		return d, nil
	}
	if c.fallback == FallbackSubstitute && len(c.content.Enemies) > 0 {
		slog.Warn("substituting dangling enemy reference", "enemy_id", id)
		return &c.content.Enemies[0], nil
	}
	return nil, errors.NotFoundf("enemy %q not found", id)
}

// Event resolves an event id.
func (c *Catalog) Event(id string) (*EventDefinition, error) {
	if d, ok := c.events[id]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("event %q not found", id)
}

// World resolves a world id.
func (c *Catalog) World(id string) (*WorldDefinition, error) {
	if d, ok := c.worlds[id]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("world %q not found", id)
}

// Rank resolves a rank id.
func (c *Catalog) Rank(id string) (*RankDefinition, error) {
	if d, ok := c.ranks[id]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("rank %q not found", id)
}

// Difficulty resolves a difficulty id, applying the fallback policy.
func (c *Catalog) Difficulty(id string) (*DifficultyDefinition, error) {
	if d, ok := c.difficulties[id]; ok {
		return d, nil
	}
	if c.fallback == FallbackSubstitute && len(c.content.Difficulties) > 0 {
		slog.Warn("substituting dangling difficulty reference", "difficulty_id", id)
		return &c.content.Difficulties[0], nil
	}
	return nil, errors.NotFoundf("difficulty %q not found", id)
}

// Banner resolves a gacha banner id.
func (c *Catalog) Banner(id string) (*GachaBanner, error) {
	if d, ok := c.banners[id]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("banner %q not found", id)
}

// Quest resolves a quest template id.
func (c *Catalog) Quest(id string) (*QuestTemplate, error) {
	if d, ok := c.quests[id]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("quest template %q not found", id)
}

// GatherTableFor resolves the tier table of a gathering type.
func (c *Catalog) GatherTableFor(gatherType string) (*GatherTable, error) {
	if d, ok := c.gather[gatherType]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("gather table %q not found", gatherType)
}

// String implements fmt.Stringer for debug logging.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(items=%d enemies=%d events=%d worlds=%d banners=%d quests=%d)",
		len(c.items), len(c.enemies), len(c.events), len(c.worlds), len(c.banners), len(c.quests))
}
