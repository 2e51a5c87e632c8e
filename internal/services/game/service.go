// Package game is the action layer over the orchestrators. It owns the
// load-resolve-persist cycle for every player action and serializes
// concurrent actions per player, so at most one mutation is in flight for a
// given player at a time. Different players proceed in parallel; the catalog
// is shared read-only.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/greenvalley/rpg-core/internal/services/game Service

import (
	"context"
	"sync"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/orchestrators/combat"
	"github.com/greenvalley/rpg-core/internal/orchestrators/explore"
	"github.com/greenvalley/rpg-core/internal/orchestrators/gacha"
	"github.com/greenvalley/rpg-core/internal/orchestrators/inventory"
	"github.com/greenvalley/rpg-core/internal/orchestrators/quest"
	"github.com/greenvalley/rpg-core/internal/pkg/clock"
	"github.com/greenvalley/rpg-core/internal/repositories/player"
	"github.com/greenvalley/rpg-core/internal/rules"
)

// Service exposes every player action of the game
type Service interface {
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	Attack(ctx context.Context, input *ActionInput) (*combat.AttackOutput, error)
	Heal(ctx context.Context, input *ActionInput) (*combat.HealOutput, error)
	Flee(ctx context.Context, input *ActionInput) (*combat.FleeOutput, error)

	Explore(ctx context.Context, input *ExploreInput) (*explore.ExploreOutput, error)
	ResolveEventChoice(ctx context.Context, input *ResolveEventChoiceInput) (*explore.ResolveEventChoiceOutput, error)
	Gather(ctx context.Context, input *GatherInput) (*explore.GatherOutput, error)
	SetZone(ctx context.Context, input *SetZoneInput) (*explore.SetZoneOutput, error)

	GachaPull(ctx context.Context, input *GachaPullInput) (*gacha.PullOutput, error)

	Equip(ctx context.Context, input *InventoryIndexInput) (*inventory.EquipOutput, error)
	Unequip(ctx context.Context, input *UnequipInput) (*inventory.UnequipOutput, error)
	UseItem(ctx context.Context, input *InventoryIndexInput) (*inventory.UseItemOutput, error)
	StackInventory(ctx context.Context, input *ActionInput) (*inventory.StackInventoryOutput, error)
	SplitItem(ctx context.Context, input *InventoryIndexInput) (*inventory.SplitItemOutput, error)
	RepairItem(ctx context.Context, input *RepairItemInput) (*inventory.RepairItemOutput, error)
	Buy(ctx context.Context, input *BuyInput) (*inventory.BuyOutput, error)
	Sell(ctx context.Context, input *InventoryIndexInput) (*inventory.SellOutput, error)

	ClaimQuest(ctx context.Context, input *ClaimQuestInput) (*quest.ClaimOutput, error)
}

// Config holds the dependencies for the game service
type Config struct {
	Repository player.Repository
	Catalog    *catalog.Catalog
	Clock      clock.Clock
	Combat     combat.Service
	Explore    explore.Service
	Gacha      gacha.Service
	Quest      quest.Service
	Inventory  inventory.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Explore == nil {
		vb.RequiredField("Explore")
	}
	if c.Gacha == nil {
		vb.RequiredField("Gacha")
	}
	if c.Quest == nil {
		vb.RequiredField("Quest")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}

	return vb.Build()
}

type service struct {
	repo      player.Repository
	catalog   *catalog.Catalog
	clock     clock.Clock
	combat    combat.Service
	explore   explore.Service
	gacha     gacha.Service
	quest     quest.Service
	inventory inventory.Service

	locks sync.Map // player id -> *sync.Mutex
}

// NewService creates a new game service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		repo:      cfg.Repository,
		catalog:   cfg.Catalog,
		clock:     cfg.Clock,
		combat:    cfg.Combat,
		explore:   cfg.Explore,
		gacha:     cfg.Gacha,
		quest:     cfg.Quest,
		inventory: cfg.Inventory,
	}, nil
}

func (s *service) lockFor(playerID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(playerID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// withPlayer runs fn inside the player's action critical section: load,
// recompute cached stats, mutate, persist. A version conflict from another
// process surfaces as errors.Aborted for the caller to retry.
func (s *service) withPlayer(ctx context.Context, playerID string, fn func(p *entities.Player) error) error {
	if playerID == "" {
		return errors.InvalidArgument("player ID is required")
	}

	mu := s.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	got, err := s.repo.Get(ctx, player.GetInput{ID: playerID})
	if err != nil {
		return err
	}
	p := got.Player
	rules.Recompute(p, s.catalog)

	if err := fn(p); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, player.UpdateInput{Player: p})
	return err
}

func (s *service) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}

	m := s.catalog.Mechanics()
	p := &entities.Player{
		ID:        input.ID,
		Name:      input.Name,
		Level:     1,
		XP:        0,
		MaxXP:     100,
		CurrentHP: m.PlayerBaseHP,
		MaxHP:     m.PlayerBaseHP,
		Gold:      0,
		BaseStats: entities.Stats{
			DamageMin: m.PlayerBaseDamageMin,
			DamageMax: m.PlayerBaseDamageMax,
		},
		RankID:        defaultRankID(s.catalog),
		DifficultyID:  defaultDifficultyID(s.catalog),
		CurrentWorld:  defaultWorldID(s.catalog),
		CurrentZone:   0,
		UnlockedZones: map[string]int{},
		ZoneMastery:   map[string]int{},
		Equipment:     map[entities.Slot]*entities.ItemInstance{},
		Gathering:     map[string]int64{},
	}
	rules.Recompute(p, s.catalog)

	if _, err := s.quest.GenerateDaily(ctx, &quest.GenerateDailyInput{Player: p}); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, player.CreateInput{Player: p})
	if err != nil {
		return nil, err
	}
	return &CreatePlayerOutput{Player: created.Player}, nil
}

// GetPlayer loads a player, refreshing the daily quest set when a new day
// has started since the last refresh.
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output := &GetPlayerOutput{}
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		if _, err := s.quest.GenerateDaily(ctx, &quest.GenerateDailyInput{Player: p}); err != nil {
			return err
		}
		output.Player = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func defaultRankID(c *catalog.Catalog) string {
	if ranks := c.Ranks(); len(ranks) > 0 {
		return ranks[0].ID
	}
	return ""
}

func defaultDifficultyID(c *catalog.Catalog) string {
	for _, d := range c.Difficulties() {
		if d.Default {
			return d.ID
		}
	}
	if all := c.Difficulties(); len(all) > 0 {
		return all[0].ID
	}
	return ""
}

func defaultWorldID(c *catalog.Catalog) string {
	if worlds := c.Worlds(); len(worlds) > 0 {
		return worlds[0].ID
	}
	return ""
}
