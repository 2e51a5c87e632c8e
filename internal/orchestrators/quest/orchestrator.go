// Package quest implements the quest orchestrator: daily quest generation,
// hunt progress tracking, and reward claims.
package quest

//go:generate mockgen -destination=mock/mock_service.go -package=questmock github.com/greenvalley/rpg-core/internal/orchestrators/quest Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/pkg/clock"
	"github.com/greenvalley/rpg-core/internal/pkg/rng"
	"github.com/greenvalley/rpg-core/internal/rules"
)

// Service defines the interface for quest operations
type Service interface {
	// GenerateDaily refreshes the player's daily quest set when a new day
	// has started or the set is empty
	GenerateDaily(ctx context.Context, input *GenerateDailyInput) (*GenerateDailyOutput, error)

	// Claim pays out a quest's reward
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)

	// OnEnemyDefeated advances matching hunt quests, returning log lines
	// for any progress made
	OnEnemyDefeated(player *entities.Player, enemyID string) []string
}

// Config holds the dependencies for the quest orchestrator
type Config struct {
	Catalog *catalog.Catalog
	Roller  rng.Roller
	Clock   clock.Clock
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
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog *catalog.Catalog
	roller  rng.Roller
	clock   clock.Clock
}

// NewOrchestrator creates a new quest orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		clock:   cfg.Clock,
	}, nil
}

func (o *orchestrator) GenerateDaily(ctx context.Context, input *GenerateDailyInput) (*GenerateDailyOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player

	now := o.clock.Now()
	sameDay := p.Quests.LastGenerated != 0 &&
		now.UTC().Format("2006-01-02") == time.Unix(p.Quests.LastGenerated, 0).UTC().Format("2006-01-02")

	if sameDay && len(p.Quests.Active) > 0 {
		return &GenerateDailyOutput{Player: p, Refreshed: false}, nil
	}

	pool := append([]catalog.QuestTemplate(nil), o.catalog.Quests()...)
	count := o.catalog.Mechanics().DailyQuestCount

	active := make([]entities.QuestProgress, 0, count)
	for i := 0; i < count && len(pool) > 0; i++ {
		idx := o.roller.Intn(len(pool))
		active = append(active, entities.QuestProgress{TemplateID: pool[idx].ID})
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	p.Quests = entities.QuestLog{Active: active, LastGenerated: now.Unix()}

	slog.DebugContext(ctx, "daily quests generated",
		"player_id", p.ID, "count", len(active))

	return &GenerateDailyOutput{Player: p, Refreshed: true}, nil
}

func (o *orchestrator) Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player

	if input.QuestIndex < 0 || input.QuestIndex >= len(p.Quests.Active) {
		return nil, errors.NotFoundf("no quest at index %d", input.QuestIndex)
	}
	q := &p.Quests.Active[input.QuestIndex]
	if q.IsClaimed {
		return nil, errors.FailedPrecondition("quest already claimed")
	}

	template, err := o.catalog.Quest(q.TemplateID)
	if err != nil {
		return nil, err
	}

	switch template.Kind {
	case catalog.QuestHunt:
		if !q.IsCompleted {
			return nil, errors.FailedPrecondition("quest not complete")
		}
	case catalog.QuestCollect:
		if !rules.RemoveItems(p, template.TargetID, template.Amount) {
			return nil, errors.FailedPreconditionf("need %d %s", template.Amount, template.TargetName)
		}
		q.IsCompleted = true
	default:
		return nil, errors.Internalf("unknown quest kind %q", template.Kind)
	}

	q.IsClaimed = true
	p.Gold += template.Reward.Gold
	p.XP += template.Reward.XP

	m := o.catalog.Mechanics()
	if rules.ApplyLevelUps(p, m) > 0 {
		rules.UpdateRank(p, o.catalog.Ranks())
	}

	return &ClaimOutput{
		Player:  p,
		Message: fmt.Sprintf("Claimed: %d Gold, %d XP", template.Reward.Gold, template.Reward.XP),
	}, nil
}

func (o *orchestrator) OnEnemyDefeated(p *entities.Player, enemyID string) []string {
	var log []string
	for i := range p.Quests.Active {
		q := &p.Quests.Active[i]
		if q.IsCompleted {
			continue
		}
		template, err := o.catalog.Quest(q.TemplateID)
		if err != nil || template.Kind != catalog.QuestHunt || template.TargetID != enemyID {
			continue
		}
		q.Progress++
		if q.Progress >= template.Amount {
			q.IsCompleted = true
			log = append(log, fmt.Sprintf("Quest complete: %s!", template.Name))
		}
	}
	return log
}
