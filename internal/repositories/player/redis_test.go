package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/pkg/clock"
	"github.com/greenvalley/rpg-core/internal/repositories/player"
	"github.com/greenvalley/rpg-core/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    player.Repository
	clock   *clock.Fixed
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	repo, err := player.NewRedis(&player.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) newPlayer(id string) *entities.Player {
	return &entities.Player{
		ID:           id,
		Name:         "Tester",
		Level:        1,
		MaxXP:        100,
		CurrentHP:    100,
		MaxHP:        100,
		BaseStats:    entities.Stats{DamageMin: 5, DamageMax: 10},
		RankID:       "rank_adventurer",
		DifficultyID: "difficulty_normal",
		CurrentWorld: "world_green_valley",
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, player.CreateInput{Player: s.newPlayer("p1")})
	s.Require().NoError(err)
	s.Equal(int64(1), created.Player.Version)
	s.Equal(entities.CurrentSchemaVersion, created.Player.SchemaVersion)
	s.Equal(s.clock.Now().Unix(), created.Player.CreatedAt)

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal("Tester", got.Player.Name)
	s.Equal(100, got.Player.MaxHP)
	s.Equal(int64(1), got.Player.Version)
}

func (s *RedisRepositoryTestSuite) TestCreate_Duplicate() {
	_, err := s.repo.Create(s.ctx, player.CreateInput{Player: s.newPlayer("p1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, player.CreateInput{Player: s.newPlayer("p1")})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreate_Validation() {
	_, err := s.repo.Create(s.ctx, player.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, player.CreateInput{Player: &entities.Player{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, player.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate_IncrementsVersion() {
	created, err := s.repo.Create(s.ctx, player.CreateInput{Player: s.newPlayer("p1")})
	s.Require().NoError(err)

	p := created.Player
	p.Gold = 250
	s.clock.Advance(time.Minute)

	updated, err := s.repo.Update(s.ctx, player.UpdateInput{Player: p})
	s.Require().NoError(err)
	s.Equal(int64(2), updated.Player.Version)
	s.Equal(s.clock.Now().Unix(), updated.Player.UpdatedAt)

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(250, got.Player.Gold)
}

func (s *RedisRepositoryTestSuite) TestUpdate_StaleVersionAborts() {
	created, err := s.repo.Create(s.ctx, player.CreateInput{Player: s.newPlayer("p1")})
	s.Require().NoError(err)

	first := *created.Player
	first.Gold = 100
	_, err = s.repo.Update(s.ctx, player.UpdateInput{Player: &first})
	s.Require().NoError(err)

	// A writer still holding version 1 must not clobber the new state.
	stale := *created.Player
	stale.Version = 1
	stale.Gold = 999
	_, err = s.repo.Update(s.ctx, player.UpdateInput{Player: &stale})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(100, got.Player.Gold)
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	_, err := s.repo.Update(s.ctx, player.UpdateInput{Player: s.newPlayer("ghost")})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, player.CreateInput{Player: s.newPlayer("p1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{ID: "p1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete_NotFound() {
	_, err := s.repo.Delete(s.ctx, player.DeleteInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
