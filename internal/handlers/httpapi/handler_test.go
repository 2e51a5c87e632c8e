package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/handlers/httpapi"
	"github.com/greenvalley/rpg-core/internal/orchestrators/combat"
	"github.com/greenvalley/rpg-core/internal/orchestrators/explore"
	"github.com/greenvalley/rpg-core/internal/orchestrators/gacha"
	"github.com/greenvalley/rpg-core/internal/orchestrators/inventory"
	"github.com/greenvalley/rpg-core/internal/orchestrators/quest"
	"github.com/greenvalley/rpg-core/internal/pkg/clock"
	"github.com/greenvalley/rpg-core/internal/pkg/idgen"
	"github.com/greenvalley/rpg-core/internal/pkg/rng"
	"github.com/greenvalley/rpg-core/internal/repositories/player"
	"github.com/greenvalley/rpg-core/internal/services/game"
	"github.com/greenvalley/rpg-core/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	mux     *http.ServeMux
	roller  *rng.Stub
	cleanup func()
}

func (s *HandlerTestSuite) SetupTest() {
	cat, err := catalog.New(&catalog.Config{Fallback: catalog.FallbackStrict}, catalog.Default())
	s.Require().NoError(err)

	s.roller = &rng.Stub{}
	fixed := clock.NewFixed(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	repo, err := player.NewRedis(&player.RedisConfig{Client: client, Clock: fixed})
	s.Require().NoError(err)

	gen := idgen.NewSequential("inst")

	questSvc, err := quest.NewOrchestrator(&quest.Config{
		Catalog: cat, Roller: s.roller, Clock: fixed,
	})
	s.Require().NoError(err)
	combatSvc, err := combat.NewOrchestrator(&combat.Config{
		Catalog: cat, Roller: s.roller, IDGenerator: gen, HuntTracker: questSvc,
	})
	s.Require().NoError(err)
	exploreSvc, err := explore.NewOrchestrator(&explore.Config{
		Catalog: cat, Roller: s.roller, Clock: fixed, IDGenerator: gen, Combat: combatSvc,
	})
	s.Require().NoError(err)
	gachaSvc, err := gacha.NewOrchestrator(&gacha.Config{
		Catalog: cat, Roller: s.roller, IDGenerator: gen,
	})
	s.Require().NoError(err)
	inventorySvc, err := inventory.NewOrchestrator(&inventory.Config{
		Catalog: cat, IDGenerator: gen,
	})
	s.Require().NoError(err)

	gameSvc, err := game.NewService(&game.Config{
		Repository: repo,
		Catalog:    cat,
		Clock:      fixed,
		Combat:     combatSvc,
		Explore:    exploreSvc,
		Gacha:      gachaSvc,
		Quest:      questSvc,
		Inventory:  inventorySvc,
	})
	s.Require().NoError(err)

	handler, err := httpapi.NewHandler(&httpapi.Config{GameService: gameSvc})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.Register(s.mux)
}

func (s *HandlerTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *HandlerTestSuite) do(method, path, playerID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if playerID != "" {
		req.Header.Set(httpapi.PlayerIDHeader, playerID)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) register(playerID string) {
	s.roller.Ints = []int{0, 0, 0}
	rec := s.do(http.MethodPost, "/v1/players", "",
		`{"id":"`+playerID+`","name":"Tester"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.roller.Ints = nil
	s.roller.Floats = nil
}

func (s *HandlerTestSuite) TestCreatePlayer() {
	s.roller.Ints = []int{0, 0, 0}
	rec := s.do(http.MethodPost, "/v1/players", "", `{"id":"p1","name":"Hana"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Player struct {
			Name      string
			Level     int
			CurrentHP int
			Quests    struct {
				Active []struct{ TemplateID string }
			}
		}
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Hana", resp.Player.Name)
	s.Equal(1, resp.Player.Level)
	s.Equal(100, resp.Player.CurrentHP)
	s.Len(resp.Player.Quests.Active, 3)
}

func (s *HandlerTestSuite) TestCreatePlayerDuplicateConflicts() {
	s.register("p1")

	rec := s.do(http.MethodPost, "/v1/players", "", `{"id":"p1","name":"Hana"}`)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestGetPlayerRequiresHeader() {
	rec := s.do(http.MethodGet, "/v1/player", "", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp struct{ Code string }
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("INVALID_ARGUMENT", resp.Code)
}

func (s *HandlerTestSuite) TestGetPlayerUnknown() {
	rec := s.do(http.MethodGet, "/v1/player", "ghost", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestHealRejectedMapsToPreconditionFailed() {
	s.register("p1")

	rec := s.do(http.MethodPost, "/v1/actions/heal", "p1", "")
	s.Equal(http.StatusPreconditionFailed, rec.Code)
}

func (s *HandlerTestSuite) TestAttackOutsideCombat() {
	s.register("p1")

	rec := s.do(http.MethodPost, "/v1/actions/attack", "p1", "")
	s.Equal(http.StatusPreconditionFailed, rec.Code)
}

func (s *HandlerTestSuite) TestGather() {
	s.register("p1")

	s.roller.Floats = []float64{0.1}
	rec := s.do(http.MethodPost, "/v1/actions/gather", "p1", `{"type":"foraging"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Item struct{ ID string }
		XP   int
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("mat_berry", resp.Item.ID)
	s.Equal(5, resp.XP)
}

func (s *HandlerTestSuite) TestExploreEnemyBranch() {
	s.register("p1")

	s.roller.Floats = []float64{0.40, 0.0}
	s.roller.Ints = []int{0}
	rec := s.do(http.MethodPost, "/v1/actions/explore", "p1", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Kind  string
		Enemy struct{ EnemyID string }
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("enemy", resp.Kind)
	s.Equal("enemy_slime", resp.Enemy.EnemyID)
}

func (s *HandlerTestSuite) TestGachaPullInsufficientGold() {
	s.register("p1")

	rec := s.do(http.MethodPost, "/v1/actions/gacha-pull", "p1",
		`{"bannerId":"banner_standard","amount":1}`)
	s.Equal(http.StatusPreconditionFailed, rec.Code)
}

func (s *HandlerTestSuite) TestInvalidBody() {
	s.register("p1")

	rec := s.do(http.MethodPost, "/v1/actions/gather", "p1", `{"type":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestUnequipEmptySlot() {
	s.register("p1")

	rec := s.do(http.MethodPost, "/v1/actions/unequip", "p1", `{"slot":"weapon"}`)
	s.Equal(http.StatusPreconditionFailed, rec.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
