package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

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
	"github.com/greenvalley/rpg-core/internal/redis"
	"github.com/greenvalley/rpg-core/internal/repositories/player"
	"github.com/greenvalley/rpg-core/internal/services/game"
)

var (
	httpPort       int
	redisEndpoint  string
	catalogPath    string
	fallbackPolicy string
	logLevel       string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP game server",
	Long:  `Start the game server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisEndpoint, "redis", "localhost:6379", "Redis endpoint")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "Content catalog YAML file (built-in defaults when empty)")
	serverCmd.Flags().StringVar(&fallbackPolicy, "fallback-policy", "strict", "Dangling content reference policy: strict or substitute")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runServer(cmd *cobra.Command, args []string) error {
	setupLogging()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cat, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	redisClient, err := redis.NewClient(redisEndpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", redisEndpoint, err)
	}

	gameService, err := buildGameService(cat, redisClient)
	if err != nil {
		return fmt.Errorf("failed to build game service: %w", err)
	}

	handler, err := httpapi.NewHandler(&httpapi.Config{GameService: gameService})
	if err != nil {
		return fmt.Errorf("failed to create HTTP handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing close")
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupLogging() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
}

func loadCatalog() (*catalog.Catalog, error) {
	content := catalog.Default()
	if catalogPath != "" {
		var err error
		content, err = catalog.Load(catalogPath)
		if err != nil {
			return nil, err
		}
	}
	return catalog.New(&catalog.Config{
		Fallback: catalog.FallbackPolicy(fallbackPolicy),
	}, content)
}

func buildGameService(cat *catalog.Catalog, redisClient redis.Client) (game.Service, error) {
	roller := rng.NewSystem()
	realClock := clock.New()
	gen := idgen.NewUUID("inst")

	repo, err := player.NewRedis(&player.RedisConfig{Client: redisClient, Clock: realClock})
	if err != nil {
		return nil, err
	}

	questService, err := quest.NewOrchestrator(&quest.Config{
		Catalog: cat,
		Roller:  roller,
		Clock:   realClock,
	})
	if err != nil {
		return nil, err
	}

	combatService, err := combat.NewOrchestrator(&combat.Config{
		Catalog:     cat,
		Roller:      roller,
		IDGenerator: gen,
		HuntTracker: questService,
	})
	if err != nil {
		return nil, err
	}

	exploreService, err := explore.NewOrchestrator(&explore.Config{
		Catalog:     cat,
		Roller:      roller,
		Clock:       realClock,
		IDGenerator: gen,
		Combat:      combatService,
	})
	if err != nil {
		return nil, err
	}

	gachaService, err := gacha.NewOrchestrator(&gacha.Config{
		Catalog:     cat,
		Roller:      roller,
		IDGenerator: gen,
	})
	if err != nil {
		return nil, err
	}

	inventoryService, err := inventory.NewOrchestrator(&inventory.Config{
		Catalog:     cat,
		IDGenerator: gen,
	})
	if err != nil {
		return nil, err
	}

	return game.NewService(&game.Config{
		Repository: repo,
		Catalog:    cat,
		Clock:      realClock,
		Combat:     combatService,
		Explore:    exploreService,
		Gacha:      gachaService,
		Quest:      questService,
		Inventory:  inventoryService,
	})
}
