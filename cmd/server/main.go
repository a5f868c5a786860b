// Package main is the entry point for the gacha ledger server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gacha-ledger/internal/config"
	"gacha-ledger/internal/gacha"
	"gacha-ledger/internal/game"
	"gacha-ledger/internal/game/higherlower"
	"gacha-ledger/internal/game/roulette"
	"gacha-ledger/internal/game/rps"
	"gacha-ledger/internal/game/slots"
	"gacha-ledger/internal/handler"
	"gacha-ledger/internal/pkg/db"
	"gacha-ledger/internal/pkg/lock"
	"gacha-ledger/internal/repository"
	"gacha-ledger/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	dbPool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Run database migrations
	if err := repository.Migrate(ctx, dbPool.Pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(dbPool.Pool, cfg.Ledger.DefaultBalance)
	gambleRepo := repository.NewGambleRepository(dbPool.Pool)
	inventoryRepo := repository.NewInventoryRepository(dbPool.Pool)
	pityRepo := repository.NewPityRepository(dbPool.Pool)

	// Per-account lock serializing all balance-touching operations
	accountLock := lock.NewAccountLock()

	// Initialize services
	ledgerService := service.NewLedgerService(accountRepo, gambleRepo)

	engine := gacha.NewEngine(pityRepo, inventoryRepo, nil)
	gachaService := service.NewGachaService(ledgerService, engine, inventoryRepo, accountLock, cfg.Gacha.PullCost)

	// Initialize game registry and register games
	registry := game.NewRegistry()

	slotsGame := slots.New(&slots.Config{EntryCost: cfg.Games.Slots.EntryCost}, nil)
	if err := registry.Register(slotsGame); err != nil {
		log.Fatal().Err(err).Msg("Failed to register slots game")
	}

	hlGame := higherlower.New(&higherlower.Config{MaxBet: cfg.Games.HigherLower.MaxBet}, nil)
	if err := registry.Register(hlGame); err != nil {
		log.Fatal().Err(err).Msg("Failed to register higher/lower game")
	}

	rouletteGame := roulette.New(&roulette.Config{EntryCost: cfg.Games.Roulette.EntryCost}, nil)
	if err := registry.Register(rouletteGame); err != nil {
		log.Fatal().Err(err).Msg("Failed to register roulette game")
	}

	rpsGame := rps.New(&rps.Config{Stake: cfg.Games.RPS.Stake}, nil)
	if err := registry.Register(rpsGame); err != nil {
		log.Fatal().Err(err).Msg("Failed to register rps game")
	}

	log.Info().
		Int("game_count", registry.Count()).
		Strs("games", registry.Kinds()).
		Msg("Games registered")

	gameService := service.NewGameService(ledgerService, registry, accountLock, cfg.Ledger.MaxDailyBet, cfg.Ledger.GamblingCooldown)

	// Set up HTTP server
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.New(ledgerService, gachaService, gameService).Routes(router)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Server is starting...")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	} else {
		log.Info().Msg("Server stopped gracefully")
	}
}
