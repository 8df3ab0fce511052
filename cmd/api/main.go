package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"muse/internal/adapter/repo"
	"muse/internal/cart"
	"muse/internal/checkout"
	"muse/internal/fulfill"
	"muse/internal/http/handlers"
	httpapi "muse/internal/http/httpapi"
	"muse/internal/infra"
	"muse/internal/infra/geoip"
	"muse/internal/profile"
	"muse/internal/session"
	"muse/internal/synth"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Durable snapshots are optional; without DATABASE_URL the stores run
	// memory-only.
	var profileRepo profile.Repository
	var cartRepo cart.Repository
	if cfg.HasDatabase() {
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()

		runner := infra.NewSQLRunner(dbpool, logger)
		if err := repo.EnsureSchema(ctx, runner); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure schema")
		}
		profileRepo = repo.NewProfileRepository(runner)
		cartRepo = repo.NewCartRepository(runner)
	} else {
		logger.Warn().Msg("DATABASE_URL not set; profiles and carts are memory-only")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable; country annotation disabled")
		resolver = nil
	}

	app := &handlers.App{
		Config:   cfg,
		Logger:   logger,
		Sessions: session.NewStore(),
		Profiles: profile.NewStore(profileRepo, logger),
		Carts:    cart.NewStore(cartRepo, logger),
		Synth: synth.NewClient(synth.Options{
			APIKey:        cfg.GeminiAPIKey,
			BaseURL:       cfg.GeminiBaseURL,
			StandardModel: cfg.GeminiStandard,
			PremiumModel:  cfg.GeminiPremium,
			Logger:        logger,
		}),
		Checkout: checkout.NewClient(checkout.Options{
			StoreDomain: cfg.ShopifyStoreDomain,
			AccessToken: cfg.ShopifyAccessToken,
			APIVersion:  cfg.ShopifyAPIVersion,
			Logger:      logger,
		}),
		Fulfill: fulfill.NewClient(fulfill.Options{
			APIKey: cfg.PrintfulAPIKey,
			Logger: logger,
		}),
	}

	router := httpapi.NewRouter(app, resolver)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
