package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/atomic"

	"studyhard_backend/internals/configs"
	database "studyhard_backend/internals/databases"
	"studyhard_backend/internals/features/thumbnails/storage"
	scheduler "studyhard_backend/internals/features/users/auth/scheduler"
	authService "studyhard_backend/internals/features/users/auth/service"
	routes "studyhard_backend/internals/route"
)

var flagEnvFile = &cli.StringFlag{
	Name:  "env-file",
	Value: ".env",
	Usage: "Path to .env file",
}
var flagPort = &cli.StringFlag{
	Name:  "port",
	Usage: "Listen port (overrides PORT)",
}
var flagStore = &cli.StringFlag{
	Name:  "store",
	Usage: "Storage driver: mongo | postgres | bolt (overrides STORE_DRIVER)",
}
var flagDebug = &cli.BoolFlag{
	Name:  "debug",
	Usage: "Enable debug logging",
}

func main() {
	app := &cli.App{
		Name:           "studyhard",
		Usage:          "StudyHard assignment & submission backend",
		DefaultCommand: "serve",
		Flags:          []cli.Flag{flagEnvFile, flagPort, flagStore, flagDebug},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP server",
				Flags:  []cli.Flag{flagEnvFile, flagPort, flagStore, flagDebug},
				Action: serve,
			},
			{
				Name:   "purge-tokens",
				Usage:  "Delete expired token blacklist entries once",
				Flags:  []cli.Flag{flagEnvFile, flagStore, flagDebug},
				Action: purgeTokens,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("exit")
	}
}

func loadConfig(cCtx *cli.Context) *configs.Config {
	cfg := configs.Load(cCtx.Bool(flagDebug.Name), cCtx.String(flagEnvFile.Name))
	if v := cCtx.String(flagPort.Name); v != "" {
		cfg.Port = v
	}
	if v := cCtx.String(flagStore.Name); v != "" {
		cfg.StoreDriver = v
	}
	return cfg
}

func serve(cCtx *cli.Context) error {
	cfg := loadConfig(cCtx)
	if cfg.JWTSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	stores, err := database.Open(openCtx, cfg)
	cancel()
	if err != nil {
		return err
	}

	thumbs, err := storage.NewThumbnailStore(cfg.Thumbnails)
	if err != nil {
		log.Warn().Err(err).Msg("thumbnail upload disabled")
	}

	var verifier authService.IdentityVerifier
	if cfg.GoogleClientID != "" {
		verifier = authService.NewGoogleVerifier(cfg.GoogleClientID)
	}

	// ⏱ scheduler setelah DB siap
	scheduler.StartBlacklistCleanupScheduler(ctx, stores.Blacklist, cfg.BlacklistTTL, 24*time.Hour)

	ready := atomic.NewBool(false)
	app := routes.NewApp(routes.Deps{
		Config:     cfg,
		Stores:     stores,
		Tokens:     authService.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Verifier:   verifier,
		Thumbnails: thumbs,
		Ready:      ready,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", stores.Driver).Msg("✅ Listening")
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()
	ready.Store(true)

	select {
	case err := <-errCh:
		ready.Store(false)
		_ = stores.Close(context.Background())
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	// graceful shutdown + tutup store
	log.Info().Msg("shutting down")
	ready.Store(false)
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	return stores.Close(shutdownCtx)
}

func purgeTokens(cCtx *cli.Context) error {
	cfg := loadConfig(cCtx)

	ctx, cancel := context.WithTimeout(cCtx.Context, 30*time.Second)
	defer cancel()

	stores, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close(context.Background())

	n, err := scheduler.PurgeOnce(ctx, stores.Blacklist, cfg.BlacklistTTL)
	if err != nil {
		return err
	}
	log.Info().Int64("deleted", n).Msg("token blacklist purged")
	return nil
}
