package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/muhammadolammi/futureframe/internal/config"
	"github.com/muhammadolammi/futureframe/internal/database"
	"github.com/muhammadolammi/futureframe/internal/generator"
	"github.com/muhammadolammi/futureframe/internal/identity"
	"github.com/muhammadolammi/futureframe/internal/logging"
	"github.com/muhammadolammi/futureframe/internal/profile"
	"github.com/muhammadolammi/futureframe/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "console", os.Stderr).Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	ctx := context.Background()

	dynamo, err := newDynamoClient(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create dynamodb client")
	}
	queries := database.New(dynamo, cfg.AWS.DynamoDBTable)
	profiles := profile.NewService(queries, log)

	backend, err := newBackend(ctx, cfg.Generator)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Generator.Backend).Msg("failed to create generator backend")
	}
	gen := generator.New(backend, cfg.Generator.Timeout, log)

	app := server.New(server.Deps{
		Profiles:  profiles,
		Generator: gen,
		Auth:      identity.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience),
		Log:       log,
	})

	addr, err := server.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid HTTP port")
	}

	log.Info().
		Str("env", cfg.App.Environment).
		Str("table", queries.Table()).
		Str("backend", cfg.Generator.Backend).
		Str("addr", addr).
		Msg("starting server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}
}
