package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/memoboard/memoboard-api/internal/api"
	"github.com/memoboard/memoboard-api/internal/core/service"
	"github.com/memoboard/memoboard-api/internal/infrastructure/config"
	mongodb "github.com/memoboard/memoboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/memoboard/memoboard-api/internal/infrastructure/db/redis"
	s3store "github.com/memoboard/memoboard-api/internal/infrastructure/storage/s3"
	"github.com/memoboard/memoboard-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	avatars, err := s3store.New(ctx, s3store.Config{
		Endpoint:      cfg.Avatar.Endpoint,
		Region:        cfg.Avatar.Region,
		Bucket:        cfg.Avatar.Bucket,
		AccessKey:     cfg.Avatar.AccessKey,
		SecretKey:     cfg.Avatar.SecretKey,
		PublicBaseURL: cfg.Avatar.PublicBaseURL,
		DefaultKey:    cfg.Avatar.DefaultKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("avatar store initialisation failed")
	}

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	for name, ensure := range map[string]func(context.Context) error{
		"users":    userRepo.EnsureIndexes,
		"profiles": profileRepo.EnsureIndexes,
		"notes":    noteRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index bootstrap failed")
		}
	}

	// --- Services ---
	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Str("token_ttl", cfg.TokenTTL).Msg("invalid token TTL")
	}

	profileService := service.NewProfileService(profileRepo, userRepo, avatars, log)
	authService := service.NewAuthService(userRepo, profileService, sessions, cfg.JWTSecret, tokenTTL, log)
	noteService := service.NewNoteService(noteRepo, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Auth:      authService,
		Notes:     noteService,
		Profiles:  profileService,
		Sessions:  sessions,
		JWTSecret: cfg.JWTSecret,
		Mongo:     db,
		Redis:     rdb,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
