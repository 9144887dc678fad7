package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"studenthub-core/internal/adapter/api"
	"studenthub-core/internal/adapter/client"
	"studenthub-core/internal/adapter/notify"
	"studenthub-core/internal/adapter/store"
	"studenthub-core/internal/config"
	"studenthub-core/internal/domain/extract"
	"studenthub-core/internal/domain/repository"
	"studenthub-core/internal/logger"
	"studenthub-core/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Name, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis for OTP codes
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Postgres for users
	db, err := store.OpenPostgres(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	users := store.NewPostgresUserRepository(db)
	if err := users.EnsureSchema(ctx); err != nil {
		return err
	}

	var genaiClient *genai.Client
	if cfg.GeminiRequired() {
		genaiClient, err = client.NewGenAIClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Project, cfg.Gemini.Location)
		if err != nil {
			return fmt.Errorf("failed to init genai client: %w", err)
		}
	}

	var backend repository.Completer
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		backend = client.NewGeminiClientFromClient(genaiClient, cfg.Gemini.Model)
	default:
		backend = client.NewPerplexityClient(cfg.Perplexity.APIKey, cfg.Perplexity.BaseURL, cfg.Perplexity.Model)
	}
	completer := usecase.NewGuardedProvider(backend, cfg.AI.Provider, cfg.Upstream.Timeout, log)

	searchCache, err := newSearchCache(ctx, cfg, genaiClient, log)
	if err != nil {
		return err
	}

	sender, err := newOTPSender(ctx, cfg, log)
	if err != nil {
		return err
	}

	// Use cases
	catalog := usecase.NewCatalog(completer, extract.NewValidator(), log)
	aggregator := usecase.NewAggregator(catalog, log)
	search := usecase.NewSearchService(completer, searchCache, log)
	defer search.Close()
	auth := usecase.NewAuthService(store.NewRedisOTPStore(rdb), sender, users, cfg.OTP.TTL, log)

	// Delivery layer
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})
	api.SetupRouter(app, api.Handlers{
		Catalog: api.NewCatalogHandler(catalog, aggregator),
		Search:  api.NewSearchHandler(search),
		Auth:    api.NewAuthHandler(auth),
	}, api.BuildInfo{Version: cfg.App.Version, Env: cfg.App.Env})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("StudentHub API running",
		zap.String("port", cfg.Server.Port),
		zap.String("provider", cfg.AI.Provider),
		zap.Bool("search_cache", searchCache != nil),
	)
	return app.Listen(":" + cfg.Server.Port)
}

// newSearchCache wires the optional qdrant cache. It returns nil when disabled.
func newSearchCache(ctx context.Context, cfg *config.Config, genaiClient *genai.Client, log *zap.Logger) (*usecase.SemanticCache, error) {
	if !cfg.SearchCache.Enabled {
		return nil, nil
	}

	qClient, err := qdrant.NewClient(&qdrant.Config{
		Host: cfg.Qdrant.Host,
		Port: cfg.Qdrant.Port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to qdrant: %w", err)
	}

	cache := store.NewQdrantSearchCache(qClient, cfg.Qdrant.Collection, log)
	if err := cache.InitCollection(ctx, cfg.Gemini.EmbeddingDim); err != nil {
		return nil, fmt.Errorf("failed to init qdrant collection: %w", err)
	}

	return &usecase.SemanticCache{
		Embedder:  client.NewEmbedderFromClient(genaiClient, cfg.Gemini.EmbeddingModel),
		Store:     cache,
		Matcher:   client.NewGeminiEvaluator(genaiClient, cfg.Gemini.Model, log),
		Threshold: cfg.SearchCache.Threshold,
	}, nil
}

func newOTPSender(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.OTPSender, error) {
	if cfg.OTP.Delivery == config.DeliverySNS {
		s, err := notify.NewSNSSender(ctx, cfg.AWS.Region, cfg.SNS.SenderID, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return notify.NewLogSender(log), nil
}
