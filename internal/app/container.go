package app

import (
	"context"
	"fmt"

	"github.com/kapu/creator-insight-go/internal/config"
	"github.com/kapu/creator-insight-go/internal/service/ai"
	"github.com/kapu/creator-insight-go/internal/service/cache"
	"github.com/kapu/creator-insight-go/internal/service/content"
	"github.com/kapu/creator-insight-go/internal/service/database"
	"github.com/kapu/creator-insight-go/internal/service/trending"
	"github.com/kapu/creator-insight-go/internal/service/youtube"
	"go.uber.org/zap"
)

// Container bundles the assembled services for the runtime entrypoint.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Cache        *cache.CacheService
	Postgres     *database.PostgresService
	TrendRepo    *database.TrendRepository
	AnalysisRepo *database.AnalysisRepository
	Generator    *ai.Generator
	Content      *content.Service
	Collector    *youtube.Collector
	Scheduler    *youtube.Scheduler
	Trending     *trending.ScraperService

	closers []func()
}

// Build assembles all infrastructure services. Heavy initialization
// (cache/DB/AI clients) happens here so the entrypoint stays small; on
// failure everything already opened is closed in reverse order.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,

		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	trendRepo := database.NewTrendRepository(postgresSvc, logger)
	if err := trendRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure trend schema: %w", err)
	}

	analysisRepo := database.NewAnalysisRepository(postgresSvc, logger)
	if err := analysisRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure analysis schema: %w", err)
	}

	modelManager, err := ai.NewModelManager(ctx, ai.ModelManagerConfig{
		GeminiAPIKey:       cfg.Gemini.APIKey,
		OpenAIAPIKey:       cfg.OpenAI.APIKey,
		DefaultGeminiModel: cfg.Gemini.Model,
		DefaultOpenAIModel: cfg.OpenAI.Model,
		EnableFallback:     cfg.OpenAI.EnableFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}

	generator := ai.NewGenerator(modelManager, logger)

	trendingSvc := trending.NewScraperService(cfg.Trending.BaseURL, cacheSvc, logger)

	contentSvc := content.NewService(generator, cacheSvc, analysisRepo, trendingSvc, logger)

	collector, err := youtube.NewCollector(youtube.CollectorConfig{
		APIKey:         cfg.YouTube.APIKey,
		VideosPerBatch: cfg.Collector.VideosPerBatch,
		Concurrency:    cfg.Collector.Concurrency,
	}, cacheSvc, trendRepo, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube collector: %w", err)
	}

	scheduler := youtube.NewScheduler(collector, cfg.YouTube.ChannelIDs, cfg.Collector.Interval, logger)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		Cache:        cacheSvc,
		Postgres:     postgresSvc,
		TrendRepo:    trendRepo,
		AnalysisRepo: analysisRepo,
		Generator:    generator,
		Content:      contentSvc,
		Collector:    collector,
		Scheduler:    scheduler,
		Trending:     trendingSvc,
		closers:      closers,
	}, nil
}

// Close releases held resources in reverse creation order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
