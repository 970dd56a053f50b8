package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kapu/creator-insight-go/internal/constants"
	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is the narrow cache surface consumed by services, so the cache stays
// an injected collaborator rather than a package singleton.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type CacheService struct {
	client *redis.Client
	logger *zap.Logger
}

type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewCacheService(cfg CacheConfig, logger *zap.Logger) (*CacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &CacheService{
		client: client,
		logger: logger,
	}, nil
}

// Get unmarshals the cached value into dest. The second return is false when
// the key does not exist; that is not an error.
func (c *CacheService) Get(ctx context.Context, key string, dest any) (bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("get failed", "get", key, err)
	}

	if dest != nil {
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			c.logger.Error("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
			return false, errors.NewCacheError("unmarshal failed", "get", key, err)
		}
	}

	return true, nil
}

func (c *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}

	return nil
}

func (c *CacheService) Del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("Cache delete failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("delete failed", "del", key, err)
	}
	return nil
}

func (c *CacheService) Close() error {
	return c.client.Close()
}

// Typed helpers

func TrendReportKey(channelID string) string {
	return fmt.Sprintf("trend:report:%s", channelID)
}

func TrendingTagsKey(category string) string {
	return fmt.Sprintf("trending:tags:%s", category)
}

// HashtagAnalysisKey identifies a deterministic hashtag-set analysis by
// platform and a digest of its inputs.
func HashtagAnalysisKey(platform domain.Platform, digest string) string {
	return fmt.Sprintf("analysis:hashtag:%s:%s", platform, digest)
}

// SeoAnalysisKey identifies a deterministic SEO analysis by platform and a
// digest of its inputs.
func SeoAnalysisKey(platform domain.Platform, digest string) string {
	return fmt.Sprintf("analysis:seo:%s:%s", platform, digest)
}

// Digest produces a short stable key fragment from analysis inputs.
func Digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

func (c *CacheService) GetTrendReport(ctx context.Context, channelID string) (*domain.TrendReport, bool) {
	var report domain.TrendReport
	found, err := c.Get(ctx, TrendReportKey(channelID), &report)
	if err != nil || !found {
		return nil, false
	}
	return &report, true
}

func (c *CacheService) SetTrendReport(ctx context.Context, report *domain.TrendReport) error {
	return c.Set(ctx, TrendReportKey(report.ChannelID), report, constants.CacheTTL.TrendReport)
}

func (c *CacheService) GetTrendingTags(ctx context.Context, category string) ([]string, bool) {
	var tags []string
	found, err := c.Get(ctx, TrendingTagsKey(category), &tags)
	if err != nil || !found {
		return nil, false
	}
	return tags, true
}

func (c *CacheService) SetTrendingTags(ctx context.Context, category string, tags []string) error {
	return c.Set(ctx, TrendingTagsKey(category), tags, constants.CacheTTL.TrendingTags)
}
