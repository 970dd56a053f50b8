// Package youtube collects video performance metrics for competitive
// research and runs outlier detection over each collected batch.
package youtube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kapu/creator-insight-go/internal/constants"
	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/internal/service/cache"
	"github.com/kapu/creator-insight-go/internal/service/database"
	"github.com/kapu/creator-insight-go/internal/stats"
	"github.com/kapu/creator-insight-go/internal/util"
	apperrors "github.com/kapu/creator-insight-go/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type Collector struct {
	service        *youtube.Service
	cache          *cache.CacheService
	trendRepo      *database.TrendRepository
	logger         *zap.Logger
	videosPerBatch int64
	concurrency    int

	quotaUsed  int
	quotaMu    sync.Mutex
	quotaReset time.Time
}

type CollectorConfig struct {
	APIKey         string
	VideosPerBatch int64
	Concurrency    int
}

func NewCollector(cfg CollectorConfig, cacheSvc *cache.CacheService, trendRepo *database.TrendRepository, logger *zap.Logger) (*Collector, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	videosPerBatch := cfg.VideosPerBatch
	if videosPerBatch <= 0 || videosPerBatch > constants.YouTubeQuota.MaxVideosPerRun {
		videosPerBatch = constants.YouTubeQuota.MaxVideosPerRun
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	c := &Collector{
		service:        service,
		cache:          cacheSvc,
		trendRepo:      trendRepo,
		logger:         logger,
		videosPerBatch: videosPerBatch,
		concurrency:    concurrency,
		quotaReset:     nextQuotaReset(),
	}

	logger.Info("YouTube collector initialized",
		zap.Int64("videos_per_batch", videosPerBatch),
		zap.Int("concurrency", concurrency),
		zap.Time("quota_reset", c.quotaReset),
	)

	return c, nil
}

// YouTube resets API quota at midnight Pacific time.
func nextQuotaReset() time.Time {
	pt, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		pt = time.FixedZone("PT", -8*60*60)
	}
	now := time.Now().In(pt)
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, pt)
}

func (c *Collector) checkQuota(cost int) error {
	c.quotaMu.Lock()
	defer c.quotaMu.Unlock()

	now := time.Now()
	if now.After(c.quotaReset) {
		c.quotaUsed = 0
		c.quotaReset = nextQuotaReset()
		c.logger.Info("YouTube API quota auto-reset", zap.Time("next_reset", c.quotaReset))
	}

	limit := constants.YouTubeQuota.DailyLimit - constants.YouTubeQuota.SafetyMargin
	if c.quotaUsed+cost > limit {
		return apperrors.NewQuotaError(c.quotaUsed, constants.YouTubeQuota.DailyLimit, cost)
	}
	return nil
}

func (c *Collector) consumeQuota(cost int) {
	c.quotaMu.Lock()
	defer c.quotaMu.Unlock()

	c.quotaUsed += cost
	remaining := constants.YouTubeQuota.DailyLimit - c.quotaUsed

	c.logger.Debug("YouTube API quota consumed",
		zap.Int("cost", cost),
		zap.Int("used", c.quotaUsed),
		zap.Int("remaining", remaining),
	)

	if remaining < constants.YouTubeQuota.SafetyMargin {
		c.logger.Warn("YouTube API quota running low",
			zap.Int("remaining", remaining),
			zap.Time("reset_time", c.quotaReset),
		)
	}
}

// CollectChannel fetches the channel's recent uploads with their statistics,
// runs outlier detection over the batch, caches and persists the report.
func (c *Collector) CollectChannel(ctx context.Context, channelID string) (*domain.TrendReport, error) {
	if cached, found := c.cache.GetTrendReport(ctx, channelID); found {
		c.logger.Debug("Trend report cache hit", zap.String("channel", channelID))
		return cached, nil
	}

	records, err := c.fetchRecentMetrics(ctx, channelID)
	if err != nil {
		return nil, err
	}

	outliers := stats.DetectOutliers(records)
	report := &domain.TrendReport{
		ChannelID:   channelID,
		Records:     records,
		Outliers:    outliers,
		Stats:       stats.BatchStats(records, len(outliers)),
		CollectedAt: time.Now(),
	}

	if err := c.cache.SetTrendReport(ctx, report); err != nil {
		c.logger.Warn("Failed to cache trend report",
			zap.String("channel", channelID), zap.Error(err))
	}
	if c.trendRepo != nil {
		if err := c.trendRepo.SaveReport(ctx, report); err != nil {
			c.logger.Error("Failed to persist trend report",
				zap.String("channel", channelID), zap.Error(err))
		}
	}

	c.logger.Info("Channel collected",
		zap.String("channel", channelID),
		zap.Int("records", len(records)),
		zap.Int("outliers", len(outliers)),
	)

	return report, nil
}

// CollectAll collects every configured channel with bounded parallelism.
// Per-channel failures are logged, not fatal for the run.
func (c *Collector) CollectAll(ctx context.Context, channelIDs []string) []*domain.TrendReport {
	reports := make([]*domain.TrendReport, len(channelIDs))

	p := pool.New().WithMaxGoroutines(c.concurrency)
	for i, channelID := range channelIDs {
		p.Go(func() {
			report, err := c.CollectChannel(ctx, channelID)
			if err != nil {
				c.logger.Error("Channel collection failed",
					zap.String("channel", channelID), zap.Error(err))
				return
			}
			reports[i] = report
		})
	}
	p.Wait()

	collected := make([]*domain.TrendReport, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			collected = append(collected, r)
		}
	}
	return collected
}

func (c *Collector) fetchRecentMetrics(ctx context.Context, channelID string) ([]domain.VideoMetricRecord, error) {
	if err := c.checkQuota(constants.YouTubeQuota.SearchCost); err != nil {
		return nil, err
	}

	searchCall := c.service.Search.List([]string{"id"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(c.videosPerBatch)

	var searchResp *youtube.SearchListResponse
	err := util.Retry(ctx, constants.RetryConfig.MaxAttempts, constants.RetryConfig.BaseDelay, constants.RetryConfig.Jitter, func() error {
		var callErr error
		searchResp, callErr = searchCall.Context(ctx).Do()
		return callErr
	})
	if err != nil {
		return nil, apperrors.NewAPIError("YouTube video search failed", 502,
			map[string]any{"channel_id": channelID}).WithCause(err)
	}
	c.consumeQuota(constants.YouTubeQuota.SearchCost)

	videoIDs := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}
	if len(videoIDs) == 0 {
		return []domain.VideoMetricRecord{}, nil
	}

	if err := c.checkQuota(constants.YouTubeQuota.VideosCost); err != nil {
		return nil, err
	}

	videosCall := c.service.Videos.List([]string{"snippet", "statistics"}).Id(videoIDs...)

	var videosResp *youtube.VideoListResponse
	err = util.Retry(ctx, constants.RetryConfig.MaxAttempts, constants.RetryConfig.BaseDelay, constants.RetryConfig.Jitter, func() error {
		var callErr error
		videosResp, callErr = videosCall.Context(ctx).Do()
		return callErr
	})
	if err != nil {
		return nil, apperrors.NewAPIError("YouTube video statistics fetch failed", 502,
			map[string]any{"channel_id": channelID, "videos": len(videoIDs)}).WithCause(err)
	}
	c.consumeQuota(constants.YouTubeQuota.VideosCost)

	records := make([]domain.VideoMetricRecord, 0, len(videosResp.Items))
	for _, video := range videosResp.Items {
		if video.Statistics == nil || video.Snippet == nil {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, video.Snippet.PublishedAt)
		if err != nil {
			c.logger.Warn("Skipping video with unparseable publish time",
				zap.String("video", video.Id), zap.Error(err))
			continue
		}

		record := domain.VideoMetricRecord{
			ID:           video.Id,
			Title:        video.Snippet.Title,
			ChannelID:    channelID,
			ViewCount:    video.Statistics.ViewCount,
			LikeCount:    video.Statistics.LikeCount,
			CommentCount: video.Statistics.CommentCount,
			PublishedAt:  publishedAt,
		}
		record.EngagementRate = domain.ComputeEngagementRate(
			record.ViewCount, record.LikeCount, record.CommentCount)

		records = append(records, record)
	}

	return records, nil
}
