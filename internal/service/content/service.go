// Package content exposes the scoring and generation operations behind one
// service, with cache-backed deterministic analysis and persisted AI drafts.
package content

import (
	"context"
	"strings"

	"github.com/kapu/creator-insight-go/internal/constants"
	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/internal/score/hashtag"
	"github.com/kapu/creator-insight-go/internal/score/seo"
	"github.com/kapu/creator-insight-go/internal/service/ai"
	"github.com/kapu/creator-insight-go/internal/service/cache"
	"go.uber.org/zap"
)

// Generator is the AI drafting surface the service delegates to.
type Generator interface {
	GenerateCaption(ctx context.Context, req ai.CaptionRequest) (*domain.GeneratedCaption, error)
	GenerateHashtags(ctx context.Context, req ai.HashtagRequest) (*domain.GeneratedHashtagSet, error)
	GenerateSeoMeta(ctx context.Context, req ai.SeoRequest) (*domain.GeneratedSeoMeta, error)
}

// AnalysisStore persists generated drafts. Saves are best effort; a storage
// failure never fails the request.
type AnalysisStore interface {
	SaveCaption(ctx context.Context, caption *domain.GeneratedCaption) error
	SaveHashtagSet(ctx context.Context, set *domain.GeneratedHashtagSet) error
	SaveSeoMeta(ctx context.Context, meta *domain.GeneratedSeoMeta) error
}

// TrendSeeder supplies trending hashtags for a topic. Implementations degrade
// to an empty list on failure.
type TrendSeeder interface {
	FetchTrendingTags(ctx context.Context, topic string) []string
}

type Service struct {
	generator Generator
	cache     cache.Store
	analyses  AnalysisStore
	trends    TrendSeeder
	logger    *zap.Logger
}

// NewService wires the content service. cache, analyses and trends may be nil;
// the service then skips caching, persistence and trend seeding respectively.
func NewService(generator Generator, cacheStore cache.Store, analyses AnalysisStore, trends TrendSeeder, logger *zap.Logger) *Service {
	return &Service{
		generator: generator,
		cache:     cacheStore,
		analyses:  analyses,
		trends:    trends,
		logger:    logger,
	}
}

// AnalyzeHashtags scores a hashtag set deterministically, serving repeated
// identical requests from the cache.
func (s *Service) AnalyzeHashtags(ctx context.Context, tags []string, content string, platform domain.Platform, audience string) domain.HashtagSetAnalysis {
	key := ""
	if s.cache != nil {
		parts := append(append([]string{}, tags...), content, audience)
		key = cache.HashtagAnalysisKey(platform, cache.Digest(parts...))

		var cached domain.HashtagSetAnalysis
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached
		}
	}

	analysis := hashtag.AnalyzeSet(tags, content, platform, audience)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, analysis, constants.CacheTTL.HashtagAnalysis); err != nil {
			s.logger.Warn("Failed to cache hashtag analysis", zap.String("key", key), zap.Error(err))
		}
	}
	return analysis
}

// AnalyzeSeo scores title and description deterministically, serving repeated
// identical requests from the cache.
func (s *Service) AnalyzeSeo(ctx context.Context, title, description string, platform domain.Platform, keywords []string) domain.SeoAnalysisResult {
	key := ""
	if s.cache != nil {
		parts := append([]string{title, description}, keywords...)
		key = cache.SeoAnalysisKey(platform, cache.Digest(parts...))

		var cached domain.SeoAnalysisResult
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached
		}
	}

	analysis := seo.Analyze(title, description, platform, keywords)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, analysis, constants.CacheTTL.SeoAnalysis); err != nil {
			s.logger.Warn("Failed to cache SEO analysis", zap.String("key", key), zap.Error(err))
		}
	}
	return analysis
}

// ExtractKeywords surfaces the deterministic keyword extractor. limit falls
// back to the AI input default when zero or negative.
func (s *Service) ExtractKeywords(content string, limit int) []string {
	if limit <= 0 {
		limit = constants.AIInputLimits.MaxKeywords
	}
	return seo.ExtractKeywords(content, limit)
}

func (s *Service) GenerateCaption(ctx context.Context, req ai.CaptionRequest) (*domain.GeneratedCaption, error) {
	req.Topic = NormalizeTopic(req.Topic)
	if len(req.TrendingTags) == 0 && s.trends != nil {
		req.TrendingTags = s.trends.FetchTrendingTags(ctx, req.Topic)
	}
	result, err := s.generator.GenerateCaption(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.analyses != nil {
		if err := s.analyses.SaveCaption(ctx, result); err != nil {
			s.logger.Error("Failed to persist caption", zap.Error(err))
		}
	}
	return result, nil
}

func (s *Service) GenerateHashtags(ctx context.Context, req ai.HashtagRequest) (*domain.GeneratedHashtagSet, error) {
	req.Topic = NormalizeTopic(req.Topic)
	if len(req.TrendingTags) == 0 && s.trends != nil {
		req.TrendingTags = s.trends.FetchTrendingTags(ctx, req.Topic)
	}
	result, err := s.generator.GenerateHashtags(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.analyses != nil {
		if err := s.analyses.SaveHashtagSet(ctx, result); err != nil {
			s.logger.Error("Failed to persist hashtag set", zap.Error(err))
		}
	}
	return result, nil
}

func (s *Service) GenerateSeoMeta(ctx context.Context, req ai.SeoRequest) (*domain.GeneratedSeoMeta, error) {
	req.Topic = NormalizeTopic(req.Topic)
	result, err := s.generator.GenerateSeoMeta(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.analyses != nil {
		if err := s.analyses.SaveSeoMeta(ctx, result); err != nil {
			s.logger.Error("Failed to persist SEO metadata", zap.Error(err))
		}
	}
	return result, nil
}

// NormalizeTopic trims and collapses a user-supplied topic before it reaches
// prompts or cache keys.
func NormalizeTopic(topic string) string {
	return strings.Join(strings.Fields(topic), " ")
}
