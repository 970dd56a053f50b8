// Package trending scrapes public hashtag aggregation pages so caption
// generation can seed prompts with currently popular tags.
package trending

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/creator-insight-go/internal/constants"
	"github.com/kapu/creator-insight-go/internal/score/hashtag"
	"github.com/kapu/creator-insight-go/internal/service/cache"
	apperrors "github.com/kapu/creator-insight-go/pkg/errors"
	"go.uber.org/zap"
)

type ScraperService struct {
	httpClient *http.Client
	cache      *cache.CacheService
	logger     *zap.Logger
	baseURL    string
}

func NewScraperService(baseURL string, cacheSvc *cache.CacheService, logger *zap.Logger) *ScraperService {
	return &ScraperService{
		httpClient: &http.Client{
			Timeout: constants.ScraperConfig.Timeout,
		},
		cache:   cacheSvc,
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchTrendingTags returns popular hashtags related to a topic. Failures
// degrade to an empty list so callers can still generate without seeds.
func (s *ScraperService) FetchTrendingTags(ctx context.Context, topic string) []string {
	normalized := hashtag.NormalizeHashtag(topic)
	if normalized == "" {
		return []string{}
	}

	if cached, found := s.cache.GetTrendingTags(ctx, normalized); found {
		s.logger.Debug("Trending tags cache hit", zap.String("topic", normalized))
		return cached
	}

	tags, err := s.scrapeTags(ctx, normalized)
	if err != nil {
		s.logger.Warn("Trending tag scrape failed",
			zap.String("topic", normalized), zap.Error(err))
		return []string{}
	}

	if err := s.cache.SetTrendingTags(ctx, normalized, tags); err != nil {
		s.logger.Warn("Failed to cache trending tags",
			zap.String("topic", normalized), zap.Error(err))
	}

	s.logger.Info("Trending tags fetched",
		zap.String("topic", normalized),
		zap.Int("tags", len(tags)))

	return tags
}

func (s *ScraperService) scrapeTags(ctx context.Context, topic string) ([]string, error) {
	url := fmt.Sprintf("%s/%s.html", s.baseURL, topic)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CreatorInsightBot/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewServiceError("trending page request failed", "trending", "fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, apperrors.NewServiceError(
			fmt.Sprintf("trending page returned status %d", resp.StatusCode), "trending", "fetch", nil)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, apperrors.NewServiceError("trending page parse failed", "trending", "parse", err)
	}

	seen := make(map[string]bool)
	tags := make([]string, 0, constants.ScraperConfig.MaxTags)

	doc.Find(".tag-box p1").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		for _, raw := range hashtag.ExtractHashtags(sel.Text()) {
			normalized := hashtag.NormalizeHashtag(raw)
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			tags = append(tags, normalized)
			if len(tags) >= constants.ScraperConfig.MaxTags {
				return false
			}
		}
		return true
	})

	if len(tags) == 0 {
		return nil, &StructureChangedError{
			Message: "no hashtags found, HTML structure may have changed",
			URL:     url,
		}
	}

	return tags, nil
}

type StructureChangedError struct {
	Message string
	URL     string
}

func (e *StructureChangedError) Error() string {
	return fmt.Sprintf("%s (url: %s)", e.Message, e.URL)
}

func IsStructureError(err error) bool {
	_, ok := err.(*StructureChangedError)
	return ok
}
