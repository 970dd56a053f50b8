package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kapu/creator-insight-go/internal/constants"
	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/internal/prompt"
	"github.com/kapu/creator-insight-go/internal/score/hashtag"
	"github.com/kapu/creator-insight-go/internal/score/seo"
	"github.com/kapu/creator-insight-go/internal/util"
	"go.uber.org/zap"
)

// TextGenerator is the narrow model-manager surface the generator needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, promptText string, preset ModelPreset, opts *GenerateOptions) (string, *GenerateMetadata, error)
}

// Generator drafts content with the LLM, parses the sectioned response and
// scores the result with the deterministic engines before returning it.
type Generator struct {
	models TextGenerator
	logger *zap.Logger
}

func NewGenerator(models TextGenerator, logger *zap.Logger) *Generator {
	return &Generator{
		models: models,
		logger: logger,
	}
}

type CaptionRequest struct {
	Topic          string
	Platform       domain.Platform
	Tone           string
	TargetAudience string
	TrendingTags   []string
}

func (g *Generator) GenerateCaption(ctx context.Context, req CaptionRequest) (*domain.GeneratedCaption, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("caption topic must not be empty")
	}

	tone := req.Tone
	if tone == "" {
		tone = "engaging and authentic"
	}
	audience := req.TargetAudience
	if audience == "" {
		audience = "general audience"
	}

	promptText := prompt.BuildCaptionPrompt(prompt.CaptionPromptVars{
		Topic:          util.TruncateString(req.Topic, constants.AIInputLimits.MaxContentLength),
		Platform:       req.Platform.String(),
		Tone:           tone,
		TargetAudience: audience,
		TrendingTags:   req.TrendingTags,
	})

	text, metadata, err := g.models.GenerateText(ctx, promptText, PresetCreative, nil)
	if err != nil {
		return nil, fmt.Errorf("caption generation failed: %w", err)
	}

	sections, err := prompt.ParseSections(text, prompt.CaptionGrammar)
	if err != nil {
		return nil, err
	}
	if !sections.Complete() {
		g.logger.Warn("Caption response missing sections",
			zap.Strings("missing", sections.Missing),
			zap.String("provider", metadata.Provider),
		)
		return nil, fmt.Errorf("caption response missing sections: %s", strings.Join(sections.Missing, ", "))
	}

	caption := sections.Get("CAPTION")
	tags := hashtag.ExtractHashtags(sections.Get("HASHTAGS"))
	if len(tags) > constants.AIInputLimits.MaxHashtagsPerSet {
		tags = tags[:constants.AIInputLimits.MaxHashtagsPerSet]
	}

	result := &domain.GeneratedCaption{
		Caption:      caption,
		Hashtags:     tags,
		CallToAction: sections.Get("CALL_TO_ACTION"),
		Platform:     req.Platform,
		Analysis:     hashtag.AnalyzeSet(tags, caption, req.Platform, req.TargetAudience),
		Provider:     metadata.Provider,
		Model:        metadata.Model,
		GeneratedAt:  time.Now(),
	}

	g.logger.Info("Caption generated",
		zap.String("platform", req.Platform.String()),
		zap.Int("hashtags", len(tags)),
		zap.Int("set_score", result.Analysis.TotalScore),
		zap.String("provider", metadata.Provider),
	)

	return result, nil
}

type HashtagRequest struct {
	Topic          string
	Platform       domain.Platform
	Count          int
	TargetAudience string
	TrendingTags   []string
}

// GenerateHashtags drafts a standalone hashtag set. Count defaults to the
// platform's ideal hashtag count when zero.
func (g *Generator) GenerateHashtags(ctx context.Context, req HashtagRequest) (*domain.GeneratedHashtagSet, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("hashtag topic must not be empty")
	}

	count := req.Count
	if count <= 0 {
		count = hashtag.IdealCount(req.Platform)
	}
	if count > constants.AIInputLimits.MaxHashtagsPerSet {
		count = constants.AIInputLimits.MaxHashtagsPerSet
	}

	promptText := prompt.BuildHashtagPrompt(prompt.HashtagPromptVars{
		Topic:        util.TruncateString(req.Topic, constants.AIInputLimits.MaxContentLength),
		Platform:     req.Platform.String(),
		Count:        count,
		TrendingTags: req.TrendingTags,
	})

	text, metadata, err := g.models.GenerateText(ctx, promptText, PresetCreative, nil)
	if err != nil {
		return nil, fmt.Errorf("hashtag generation failed: %w", err)
	}

	sections, err := prompt.ParseSections(text, prompt.HashtagGrammar)
	if err != nil {
		return nil, err
	}
	if !sections.Complete() {
		g.logger.Warn("Hashtag response missing sections",
			zap.Strings("missing", sections.Missing),
			zap.String("provider", metadata.Provider),
		)
		return nil, fmt.Errorf("hashtag response missing sections: %s", strings.Join(sections.Missing, ", "))
	}

	tags := hashtag.ExtractHashtags(sections.Get("HASHTAGS"))
	if len(tags) > count {
		tags = tags[:count]
	}

	result := &domain.GeneratedHashtagSet{
		Hashtags:    tags,
		Platform:    req.Platform,
		Analysis:    hashtag.AnalyzeSet(tags, req.Topic, req.Platform, req.TargetAudience),
		Provider:    metadata.Provider,
		Model:       metadata.Model,
		GeneratedAt: time.Now(),
	}

	g.logger.Info("Hashtag set generated",
		zap.String("platform", req.Platform.String()),
		zap.Int("hashtags", len(tags)),
		zap.Int("set_score", result.Analysis.TotalScore),
		zap.String("provider", metadata.Provider),
	)

	return result, nil
}

type SeoRequest struct {
	Topic    string
	Platform domain.Platform
	Keywords []string
}

func (g *Generator) GenerateSeoMeta(ctx context.Context, req SeoRequest) (*domain.GeneratedSeoMeta, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("SEO topic must not be empty")
	}

	promptText := prompt.BuildSeoPrompt(prompt.SeoPromptVars{
		Topic:    util.TruncateString(req.Topic, constants.AIInputLimits.MaxContentLength),
		Platform: req.Platform.String(),
		Keywords: req.Keywords,
	})

	text, metadata, err := g.models.GenerateText(ctx, promptText, PresetBalanced, nil)
	if err != nil {
		return nil, fmt.Errorf("SEO metadata generation failed: %w", err)
	}

	sections, err := prompt.ParseSections(text, prompt.SeoGrammar)
	if err != nil {
		return nil, err
	}
	if !sections.Complete() {
		g.logger.Warn("SEO response missing sections",
			zap.Strings("missing", sections.Missing),
			zap.String("provider", metadata.Provider),
		)
		return nil, fmt.Errorf("SEO response missing sections: %s", strings.Join(sections.Missing, ", "))
	}

	title := sections.Get("TITLE")
	description := sections.Get("DESCRIPTION")

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = parseKeywordLine(sections.Get("KEYWORDS"))
	}
	if len(keywords) == 0 {
		keywords = seo.ExtractKeywords(description, constants.AIInputLimits.MaxKeywords)
	}

	result := &domain.GeneratedSeoMeta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Platform:    req.Platform,
		Analysis:    seo.Analyze(title, description, req.Platform, keywords),
		Provider:    metadata.Provider,
		Model:       metadata.Model,
		GeneratedAt: time.Now(),
	}

	g.logger.Info("SEO metadata generated",
		zap.String("platform", req.Platform.String()),
		zap.Int("score", result.Analysis.Score),
		zap.String("provider", metadata.Provider),
	)

	return result, nil
}

func parseKeywordLine(line string) []string {
	parts := strings.Split(line, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(strings.ToLower(p)); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
