package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/internal/service/ai"
	"go.uber.org/zap"
)

type memStore struct {
	data map[string][]byte
	sets int
	gets int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string, dest any) (bool, error) {
	m.gets++
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if dest != nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (m *memStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.sets++
	return nil
}

func (m *memStore) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

type fakeGenerator struct {
	caption    *domain.GeneratedCaption
	hashtagSet *domain.GeneratedHashtagSet
	seoMeta    *domain.GeneratedSeoMeta
	err        error
	lastTopic  string
	lastSeeds  []string
}

func (f *fakeGenerator) GenerateCaption(_ context.Context, req ai.CaptionRequest) (*domain.GeneratedCaption, error) {
	f.lastTopic = req.Topic
	f.lastSeeds = req.TrendingTags
	return f.caption, f.err
}

func (f *fakeGenerator) GenerateHashtags(_ context.Context, req ai.HashtagRequest) (*domain.GeneratedHashtagSet, error) {
	f.lastTopic = req.Topic
	f.lastSeeds = req.TrendingTags
	return f.hashtagSet, f.err
}

func (f *fakeGenerator) GenerateSeoMeta(_ context.Context, req ai.SeoRequest) (*domain.GeneratedSeoMeta, error) {
	f.lastTopic = req.Topic
	return f.seoMeta, f.err
}

type fakeAnalysisStore struct {
	captions    int
	hashtagSets int
	seoMetas    int
	err         error
}

func (f *fakeAnalysisStore) SaveCaption(context.Context, *domain.GeneratedCaption) error {
	f.captions++
	return f.err
}

func (f *fakeAnalysisStore) SaveHashtagSet(context.Context, *domain.GeneratedHashtagSet) error {
	f.hashtagSets++
	return f.err
}

func (f *fakeAnalysisStore) SaveSeoMeta(context.Context, *domain.GeneratedSeoMeta) error {
	f.seoMetas++
	return f.err
}

func TestAnalyzeHashtagsCachesResult(t *testing.T) {
	store := newMemStore()
	svc := NewService(&fakeGenerator{}, store, nil, nil, zap.NewNop())
	ctx := context.Background()

	tags := []string{"#golang", "#backend"}
	first := svc.AnalyzeHashtags(ctx, tags, "shipping a Go backend service", domain.PlatformTwitter, "")
	second := svc.AnalyzeHashtags(ctx, tags, "shipping a Go backend service", domain.PlatformTwitter, "")

	if store.sets != 1 {
		t.Errorf("sets = %d, want 1 (second call should hit the cache)", store.sets)
	}
	if first.TotalScore != second.TotalScore {
		t.Errorf("cached score %d differs from computed %d", second.TotalScore, first.TotalScore)
	}
	if len(second.Analyses) != len(first.Analyses) {
		t.Errorf("cached analysis covers %d tags, want %d", len(second.Analyses), len(first.Analyses))
	}
}

func TestAnalyzeHashtagsKeyVariesWithInput(t *testing.T) {
	store := newMemStore()
	svc := NewService(&fakeGenerator{}, store, nil, nil, zap.NewNop())
	ctx := context.Background()

	svc.AnalyzeHashtags(ctx, []string{"#golang"}, "post", domain.PlatformTwitter, "")
	svc.AnalyzeHashtags(ctx, []string{"#golang"}, "post", domain.PlatformInstagram, "")
	svc.AnalyzeHashtags(ctx, []string{"#rustlang"}, "post", domain.PlatformTwitter, "")

	if store.sets != 3 {
		t.Errorf("sets = %d, want 3 distinct cache entries", store.sets)
	}
}

func TestAnalyzeHashtagsWithoutCache(t *testing.T) {
	svc := NewService(&fakeGenerator{}, nil, nil, nil, zap.NewNop())

	analysis := svc.AnalyzeHashtags(context.Background(), []string{"#golang"}, "post", domain.PlatformTwitter, "")
	if len(analysis.Analyses) != 1 {
		t.Errorf("analysis covered %d tags, want 1", len(analysis.Analyses))
	}
}

func TestAnalyzeSeoCachesResult(t *testing.T) {
	store := newMemStore()
	svc := NewService(&fakeGenerator{}, store, nil, nil, zap.NewNop())
	ctx := context.Background()

	title := "How to Learn Go in Six Months"
	desc := "A study plan with weekly milestones and project ideas."
	first := svc.AnalyzeSeo(ctx, title, desc, domain.PlatformYouTube, []string{"go"})
	second := svc.AnalyzeSeo(ctx, title, desc, domain.PlatformYouTube, []string{"go"})

	if store.sets != 1 {
		t.Errorf("sets = %d, want 1 (second call should hit the cache)", store.sets)
	}
	if first.Score != second.Score {
		t.Errorf("cached score %d differs from computed %d", second.Score, first.Score)
	}
}

func TestExtractKeywordsDefaultLimit(t *testing.T) {
	svc := NewService(&fakeGenerator{}, nil, nil, nil, zap.NewNop())

	keywords := svc.ExtractKeywords("the quick brown fox jumps over the lazy dog while the fox watches", 0)
	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}
	if keywords[0] != "fox" {
		t.Errorf("keywords[0] = %q, want the most frequent token", keywords[0])
	}
}

func TestGenerateCaptionPersistsAndNormalizesTopic(t *testing.T) {
	gen := &fakeGenerator{caption: &domain.GeneratedCaption{Caption: "hi", Platform: domain.PlatformInstagram}}
	analyses := &fakeAnalysisStore{}
	svc := NewService(gen, nil, analyses, nil, zap.NewNop())

	result, err := svc.GenerateCaption(context.Background(), ai.CaptionRequest{
		Topic:    "  home   espresso  ",
		Platform: domain.PlatformInstagram,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Caption != "hi" {
		t.Errorf("Caption = %q", result.Caption)
	}
	if gen.lastTopic != "home espresso" {
		t.Errorf("topic passed to generator = %q, want whitespace collapsed", gen.lastTopic)
	}
	if analyses.captions != 1 {
		t.Errorf("captions saved = %d, want 1", analyses.captions)
	}
}

func TestGenerateHashtagsSaveFailureDoesNotFailRequest(t *testing.T) {
	gen := &fakeGenerator{hashtagSet: &domain.GeneratedHashtagSet{Hashtags: []string{"#go"}}}
	analyses := &fakeAnalysisStore{err: errors.New("db down")}
	svc := NewService(gen, nil, analyses, nil, zap.NewNop())

	result, err := svc.GenerateHashtags(context.Background(), ai.HashtagRequest{
		Topic:    "go generics",
		Platform: domain.PlatformTwitter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Hashtags) != 1 {
		t.Errorf("Hashtags = %v", result.Hashtags)
	}
	if analyses.hashtagSets != 1 {
		t.Errorf("hashtag sets saved = %d, want 1 attempt", analyses.hashtagSets)
	}
}

type fakeTrendSeeder struct {
	tags   []string
	topics []string
}

func (f *fakeTrendSeeder) FetchTrendingTags(_ context.Context, topic string) []string {
	f.topics = append(f.topics, topic)
	return f.tags
}

func TestGenerateCaptionSeedsTrendingTags(t *testing.T) {
	gen := &fakeGenerator{caption: &domain.GeneratedCaption{}}
	seeder := &fakeTrendSeeder{tags: []string{"coffee", "espresso"}}
	svc := NewService(gen, nil, nil, seeder, zap.NewNop())

	if _, err := svc.GenerateCaption(context.Background(), ai.CaptionRequest{
		Topic:    "espresso",
		Platform: domain.PlatformInstagram,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gen.lastSeeds) != 2 {
		t.Errorf("seeds passed to generator = %v, want the seeder's tags", gen.lastSeeds)
	}
	if len(seeder.topics) != 1 || seeder.topics[0] != "espresso" {
		t.Errorf("seeder topics = %v", seeder.topics)
	}
}

func TestGenerateHashtagsExplicitSeedsSkipSeeder(t *testing.T) {
	gen := &fakeGenerator{hashtagSet: &domain.GeneratedHashtagSet{}}
	seeder := &fakeTrendSeeder{tags: []string{"unwanted"}}
	svc := NewService(gen, nil, nil, seeder, zap.NewNop())

	if _, err := svc.GenerateHashtags(context.Background(), ai.HashtagRequest{
		Topic:        "go generics",
		Platform:     domain.PlatformTwitter,
		TrendingTags: []string{"golang"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeder.topics) != 0 {
		t.Error("seeder should not be consulted when the request carries seeds")
	}
	if len(gen.lastSeeds) != 1 || gen.lastSeeds[0] != "golang" {
		t.Errorf("seeds = %v, want the request's own", gen.lastSeeds)
	}
}

func TestGenerateSeoMetaGeneratorErrorSkipsPersist(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	analyses := &fakeAnalysisStore{}
	svc := NewService(gen, nil, analyses, nil, zap.NewNop())

	if _, err := svc.GenerateSeoMeta(context.Background(), ai.SeoRequest{
		Topic:    "anything",
		Platform: domain.PlatformBlog,
	}); err == nil {
		t.Fatal("expected the generator error to propagate")
	}
	if analyses.seoMetas != 0 {
		t.Errorf("seo metas saved = %d, want 0", analyses.seoMetas)
	}
}
