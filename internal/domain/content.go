package domain

import "time"

// GeneratedCaption is an AI-drafted caption scored by the hashtag engine.
type GeneratedCaption struct {
	Caption      string             `json:"caption"`
	Hashtags     []string           `json:"hashtags"`
	CallToAction string             `json:"call_to_action"`
	Platform     Platform           `json:"platform"`
	Analysis     HashtagSetAnalysis `json:"analysis"`
	Provider     string             `json:"provider"`
	Model        string             `json:"model"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// GeneratedHashtagSet is an AI-drafted standalone hashtag set scored by the
// hashtag engine.
type GeneratedHashtagSet struct {
	Hashtags    []string           `json:"hashtags"`
	Platform    Platform           `json:"platform"`
	Analysis    HashtagSetAnalysis `json:"analysis"`
	Provider    string             `json:"provider"`
	Model       string             `json:"model"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// GeneratedSeoMeta is an AI-drafted title/description pair scored by the SEO engine.
type GeneratedSeoMeta struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Keywords    []string          `json:"keywords"`
	Platform    Platform          `json:"platform"`
	Analysis    SeoAnalysisResult `json:"analysis"`
	Provider    string            `json:"provider"`
	Model       string            `json:"model"`
	GeneratedAt time.Time         `json:"generated_at"`
}
