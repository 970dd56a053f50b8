package domain

// SeoBreakdown holds the five named sub-scores feeding the overall SEO score.
// Every field is an integer in [0,100].
type SeoBreakdown struct {
	TitleScore       int `json:"title_score"`
	DescriptionScore int `json:"description_score"`
	KeywordScore     int `json:"keyword_score"`
	ReadabilityScore int `json:"readability_score"`
	PlatformScore    int `json:"platform_score"`
}

// SeoAnalysisResult is the full SEO assessment of a title/description pair.
type SeoAnalysisResult struct {
	Score           int          `json:"score"`
	Breakdown       SeoBreakdown `json:"breakdown"`
	Recommendations []string     `json:"recommendations"`
	Issues          []string     `json:"issues"`
}
