package domain

// HashtagCategory is the single-label strategic role of a hashtag.
type HashtagCategory string

const (
	CategoryTrending      HashtagCategory = "trending"
	CategoryNiche         HashtagCategory = "niche"
	CategoryBroad         HashtagCategory = "broad"
	CategoryPlatform      HashtagCategory = "platform-specific"
	CategoryEducational   HashtagCategory = "educational"
	CategoryEntertainment HashtagCategory = "entertainment"
	CategoryInspirational HashtagCategory = "inspirational"
	CategoryGeneral       HashtagCategory = "general"
)

func (c HashtagCategory) String() string {
	return string(c)
}

// HashtagAnalysis is the scored assessment of a single hashtag.
type HashtagAnalysis struct {
	Hashtag        string          `json:"hashtag"`
	Score          int             `json:"score"`
	Category       HashtagCategory `json:"category"`
	Issues         []string        `json:"issues"`
	Recommendation string          `json:"recommendation"`
}

// HashtagSetAnalysis aggregates a full hashtag strategy for one post.
type HashtagSetAnalysis struct {
	TotalScore           int                     `json:"total_score"`
	Analyses             []HashtagAnalysis       `json:"analyses"`
	CategoryDistribution map[HashtagCategory]int `json:"category_distribution"`
	TrendingCount        int                     `json:"trending_count"`
	NicheCount           int                     `json:"niche_count"`
	BroadCount           int                     `json:"broad_count"`
	Recommendations      []string                `json:"recommendations"`
	Issues               []string                `json:"issues"`
}
