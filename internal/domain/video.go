package domain

import "time"

// VideoMetricRecord is one video's performance snapshot inside a batch.
type VideoMetricRecord struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	ChannelID      string    `json:"channel_id"`
	ViewCount      uint64    `json:"view_count"`
	LikeCount      uint64    `json:"like_count"`
	CommentCount   uint64    `json:"comment_count"`
	PublishedAt    time.Time `json:"published_at"`
	EngagementRate float64   `json:"engagement_rate"`
}

// ComputeEngagementRate derives (likes+comments)/views*100, 0 when views is 0.
func ComputeEngagementRate(views, likes, comments uint64) float64 {
	if views == 0 {
		return 0
	}
	return float64(likes+comments) / float64(views) * 100
}

// OutlierType is the first-matched reason a video deviates from its batch baseline.
type OutlierType string

const (
	OutlierViral          OutlierType = "viral"
	OutlierHighEngagement OutlierType = "high_engagement"
	OutlierFastGrowth     OutlierType = "fast_growth"
	OutlierUnexpectedHit  OutlierType = "unexpected_hit"
)

func (t OutlierType) String() string {
	return string(t)
}

// OutlierResult flags one record that deviated from its batch statistics.
type OutlierResult struct {
	ID              string      `json:"id"`
	OutlierScore    float64     `json:"outlier_score"`
	OutlierType     OutlierType `json:"outlier_type"`
	ViewsVsBaseline float64     `json:"views_vs_baseline"`
}

// BatchStats are the descriptive statistics of one collected batch.
type BatchStats struct {
	MeanViews        float64 `json:"mean_views"`
	StdDevViews      float64 `json:"std_dev_views"`
	MeanEngagement   float64 `json:"mean_engagement"`
	StdDevEngagement float64 `json:"std_dev_engagement"`
	ViewsP75         float64 `json:"views_p75"`
	RecordCount      int     `json:"record_count"`
	OutlierCount     int     `json:"outlier_count"`
}

// TrendReport is the persisted result of one collection run for a channel.
type TrendReport struct {
	ChannelID   string              `json:"channel_id"`
	Records     []VideoMetricRecord `json:"records"`
	Outliers    []OutlierResult     `json:"outliers"`
	Stats       BatchStats          `json:"stats"`
	CollectedAt time.Time           `json:"collected_at"`
}
