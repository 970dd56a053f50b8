package stats

import (
	"time"

	"github.com/kapu/creator-insight-go/internal/domain"
)

const (
	viralZThreshold         = 2.0
	engagementZThreshold    = 2.0
	unexpectedHitZThreshold = 1.5
	fastGrowthMaxAge        = 7 * 24 * time.Hour
	unexpectedHitMaxAge     = 30 * 24 * time.Hour
)

// DetectOutliers flags records whose metrics deviate from the batch baseline.
// Evaluation is clock-dependent (publish age); see DetectOutliersAt.
func DetectOutliers(records []domain.VideoMetricRecord) []domain.OutlierResult {
	return DetectOutliersAt(records, time.Now())
}

// DetectOutliersAt evaluates four criteria per record in fixed priority
// order: viral, high_engagement, fast_growth, unexpected_hit. The first
// matching criterion decides OutlierType; a record is included if any
// criterion matches. Records matching none are omitted entirely.
func DetectOutliersAt(records []domain.VideoMetricRecord, now time.Time) []domain.OutlierResult {
	if len(records) == 0 {
		return []domain.OutlierResult{}
	}

	views := make([]float64, len(records))
	engagement := make([]float64, len(records))
	for i, r := range records {
		views[i] = float64(r.ViewCount)
		engagement[i] = r.EngagementRate
	}

	viewStats := Describe(views)
	engagementStats := Describe(engagement)
	viewsP75 := Percentile(views, 75)

	results := []domain.OutlierResult{}
	for _, record := range records {
		viewZ := ZScore(float64(record.ViewCount), viewStats.Mean, viewStats.StdDev)
		engagementZ := ZScore(record.EngagementRate, engagementStats.Mean, engagementStats.StdDev)
		age := now.Sub(record.PublishedAt)

		var outlierType domain.OutlierType
		var outlierScore float64
		isOutlier := false

		if viewZ > viralZThreshold {
			isOutlier = true
			outlierType = domain.OutlierViral
			outlierScore = abs(viewZ)
		}
		if engagementZ > engagementZThreshold {
			isOutlier = true
			if outlierType == "" {
				outlierType = domain.OutlierHighEngagement
				outlierScore = abs(engagementZ)
			}
		}
		if age < fastGrowthMaxAge && float64(record.ViewCount) >= viewsP75 {
			isOutlier = true
			if outlierType == "" {
				outlierType = domain.OutlierFastGrowth
				outlierScore = abs(viewZ)
			}
		}
		if viewZ > unexpectedHitZThreshold && age < unexpectedHitMaxAge {
			isOutlier = true
			if outlierType == "" {
				outlierType = domain.OutlierUnexpectedHit
				outlierScore = abs(viewZ)
			}
		}

		if !isOutlier {
			continue
		}

		viewsVsBaseline := 0.0
		if viewStats.Mean > 0 {
			viewsVsBaseline = float64(record.ViewCount) / viewStats.Mean
		}

		results = append(results, domain.OutlierResult{
			ID:              record.ID,
			OutlierScore:    outlierScore,
			OutlierType:     outlierType,
			ViewsVsBaseline: viewsVsBaseline,
		})
	}

	return results
}

// BatchStats summarizes the baseline used by DetectOutliersAt, for reporting.
func BatchStats(records []domain.VideoMetricRecord, outlierCount int) domain.BatchStats {
	views := make([]float64, len(records))
	engagement := make([]float64, len(records))
	for i, r := range records {
		views[i] = float64(r.ViewCount)
		engagement[i] = r.EngagementRate
	}

	viewStats := Describe(views)
	engagementStats := Describe(engagement)

	return domain.BatchStats{
		MeanViews:        viewStats.Mean,
		StdDevViews:      viewStats.StdDev,
		MeanEngagement:   engagementStats.Mean,
		StdDevEngagement: engagementStats.StdDev,
		ViewsP75:         Percentile(views, 75),
		RecordCount:      len(records),
		OutlierCount:     outlierCount,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
