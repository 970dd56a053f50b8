package hashtag

import (
	"fmt"
	"strings"

	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/internal/util"
)

// AnalyzeSet scores and categorizes every hashtag in the set and derives a
// strategy-level assessment. An empty set returns a zeroed aggregate.
func AnalyzeSet(tags []string, content string, platform domain.Platform, targetAudience string) domain.HashtagSetAnalysis {
	analysis := domain.HashtagSetAnalysis{
		Analyses:             make([]domain.HashtagAnalysis, 0, len(tags)),
		CategoryDistribution: make(map[domain.HashtagCategory]int),
		Recommendations:      []string{},
		Issues:               []string{},
	}

	scoreSum := 0
	for _, tag := range tags {
		score := RelevanceScore(tag, content, platform, targetAudience)
		category := Categorize(tag, platform)

		analysis.Analyses = append(analysis.Analyses, domain.HashtagAnalysis{
			Hashtag:        tag,
			Score:          score,
			Category:       category,
			Issues:         tagIssues(tag),
			Recommendation: tagRecommendation(tag, score, category),
		})

		scoreSum += score
		analysis.CategoryDistribution[category]++
		switch category {
		case domain.CategoryTrending:
			analysis.TrendingCount++
		case domain.CategoryNiche:
			analysis.NicheCount++
		case domain.CategoryBroad:
			analysis.BroadCount++
		}
	}

	if len(tags) > 0 {
		analysis.TotalScore = util.RoundScore(float64(scoreSum) / float64(len(tags)))
	}

	analysis.Recommendations = setRecommendations(&analysis, tags, platform)
	analysis.Issues = setIssues(&analysis, tags, platform)

	return analysis
}

func tagIssues(tag string) []string {
	issues := []string{}
	normalized := NormalizeHashtag(tag)

	if normalized == "" {
		issues = append(issues, "hashtag contains no usable characters")
		return issues
	}
	if len(normalized) > 25 {
		issues = append(issues, "hashtag is too long to be readable")
	}
	for _, spam := range spamIndicators {
		if strings.Contains(normalized, spam) {
			issues = append(issues, fmt.Sprintf("contains spam indicator %q", spam))
		}
	}
	return issues
}

func tagRecommendation(tag string, score int, category domain.HashtagCategory) string {
	switch {
	case score >= 80:
		return "strong fit, keep it"
	case score >= 60:
		return "decent fit, consider pairing with a niche variant"
	case category == domain.CategoryBroad:
		return "very broad reach, add specific tags alongside it"
	default:
		return "weak fit, replace with a tag closer to the content"
	}
}

func setRecommendations(analysis *domain.HashtagSetAnalysis, tags []string, platform domain.Platform) []string {
	recs := []string{}
	counts := countRangeFor(platform)

	switch {
	case len(tags) < counts.Min:
		recs = append(recs, fmt.Sprintf("use at least %d hashtags on %s (ideal: %d)", counts.Min, platform, counts.Ideal))
	case len(tags) > counts.Max:
		recs = append(recs, fmt.Sprintf("reduce to at most %d hashtags on %s (ideal: %d)", counts.Max, platform, counts.Ideal))
	}

	if analysis.TrendingCount == 0 {
		recs = append(recs, "add at least one trending hashtag for discoverability")
	}
	if analysis.NicheCount == 0 {
		recs = append(recs, "add niche hashtags to reach a targeted audience")
	}
	if len(tags) > 0 && analysis.BroadCount*2 > len(tags) {
		recs = append(recs, "over half the set is broad hashtags, balance with specific ones")
	}

	for _, a := range analysis.Analyses {
		if a.Score < 60 {
			recs = append(recs, fmt.Sprintf("replace low-scoring hashtag %s (score %d)", a.Hashtag, a.Score))
		}
	}

	return recs
}

func setIssues(analysis *domain.HashtagSetAnalysis, tags []string, platform domain.Platform) []string {
	issues := []string{}

	if len(tags) > 0 && analysis.TotalScore < 60 {
		issues = append(issues, fmt.Sprintf("average hashtag score is low (%d)", analysis.TotalScore))
	}

	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			issues = append(issues, fmt.Sprintf("duplicate hashtag %s", tag))
			continue
		}
		seen[key] = struct{}{}
	}

	for _, tag := range tags {
		normalized := NormalizeHashtag(tag)
		if util.ContainsAny(normalized, spamIndicators) {
			issues = append(issues, fmt.Sprintf("spam-indicator hashtag %s hurts reach", tag))
		}
	}

	switch platform {
	case domain.PlatformInstagram:
		if len(tags) < 5 {
			issues = append(issues, "fewer than 5 hashtags underuses Instagram reach")
		}
	case domain.PlatformTikTok:
		if len(tags) > 10 {
			issues = append(issues, "more than 10 hashtags looks spammy on TikTok")
		}
	case domain.PlatformTwitter:
		if len(tags) > 3 {
			issues = append(issues, "more than 3 hashtags reduces engagement on Twitter")
		}
	}

	return issues
}
