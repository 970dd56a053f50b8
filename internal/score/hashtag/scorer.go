// Package hashtag scores hashtags against content, platform conventions and
// target audience, and classifies each tag's strategic role. All functions are
// pure: plain data in, plain data out, every score an integer in [0,100].
package hashtag

import (
	"regexp"
	"strings"

	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/internal/util"
)

// Relevance sub-score weights.
const (
	weightContent  = 0.40
	weightPlatform = 0.25
	weightAudience = 0.20
	weightQuality  = 0.15
)

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	invalidCharsRe = regexp.MustCompile(`[^A-Za-z0-9 _-]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	lowerLettersRe = regexp.MustCompile(`^[a-z]+$`)
	alphanumericRe = regexp.MustCompile(`^[a-z0-9]+$`)
	subwordSplitRe = regexp.MustCompile(`[ _-]+`)
)

// cleanTag strips leading '#' runes, drops characters outside [A-Za-z0-9 _-]
// and lowercases. Separators survive so the quality scorer can still see them.
func cleanTag(tag string) string {
	tag = strings.TrimLeft(tag, "#")
	tag = invalidCharsRe.ReplaceAllString(tag, "")
	tag = whitespaceRe.ReplaceAllString(tag, " ")
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeHashtag reduces a tag to its bare lowercase form: leading '#'s and
// invalid characters dropped, separators (space/underscore/dash) removed.
// Idempotent: "#My_Cool-Tag!" becomes "mycooltag".
func NormalizeHashtag(tag string) string {
	return subwordSplitRe.ReplaceAllString(cleanTag(tag), "")
}

// ExtractHashtags returns every #word match verbatim, without normalization.
func ExtractHashtags(text string) []string {
	return hashtagPattern.FindAllString(text, -1)
}

// subwords splits a hashtag into its component words on space/underscore/dash,
// after stripping the leading '#' and invalid characters.
func subwords(tag string) []string {
	parts := subwordSplitRe.Split(cleanTag(tag), -1)
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// RelevanceScore computes the weighted 0-100 relevance/quality score of a
// hashtag for the given content, platform and optional target audience.
func RelevanceScore(tag, content string, platform domain.Platform, targetAudience string) int {
	contentScore := contentRelevanceScore(tag, content)
	platformScore := platformOptimizationScore(tag, platform)
	audienceScore := audienceTargetingScore(tag, targetAudience)
	qualityScore := qualityScore(tag)

	weighted := weightContent*float64(contentScore) +
		weightPlatform*float64(platformScore) +
		weightAudience*float64(audienceScore) +
		weightQuality*float64(qualityScore)

	return util.RoundScore(weighted)
}

func contentRelevanceScore(tag, content string) int {
	const base = 30
	if content == "" {
		return base
	}

	score := base
	normalized := NormalizeHashtag(tag)
	contentLower := strings.ToLower(content)

	if normalized != "" && strings.Contains(contentLower, normalized) {
		score += 40
	}

	for _, word := range subwords(tag) {
		if containsWholeWord(contentLower, word) {
			score += 15
		}
	}

	for topic, related := range domainRelatedTerms {
		if !strings.Contains(normalized, topic) {
			continue
		}
		for _, term := range related {
			if strings.Contains(contentLower, term) {
				score += 5
			}
		}
	}

	return util.ClampScore(score)
}

func platformOptimizationScore(tag string, platform domain.Platform) int {
	score := 50
	normalized := NormalizeHashtag(tag)
	length := len(normalized)

	switch platform {
	case domain.PlatformInstagram:
		if length >= 5 && length <= 20 {
			score += 30
		} else if length >= 3 && length <= 25 {
			score += 15
		}
		if util.ContainsAny(normalized, []string{"trending", "viral"}) {
			score += 10
		}
		if lowerLettersRe.MatchString(normalized) {
			score += 10
		}
	case domain.PlatformTikTok:
		if length >= 3 && length <= 15 {
			score += 30
		} else if length <= 20 {
			score += 15
		}
		if util.ContainsAny(normalized, []string{"fyp", "viral", "trending"}) {
			score += 15
		}
		if alphanumericRe.MatchString(normalized) {
			score += 5
		}
	case domain.PlatformTwitter:
		if length <= 10 {
			score += 30
		} else if length <= 15 {
			score += 15
		}
		if lowerLettersRe.MatchString(normalized) {
			score += 10
		}
	case domain.PlatformLinkedIn:
		if length >= 8 && length <= 25 {
			score += 30
		} else if length >= 5 && length <= 30 {
			score += 15
		}
		if util.ContainsAny(normalized, []string{"business", "professional", "career", "industry"}) {
			score += 10
		}
	case domain.PlatformYouTube:
		if length >= 5 && length <= 25 {
			score += 30
		} else if length >= 3 && length <= 30 {
			score += 15
		}
		if util.ContainsAny(normalized, []string{"tutorial", "review", "guide", "howto"}) {
			score += 10
		}
	default:
		if length >= 5 && length <= 20 {
			score += 30
		}
		score += 20
	}

	return util.ClampScore(score)
}

func audienceTargetingScore(tag, targetAudience string) int {
	if targetAudience == "" {
		return 50 // neutral when no audience is specified
	}

	score := 30
	normalized := NormalizeHashtag(tag)
	audienceLower := strings.ToLower(targetAudience)

	for _, term := range audienceAgeTerms {
		if strings.Contains(audienceLower, term) && strings.Contains(normalized, term) {
			score += 20
		}
	}
	for _, term := range audienceInterestTerms {
		if strings.Contains(audienceLower, term) && strings.Contains(normalized, term) {
			score += 15
		}
	}
	for _, term := range audienceProfessionalTerms {
		if strings.Contains(audienceLower, term) && strings.Contains(normalized, term) {
			score += 15
		}
	}
	for _, term := range audienceGeoTerms {
		if strings.Contains(audienceLower, term) && strings.Contains(normalized, term) {
			score += 10
		}
	}

	return util.ClampScore(score)
}

func qualityScore(tag string) int {
	score := 50
	normalized := NormalizeHashtag(tag)
	cleaned := cleanTag(tag)
	length := len(normalized)

	if length >= 3 && length <= 20 {
		score += 20
	} else if length >= 2 && length <= 25 {
		score += 10
	}

	// Character class is judged before separators are stripped, so a
	// snake_case or kebab-case tag still earns its small bonus.
	switch {
	case lowerLettersRe.MatchString(cleaned):
		score += 15
	case alphanumericRe.MatchString(cleaned):
		score += 10
	case strings.ContainsAny(cleaned, "_-"):
		score += 5
	}

	if !util.ContainsAny(normalized, spamIndicators) {
		score += 15
	}

	if !util.Contains(overusedHashtags, normalized) && length > 4 {
		score += 10
	}

	return util.ClampScore(score)
}

// Categorize classifies a hashtag with a fixed first-match rule order:
// trending, niche, broad, platform-specific, content-based, then general.
func Categorize(tag string, platform domain.Platform) domain.HashtagCategory {
	normalized := NormalizeHashtag(tag)

	if util.ContainsAny(normalized, trendingKeywords) {
		return domain.CategoryTrending
	}

	if len(normalized) > 15 || util.ContainsAny(normalized, nicheKeywords) {
		return domain.CategoryNiche
	}

	if util.Contains(broadHashtags, normalized) {
		return domain.CategoryBroad
	}

	switch platform {
	case domain.PlatformInstagram:
		if util.ContainsAny(normalized, []string{"reels", "igtv"}) {
			return domain.CategoryPlatform
		}
	case domain.PlatformTikTok:
		if util.ContainsAny(normalized, []string{"duet", "stitch", "challenge", "trend"}) {
			return domain.CategoryPlatform
		}
	case domain.PlatformLinkedIn:
		if util.ContainsAny(normalized, []string{"professional", "business"}) {
			return domain.CategoryPlatform
		}
	}

	switch {
	case util.ContainsAny(normalized, []string{"tutorial", "howto"}):
		return domain.CategoryEducational
	case util.ContainsAny(normalized, []string{"funny", "meme"}):
		return domain.CategoryEntertainment
	case util.ContainsAny(normalized, []string{"motivation", "goals"}):
		return domain.CategoryInspirational
	default:
		return domain.CategoryGeneral
	}
}

func containsWholeWord(text, word string) bool {
	if word == "" {
		return false
	}
	idx := 0
	for {
		pos := strings.Index(text[idx:], word)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
