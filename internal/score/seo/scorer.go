// Package seo scores titles and descriptions against per-platform SEO
// conventions: length windows, keyword usage, engagement hooks, readability.
// Pure functions; every score is an integer in [0,100].
package seo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/internal/util"
)

var (
	digitRe     = regexp.MustCompile(`\d`)
	yearRe      = regexp.MustCompile(`\b20\d{2}\b`)
	timestampRe = regexp.MustCompile(`\d+:\d{2}`)
	listicleRe  = regexp.MustCompile(`\d+ (ways|tips|steps|methods|techniques|reasons|facts|secrets)`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
)

var emotionalWords = []string{
	"amazing", "incredible", "stunning", "shocking", "unbelievable",
	"essential", "powerful", "inspiring",
}

var powerWords = []string{
	"free", "new", "proven", "ultimate", "best", "easy", "secret", "instantly",
}

// TitleScore = 0.30 length + 0.25 keywords + 0.20 engagement + 0.25 platform.
func TitleScore(title string, platform domain.Platform, keywords []string) int {
	weighted := 0.30*float64(lengthScore(title, platform, KindTitle)) +
		0.25*float64(keywordScore(title, keywords)) +
		0.20*float64(engagementScore(title)) +
		0.25*float64(platformScore(title, platform, KindTitle))
	return util.RoundScore(weighted)
}

// DescriptionScore = 0.25 length + 0.30 keywords + 0.25 readability + 0.20 platform.
func DescriptionScore(description string, platform domain.Platform, keywords []string) int {
	weighted := 0.25*float64(lengthScore(description, platform, KindDescription)) +
		0.30*float64(keywordScore(description, keywords)) +
		0.25*float64(readabilityScore(description)) +
		0.20*float64(platformScore(description, platform, KindDescription))
	return util.RoundScore(weighted)
}

// keywordScore rewards each keyword found in the text: 100 when it appears as
// a standalone word, 80 as a substring, scaled by the fraction present.
func keywordScore(text string, keywords []string) int {
	if len(keywords) == 0 {
		return 50
	}

	lower := strings.ToLower(text)
	padded := " " + lower + " "
	sum := 0.0
	present := 0

	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		if kw == "" || !strings.Contains(lower, kw) {
			continue
		}
		present++
		if strings.Contains(padded, " "+kw+" ") {
			sum += 100
		} else {
			sum += 80
		}
	}

	n := float64(len(keywords))
	return util.RoundScore(sum / n * float64(present) / n)
}

func engagementScore(title string) int {
	score := 50
	lower := strings.ToLower(title)

	if digitRe.MatchString(title) {
		score += 10
	}
	if strings.Contains(title, "?") {
		score += 8
	}
	if util.ContainsAny(lower, emotionalWords) {
		score += 8
	}
	if util.ContainsAny(lower, powerWords) {
		score += 8
	}
	if yearRe.MatchString(title) {
		score += 6
	}
	if listicleRe.MatchString(lower) {
		score += 10
	}

	return util.ClampScore(score)
}

func readabilityScore(text string) int {
	score := 50

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return score
	}

	totalWords := 0
	totalWordLength := 0
	minWords, maxWords := -1, 0
	for _, sentence := range sentences {
		words := strings.Fields(sentence)
		totalWords += len(words)
		for _, w := range words {
			totalWordLength += len(w)
		}
		if minWords < 0 || len(words) < minWords {
			minWords = len(words)
		}
		if len(words) > maxWords {
			maxWords = len(words)
		}
	}
	if totalWords == 0 {
		return score
	}

	avgWordsPerSentence := float64(totalWords) / float64(len(sentences))
	switch {
	case avgWordsPerSentence >= 15 && avgWordsPerSentence <= 20:
		score += 20
	case avgWordsPerSentence >= 10 && avgWordsPerSentence <= 25:
		score += 10
	}

	avgWordLength := float64(totalWordLength) / float64(totalWords)
	switch {
	case avgWordLength >= 4 && avgWordLength <= 6:
		score += 20
	case avgWordLength >= 3 && avgWordLength <= 7:
		score += 10
	}

	if maxWords-minWords > 5 {
		score += 10
	}

	return util.ClampScore(score)
}

func splitSentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Analyze computes the five sub-scores and the overall SEO score for a
// title/description pair, with threshold-driven recommendations and issues.
func Analyze(title, description string, platform domain.Platform, keywords []string) domain.SeoAnalysisResult {
	combined := title + " " + description

	breakdown := domain.SeoBreakdown{
		TitleScore:       TitleScore(title, platform, keywords),
		DescriptionScore: DescriptionScore(description, platform, keywords),
		KeywordScore:     keywordScore(combined, keywords),
		ReadabilityScore: readabilityScore(combined),
		PlatformScore: util.RoundScore((float64(platformScore(title, platform, KindTitle)) +
			float64(platformScore(description, platform, KindDescription))) / 2),
	}

	overall := util.RoundScore(float64(breakdown.TitleScore+
		breakdown.DescriptionScore+
		breakdown.KeywordScore+
		breakdown.ReadabilityScore+
		breakdown.PlatformScore) / 5)

	result := domain.SeoAnalysisResult{
		Score:           overall,
		Breakdown:       breakdown,
		Recommendations: []string{},
		Issues:          []string{},
	}

	addFindings(&result, title, description, platform, keywords)
	return result
}

func addFindings(result *domain.SeoAnalysisResult, title, description string, platform domain.Platform, keywords []string) {
	b := result.Breakdown

	if b.TitleScore < 70 {
		if window, ok := windowFor(platform, KindTitle); ok {
			switch {
			case len(title) < window.Min:
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("title is too short, aim for about %d characters", window.Optimal))
			case len(title) > window.Max:
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("title is too long, keep it under %d characters", window.Max))
			}
		}
		if !digitRe.MatchString(title) {
			result.Recommendations = append(result.Recommendations,
				"add a number to the title for a stronger hook")
		}
	}
	if b.TitleScore < 50 {
		result.Issues = append(result.Issues, "title scores poorly for this platform")
	}

	if b.DescriptionScore < 70 {
		result.Recommendations = append(result.Recommendations,
			"expand the description toward the platform's optimal length")
		if platform == domain.PlatformYouTube && !strings.Contains(strings.ToLower(description), "http") {
			result.Recommendations = append(result.Recommendations,
				"add links to the YouTube description")
		}
	}
	if b.DescriptionScore < 50 {
		result.Issues = append(result.Issues, "description scores poorly for this platform")
	}

	if b.KeywordScore < 70 && len(keywords) > 0 {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("work target keywords into the text (%s)", strings.Join(keywords, ", ")))
	}
	if b.KeywordScore < 50 && len(keywords) > 0 {
		result.Issues = append(result.Issues, "most target keywords are missing from the text")
	}

	if b.ReadabilityScore < 70 {
		result.Recommendations = append(result.Recommendations,
			"vary sentence length and prefer mid-length words for readability")
	}
	if b.PlatformScore < 50 {
		result.Issues = append(result.Issues, "content ignores this platform's formatting conventions")
	}
}
