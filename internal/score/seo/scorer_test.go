package seo

import (
	"strings"
	"testing"

	"github.com/kapu/creator-insight-go/internal/domain"
)

func TestTitleScoreYouTubeHowTo(t *testing.T) {
	score := TitleScore("How to Learn Python in 2024", domain.PlatformYouTube, []string{"python"})
	if score < 70 {
		t.Errorf("expected at least 70 for a keyword-rich how-to title, got %d", score)
	}
}

func TestTitleScoreBounded(t *testing.T) {
	titles := []string{"", "Hi", strings.Repeat("long title ", 30), "10 Ways to Cook Amazing Pasta?", "2024 Review: Best Free Tools"}
	platforms := []domain.Platform{domain.PlatformYouTube, domain.PlatformTikTok, domain.PlatformBlog, domain.PlatformInstagram, domain.PlatformOther}

	for _, title := range titles {
		for _, platform := range platforms {
			score := TitleScore(title, platform, []string{"pasta", "tools"})
			if score < 0 || score > 100 {
				t.Errorf("TitleScore(%q, %s) = %d, out of [0,100]", title, platform, score)
			}
		}
	}
}

func TestLengthScoreOptimalBeatsBoundary(t *testing.T) {
	window := titleWindows[domain.PlatformYouTube]

	optimal := lengthScore(strings.Repeat("a", window.Optimal), domain.PlatformYouTube, KindTitle)
	atMin := lengthScore(strings.Repeat("a", window.Min), domain.PlatformYouTube, KindTitle)
	atMax := lengthScore(strings.Repeat("a", window.Max), domain.PlatformYouTube, KindTitle)

	if optimal != 100 {
		t.Errorf("optimal length scored %d, want 100", optimal)
	}
	if optimal < atMin || optimal < atMax {
		t.Errorf("optimal length (%d) scored below a boundary length (min %d, max %d)", optimal, atMin, atMax)
	}
}

func TestLengthScoreOutsideWindowIsZero(t *testing.T) {
	window := titleWindows[domain.PlatformYouTube]

	tooShort := lengthScore(strings.Repeat("a", window.Min-1), domain.PlatformYouTube, KindTitle)
	tooLong := lengthScore(strings.Repeat("a", window.Max+1), domain.PlatformYouTube, KindTitle)

	if tooShort != 0 || tooLong != 0 {
		t.Errorf("lengths outside the window scored %d and %d, want 0", tooShort, tooLong)
	}
}

func TestLengthScoreTitleWithoutWindow(t *testing.T) {
	// Twitter has no title concept, so any title length is a full score.
	if got := lengthScore("anything at all", domain.PlatformTwitter, KindTitle); got != 100 {
		t.Errorf("windowless title length scored %d, want 100", got)
	}
}

func TestKeywordScore(t *testing.T) {
	if got := keywordScore("some text", nil); got != 50 {
		t.Errorf("no keywords should be neutral 50, got %d", got)
	}

	full := keywordScore("learn python fast", []string{"python"})
	if full != 100 {
		t.Errorf("standalone keyword should score 100, got %d", full)
	}

	substr := keywordScore("pythonic style", []string{"python"})
	if substr != 80 {
		t.Errorf("substring-only keyword should score 80, got %d", substr)
	}

	half := keywordScore("learn python fast", []string{"python", "rust"})
	if half >= full {
		t.Errorf("missing keyword should lower the score: %d >= %d", half, full)
	}
}

func TestEngagementScoreHooks(t *testing.T) {
	plain := engagementScore("A walk in the park")
	hooked := engagementScore("10 Ways to Get Amazing Free Results in 2024?")
	if hooked <= plain {
		t.Errorf("hook-laden title should outscore a plain one: %d <= %d", hooked, plain)
	}
	if hooked > 100 {
		t.Errorf("engagement score %d exceeds 100", hooked)
	}
}

func TestReadabilityScoreEmptyTextIsNeutral(t *testing.T) {
	if got := readabilityScore(""); got != 50 {
		t.Errorf("empty text readability = %d, want 50", got)
	}
	if got := readabilityScore("..."); got != 50 {
		t.Errorf("punctuation-only readability = %d, want 50", got)
	}
}

func TestDescriptionScoreRewardsPlatformConventions(t *testing.T) {
	base := strings.Repeat("Sharing my full morning routine with everyone today. ", 3)
	plain := DescriptionScore(base, domain.PlatformInstagram, nil)
	decorated := DescriptionScore(base+"\nFollow @me for more #routine #morning", domain.PlatformInstagram, nil)
	if decorated <= plain {
		t.Errorf("hashtags and mentions should raise the Instagram score: %d <= %d", decorated, plain)
	}
}

func TestAnalyzeOverallAndFindings(t *testing.T) {
	result := Analyze(
		"How to Learn Python in 2024",
		"Short.",
		domain.PlatformYouTube,
		[]string{"python"},
	)

	if result.Score < 0 || result.Score > 100 {
		t.Fatalf("overall score %d out of [0,100]", result.Score)
	}
	if result.Breakdown.TitleScore < 70 {
		t.Errorf("title breakdown = %d, want at least 70", result.Breakdown.TitleScore)
	}

	foundLink := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "links") {
			foundLink = true
		}
	}
	if !foundLink {
		t.Errorf("weak YouTube description should recommend adding links, got %v", result.Recommendations)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	first := Analyze("My Title", "My description text.", domain.PlatformBlog, []string{"title"})
	second := Analyze("My Title", "My description text.", domain.PlatformBlog, []string{"title"})
	if first.Score != second.Score || first.Breakdown != second.Breakdown {
		t.Errorf("Analyze not deterministic: %+v vs %+v", first, second)
	}
}
