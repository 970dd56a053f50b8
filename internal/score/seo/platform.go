package seo

import (
	"strings"

	"github.com/kapu/creator-insight-go/internal/domain"
	"github.com/kapu/creator-insight-go/internal/util"
)

// TextKind distinguishes which field of a post is being scored.
type TextKind string

const (
	KindTitle       TextKind = "title"
	KindDescription TextKind = "description"
)

type lengthWindow struct {
	Min     int
	Max     int
	Optimal int
}

// Platforms absent from a table have no concept of that text kind; their
// length sub-score is an automatic 100.
var titleWindows = map[domain.Platform]lengthWindow{
	domain.PlatformYouTube: {Min: 20, Max: 100, Optimal: 60},
	domain.PlatformTikTok:  {Min: 10, Max: 150, Optimal: 60},
	domain.PlatformBlog:    {Min: 30, Max: 70, Optimal: 55},
}

var descriptionWindows = map[domain.Platform]lengthWindow{
	domain.PlatformYouTube:   {Min: 100, Max: 5000, Optimal: 250},
	domain.PlatformInstagram: {Min: 50, Max: 2200, Optimal: 150},
	domain.PlatformTikTok:    {Min: 20, Max: 2200, Optimal: 100},
	domain.PlatformLinkedIn:  {Min: 100, Max: 3000, Optimal: 200},
	domain.PlatformTwitter:   {Min: 50, Max: 280, Optimal: 120},
	domain.PlatformBlog:      {Min: 120, Max: 320, Optimal: 160},
	domain.PlatformOther:     {Min: 50, Max: 3000, Optimal: 160},
}

func windowFor(platform domain.Platform, kind TextKind) (lengthWindow, bool) {
	if kind == KindTitle {
		w, ok := titleWindows[platform]
		return w, ok
	}
	if w, ok := descriptionWindows[platform]; ok {
		return w, true
	}
	return descriptionWindows[domain.PlatformOther], true
}

// lengthScore rates character length against the platform window: 0 outside
// [min,max], 100 at the optimal length, linear falloff (max penalty 50) toward
// the window edges.
func lengthScore(text string, platform domain.Platform, kind TextKind) int {
	window, ok := windowFor(platform, kind)
	if !ok {
		return 100
	}

	length := len(text)
	if length < window.Min || length > window.Max {
		return 0
	}

	spread := util.Max(window.Optimal-window.Min, window.Max-window.Optimal)
	if spread == 0 {
		return 100
	}

	distance := length - window.Optimal
	if distance < 0 {
		distance = -distance
	}

	return util.RoundScore(100 - float64(distance)/float64(spread)*50)
}

// platformScore applies per-platform content conventions on top of a 50 base.
func platformScore(text string, platform domain.Platform, kind TextKind) int {
	score := 50
	lower := strings.ToLower(text)

	switch platform {
	case domain.PlatformYouTube:
		if kind == KindTitle {
			if strings.ContainsAny(text, "|-:") {
				score += 10
			}
			if util.ContainsAny(lower, []string{"how to", "tutorial", "guide", "review", "tips", "tricks"}) {
				score += 15
			}
			if yearRe.MatchString(text) {
				score += 10
			}
		} else {
			if strings.Contains(lower, "http") {
				score += 15
			}
			if timestampRe.MatchString(text) {
				score += 10
			}
			if strings.Contains(text, "#") {
				score += 10
			}
		}
	case domain.PlatformInstagram:
		if kind == KindDescription {
			if strings.Contains(text, "#") {
				score += 15
			}
			if strings.Contains(text, "@") {
				score += 10
			}
			if strings.Contains(text, "\n") {
				score += 10
			}
		}
	case domain.PlatformTikTok:
		if kind == KindDescription {
			if strings.Contains(text, "#") {
				score += 15
			}
			if strings.Contains(text, "@") {
				score += 10
			}
			if len(text) <= 150 {
				score += 5
			}
		}
	case domain.PlatformLinkedIn:
		if kind == KindDescription {
			if strings.Contains(text, "\n") {
				score += 10
			}
			if util.ContainsAny(lower, []string{"professional", "business", "career", "industry", "insight"}) {
				score += 10
			}
			if len(text) >= 100 {
				score += 15
			}
		}
	case domain.PlatformTwitter:
		if kind == KindDescription {
			if len(text) <= 280 {
				score += 20
			}
			if strings.Contains(text, "#") {
				score += 15
			}
			if strings.Contains(text, "@") {
				score += 10
			}
		}
	case domain.PlatformBlog:
		if kind == KindTitle {
			if strings.ContainsAny(text, "|-:") {
				score += 10
			}
			if digitRe.MatchString(text) {
				score += 10
			}
		} else if strings.Count(text, ".") >= 2 {
			score += 10
		}
	default:
		if len(text) > 0 && len(text) <= 300 {
			score += 10
		}
	}

	return util.ClampScore(score)
}
