// Package prompt builds LLM prompt templates and parses sectioned responses.
package prompt

import (
	"fmt"
	"strings"
)

// CaptionPromptVars holds variables for the caption generation prompt.
type CaptionPromptVars struct {
	Topic          string
	Platform       string
	Tone           string
	TargetAudience string
	TrendingTags   []string
}

// CaptionGrammar is the ordered section grammar of a caption response.
var CaptionGrammar = []string{"CAPTION", "HASHTAGS", "CALL_TO_ACTION"}

// BuildCaptionPrompt builds the social caption generation prompt.
func BuildCaptionPrompt(vars CaptionPromptVars) string {
	seeds := "none available"
	if len(vars.TrendingTags) > 0 {
		seeds = strings.Join(vars.TrendingTags, " ")
	}

	return fmt.Sprintf(`You are a social media copywriter for %s.
Write a post caption for the topic below.

## Topic:
%s

## Tone:
%s

## Target audience:
%s

## Currently trending hashtags (use only if genuinely relevant):
%s

## Response format (plain text, EXACTLY these sections, in this order):

[CAPTION]
The caption text. Match the platform's conventions for length and formatting.

[HASHTAGS]
A single space-separated line of hashtags, each starting with #.

[CALL_TO_ACTION]
One short call-to-action line.

Rules:
- Do not add any text outside the three sections.
- Hashtags must relate to the topic; never pad with generic spam tags.`,
		vars.Platform,
		vars.Topic,
		vars.Tone,
		vars.TargetAudience,
		seeds,
	)
}

// HashtagPromptVars holds variables for the standalone hashtag set prompt.
type HashtagPromptVars struct {
	Topic        string
	Platform     string
	Count        int
	TrendingTags []string
}

// HashtagGrammar is the section grammar of a hashtag set response.
var HashtagGrammar = []string{"HASHTAGS"}

// BuildHashtagPrompt builds the standalone hashtag set generation prompt.
func BuildHashtagPrompt(vars HashtagPromptVars) string {
	seeds := "none available"
	if len(vars.TrendingTags) > 0 {
		seeds = strings.Join(vars.TrendingTags, " ")
	}

	return fmt.Sprintf(`You are a social media strategist for %s.
Propose a hashtag set for the topic below.

## Topic:
%s

## Number of hashtags:
%d

## Currently trending hashtags (use only if genuinely relevant):
%s

## Response format (plain text, EXACTLY this section):

[HASHTAGS]
A single space-separated line of hashtags, each starting with #.

Rules:
- Do not add any text outside the section.
- Mix trending, niche and broad tags; never pad with generic spam tags.`,
		vars.Platform,
		vars.Topic,
		vars.Count,
		seeds,
	)
}

// SeoPromptVars holds variables for the SEO metadata generation prompt.
type SeoPromptVars struct {
	Topic    string
	Platform string
	Keywords []string
}

// SeoGrammar is the ordered section grammar of an SEO metadata response.
var SeoGrammar = []string{"TITLE", "DESCRIPTION", "KEYWORDS"}

// BuildSeoPrompt builds the SEO title/description generation prompt.
func BuildSeoPrompt(vars SeoPromptVars) string {
	keywords := "choose appropriate keywords yourself"
	if len(vars.Keywords) > 0 {
		keywords = strings.Join(vars.Keywords, ", ")
	}

	return fmt.Sprintf(`You are an SEO specialist optimizing content for %s.
Draft metadata for the topic below.

## Topic:
%s

## Target keywords:
%s

## Response format (plain text, EXACTLY these sections, in this order):

[TITLE]
One title line following %s title conventions.

[DESCRIPTION]
The description, using the platform's optimal length and formatting.

[KEYWORDS]
A comma-separated line of the keywords actually used.

Rules:
- Do not add any text outside the three sections.
- Work the target keywords in naturally; never keyword-stuff.`,
		vars.Platform,
		vars.Topic,
		keywords,
		vars.Platform,
	)
}
