package seo

import (
	"regexp"
	"sort"
	"strings"
)

var nonWordRe = regexp.MustCompile(`[^a-z0-9\s]+`)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "his": {}, "has": {}, "had": {}, "how": {},
	"man": {}, "new": {}, "now": {}, "old": {}, "see": {}, "two": {},
	"way": {}, "who": {}, "its": {}, "did": {}, "get": {}, "may": {},
	"him": {}, "this": {}, "that": {}, "with": {}, "from": {}, "they": {},
	"have": {}, "been": {}, "will": {}, "your": {}, "what": {}, "when": {},
	"over": {}, "into": {}, "than": {}, "them": {}, "then": {}, "some": {},
	"very": {}, "just": {}, "also": {}, "more": {}, "about": {}, "would": {},
	"there": {}, "their": {}, "which": {}, "these": {}, "where": {},
}

// ExtractKeywords returns the most frequent non-stopword tokens (length > 2)
// in descending frequency. Ties break by first occurrence in the text, which
// keeps the result stable across runs.
func ExtractKeywords(content string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		maxKeywords = 10
	}

	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(content), " ")

	type tokenCount struct {
		token string
		count int
		first int
	}

	counts := make(map[string]*tokenCount)
	order := make([]*tokenCount, 0)

	for i, token := range strings.Fields(cleaned) {
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if tc, ok := counts[token]; ok {
			tc.count++
			continue
		}
		tc := &tokenCount{token: token, count: 1, first: i}
		counts[token] = tc
		order = append(order, tc)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	keywords := make([]string, 0, len(order))
	for _, tc := range order {
		keywords = append(keywords, tc.token)
	}
	return keywords
}
