package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// SectionResult is the outcome of parsing a sectioned LLM response against an
// ordered marker grammar. Missing lists every grammar section that had no
// marker or no body, so callers can log exactly what the model dropped.
type SectionResult struct {
	Sections map[string]string
	Missing  []string
}

// Complete reports whether every grammar section was present and non-empty.
func (r *SectionResult) Complete() bool {
	return len(r.Missing) == 0
}

// Get returns the trimmed body of a section, empty when absent.
func (r *SectionResult) Get(name string) string {
	return r.Sections[name]
}

var sectionMarkerRe = regexp.MustCompile(`(?m)^\s*\[([A-Z_]+)\]\s*$`)

// ParseSections splits an LLM free-text response into the sections named by
// the grammar. Unknown markers are ignored; duplicate markers keep the first
// occurrence. The result always reports missing sections explicitly rather
// than defaulting silently.
func ParseSections(text string, grammar []string) (*SectionResult, error) {
	if len(grammar) == 0 {
		return nil, fmt.Errorf("section grammar must not be empty")
	}

	result := &SectionResult{
		Sections: make(map[string]string, len(grammar)),
		Missing:  []string{},
	}

	matches := sectionMarkerRe.FindAllStringSubmatchIndex(text, -1)
	for i, match := range matches {
		name := text[match[2]:match[3]]

		bodyStart := match[1]
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		if _, dup := result.Sections[name]; dup {
			continue
		}
		result.Sections[name] = strings.TrimSpace(text[bodyStart:bodyEnd])
	}

	for _, name := range grammar {
		if result.Sections[name] == "" {
			result.Missing = append(result.Missing, name)
		}
	}

	return result, nil
}
