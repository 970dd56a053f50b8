package prompt

import (
	"strings"
	"testing"
)

func TestParseSectionsComplete(t *testing.T) {
	text := `[CAPTION]
Morning routine that changed my life.

[HASHTAGS]
#morningroutine #productivity #habits

[CALL_TO_ACTION]
Save this for tomorrow morning!`

	result, err := ParseSections(text, CaptionGrammar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Complete() {
		t.Fatalf("expected complete result, missing: %v", result.Missing)
	}

	if got := result.Get("CAPTION"); got != "Morning routine that changed my life." {
		t.Errorf("CAPTION = %q", got)
	}
	if got := result.Get("HASHTAGS"); got != "#morningroutine #productivity #habits" {
		t.Errorf("HASHTAGS = %q", got)
	}
	if got := result.Get("CALL_TO_ACTION"); got != "Save this for tomorrow morning!" {
		t.Errorf("CALL_TO_ACTION = %q", got)
	}
}

func TestParseSectionsReportsMissing(t *testing.T) {
	text := `[CAPTION]
Just the caption, nothing else.`

	result, err := ParseSections(text, CaptionGrammar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Complete() {
		t.Fatal("expected incomplete result")
	}
	if len(result.Missing) != 2 {
		t.Fatalf("Missing = %v, want HASHTAGS and CALL_TO_ACTION", result.Missing)
	}
	for _, name := range []string{"HASHTAGS", "CALL_TO_ACTION"} {
		found := false
		for _, m := range result.Missing {
			if m == name {
				found = true
			}
		}
		if !found {
			t.Errorf("%s not reported missing: %v", name, result.Missing)
		}
	}
}

func TestParseSectionsEmptyBodyIsMissing(t *testing.T) {
	text := `[TITLE]

[DESCRIPTION]
A real description.

[KEYWORDS]
one, two`

	result, err := ParseSections(text, SeoGrammar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Complete() {
		t.Fatal("empty TITLE body should count as missing")
	}
	if len(result.Missing) != 1 || result.Missing[0] != "TITLE" {
		t.Errorf("Missing = %v, want [TITLE]", result.Missing)
	}
}

func TestParseSectionsDuplicateKeepsFirst(t *testing.T) {
	text := `[TITLE]
first title

[TITLE]
second title

[DESCRIPTION]
desc

[KEYWORDS]
kw`

	result, err := ParseSections(text, SeoGrammar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Get("TITLE"); got != "first title" {
		t.Errorf("TITLE = %q, want first occurrence kept", got)
	}
}

func TestParseSectionsIgnoresUnknownMarkers(t *testing.T) {
	text := `[PREAMBLE]
model chatter

[TITLE]
the title

[DESCRIPTION]
the description

[KEYWORDS]
alpha, beta`

	result, err := ParseSections(text, SeoGrammar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Complete() {
		t.Errorf("unknown marker broke parsing, missing: %v", result.Missing)
	}
	if result.Get("TITLE") != "the title" {
		t.Errorf("TITLE = %q", result.Get("TITLE"))
	}
}

func TestParseSectionsEmptyGrammar(t *testing.T) {
	if _, err := ParseSections("anything", nil); err == nil {
		t.Fatal("expected error for empty grammar")
	}
}

func TestBuildCaptionPromptContainsGrammarMarkers(t *testing.T) {
	built := BuildCaptionPrompt(CaptionPromptVars{
		Topic:    "home espresso",
		Platform: "instagram",
		Tone:     "friendly",
	})

	for _, section := range CaptionGrammar {
		if !strings.Contains(built, "["+section+"]") {
			t.Errorf("prompt missing marker [%s]", section)
		}
	}
	if !strings.Contains(built, "home espresso") {
		t.Error("prompt does not mention the topic")
	}
}

func TestBuildSeoPromptContainsGrammarMarkers(t *testing.T) {
	built := BuildSeoPrompt(SeoPromptVars{
		Topic:    "learning golang",
		Platform: "youtube",
		Keywords: []string{"golang", "tutorial"},
	})

	for _, section := range SeoGrammar {
		if !strings.Contains(built, "["+section+"]") {
			t.Errorf("prompt missing marker [%s]", section)
		}
	}
	if !strings.Contains(built, "golang, tutorial") {
		t.Error("prompt does not list the target keywords")
	}
}
