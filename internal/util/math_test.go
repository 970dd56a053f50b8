package util

import "testing"

func TestClampScore(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{130, 100},
	}
	for _, tc := range cases {
		if got := ClampScore(tc.in); got != tc.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRoundScore(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{59.4, 59},
		{59.5, 60},
		{-3.2, 0},
		{104.9, 100},
	}
	for _, tc := range cases {
		if got := RoundScore(tc.in); got != tc.want {
			t.Errorf("RoundScore(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	if got := TruncateString("hello world", 5); got != "hello..." {
		t.Errorf("TruncateString = %q, want %q", got, "hello...")
	}
	// Rune-based: multibyte characters are not split.
	if got := TruncateString("caféteria", 4); got != "café..." {
		t.Errorf("TruncateString = %q, want %q", got, "café...")
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("fitness motivation", []string{"gym", "motivation"}) {
		t.Error("expected match on motivation")
	}
	if ContainsAny("fitness", []string{"gym", "yoga"}) {
		t.Error("unexpected match")
	}
	if ContainsAny("anything", nil) {
		t.Error("empty substring list should never match")
	}
}
