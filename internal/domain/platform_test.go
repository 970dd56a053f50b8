package domain

import "testing"

func TestParsePlatform(t *testing.T) {
	cases := []struct {
		input string
		want  Platform
	}{
		{"youtube", PlatformYouTube},
		{"YOUTUBE", PlatformYouTube},
		{"  TikTok  ", PlatformTikTok},
		{"linkedin", PlatformLinkedIn},
		{"myspace", PlatformOther},
		{"", PlatformOther},
	}

	for _, tc := range cases {
		if got := ParsePlatform(tc.input); got != tc.want {
			t.Errorf("ParsePlatform(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}
