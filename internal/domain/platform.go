package domain

import "strings"

// Platform identifies a social platform whose conventions drive scoring.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformBlog      Platform = "blog"
	PlatformOther     Platform = "other"
)

func (p Platform) String() string {
	return string(p)
}

// ParsePlatform normalizes a platform name case-insensitively. Unknown names
// fall back to PlatformOther so scoring degrades to the generic tables
// instead of rejecting the input.
func ParsePlatform(s string) Platform {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformInstagram:
		return PlatformInstagram
	case PlatformTikTok:
		return PlatformTikTok
	case PlatformTwitter:
		return PlatformTwitter
	case PlatformLinkedIn:
		return PlatformLinkedIn
	case PlatformYouTube:
		return PlatformYouTube
	case PlatformBlog:
		return PlatformBlog
	default:
		return PlatformOther
	}
}
