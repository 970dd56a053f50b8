package hashtag

import "github.com/kapu/creator-insight-go/internal/domain"

// domainRelatedTerms maps a topic keyword found in a hashtag to related terms
// whose presence in the content confirms topical relevance.
var domainRelatedTerms = map[string][]string{
	"tech":      {"technology", "software", "digital", "computer", "programming"},
	"fitness":   {"workout", "gym", "health", "exercise", "training"},
	"food":      {"recipe", "cooking", "meal", "restaurant", "delicious"},
	"travel":    {"trip", "vacation", "destination", "adventure", "explore"},
	"business":  {"entrepreneur", "startup", "marketing", "sales", "growth"},
	"fashion":   {"style", "outfit", "clothing", "trend", "designer"},
	"beauty":    {"makeup", "skincare", "cosmetics", "glow", "routine"},
	"gaming":    {"game", "gamer", "stream", "esports", "console"},
	"music":     {"song", "artist", "album", "playlist", "concert"},
	"marketing": {"brand", "audience", "campaign", "content", "engagement"},
}

var trendingKeywords = []string{"trending", "viral", "fyp", "hot"}

var nicheKeywords = []string{"community", "niche", "specific"}

// broadHashtags are generic tags with huge reach and little targeting value.
var broadHashtags = []string{
	"love", "food", "travel", "fitness", "fashion", "art", "music",
	"photography", "nature", "style", "life", "fun", "summer", "friends",
}

var spamIndicators = []string{
	"follow4follow", "f4f", "like4like", "l4l", "followme", "sub4sub",
	"followback", "spam",
}

// overusedHashtags score no uniqueness bonus when matched exactly.
var overusedHashtags = []string{
	"love", "instagood", "photooftheday", "beautiful", "happy", "cute",
	"fashion", "followme", "picoftheday", "follow",
}

var audienceAgeTerms = []string{
	"teen", "teens", "youth", "young", "adult", "adults", "senior",
	"seniors", "millennial", "millennials", "genz", "boomer",
}

var audienceInterestTerms = []string{
	"fitness", "gaming", "travel", "food", "fashion", "music", "tech",
	"beauty", "sports", "art",
}

var audienceProfessionalTerms = []string{
	"professional", "business", "entrepreneur", "career", "developer",
	"designer", "marketer", "freelancer",
}

var audienceGeoTerms = []string{
	"local", "global", "usa", "europe", "asia", "city", "urban", "rural",
}

// hashtagCountRange holds a platform's acceptable and ideal hashtag counts.
type hashtagCountRange struct {
	Min   int
	Max   int
	Ideal int
}

var platformHashtagCounts = map[domain.Platform]hashtagCountRange{
	domain.PlatformInstagram: {Min: 5, Max: 30, Ideal: 15},
	domain.PlatformTikTok:    {Min: 3, Max: 10, Ideal: 5},
	domain.PlatformTwitter:   {Min: 1, Max: 3, Ideal: 2},
	domain.PlatformLinkedIn:  {Min: 3, Max: 10, Ideal: 5},
	domain.PlatformYouTube:   {Min: 3, Max: 15, Ideal: 8},
}

func countRangeFor(platform domain.Platform) hashtagCountRange {
	if r, ok := platformHashtagCounts[platform]; ok {
		return r
	}
	return platformHashtagCounts[domain.PlatformInstagram]
}

// IdealCount is the recommended number of hashtags for a platform.
func IdealCount(platform domain.Platform) int {
	return countRangeFor(platform).Ideal
}
