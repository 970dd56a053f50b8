package constants

import "time"

var CacheTTL = struct {
	TrendReport     time.Duration
	HashtagAnalysis time.Duration
	SeoAnalysis     time.Duration
	TrendingTags    time.Duration
}{
	TrendReport:     2 * time.Hour,
	HashtagAnalysis: 30 * time.Minute,
	SeoAnalysis:     30 * time.Minute,
	TrendingTags:    1 * time.Hour,
}

var RetryConfig = struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Jitter      time.Duration
}{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	Jitter:      250 * time.Millisecond,
}

var CircuitBreakerConfig = struct {
	FailureThreshold    int
	ResetTimeout        time.Duration
	RateLimitTimeout    time.Duration
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
}{
	FailureThreshold:    3,
	ResetTimeout:        30 * time.Second,
	RateLimitTimeout:    1 * time.Hour,
	HealthCheckInterval: 10 * time.Minute,
	HealthCheckTimeout:  10 * time.Second,
}

var YouTubeQuota = struct {
	DailyLimit      int
	SearchCost      int
	VideosCost      int
	SafetyMargin    int
	MaxVideosPerRun int64
}{
	DailyLimit:      10000,
	SearchCost:      100, // search.list cost per call
	VideosCost:      1,   // videos.list cost per call
	SafetyMargin:    2000,
	MaxVideosPerRun: 25,
}

var AIInputLimits = struct {
	MaxContentLength  int
	MaxKeywords       int
	MaxHashtagsPerSet int
}{
	MaxContentLength:  4000,
	MaxKeywords:       10,
	MaxHashtagsPerSet: 30,
}

var ScraperConfig = struct {
	Timeout time.Duration
	MaxTags int
}{
	Timeout: 15 * time.Second,
	MaxTags: 30,
}
