package ratelimit

type Config struct {
	RequestsPerMinute int
}

type RateLimiter interface {
	Allow(key string, cfg Config) (bool, error)
	Reset(key string) error
}
