package ratelimiter

import "time"

type Limiter interface {
	// Allow reports whether ip may make a request and, when it may not, how
	// long until it may.
	Allow(ip string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
