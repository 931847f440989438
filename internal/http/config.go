package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore BookStore
	Database  Pinger

	// Proxies allowed to set X-Forwarded-For; nil trusts none
	TrustedProxies []string

	// Rate limiting; disabled when RateLimitRPS is zero
	RateLimitRPS   float64
	RateLimitBurst int

	// Application info
	Version string
}
