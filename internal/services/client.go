package services

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/desertthunder/moodx/internal/shared"
	"golang.org/x/time/rate"
)

// NewHTTPClient builds the client used for both services: a cookie jar keeps the service session between
// requests, seeded with the configured session cookie when there is one.
func NewHTTPClient(cfg shared.ServiceConfig) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if cfg.SessionCookie != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: service.base_url: %v", shared.ErrInvalidConfig, err)
		}
		name := cfg.CookieName
		if name == "" {
			name = "session"
		}
		jar.SetCookies(base, []*http.Cookie{{Name: name, Value: cfg.SessionCookie, Path: "/"}})
	}

	return &http.Client{Jar: jar, Timeout: cfg.Timeout()}, nil
}

// NewLimiter returns the request limiter described by cfg.
func NewLimiter(cfg shared.ServiceConfig) *rate.Limiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
}
