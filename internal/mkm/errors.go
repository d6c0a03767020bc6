package mkm

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrNoResults is returned when the marketplace answers 204 No Content.
	ErrNoResults = errors.New("no results found")

	// ErrUnauthorized is matched by an *APIError carrying status 401.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrRateLimited is matched by an *APIError carrying status 429.
	ErrRateLimited = errors.New("request limit exceeded")

	// ErrUnsupportedLanguage is returned for language names outside the
	// marketplace's language table.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrNoSession is returned when an endpoint is called without a session.
	ErrNoSession = errors.New("no signing session given")

	// ErrNoArticles is returned when a stock write is called with an empty
	// article list.
	ErrNoArticles = errors.New("no articles given")
)

// APIError represents a non-success HTTP response from the marketplace.
type APIError struct {
	StatusCode int
	Reason     string
	Method     string
	URL        string
}

func (e *APIError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("MKM API error (status %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf(
		"MKM API error (status %d): %s [%s %s]",
		e.StatusCode,
		e.Reason,
		e.Method,
		e.URL,
	)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}
