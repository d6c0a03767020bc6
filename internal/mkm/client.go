// Package mkm provides a client for the Cardmarket (MKM) REST API. Requests
// are signed by a caller-supplied Session and every response goes through a
// single status policy before it is decoded into domain types.
package mkm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/mkm/internal/config"
	"github.com/donaldgifford/mkm/internal/metrics"
)

// Client issues marketplace API requests. It holds no per-call state and is
// safe for concurrent use; the Session passed to each method is responsible
// for its own concurrency.
type Client struct {
	cfg      config.MKMConfig
	baseURL  string
	logger   *slog.Logger
	pageSize int
	limiter  *RateLimiter
	quota    *Quota
	exit     func(int)
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger used for request and failure records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithExitFunc overrides the function called when construction fails.
// Defaults to os.Exit.
func WithExitFunc(f func(int)) Option {
	return func(c *Client) {
		c.exit = f
	}
}

// WithPageSize overrides the maxResults sent by paginated endpoints.
func WithPageSize(n int) Option {
	return func(c *Client) {
		c.pageSize = n
	}
}

// WithRateLimiter injects a client-side throttle. When set, every request
// goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.limiter = r
	}
}

// WithQuota replaces the tracker fed from the request limit headers.
func WithQuota(q *Quota) Option {
	return func(c *Client) {
		c.quota = q
	}
}

func newClient(opts []Option) *Client {
	c := &Client{
		logger: slog.Default(),
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.quota == nil {
		c.quota = NewQuota()
	}
	return c
}

// New creates a client for the API described by cfg. An invalid base URL is
// a startup failure: it is logged at ERROR and the process exits with
// status 1. New does not check the credentials in cfg: requests are signed
// by the Session passed to each call, and only NewSession reads them. Use
// NewFromConfigFile to have missing credentials rejected at startup.
func New(cfg config.MKMConfig, opts ...Option) *Client {
	c := newClient(opts)
	if !c.configure(cfg) {
		return nil
	}
	return c
}

// NewFromConfigFile loads the YAML configuration at path and creates a
// client from it. A missing, unreadable or invalid file is logged at ERROR
// and the process exits with status 1.
func NewFromConfigFile(path string, opts ...Option) *Client {
	c := newClient(opts)

	cfg, err := config.Load(path)
	if err != nil {
		c.logger.Error("Unable to load MKM configuration.", "path", path, "err", err)
		c.exit(1)
		return nil
	}

	if !c.configure(cfg.MKM) {
		return nil
	}
	return c
}

func (c *Client) configure(cfg config.MKMConfig) bool {
	if err := config.ValidateBaseURL(cfg.BaseURL); err != nil {
		c.logger.Error("Invalid MKM configuration.", "err", fmt.Errorf("base URL: %w", err))
		c.exit(1)
		return false
	}

	c.cfg = cfg
	c.baseURL = strings.TrimRight(cfg.BaseURL, "/")

	if c.pageSize <= 0 {
		c.pageSize = cfg.PageSize
	}
	if c.pageSize <= 0 {
		c.pageSize = 100
	}
	if c.limiter == nil && cfg.RateLimit.PerSecond > 0 {
		c.limiter = NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	}
	return true
}

// BaseURL returns the API root every endpoint path is joined to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PageSize returns the maxResults used by paginated endpoints.
func (c *Client) PageSize() int {
	return c.pageSize
}

// Quota returns the tracker fed from the marketplace's request limit headers.
func (c *Client) Quota() *Quota {
	return c.quota
}

// NewSession builds an OAuth1 signing session from the credentials in the
// client's configuration.
func (c *Client) NewSession(opts ...SessionOption) *OAuthSession {
	return NewOAuthSession(Credentials{
		AppToken:          c.cfg.AppToken,
		AppSecret:         c.cfg.AppSecret,
		AccessToken:       c.cfg.AccessToken,
		AccessTokenSecret: c.cfg.AccessTokenSecret,
	}, append([]SessionOption{WithSessionTimeout(c.cfg.Timeout)}, opts...)...)
}

// request describes one endpoint call.
type request struct {
	endpoint string // metrics label
	method   string
	path     string
	query    url.Values
	body     []byte
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// dispatch sends req through sess and applies the status policy. The
// returned body is non-nil only on success.
func (c *Client) dispatch(ctx context.Context, sess Session, req request) ([]byte, error) {
	if sess == nil {
		return nil, ErrNoSession
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	u := c.buildURL(req.path, req.query)
	log := c.logger.With(
		"request_id", uuid.NewString(),
		"endpoint", req.endpoint,
		"method", req.method,
	)
	log.Debug("Sending MKM request.", "url", u)

	start := time.Now()
	resp, err := send(ctx, sess, req.method, u, req.body)
	if err == nil && resp == nil {
		err = errors.New("session returned no response")
	}
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(req.endpoint, "error").Inc()
		log.Error("MKM request could not be sent.", "url", u, "err", err)
		return nil, fmt.Errorf("executing %s %s: %w", req.method, u, err)
	}
	defer resp.Body.Close()

	metrics.APIRequestDuration.WithLabelValues(req.endpoint).Observe(time.Since(start).Seconds())
	metrics.APIRequestsTotal.WithLabelValues(req.endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if c.quota.Update(resp.Header) {
		log.Debug(
			"MKM request quota.",
			"count", c.quota.Count(),
			"max", c.quota.Max(),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Reading MKM response failed.", "url", u, "err", err)
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	payload, err := interpret(resp.StatusCode, reasonPhrase(resp), body)
	if err == nil {
		return payload, nil
	}

	var apiErr *APIError
	switch {
	case errors.Is(err, ErrNoResults):
		metrics.APINoResultsTotal.WithLabelValues(req.endpoint).Inc()
		log.Error("No results found.")
		return nil, fmt.Errorf("%s %s: %w", req.method, u, err)
	case errors.As(err, &apiErr):
		apiErr.Method = req.method
		apiErr.URL = u
		if apiErr.StatusCode == http.StatusUnauthorized {
			log.Error(
				"Authentication failed.",
				"status", apiErr.StatusCode,
				"reason", apiErr.Reason,
				"url", u,
			)
		} else {
			log.Error(
				"MKM request failed.",
				"status", apiErr.StatusCode,
				"reason", apiErr.Reason,
				"url", u,
			)
		}
		return nil, apiErr
	default:
		return nil, err
	}
}

func send(ctx context.Context, sess Session, method, u string, body []byte) (*http.Response, error) {
	switch method {
	case http.MethodGet:
		return sess.Get(ctx, u)
	case http.MethodPost:
		return sess.Post(ctx, u, body)
	case http.MethodPut:
		return sess.Put(ctx, u, body)
	case http.MethodDelete:
		return sess.Delete(ctx, u, body)
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}
}
