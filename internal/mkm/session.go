package mkm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
)

// Session issues signed requests on behalf of the client. The client never
// builds or refreshes credentials; it only calls these methods. Callers own
// the returned response body.
type Session interface {
	Get(ctx context.Context, rawURL string) (*http.Response, error)
	Post(ctx context.Context, rawURL string, body []byte) (*http.Response, error)
	Put(ctx context.Context, rawURL string, body []byte) (*http.Response, error)
	Delete(ctx context.Context, rawURL string, body []byte) (*http.Response, error)
}

// Credentials are the four tokens of a dedicated marketplace app.
type Credentials struct {
	AppToken          string
	AppSecret         string
	AccessToken       string
	AccessTokenSecret string
}

// OAuthSession implements Session by signing every request with OAuth1
// HMAC-SHA1. The marketplace requires the realm to equal the request URL,
// so the header is computed per request.
type OAuthSession struct {
	creds     Credentials
	client    *http.Client
	nowFunc   func() time.Time
	nonceFunc func() string
}

// SessionOption configures the OAuthSession.
type SessionOption func(*OAuthSession)

// WithSessionHTTPClient overrides the default pooled HTTP client.
func WithSessionHTTPClient(hc *http.Client) SessionOption {
	return func(s *OAuthSession) {
		s.client = hc
	}
}

// WithSessionTimeout sets the timeout of the session's HTTP client. Zero
// leaves the client unchanged.
func WithSessionTimeout(d time.Duration) SessionOption {
	return func(s *OAuthSession) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithSessionNowFunc overrides the time function for testing.
func WithSessionNowFunc(f func() time.Time) SessionOption {
	return func(s *OAuthSession) {
		s.nowFunc = f
	}
}

// WithNonceFunc overrides the nonce generator for testing.
func WithNonceFunc(f func() string) SessionOption {
	return func(s *OAuthSession) {
		s.nonceFunc = f
	}
}

// NewOAuthSession creates a signing session for creds.
func NewOAuthSession(creds Credentials, opts ...SessionOption) *OAuthSession {
	s := &OAuthSession{
		creds:   creds,
		client:  cleanhttp.DefaultPooledClient(),
		nowFunc: time.Now,
		nonceFunc: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get issues a signed GET.
func (s *OAuthSession) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	return s.do(ctx, http.MethodGet, rawURL, nil)
}

// Post issues a signed POST with an XML body.
func (s *OAuthSession) Post(ctx context.Context, rawURL string, body []byte) (*http.Response, error) {
	return s.do(ctx, http.MethodPost, rawURL, body)
}

// Put issues a signed PUT with an optional XML body.
func (s *OAuthSession) Put(ctx context.Context, rawURL string, body []byte) (*http.Response, error) {
	return s.do(ctx, http.MethodPut, rawURL, body)
}

// Delete issues a signed DELETE with an optional XML body.
func (s *OAuthSession) Delete(ctx context.Context, rawURL string, body []byte) (*http.Response, error) {
	return s.do(ctx, http.MethodDelete, rawURL, body)
}

func (s *OAuthSession) do(
	ctx context.Context,
	method, rawURL string,
	body []byte,
) (*http.Response, error) {
	var reader io.Reader = http.NoBody
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	auth := authorizationHeader(method, req.URL, s.creds, oauthNonce{
		nonce:     s.nonceFunc(),
		timestamp: s.nowFunc().Unix(),
	})
	req.Header.Set("Authorization", auth)
	req.Header.Set("Accept", "application/json")
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/xml")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	return resp, nil
}
