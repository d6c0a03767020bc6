package mkm_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mkm/internal/config"
	"github.com/donaldgifford/mkm/internal/metrics"
	"github.com/donaldgifford/mkm/internal/mkm"
	"github.com/donaldgifford/mkm/internal/mkm/mocks"
	"github.com/donaldgifford/mkm/pkg/logger"
)

func TestNew_InvalidBaseURLExits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "empty", baseURL: ""},
		{name: "no scheme", baseURL: "api.cardmarket.com/ws/v2.0"},
		{name: "ftp", baseURL: "ftp://api.cardmarket.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &syncBuffer{}
			exitCode := -1

			c := mkm.New(
				config.MKMConfig{BaseURL: tt.baseURL},
				mkm.WithLogger(logger.NewWithWriter(buf, "info", "json")),
				mkm.WithExitFunc(func(code int) { exitCode = code }),
			)

			assert.Nil(t, c)
			assert.Equal(t, 1, exitCode)

			errs := buf.errorRecords(t)
			require.Len(t, errs, 1)
			assert.Equal(t, "Invalid MKM configuration.", errs[0].Msg)
		})
	}
}

func TestNewFromConfigFile_MissingFileExits(t *testing.T) {
	t.Parallel()

	buf := &syncBuffer{}
	exitCode := -1

	c := mkm.NewFromConfigFile(
		filepath.Join(t.TempDir(), "missing.yaml"),
		mkm.WithLogger(logger.NewWithWriter(buf, "info", "json")),
		mkm.WithExitFunc(func(code int) { exitCode = code }),
	)

	assert.Nil(t, c)
	assert.Equal(t, 1, exitCode)

	errs := buf.errorRecords(t)
	require.NotEmpty(t, errs)
	assert.Equal(t, "Unable to load MKM configuration.", errs[0].Msg)
	assert.Contains(t, errs[0].raw["err"], "reading config file")
}

func TestNewFromConfigFile_InvalidConfigExits(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mkm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mkm:\n  app_token: only-this\n"), 0o600))

	buf := &syncBuffer{}
	exitCode := -1

	c := mkm.NewFromConfigFile(
		path,
		mkm.WithLogger(logger.NewWithWriter(buf, "info", "json")),
		mkm.WithExitFunc(func(code int) { exitCode = code }),
	)

	assert.Nil(t, c)
	assert.Equal(t, 1, exitCode)
	assert.NotEmpty(t, buf.errorRecords(t))
}

func TestNewFromConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mkm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mkm:
  sandbox: true
  app_token: a
  app_secret: b
  access_token: c
  access_token_secret: d
  page_size: 250
  rate_limit:
    per_second: 5
`), 0o600))

	c := mkm.NewFromConfigFile(
		path,
		mkm.WithLogger(logger.Discard()),
		mkm.WithExitFunc(func(code int) { t.Fatalf("unexpected exit %d", code) }),
	)

	require.NotNil(t, c)
	assert.Equal(t, config.SandboxBaseURL, c.BaseURL())
	assert.Equal(t, 250, c.PageSize())
	assert.NotNil(t, c.NewSession())
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	assert.Equal(t, testBaseURL, c.BaseURL())
	assert.Equal(t, 100, c.PageSize())
	require.NotNil(t, c.Quota())
	assert.False(t, c.Quota().Known())
}

func TestNew_TrailingSlashTrimmed(t *testing.T) {
	t.Parallel()

	c := mkm.New(
		config.MKMConfig{BaseURL: testBaseURL + "/"},
		mkm.WithLogger(logger.Discard()),
		mkm.WithPageSize(50),
	)
	require.NotNil(t, c)
	assert.Equal(t, testBaseURL, c.BaseURL())
	assert.Equal(t, 50, c.PageSize())
}

func TestNew_CredentialsLeftToSession(t *testing.T) {
	t.Parallel()

	exited := false
	c := mkm.New(
		config.MKMConfig{BaseURL: testBaseURL},
		mkm.WithLogger(logger.Discard()),
		mkm.WithExitFunc(func(int) { exited = true }),
	)
	require.NotNil(t, c)
	assert.False(t, exited)

	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Get(mock.Anything, testBaseURL+"/games").
		Return(response(http.StatusOK, `{"game":[]}`), nil)

	_, err := c.GetGames(t.Context(), sess)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mkm:\n  base_url: "+testBaseURL+"\n"), 0o600))

	code := 0
	fromFile := mkm.NewFromConfigFile(path,
		mkm.WithLogger(logger.Discard()),
		mkm.WithExitFunc(func(n int) { code = n }),
	)
	assert.Nil(t, fromFile)
	assert.Equal(t, 1, code)
}

func TestClient_NilSession(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)

	_, err := c.GetAccount(t.Context(), nil)
	require.ErrorIs(t, err, mkm.ErrNoSession)
}

func TestClient_StatusPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantStatus int
		wantLog    string
	}{
		{
			name:   "200 returns account",
			status: http.StatusOK,
			body:   `{"account":{"idUser":7,"username":"seller"}}`,
		},
		{
			name:   "206 returns account",
			status: http.StatusPartialContent,
			body:   `{"account":{"idUser":7,"username":"seller"}}`,
		},
		{
			name:    "204 is no results",
			status:  http.StatusNoContent,
			wantErr: mkm.ErrNoResults,
			wantLog: "No results found.",
		},
		{
			name:       "401 is unauthorized",
			status:     http.StatusUnauthorized,
			wantErr:    mkm.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantLog:    "Authentication failed.",
		},
		{
			name:       "429 is rate limited",
			status:     http.StatusTooManyRequests,
			wantErr:    mkm.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantLog:    "MKM request failed.",
		},
		{
			name:       "500 is an API error",
			status:     http.StatusInternalServerError,
			body:       `oops`,
			wantStatus: http.StatusInternalServerError,
			wantLog:    "MKM request failed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, buf := newTestClient(t)
			sess := mocks.NewMockSession(t)
			sess.EXPECT().
				Get(mock.Anything, testBaseURL+"/account").
				Return(response(tt.status, tt.body), nil)

			acc, err := c.GetAccount(t.Context(), sess)

			if tt.wantLog == "" {
				require.NoError(t, err)
				require.NotNil(t, acc)
				assert.Equal(t, 7, acc.IDUser)
				assert.Empty(t, buf.errorRecords(t))
				return
			}

			require.Error(t, err)
			assert.Nil(t, acc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}

			var apiErr *mkm.APIError
			if tt.wantStatus != 0 {
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
				assert.Equal(t, http.StatusText(tt.status), apiErr.Reason)
				assert.Equal(t, http.MethodGet, apiErr.Method)
				assert.Equal(t, testBaseURL+"/account", apiErr.URL)
			} else {
				assert.False(t, errors.As(err, &apiErr))
			}

			errs := buf.errorRecords(t)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantLog, errs[0].Msg)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	c, buf := newTestClient(t)
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Get(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := c.GetAccount(t.Context(), sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	errs := buf.errorRecords(t)
	require.Len(t, errs, 1)
	assert.Equal(t, "MKM request could not be sent.", errs[0].Msg)
}

func TestClient_InvalidJSON(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Get(mock.Anything, mock.Anything).
		Return(response(http.StatusOK, `not json`), nil)

	_, err := c.GetAccount(t.Context(), sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding account")
}

func TestClient_RequestIDLogged(t *testing.T) {
	t.Parallel()

	c, buf := newTestClient(t)
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Get(mock.Anything, mock.Anything).
		Return(response(http.StatusUnauthorized, ""), nil)

	_, err := c.GetAccount(t.Context(), sess)
	require.Error(t, err)

	records := buf.records(t)
	require.Len(t, records, 2)
	assert.Equal(t, "Sending MKM request.", records[0].Msg)
	assert.NotEmpty(t, records[0].raw["request_id"])
	assert.Equal(t, records[0].raw["request_id"], records[1].raw["request_id"])
	assert.Equal(t, "account", records[1].raw["endpoint"])
}

func TestClient_QuotaFromHeaders(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	resp := response(http.StatusOK, `{"account":{"idUser":1}}`)
	resp.Header.Set("X-Request-Limit-Count", "42")
	resp.Header.Set("X-Request-Limit-Max", "5000")

	sess := mocks.NewMockSession(t)
	sess.EXPECT().Get(mock.Anything, mock.Anything).Return(resp, nil)

	_, err := c.GetAccount(t.Context(), sess)
	require.NoError(t, err)

	q := c.Quota()
	assert.True(t, q.Known())
	assert.Equal(t, int64(42), q.Count())
	assert.Equal(t, int64(5000), q.Max())
	assert.Equal(t, int64(4958), q.Remaining())
}

func TestClient_RateLimiterConsulted(t *testing.T) {
	t.Parallel()

	rl := mkm.NewRateLimiter(1000, 1)
	c, _ := newTestClient(t, mkm.WithRateLimiter(rl))

	sess := mocks.NewMockSession(t)
	sess.EXPECT().Get(mock.Anything, mock.Anything).Return(response(http.StatusOK, `{"account":{}}`), nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.GetAccount(ctx, sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit:")
	sess.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)

	_, err = c.GetAccount(t.Context(), sess)
	require.NoError(t, err)
}

// Not parallel: reads shared collectors.
func TestClient_RecordsMetrics(t *testing.T) {
	c, _ := newTestClient(t)

	requests := metrics.APIRequestsTotal.WithLabelValues("games", "200")
	noResults := metrics.APINoResultsTotal.WithLabelValues("expansions")
	requestsBefore := ptestutil.ToFloat64(requests)
	noResultsBefore := ptestutil.ToFloat64(noResults)

	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Get(mock.Anything, testBaseURL+"/games").
		Return(response(http.StatusOK, `{"game":[]}`), nil)
	sess.EXPECT().
		Get(mock.Anything, testBaseURL+"/games/1/expansions").
		Return(response(http.StatusNoContent, ""), nil)

	_, err := c.GetGames(t.Context(), sess)
	require.NoError(t, err)
	_, err = c.GetExpansions(t.Context(), sess, 1)
	require.ErrorIs(t, err, mkm.ErrNoResults)

	assert.InDelta(t, requestsBefore+1, ptestutil.ToFloat64(requests), 0.001)
	assert.InDelta(t, noResultsBefore+1, ptestutil.ToFloat64(noResults), 0.001)

	m := &dto.Metric{}
	obs, ok := metrics.APIRequestDuration.WithLabelValues("games").(prometheus.Metric)
	require.True(t, ok)
	require.NoError(t, obs.Write(m))
	assert.Positive(t, m.GetHistogram().GetSampleCount())
}
