package mkm_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mkm/internal/config"
	"github.com/donaldgifford/mkm/internal/mkm"
	"github.com/donaldgifford/mkm/pkg/logger"
)

const testBaseURL = "https://api.test/ws/v2.0/output.json"

// syncBuffer guards a bytes.Buffer so slog handlers and assertions can
// share it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type logRecord struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	raw   map[string]any
}

// records parses the JSON log lines written so far.
func (b *syncBuffer) records(t *testing.T) []logRecord {
	t.Helper()

	var out []logRecord
	sc := bufio.NewScanner(strings.NewReader(b.String()))
	for sc.Scan() {
		var r logRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r.raw))
		out = append(out, r)
	}
	return out
}

// errorRecords returns the ERROR level records.
func (b *syncBuffer) errorRecords(t *testing.T) []logRecord {
	t.Helper()

	var out []logRecord
	for _, r := range b.records(t) {
		if r.Level == "ERROR" {
			out = append(out, r)
		}
	}
	return out
}

func newTestClient(t *testing.T, opts ...mkm.Option) (*mkm.Client, *syncBuffer) {
	t.Helper()

	buf := &syncBuffer{}
	base := []mkm.Option{
		mkm.WithLogger(logger.NewWithWriter(buf, "debug", "json")),
		mkm.WithExitFunc(func(code int) {
			t.Fatalf("unexpected exit with code %d", code)
		}),
	}

	c := mkm.New(config.MKMConfig{BaseURL: testBaseURL}, append(base, opts...)...)
	require.NotNil(t, c)
	return c, buf
}

// response builds an *http.Response the way a session would return it.
func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
