// Package main implements a mock Cardmarket API server for local development.
// It serves canned responses from a JSON fixture so the mkm CLI can be
// exercised without dedicated-app credentials. Requests must carry an OAuth
// Authorization header whose realm matches the request URL; signatures are
// not verified.
package main

import (
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const apiPrefix = "/ws/v2.0/output.json"

type fixture struct {
	Account  json.RawMessage   `json:"account"`
	Games    []json.RawMessage `json:"games"`
	Articles []json.RawMessage `json:"articles"`
}

// quota mimics the marketplace's daily request counter.
type quota struct {
	count atomic.Int64
	max   int64
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/fixture.json", "path to response fixture")
	limit := flag.Int64("request-limit", 5000, "value reported in X-Request-Limit-Max")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "games", len(fx.Games), "articles", len(fx.Articles))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Cardmarket server", "addr", addr, "base_url", "http://localhost"+addr+apiPrefix)

	srv := &http.Server{
		Addr:         addr,
		Handler:      newHandler(logger, fx, &quota{max: *limit}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func newHandler(logger *slog.Logger, fx *fixture, q *quota) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+apiPrefix+"/account", objectHandler("account", fx.Account))
	mux.HandleFunc("GET "+apiPrefix+"/games", listHandler("game", fx.Games))
	mux.HandleFunc("GET "+apiPrefix+"/stock", stockHandler(logger, fx.Articles))
	mux.HandleFunc("GET "+apiPrefix+"/stock/{start}", stockHandler(logger, fx.Articles))
	mux.HandleFunc("GET "+apiPrefix+"/users/{user}/articles", articlesHandler(logger, fx.Articles))
	mux.HandleFunc("GET "+apiPrefix+"/articles/{product}", articlesHandler(logger, fx.Articles))
	mux.HandleFunc("POST "+apiPrefix+"/stock", stockWriteHandler(logger, "inserted"))
	mux.HandleFunc("DELETE "+apiPrefix+"/stock", stockWriteHandler(logger, "deleted"))

	return requestLogger(logger, requireOAuth(logger, withQuota(q, mux)))
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// requireOAuth rejects requests without an OAuth header whose realm is the
// request URL minus its query.
func requireOAuth(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		want := fmt.Sprintf(`OAuth realm="http://%s%s"`, r.Host, r.URL.Path)
		if !strings.HasPrefix(auth, want) || !strings.Contains(auth, "oauth_signature=") {
			logger.Warn("rejecting request with bad OAuth header", "path", r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withQuota(q *quota, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := q.count.Add(1)
		w.Header().Set("X-Request-Limit-Count", strconv.FormatInt(n, 10))
		w.Header().Set("X-Request-Limit-Max", strconv.FormatInt(q.max, 10))
		if n > q.max {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func objectHandler(field string, obj json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]json.RawMessage{field: obj})
	}
}

func listHandler(field string, items []json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if len(items) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]json.RawMessage{field: items})
	}
}

// page slices items the way the marketplace does: 204 past the end, 206 when
// more remain after this page, 200 otherwise.
func page(items []json.RawMessage, start, maxResults int) ([]json.RawMessage, int) {
	if start >= len(items) {
		return nil, http.StatusNoContent
	}
	if maxResults <= 0 {
		return items[start:], http.StatusOK
	}
	end := min(start+maxResults, len(items))
	status := http.StatusOK
	if end < len(items) || start > 0 {
		status = http.StatusPartialContent
	}
	return items[start:end], status
}

func queryInt(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil && v >= 0 {
		return v
	}
	return def
}

func articlesHandler(logger *slog.Logger, articles []json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := queryInt(r, "start", 0)
		maxResults := queryInt(r, "maxResults", 0)

		items, status := page(articles, start, maxResults)
		logger.Info("articles", "start", start, "max_results", maxResults, "returned", len(items), "status", status)
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, map[string][]json.RawMessage{"article": items})
	}
}

// stockHandler serves /stock and /stock/{start}; the path form is 1-based
// and pages by 100.
func stockHandler(logger *slog.Logger, articles []json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, maxResults := 0, 0
		if s := r.PathValue("start"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			start, maxResults = n-1, 100
		}

		items, status := page(articles, start, maxResults)
		logger.Info("stock", "start", start, "returned", len(items), "status", status)
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, map[string][]json.RawMessage{"article": items})
	}
}

type stockRequest struct {
	Articles []struct {
		IDArticle int     `xml:"idArticle"`
		IDProduct int     `xml:"idProduct"`
		Count     int     `xml:"count"`
		Price     float64 `xml:"price"`
	} `xml:"article"`
}

// stockWriteHandler acknowledges every article in the XML body as a success
// under field.
func stockWriteHandler(logger *slog.Logger, field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var req stockRequest
		if err := xml.Unmarshal(body, &req); err != nil || len(req.Articles) == 0 {
			logger.Warn("rejecting stock write", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		results := make([]map[string]any, 0, len(req.Articles))
		for i, a := range req.Articles {
			id := a.IDArticle
			if id == 0 {
				id = 900000 + i
			}
			entry := map[string]any{"success": true, "idArticle": id, "count": a.Count}
			if field == "inserted" {
				entry["idArticle"] = map[string]any{
					"idArticle": id,
					"idProduct": a.IDProduct,
					"count":     a.Count,
					"price":     a.Price,
				}
			}
			results = append(results, entry)
		}
		logger.Info("stock write", "field", field, "articles", len(results))
		writeJSON(w, http.StatusOK, map[string]any{field: results})
	}
}
