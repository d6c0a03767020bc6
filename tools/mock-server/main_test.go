package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestFixture(t *testing.T) *fixture {
	t.Helper()
	fx, err := loadFixture(filepath.Join("testdata", "fixture.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return fx
}

// signedRequest builds a request carrying an OAuth header with a matching
// realm. httptest.NewRequest sets Host to example.com.
func signedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	realm := "http://example.com" + req.URL.Path
	req.Header.Set("Authorization", `OAuth realm="`+realm+`", oauth_consumer_key="k", oauth_signature="s"`)
	return req
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestLoadFixture(t *testing.T) {
	fx := loadTestFixture(t)
	if len(fx.Articles) == 0 {
		t.Fatal("expected articles in fixture")
	}
	if len(fx.Account) == 0 {
		t.Fatal("expected account in fixture")
	}
}

func TestRequireOAuth(t *testing.T) {
	h := newHandler(testLogger(), loadTestFixture(t), &quota{max: 100})

	tests := []struct {
		name string
		auth string
		want int
	}{
		{name: "missing header", auth: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", auth: "Bearer token", want: http.StatusUnauthorized},
		{
			name: "realm includes query",
			auth: `OAuth realm="http://example.com` + apiPrefix + `/account?x=1", oauth_signature="s"`,
			want: http.StatusUnauthorized,
		},
		{
			name: "valid realm",
			auth: `OAuth realm="http://example.com` + apiPrefix + `/account", oauth_signature="s"`,
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, apiPrefix+"/account", http.NoBody)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := serve(t, h, req)
			if w.Code != tt.want {
				t.Errorf("status=%d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAccountHandler(t *testing.T) {
	h := newHandler(testLogger(), loadTestFixture(t), &quota{max: 100})
	w := serve(t, h, signedRequest(http.MethodGet, apiPrefix+"/account", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Account struct {
			Username string `json:"username"`
		} `json:"account"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Account.Username != "sandbox-seller" {
		t.Errorf("username=%q, want sandbox-seller", resp.Account.Username)
	}
}

func TestQuotaHeaders(t *testing.T) {
	h := newHandler(testLogger(), loadTestFixture(t), &quota{max: 2})

	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		w := serve(t, h, signedRequest(http.MethodGet, apiPrefix+"/games", ""))
		if w.Code != want {
			t.Errorf("request %d: status=%d, want %d", i+1, w.Code, want)
		}
		if got := w.Header().Get("X-Request-Limit-Max"); got != "2" {
			t.Errorf("request %d: limit max=%q, want 2", i+1, got)
		}
	}
}

func TestArticlesHandler_Pagination(t *testing.T) {
	fx := loadTestFixture(t)
	h := newHandler(testLogger(), fx, &quota{max: 100})
	total := len(fx.Articles)

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantItems int
	}{
		{name: "all at once", query: "", wantCode: http.StatusOK, wantItems: total},
		{name: "first page", query: "?start=0&maxResults=2", wantCode: http.StatusPartialContent, wantItems: 2},
		{name: "last page", query: "?start=4&maxResults=2", wantCode: http.StatusPartialContent, wantItems: total - 4},
		{name: "past the end", query: "?start=50&maxResults=2", wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, h, signedRequest(http.MethodGet, apiPrefix+"/users/karmacrow/articles"+tt.query, ""))
			if w.Code != tt.wantCode {
				t.Fatalf("status=%d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusNoContent {
				if w.Body.Len() != 0 {
					t.Errorf("expected empty body, got %q", w.Body.String())
				}
				return
			}
			var resp struct {
				Article []json.RawMessage `json:"article"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if len(resp.Article) != tt.wantItems {
				t.Errorf("items=%d, want %d", len(resp.Article), tt.wantItems)
			}
		})
	}
}

func TestStockHandler_Start(t *testing.T) {
	fx := loadTestFixture(t)
	h := newHandler(testLogger(), fx, &quota{max: 100})

	w := serve(t, h, signedRequest(http.MethodGet, apiPrefix+"/stock/2", ""))
	if w.Code != http.StatusPartialContent {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusPartialContent)
	}

	w = serve(t, h, signedRequest(http.MethodGet, apiPrefix+"/stock/0", ""))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestStockWriteHandler(t *testing.T) {
	h := newHandler(testLogger(), loadTestFixture(t), &quota{max: 100})
	body := `<?xml version="1.0" encoding="UTF-8"?>
<request><article><idProduct>100569</idProduct><count>1</count><price>12.5</price></article>` +
		`<article><idProduct>13374</idProduct><count>2</count><price>1</price></article></request>`

	w := serve(t, h, signedRequest(http.MethodPost, apiPrefix+"/stock", body))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Inserted []struct {
			Success   bool `json:"success"`
			IDArticle struct {
				IDProduct int `json:"idProduct"`
			} `json:"idArticle"`
		} `json:"inserted"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Inserted) != 2 {
		t.Fatalf("inserted=%d, want 2", len(resp.Inserted))
	}
	if !resp.Inserted[0].Success || resp.Inserted[0].IDArticle.IDProduct != 100569 {
		t.Errorf("unexpected first entry: %+v", resp.Inserted[0])
	}

	w = serve(t, h, signedRequest(http.MethodDelete, apiPrefix+"/stock", "<request></request>"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty delete status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
