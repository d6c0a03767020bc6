package mkm

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/donaldgifford/mkm/internal/metrics"
)

// Response headers carrying the marketplace's daily request budget.
const (
	headerRequestLimitCount = "X-Request-Limit-Count"
	headerRequestLimitMax   = "X-Request-Limit-Max"
)

// Quota tracks the request budget the marketplace reports on every
// response. The server resets the count daily; the client only mirrors it.
type Quota struct {
	mu    sync.Mutex
	count int64
	max   int64
	seen  bool
}

// NewQuota creates an empty tracker.
func NewQuota() *Quota {
	return &Quota{}
}

// Update reads the request limit headers from h. It reports whether both
// headers were present and numeric; partial or malformed headers leave the
// tracker unchanged.
func (q *Quota) Update(h http.Header) bool {
	count, err := strconv.ParseInt(h.Get(headerRequestLimitCount), 10, 64)
	if err != nil {
		return false
	}
	limit, err := strconv.ParseInt(h.Get(headerRequestLimitMax), 10, 64)
	if err != nil {
		return false
	}

	q.mu.Lock()
	q.count = count
	q.max = limit
	q.seen = true
	q.mu.Unlock()

	metrics.RequestLimitCount.Set(float64(count))
	metrics.RequestLimitMax.Set(float64(limit))
	return true
}

// Count returns the requests used in the current window.
func (q *Quota) Count() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Max returns the request allowance of the current window.
func (q *Quota) Max() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.max
}

// Known reports whether any response has carried the limit headers yet.
func (q *Quota) Known() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.seen
}

// Remaining returns the number of requests left in the current window.
func (q *Quota) Remaining() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	remaining := q.max - q.count
	if remaining < 0 {
		return 0
	}
	return remaining
}
