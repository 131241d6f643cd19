package metrics

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Collector counts backend calls made by this process. Status 0 means the
// request never got a response.
type Collector struct {
	totalRequests   uint64
	failedRequests  uint64
	unauthorized    uint64
	transportErrors uint64
	totalDurationMs uint64
}

type Snapshot struct {
	RequestsTotal     uint64  `json:"requestsTotal"`
	FailuresTotal     uint64  `json:"failuresTotal"`
	UnauthorizedTotal uint64  `json:"unauthorizedTotal"`
	TransportErrors   uint64  `json:"transportErrors"`
	AvgDurationMs     float64 `json:"avgDurationMs"`
	TotalDurationMs   uint64  `json:"totalDurationMs"`
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status == 0:
		atomic.AddUint64(&c.transportErrors, 1)
		atomic.AddUint64(&c.failedRequests, 1)
	case status >= http.StatusBadRequest:
		atomic.AddUint64(&c.failedRequests, 1)
	}
	if status == http.StatusUnauthorized {
		atomic.AddUint64(&c.unauthorized, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return Snapshot{
		RequestsTotal:     total,
		FailuresTotal:     atomic.LoadUint64(&c.failedRequests),
		UnauthorizedTotal: atomic.LoadUint64(&c.unauthorized),
		TransportErrors:   atomic.LoadUint64(&c.transportErrors),
		AvgDurationMs:     avg,
		TotalDurationMs:   totalMs,
	}
}
