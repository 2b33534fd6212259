package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	aiActionStartedTotal   atomic.Uint64
	aiActionCompletedTotal atomic.Uint64
	aiActionFailedTotal    atomic.Uint64

	// AI actions run a deterministic generator or a synchronous LLM call,
	// so the buckets span a few milliseconds up to one LLM round trip.
	aiActionDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000})
)

// IncAIActionStarted counts an AI action (analyze, proposal, quality check,
// placement extraction) entering the service.
func IncAIActionStarted() {
	aiActionStartedTotal.Add(1)
}

// IncAIActionCompleted counts a successful AI action.
func IncAIActionCompleted() {
	aiActionCompletedTotal.Add(1)
}

// IncAIActionFailed counts an AI action that returned an error.
func IncAIActionFailed() {
	aiActionFailedTotal.Add(1)
}

// ObserveAIActionDurationMs records how long an AI action took.
func ObserveAIActionDurationMs(ms float64) {
	if ms < 0 {
		ms = 0
	}
	aiActionDuration.Observe(ms)
}

// Handler serves the current metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render flattens all metrics into Prometheus text exposition format.
func Render() string {
	var buf bytes.Buffer
	counter(&buf, "rfp_ai_action_started_total", "Total AI actions started", aiActionStartedTotal.Load())
	counter(&buf, "rfp_ai_action_completed_total", "Total AI actions completed", aiActionCompletedTotal.Load())
	counter(&buf, "rfp_ai_action_failed_total", "Total AI actions failed", aiActionFailedTotal.Load())
	aiActionDuration.write(&buf, "rfp_ai_action_duration_ms", "AI action duration in milliseconds")
	return buf.String()
}

type histogram struct {
	mu     sync.Mutex
	bounds []float64
	counts []uint64
	sum    float64
	total  uint64
}

func newHistogram(bounds []float64) *histogram {
	return &histogram{
		bounds: bounds,
		counts: make([]uint64, len(bounds)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.total++
	h.sum += value
	for i, bound := range h.bounds {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) write(buf *bytes.Buffer, name, help string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range h.bounds {
		cumulative += h.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, promFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, h.total)
	fmt.Fprintf(buf, "%s_sum %s\n", name, promFloat(h.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, h.total)
}

func counter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func promFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
