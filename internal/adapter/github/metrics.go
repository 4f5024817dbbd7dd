package github

import (
	"errors"
	"fmt"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK          = "ok"
	outcomeRetry       = "retry"
	outcomeEmpty       = "empty"
	outcomeNotFound    = "not_found"
	outcomeRateLimited = "rate_limited"
	outcomeError       = "error"
)

// Metrics counts requests made to github api.
type Metrics struct {
	requests *prometheus.CounterVec
}

// NewMetrics creates counters and registers them in reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tally",
			Subsystem: "github",
			Name:      "requests_total",
			Help:      "Number of github api requests by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	if err := reg.Register(requests); err != nil {
		return nil, fmt.Errorf("registering requests counter: %w", err)
	}

	return &Metrics{requests: requests}, nil
}

// observe is safe to call on nil Metrics.
func (m *Metrics) observe(operation string, outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, errRepositoryEmpty):
		return outcomeEmpty
	case app.IsNotFoundError(err):
		return outcomeNotFound
	case app.IsTooManyRequestsError(err):
		return outcomeRateLimited
	default:
		return outcomeError
	}
}
