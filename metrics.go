package assertthat

import (
	"context"

	"github.com/amp-labs/assertthat/config"
	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// failuresTotal counts failed assertions per subsystem and predicate.
var failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "assertthat_failures_total",
	Help: "The total number of failed assertions",
}, []string{"subsystem", "assertion"})

func observeFailure(err *asserterrors.AssertionError) {
	cfg := config.Get()
	ctx := context.Background()

	if cfg.Metrics {
		failuresTotal.WithLabelValues(logger.GetSubsystem(ctx), err.Assertion).Inc()
	}

	if cfg.LogFailures {
		logger.Get(ctx).Debug("assertion failed", "assertion", err.Assertion, "message", err.Message)
	}
}
