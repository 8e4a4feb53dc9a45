package events

import (
	"context"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsReporter counts order attempts per outcome.
type MetricsReporter struct {
	Outcomes *prometheus.CounterVec
}

// NewMetricsReporter counts into metrics.DispatchOutcomes when outcomes is nil.
func NewMetricsReporter(outcomes *prometheus.CounterVec) *MetricsReporter {
	if outcomes == nil {
		outcomes = metrics.DispatchOutcomes
	}
	return &MetricsReporter{Outcomes: outcomes}
}

func (r *MetricsReporter) Report(_ context.Context, evt domain.DispatchEvent) error {
	r.Outcomes.WithLabelValues(string(evt.Outcome)).Inc()
	return nil
}
