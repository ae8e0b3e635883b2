// Package telemetry exports textmode flush and dispatch counters to
// Prometheus and sets up OpenTelemetry tracing.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odvcencio/textmode/pkg/ui/dialog"
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

const namespace = "textmode"

// Metrics collects UI counters on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	Flushes       *prometheus.CounterVec
	CellsWritten  prometheus.Counter
	CursorMoves   prometheus.Counter
	ColorChanges  prometheus.Counter
	FlushDuration prometheus.Histogram
	Dispatches    *prometheus.CounterVec
	Dialogs       *prometheus.CounterVec
	ActiveDialogs prometheus.Gauge
}

// NewMetrics registers the UI metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Flushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "screen",
				Name:      "flushes_total",
				Help:      "Total number of screen flushes",
			},
			[]string{"mode"},
		),
		CellsWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "screen",
			Name:      "cells_written_total",
			Help:      "Cells emitted to the terminal",
		}),
		CursorMoves: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "screen",
			Name:      "cursor_moves_total",
			Help:      "Explicit cursor positioning sequences emitted",
		}),
		ColorChanges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "screen",
			Name:      "color_changes_total",
			Help:      "Color change sequences emitted",
		}),
		FlushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "screen",
			Name:      "flush_duration_seconds",
			Help:      "Time spent in Flush",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100us to ~200ms
		}),
		Dispatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "widget",
				Name:      "dispatches_total",
				Help:      "Events dispatched through a widget tree",
			},
			[]string{"kind", "result"},
		),
		Dialogs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dialog",
				Name:      "closed_total",
				Help:      "Dialogs closed, by kind and reason",
			},
			[]string{"dialog", "reason"},
		),
		ActiveDialogs: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dialog",
			Name:      "active",
			Help:      "1 while a dialog is open",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveFlush records one screen flush.
func (m *Metrics) ObserveFlush(st screen.FlushStats) {
	mode := "diff"
	if st.Sixel {
		mode = "sixel"
	}
	m.Flushes.WithLabelValues(mode).Inc()
	m.CellsWritten.Add(float64(st.CellsWritten))
	m.CursorMoves.Add(float64(st.CursorMoves))
	m.ColorChanges.Add(float64(st.ColorChanges))
	m.FlushDuration.Observe(st.Duration.Seconds())
}

// ObserveDispatch records one tree dispatch.
func (m *Metrics) ObserveDispatch(kind input.Kind, r widget.Result) {
	result := "ignored"
	switch {
	case r.IsAction():
		result = "action"
	case r.Handled():
		result = "consumed"
	}
	m.Dispatches.WithLabelValues(kind.String(), result).Inc()
}

// DialogOpened marks a dialog as active.
func (m *Metrics) DialogOpened(string) { m.ActiveDialogs.Set(1) }

// DialogClosed counts a closed dialog.
func (m *Metrics) DialogClosed(kind, reason string) {
	m.ActiveDialogs.Set(0)
	m.Dialogs.WithLabelValues(kind, reason).Inc()
}

var (
	_ screen.Observer         = (*Metrics)(nil)
	_ widget.DispatchObserver = (*Metrics)(nil)
	_ dialog.Listener         = (*Metrics)(nil)
)
