package engine

import (
	"github.com/minaorangina/cardtable/game"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	sessionsStartedCounter  *prometheus.CounterVec
	sessionsFinishedCounter *prometheus.CounterVec
	snapshotsSavedCounter   *prometheus.CounterVec
	activeSessionsGauge     prometheus.Gauge
}

func (m *metrics) SessionStarted(v game.Variant) {
	m.sessionsStartedCounter.WithLabelValues(v.String()).Inc()
	m.activeSessionsGauge.Inc()
}

func (m *metrics) SessionResumed() {
	m.activeSessionsGauge.Inc()
}

func (m *metrics) SessionFinished(v game.Variant) {
	m.sessionsFinishedCounter.WithLabelValues(v.String()).Inc()
	m.activeSessionsGauge.Dec()
}

func (m *metrics) SessionDropped() {
	m.activeSessionsGauge.Dec()
}

func (m *metrics) SnapshotSaved(backend string) {
	m.snapshotsSavedCounter.WithLabelValues(backend).Inc()
}

var Metrics = &metrics{
	sessionsStartedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardtable_sessions_started_total",
		Help: "Total number of sessions started, by variant",
	}, []string{"variant"}),
	sessionsFinishedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardtable_sessions_finished_total",
		Help: "Total number of sessions played to the end, by variant",
	}, []string{"variant"}),
	snapshotsSavedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardtable_snapshots_saved_total",
		Help: "Total number of snapshots written, by store backend",
	}, []string{"backend"}),
	activeSessionsGauge: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cardtable_active_sessions",
		Help: "Sessions started or resumed and not yet finished or discarded",
	}),
}
