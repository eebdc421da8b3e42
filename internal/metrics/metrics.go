// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package metrics

import "github.com/prometheus/client_golang/prometheus"

// SyncMetrics exposes counters/histograms for clinic sync runs.
type SyncMetrics struct {
	runsTotal       *prometheus.CounterVec
	entityPullTotal *prometheus.CounterVec
	runDuration     *prometheus.HistogramVec
	lastSyncTime    *prometheus.GaugeVec
}

func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	m := &SyncMetrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicsync",
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Total clinic sync runs",
		}, []string{"clinic_id", "outcome"}),
		entityPullTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicsync",
			Subsystem: "sync",
			Name:      "entity_pulls_total",
			Help:      "Total per-entity pulls",
		}, []string{"entity", "status"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinicsync",
			Subsystem: "sync",
			Name:      "run_duration_seconds",
			Help:      "Duration of full clinic sync runs",
			Buckets:   prometheus.DefBuckets,
		}, []string{"clinic_id"}),
		lastSyncTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "clinicsync",
			Subsystem: "sync",
			Name:      "last_sync_timestamp_seconds",
			Help:      "Unix time of the last completed sync per clinic",
		}, []string{"clinic_id"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.runsTotal, m.entityPullTotal, m.runDuration, m.lastSyncTime)
	return m
}

func (m *SyncMetrics) ObserveRun(clinicID string, success bool, seconds float64) {
	if m == nil {
		return
	}
	outcome := "partial_failure"
	if success {
		outcome = "success"
	}
	m.runsTotal.WithLabelValues(clinicID, outcome).Inc()
	m.runDuration.WithLabelValues(clinicID).Observe(seconds)
}

func (m *SyncMetrics) ObserveEntityPull(entity string, success bool) {
	if m == nil {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	m.entityPullTotal.WithLabelValues(entity, status).Inc()
}

func (m *SyncMetrics) SetLastSyncTime(clinicID string, unixSeconds float64) {
	if m == nil {
		return
	}
	m.lastSyncTime.WithLabelValues(clinicID).Set(unixSeconds)
}
