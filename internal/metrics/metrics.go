package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Report results used as the "result" label.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var (
	// ReportsTotal counts status reports by result
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdv_sync_reports_total",
			Help: "Total number of PDV status reports received",
		},
		[]string{"result"},
	)

	// ReportDuration tracks report handling time, storage round trip included
	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pdv_sync_report_duration_seconds",
			Help:    "PDV status report processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ListRequestsTotal counts status listings by result
	ListRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdv_sync_list_requests_total",
			Help: "Total number of PDV status listings served",
		},
		[]string{"result"},
	)

	// Terminals tracks how many terminals the latest listing returned
	Terminals = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pdv_sync_terminals",
			Help: "Number of PDV terminals known to the registry at the last listing",
		},
	)

	// PendingSales tracks the last reported local sales backlog per terminal
	PendingSales = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pdv_sync_pending_sales",
			Help: "Sales queued locally on a PDV awaiting sync, as last reported",
		},
		[]string{"pdv_id"},
	)
)
