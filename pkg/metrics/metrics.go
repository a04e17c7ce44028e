package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts requests by method, route and status code.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "milldesk_http_requests_total",
		Help: "Total number of HTTP requests processed",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration observes request latency by method and route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "milldesk_http_request_duration_seconds",
		Help:    "HTTP request latency distribution",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ImportedRecordsTotal counts records restored through backup import.
var ImportedRecordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "milldesk_imported_records_total",
		Help: "Total number of records restored from backup files",
	},
	[]string{"collection"},
)

// LedgerEntriesTotal counts appended ledger entries.
var LedgerEntriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "milldesk_ledger_entries_total",
		Help: "Total number of ledger entries appended",
	},
)
