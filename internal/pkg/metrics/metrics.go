package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	anomalyCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetrack",
		Subsystem: "aggregation",
		Name:      "anomalies_total",
		Help:      "Number of advisory anomalies observed while pairing punch events.",
	}, []string{"code"})

	exportCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetrack",
		Subsystem: "export",
		Name:      "requests_total",
		Help:      "Number of timesheet export requests grouped by output format.",
	}, []string{"format"})
)

func init() {
	prometheus.MustRegister(anomalyCounter, exportCounter)
}

// RecordAnomaly counts one advisory aggregation anomaly.
func RecordAnomaly(code string) {
	anomalyCounter.WithLabelValues(code).Inc()
}

// RecordExport counts one export request.
func RecordExport(format string) {
	exportCounter.WithLabelValues(format).Inc()
}
