// Package metrics holds the Prometheus collectors of the process. They are
// registered on the default registry and exposed by `serve --metrics-addr`.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of a Bot API call
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
	OutcomeTimeout  = "timeout"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgdoor_http_requests_total",
			Help: "Total number of HTTP requests received.",
		},
		[]string{"method", "code"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tgdoor_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	botAPICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgdoor_bot_api_calls_total",
			Help: "Total number of Telegram Bot API calls by method and outcome.",
		},
		[]string{"method", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, botAPICallsTotal)
}

// ObserveHTTPRequest records one served request
func ObserveHTTPRequest(method string, code int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveBotAPICall records one outbound Bot API call
func ObserveBotAPICall(method, outcome string) {
	botAPICallsTotal.WithLabelValues(method, outcome).Inc()
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
