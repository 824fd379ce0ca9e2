package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcomes for ActivityRequests.
const (
	OutcomeSuccess  = "success"
	OutcomeDegraded = "degraded"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	ActivityRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_requests_total",
			Help: "Activity recommendation requests by outcome",
		},
		[]string{"outcome"}, // success|degraded|invalid|error
	)

	// LLM
	LLMRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Number of LLM requests by provider and model",
		},
		[]string{"provider", "model"},
	)
	LLMDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duration of LLM requests",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8), // 0.5s..64s
		},
		[]string{"provider"},
	)

	ParseFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_parse_fallbacks_total",
			Help: "Model replies that could not be split into activities",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(
		ActivityRequests,
		LLMRequests,
		LLMDurationSeconds,
		ParseFallbacks,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncActivityRequest(outcome string) {
	ActivityRequests.WithLabelValues(outcome).Inc()
}

func IncLLMRequest(provider, model string) {
	LLMRequests.WithLabelValues(provider, model).Inc()
}

func ObserveLLMDuration(provider string, seconds float64) {
	LLMDurationSeconds.WithLabelValues(provider).Observe(seconds)
}

func IncParseFallback(reason string) {
	ParseFallbacks.WithLabelValues(reason).Inc()
}
