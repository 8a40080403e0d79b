package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petcare_http_requests_total",
			Help: "Total HTTP requests by route pattern and status code",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petcare_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	QuestionsAnswered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petcare_questions_total",
			Help: "Questions answered by classified intent and resulting severity",
		},
		[]string{"intent", "severity"},
	)

	MealGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petcare_meal_generations_total",
			Help: "Meal plan generation runs by result (ok|error)",
		},
		[]string{"result"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petcare_store_operation_duration_seconds",
			Help:    "Key-value store operation latency by backend and operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "op"},
	)
)
