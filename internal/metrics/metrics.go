package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total users created (idempotent re-creates not counted)",
		},
	)

	ExercisesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercises_recorded_total",
			Help: "Total exercises appended to user logs",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(UsersCreated)
	prometheus.MustRegister(ExercisesRecorded)
}
