// Package metrics declares the Prometheus counters of the service. They are
// registered on the default registry and exposed by promhttp at /metrics.
package metrics

import (
	"errors"

	"fooddelivery/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "food_delivery_order_transitions_total",
			Help: "Order lifecycle requests by action and outcome",
		},
		[]string{"action", "result"},
	)

	AuthEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "food_delivery_auth_events_total",
			Help: "Register, login, refresh and logout attempts by outcome",
		},
		[]string{"event", "result"},
	)

	SweptTokens = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "food_delivery_swept_tokens_total",
			Help: "Expired allow-list rows removed by the sweep job",
		},
	)
)

// Result names the outcome of an operation for the result label. Business
// rejections get their own value so they are not counted as failures.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, errs.ErrForbidden):
		return "forbidden"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return "conflict"
	case errors.Is(err, errs.ErrDuplicateField):
		return "duplicate"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return "invalid"
	}
	return "error"
}
