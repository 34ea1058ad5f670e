package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "forum", Name: "logins_total", Help: "Number of login attempts by outcome."},
		[]string{"outcome"},
	)
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "forum", Name: "registrations_total", Help: "Number of registration attempts by outcome."},
		[]string{"outcome"},
	)
	MessagesPosted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "forum", Name: "messages_posted_total", Help: "Number of messages created, split by placement (post vs reply)."},
		[]string{"placement"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "forum", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "forum", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(LoginsTotal)
	reg.MustRegister(RegistrationsTotal)
	reg.MustRegister(MessagesPosted)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
