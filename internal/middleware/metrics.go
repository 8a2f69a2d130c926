package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EmailsSent counts outbound emails by kind (verification, confirmation, reset).
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stackwiser_emails_sent_total",
		Help: "Total number of emails sent by kind",
	}, []string{"kind"})

	// EmailFailures counts failed email deliveries by kind.
	EmailFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stackwiser_email_failures_total",
		Help: "Total number of failed email deliveries by kind",
	}, []string{"kind"})
)

// InitMetrics creates the Prometheus HTTP metrics middleware for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware adapts the fiberprometheus middleware to a fiber.Handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
