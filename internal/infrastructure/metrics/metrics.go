// Package metrics registra los contadores Prometheus de ambos binarios y expone /metrics en fiber.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores. Implementa card.VisitMetrics y usage.Metrics.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	visitsRecorded    *prometheus.CounterVec
	visitWriteFails   prometheus.Counter
	visitCountFailure prometheus.Counter
	visitTotalFailure prometheus.Counter
}

// New crea un registro propio (más los colectores de proceso y runtime) y registra las métricas.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Peticiones HTTP recibidas.",
		}, []string{"method", "route", "code"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP en segundos.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
		visitsRecorded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sharek_visits_recorded_total",
			Help: "Visitas persistidas, por origen.",
		}, []string{"source"}),
		visitWriteFails: f.NewCounter(prometheus.CounterOpts{
			Name: "sharek_visit_write_failures_total",
			Help: "Visitas que no se pudieron persistir.",
		}),
		visitCountFailure: f.NewCounter(prometheus.CounterOpts{
			Name: "sharek_usage_visit_count_failures_total",
			Help: "Conteos de visitas por empleado que fallaron en el panel de uso.",
		}),
		visitTotalFailure: f.NewCounter(prometheus.CounterOpts{
			Name: "sharek_usage_visit_total_failures_total",
			Help: "Totales de visitas por empresa que fallaron en el panel de uso.",
		}),
	}
}

// VisitRecorded suma una visita persistida.
func (m *Metrics) VisitRecorded(source string) { m.visitsRecorded.WithLabelValues(source).Inc() }

// VisitWriteFailed suma una visita perdida.
func (m *Metrics) VisitWriteFailed() { m.visitWriteFails.Inc() }

// VisitCountFailed suma un conteo degradado a 0.
func (m *Metrics) VisitCountFailed() { m.visitCountFailure.Inc() }

// VisitTotalFailed suma un total de empresa degradado a 0.
func (m *Metrics) VisitTotalFailed() { m.visitTotalFailure.Inc() }

// Registry expone el registro (tests y colectores adicionales).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Middleware mide cada petición. Usa el patrón de ruta para no crear una serie por ID.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || route == "/" && c.Path() != "/" {
			route = "unmatched"
		}
		code := strconv.Itoa(status)
		m.httpRequests.WithLabelValues(c.Method(), route, code).Inc()
		m.httpDuration.WithLabelValues(c.Method(), route, code).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler sirve el formato de exposición de Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
