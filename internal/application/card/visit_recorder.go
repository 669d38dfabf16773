package card

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/logger"
)

const defaultWriteTimeout = 5 * time.Second

// VisitRecorder registra visitas a tarjetas. Es best-effort: un fallo al persistir
// se registra en el log y se descarta, sin reintentos ni propagación al llamador.
type VisitRecorder struct {
	visits  VisitWriter
	parser  ClientParser
	metrics VisitMetrics
	log     *logger.Logger
	timeout time.Duration
	now     func() time.Time
	wg      sync.WaitGroup
}

// RecorderOption ajusta el VisitRecorder.
type RecorderOption func(*VisitRecorder)

// WithMetrics conecta los contadores de visitas.
func WithMetrics(m VisitMetrics) RecorderOption {
	return func(r *VisitRecorder) { r.metrics = m }
}

// WithWriteTimeout límite de cada escritura despachada en segundo plano.
func WithWriteTimeout(d time.Duration) RecorderOption {
	return func(r *VisitRecorder) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) RecorderOption {
	return func(r *VisitRecorder) { r.now = now }
}

// NewVisitRecorder construye el registrador.
func NewVisitRecorder(visits VisitWriter, parser ClientParser, log *logger.Logger, opts ...RecorderOption) *VisitRecorder {
	r := &VisitRecorder{
		visits:  visits,
		parser:  parser,
		metrics: noopMetrics{},
		log:     log.Component("visit_recorder"),
		timeout: defaultWriteTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record construye y persiste una visita. Nunca devuelve error.
func (r *VisitRecorder) Record(ctx context.Context, employeeID string, meta RequestMeta) {
	info := r.parser.Parse(meta.UserAgent)
	visit := &entity.Visit{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Source:     NormalizeSource(meta.Source),
		OS:         info.OS,
		Browser:    info.Browser,
		DeviceType: info.DeviceType,
		IPAddress:  meta.IPAddress,
		CreatedAt:  r.now(),
	}

	if err := r.visits.Create(ctx, visit); err != nil {
		r.metrics.VisitWriteFailed()
		r.log.Warn().Err(err).
			Str("employee_id", employeeID).
			Str("source", visit.Source).
			Msg("no se pudo registrar la visita")
		return
	}
	r.metrics.VisitRecorded(visit.Source)
}

// Dispatch registra la visita en una goroutine propia con contexto desacoplado de la petición
// y recuperación de pánicos: nada de lo que ocurra aquí alcanza la respuesta al navegador.
func (r *VisitRecorder) Dispatch(employeeID string, meta RequestMeta) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.metrics.VisitWriteFailed()
				r.log.Error().Interface("panic", rec).Str("employee_id", employeeID).Msg("pánico registrando visita")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		r.Record(ctx, employeeID, meta)
	}()
}

// Wait bloquea hasta que terminen las escrituras despachadas (apagado ordenado y tests).
func (r *VisitRecorder) Wait() {
	r.wg.Wait()
}

type noopMetrics struct{}

func (noopMetrics) VisitRecorded(string) {}
func (noopMetrics) VisitWriteFailed()    {}
