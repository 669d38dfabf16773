// Package usage arma la vista agregada del panel de uso de una empresa.
package usage

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/logger"
)

const defaultFanOut = 8 // consultas de conteo simultáneas por agregación

// EmployeeUsage empleado con su conteo de visitas calculado en lectura.
type EmployeeUsage struct {
	Employee *entity.Employee
	Visits   int
}

// Result salida de Aggregate.
type Result struct {
	Employees   []EmployeeUsage
	TotalVisits int
}

// Aggregator combina empleados, conteos por empleado y el total de visitas de la empresa.
// No cachea ni deduplica: cada llamada consulta todo de nuevo.
type Aggregator struct {
	employees EmployeeLister
	counter   VisitCounter
	visits    VisitLister
	metrics   Metrics
	log       *logger.Logger
	fanOut    int
}

// NewAggregator construye el agregador. metrics puede ser nil.
func NewAggregator(employees EmployeeLister, counter VisitCounter, visits VisitLister, metrics Metrics, log *logger.Logger) *Aggregator {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Aggregator{
		employees: employees,
		counter:   counter,
		visits:    visits,
		metrics:   metrics,
		log:       log.Component("usage_aggregator"),
		fanOut:    defaultFanOut,
	}
}

// Aggregate obtiene todos los empleados de la empresa y, en paralelo, el conteo de cada uno
// y el total de visitas de la empresa.
//
//   - Si falla el listado de empleados: error (envuelve domain.ErrUpstreamUnavailable).
//   - Si falla el conteo de un empleado: ese empleado queda con 0; los demás no se ven afectados.
//   - Si falla el listado de visitas: TotalVisits = 0.
//
// TotalVisits y la suma de conteos son observaciones independientes y pueden no coincidir.
func (a *Aggregator) Aggregate(ctx context.Context, companyID string) (*Result, error) {
	list, err := a.employees.ListAllByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("usage: listar empleados: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	out := &Result{Employees: make([]EmployeeUsage, len(list))}

	// Sin WithContext: un fallo individual no debe cancelar a los hermanos.
	var g errgroup.Group
	g.SetLimit(a.fanOut)

	totalCh := make(chan int, 1)
	go func() {
		totalCh <- a.totalVisits(ctx, companyID)
	}()

	for i, emp := range list {
		out.Employees[i] = EmployeeUsage{Employee: emp}
		g.Go(func() error {
			out.Employees[i].Visits = a.visitCount(ctx, emp)
			return nil
		})
	}
	_ = g.Wait()

	out.TotalVisits = <-totalCh
	return out, nil
}

func (a *Aggregator) visitCount(ctx context.Context, emp *entity.Employee) (n int) {
	defer func() {
		if rec := recover(); rec != nil {
			a.metrics.VisitCountFailed()
			a.log.Error().Interface("panic", rec).Str("employee_id", emp.ID).Msg("pánico contando visitas")
			n = 0
		}
	}()
	n, err := a.counter.CountByEmployee(ctx, emp.ID)
	if err != nil {
		a.metrics.VisitCountFailed()
		a.log.Warn().Err(err).Str("employee_id", emp.ID).Msg("conteo de visitas no disponible, se usa 0")
		return 0
	}
	return n
}

// totalVisits corre fuera del errgroup y de la goroutine de la petición: debe recuperarse sola.
func (a *Aggregator) totalVisits(ctx context.Context, companyID string) (n int) {
	defer func() {
		if rec := recover(); rec != nil {
			a.metrics.VisitTotalFailed()
			a.log.Error().Interface("panic", rec).Str("company_id", companyID).Msg("pánico listando visitas")
			n = 0
		}
	}()
	visits, err := a.visits.ListByCompany(ctx, companyID)
	if err != nil {
		a.metrics.VisitTotalFailed()
		a.log.Warn().Err(err).Str("company_id", companyID).Msg("total de visitas no disponible, se usa 0")
		return 0
	}
	return len(visits)
}

type noopMetrics struct{}

func (noopMetrics) VisitCountFailed() {}
func (noopMetrics) VisitTotalFailed() {}
