package postgres

import (
	"context"
	"fmt"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo tabla visits, solo inserción y lectura.
type VisitRepo struct {
	q Querier
}

// NewVisitRepository construye el adaptador.
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

// Create inserta una visita.
func (r *VisitRepo) Create(ctx context.Context, v *entity.Visit) error {
	query := `
		INSERT INTO visits (id, employee_id, company_id, source, os, browser, device_type, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.EmployeeID, v.CompanyID, v.Source, v.OS, v.Browser, v.DeviceType, v.IPAddress, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// CountByEmployee cuenta las visitas de un perfil.
func (r *VisitRepo) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM visits WHERE employee_id = $1`, employeeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}
	return n, nil
}

// ListByCompany devuelve las visitas de la empresa, más recientes primero.
func (r *VisitRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Visit, error) {
	query := `
		SELECT id, employee_id, company_id, source, os, browser, device_type, ip_address, created_at
		FROM visits WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	var list []*entity.Visit
	for rows.Next() {
		var v entity.Visit
		if err := rows.Scan(&v.ID, &v.EmployeeID, &v.CompanyID, &v.Source, &v.OS, &v.Browser,
			&v.DeviceType, &v.IPAddress, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
