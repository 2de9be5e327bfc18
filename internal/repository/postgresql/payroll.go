package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `pr.id, pr.user_id, pr.month, pr.year, pr.base_salary, pr.allowances, pr.deductions,
	pr.net_salary, pr.status, pr.created_at, pr.updated_at`

func scanPayroll(row pgx.Row, dest ...any) (payroll.Payroll, error) {
	var p payroll.Payroll
	fields := []any{
		&p.ID,
		&p.UserID,
		&p.Month,
		&p.Year,
		&p.BaseSalary,
		&p.Allowances,
		&p.Deductions,
		&p.NetSalary,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
	err := row.Scan(append(fields, dest...)...)
	return p, err
}

// Upsert implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Upsert(ctx context.Context, p payroll.Payroll, status *payroll.Status) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll AS pr (user_id, month, year, base_salary, allowances, deductions, net_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8::text, 'pending'))
		ON CONFLICT (user_id, month, year) DO UPDATE
		SET base_salary = EXCLUDED.base_salary,
			allowances = EXCLUDED.allowances,
			deductions = EXCLUDED.deductions,
			net_salary = EXCLUDED.net_salary,
			status = COALESCE($8::text, pr.status),
			updated_at = NOW()
		RETURNING ` + payrollColumns

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	saved, err := scanPayroll(q.QueryRow(ctx, query,
		p.UserID,
		p.Month,
		p.Year,
		p.BaseSalary,
		p.Allowances,
		p.Deductions,
		p.NetSalary,
		statusArg,
	))
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to upsert payroll for user %d %02d/%d: %w", p.UserID, p.Month, p.Year, err)
	}
	return saved, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayroll(q.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payroll pr WHERE pr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll %d: %w", id, err)
	}
	return p, nil
}

// GetByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByPeriod(ctx context.Context, userID int64, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll pr WHERE pr.user_id = $1 AND pr.month = $2 AND pr.year = $3`

	p, err := scanPayroll(q.QueryRow(ctx, query, userID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll for user %d %02d/%d: %w", userID, month, year, err)
	}
	return p, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, p payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET base_salary = $1, allowances = $2, deductions = $3, net_salary = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, p.BaseSalary, p.Allowances, p.Deductions, p.NetSalary, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update payroll %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// SetStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SetStatus(ctx context.Context, id int64, status payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payroll SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to set payroll %d status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.Filter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("pr.user_id = $%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conditions = append(conditions, fmt.Sprintf("pr.year = $%d", len(args)))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		conditions = append(conditions, fmt.Sprintf("pr.month = $%d", len(args)))
	}

	query := `
		SELECT ` + payrollColumns + `, u.employee_id, p.first_name, p.last_name
		FROM payroll pr
		JOIN users u ON u.id = pr.user_id
		LEFT JOIN employee_profiles p ON p.user_id = pr.user_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY pr.year DESC, pr.month DESC, u.employee_id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}
	defer rows.Close()

	records := []payroll.Payroll{}
	for rows.Next() {
		var employeeID string
		var firstName, lastName *string
		p, err := scanPayroll(rows, &employeeID, &firstName, &lastName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		p.EmployeeID = &employeeID
		p.FirstName = firstName
		p.LastName = lastName
		records = append(records, p)
	}
	return records, rows.Err()
}
