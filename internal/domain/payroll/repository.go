package payroll

import "context"

type PayrollRepository interface {
	// Upsert inserts or overwrites the (user, month, year) record. A nil
	// status keeps the stored one, or pending for a new row.
	Upsert(ctx context.Context, p Payroll, status *Status) (Payroll, error)
	GetByID(ctx context.Context, id int64) (Payroll, error)
	GetByPeriod(ctx context.Context, userID int64, month, year int) (Payroll, error)
	Update(ctx context.Context, p Payroll) error
	SetStatus(ctx context.Context, id int64, status Status) error
	List(ctx context.Context, filter Filter) ([]Payroll, error)
}
