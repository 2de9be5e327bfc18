package payroll

import "context"

type PayrollService interface {
	Upsert(ctx context.Context, req UpsertRequest) (PayrollResponse, error)
	SetStatus(ctx context.Context, id int64, req SetStatusRequest) error
	UpdateFields(ctx context.Context, id int64, req UpdateFieldsRequest) (PayrollResponse, error)
	Mine(ctx context.Context, userID int64, filter Filter) ([]PayrollResponse, error)
	All(ctx context.Context, filter Filter) ([]PayrollResponse, error)
	SetBaseSalary(ctx context.Context, userID int64, req SetBaseSalaryRequest) error
}
