package payroll

import (
	"context"
	"fmt"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	transactor   database.Transactor
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	transactor database.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		transactor:   transactor,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// Upsert implements payroll.PayrollService. A second call for the same
// user and period overwrites the first.
func (s *PayrollServiceImpl) Upsert(ctx context.Context, req payroll.UpsertRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if _, err := s.employeeRepo.GetByUserID(ctx, req.UserID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record := payroll.Payroll{
		UserID:     req.UserID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: *req.BaseSalary,
		Allowances: valueOrZero(req.Allowances),
		Deductions: valueOrZero(req.Deductions),
	}
	if err := record.Recompute(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var status *payroll.Status
	if req.Status != nil {
		st := payroll.Status(*req.Status)
		status = &st
	}

	saved, err := s.payrollRepo.Upsert(ctx, record, status)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return saved.ToResponse(), nil
}

// SetStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) SetStatus(ctx context.Context, id int64, req payroll.SetStatusRequest) error {
	status := payroll.Status(req.Status)
	if !status.Valid() {
		return payroll.ErrInvalidStatus
	}
	return s.payrollRepo.SetStatus(ctx, id, status)
}

// UpdateFields implements payroll.PayrollService. Omitted amounts keep their
// stored value and the net salary is recomputed from the result.
func (s *PayrollServiceImpl) UpdateFields(ctx context.Context, id int64, req payroll.UpdateFieldsRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var updated payroll.Payroll
	err := s.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		record, err := s.payrollRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if req.BaseSalary != nil {
			record.BaseSalary = *req.BaseSalary
		}
		if req.Allowances != nil {
			record.Allowances = *req.Allowances
		}
		if req.Deductions != nil {
			record.Deductions = *req.Deductions
		}
		if err := record.Recompute(); err != nil {
			return err
		}

		if err := s.payrollRepo.Update(txCtx, record); err != nil {
			return err
		}
		if req.Status != nil {
			record.Status = payroll.Status(*req.Status)
			if err := s.payrollRepo.SetStatus(txCtx, id, record.Status); err != nil {
				return err
			}
		}

		updated = record
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll %d: %w", id, err)
	}

	return updated.ToResponse(), nil
}

// Mine implements payroll.PayrollService.
func (s *PayrollServiceImpl) Mine(ctx context.Context, userID int64, filter payroll.Filter) ([]payroll.PayrollResponse, error) {
	filter.UserID = &userID
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponses(records), nil
}

// All implements payroll.PayrollService.
func (s *PayrollServiceImpl) All(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponses(records), nil
}

// SetBaseSalary implements payroll.PayrollService. It only changes the
// profile; existing payroll rows keep their amounts.
func (s *PayrollServiceImpl) SetBaseSalary(ctx context.Context, userID int64, req payroll.SetBaseSalaryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.SetSalary(ctx, userID, *req.Salary)
}
