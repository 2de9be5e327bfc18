package payroll

import (
	"context"
	"testing"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/mocks"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newTestService() (*mocks.PayrollRepository, *mocks.EmployeeRepository, payroll.PayrollService) {
	payrolls := new(mocks.PayrollRepository)
	employees := new(mocks.EmployeeRepository)
	return payrolls, employees, NewPayrollService(new(mocks.Transactor), payrolls, employees)
}

func TestUpsert_ComputesNetSalary(t *testing.T) {
	ctx := context.Background()
	payrolls, employees, svc := newTestService()

	employees.On("GetByUserID", ctx, int64(7)).Return(employee.Employee{UserID: 7}, nil)
	payrolls.On("Upsert", ctx, mock.MatchedBy(func(p payroll.Payroll) bool {
		return p.NetSalary.Equal(decimal.NewFromInt(5300))
	}), (*payroll.Status)(nil)).Return(payroll.Payroll{ID: 1, UserID: 7, NetSalary: decimal.NewFromInt(5300), Status: payroll.StatusPending}, nil)

	resp, err := svc.Upsert(ctx, payroll.UpsertRequest{
		UserID: 7, Month: 3, Year: 2025,
		BaseSalary: dec(5000), Allowances: dec(500), Deductions: dec(200),
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPending, resp.Status)
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(5300)))
}

func TestUpsert_DefaultsMissingComponents(t *testing.T) {
	ctx := context.Background()
	payrolls, employees, svc := newTestService()

	paid := "paid"
	employees.On("GetByUserID", ctx, int64(7)).Return(employee.Employee{UserID: 7}, nil)
	payrolls.On("Upsert", ctx, mock.MatchedBy(func(p payroll.Payroll) bool {
		return p.Allowances.IsZero() && p.Deductions.IsZero() && p.NetSalary.Equal(decimal.NewFromInt(4000))
	}), mock.MatchedBy(func(s *payroll.Status) bool {
		return s != nil && *s == payroll.StatusPaid
	})).Return(payroll.Payroll{ID: 1}, nil)

	_, err := svc.Upsert(ctx, payroll.UpsertRequest{UserID: 7, Month: 1, Year: 2025, BaseSalary: dec(4000), Status: &paid})
	require.NoError(t, err)
	payrolls.AssertExpectations(t)
}

func TestUpsert_Rejects(t *testing.T) {
	ctx := context.Background()
	payrolls, employees, svc := newTestService()

	_, err := svc.Upsert(ctx, payroll.UpsertRequest{UserID: 7, Month: 13, Year: 2025, BaseSalary: dec(1)})
	assert.Error(t, err)

	employees.On("GetByUserID", ctx, int64(8)).Return(employee.Employee{}, employee.ErrEmployeeNotFound)
	_, err = svc.Upsert(ctx, payroll.UpsertRequest{UserID: 8, Month: 1, Year: 2025, BaseSalary: dec(1)})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	payrolls.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpsert_RejectsSubCentAmounts(t *testing.T) {
	ctx := context.Background()
	payrolls, employees, svc := newTestService()

	half := decimal.RequireFromString("0.005")
	_, err := svc.Upsert(ctx, payroll.UpsertRequest{UserID: 7, Month: 1, Year: 2025, BaseSalary: &half, Allowances: &half})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "base_salary")
	assert.Contains(t, verrs.ToMap(), "allowances")
	employees.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	payrolls.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateFields_NetOutOfRange(t *testing.T) {
	ctx := context.Background()
	payrolls, _, svc := newTestService()

	payrolls.On("GetByID", ctx, int64(4)).Return(payroll.Payroll{
		ID: 4, BaseSalary: payroll.MaxAmount, Status: payroll.StatusPending,
	}, nil)

	_, err := svc.UpdateFields(ctx, 4, payroll.UpdateFieldsRequest{Allowances: dec(1)})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "net_salary")
	payrolls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateFields_RecomputesNet(t *testing.T) {
	ctx := context.Background()
	payrolls, _, svc := newTestService()

	stored := payroll.Payroll{
		ID: 4, UserID: 7, Month: 3, Year: 2025,
		BaseSalary: decimal.NewFromInt(5000), Allowances: decimal.NewFromInt(500), Deductions: decimal.NewFromInt(200),
		NetSalary: decimal.NewFromInt(5300), Status: payroll.StatusPending,
	}
	payrolls.On("GetByID", ctx, int64(4)).Return(stored, nil)
	payrolls.On("Update", ctx, mock.MatchedBy(func(p payroll.Payroll) bool {
		return p.Deductions.Equal(decimal.NewFromInt(1000)) && p.NetSalary.Equal(decimal.NewFromInt(4500))
	})).Return(nil)
	payrolls.On("SetStatus", ctx, int64(4), payroll.StatusPaid).Return(nil)

	paid := "paid"
	resp, err := svc.UpdateFields(ctx, 4, payroll.UpdateFieldsRequest{Deductions: dec(1000), Status: &paid})
	require.NoError(t, err)
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(4500)))
	assert.True(t, resp.BaseSalary.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, payroll.StatusPaid, resp.Status)
}

func TestUpdateFields_NotFound(t *testing.T) {
	ctx := context.Background()
	payrolls, _, svc := newTestService()

	payrolls.On("GetByID", ctx, int64(9)).Return(payroll.Payroll{}, payroll.ErrPayrollNotFound)

	_, err := svc.UpdateFields(ctx, 9, payroll.UpdateFieldsRequest{BaseSalary: dec(1)})
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	payrolls, _, svc := newTestService()

	payrolls.On("SetStatus", ctx, int64(4), payroll.StatusPaid).Return(nil)

	require.NoError(t, svc.SetStatus(ctx, 4, payroll.SetStatusRequest{Status: "paid"}))
	assert.ErrorIs(t, svc.SetStatus(ctx, 4, payroll.SetStatusRequest{Status: "void"}), payroll.ErrInvalidStatus)
	payrolls.AssertNumberOfCalls(t, "SetStatus", 1)
}

func TestMine_ScopesToCaller(t *testing.T) {
	ctx := context.Background()
	payrolls, _, svc := newTestService()

	year := 2025
	payrolls.On("List", ctx, mock.MatchedBy(func(f payroll.Filter) bool {
		return f.UserID != nil && *f.UserID == 7 && *f.Year == 2025 && f.Month == nil
	})).Return([]payroll.Payroll{{ID: 1, UserID: 7}}, nil)

	// A caller-supplied user filter is overridden.
	other := int64(8)
	records, err := svc.Mine(ctx, 7, payroll.Filter{UserID: &other, Year: &year})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSetBaseSalary(t *testing.T) {
	ctx := context.Background()
	_, employees, svc := newTestService()

	employees.On("SetSalary", ctx, int64(7), decimal.NewFromInt(8000)).Return(nil)

	require.NoError(t, svc.SetBaseSalary(ctx, 7, payroll.SetBaseSalaryRequest{Salary: dec(8000)}))
	assert.Error(t, svc.SetBaseSalary(ctx, 7, payroll.SetBaseSalaryRequest{}))
}
