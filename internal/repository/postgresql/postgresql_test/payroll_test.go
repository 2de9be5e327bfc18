package postgresql_test

import (
	"context"
	"testing"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollRepository_UpsertOverwrites(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)

	u := createTestUser(t, ctx, setup, "EMP001", "jane", "jane@example.com")

	p := payroll.Payroll{
		UserID:     u.ID,
		Month:      3,
		Year:       2025,
		BaseSalary: decimal.NewFromInt(5000),
		Allowances: decimal.NewFromInt(500),
		Deductions: decimal.NewFromInt(200),
	}
	require.NoError(t, p.Recompute())

	first, err := repo.Upsert(ctx, p, nil)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPending, first.Status)
	assert.True(t, first.NetSalary.Equal(decimal.NewFromInt(5300)))

	paid := payroll.StatusPaid
	require.NoError(t, repo.SetStatus(ctx, first.ID, paid))

	p.BaseSalary = decimal.NewFromInt(6000)
	require.NoError(t, p.Recompute())
	second, err := repo.Upsert(ctx, p, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, payroll.StatusPaid, second.Status)
	assert.True(t, second.NetSalary.Equal(decimal.NewFromInt(6300)))

	pending := payroll.StatusPending
	third, err := repo.Upsert(ctx, p, &pending)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPending, third.Status)

	list, err := repo.List(ctx, payroll.Filter{UserID: &u.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.GetByPeriod(ctx, u.ID, 4, 2025)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}
