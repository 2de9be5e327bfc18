package payroll

import (
	"testing"

	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNetSalary(t *testing.T) {
	got := NetSalary(decimal.RequireFromString("5000.50"), decimal.RequireFromString("250.25"), decimal.RequireFromString("100.75"))
	assert.True(t, decimal.RequireFromString("5150.00").Equal(got), got.String())

	p := Payroll{BaseSalary: decimal.NewFromInt(100), Deductions: decimal.NewFromInt(150)}
	require.NoError(t, p.Recompute())
	assert.True(t, decimal.NewFromInt(-50).Equal(p.NetSalary))
}

func TestRecompute_NetOutOfRange(t *testing.T) {
	p := Payroll{BaseSalary: MaxAmount, Allowances: decimal.NewFromInt(1)}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, p.Recompute(), &verrs)
	assert.Contains(t, verrs.ToMap(), "net_salary")
}

func TestAmountLimits(t *testing.T) {
	tests := []struct {
		name  string
		value string
		msg   string
	}{
		{"cents", "5000.25", ""},
		{"trailing zeros", "5000.500", ""},
		{"column maximum", "9999999999.99", ""},
		{"sub cent", "0.005", "base_salary must have at most 2 decimal places"},
		{"over column maximum", "10000000000", "base_salary must not exceed 9999999999.99"},
		{"negative", "-0.01", "base_salary must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upsert := UpsertRequest{UserID: 1, Month: 1, Year: 2025, BaseSalary: dec(tt.value)}
			update := UpdateFieldsRequest{BaseSalary: dec(tt.value)}
			salary := SetBaseSalaryRequest{Salary: dec(tt.value)}

			if tt.msg == "" {
				assert.NoError(t, upsert.Validate())
				assert.NoError(t, update.Validate())
				assert.NoError(t, salary.Validate())
				return
			}

			for _, err := range []error{upsert.Validate(), update.Validate()} {
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Equal(t, tt.msg, verrs.ToMap()["base_salary"])
			}
			assert.Error(t, salary.Validate())
		})
	}
}

func TestUpdateFieldsRequest_ErrorOrder(t *testing.T) {
	req := UpdateFieldsRequest{BaseSalary: dec("-1"), Allowances: dec("0.001"), Deductions: dec("-3")}
	for i := 0; i < 20; i++ {
		var verrs validator.ValidationErrors
		require.ErrorAs(t, req.Validate(), &verrs)
		require.Len(t, verrs, 3)
		assert.Equal(t, "base_salary", verrs[0].Field)
		assert.Equal(t, "allowances", verrs[1].Field)
		assert.Equal(t, "deductions", verrs[2].Field)
	}
}

func TestUpsertRequest_Validate(t *testing.T) {
	ok := UpsertRequest{UserID: 1, Month: 1, Year: 2025, BaseSalary: dec("5000")}
	assert.NoError(t, ok.Validate())

	bad := UpsertRequest{Month: 13, Year: 2025, Allowances: dec("-1"), Status: strPtr("void")}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &verrs)
	m := verrs.ToMap()
	for _, field := range []string{"user_id", "month", "base_salary", "allowances", "status"} {
		assert.Contains(t, m, field)
	}
}

func TestUpdateFieldsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateFieldsRequest{}).Validate())
	assert.NoError(t, (&UpdateFieldsRequest{Allowances: dec("10"), Status: strPtr("paid")}).Validate())
	assert.Error(t, (&UpdateFieldsRequest{Deductions: dec("-10")}).Validate())
	assert.Error(t, (&UpdateFieldsRequest{Status: strPtr("late")}).Validate())
}

func TestSetBaseSalaryRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SetBaseSalaryRequest{Salary: dec("42000")}).Validate())
	assert.Error(t, (&SetBaseSalaryRequest{}).Validate())
	assert.Error(t, (&SetBaseSalaryRequest{Salary: dec("-1")}).Validate())
}

func strPtr(s string) *string { return &s }
