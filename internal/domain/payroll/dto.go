package payroll

import (
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a NUMERIC(12, 2) money column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// checkAmount rejects negative amounts, values outside the money columns and
// fractions finer than a cent.
func checkAmount(errs *validator.ValidationErrors, field string, v *decimal.Decimal) {
	switch {
	case v == nil:
	case v.IsNegative():
		errs.Add(field, field+" must not be negative")
	case v.GreaterThan(MaxAmount):
		errs.Add(field, field+" must not exceed "+MaxAmount.String())
	case !v.Equal(v.Round(2)):
		errs.Add(field, field+" must have at most 2 decimal places")
	}
}

type UpsertRequest struct {
	UserID     int64            `json:"user_id"`
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	Allowances *decimal.Decimal `json:"allowances"`
	Deductions *decimal.Decimal `json:"deductions"`
	Status     *string          `json:"status"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 1900 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is invalid"})
	}
	if r.BaseSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary is required"})
	}
	checkAmount(&errs, "base_salary", r.BaseSalary)
	checkAmount(&errs, "allowances", r.Allowances)
	checkAmount(&errs, "deductions", r.Deductions)
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be pending or paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

// UpdateFieldsRequest is a partial update: nil fields keep their stored value.
type UpdateFieldsRequest struct {
	BaseSalary *decimal.Decimal `json:"base_salary"`
	Allowances *decimal.Decimal `json:"allowances"`
	Deductions *decimal.Decimal `json:"deductions"`
	Status     *string          `json:"status"`
}

func (r *UpdateFieldsRequest) Validate() error {
	var errs validator.ValidationErrors

	checkAmount(&errs, "base_salary", r.BaseSalary)
	checkAmount(&errs, "allowances", r.Allowances)
	checkAmount(&errs, "deductions", r.Deductions)
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs.Add("status", "status must be pending or paid")
	}

	return errs.Err()
}

type SetBaseSalaryRequest struct {
	Salary *decimal.Decimal `json:"salary"`
}

func (r *SetBaseSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Salary == nil {
		errs.Add("salary", "salary is required")
	}
	checkAmount(&errs, "salary", r.Salary)

	return errs.Err()
}

// Filter narrows payroll listings. Zero values mean "any".
type Filter struct {
	UserID *int64
	Year   *int
	Month  *int
}

type PayrollResponse struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"net_salary"`
	Status     Status          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	EmployeeID *string         `json:"employee_id,omitempty"`
	FirstName  *string         `json:"first_name,omitempty"`
	LastName   *string         `json:"last_name,omitempty"`
}

func (p Payroll) ToResponse() PayrollResponse {
	return PayrollResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Month:      p.Month,
		Year:       p.Year,
		BaseSalary: p.BaseSalary,
		Allowances: p.Allowances,
		Deductions: p.Deductions,
		NetSalary:  p.NetSalary,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		EmployeeID: p.EmployeeID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
	}
}

func ToResponses(records []Payroll) []PayrollResponse {
	out := make([]PayrollResponse, 0, len(records))
	for _, p := range records {
		out = append(out, p.ToResponse())
	}
	return out
}
