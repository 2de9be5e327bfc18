package payroll

import (
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

var Statuses = []string{string(StatusPending), string(StatusPaid)}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Payroll is one salary record per (user, month, year).
type Payroll struct {
	ID         int64
	UserID     int64
	Month      int
	Year       int
	BaseSalary decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
	NetSalary  decimal.Decimal
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeID *string
	FirstName  *string
	LastName   *string
}

// NetSalary is base + allowances - deductions.
func NetSalary(base, allowances, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(allowances).Sub(deductions)
}

// Recompute refreshes NetSalary from the current components. It fails when
// the result does not fit the net_salary column.
func (p *Payroll) Recompute() error {
	p.NetSalary = NetSalary(p.BaseSalary, p.Allowances, p.Deductions)
	if p.NetSalary.Abs().GreaterThan(MaxAmount) {
		return validator.ValidationErrors{{Field: "net_salary", Message: "net_salary must not exceed " + MaxAmount.String()}}
	}
	return nil
}
