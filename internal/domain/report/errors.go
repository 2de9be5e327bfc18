package report

import "errors"

var (
	ErrSalarySlipNotFound = errors.New("Payroll record not found")
)
