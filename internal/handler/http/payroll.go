package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	SetBaseSalary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func periodFilter(r *http.Request) (payroll.Filter, error) {
	var filter payroll.Filter
	var err error
	if filter.Year, err = queryInt(r, "year"); err != nil {
		return filter, err
	}
	if filter.Month, err = queryInt(r, "month"); err != nil {
		return filter, err
	}
	return filter, nil
}

// Mine implements PayrollHandler.
func (p *PayrollHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	filter, err := periodFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := p.payrollService.Mine(r.Context(), caller.UserID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// All implements PayrollHandler.
func (p *PayrollHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	filter, err := periodFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if filter.UserID, err = queryInt64(r, "userId"); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := p.payrollService.All(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Upsert implements PayrollHandler.
func (p *PayrollHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertRequest
	if !decodeJSON(w, r, &req, "UpsertPayroll") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := p.payrollService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("UpsertPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// Update implements PayrollHandler.
func (p *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req payroll.UpdateFieldsRequest
	if !decodeJSON(w, r, &req, "UpdatePayroll") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := p.payrollService.UpdateFields(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdatePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// SetStatus implements PayrollHandler.
func (p *PayrollHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req payroll.SetStatusRequest
	if !decodeJSON(w, r, &req, "SetPayrollStatus") {
		return
	}

	if err := p.payrollService.SetStatus(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll status updated successfully")
}

// SetBaseSalary implements PayrollHandler.
func (p *PayrollHandlerImpl) SetBaseSalary(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	var req payroll.SetBaseSalaryRequest
	if !decodeJSON(w, r, &req, "SetBaseSalary") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := p.payrollService.SetBaseSalary(r.Context(), userID, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary updated successfully")
}
