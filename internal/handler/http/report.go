package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	Analytics(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
	SalarySlip(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Analytics implements ReportHandler.
func (h *ReportHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Analytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Attendance implements ReportHandler. format=xlsx returns a workbook
// download instead of JSON.
func (h *ReportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	userID, err := queryInt64(r, "userId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter := report.AttendanceReportFilter{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
		UserID:    userID,
	}

	if r.URL.Query().Get("format") == "xlsx" {
		// Buffer so a failure halfway still produces a JSON error.
		var buf bytes.Buffer
		if err := h.reportService.AttendanceReportXLSX(r.Context(), filter, &buf); err != nil {
			response.HandleError(w, err)
			return
		}
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="attendance_%s_%s.xlsx"`, filter.StartDate, filter.EndDate))
		if _, err := buf.WriteTo(w); err != nil {
			slog.Error("attendance report write error", "error", err)
		}
		return
	}

	resp, err := h.reportService.AttendanceReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// SalarySlip implements ReportHandler.
func (h *ReportHandlerImpl) SalarySlip(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	req := report.SalarySlipRequest{
		UserID: userID,
		Month:  r.URL.Query().Get("month"),
		Year:   r.URL.Query().Get("year"),
	}
	resp, err := h.reportService.SalarySlip(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
