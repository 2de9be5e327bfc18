package report

import (
	"context"
	"io"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
)

type ReportService interface {
	Analytics(ctx context.Context) (AnalyticsResponse, error)
	AttendanceReport(ctx context.Context, filter AttendanceReportFilter) (AttendanceReportResponse, error)
	AttendanceReportXLSX(ctx context.Context, filter AttendanceReportFilter, w io.Writer) error
	SalarySlip(ctx context.Context, actor user.Identity, req SalarySlipRequest) (SalarySlipResponse, error)
}
