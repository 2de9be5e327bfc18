package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	resp, err := a.attendanceService.CheckIn(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	resp, err := a.attendanceService.CheckOut(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Today implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	resp, err := a.attendanceService.Today(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Weekly implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	records, err := a.attendanceService.Weekly(r.Context(), caller.UserID, r.URL.Query().Get("startDate"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// All implements AttendanceHandler. With a userId and both dates it returns
// that employee's range in date order, otherwise the filtered listing.
func (a *AttendanceHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	userID, err := queryInt64(r, "userId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter := attendance.ListFilter{
		UserID:    userID,
		StartDate: queryString(r, "startDate"),
		EndDate:   queryString(r, "endDate"),
	}

	var records []attendance.AttendanceResponse
	if filter.UserID != nil && filter.StartDate != nil && filter.EndDate != nil {
		records, err = a.attendanceService.RangeForUser(r.Context(), *filter.UserID, *filter.StartDate, *filter.EndDate)
	} else {
		records, err = a.attendanceService.List(r.Context(), filter)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Update implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req attendance.AdminUpdateRequest
	if !decodeJSON(w, r, &req, "UpdateAttendance") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.attendanceService.AdminUpdate(r.Context(), id, req); err != nil {
		slog.Error("UpdateAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated successfully")
}
