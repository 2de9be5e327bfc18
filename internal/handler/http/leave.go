package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req leave.SubmitRequest
	if !decodeJSON(w, r, &req, "SubmitLeave") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := l.leaveService.Submit(r.Context(), caller.UserID, req)
	if err != nil {
		slog.Error("SubmitLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, resp)
}

// MyLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	requests, err := l.leaveService.ListMine(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// All implements LeaveHandler.
func (l *LeaveHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Decide implements LeaveHandler.
func (l *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req leave.DecideRequest
	if !decodeJSON(w, r, &req, "DecideLeave") {
		return
	}

	resp, err := l.leaveService.Decide(r.Context(), id, caller.UserID, req)
	if err != nil {
		slog.Error("DecideLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
