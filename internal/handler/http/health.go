package http

import (
	"net/http"

	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/response"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, HealthResponse{Status: "ok", Message: "Dayflow HRMS API is running"})
}
