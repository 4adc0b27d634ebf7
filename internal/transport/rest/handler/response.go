package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/logger"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/service"
)

type errorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	StationID string `json:"station_id,omitempty"`
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(body)
	if err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
		return
	}
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}

// RespondNotFound makes a not found response carrying the station id.
func respondNotFound(w http.ResponseWriter, err *service.NotFoundError) {
	respErr := errorResponse{
		Code:      http.StatusNotFound,
		Message:   err.Error(),
		StationID: err.StationID,
	}

	respond(w, http.StatusNotFound, respErr)
}
