package devserver

import (
	"encoding/json"
	"net/http"
)

// fieldError is one per-field validation message.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// envelope is the fixed wrapper every response uses, matching the
// production API's contract.
type envelope struct {
	Status     string       `json:"status"`
	Message    string       `json:"message"`
	Data       any          `json:"data,omitempty"`
	Errors     []fieldError `json:"errors,omitempty"`
	StatusCode int          `json:"statusCode,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Status: "Success", Message: message, Data: data})
}

func writeFailed(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: "Failed", Message: message, StatusCode: status})
}

func writeValidation(w http.ResponseWriter, errs []fieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, envelope{
		Status:     "Failed",
		Message:    "Validation failed",
		Errors:     errs,
		StatusCode: http.StatusUnprocessableEntity,
	})
}
