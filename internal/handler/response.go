package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"newsportal/internal/repository"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Status     bool        `json:"status"`
	StatusCode int         `json:"statusCode"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
	Errors     interface{} `json:"errors"`
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Envelope{
		Status:     true,
		StatusCode: statusCode,
		Msg:        "Success",
		Data:       data,
		Errors:     map[string]interface{}{},
	})
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeErrorEnvelope(w, message, statusCode, map[string]interface{}{})
}

func writeErrorEnvelope(w http.ResponseWriter, message string, statusCode int, fieldErrors interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Envelope{
		Status:     false,
		StatusCode: statusCode,
		Msg:        message,
		Data:       map[string]interface{}{},
		Errors:     fieldErrors,
	})
}

// writeValidationError shapes validator.v10 failures into per-field
// messages.
func writeValidationError(w http.ResponseWriter, err error) {
	fieldErrors := map[string]string{}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors[fieldError.Field()] = "failed on the '" + fieldError.Tag() + "' rule"
		}
	}

	writeErrorEnvelope(w, "Validation failed", http.StatusBadRequest, fieldErrors)
}

// writeServiceError maps sentinel errors onto HTTP statuses; anything
// unrecognized becomes an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrForbidden):
		WriteError(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, repository.ErrUnauthorized):
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, repository.ErrEmailTaken):
		WriteError(w, "Email already in use", http.StatusConflict)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON rejects unknown fields before validation runs.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
