package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "viveiro/internal/errors"
)

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeValidationError(w http.ResponseWriter, logger *zap.Logger, message string, details ...apperrors.ValidationDetail) {
	writeJSON(w, logger, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

// handleError maps the error taxonomy onto status codes: caller-caused
// failures (bad fields, dead links, missing records, canceled orders) stay in
// the 4xx range, everything else is a generic 500.
func handleError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		writeValidationError(w, logger, ve.Message, ve.Details...)
		return
	}

	if re, ok := apperrors.IsResolutionError(err); ok {
		writeJSON(w, logger, http.StatusUnprocessableEntity, errorResponse{
			Error: "RESOLUTION_FAILED", Message: re.Message,
		})
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		writeJSON(w, logger, http.StatusNotFound, errorResponse{
			Error: "NOT_FOUND", Message: nfe.Message,
		})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		writeJSON(w, logger, http.StatusConflict, errorResponse{
			Error: "CONFLICT", Message: ce.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	writeJSON(w, logger, http.StatusInternalServerError, errorResponse{
		Error: "INTERNAL_ERROR", Message: "an unexpected error occurred",
	})
}

func parseIDParam(r *http.Request, name string) (uint, *apperrors.ValidationDetail) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &apperrors.ValidationDetail{
			Field:   name,
			Message: name + " must be a positive integer",
		}
	}
	return uint(id), nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate lets an empty value through as the zero time; required-field
// checks live in the use case.
func parseDate(field, raw string) (time.Time, *apperrors.ValidationDetail) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &apperrors.ValidationDetail{
		Field:   field,
		Message: field + " must be an RFC 3339 timestamp or a YYYY-MM-DD date",
	}
}
