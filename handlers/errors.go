package handlers

import (
	"errors"
	"net/http"

	"github.com/Purkaitrohit/House-Price-Prediction/inference"
	"github.com/Purkaitrohit/House-Price-Prediction/pipeline"
	"github.com/Purkaitrohit/House-Price-Prediction/services"
)

// statusFor maps service errors to an HTTP status and a public message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidFeatures):
		return http.StatusBadRequest, "Invalid house features"
	case pipeline.IsInputError(err), errors.Is(err, inference.ErrRejected):
		return http.StatusUnprocessableEntity, "The model cannot score these features"
	case errors.Is(err, services.ErrHistoryDisabled):
		return http.StatusServiceUnavailable, "Prediction history is disabled"
	case errors.Is(err, services.ErrPredictionFailed):
		return http.StatusBadGateway, "Prediction service unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// fieldErrors extracts per-field validation messages, if any.
func fieldErrors(err error) map[string]string {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
