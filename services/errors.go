package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidFeatures  = errors.New("invalid house features")
	ErrPredictionFailed = errors.New("prediction failed")
	ErrHistoryDisabled  = errors.New("prediction history is disabled")
)

// ValidationError carries per-field messages keyed by wire name.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidFeatures, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidFeatures }

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidFeatures, err)
	}

	fields := make(models.FieldErrors, len(verrs))
	for _, fe := range verrs {
		fields[wireName(fe.StructField())] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "amenity":
		return "must be Required or Not Required"
	case "furnishing":
		return "must be furnished, semi-furnished or unfurnished"
	case "pricecategory":
		return "must be Low Pricing, Medium Pricing or High Pricing"
	default:
		return "is invalid"
	}
}

var wireNames = map[string]string{
	"Area":             "area",
	"Bedrooms":         "bedrooms",
	"Bathrooms":        "bathrooms",
	"Stories":          "stories",
	"MainRoad":         "mainroad",
	"GuestRoom":        "guestroom",
	"Basement":         "basement",
	"HotWaterHeating":  "hotwaterheating",
	"AirConditioning":  "airconditioning",
	"Parking":          "parking",
	"PrefArea":         "prefarea",
	"FurnishingStatus": "furnishingstatus",
	"PriceCategory":    "price_category",
}

func wireName(field string) string {
	if name, ok := wireNames[field]; ok {
		return name
	}
	return strings.ToLower(field)
}
