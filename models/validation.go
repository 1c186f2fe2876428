package models

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Purkaitrohit/House-Price-Prediction/constants"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var featureRules = map[string]validator.Func{
	"amenity":       oneOf(constants.Required, constants.NotRequired, constants.Yes, constants.No),
	"furnishing":    oneOf(constants.FurnishingOptions...),
	"pricecategory": oneOf(constants.PriceCategories...),
}

// Validator returns the shared validator with the feature tags registered.
// It panics if a tag cannot be registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v, err := newValidator(featureRules)
		if err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

func newValidator(rules map[string]validator.Func) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return v, nil
}

func oneOf(values ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(values, fl.Field().String())
	}
}
