package models

import (
	"github.com/Purkaitrohit/House-Price-Prediction/constants"
	"github.com/Purkaitrohit/House-Price-Prediction/pipeline"
)

// HouseFeatures is the feature record submitted for a single prediction.
// Wire names match the columns the pipeline was trained on.
type HouseFeatures struct {
	Area      int `json:"area" form:"area" validate:"required,min=1600,max=16000"`
	Bedrooms  int `json:"bedrooms" form:"bedrooms" validate:"required,min=1,max=6"`
	Bathrooms int `json:"bathrooms" form:"bathrooms" validate:"required,min=1,max=4"`
	Stories   int `json:"stories" form:"stories" validate:"required,min=1,max=4"`

	MainRoad        string `json:"mainroad" form:"mainroad" validate:"required,amenity"`
	GuestRoom       string `json:"guestroom" form:"guestroom" validate:"required,amenity"`
	Basement        string `json:"basement" form:"basement" validate:"required,amenity"`
	HotWaterHeating string `json:"hotwaterheating" form:"hotwaterheating" validate:"required,amenity"`
	AirConditioning string `json:"airconditioning" form:"airconditioning" validate:"required,amenity"`
	Parking         string `json:"parking" form:"parking" validate:"required,amenity"`
	PrefArea        string `json:"prefarea" form:"prefarea" validate:"required,amenity"`

	FurnishingStatus string `json:"furnishingstatus" form:"furnishingstatus" validate:"required,furnishing"`
	PriceCategory    string `json:"price_category" form:"price_category" validate:"required,pricecategory"`
}

// DefaultHouseFeatures returns the values the form is pre-filled with.
func DefaultHouseFeatures() HouseFeatures {
	return HouseFeatures{
		Area:             3000,
		Bedrooms:         2,
		Bathrooms:        2,
		Stories:          2,
		MainRoad:         constants.Required,
		GuestRoom:        constants.Required,
		Basement:         constants.Required,
		HotWaterHeating:  constants.Required,
		AirConditioning:  constants.Required,
		Parking:          constants.Required,
		PrefArea:         constants.Required,
		FurnishingStatus: constants.SemiFurnished,
		PriceCategory:    constants.LowPricing,
	}
}

// Row builds the one-row table handed to the prediction pipeline.
func (h HouseFeatures) Row() pipeline.Row {
	return pipeline.Row{
		"area":             h.Area,
		"bedrooms":         h.Bedrooms,
		"bathrooms":        h.Bathrooms,
		"stories":          h.Stories,
		"mainroad":         h.MainRoad,
		"guestroom":        h.GuestRoom,
		"basement":         h.Basement,
		"hotwaterheating":  h.HotWaterHeating,
		"airconditioning":  h.AirConditioning,
		"parking":          h.Parking,
		"prefarea":         h.PrefArea,
		"furnishingstatus": h.FurnishingStatus,
		"price_category":   h.PriceCategory,
	}
}
