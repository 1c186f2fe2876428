package handlers

import (
	"net/http"

	"github.com/Purkaitrohit/House-Price-Prediction/constants"
	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/services"
	"github.com/gin-gonic/gin"
)

const formTemplate = "index.tmpl"

// FormPage is the view model of the prediction form.
type FormPage struct {
	Features models.HouseFeatures
	Errors   models.FieldErrors
	Error    string
	Result   *models.PredictResponse

	Amenities         []AmenityField
	AmenityOptions    []string
	FurnishingOptions []string
	PriceCategories   []string
}

type AmenityField struct {
	Name    string
	Label   string
	Current string
}

type FormHandler struct {
	predictService services.PredictService
}

func NewFormHandler(predictService services.PredictService) *FormHandler {
	return &FormHandler{predictService: predictService}
}

func (h *FormHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, newFormPage(models.DefaultHouseFeatures()))
}

func (h *FormHandler) Submit(c *gin.Context) {
	var features models.HouseFeatures
	if err := c.ShouldBind(&features); err != nil {
		page := newFormPage(features)
		page.Error = "Please check the values you entered."
		_ = c.Error(err)
		c.HTML(http.StatusBadRequest, formTemplate, page)
		return
	}

	page := newFormPage(features)
	response, err := h.predictService.Predict(c.Request.Context(), constants.SourceForm, features)
	if err != nil {
		status, message := statusFor(err)
		page.Error = message
		if fields := fieldErrors(err); fields != nil {
			page.Errors = fields
		}
		_ = c.Error(err)
		c.HTML(status, formTemplate, page)
		return
	}

	page.Result = response
	c.HTML(http.StatusOK, formTemplate, page)
}

func newFormPage(f models.HouseFeatures) FormPage {
	return FormPage{
		Features: f,
		Errors:   models.FieldErrors{},
		// Row-major order of the two amenity columns.
		Amenities: []AmenityField{
			{Name: "mainroad", Label: "🛣 Main Road Access", Current: f.MainRoad},
			{Name: "hotwaterheating", Label: "🔥 Hot Water Heating", Current: f.HotWaterHeating},
			{Name: "guestroom", Label: "🚪 Guest Room", Current: f.GuestRoom},
			{Name: "airconditioning", Label: "❄ Air Conditioning", Current: f.AirConditioning},
			{Name: "basement", Label: "🏚 Basement", Current: f.Basement},
			{Name: "parking", Label: "🚗 Parking", Current: f.Parking},
		},
		AmenityOptions:    constants.AmenityOptions,
		FurnishingOptions: constants.FurnishingOptions,
		PriceCategories:   constants.PriceCategories,
	}
}
