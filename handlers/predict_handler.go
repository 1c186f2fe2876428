package handlers

import (
	"net/http"

	"github.com/Purkaitrohit/House-Price-Prediction/constants"
	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/services"
	"github.com/gin-gonic/gin"
)

type PredictHandler struct {
	predictService services.PredictService
}

func NewPredictHandler(predictService services.PredictService) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
	}
}

// Predict scores a JSON feature record.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.HouseFeatures
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Invalid request data", err.Error()))
		return
	}

	response, err := h.predictService.Predict(c.Request.Context(), constants.SourceAPI, req)
	if err != nil {
		status, message := statusFor(err)
		var data interface{} = err.Error()
		if fields := fieldErrors(err); fields != nil {
			data = fields
		}
		_ = c.Error(err)
		c.JSON(status, models.ErrorResponse(status, message, data))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse("Prediction successful", response))
}

// Model describes the pipeline currently serving predictions.
func (h *PredictHandler) Model(c *gin.Context) {
	info, err := h.predictService.ModelInfo(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(http.StatusBadGateway, "Model information unavailable", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse("Model fetched successfully", info))
}
