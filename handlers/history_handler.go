package handlers

import (
	"net/http"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/services"
	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// List returns recent predictions, newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	var query models.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "limit and offset must be integers", err.Error()))
		return
	}

	history, err := h.historyService.List(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		status, message := statusFor(err)
		_ = c.Error(err)
		c.JSON(status, models.ErrorResponse(status, message, nil))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse("Predictions fetched successfully", history))
}
