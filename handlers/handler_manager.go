package handlers

import (
	"github.com/Purkaitrohit/House-Price-Prediction/services"
)

type HandlerManager struct {
	FormHandler    *FormHandler
	PredictHandler *PredictHandler
	HistoryHandler *HistoryHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		FormHandler:    NewFormHandler(sm.PredictService),
		PredictHandler: NewPredictHandler(sm.PredictService),
		HistoryHandler: NewHistoryHandler(sm.HistoryService),
	}
}
