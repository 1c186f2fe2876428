package models

import (
	"time"

	"github.com/google/uuid"
)

// PredictionLog is a persisted prediction.
type PredictionLog struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Features     HouseFeatures `gorm:"embedded" json:"features"`
	Estimate     float64       `gorm:"not null" json:"estimate"`
	ModelName    string        `gorm:"type:varchar(255)" json:"model_name"`
	ModelVersion string        `gorm:"type:varchar(64)" json:"model_version"`
	Source       string        `gorm:"type:varchar(20);index" json:"source"` // form / api / cli
	CreatedAt    time.Time     `gorm:"default:now();index" json:"created_at"`
}

type PredictResponse struct {
	PredictionID uuid.UUID `json:"prediction_id"`
	Estimate     float64   `json:"estimate"`
	Formatted    string    `json:"formatted"`
	Currency     string    `json:"currency"`
	ModelName    string    `json:"model_name"`
	ModelVersion string    `json:"model_version"`
	CreatedAt    time.Time `json:"created_at"`
}

type ModelInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Target    string   `json:"target"`
	TrainedAt string   `json:"trained_at,omitempty"`
	Estimator string   `json:"estimator"`
	Trees     int      `json:"trees,omitempty"`
	Features  []string `json:"features"`
	Source    string   `json:"source"` // local / grpc
}

type PredictionHistory struct {
	Items  []PredictionLog `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// HistoryQuery is the query string of the history endpoint. Zero values fall
// back to the service defaults.
type HistoryQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
