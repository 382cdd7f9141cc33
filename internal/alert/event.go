package alert

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/food_insecurity_ews/internal/models"
)

// Event - уведомление о прогнозе выше порога отсечения
type Event struct {
	ID           uuid.UUID `json:"id"`
	PredictionID uuid.UUID `json:"prediction_id"`
	County       string    `json:"county"`
	Region       string    `json:"region"`
	Probability  float64   `json:"probability"`
	RiskLevel    string    `json:"risk_level"`
	Label        string    `json:"label"`
	Threshold    float64   `json:"threshold"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewEvent строит событие по результату прогноза
func NewEvent(result *models.PredictionResult, now time.Time) Event {
	return Event{
		ID:           uuid.New(),
		PredictionID: result.ID,
		County:       result.County,
		Region:       result.CountyInfo.Region,
		Probability:  result.Probability,
		RiskLevel:    result.RiskLevel,
		Label:        result.Label,
		Threshold:    result.Threshold,
		CreatedAt:    now.UTC(),
	}
}
