// Package risk переводит вероятность модели в уровень риска, метку IPC
// и эвристические факторы для ответа API.
package risk

import (
	"fmt"
	"math"

	"github.com/shenikar/food_insecurity_ews/internal/features"
	"github.com/shenikar/food_insecurity_ews/internal/models"
)

// Уровни риска
const (
	LevelSevere   = "Severe Risk"
	LevelHigh     = "High Risk"
	LevelModerate = "Moderate Risk"
	LevelElevated = "Elevated Risk"
	LevelLow      = "Low Risk"
)

// Метки фаз IPC
const (
	LabelFamine    = "⚠ Famine Risk Detected"
	LabelEmergency = "⚠ Emergency — Intervention Needed"
	LabelCrisis    = "⚠ Crisis — Food Insecure"
	LabelStressed  = "⚡ Stressed — Monitor Closely"
	LabelMinimal   = "✓ Minimal Risk — Food Secure"
)

// Границы уровней риска
const (
	SevereThreshold   = 0.75
	HighThreshold     = 0.60
	ModerateThreshold = 0.45
	ElevatedThreshold = 0.35
)

// Классы бедности
const (
	PovertyHigh   = "High"
	PovertyMedium = "Medium"
	PovertyLow    = "Low"
)

// Направления влияния фактора
const (
	DirectionUp      = "up"
	DirectionDown    = "down"
	DirectionNeutral = "neutral"
)

// Знаки после запятой в ответах
const (
	ProbabilityPlaces = 4
	ScorePlaces       = 3
)

const maxFactors = 5

type tier struct {
	min   float64
	level string
	label string
}

var tiers = []tier{
	{SevereThreshold, LevelSevere, LabelFamine},
	{HighThreshold, LevelHigh, LabelEmergency},
	{ModerateThreshold, LevelModerate, LabelCrisis},
	{ElevatedThreshold, LevelElevated, LabelStressed},
}

func tierOf(p float64) (string, string) {
	for _, t := range tiers {
		if p >= t.min {
			return t.level, t.label
		}
	}
	return LevelLow, LabelMinimal
}

// Level возвращает уровень риска для вероятности
func Level(p float64) string {
	level, _ := tierOf(p)
	return level
}

// Label возвращает метку фазы IPC для вероятности
func Label(p float64) string {
	_, label := tierOf(p)
	return label
}

// IsInsecure - бинарное решение модели
func IsInsecure(p, threshold float64) bool {
	return p >= threshold
}

// PovertyLevel классифицирует индекс уязвимости: >0.30 High, >0.15 Medium
func PovertyLevel(vulnerability float64) string {
	switch {
	case vulnerability > 0.30:
		return PovertyHigh
	case vulnerability > 0.15:
		return PovertyMedium
	}
	return PovertyLow
}

// Round округляет до places знаков после запятой, половины к четному.
// Уровень, метка и is_insecure считаются по округленной вероятности,
// поэтому у порога решение может отличаться от сырого значения: 0.44996 -> 0.45.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}

// Factors объясняет прогноз по фиксированным правилам.
// Это не важность признаков модели, а подсказка для пользователя.
func Factors(v features.Vector) []models.Factor {
	factors := make([]models.Factor, 0, maxFactors)

	if v.Get(features.FoodInsecureLag1) == 1 {
		factors = append(factors, models.Factor{Feature: "Previous Crisis", Value: models.AnswerYes, Direction: DirectionUp})
	} else {
		factors = append(factors, models.Factor{Feature: "Previous Crisis", Value: models.AnswerNo, Direction: DirectionDown})
	}

	vuln := v.Get(features.VulnerabilityScore)
	factors = append(factors, models.Factor{
		Feature:   "Vulnerability Score",
		Value:     fmt.Sprintf("%.3f", vuln),
		Direction: pick(vuln > 0.25, DirectionUp, DirectionDown),
	})

	anomaly := v.Get(features.AnomalyLag1M)
	direction := DirectionNeutral
	switch {
	case anomaly < -20:
		direction = DirectionUp
	case anomaly > 20:
		direction = DirectionDown
	}
	factors = append(factors, models.Factor{
		Feature:   "Rainfall Anomaly",
		Value:     fmt.Sprintf("%+.0f%%", anomaly),
		Direction: direction,
	})

	factors = append(factors, models.Factor{
		Feature:   "Food Basket Cost",
		Value:     fmt.Sprintf("KES %.0f/kg", v.Get(features.FoodBasketCost)),
		Direction: pick(v.Get(features.MaizePriceStress) == 1, DirectionUp, DirectionNeutral),
	})

	if v.Get(features.IsASAL) == 1 {
		factors = append(factors, models.Factor{Feature: "ASAL County", Value: models.AnswerYes, Direction: DirectionUp})
	}

	if len(factors) > maxFactors {
		factors = factors[:maxFactors]
	}
	return factors
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
