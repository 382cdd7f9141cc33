package models

import (
	"time"

	"github.com/google/uuid"
)

// Значения ответа "был ли кризис в прошлом периоде"
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// Уровни осадков относительно нормы
const (
	RainfallMuchBelowNormal = "Much Below Normal"
	RainfallBelowNormal     = "Below Normal"
	RainfallNormal          = "Normal"
	RainfallAboveNormal     = "Above Normal"
	RainfallMuchAboveNormal = "Much Above Normal"
)

// Уровни стоимости продуктовой корзины
const (
	BasketAffordable = "Affordable"
	BasketModerate   = "Moderate"
	BasketElevated   = "Elevated"
	BasketHigh       = "High"
)

// DefaultMonth используется, если месяц в запросе не указан
const DefaultMonth = 6

var (
	rainfallLevels = []string{
		RainfallMuchBelowNormal,
		RainfallBelowNormal,
		RainfallNormal,
		RainfallAboveNormal,
		RainfallMuchAboveNormal,
	}
	basketLevels = []string{BasketAffordable, BasketModerate, BasketElevated, BasketHigh}
)

// RainfallLevels возвращает допустимые уровни осадков по возрастанию
func RainfallLevels() []string {
	return append([]string(nil), rainfallLevels...)
}

// BasketLevels возвращает допустимые уровни цен по возрастанию
func BasketLevels() []string {
	return append([]string(nil), basketLevels...)
}

// IsRainfallLevel проверяет значение уровня осадков
func IsRainfallLevel(s string) bool {
	return contains(rainfallLevels, s)
}

// IsBasketLevel проверяет значение уровня цен
func IsBasketLevel(s string) bool {
	return contains(basketLevels, s)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// PredictionRequest - входные данные прогноза
type PredictionRequest struct {
	County             string
	PreviousCrisis     string
	RainfallLastMonth  string
	Rainfall3MonthsAgo string
	FoodBasketLevel    string
	Month              int
}

// Factor - эвристическое объяснение прогноза
type Factor struct {
	Feature   string `json:"feature"`
	Value     string `json:"value"`
	Direction string `json:"direction"`
}

// CountyInfo - справочная информация об округе в ответе прогноза
type CountyInfo struct {
	VulnerabilityScore float64    `json:"vulnerability_score"`
	PovertyLevel       string     `json:"poverty_level"`
	IsASAL             bool       `json:"is_asal"`
	Region             string     `json:"region"`
	PriceBands         PriceBands `json:"price_bands"`
	LimitedPriceData   bool       `json:"limited_price_data"`
}

// PredictionResult - результат прогноза. Нигде не сохраняется.
type PredictionResult struct {
	ID          uuid.UUID
	County      string
	Probability float64
	Label       string
	RiskLevel   string
	IsInsecure  bool
	Threshold   float64
	ModelUsed   string
	Factors     []Factor
	CountyInfo  CountyInfo
	Disclaimer  *string
	CreatedAt   time.Time
}
