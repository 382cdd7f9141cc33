package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/food_insecurity_ews/internal/models"
)

// PredictRequest DTO запроса прогноза
// @Description DTO запроса прогноза
type PredictRequest struct {
	County             string `json:"county" validate:"required,max=64" example:"Baringo"`
	PreviousCrisis     string `json:"previous_crisis" validate:"required,oneof=Yes No" example:"No"`
	RainfallLastMonth  string `json:"rainfall_last_month" validate:"required,rainfall_level" example:"Normal"`
	Rainfall3MonthsAgo string `json:"rainfall_3months_ago" validate:"required,rainfall_level" example:"Normal"`
	FoodBasketLevel    string `json:"food_basket_level" validate:"required,basket_level" example:"Moderate"`
	Month              *int   `json:"month,omitempty" validate:"omitempty,min=1,max=12" example:"6"`
}

// FactorResponse DTO фактора прогноза
type FactorResponse struct {
	Feature   string `json:"feature"`
	Value     string `json:"value"`
	Direction string `json:"direction" enums:"up,down,neutral"`
}

// CountyInfoResponse DTO справочной информации об округе
type CountyInfoResponse struct {
	VulnerabilityScore float64           `json:"vulnerability_score"`
	PovertyLevel       string            `json:"poverty_level" enums:"High,Medium,Low"`
	IsASAL             bool              `json:"is_asal"`
	Region             string            `json:"region"`
	PriceBands         models.PriceBands `json:"price_bands"`
	LimitedPriceData   bool              `json:"limited_price_data"`
}

// PredictResponse DTO ответа с прогнозом
// @Description DTO ответа с прогнозом
type PredictResponse struct {
	ID          uuid.UUID          `json:"id"`
	County      string             `json:"county"`
	Probability float64            `json:"probability"`
	Label       string             `json:"label"`
	RiskLevel   string             `json:"risk_level"`
	IsInsecure  bool               `json:"is_insecure"`
	Threshold   float64            `json:"threshold"`
	ModelUsed   string             `json:"model_used"`
	Factors     []FactorResponse   `json:"factors"`
	CountyInfo  CountyInfoResponse `json:"county_info"`
	Disclaimer  *string            `json:"disclaimer"`
	CreatedAt   time.Time          `json:"created_at"`
}

// CountyRiskResponse DTO базового риска округа
type CountyRiskResponse struct {
	RiskScore  float64 `json:"risk_score"`
	CrisisRate float64 `json:"crisis_rate"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	IsASAL     bool    `json:"is_asal"`
	Region     string  `json:"region"`
}

// RiskMetadataResponse DTO метаданных модели и сводки по округам
type RiskMetadataResponse struct {
	Recall    *float64 `json:"recall"`
	ROCAUC    *float64 `json:"roc_auc"`
	Threshold float64  `json:"threshold"`
	Total     int      `json:"total"`
	Insecure  int      `json:"insecure"`
	Secure    int      `json:"secure"`
}

// CountyRisksResponse DTO карты рисков
// @Description DTO карты рисков: округ -> базовый риск
type CountyRisksResponse struct {
	Counties map[string]CountyRiskResponse `json:"counties"`
	Metadata RiskMetadataResponse          `json:"metadata"`
}

// FormDefaultsResponse DTO значений формы по умолчанию
type FormDefaultsResponse struct {
	PreviousCrisis     string `json:"previous_crisis"`
	RainfallLastMonth  string `json:"rainfall_last_month"`
	Rainfall3MonthsAgo string `json:"rainfall_3months_ago"`
	FoodBasketLevel    string `json:"food_basket_level"`
	Month              int    `json:"month"`
}

// CountyDefaultsResponse DTO значений по умолчанию для округа
// @Description DTO значений по умолчанию для округа
type CountyDefaultsResponse struct {
	County             string               `json:"county"`
	VulnerabilityScore float64              `json:"vulnerability_score"`
	PovertyLevel       string               `json:"poverty_level" enums:"High,Medium,Low"`
	IsASAL             bool                 `json:"is_asal"`
	PriceBands         models.PriceBands    `json:"price_bands"`
	LimitedPriceData   bool                 `json:"limited_price_data"`
	Defaults           FormDefaultsResponse `json:"defaults"`
}

// PriceBandsResponse DTO ценовых диапазонов округа
// @Description DTO ценовых диапазонов округа
type PriceBandsResponse struct {
	County      string            `json:"county"`
	Bands       models.PriceBands `json:"bands"`
	LimitedData bool              `json:"limited_data"`
	Note        *string           `json:"note"`
}
