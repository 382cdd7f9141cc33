package v1

import "github.com/shenikar/food_insecurity_ews/internal/models"

// DTOToPredictionRequest преобразует DTO в доменный запрос. Пустой месяц заменяется на 6.
func DTOToPredictionRequest(dto PredictRequest) models.PredictionRequest {
	month := models.DefaultMonth
	if dto.Month != nil {
		month = *dto.Month
	}
	return models.PredictionRequest{
		County:             dto.County,
		PreviousCrisis:     dto.PreviousCrisis,
		RainfallLastMonth:  dto.RainfallLastMonth,
		Rainfall3MonthsAgo: dto.Rainfall3MonthsAgo,
		FoodBasketLevel:    dto.FoodBasketLevel,
		Month:              month,
	}
}

// ModelToPredictResponse преобразует результат прогноза в DTO для ответа
func ModelToPredictResponse(result *models.PredictionResult) *PredictResponse {
	factors := make([]FactorResponse, len(result.Factors))
	for i, f := range result.Factors {
		factors[i] = FactorResponse{Feature: f.Feature, Value: f.Value, Direction: f.Direction}
	}
	info := result.CountyInfo
	return &PredictResponse{
		ID:          result.ID,
		County:      result.County,
		Probability: result.Probability,
		Label:       result.Label,
		RiskLevel:   result.RiskLevel,
		IsInsecure:  result.IsInsecure,
		Threshold:   result.Threshold,
		ModelUsed:   result.ModelUsed,
		Factors:     factors,
		CountyInfo: CountyInfoResponse{
			VulnerabilityScore: info.VulnerabilityScore,
			PovertyLevel:       info.PovertyLevel,
			IsASAL:             info.IsASAL,
			Region:             info.Region,
			PriceBands:         info.PriceBands,
			LimitedPriceData:   info.LimitedPriceData,
		},
		Disclaimer: result.Disclaimer,
		CreatedAt:  result.CreatedAt,
	}
}

// ModelToCountyRisksResponse преобразует сводку рисков в DTO карты
func ModelToCountyRisksResponse(summary *models.RiskSummary) *CountyRisksResponse {
	counties := make(map[string]CountyRiskResponse, len(summary.Counties))
	for _, c := range summary.Counties {
		counties[c.County] = CountyRiskResponse{
			RiskScore:  c.RiskScore,
			CrisisRate: c.CrisisRate,
			Lat:        c.Latitude,
			Lng:        c.Longitude,
			IsASAL:     c.IsASAL,
			Region:     c.Region,
		}
	}
	return &CountyRisksResponse{
		Counties: counties,
		Metadata: RiskMetadataResponse{
			Recall:    summary.Recall,
			ROCAUC:    summary.ROCAUC,
			Threshold: summary.Threshold,
			Total:     summary.Total,
			Insecure:  summary.Insecure,
			Secure:    summary.Secure,
		},
	}
}

// ModelToCountyDefaultsResponse преобразует значения по умолчанию в DTO
func ModelToCountyDefaultsResponse(d *models.CountyDefaults) *CountyDefaultsResponse {
	return &CountyDefaultsResponse{
		County:             d.County,
		VulnerabilityScore: d.VulnerabilityScore,
		PovertyLevel:       d.PovertyLevel,
		IsASAL:             d.IsASAL,
		PriceBands:         d.PriceBands,
		LimitedPriceData:   d.LimitedPriceData,
		Defaults: FormDefaultsResponse{
			PreviousCrisis:     d.Defaults.PreviousCrisis,
			RainfallLastMonth:  d.Defaults.RainfallLastMonth,
			Rainfall3MonthsAgo: d.Defaults.Rainfall3MonthsAgo,
			FoodBasketLevel:    d.Defaults.FoodBasketLevel,
			Month:              d.Defaults.Month,
		},
	}
}

// ModelToPriceBandsResponse преобразует ценовые диапазоны в DTO
func ModelToPriceBandsResponse(info *models.PriceBandsInfo) *PriceBandsResponse {
	return &PriceBandsResponse{
		County:      info.County,
		Bands:       info.Bands,
		LimitedData: info.LimitedData,
		Note:        info.Note,
	}
}
