package features

// Имена признаков в порядке, в котором был обучен scaler.
// Порядок менять нельзя: он должен совпадать с артефактом scaler.json.
const (
	MonthlyRainfallMM  = "monthly_rainfall_mm"
	AnomalyLag1M       = "anomaly_lag1m"
	AnomalyLag2M       = "anomaly_lag2m"
	AnomalyLag3M       = "anomaly_lag3m"
	RainfallLag1M      = "rainfall_lag1m"
	RainfallLag3M      = "rainfall_lag3m"
	IsDrought          = "is_drought"
	IsFlood            = "is_flood"
	InLongRains        = "in_long_rains"
	InShortRains       = "in_short_rains"
	Season             = "season"
	FoodBasketCost     = "food_basket_cost"
	MaizePriceChange1M = "maize_price_change_1m"
	BeansPriceChange1M = "beans_price_change_1m"
	MaizePriceStress   = "maize_price_stress"
	HasPriceData       = "has_price_data"
	Month              = "month"
	Quarter            = "quarter"
	IsLeanSeason       = "is_lean_season"
	FoodInsecureLag1   = "food_insecure_lag1"
	VulnerabilityScore = "vulnerability_score"
	IsASAL             = "is_asal"
	RegionCoast        = "region_Coast"
	RegionEastern      = "region_Eastern"
	RegionNairobi      = "region_Nairobi"
	RegionNorthEastern = "region_North Eastern"
	RegionNyanza       = "region_Nyanza"
	RegionRiftValley   = "region_Rift Valley"
)

// NumFeatures - размерность вектора на входе scaler
const NumFeatures = 28

var scalerOrder = [NumFeatures]string{
	MonthlyRainfallMM, AnomalyLag1M, AnomalyLag2M, AnomalyLag3M,
	RainfallLag1M, RainfallLag3M, IsDrought, IsFlood,
	InLongRains, InShortRains, Season, FoodBasketCost,
	MaizePriceChange1M, BeansPriceChange1M, MaizePriceStress,
	HasPriceData, Month, Quarter, IsLeanSeason,
	FoodInsecureLag1, VulnerabilityScore, IsASAL,
	RegionCoast, RegionEastern, RegionNairobi,
	RegionNorthEastern, RegionNyanza, RegionRiftValley,
}

// ScalerOrder возвращает копию списка признаков в порядке scaler
func ScalerOrder() []string {
	out := make([]string, NumFeatures)
	copy(out, scalerOrder[:])
	return out
}
