package models

// CountyRisk - базовый риск округа для карты
type CountyRisk struct {
	County     string
	RiskScore  float64
	CrisisRate float64
	Latitude   float64
	Longitude  float64
	IsASAL     bool
	Region     string
}

// RiskSummary - риски по всем округам и метаданные модели
type RiskSummary struct {
	Counties  []CountyRisk
	Recall    *float64
	ROCAUC    *float64
	Threshold float64
	Total     int
	Insecure  int
	Secure    int
}

// FormDefaults - значения формы прогноза по умолчанию для округа
type FormDefaults struct {
	PreviousCrisis     string
	RainfallLastMonth  string
	Rainfall3MonthsAgo string
	FoodBasketLevel    string
	Month              int
}

// CountyDefaults - значения по умолчанию и классификация бедности округа
type CountyDefaults struct {
	County             string
	VulnerabilityScore float64
	PovertyLevel       string
	IsASAL             bool
	PriceBands         PriceBands
	LimitedPriceData   bool
	Defaults           FormDefaults
}

// PriceBandsInfo - ценовые диапазоны округа и пометка о качестве данных
type PriceBandsInfo struct {
	County      string
	Bands       PriceBands
	LimitedData bool
	Note        *string
}
