package models

// Регионы (бывшие провинции) Кении, используемые моделью
const (
	RegionCoast        = "Coast"
	RegionNorthEastern = "North Eastern"
	RegionEastern      = "Eastern"
	RegionCentral      = "Central"
	RegionRiftValley   = "Rift Valley"
	RegionWestern      = "Western"
	RegionNyanza       = "Nyanza"
	RegionNairobi      = "Nairobi"
	RegionOther        = "Other"
)

// DefaultVulnerabilityScore подставляется для округов без индекса уязвимости
const DefaultVulnerabilityScore = 0.1

// Regions - все известные регионы
var Regions = []string{
	RegionCoast,
	RegionNorthEastern,
	RegionEastern,
	RegionCentral,
	RegionRiftValley,
	RegionWestern,
	RegionNyanza,
	RegionNairobi,
}

// PriceBands - верхние границы ценовых диапазонов продуктовой корзины, KES/kg
type PriceBands struct {
	Affordable float64 `json:"Affordable"`
	Moderate   float64 `json:"Moderate"`
	Elevated   float64 `json:"Elevated"`
	High       float64 `json:"High"`
}

// Ordered проверяет, что границы не убывают
func (b PriceBands) Ordered() bool {
	return b.Affordable <= b.Moderate && b.Moderate <= b.Elevated && b.Elevated <= b.High
}

// County - справочная запись округа. Загружается один раз и не меняется.
type County struct {
	Name               string     `json:"name"`
	Region             string     `json:"region"`
	VulnerabilityScore *float64   `json:"vulnerability_score,omitempty"`
	IsASAL             bool       `json:"is_asal"`
	Latitude           float64    `json:"lat"`
	Longitude          float64    `json:"lng"`
	PriceBands         PriceBands `json:"price_bands"`
	LimitedPriceData   bool       `json:"limited_price_data"`
	IPCHistory         bool       `json:"ipc_history"`
}

// Vulnerability возвращает индекс уязвимости или значение по умолчанию
func (c County) Vulnerability() float64 {
	if c.VulnerabilityScore == nil {
		return DefaultVulnerabilityScore
	}
	return *c.VulnerabilityScore
}
