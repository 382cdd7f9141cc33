// Package features строит 28-мерный вектор признаков модели
// из категориальных ответов формы и справочных данных округа.
package features

import (
	"errors"
	"fmt"
	"math"

	"github.com/shenikar/food_insecurity_ews/internal/models"
)

// ErrInvalidInput возвращается для неизвестных категориальных значений
var ErrInvalidInput = errors.New("invalid input")

// Кодировка сезона
const (
	SeasonDry        = 0
	SeasonLongRains  = 1
	SeasonShortRains = 2
)

// Базовое месячное количество осадков по регионам, мм
var baseRainfall = map[string]float64{
	models.RegionNorthEastern: 25,
	models.RegionEastern:      50,
	models.RegionCoast:        65,
	models.RegionRiftValley:   60,
	models.RegionCentral:      80,
	models.RegionWestern:      90,
	models.RegionNyanza:       85,
	models.RegionNairobi:      75,
}

const defaultBaseRainfall = 55

var rainfallMultiplier = map[string]float64{
	models.RainfallMuchBelowNormal: 0.30,
	models.RainfallBelowNormal:     0.65,
	models.RainfallNormal:          1.00,
	models.RainfallAboveNormal:     1.40,
	models.RainfallMuchAboveNormal: 1.90,
}

var rainfallAnomaly = map[string]float64{
	models.RainfallMuchBelowNormal: -70,
	models.RainfallBelowNormal:     -35,
	models.RainfallNormal:          0,
	models.RainfallAboveNormal:     40,
	models.RainfallMuchAboveNormal: 90,
}

// droughtAnomaly - аномалия осадков (%), ниже которой месяц считается засушливым
const droughtAnomaly = -30

// Rainfall - оценка осадков для категориального уровня
type Rainfall struct {
	MM         float64
	AnomalyPct float64
}

// RainfallFor переводит уровень осадков в миллиметры и аномалию для региона
func RainfallFor(level, region string) (Rainfall, error) {
	mult, ok := rainfallMultiplier[level]
	if !ok {
		return Rainfall{}, fmt.Errorf("%w: rainfall level %q", ErrInvalidInput, level)
	}
	base, ok := baseRainfall[region]
	if !ok {
		base = defaultBaseRainfall
	}
	return Rainfall{
		MM:         roundTo(base*mult, 1),
		AnomalyPct: rainfallAnomaly[level],
	}, nil
}

// BasketCost переводит уровень цен в стоимость корзины по диапазонам округа.
// "High" экстраполируется выше верхнего диапазона.
func BasketCost(level string, bands models.PriceBands) (float64, error) {
	switch level {
	case models.BasketAffordable:
		return bands.Affordable * 0.75, nil
	case models.BasketModerate:
		return (bands.Affordable + bands.Moderate) / 2, nil
	case models.BasketElevated:
		return (bands.Moderate + bands.Elevated) / 2, nil
	case models.BasketHigh:
		return bands.Elevated * 1.2, nil
	}
	return 0, fmt.Errorf("%w: food basket level %q", ErrInvalidInput, level)
}

// maizePriceChange - условное месячное изменение цены кукурузы, %
func maizePriceChange(level string) float64 {
	switch level {
	case models.BasketHigh:
		return 5
	case models.BasketElevated:
		return 2
	}
	return 0
}

// QuarterOf возвращает квартал месяца
func QuarterOf(month int) int {
	return (month-1)/3 + 1
}

// SeasonOf кодирует сезон: сухой=0, длинные дожди=1, короткие дожди=2
func SeasonOf(month int) int {
	switch {
	case inLongRains(month):
		return SeasonLongRains
	case inShortRains(month):
		return SeasonShortRains
	}
	return SeasonDry
}

func inLongRains(month int) bool {
	return month >= 3 && month <= 5
}

func inShortRains(month int) bool {
	return month >= 10 && month <= 12
}

// LeanSeason - голодный сезон
func LeanSeason(month int) bool {
	switch month {
	case 1, 2, 3, 7, 8, 9:
		return true
	}
	return false
}

// RegionFlags возвращает one-hot признаки региона.
// Central и Western - базовые категории, для них все флаги нулевые.
func RegionFlags(region string) map[string]float64 {
	return map[string]float64{
		RegionCoast:        boolValue(region == models.RegionCoast),
		RegionEastern:      boolValue(region == models.RegionEastern),
		RegionNairobi:      boolValue(region == models.RegionNairobi),
		RegionNorthEastern: boolValue(region == models.RegionNorthEastern),
		RegionNyanza:       boolValue(region == models.RegionNyanza),
		RegionRiftValley:   boolValue(region == models.RegionRiftValley),
	}
}

// Build строит вектор признаков для запроса прогноза
func Build(req models.PredictionRequest, county models.County) (Vector, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidInput, req.Month)
	}

	var previousCrisis bool
	switch req.PreviousCrisis {
	case models.AnswerYes:
		previousCrisis = true
	case models.AnswerNo:
	default:
		return nil, fmt.Errorf("%w: previous crisis %q", ErrInvalidInput, req.PreviousCrisis)
	}

	rain1, err := RainfallFor(req.RainfallLastMonth, county.Region)
	if err != nil {
		return nil, err
	}
	rain3, err := RainfallFor(req.Rainfall3MonthsAgo, county.Region)
	if err != nil {
		return nil, err
	}

	basket, err := BasketCost(req.FoodBasketLevel, county.PriceBands)
	if err != nil {
		return nil, err
	}
	maizeChange := maizePriceChange(req.FoodBasketLevel)
	priceStress := req.FoodBasketLevel == models.BasketElevated || req.FoodBasketLevel == models.BasketHigh

	v := Vector{
		MonthlyRainfallMM:  rain1.MM,
		AnomalyLag1M:       rain1.AnomalyPct,
		AnomalyLag2M:       (rain1.AnomalyPct + rain3.AnomalyPct) / 2,
		AnomalyLag3M:       rain3.AnomalyPct,
		RainfallLag1M:      rain1.MM,
		RainfallLag3M:      rain3.MM,
		IsDrought:          boolValue(rain1.AnomalyPct < droughtAnomaly),
		IsFlood:            0,
		InLongRains:        boolValue(inLongRains(req.Month)),
		InShortRains:       boolValue(inShortRains(req.Month)),
		Season:             float64(SeasonOf(req.Month)),
		FoodBasketCost:     basket,
		MaizePriceChange1M: maizeChange,
		BeansPriceChange1M: maizeChange * 0.6,
		MaizePriceStress:   boolValue(priceStress),
		HasPriceData:       1,
		Month:              float64(req.Month),
		Quarter:            float64(QuarterOf(req.Month)),
		IsLeanSeason:       boolValue(LeanSeason(req.Month)),
		FoodInsecureLag1:   boolValue(previousCrisis),
		VulnerabilityScore: county.Vulnerability(),
		IsASAL:             boolValue(county.IsASAL),
	}
	for name, value := range RegionFlags(county.Region) {
		v[name] = value
	}
	return v, nil
}

// baselineMonth - месяц, для которого считается базовый риск округов
const baselineMonth = 7

// Baseline строит типовой вектор округа для карты рисков: засушливый сценарий
// для ASAL округов и нормальный для остальных.
func Baseline(county models.County) Vector {
	vuln := county.Vulnerability()
	asal := county.IsASAL

	pick := func(asalValue, otherValue float64) float64 {
		if asal {
			return asalValue
		}
		return otherValue
	}

	v := Vector{
		MonthlyRainfallMM:  pick(40, 70),
		AnomalyLag1M:       pick(-15, 5),
		AnomalyLag2M:       pick(-10, 4),
		AnomalyLag3M:       pick(-12, 3),
		RainfallLag1M:      pick(38, 68),
		RainfallLag3M:      pick(35, 65),
		IsDrought:          boolValue(asal),
		IsFlood:            0,
		InLongRains:        0,
		InShortRains:       0,
		Season:             float64(SeasonOf(baselineMonth)),
		FoodBasketCost:     pick(110, 65),
		MaizePriceChange1M: pick(3, 1),
		BeansPriceChange1M: 2,
		MaizePriceStress:   boolValue(asal),
		HasPriceData:       1,
		Month:              baselineMonth,
		Quarter:            float64(QuarterOf(baselineMonth)),
		IsLeanSeason:       0,
		FoodInsecureLag1:   boolValue(vuln > 0.25),
		VulnerabilityScore: vuln,
		IsASAL:             boolValue(asal),
	}
	for name, value := range RegionFlags(county.Region) {
		v[name] = value
	}
	return v
}

// roundTo округляет половины к четному, как исходные расчеты осадков (25*0.65 -> 16.2)
func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}
