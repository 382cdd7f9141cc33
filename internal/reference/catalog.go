// Package reference хранит неизменяемый справочник округов Кении.
// Справочник загружается один раз при старте и используется всеми запросами только на чтение.
package reference

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/shenikar/food_insecurity_ews/internal/models"
	"gopkg.in/yaml.v3"
)

// FallbackCounty - округ, чьи ценовые диапазоны используются для неизвестных округов
const FallbackCounty = "Nairobi"

//go:embed counties.yaml
var embeddedCounties []byte

// ErrInvalidCatalog возвращается при некорректных справочных данных
var ErrInvalidCatalog = errors.New("invalid county catalog")

type countyRecord struct {
	Name               string   `yaml:"name"`
	Region             string   `yaml:"region"`
	VulnerabilityScore *float64 `yaml:"vulnerability_score"`
	IsASAL             bool     `yaml:"is_asal"`
	Lat                float64  `yaml:"lat"`
	Lng                float64  `yaml:"lng"`
	PriceBands         struct {
		Affordable float64 `yaml:"affordable"`
		Moderate   float64 `yaml:"moderate"`
		Elevated   float64 `yaml:"elevated"`
		High       float64 `yaml:"high"`
	} `yaml:"price_bands"`
	LimitedPriceData bool `yaml:"limited_price_data"`
	IPCHistory       bool `yaml:"ipc_history"`
}

type catalogFile struct {
	Counties []countyRecord `yaml:"counties"`
}

// Catalog - справочник округов в исходном порядке
type Catalog struct {
	byName   map[string]models.County
	order    []string
	fallback models.PriceBands
}

// Load читает справочник из YAML файла. Пустой путь означает встроенный справочник.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedCounties)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}
	return Parse(data)
}

// Default возвращает встроенный справочник
func Default() (*Catalog, error) {
	return Parse(embeddedCounties)
}

// Source - внешний источник справочника, например таблица counties в PostgreSQL
type Source interface {
	ListCounties(ctx context.Context) ([]models.County, error)
}

// FromSource загружает справочник из источника и проверяет его так же, как YAML
func FromSource(ctx context.Context, src Source) (*Catalog, error) {
	counties, err := src.ListCounties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	return New(counties)
}

// Parse разбирает YAML справочника
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse reference data: %w", err)
	}

	counties := make([]models.County, 0, len(file.Counties))
	for _, rec := range file.Counties {
		counties = append(counties, models.County{
			Name:               rec.Name,
			Region:             rec.Region,
			VulnerabilityScore: rec.VulnerabilityScore,
			IsASAL:             rec.IsASAL,
			Latitude:           rec.Lat,
			Longitude:          rec.Lng,
			PriceBands: models.PriceBands{
				Affordable: rec.PriceBands.Affordable,
				Moderate:   rec.PriceBands.Moderate,
				Elevated:   rec.PriceBands.Elevated,
				High:       rec.PriceBands.High,
			},
			LimitedPriceData: rec.LimitedPriceData,
			IPCHistory:       rec.IPCHistory,
		})
	}
	return New(counties)
}

// New проверяет записи и строит справочник
func New(counties []models.County) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]models.County, len(counties)),
		order:  make([]string, 0, len(counties)),
	}

	for _, county := range counties {
		if county.Name == "" {
			return nil, fmt.Errorf("%w: county without name", ErrInvalidCatalog)
		}
		if _, exists := c.byName[county.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate county %q", ErrInvalidCatalog, county.Name)
		}
		if !knownRegion(county.Region) {
			return nil, fmt.Errorf("%w: county %q has unknown region %q", ErrInvalidCatalog, county.Name, county.Region)
		}
		if v := county.VulnerabilityScore; v != nil && (*v < 0 || *v > 1) {
			return nil, fmt.Errorf("%w: county %q vulnerability %.3f out of [0,1]", ErrInvalidCatalog, county.Name, *v)
		}
		if !county.PriceBands.Ordered() {
			return nil, fmt.Errorf("%w: county %q price bands are not ordered", ErrInvalidCatalog, county.Name)
		}
		c.byName[county.Name] = county
		c.order = append(c.order, county.Name)
	}

	fallback, ok := c.byName[FallbackCounty]
	if !ok {
		return nil, fmt.Errorf("%w: fallback county %q is missing", ErrInvalidCatalog, FallbackCounty)
	}
	c.fallback = fallback.PriceBands

	return c, nil
}

// Lookup ищет округ по точному имени
func (c *Catalog) Lookup(name string) (models.County, bool) {
	county, ok := c.byName[name]
	return county, ok
}

// Counties возвращает копию списка округов в исходном порядке
func (c *Catalog) Counties() []models.County {
	out := make([]models.County, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Len - число округов
func (c *Catalog) Len() int {
	return len(c.order)
}

// PriceBandsFor возвращает диапазоны округа, для неизвестного - диапазоны Найроби
func (c *Catalog) PriceBandsFor(name string) models.PriceBands {
	if county, ok := c.byName[name]; ok {
		return county.PriceBands
	}
	return c.fallback
}

func knownRegion(region string) bool {
	for _, r := range models.Regions {
		if r == region {
			return true
		}
	}
	return false
}
