package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/food_insecurity_ews/internal/models"
)

// Querier - часть pgxpool.Pool, нужная репозиторию
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// CountyRepository читает справочник округов из PostgreSQL
type CountyRepository struct {
	db Querier
}

// NewCountyRepository создает новый CountyRepository
func NewCountyRepository(db Querier) *CountyRepository {
	return &CountyRepository{db: db}
}

const listCountiesQuery = `
	SELECT
		name,
		region,
		vulnerability_score,
		is_asal,
		latitude,
		longitude,
		band_affordable,
		band_moderate,
		band_elevated,
		band_high,
		limited_price_data,
		ipc_history
	FROM counties
	ORDER BY position;
`

// ListCounties возвращает все округа в порядке загрузки справочника
func (r *CountyRepository) ListCounties(ctx context.Context) ([]models.County, error) {
	rows, err := r.db.Query(ctx, listCountiesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query counties: %w", err)
	}

	counties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.County, error) {
		return scanCounty(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan counties: %w", err)
	}
	return counties, nil
}

const upsertCountyQuery = `
	INSERT INTO counties (
		name, region, vulnerability_score, is_asal, latitude, longitude,
		band_affordable, band_moderate, band_elevated, band_high,
		limited_price_data, ipc_history
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (name) DO UPDATE SET
		region = EXCLUDED.region,
		vulnerability_score = EXCLUDED.vulnerability_score,
		is_asal = EXCLUDED.is_asal,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		band_affordable = EXCLUDED.band_affordable,
		band_moderate = EXCLUDED.band_moderate,
		band_elevated = EXCLUDED.band_elevated,
		band_high = EXCLUDED.band_high,
		limited_price_data = EXCLUDED.limited_price_data,
		ipc_history = EXCLUDED.ipc_history;
`

// UpsertCounty добавляет или обновляет запись округа
func (r *CountyRepository) UpsertCounty(ctx context.Context, c models.County) error {
	_, err := r.db.Exec(ctx, upsertCountyQuery,
		c.Name,
		c.Region,
		c.VulnerabilityScore,
		c.IsASAL,
		c.Latitude,
		c.Longitude,
		c.PriceBands.Affordable,
		c.PriceBands.Moderate,
		c.PriceBands.Elevated,
		c.PriceBands.High,
		c.LimitedPriceData,
		c.IPCHistory,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert county %q: %w", c.Name, err)
	}
	return nil
}

func scanCounty(row pgx.Row) (models.County, error) {
	var c models.County
	err := row.Scan(
		&c.Name,
		&c.Region,
		&c.VulnerabilityScore,
		&c.IsASAL,
		&c.Latitude,
		&c.Longitude,
		&c.PriceBands.Affordable,
		&c.PriceBands.Moderate,
		&c.PriceBands.Elevated,
		&c.PriceBands.High,
		&c.LimitedPriceData,
		&c.IPCHistory,
	)
	return c, err
}
