package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/food_insecurity_ews/internal/alert"
	"github.com/shenikar/food_insecurity_ews/internal/features"
	"github.com/shenikar/food_insecurity_ews/internal/model"
	"github.com/shenikar/food_insecurity_ews/internal/models"
	"github.com/shenikar/food_insecurity_ews/internal/observability"
	"github.com/shenikar/food_insecurity_ews/internal/risk"
	"github.com/sirupsen/logrus"
)

var (
	// ErrCountyNotFound - округа нет в справочнике
	ErrCountyNotFound = errors.New("county not found")
	// ErrInvalidInput - недопустимое значение в запросе прогноза
	ErrInvalidInput = features.ErrInvalidInput
)

// Тексты пояснений в ответах
const (
	LimitedIPCDisclaimer = "⚠ Limited historical IPC data for this county — prediction is indicative only."
	LimitedPriceDataNote = "Based on limited market observations — use with caution."
)

const (
	defaultsMonth        = 7
	previousCrisisCutoff = 0.25
)

// значения меток метрик
const (
	errorReasonNotFound = "not_found"
	errorReasonInvalid  = "invalid_input"
	errorReasonScoring  = "scoring"
	alertOutcomeSuccess = "success"
	alertOutcomeError   = "error"
)

//go:generate mockgen -source=prediction.go -destination=mocks/prediction_mock.go -package=mocks

// Catalog определяет контракт справочника округов
type Catalog interface {
	Lookup(name string) (models.County, bool)
	Counties() []models.County
	PriceBandsFor(name string) models.PriceBands
}

// Scorer определяет контракт модели
type Scorer interface {
	Score(v features.Vector) (float64, error)
	Metadata() model.Metadata
}

// PredictionService определяет контракт бизнес-логики прогнозов
type PredictionService interface {
	Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error)
	CountyRisks(ctx context.Context) (*models.RiskSummary, error)
	CountyDefaults(ctx context.Context, county string) (*models.CountyDefaults, error)
	PriceBands(ctx context.Context, county string) (*models.PriceBandsInfo, error)
}

type predictionService struct {
	catalog   Catalog
	scorer    Scorer
	publisher alert.Publisher
	logger    *logrus.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

// NewPredictionService создает сервис прогнозов
func NewPredictionService(
	catalog Catalog,
	scorer Scorer,
	publisher alert.Publisher,
	logger *logrus.Logger,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) PredictionService {
	return &predictionService{
		catalog:   catalog,
		scorer:    scorer,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
	}
}

// Predict строит признаки, считает вероятность и формирует ответ.
// Неизвестный округ отклоняется до вызова модели.
func (s *predictionService) Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "Predict",
		"county":  req.County,
	})

	county, ok := s.catalog.Lookup(req.County)
	if !ok {
		s.metrics.PredictionErrors.WithLabelValues(errorReasonNotFound).Inc()
		log.Warn("Prediction requested for unknown county")
		return nil, fmt.Errorf("service: %w: %q", ErrCountyNotFound, req.County)
	}

	if req.Month == 0 {
		req.Month = models.DefaultMonth
	}

	vector, err := features.Build(req, county)
	if err != nil {
		s.metrics.PredictionErrors.WithLabelValues(errorReasonInvalid).Inc()
		log.WithError(err).Warn("Invalid prediction input")
		return nil, fmt.Errorf("service: could not build features: %w", err)
	}

	p, err := s.score(vector)
	if err != nil {
		s.metrics.PredictionErrors.WithLabelValues(errorReasonScoring).Inc()
		log.WithError(err).Error("Failed to score prediction")
		return nil, fmt.Errorf("service: could not score prediction: %w", err)
	}

	meta := s.scorer.Metadata()
	threshold := meta.DecisionThreshold()
	p = risk.Round(p, risk.ProbabilityPlaces)
	vuln := county.Vulnerability()

	result := &models.PredictionResult{
		ID:          uuid.New(),
		County:      county.Name,
		Probability: p,
		Label:       risk.Label(p),
		RiskLevel:   risk.Level(p),
		IsInsecure:  risk.IsInsecure(p, threshold),
		Threshold:   threshold,
		ModelUsed:   meta.Name(),
		Factors:     risk.Factors(vector),
		CountyInfo: models.CountyInfo{
			VulnerabilityScore: risk.Round(vuln, risk.ScorePlaces),
			PovertyLevel:       risk.PovertyLevel(vuln),
			IsASAL:             county.IsASAL,
			Region:             county.Region,
			PriceBands:         county.PriceBands,
			LimitedPriceData:   county.LimitedPriceData,
		},
		CreatedAt: s.clock.Now().UTC(),
	}
	if !county.IPCHistory {
		disclaimer := LimitedIPCDisclaimer
		result.Disclaimer = &disclaimer
	}

	s.metrics.Predictions.WithLabelValues(result.RiskLevel).Inc()
	log.WithFields(logrus.Fields{
		"prediction_id": result.ID,
		"probability":   result.Probability,
		"risk_level":    result.RiskLevel,
	}).Info("Prediction computed")

	if result.IsInsecure {
		s.publishAlert(ctx, result, log)
	}
	return result, nil
}

// publishAlert не влияет на ответ: ошибка публикации только логируется
func (s *predictionService) publishAlert(ctx context.Context, result *models.PredictionResult, log *logrus.Entry) {
	event := alert.NewEvent(result, s.clock.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.AlertsPublished.WithLabelValues(alertOutcomeError).Inc()
		log.WithError(err).Error("Failed to publish risk alert")
		return
	}
	s.metrics.AlertsPublished.WithLabelValues(alertOutcomeSuccess).Inc()
	log.WithField("alert_id", event.ID).Info("Risk alert published")
}

func (s *predictionService) score(v features.Vector) (float64, error) {
	start := s.clock.Now()
	defer func() {
		s.metrics.ScoringDuration.Observe(s.clock.Since(start).Seconds())
	}()
	return s.scorer.Score(v)
}

// CountyRisks считает базовый риск каждого округа для карты
func (s *predictionService) CountyRisks(ctx context.Context) (*models.RiskSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "CountyRisks",
	})

	meta := s.scorer.Metadata()
	threshold := meta.DecisionThreshold()
	counties := s.catalog.Counties()

	summary := &models.RiskSummary{
		Counties:  make([]models.CountyRisk, 0, len(counties)),
		Recall:    meta.Recall,
		ROCAUC:    meta.ROCAUC,
		Threshold: threshold,
	}

	for _, county := range counties {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := s.score(features.Baseline(county))
		if err != nil {
			log.WithError(err).WithField("county", county.Name).Error("Failed to score county baseline")
			return nil, fmt.Errorf("service: could not score county %q: %w", county.Name, err)
		}

		score := risk.Round(p, risk.ScorePlaces)
		summary.Counties = append(summary.Counties, models.CountyRisk{
			County:     county.Name,
			RiskScore:  score,
			CrisisRate: risk.Round(county.Vulnerability(), risk.ScorePlaces),
			Latitude:   county.Latitude,
			Longitude:  county.Longitude,
			IsASAL:     county.IsASAL,
			Region:     county.Region,
		})
		if risk.IsInsecure(score, threshold) {
			summary.Insecure++
		}
	}

	summary.Total = len(summary.Counties)
	summary.Secure = summary.Total - summary.Insecure

	log.WithFields(logrus.Fields{
		"total":    summary.Total,
		"insecure": summary.Insecure,
	}).Debug("County risks computed")
	return summary, nil
}

// CountyDefaults возвращает значения формы по умолчанию.
// Для неизвестного округа используются индекс 0.1 и цены Найроби.
func (s *predictionService) CountyDefaults(_ context.Context, name string) (*models.CountyDefaults, error) {
	county, ok := s.catalog.Lookup(name)
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"service": "prediction",
			"method":  "CountyDefaults",
			"county":  name,
		}).Debug("Unknown county, using fallback defaults")
		county = models.County{Name: name, PriceBands: s.catalog.PriceBandsFor(name)}
	}

	vuln := county.Vulnerability()
	rainfall, basket := models.RainfallNormal, models.BasketModerate
	if county.IsASAL {
		rainfall, basket = models.RainfallBelowNormal, models.BasketElevated
	}
	previousCrisis := models.AnswerNo
	if vuln > previousCrisisCutoff {
		previousCrisis = models.AnswerYes
	}

	return &models.CountyDefaults{
		County:             name,
		VulnerabilityScore: risk.Round(vuln, risk.ScorePlaces),
		PovertyLevel:       risk.PovertyLevel(vuln),
		IsASAL:             county.IsASAL,
		PriceBands:         county.PriceBands,
		LimitedPriceData:   county.LimitedPriceData,
		Defaults: models.FormDefaults{
			PreviousCrisis:     previousCrisis,
			RainfallLastMonth:  rainfall,
			Rainfall3MonthsAgo: rainfall,
			FoodBasketLevel:    basket,
			Month:              defaultsMonth,
		},
	}, nil
}

// PriceBands возвращает ценовые диапазоны округа и пометку о качестве данных
func (s *predictionService) PriceBands(_ context.Context, name string) (*models.PriceBandsInfo, error) {
	info := &models.PriceBandsInfo{
		County: name,
		Bands:  s.catalog.PriceBandsFor(name),
	}
	if county, ok := s.catalog.Lookup(name); ok && county.LimitedPriceData {
		note := LimitedPriceDataNote
		info.LimitedData = true
		info.Note = &note
	}
	return info, nil
}
