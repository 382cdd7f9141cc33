package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/food_insecurity_ews/internal/config"
	"github.com/shenikar/food_insecurity_ews/internal/models"
	"github.com/shenikar/food_insecurity_ews/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	predictionService service.PredictionService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(predictionService service.PredictionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		predictionService: predictionService,
		logger:            logger,
		validate:          newValidator(),
		cfg:               cfg,
	}
}

// newValidator регистрирует проверки категориальных полей запроса.
// Ошибка регистрации - ошибка программиста, поэтому panic.
func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "rainfall_level", func(fl validator.FieldLevel) bool {
		return models.IsRainfallLevel(fl.Field().String())
	})
	mustRegister(v, "basket_level", func(fl validator.FieldLevel) bool {
		return models.IsBasketLevel(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// @Summary Predict food insecurity risk
// @Description Score crisis (IPC Phase 3+) risk for a county from categorical rainfall and price inputs.
// @Tags Prediction
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PredictRequest true "Prediction request"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "County not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /predict [post]
func (h *Handler) predict(c *gin.Context) {
	var input PredictRequest
	log := h.logger.WithField("method", "predict")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.predictionService.Predict(c.Request.Context(), DTOToPredictionRequest(input))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCountyNotFound):
			log.WithField("county", input.County).Warn("County not found")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("County '%s' not found", input.County)})
		case errors.Is(err, service.ErrInvalidInput):
			log.WithError(err).Warn("Invalid prediction input")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Failed to compute prediction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToPredictResponse(result))
}

// @Summary Baseline risk for every county
// @Description Risk score of a typical month-7 scenario per county with model metadata.
// @Tags Counties
// @Produce json
// @Success 200 {object} CountyRisksResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /county-risks [get]
func (h *Handler) countyRisks(c *gin.Context) {
	log := h.logger.WithField("method", "countyRisks")

	summary, err := h.predictionService.CountyRisks(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute county risks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToCountyRisksResponse(summary))
}

// @Summary Form defaults for a county
// @Description Default form values and vulnerability/poverty classification. Unknown counties get fallback values.
// @Tags Counties
// @Produce json
// @Param county path string true "County name"
// @Success 200 {object} CountyDefaultsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /county-defaults/{county} [get]
func (h *Handler) countyDefaults(c *gin.Context) {
	county := c.Param("county")
	log := h.logger.WithField("method", "countyDefaults").WithField("county", county)

	defaults, err := h.predictionService.CountyDefaults(c.Request.Context(), county)
	if err != nil {
		log.WithError(err).Error("Failed to get county defaults")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToCountyDefaultsResponse(defaults))
}

// @Summary Food basket price bands for a county
// @Description Price band upper bounds in KES/kg. Unknown counties get the Nairobi bands.
// @Tags Counties
// @Produce json
// @Param county path string true "County name"
// @Success 200 {object} PriceBandsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /price-bands/{county} [get]
func (h *Handler) priceBands(c *gin.Context) {
	county := c.Param("county")
	log := h.logger.WithField("method", "priceBands").WithField("county", county)

	info, err := h.predictionService.PriceBands(c.Request.Context(), county)
	if err != nil {
		log.WithError(err).Error("Failed to get price bands")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToPriceBandsResponse(info))
}

// @Summary Health check
// @Description Liveness probe.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
