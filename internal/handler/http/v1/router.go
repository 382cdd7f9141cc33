package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/food_insecurity_ews/internal/observability"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Справочные маршруты
	api.GET("/county-risks", h.countyRisks)
	api.GET("/county-defaults/:county", h.countyDefaults)
	api.GET("/price-bands/:county", h.priceBands)

	// Прогноз защищается ключом, только если ключи заданы
	if len(h.cfg.APIKeys) > 0 {
		api.POST("/predict", APIKeyAuthMiddleware(h.cfg, h.logger), h.predict)
	} else {
		api.POST("/predict", h.predict)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// MetricsMiddleware измеряет длительность запросов по шаблону маршрута
func MetricsMiddleware(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
