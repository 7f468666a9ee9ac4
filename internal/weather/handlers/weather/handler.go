package weather

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkachur-dev/weather-dashboard/internal/weather/models"
	"github.com/dkachur-dev/weather-dashboard/internal/weather/services/forecast"
	"github.com/dkachur-dev/weather-dashboard/internal/weather/services/metrics"
)

const timeoutDuration = 10 * time.Second

type weatherGetterService interface {
	GetByCity(ctx context.Context, city string) (models.NormalizedWeather, error)
}

type Handler struct {
	service weatherGetterService
	m       *metrics.Metrics
}

func NewHandler(svc weatherGetterService, m *metrics.Metrics) *Handler {
	return &Handler{service: svc, m: m}
}

// GetWeather handles GET /weather?city={city}. It returns 404 when
// geocoding resolves no place, 400 when the city parameter is missing,
// and 500 for any other normalization or upstream fault.
func (h *Handler) GetWeather(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}

	h.m.ForecastRequestsTotal.WithLabelValues(city).Inc()

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	data, err := h.service.GetByCity(ctxWithTimeout, city)
	if err != nil {
		if errors.Is(err, forecast.ErrLocationNotFound) {
			h.m.ForecastErrorsTotal.WithLabelValues(city, "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
			return
		}
		h.m.ForecastErrorsTotal.WithLabelValues(city, "upstream").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}
