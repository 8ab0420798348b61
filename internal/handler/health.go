package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/classifieds/internal/middleware"
	"github.com/deppfellow/classifieds/internal/server"
	"github.com/deppfellow/classifieds/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthHandler answers uptime monitors and load balancers.
type HealthHandler struct {
	Handler
	listingService *service.ListingService
}

func NewHealthHandler(s *server.Server, listingService *service.ListingService) *HealthHandler {
	return &HealthHandler{
		Handler:        NewHandler(s),
		listingService: listingService,
	}
}

// CheckHealth reports service status, environment and a store check with
// the current listing count.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	storeStart := time.Now()
	count := h.listingService.Count()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"store": map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(storeStart).String(),
				"listings":      count,
			},
		},
	}

	logger.Debug().
		Int("listings", count).
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":    "response",
				"operation":     "health_check",
				"error_type":    "json_response_error",
				"error_message": err.Error(),
			})
		}

		return errors.Wrap(err, "failed to write JSON response")
	}

	return nil
}
