package httpv1

import (
	"errors"
	"strconv"

	"github.com/Egor213/NodeLogs/internal/metrics"
	"github.com/Egor213/NodeLogs/internal/service"
	"github.com/Egor213/NodeLogs/pkg/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters) {
	handler.HTTPErrorHandler = HTTPErrorHandler
	handler.Validator = validator.New()
	handler.Use(middleware.Recover())
	if counters != nil {
		handler.Use(countRequests(counters))
	}

	v1 := handler.Group("/api/v1")
	newNodeRoutes(v1, services.Nodes)
	newViewerRoutes(v1, services.Viewers)
}

func countRequests(counters *metrics.Counters) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				var apiErr Error
				if errors.As(err, &apiErr) {
					status = apiErr.Code
				}
			}
			counters.HTTPRequests.Inc(c.Request().Method, strconv.Itoa(status))
			return err
		}
	}
}
