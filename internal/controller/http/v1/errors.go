package httpv1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	logginghelper "github.com/Egor213/NodeLogs/internal/controller/common/logging"
	"github.com/Egor213/NodeLogs/internal/controller/validators"
	"github.com/Egor213/NodeLogs/internal/service"
	"github.com/Egor213/NodeLogs/internal/storage"
	"github.com/Egor213/NodeLogs/internal/viewer"
	"github.com/labstack/echo/v4"
)

// Error is the body of every failed API response.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

func (e Error) Error() string {
	return fmt.Sprintf("code=%d, message=%s, details=%s", e.Code, e.Message, strings.Join(e.Details, " "))
}

// Err builds an API error. An empty message falls back to the status text.
func Err(code int, message string, details ...string) Error {
	if message == "" {
		message = http.StatusText(code)
	}
	if details == nil {
		details = []string{}
	}
	return Error{
		Code:    code,
		Message: message,
		Details: details,
	}
}

var badRequest = []error{
	validators.ErrInvalidLogLevel,
	storage.ErrInvalidCeiling,
	viewer.ErrInvalidNode,
}

// mapError turns a service error into the API error returned to the client.
func mapError(c echo.Context, err error) error {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			logginghelper.LogRejected(c, err)
			return Err(http.StatusBadRequest, "", err.Error())
		}
	}

	switch {
	case errors.Is(err, service.ErrViewerNotFound):
		return Err(http.StatusNotFound, "viewer not found")
	case errors.Is(err, service.ErrTooManyViewers):
		logginghelper.LogRejected(c, err)
		return Err(http.StatusTooManyRequests, err.Error())
	case errors.Is(err, service.ErrPanelAccess):
		logginghelper.LogError(c, err)
		return Err(http.StatusBadGateway, "panel api rejected credentials")
	case errors.Is(err, service.ErrCannotListNodes):
		logginghelper.LogError(c, err)
		return Err(http.StatusBadGateway, "cannot list nodes")
	}

	logginghelper.LogError(c, err)
	return Err(http.StatusInternalServerError, "")
}

// HTTPErrorHandler renders API errors, echo errors and anything else as an
// Error body.
func HTTPErrorHandler(err error, c echo.Context) {
	var apiErr Error
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &httpErr):
		apiErr = Err(httpErr.Code, "", fmt.Sprintf("%v", httpErr.Message))
	default:
		apiErr = Err(http.StatusInternalServerError, "", err.Error())
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(apiErr.Code)
		return
	}
	_ = c.JSON(apiErr.Code, apiErr)
}
