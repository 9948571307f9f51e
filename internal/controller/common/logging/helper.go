package logginghelper

import (
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

func LogRequest(c echo.Context, viewerID string) {
	log.WithFields(log.Fields{
		"method":    c.Request().Method,
		"path":      c.Path(),
		"viewer_id": viewerID,
	}).Debug("Viewer API request")
}

func LogRejected(c echo.Context, err error) {
	log.WithFields(log.Fields{
		"method": c.Request().Method,
		"path":   c.Path(),
		"error":  err,
	}).Warn("Viewer API request rejected")
}

func LogError(c echo.Context, err error) {
	log.WithFields(log.Fields{
		"method": c.Request().Method,
		"path":   c.Path(),
		"error":  err,
	}).Error("Viewer API request failed")
}
