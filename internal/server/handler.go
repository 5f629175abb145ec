package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/logging"
	"github.com/cwbudde/algo-etc/observe/request"
	"github.com/cwbudde/algo-etc/source/sed"
)

// health handles GET /health.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// snr handles POST /v1/snr.
func (s *Server) snr(c *gin.Context) {
	var doc request.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	req, err := doc.Request()
	if err != nil {
		s.fail(c, err)
		return
	}

	report, err := s.runner.Do(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// catalog handles GET /v1/catalog.
func (s *Server) catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"filters": s.store.Filters(),
		"grisms":  s.store.Grisms(),
		"models":  s.store.Models(),
	})
}

// fail answers with the status of err. Server-side failures are logged and
// reported without detail.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError && status != http.StatusGatewayTimeout {
		s.log.Error(c.Request.Context(), "request error", logging.Error(err),
			logging.String("request_id", logging.RunIDFromContext(c.Request.Context())))
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var (
		invalid  *request.InvalidParameterError
		mismatch *sed.UnitMismatchError
		missing  *curve.MissingCurveError
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &mismatch), errors.Is(err, curve.ErrModelFileRefused):
		return http.StatusBadRequest
	case errors.As(err, &missing):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
