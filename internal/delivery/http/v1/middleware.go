package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	correlationIDCtxKey = "correlation_id"
)

// HandleCorrelationID must run first, every error body relies on it.
func (h *handlerImpl) HandleCorrelationID(c *gin.Context) {
	id := c.GetHeader(CorrelationIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set(correlationIDCtxKey, id)
	c.Header(CorrelationIDHeader, id)

	logger := h.logger.With().
		Str("correlation_id", id).
		Logger()
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

	c.Next()
}

func (h *handlerImpl) HandleAccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	status := c.Writer.Status()
	level := zerolog.InfoLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	h.requestLogger(c).WithLevel(level).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}

func (h *handlerImpl) HandleBodyLimit(c *gin.Context) {
	if h.maxBodyBytes > 0 && c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}
	c.Next()
}

// HandleRecovery is meant for gin.CustomRecovery.
func (h *handlerImpl) HandleRecovery(c *gin.Context, recovered any) {
	h.requestLogger(c).Error().
		Interface("panic", recovered).
		Msg("recovered from panic")
	abort(c, newInternalError(http.StatusText(http.StatusInternalServerError)))
}

func (h *handlerImpl) HandleNoRoute(c *gin.Context) {
	abort(c, newHTTPError(http.StatusNotFound))
}

func (h *handlerImpl) HandleNoMethod(c *gin.Context) {
	abort(c, newHTTPError(http.StatusMethodNotAllowed))
}

func correlationID(c *gin.Context) string {
	return c.GetString(correlationIDCtxKey)
}
