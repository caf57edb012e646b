package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/idea-kanban/internal/services"
)

type Handler interface {
	HandleCorrelationID(c *gin.Context)
	HandleAccessLog(c *gin.Context)
	HandleBodyLimit(c *gin.Context)
	HandleRecovery(c *gin.Context, recovered any)
	HandleNoRoute(c *gin.Context)
	HandleNoMethod(c *gin.Context)

	HandleHealth(c *gin.Context)

	HandleGetCards(c *gin.Context)
	HandleCreateCard(c *gin.Context)
	HandleGetCard(c *gin.Context)
	HandleUpdateCard(c *gin.Context)
	HandleDeleteCard(c *gin.Context)
}

type handlerImpl struct {
	logger       zerolog.Logger
	maxBodyBytes int64
	cards        services.CardService
}

func New(
	logger zerolog.Logger,
	maxBodyBytes int64,
	cardService services.CardService,
) Handler {
	registerValidatorTagNames()
	return &handlerImpl{
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
		cards:        cardService,
	}
}

// requestLogger returns the logger carrying the request's correlation ID.
func (h *handlerImpl) requestLogger(c *gin.Context) *zerolog.Logger {
	logger := zerolog.Ctx(c.Request.Context())
	if logger.GetLevel() == zerolog.Disabled {
		return &h.logger
	}
	return logger
}
