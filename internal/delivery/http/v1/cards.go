package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/idea-kanban/internal/models"
	"github.com/adanyl0v/idea-kanban/internal/services"
)

type getCardResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Column      string    `json:"column"`
	OrderIdx    int       `json:"order_idx"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newGetCardResponse(card *models.Card) getCardResponse {
	return getCardResponse{
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		Column:      card.Column.String(),
		OrderIdx:    card.OrderIdx,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}

type deleteCardResponse struct {
	Message string `json:"message"`
}

func (h *handlerImpl) HandleGetCards(c *gin.Context) {
	cards := h.cards.ListCards(c.Request.Context())

	response := make([]getCardResponse, len(cards))
	for i, card := range cards {
		response[i] = newGetCardResponse(card)
	}

	h.requestLogger(c).Debug().
		Int("count", len(response)).
		Msg("fetched cards")
	c.JSON(http.StatusOK, response)
}

type createCardRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description"`
	Column      string  `json:"column" binding:"required,oneof=backlog todo in_progress done"`
}

func (h *handlerImpl) HandleCreateCard(c *gin.Context) {
	var req createCardRequest
	if !h.bindJSON(c, &req) {
		return
	}

	card, err := h.cards.CreateCard(c.Request.Context(), services.CreateCardParams{
		Title:       *req.Title,
		Description: req.Description,
		Column:      models.Column(req.Column),
	})
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Msg("failed to create card")
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetCardResponse(card))
}

func (h *handlerImpl) HandleGetCard(c *gin.Context) {
	cardID, ok := h.cardIDParam(c)
	if !ok {
		return
	}

	card, err := h.cards.GetCard(c.Request.Context(), cardID)
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Int64("card_id", cardID).
			Msg("failed to get card")
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetCardResponse(card))
}

type updateCardRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Column      *string `json:"column,omitempty" binding:"omitempty,oneof=backlog todo in_progress done"`
}

func (h *handlerImpl) HandleUpdateCard(c *gin.Context) {
	cardID, ok := h.cardIDParam(c)
	if !ok {
		return
	}

	var req updateCardRequest
	if !h.bindJSON(c, &req) {
		return
	}

	params := services.UpdateCardParams{
		ID:          cardID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Column != nil {
		column := models.Column(*req.Column)
		params.Column = &column
	}

	card, err := h.cards.UpdateCard(c.Request.Context(), params)
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Int64("card_id", cardID).
			Msg("failed to update card")
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGetCardResponse(card))
}

func (h *handlerImpl) HandleDeleteCard(c *gin.Context) {
	cardID, ok := h.cardIDParam(c)
	if !ok {
		return
	}

	err := h.cards.DeleteCard(c.Request.Context(), cardID)
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Int64("card_id", cardID).
			Msg("failed to delete card")
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteCardResponse{Message: "Card deleted successfully"})
}

func (h *handlerImpl) cardIDParam(c *gin.Context) (int64, bool) {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Str("card_id", c.Param("id")).
			Msg("invalid card id")
		abort(c, newRequestValidationError("path.id: should be a valid integer"))
		return 0, false
	}
	return cardID, true
}

func (h *handlerImpl) abortWithServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		abort(c, newValidationError(validationErr.Error()))
	case errors.Is(err, services.ErrCardNotFound):
		abort(c, newNotFoundError("Card not found"))
	default:
		abort(c, newInternalError(http.StatusText(http.StatusInternalServerError)))
	}
}
