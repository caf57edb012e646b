package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/idea-kanban/internal/models"
)

type cardServiceImpl struct {
	logger zerolog.Logger
	now    func() time.Time

	// mu guards everything below. Every operation that reads and
	// then rewrites order indexes must hold it for the whole call.
	mu     sync.Mutex
	cards  []*models.Card
	lastID int64
}

func NewCardService(logger zerolog.Logger) CardService {
	return newCardService(logger, func() time.Time {
		return time.Now().UTC()
	})
}

func newCardService(logger zerolog.Logger, now func() time.Time) *cardServiceImpl {
	return &cardServiceImpl{
		logger: logger,
		now:    now,
	}
}

func (s *cardServiceImpl) ListCards(ctx context.Context) []*models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]*models.Card, len(s.cards))
	for i, card := range s.cards {
		cards[i] = card.Clone()
	}

	s.loggerFrom(ctx).Debug().
		Int("count", len(cards)).
		Msg("listed cards")
	return cards
}

func (s *cardServiceImpl) CreateCard(ctx context.Context, params CreateCardParams) (*models.Card, error) {
	logger := s.loggerFrom(ctx)

	title, err := normalizeTitle(params.Title)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("invalid card title")
		return nil, err
	}
	description, err := normalizeDescription(params.Description)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("invalid card description")
		return nil, err
	}
	err = validateColumn(params.Column)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("column", params.Column.String()).
			Msg("invalid card column")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.lastID++
	card := &models.Card{
		ID:          s.lastID,
		Title:       title,
		Description: description,
		Column:      params.Column,
		OrderIdx:    maxOrderIdx(s.cards, params.Column) + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.cards = append(s.cards, card)

	logger.Info().
		Int64("card_id", card.ID).
		Str("column", card.Column.String()).
		Int("order_idx", card.OrderIdx).
		Msg("created card")
	return card.Clone(), nil
}

func (s *cardServiceImpl) GetCard(ctx context.Context, cardID int64) (*models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(cardID)
	if i < 0 {
		s.loggerFrom(ctx).Warn().
			Int64("card_id", cardID).
			Msg("card not found")
		return nil, ErrCardNotFound
	}

	s.loggerFrom(ctx).Debug().
		Int64("card_id", cardID).
		Msg("selected card")
	return s.cards[i].Clone(), nil
}

func (s *cardServiceImpl) UpdateCard(ctx context.Context, params UpdateCardParams) (*models.Card, error) {
	logger := s.loggerFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(params.ID)
	if i < 0 {
		logger.Warn().
			Int64("card_id", params.ID).
			Msg("card not found")
		return nil, ErrCardNotFound
	}
	card := s.cards[i]

	var (
		title       = card.Title
		description = card.Description
		err         error
	)
	if params.Title != nil {
		title, err = normalizeTitle(*params.Title)
		if err != nil {
			logger.Warn().
				Err(err).
				Int64("card_id", card.ID).
				Msg("invalid card title")
			return nil, err
		}
	}
	if params.Description != nil {
		description, err = normalizeDescription(params.Description)
		if err != nil {
			logger.Warn().
				Err(err).
				Int64("card_id", card.ID).
				Msg("invalid card description")
			return nil, err
		}
	}
	if params.Column != nil {
		err = validateColumn(*params.Column)
		if err != nil {
			logger.Warn().
				Err(err).
				Int64("card_id", card.ID).
				Msg("invalid card column")
			return nil, err
		}
	}

	card.Title = title
	card.Description = description

	if params.Column != nil && *params.Column != card.Column {
		oldColumn, oldOrderIdx := card.Column, card.OrderIdx

		// The card is not in the new column yet, so its stale
		// index can't leak into the max.
		card.OrderIdx = maxOrderIdx(s.cards, *params.Column) + 1
		card.Column = *params.Column

		reorder(s.cards, oldColumn, oldOrderIdx, maxOrderIdx(s.cards, oldColumn)+1)

		logger.Debug().
			Int64("card_id", card.ID).
			Str("from_column", oldColumn.String()).
			Str("to_column", card.Column.String()).
			Int("order_idx", card.OrderIdx).
			Msg("moved card")
	}
	card.UpdatedAt = s.now()

	logger.Info().
		Int64("card_id", card.ID).
		Msg("updated card")
	return card.Clone(), nil
}

func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID int64) error {
	logger := s.loggerFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(cardID)
	if i < 0 {
		logger.Warn().
			Int64("card_id", cardID).
			Msg("card not found")
		return ErrCardNotFound
	}

	deleted := s.cards[i]
	s.cards = slices.Delete(s.cards, i, i+1)
	reorder(s.cards, deleted.Column, deleted.OrderIdx, maxOrderIdx(s.cards, deleted.Column)+1)

	logger.Info().
		Int64("card_id", cardID).
		Str("column", deleted.Column.String()).
		Msg("deleted card")
	return nil
}

func (s *cardServiceImpl) indexOf(cardID int64) int {
	return slices.IndexFunc(s.cards, func(card *models.Card) bool {
		return card.ID == cardID
	})
}

// loggerFrom prefers the request-scoped logger carried by ctx.
func (s *cardServiceImpl) loggerFrom(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		return &s.logger
	}
	return logger
}
