package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/idea-kanban/internal/models"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrInvalidCard  = errors.New("invalid card")
)

// ValidationError describes why a card field was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCard
}

type CardService interface {
	// ListCards returns every card in insertion order.
	ListCards(ctx context.Context) []*models.Card

	// CreateCard validates the params and appends a new card
	// to the end of the given column.
	//
	// It returns a *ValidationError if the title, description
	// or column is invalid.
	CreateCard(ctx context.Context, params CreateCardParams) (*models.Card, error)

	// GetCard returns ErrCardNotFound if there is no card with the given ID.
	GetCard(ctx context.Context, cardID int64) (*models.Card, error)

	// UpdateCard replaces the provided fields of the card.
	//
	// Moving a card to another column appends it to the end of
	// that column and closes the gap it left behind. Nothing is
	// changed unless every provided field is valid.
	//
	// It returns ErrCardNotFound if there is no card with the
	// given ID or a *ValidationError if a field is invalid.
	UpdateCard(ctx context.Context, params UpdateCardParams) (*models.Card, error)

	// DeleteCard removes the card and shifts the cards below
	// it in the same column up by one.
	//
	// It returns ErrCardNotFound if there is no card with the given ID.
	DeleteCard(ctx context.Context, cardID int64) error
}

type CreateCardParams struct {
	Title       string
	Description *string
	Column      models.Column
}

// UpdateCardParams holds optional fields, nil means keep the current value.
type UpdateCardParams struct {
	ID          int64
	Title       *string
	Description *string
	Column      *models.Column
}
