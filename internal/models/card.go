package models

import (
	"fmt"
	"time"
)

// Column is one of the fixed kanban stages a card can occupy.
type Column string

const (
	ColumnBacklog    Column = "backlog"
	ColumnTodo       Column = "todo"
	ColumnInProgress Column = "in_progress"
	ColumnDone       Column = "done"
)

// Columns lists every column in board order.
var Columns = []Column{
	ColumnBacklog,
	ColumnTodo,
	ColumnInProgress,
	ColumnDone,
}

func (c Column) Valid() bool {
	switch c {
	case ColumnBacklog, ColumnTodo, ColumnInProgress, ColumnDone:
		return true
	default:
		return false
	}
}

func (c Column) String() string {
	return string(c)
}

func ParseColumn(s string) (Column, error) {
	c := Column(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown column: %q", s)
	}
	return c, nil
}

type Card struct {
	ID    int64
	Title string
	// Description is nil when the card has none, which is
	// not the same thing as an empty description.
	Description *string
	Column      Column
	// OrderIdx is the 1-based position of the card within its column.
	OrderIdx  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	clone := *c
	if c.Description != nil {
		description := *c.Description
		clone.Description = &description
	}
	return &clone
}
