package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_Valid(t *testing.T) {
	for _, c := range Columns {
		assert.True(t, c.Valid(), "column %q should be valid", c)
	}

	assert.False(t, Column("").Valid())
	assert.False(t, Column("invalid_column").Valid())
	assert.False(t, Column("Backlog").Valid())
}

func TestParseColumn(t *testing.T) {
	c, err := ParseColumn("in_progress")
	require.NoError(t, err)
	assert.Equal(t, ColumnInProgress, c)

	_, err = ParseColumn("archived")
	assert.Error(t, err)
}

func TestCard_Clone(t *testing.T) {
	description := "details"
	card := &Card{
		ID:          1,
		Title:       "A",
		Description: &description,
		Column:      ColumnTodo,
		OrderIdx:    1,
	}

	clone := card.Clone()
	require.NotSame(t, card, clone)
	require.NotSame(t, card.Description, clone.Description)
	assert.Equal(t, card, clone)

	*clone.Description = "changed"
	clone.OrderIdx = 5
	assert.Equal(t, "details", *card.Description)
	assert.Equal(t, 1, card.OrderIdx)
}

func TestCard_Clone_NilDescription(t *testing.T) {
	card := &Card{ID: 2, Title: "B", Column: ColumnDone, OrderIdx: 1}
	clone := card.Clone()
	assert.Nil(t, clone.Description)
}
