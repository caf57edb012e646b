package services

import "github.com/adanyl0v/idea-kanban/internal/models"

// reorder shifts the order indexes of the cards in column so that the
// card at from ends up at to, closing or opening a gap on the way.
//
// Passing to as the column's max index + 1 closes the gap left at from
// by a removed card. The from >= to branch opens a gap at to instead and
// is only reached by direct calls, the store always closes gaps.
//
// to is clamped into [min, max+1] of the column's current indexes.
// Cards outside column are never touched.
func reorder(cards []*models.Card, column models.Column, from, to int) {
	inColumn := make([]*models.Card, 0, len(cards))
	for _, card := range cards {
		if card.Column == column {
			inColumn = append(inColumn, card)
		}
	}
	if len(inColumn) == 0 {
		return
	}

	minIdx, maxIdx := inColumn[0].OrderIdx, inColumn[0].OrderIdx
	for _, card := range inColumn[1:] {
		minIdx = min(minIdx, card.OrderIdx)
		maxIdx = max(maxIdx, card.OrderIdx)
	}
	to = max(to, minIdx)
	to = min(to, maxIdx+1)

	for _, card := range inColumn {
		idx := card.OrderIdx
		switch {
		case from < to && from < idx && idx <= to:
			card.OrderIdx--
		case from >= to && to <= idx && idx < from:
			card.OrderIdx++
		case idx == from:
			card.OrderIdx = to
		}
	}
}

// maxOrderIdx returns the highest order index in column, or 0 if it's empty.
func maxOrderIdx(cards []*models.Card, column models.Column) int {
	var idx int
	for _, card := range cards {
		if card.Column == column && card.OrderIdx > idx {
			idx = card.OrderIdx
		}
	}
	return idx
}
