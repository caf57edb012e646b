package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adanyl0v/idea-kanban/internal/models"
)

const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 1000
)

// normalizeTitle trims the title and checks its length and characters.
func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)

	n := utf8.RuneCountInString(title)
	if n == 0 {
		return "", &ValidationError{Field: "title", Reason: "should have at least 1 character"}
	}
	if n > TitleMaxLength {
		return "", &ValidationError{
			Field:  "title",
			Reason: fmt.Sprintf("should have at most %d characters", TitleMaxLength),
		}
	}
	if strings.IndexFunc(title, unicode.IsControl) >= 0 {
		return "", &ValidationError{Field: "title", Reason: "must not contain control characters"}
	}
	return title, nil
}

func normalizeDescription(description *string) (*string, error) {
	if description == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*description)
	if utf8.RuneCountInString(trimmed) > DescriptionMaxLength {
		return nil, &ValidationError{
			Field:  "description",
			Reason: fmt.Sprintf("should have at most %d characters", DescriptionMaxLength),
		}
	}
	return &trimmed, nil
}

func validateColumn(column models.Column) error {
	if !column.Valid() {
		names := make([]string, len(models.Columns))
		for i, c := range models.Columns {
			names[i] = c.String()
		}
		return &ValidationError{
			Field:  "column",
			Reason: "should be one of " + strings.Join(names, ", "),
		}
	}
	return nil
}
