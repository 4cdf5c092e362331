package mutation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Name trims s and checks it against the name limits. what names the
// field in the error, e.g. "board name".
func Name(what, s string) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < models.MinNameLength {
		return "", fmt.Errorf("%w: %s must be at least %d characters", models.ErrValidation, what, models.MinNameLength)
	}
	if n > models.MaxNameLength {
		return "", fmt.Errorf("%w: %s cannot exceed %d characters", models.ErrValidation, what, models.MaxNameLength)
	}
	return s, nil
}

// Description checks s against the description limit. Descriptions are
// stored as given.
func Description(s string) error {
	if utf8.RuneCountInString(s) > models.MaxDescriptionLength {
		return fmt.Errorf("%w: description cannot exceed %d characters", models.ErrValidation, models.MaxDescriptionLength)
	}
	return nil
}

// Insert places v at index i of s, clamping i into [0, len(s)].
func Insert[T any](s []T, i int, v T) []T {
	i = max(0, min(i, len(s)))
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}

// Remove returns s without the element at i. The result never aliases s.
func Remove[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
