// Package validation checks user input at the HTTP and CLI boundaries.
// The board itself accepts whatever it is given.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"sprintboard/internal/models"
)

// ErrValidation is matched by every Error.
var ErrValidation = errors.New("validation failed")

// Error describes one rejected field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

// Invalid builds an Error for field.
func Invalid(field, reason string) error {
	return &Error{Field: field, Reason: reason}
}

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// Required trims value and rejects it when nothing is left.
func Required(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", Invalid(field, "is required")
	}
	return trimmed, nil
}

// Status parses a sprint item status.
func Status(raw string) (models.Status, error) {
	status, err := models.ParseStatus(strings.TrimSpace(raw))
	if err != nil {
		return "", Invalid("status", fmt.Sprintf("must be one of: %s", FormatValidValues(models.Statuses)))
	}
	return status, nil
}

// SprintDates parses both sprint dates and checks that the sprint does not end
// before it starts.
func SprintDates(start, end string) (models.Date, models.Date, error) {
	startDate, err := models.ParseDate(strings.TrimSpace(start))
	if err != nil {
		return models.Date{}, models.Date{}, Invalid("start_date", "must be a YYYY-MM-DD date")
	}
	endDate, err := models.ParseDate(strings.TrimSpace(end))
	if err != nil {
		return models.Date{}, models.Date{}, Invalid("end_date", "must be a YYYY-MM-DD date")
	}
	if endDate.Before(startDate.Time) {
		return models.Date{}, models.Date{}, Invalid("end_date", "must not be before start_date")
	}
	return startDate, endDate, nil
}

// Assignees trims each member id and drops blanks.
func Assignees(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
