package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintboard/internal/models"
)

func TestRequired(t *testing.T) {
	got, err := Required("title", "  Login page ")
	require.NoError(t, err)
	assert.Equal(t, "Login page", got)

	_, err = Required("title", " \t ")
	assert.EqualError(t, err, "title is required")
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
}

func TestStatus(t *testing.T) {
	got, err := Status(" in_progress ")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got)

	_, err = Status("blocked")
	assert.EqualError(t, err, "status must be one of: to_do, in_progress, done")
}

func TestSprintDates(t *testing.T) {
	start, end, err := SprintDates("2025-03-01", "2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", start.String())
	assert.Equal(t, "2025-03-14", end.String())

	_, _, err = SprintDates("2025-03-01", "2025-03-01")
	assert.NoError(t, err, "one-day sprints are allowed")

	tests := []struct {
		name, start, end, want string
	}{
		{"bad start", "March 1", "2025-03-14", "start_date must be a YYYY-MM-DD date"},
		{"missing end", "2025-03-01", "", "end_date must be a YYYY-MM-DD date"},
		{"reversed", "2025-03-14", "2025-03-01", "end_date must not be before start_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SprintDates(tt.start, tt.end)
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAssignees(t *testing.T) {
	assert.Equal(t, []string{"alice", "bob"}, Assignees([]string{" alice", "", "bob "}))
	assert.Equal(t, []string{}, Assignees(nil))
}
