package board

import (
	"context"

	"sprintboard/internal/models"
)

// Summary is the per-column tally shown above a sprint board.
type Summary struct {
	SprintID     int64                 `json:"sprint_id" yaml:"sprint_id"`
	Name         string                `json:"name" yaml:"name"`
	IsActive     bool                  `json:"is_active" yaml:"is_active"`
	Total        int                   `json:"total" yaml:"total"`
	ByStatus     map[models.Status]int `json:"by_status" yaml:"by_status"`
	PercentDone  int                   `json:"percent_done" yaml:"percent_done"`
	DurationDays int                   `json:"duration_days" yaml:"duration_days"`
}

// Summary counts the items of a sprint per status.
func (b *Board) Summary(ctx context.Context, sprintID int64) (Summary, error) {
	sprint, err := b.GetSprint(ctx, sprintID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(sprint), nil
}

func summarize(sprint models.Sprint) Summary {
	s := Summary{
		SprintID: sprint.ID,
		Name:     sprint.Name,
		IsActive: sprint.IsActive,
		Total:    len(sprint.Items),
		ByStatus: make(map[models.Status]int, len(models.Statuses)),
	}
	for _, status := range models.Statuses {
		s.ByStatus[status] = 0
	}
	for _, item := range sprint.Items {
		s.ByStatus[item.Status]++
	}
	if s.Total > 0 {
		s.PercentDone = s.ByStatus[models.StatusDone] * 100 / s.Total
	}
	if !sprint.StartDate.IsZero() && !sprint.EndDate.IsZero() && !sprint.EndDate.Before(sprint.StartDate.Time) {
		s.DurationDays = int(sprint.EndDate.Sub(sprint.StartDate.Time).Hours()/24) + 1
	}
	return s
}
