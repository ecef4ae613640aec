package board

import (
	"context"
	"fmt"
	"slices"

	"sprintboard/internal/models"
)

// ListSprints returns a copy of every sprint in creation order.
func (b *Board) ListSprints(ctx context.Context) []models.Sprint {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Sprint, len(b.sprints))
	for i, sprint := range b.sprints {
		out[i] = sprint.Clone()
	}
	return out
}

// ActiveSprints returns every sprint whose active flag is set. More than
// one sprint may be active at a time.
func (b *Board) ActiveSprints(ctx context.Context) []models.Sprint {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.Sprint
	for _, sprint := range b.sprints {
		if sprint.IsActive {
			out = append(out, sprint.Clone())
		}
	}
	return out
}

// GetSprint returns a copy of one sprint.
func (b *Board) GetSprint(ctx context.Context, id int64) (models.Sprint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.sprintIndex(id)
	if err != nil {
		return models.Sprint{}, err
	}
	return b.sprints[idx].Clone(), nil
}

// CreateSprint appends an inactive, empty sprint with the next free id.
func (b *Board) CreateSprint(ctx context.Context, name string, start, end models.Date) (models.Sprint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sprint := models.Sprint{
		ID:         nextID(b.sprints, func(s models.Sprint) int64 { return s.ID }),
		Name:       name,
		StartDate:  start,
		EndDate:    end,
		Items:      []models.SprintItem{},
		NextItemID: 1,
	}
	b.sprints = append(b.sprints, sprint)
	b.logger.Debug("sprint created", "sprint_id", sprint.ID)

	return sprint.Clone(), b.persistSprints(ctx)
}

// UpdateSprint replaces the name and dates of a sprint.
func (b *Board) UpdateSprint(ctx context.Context, id int64, name string, start, end models.Date) (models.Sprint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.sprintIndex(id)
	if err != nil {
		return models.Sprint{}, err
	}
	sprint := &b.sprints[idx]
	sprint.Name = name
	sprint.StartDate = start
	sprint.EndDate = end
	b.logger.Debug("sprint updated", "sprint_id", id)

	return sprint.Clone(), b.persistSprints(ctx)
}

// ToggleActive flips the active flag of a sprint. Other sprints are left alone.
func (b *Board) ToggleActive(ctx context.Context, id int64) (models.Sprint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.sprintIndex(id)
	if err != nil {
		return models.Sprint{}, err
	}
	b.sprints[idx].IsActive = !b.sprints[idx].IsActive
	b.logger.Debug("sprint toggled", "sprint_id", id, "active", b.sprints[idx].IsActive)

	return b.sprints[idx].Clone(), b.persistSprints(ctx)
}

// UpdateItemStatus moves a sprint item to any status, from any status.
// Only the three board columns are accepted.
func (b *Board) UpdateItemStatus(ctx context.Context, sprintID, itemID int64, status models.Status) (models.SprintItem, error) {
	if !status.Valid() {
		return models.SprintItem{}, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	si, ii, err := b.sprintItemIndex(sprintID, itemID)
	if err != nil {
		return models.SprintItem{}, err
	}
	item := &b.sprints[si].Items[ii]
	item.Status = status
	b.logger.Debug("sprint item status", "sprint_id", sprintID, "item_id", itemID, "status", status)

	return item.Clone(), b.persistSprints(ctx)
}

// RemoveItem drops an item from a sprint. Removing an absent item is not an error.
func (b *Board) RemoveItem(ctx context.Context, sprintID, itemID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.sprintIndex(sprintID)
	if err != nil {
		return err
	}
	sprint := &b.sprints[idx]

	kept := sprint.Items[:0]
	removed := false
	for _, item := range sprint.Items {
		if item.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return b.flush(ctx)
	}
	sprint.Items = kept
	b.logger.Debug("sprint item removed", "sprint_id", sprintID, "item_id", itemID)

	return b.persistSprints(ctx)
}

// TransferItem copies a backlog item into a sprint with status to_do. The
// backlog item stays where it is, and transferring it again produces another
// independent sprint item.
func (b *Board) TransferItem(ctx context.Context, backlogID, itemID, sprintID int64) (models.SprintItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bi, ii, err := b.itemIndex(backlogID, itemID)
	if err != nil {
		return models.SprintItem{}, err
	}
	si, err := b.sprintIndex(sprintID)
	if err != nil {
		return models.SprintItem{}, err
	}
	source := b.backlogs[bi].Items[ii]
	sprint := &b.sprints[si]

	id := nextItemID(sprint.NextItemID, maxSprintItemID(sprint.Items))
	sprint.NextItemID = id + 1

	item := models.SprintItem{
		ID:            id,
		BacklogID:     backlogID,
		BacklogItemID: source.ID,
		Title:         source.Title,
		Description:   source.Description,
		Assignees:     slices.Clone(source.Assignees),
		Status:        models.StatusToDo,
	}
	sprint.Items = append(sprint.Items, item)
	b.logger.Debug("item transferred", "backlog_id", backlogID, "item_id", itemID, "sprint_id", sprintID, "sprint_item_id", id)

	return item.Clone(), b.persistSprints(ctx)
}

func (b *Board) sprintItemIndex(sprintID, itemID int64) (int, int, error) {
	si, err := b.sprintIndex(sprintID)
	if err != nil {
		return -1, -1, err
	}
	for ii := range b.sprints[si].Items {
		if b.sprints[si].Items[ii].ID == itemID {
			return si, ii, nil
		}
	}
	return -1, -1, notFound(KindSprintItem, itemID)
}
