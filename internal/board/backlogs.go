package board

import (
	"context"

	"sprintboard/internal/models"
)

// ListBacklogs returns a copy of every backlog in creation order.
func (b *Board) ListBacklogs(ctx context.Context) []models.Backlog {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Backlog, len(b.backlogs))
	for i, backlog := range b.backlogs {
		out[i] = backlog.Clone()
	}
	return out
}

// GetBacklog returns a copy of one backlog.
func (b *Board) GetBacklog(ctx context.Context, id int64) (models.Backlog, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.backlogIndex(id)
	if err != nil {
		return models.Backlog{}, err
	}
	return b.backlogs[idx].Clone(), nil
}

// CreateBacklog appends a backlog with the next free id. Names are not
// validated here; an empty name is accepted.
//
// On a PersistenceError the backlog still exists in memory and is returned.
func (b *Board) CreateBacklog(ctx context.Context, name, description string) (models.Backlog, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	backlog := models.Backlog{
		ID:          nextID(b.backlogs, func(bl models.Backlog) int64 { return bl.ID }),
		Name:        name,
		Description: description,
		Items:       []models.BacklogItem{},
		NextItemID:  1,
	}
	b.backlogs = append(b.backlogs, backlog)
	b.logger.Debug("backlog created", "backlog_id", backlog.ID)

	return backlog.Clone(), b.persistBacklogs(ctx)
}

// UpdateBacklog replaces the name and description of a backlog.
func (b *Board) UpdateBacklog(ctx context.Context, id int64, name, description string) (models.Backlog, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.backlogIndex(id)
	if err != nil {
		return models.Backlog{}, err
	}
	b.backlogs[idx].Name = name
	b.backlogs[idx].Description = description
	b.logger.Debug("backlog updated", "backlog_id", id)

	return b.backlogs[idx].Clone(), b.persistBacklogs(ctx)
}

// GetItem returns a copy of one backlog item.
func (b *Board) GetItem(ctx context.Context, backlogID, itemID int64) (models.BacklogItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bi, ii, err := b.itemIndex(backlogID, itemID)
	if err != nil {
		return models.BacklogItem{}, err
	}
	return b.backlogs[bi].Items[ii].Clone(), nil
}

// AddItem appends a new item to a backlog. Item ids come from the backlog's
// own counter and are never reused after a delete.
func (b *Board) AddItem(ctx context.Context, backlogID int64, title, description string, assignees []string) (models.BacklogItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.backlogIndex(backlogID)
	if err != nil {
		return models.BacklogItem{}, err
	}
	backlog := &b.backlogs[idx]

	id := nextItemID(backlog.NextItemID, maxBacklogItemID(backlog.Items))
	backlog.NextItemID = id + 1

	item := models.BacklogItem{
		ID:          id,
		Title:       title,
		Description: description,
		Assignees:   normalizeAssignees(assignees),
	}
	backlog.Items = append(backlog.Items, item)
	b.logger.Debug("backlog item added", "backlog_id", backlogID, "item_id", id)

	return item.Clone(), b.persistBacklogs(ctx)
}

// UpdateItem replaces the fields of a backlog item. Sprint items copied from
// it earlier are not touched.
func (b *Board) UpdateItem(ctx context.Context, backlogID, itemID int64, title, description string, assignees []string) (models.BacklogItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bi, ii, err := b.itemIndex(backlogID, itemID)
	if err != nil {
		return models.BacklogItem{}, err
	}
	item := &b.backlogs[bi].Items[ii]
	item.Title = title
	item.Description = description
	item.Assignees = normalizeAssignees(assignees)
	b.logger.Debug("backlog item updated", "backlog_id", backlogID, "item_id", itemID)

	return item.Clone(), b.persistBacklogs(ctx)
}

// DeleteItem removes an item from its backlog. Deleting an item that is
// already gone is not an error; a missing backlog is.
func (b *Board) DeleteItem(ctx context.Context, backlogID, itemID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, err := b.backlogIndex(backlogID)
	if err != nil {
		return err
	}
	backlog := &b.backlogs[idx]

	kept := backlog.Items[:0]
	removed := false
	for _, item := range backlog.Items {
		if item.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return b.flush(ctx)
	}
	backlog.Items = kept
	b.logger.Debug("backlog item deleted", "backlog_id", backlogID, "item_id", itemID)

	return b.persistBacklogs(ctx)
}

func (b *Board) itemIndex(backlogID, itemID int64) (int, int, error) {
	bi, err := b.backlogIndex(backlogID)
	if err != nil {
		return -1, -1, err
	}
	for ii := range b.backlogs[bi].Items {
		if b.backlogs[bi].Items[ii].ID == itemID {
			return bi, ii, nil
		}
	}
	return -1, -1, notFound(KindBacklogItem, itemID)
}
