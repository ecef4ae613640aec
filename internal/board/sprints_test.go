package board_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintboard/internal/board"
	"sprintboard/internal/models"
	"sprintboard/internal/storage/memory"
)

func setupTransfer(t *testing.T) (*board.Board, models.Backlog, models.BacklogItem, models.Sprint) {
	t.Helper()
	ctx := context.Background()
	b, _ := newTestBoard(t)

	backlog, err := b.CreateBacklog(ctx, "Auth", "")
	require.NoError(t, err)
	item, err := b.AddItem(ctx, backlog.ID, "Login page", "email + password", []string{"alice", "bob"})
	require.NoError(t, err)
	sprint, err := b.CreateSprint(ctx, "S1", models.NewDate(2025, time.March, 1), models.NewDate(2025, time.March, 14))
	require.NoError(t, err)
	return b, backlog, item, sprint
}

func TestTransferCopiesItem(t *testing.T) {
	ctx := context.Background()
	b, backlog, item, sprint := setupTransfer(t)

	copied, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SprintItem{
		ID:            1,
		BacklogID:     backlog.ID,
		BacklogItemID: item.ID,
		Title:         item.Title,
		Description:   item.Description,
		Assignees:     item.Assignees,
		Status:        models.StatusToDo,
	}, copied)

	source, err := b.GetItem(ctx, backlog.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, source)
}

func TestTransferIsIndependentOfSource(t *testing.T) {
	ctx := context.Background()
	b, backlog, item, sprint := setupTransfer(t)

	_, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
	require.NoError(t, err)

	_, err = b.UpdateItem(ctx, backlog.ID, item.ID, "Renamed", "", []string{"zoe"})
	require.NoError(t, err)
	require.NoError(t, b.DeleteItem(ctx, backlog.ID, item.ID))

	got, err := b.GetSprint(ctx, sprint.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Login page", got.Items[0].Title)
	assert.Equal(t, []string{"alice", "bob"}, got.Items[0].Assignees)
}

func TestTransferAllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	b, backlog, item, sprint := setupTransfer(t)

	first, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
	require.NoError(t, err)
	second, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = b.UpdateItemStatus(ctx, sprint.ID, second.ID, models.StatusDone)
	require.NoError(t, err)

	got, err := b.GetSprint(ctx, sprint.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, models.StatusToDo, got.Items[0].Status)
	assert.Equal(t, models.StatusDone, got.Items[1].Status)
}

func TestTransferMissingEntities(t *testing.T) {
	ctx := context.Background()
	b, backlog, item, sprint := setupTransfer(t)

	tests := []struct {
		name                        string
		backlogID, itemID, sprintID int64
		kind                        string
	}{
		{"missing backlog", 99, item.ID, sprint.ID, board.KindBacklog},
		{"missing item", backlog.ID, 99, sprint.ID, board.KindBacklogItem},
		{"missing sprint", backlog.ID, item.ID, 99, board.KindSprint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.TransferItem(ctx, tt.backlogID, tt.itemID, tt.sprintID)
			var nf *board.NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tt.kind, nf.Kind)
		})
	}

	got, err := b.GetSprint(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestStatusTransitionsAreUnrestricted(t *testing.T) {
	ctx := context.Background()
	b, backlog, item, sprint := setupTransfer(t)
	copied, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
	require.NoError(t, err)

	for _, from := range models.Statuses {
		for _, to := range models.Statuses {
			_, err := b.UpdateItemStatus(ctx, sprint.ID, copied.ID, from)
			require.NoError(t, err)

			moved, err := b.UpdateItemStatus(ctx, sprint.ID, copied.ID, to)
			require.NoError(t, err)
			assert.Equal(t, to, moved.Status, "%s -> %s", from, to)
		}
	}

	_, err = b.UpdateItemStatus(ctx, sprint.ID, 99, models.StatusDone)
	assert.EqualError(t, err, "sprint item 99 not found")
	_, err = b.UpdateItemStatus(ctx, 99, copied.ID, models.StatusDone)
	assert.EqualError(t, err, "sprint 99 not found")
}

func TestUpdateItemStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	b, backlog, item, sprint := setupTransfer(t)
	copied, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
	require.NoError(t, err)

	_, err = b.UpdateItemStatus(ctx, sprint.ID, copied.ID, models.Status("blocked"))
	assert.ErrorIs(t, err, board.ErrInvalidStatus)

	got, err := b.GetSprint(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusToDo, got.Items[0].Status)
}

func TestTransferKeepsStoredAssigneesVerbatim(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(ctx, board.KeyBacklogs,
		[]byte(`[{"id":1,"name":"Auth","description":"","items":[{"id":1,"title":"Login","description":"","assignees":["alice","","alice"]}]}]`)))
	require.NoError(t, store.Put(ctx, board.KeySprints, []byte(`[]`)))
	b, err := board.Open(ctx, store, nil)
	require.NoError(t, err)
	sprint, err := b.CreateSprint(ctx, "S1", models.Date{}, models.Date{})
	require.NoError(t, err)

	copied, err := b.TransferItem(ctx, 1, 1, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "", "alice"}, copied.Assignees)
}

func TestToggleActiveHasNoExclusivity(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestBoard(t)
	one, err := b.CreateSprint(ctx, "one", models.Date{}, models.Date{})
	require.NoError(t, err)
	two, err := b.CreateSprint(ctx, "two", models.Date{}, models.Date{})
	require.NoError(t, err)

	got, err := b.ToggleActive(ctx, one.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	got, err = b.ToggleActive(ctx, two.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	assert.Len(t, b.ActiveSprints(ctx), 2)

	got, err = b.ToggleActive(ctx, one.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	active := b.ActiveSprints(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, two.ID, active[0].ID)

	_, err = b.ToggleActive(ctx, 99)
	assert.ErrorIs(t, err, board.ErrNotFound)
}

func TestUpdateSprint(t *testing.T) {
	ctx := context.Background()
	b, _, _, sprint := setupTransfer(t)

	updated, err := b.UpdateSprint(ctx, sprint.ID, "S1b", models.NewDate(2025, time.March, 3), models.NewDate(2025, time.March, 17))
	require.NoError(t, err)
	assert.Equal(t, "S1b", updated.Name)
	assert.Equal(t, "2025-03-03", updated.StartDate.String())
	assert.Equal(t, "2025-03-17", updated.EndDate.String())
}

func TestRemoveSprintItem(t *testing.T) {
	ctx := context.Background()
	b, backlog, item, sprint := setupTransfer(t)
	copied, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
	require.NoError(t, err)

	require.NoError(t, b.RemoveItem(ctx, sprint.ID, copied.ID))
	require.NoError(t, b.RemoveItem(ctx, sprint.ID, copied.ID))

	got, err := b.GetSprint(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)

	again, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ID)

	assert.ErrorIs(t, b.RemoveItem(ctx, 99, copied.ID), board.ErrNotFound)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	b, backlog, item, sprint := setupTransfer(t)

	empty, err := b.Summary(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0, empty.PercentDone)
	assert.Equal(t, 14, empty.DurationDays)

	for i := 0; i < 4; i++ {
		_, err := b.TransferItem(ctx, backlog.ID, item.ID, sprint.ID)
		require.NoError(t, err)
	}
	_, err = b.UpdateItemStatus(ctx, sprint.ID, 1, models.StatusDone)
	require.NoError(t, err)
	_, err = b.UpdateItemStatus(ctx, sprint.ID, 2, models.StatusInProgress)
	require.NoError(t, err)

	summary, err := b.Summary(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, map[models.Status]int{
		models.StatusToDo:       2,
		models.StatusInProgress: 1,
		models.StatusDone:       1,
	}, summary.ByStatus)
	assert.Equal(t, 25, summary.PercentDone)

	_, err = b.Summary(ctx, 99)
	assert.ErrorIs(t, err, board.ErrNotFound)
}
