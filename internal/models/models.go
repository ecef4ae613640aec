package models

import "slices"

// Backlog groups work that has not been planned into a sprint yet.
type Backlog struct {
	ID          int64         `json:"id" yaml:"id" toml:"id"`
	Name        string        `json:"name" yaml:"name" toml:"name"`
	Description string        `json:"description" yaml:"description" toml:"description"`
	Items       []BacklogItem `json:"items" yaml:"items" toml:"items"`
	NextItemID  int64         `json:"next_item_id,omitempty" yaml:"next_item_id,omitempty" toml:"next_item_id,omitempty"`
}

// BacklogItem is a single piece of work owned by a backlog.
type BacklogItem struct {
	ID          int64    `json:"id" yaml:"id" toml:"id"`
	Title       string   `json:"title" yaml:"title" toml:"title"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Assignees   []string `json:"assignees" yaml:"assignees" toml:"assignees"`
}

// Sprint is a time box that work gets pulled into.
type Sprint struct {
	ID         int64        `json:"id" yaml:"id" toml:"id"`
	Name       string       `json:"name" yaml:"name" toml:"name"`
	StartDate  Date         `json:"start_date" yaml:"start_date" toml:"start_date"`
	EndDate    Date         `json:"end_date" yaml:"end_date" toml:"end_date"`
	IsActive   bool         `json:"is_active" yaml:"is_active" toml:"is_active"`
	Items      []SprintItem `json:"items" yaml:"items" toml:"items"`
	NextItemID int64        `json:"next_item_id,omitempty" yaml:"next_item_id,omitempty" toml:"next_item_id,omitempty"`
}

// SprintItem is a copy of a backlog item taken at transfer time plus its board status.
// BacklogID and BacklogItemID record where it came from; the copy never follows
// later edits or deletes of the source.
type SprintItem struct {
	ID            int64    `json:"id" yaml:"id" toml:"id"`
	BacklogID     int64    `json:"backlog_id" yaml:"backlog_id" toml:"backlog_id"`
	BacklogItemID int64    `json:"backlog_item_id" yaml:"backlog_item_id" toml:"backlog_item_id"`
	Title         string   `json:"title" yaml:"title" toml:"title"`
	Description   string   `json:"description" yaml:"description" toml:"description"`
	Assignees     []string `json:"assignees" yaml:"assignees" toml:"assignees"`
	Status        Status   `json:"status" yaml:"status" toml:"status"`
}

// Clone returns a deep copy of the backlog.
func (b Backlog) Clone() Backlog {
	out := b
	if b.Items != nil {
		out.Items = make([]BacklogItem, len(b.Items))
		for i, item := range b.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the item.
func (i BacklogItem) Clone() BacklogItem {
	i.Assignees = slices.Clone(i.Assignees)
	return i
}

// Clone returns a deep copy of the sprint.
func (s Sprint) Clone() Sprint {
	out := s
	if s.Items != nil {
		out.Items = make([]SprintItem, len(s.Items))
		for i, item := range s.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the item.
func (i SprintItem) Clone() SprintItem {
	i.Assignees = slices.Clone(i.Assignees)
	return i
}
