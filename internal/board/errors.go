package board

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrPersistence is matched by every PersistenceError.
	ErrPersistence = errors.New("persistence failure")
	// ErrInvalidStatus is returned for a status outside the board columns.
	ErrInvalidStatus = errors.New("invalid status")
)

// Entity kinds reported by NotFoundError.
const (
	KindBacklog     = "backlog"
	KindBacklogItem = "backlog item"
	KindSprint      = "sprint"
	KindSprintItem  = "sprint item"
)

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notFound(kind string, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// PersistenceError reports a failed read or write against the blob store.
// A failed write leaves the in-memory change in place.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}
