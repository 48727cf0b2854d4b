package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a lookup for a row that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoActiveEntry reports a stop with no running timer entry.
	ErrNoActiveEntry = errors.New("no active entry")
	// ErrEntryRunning reports a start while a timer entry is already open.
	ErrEntryRunning = errors.New("an entry is already running")
)

// OpError annotates a storage failure with the operation and resource.
type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapEntryErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "entry", ID: id, Err: err}
}

func wrapProjectErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "project", ID: id, Err: err}
}

func wrapClientErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "client", ID: id, Err: err}
}
