package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that no active record has the requested id.
	ErrNotFound = errors.New("item not found")
	// ErrDuplicate reports a uniqueness violation on an active URL.
	ErrDuplicate = errors.New("url already exists")
	// ErrForeignKey reports a status row referencing a URL that does not exist.
	ErrForeignKey = errors.New("referenced url does not exist")
)

// StoreError is a transient infrastructure failure. The whole operation
// that produced it may be retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// AsStoreError wraps err into a *StoreError unless it is nil, one of the
// terminal sentinels, or already a *StoreError.
func AsStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) || errors.Is(err, ErrForeignKey) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
