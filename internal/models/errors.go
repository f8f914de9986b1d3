package models

import "fmt"

// ValidationError reports malformed or missing input. It is recovered at the
// boundary; the core never retries.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a reference to an item the catalog does not know.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// StorageError wraps a persistence failure. The cart is left untouched when
// one is returned from checkout, so the caller can retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
