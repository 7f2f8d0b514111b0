package contract

import "errors"

var (
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("record violates a unique constraint")
	// ErrReferenced is returned when a write violates a foreign key.
	ErrReferenced = errors.New("record is referenced by or references a missing record")
)
