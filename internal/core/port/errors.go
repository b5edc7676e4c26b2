package port

import "errors"

// Sentinel errors shared by use cases and adapters. Wrap them with
// fmt.Errorf("%w: ...") to add detail and test with errors.Is.
var (
	// ErrValidation marks caller input rejected before storage is touched.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup or update that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness or state conflict.
	ErrConflict = errors.New("conflict")
)
