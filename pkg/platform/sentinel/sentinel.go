package sentinel

import "errors"

// Sentinel errors for store facts. Stores return these (optionally wrapped) so
// services can translate them into coded domain errors.
//
// These describe the state of a resource, not validation failures:
//   - ErrNotFound: no record has the requested identifier
//   - ErrAlreadyUsed: a unique value (e.g. a country name) is already taken
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
)
