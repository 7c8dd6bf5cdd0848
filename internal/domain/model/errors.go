package model

import (
	"errors"
)

// Sentinel errors for calculator input handling. Callers test with errors.Is.
var (
	// ErrInvalidInput marks structurally bad terms: negative money, a
	// percentage outside [0, 100], a share pair not summing to 100, or a
	// missing required field. The caller must fix the input and retry.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStateInconsistency marks progress counters that contradict the
	// contract, e.g. settling more installments than exist or recording
	// more delivered quantity than was contracted. Never silently clamped.
	ErrStateInconsistency = errors.New("state inconsistency")

	// ErrNotFound marks a lookup for an evaluation that does not exist.
	// Repositories wrap it so use cases can branch with errors.Is.
	ErrNotFound = errors.New("not found")
)

// Warning is a non-fatal advisory returned alongside a computed result, such
// as a Salam advance payment below the full delivery value. Warnings never
// abort a calculation.
type Warning string
