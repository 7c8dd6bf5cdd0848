package valueobject

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition is returned by aggregate transitions invoked in
// the wrong status.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// ---------------------------------------------------------------------------
// EvaluationStatus – immutable value object
// ---------------------------------------------------------------------------

// EvaluationStatus tracks where an evaluation is in its lifecycle. PENDING
// evaluations have inputs but no computed decision yet; EVALUATED ones carry
// a full ratios/risk/recommendation result and may be recomputed any number
// of times.
type EvaluationStatus struct {
	value string
}

const (
	evaluationStatusPending   = "PENDING"
	evaluationStatusEvaluated = "EVALUATED"
)

var (
	EvaluationStatusPending   = EvaluationStatus{value: evaluationStatusPending}
	EvaluationStatusEvaluated = EvaluationStatus{value: evaluationStatusEvaluated}
)

var validEvaluationStatuses = map[string]EvaluationStatus{
	evaluationStatusPending:   EvaluationStatusPending,
	evaluationStatusEvaluated: EvaluationStatusEvaluated,
}

// NewEvaluationStatus creates an EvaluationStatus from a raw string.
func NewEvaluationStatus(s string) (EvaluationStatus, error) {
	v, ok := validEvaluationStatuses[s]
	if !ok {
		return EvaluationStatus{}, fmt.Errorf("invalid evaluation status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s EvaluationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s EvaluationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s EvaluationStatus) Equal(other EvaluationStatus) bool { return s.value == other.value }
