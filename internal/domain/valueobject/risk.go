package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// RiskTier – immutable value object
// ---------------------------------------------------------------------------

// RiskTier buckets a scored applicant into low, medium, or high risk.
type RiskTier struct {
	value string
}

const (
	riskTierLow    = "LOW"
	riskTierMedium = "MEDIUM"
	riskTierHigh   = "HIGH"
)

var (
	RiskTierLow    = RiskTier{value: riskTierLow}
	RiskTierMedium = RiskTier{value: riskTierMedium}
	RiskTierHigh   = RiskTier{value: riskTierHigh}
)

var validRiskTiers = map[string]RiskTier{
	riskTierLow:    RiskTierLow,
	riskTierMedium: RiskTierMedium,
	riskTierHigh:   RiskTierHigh,
}

// NewRiskTier creates a RiskTier from a raw string.
func NewRiskTier(s string) (RiskTier, error) {
	v, ok := validRiskTiers[s]
	if !ok {
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
	return v, nil
}

// String returns the string representation of the tier.
func (r RiskTier) String() string { return r.value }

// IsZero returns true if the tier has not been initialised.
func (r RiskTier) IsZero() bool { return r.value == "" }

// Equal returns true when both tiers carry the same value.
func (r RiskTier) Equal(other RiskTier) bool { return r.value == other.value }

// ---------------------------------------------------------------------------
// Decision – immutable value object
// ---------------------------------------------------------------------------

// Decision is the underwriting recommendation outcome.
type Decision struct {
	value string
}

const (
	decisionApprove            = "APPROVE"
	decisionConditionalApprove = "CONDITIONAL_APPROVE"
	decisionRequestInfo        = "REQUEST_INFO"
	decisionReject             = "REJECT"
)

var (
	DecisionApprove            = Decision{value: decisionApprove}
	DecisionConditionalApprove = Decision{value: decisionConditionalApprove}
	DecisionRequestInfo        = Decision{value: decisionRequestInfo}
	DecisionReject             = Decision{value: decisionReject}
)

var validDecisions = map[string]Decision{
	decisionApprove:            DecisionApprove,
	decisionConditionalApprove: DecisionConditionalApprove,
	decisionRequestInfo:        DecisionRequestInfo,
	decisionReject:             DecisionReject,
}

// NewDecision creates a Decision from a raw string.
func NewDecision(s string) (Decision, error) {
	v, ok := validDecisions[s]
	if !ok {
		return Decision{}, fmt.Errorf("invalid decision: %q", s)
	}
	return v, nil
}

// String returns the string representation of the decision.
func (d Decision) String() string { return d.value }

// IsZero returns true if the decision has not been initialised.
func (d Decision) IsZero() bool { return d.value == "" }

// Equal returns true when both decisions carry the same value.
func (d Decision) Equal(other Decision) bool { return d.value == other.value }

// IsApproval reports whether the decision permits the financing to proceed.
func (d Decision) IsApproval() bool {
	return d.value == decisionApprove || d.value == decisionConditionalApprove
}
