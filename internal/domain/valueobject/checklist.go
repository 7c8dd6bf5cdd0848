package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// CheckStatus – immutable value object
// ---------------------------------------------------------------------------

// CheckStatus is the recorded outcome of a single due-diligence check.
type CheckStatus struct {
	value string
}

const (
	checkStatusPass    = "PASS"
	checkStatusFail    = "FAIL"
	checkStatusNA      = "NA"
	checkStatusUnknown = "UNKNOWN"
)

var (
	CheckPass    = CheckStatus{value: checkStatusPass}
	CheckFail    = CheckStatus{value: checkStatusFail}
	CheckNA      = CheckStatus{value: checkStatusNA}
	CheckUnknown = CheckStatus{value: checkStatusUnknown}
)

var validCheckStatuses = map[string]CheckStatus{
	checkStatusPass:    CheckPass,
	checkStatusFail:    CheckFail,
	checkStatusNA:      CheckNA,
	checkStatusUnknown: CheckUnknown,
}

// NewCheckStatus creates a CheckStatus from a raw string.
func NewCheckStatus(s string) (CheckStatus, error) {
	v, ok := validCheckStatuses[s]
	if !ok {
		return CheckStatus{}, fmt.Errorf("invalid check status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CheckStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CheckStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CheckStatus) Equal(other CheckStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Due-diligence checklist
// ---------------------------------------------------------------------------

// ChecklistCategory is one of the six fixed due-diligence categories.
type ChecklistCategory string

const (
	CategoryFinancial   ChecklistCategory = "financial"
	CategoryLegal       ChecklistCategory = "legal"
	CategoryIdentity    ChecklistCategory = "identity"
	CategoryOperational ChecklistCategory = "operational"
	CategoryCollateral  ChecklistCategory = "collateral"
	CategoryShariah     ChecklistCategory = "shariah"
)

// ChecklistCategories lists the fixed categories in review order.
var ChecklistCategories = []ChecklistCategory{
	CategoryFinancial,
	CategoryLegal,
	CategoryIdentity,
	CategoryOperational,
	CategoryCollateral,
	CategoryShariah,
}

// Checklist holds the named checks per category. Checks not present are
// treated as UNKNOWN; an absent category contributes nothing to the score.
type Checklist map[ChecklistCategory]map[string]CheckStatus

// NewChecklist builds the standard checklist with every check set to UNKNOWN.
func NewChecklist() Checklist {
	standard := map[ChecklistCategory][]string{
		CategoryFinancial:   {"financialStatementsReviewed", "bankStatementsVerified", "cashFlowAnalyzed", "debtEquityRatioAcceptable", "profitabilityAcceptable"},
		CategoryLegal:       {"businessRegistrationValid", "licensesVerified", "taxComplianceConfirmed", "regulatoryApprovalsObtained"},
		CategoryIdentity:    {"bvnVerified", "identityDocumentsValid", "backgroundCheckCleared", "ownershipStructureConfirmed"},
		CategoryOperational: {"businessViabilityConfirmed", "industryAnalysisCompleted", "businessModelAssessed", "marketPositionEvaluated"},
		CategoryCollateral:  {"assetValuationCompleted", "titleDocumentsVerified", "insuranceCoverageConfirmed", "legalEncumbrancesChecked"},
		CategoryShariah:     {"businessActivitiesHalal", "noInterestBasedOperations", "noProhibitedSectors"},
	}

	cl := make(Checklist, len(standard))
	for cat, checks := range standard {
		m := make(map[string]CheckStatus, len(checks))
		for _, name := range checks {
			m[name] = CheckUnknown
		}
		cl[cat] = m
	}
	return cl
}

// Set returns a copy of the checklist with one check updated. The receiver
// is never mutated; checklists attached to an evaluation stay stable.
func (c Checklist) Set(category ChecklistCategory, check string, status CheckStatus) Checklist {
	out := make(Checklist, len(c))
	for cat, checks := range c {
		m := make(map[string]CheckStatus, len(checks))
		for name, st := range checks {
			m[name] = st
		}
		out[cat] = m
	}
	if out[category] == nil {
		out[category] = make(map[string]CheckStatus, 1)
	}
	out[category][check] = status
	return out
}

// CompletionScore returns 100 * passed / applicable, where applicable counts
// every check not marked NA across all categories. An empty or fully-NA
// checklist scores 0, never a division by zero.
func (c Checklist) CompletionScore() float64 {
	total := 0
	passed := 0
	for _, checks := range c {
		for _, status := range checks {
			if status.Equal(CheckNA) {
				continue
			}
			total++
			if status.Equal(CheckPass) {
				passed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(passed) / float64(total) * 100
}

// HasFailure reports whether any check in the given category is marked FAIL.
func (c Checklist) HasFailure(category ChecklistCategory) bool {
	for _, status := range c[category] {
		if status.Equal(CheckFail) {
			return true
		}
	}
	return false
}

// AllPassed reports whether every check in the given category is marked PASS.
// An empty category reports false: absence of evidence is not compliance.
func (c Checklist) AllPassed(category ChecklistCategory) bool {
	checks := c[category]
	if len(checks) == 0 {
		return false
	}
	for _, status := range checks {
		if !status.Equal(CheckPass) {
			return false
		}
	}
	return true
}
