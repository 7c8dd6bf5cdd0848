package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// ContractType – immutable value object
// ---------------------------------------------------------------------------

// ContractType identifies one of the five Islamic financing archetypes
// supported by the contract engine.
type ContractType struct {
	value string
}

const (
	contractTypeMurabaha   = "MURABAHA"   // cost-plus sale
	contractTypeMudarabah  = "MUDARABAH"  // silent partnership
	contractTypeMusharakah = "MUSHARAKAH" // joint venture
	contractTypeIjarah     = "IJARAH"     // lease
	contractTypeSalam      = "SALAM"      // forward sale
)

var (
	ContractTypeMurabaha   = ContractType{value: contractTypeMurabaha}
	ContractTypeMudarabah  = ContractType{value: contractTypeMudarabah}
	ContractTypeMusharakah = ContractType{value: contractTypeMusharakah}
	ContractTypeIjarah     = ContractType{value: contractTypeIjarah}
	ContractTypeSalam      = ContractType{value: contractTypeSalam}
)

var validContractTypes = map[string]ContractType{
	contractTypeMurabaha:   ContractTypeMurabaha,
	contractTypeMudarabah:  ContractTypeMudarabah,
	contractTypeMusharakah: ContractTypeMusharakah,
	contractTypeIjarah:     ContractTypeIjarah,
	contractTypeSalam:      ContractTypeSalam,
}

// NewContractType creates a ContractType from a raw string.
func NewContractType(s string) (ContractType, error) {
	v, ok := validContractTypes[s]
	if !ok {
		return ContractType{}, fmt.Errorf("invalid contract type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the contract type.
func (t ContractType) String() string { return t.value }

// IsZero returns true if the contract type has not been initialised.
func (t ContractType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t ContractType) Equal(other ContractType) bool { return t.value == other.value }

// IsPartnership reports whether the archetype distributes profit and loss
// between two parties rather than producing a payment schedule.
func (t ContractType) IsPartnership() bool {
	return t.value == contractTypeMudarabah || t.value == contractTypeMusharakah
}

// ---------------------------------------------------------------------------
// InstallmentFrequency – immutable value object
// ---------------------------------------------------------------------------

// InstallmentFrequency is the cadence at which scheduled payments fall due.
type InstallmentFrequency struct {
	value  string
	months int
}

var (
	FrequencyMonthly    = InstallmentFrequency{value: "MONTHLY", months: 1}
	FrequencyQuarterly  = InstallmentFrequency{value: "QUARTERLY", months: 3}
	FrequencySemiAnnual = InstallmentFrequency{value: "SEMI_ANNUAL", months: 6}
	FrequencyAnnual     = InstallmentFrequency{value: "ANNUAL", months: 12}
)

var validFrequencies = map[string]InstallmentFrequency{
	"MONTHLY":     FrequencyMonthly,
	"QUARTERLY":   FrequencyQuarterly,
	"SEMI_ANNUAL": FrequencySemiAnnual,
	"ANNUAL":      FrequencyAnnual,
}

// NewInstallmentFrequency creates an InstallmentFrequency from a raw string.
func NewInstallmentFrequency(s string) (InstallmentFrequency, error) {
	v, ok := validFrequencies[s]
	if !ok {
		return InstallmentFrequency{}, fmt.Errorf("invalid installment frequency: %q", s)
	}
	return v, nil
}

// MonthsPerPeriod returns the number of months between consecutive due dates.
func (f InstallmentFrequency) MonthsPerPeriod() int { return f.months }

// String returns the string representation of the frequency.
func (f InstallmentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f InstallmentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f InstallmentFrequency) Equal(other InstallmentFrequency) bool {
	return f.value == other.value
}
