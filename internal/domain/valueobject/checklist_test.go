package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChecklist_CoversAllCategories(t *testing.T) {
	cl := NewChecklist()

	require.Len(t, cl, len(ChecklistCategories))
	for _, cat := range ChecklistCategories {
		assert.NotEmpty(t, cl[cat], "category %s has no checks", cat)
		for name, status := range cl[cat] {
			assert.True(t, status.Equal(CheckUnknown), "check %s/%s not UNKNOWN", cat, name)
		}
	}

	// The Shariah gate checks must exist under their exact names.
	for _, name := range []string{"businessActivitiesHalal", "noInterestBasedOperations", "noProhibitedSectors"} {
		_, ok := cl[CategoryShariah][name]
		assert.True(t, ok, "missing shariah check %s", name)
	}
}

func TestChecklistSet_DoesNotMutateReceiver(t *testing.T) {
	original := NewChecklist()
	updated := original.Set(CategoryFinancial, "cashFlowAnalyzed", CheckPass)

	assert.True(t, original[CategoryFinancial]["cashFlowAnalyzed"].Equal(CheckUnknown))
	assert.True(t, updated[CategoryFinancial]["cashFlowAnalyzed"].Equal(CheckPass))
}

func TestChecklistCompletionScore(t *testing.T) {
	t.Run("empty checklist scores zero", func(t *testing.T) {
		assert.InDelta(t, 0, Checklist{}.CompletionScore(), 0.001)
	})

	t.Run("all NA scores zero without dividing by zero", func(t *testing.T) {
		cl := Checklist{CategoryFinancial: {"a": CheckNA, "b": CheckNA}}
		assert.InDelta(t, 0, cl.CompletionScore(), 0.001)
	})

	t.Run("NA items drop out of the denominator", func(t *testing.T) {
		cl := Checklist{CategoryFinancial: {
			"a": CheckPass,
			"b": CheckFail,
			"c": CheckNA,
			"d": CheckPass,
		}}
		// 2 passed of 3 applicable.
		assert.InDelta(t, 66.666, cl.CompletionScore(), 0.01)
	})

	t.Run("unknown counts as applicable but not passed", func(t *testing.T) {
		cl := Checklist{CategoryLegal: {"a": CheckPass, "b": CheckUnknown}}
		assert.InDelta(t, 50, cl.CompletionScore(), 0.001)
	})
}

func TestChecklistHasFailure(t *testing.T) {
	cl := NewChecklist().Set(CategoryShariah, "noProhibitedSectors", CheckFail)

	assert.True(t, cl.HasFailure(CategoryShariah))
	assert.False(t, cl.HasFailure(CategoryLegal))
}

func TestChecklistAllPassed(t *testing.T) {
	cl := NewChecklist()
	for _, name := range []string{"businessActivitiesHalal", "noInterestBasedOperations", "noProhibitedSectors"} {
		cl = cl.Set(CategoryShariah, name, CheckPass)
	}

	assert.True(t, cl.AllPassed(CategoryShariah))
	assert.False(t, cl.AllPassed(CategoryFinancial))
	assert.False(t, Checklist{}.AllPassed(CategoryShariah), "empty category is not compliance")
}
