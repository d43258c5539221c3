package linkage

import (
	"testing"

	"github.com/mvilaseca/eduplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The test catalog shares criterion "1.2 Explica l'estratègia de
// càlcul." between mat-ce1 and mat-ce2, which exercises the cascade
// exclusivity rule.

func TestEngine_ToggleCurriculumLink_AddsWithoutCriteria(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	a := testutil.NewTestActivity("Mercat de tardor")

	updated := e.ToggleCurriculumLink(a, "mat-ce1")

	assert.Equal(t, []string{"mat-ce1"}, updated.CurriculumIDs)
	assert.Empty(t, updated.Criteria)
	// The input activity is untouched.
	assert.Empty(t, a.CurriculumIDs)
}

func TestEngine_ToggleCurriculumLink_UnlinkCascadesExclusiveCriteria(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	a := testutil.NewTestActivity("Mercat de tardor",
		testutil.WithLinks("mat-ce1", "mat-ce2"),
		testutil.WithCriteria(
			"1.1 Resol problemes de suma i resta.",
			"1.2 Explica l'estratègia de càlcul.",
			"2.1 Identifica polígons.",
		),
	)

	updated := e.ToggleCurriculumLink(a, "mat-ce1")

	assert.Equal(t, []string{"mat-ce2"}, updated.CurriculumIDs)
	// 1.1 was exclusive to mat-ce1 and cascades away; 1.2 survives
	// because mat-ce2 also lists it.
	assert.Equal(t, []string{
		"1.2 Explica l'estratègia de càlcul.",
		"2.1 Identifica polígons.",
	}, updated.Criteria)
}

func TestEngine_ToggleCriterion_SelectAndDeselect(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	a := testutil.NewTestActivity("Mercat de tardor", testutil.WithLinks("mat-ce1"))

	updated, err := e.ToggleCriterion(a, "1.1 Resol problemes de suma i resta.")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.1 Resol problemes de suma i resta."}, updated.Criteria)

	updated, err = e.ToggleCriterion(updated, "1.1 Resol problemes de suma i resta.")
	require.NoError(t, err)
	assert.Empty(t, updated.Criteria)
}

func TestEngine_ToggleCriterion_OrphanSelectionFails(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	a := testutil.NewTestActivity("Mercat de tardor", testutil.WithLinks("mat-ce1"))

	_, err := e.ToggleCriterion(a, "2.1 Identifica polígons.")
	assert.ErrorIs(t, err, ErrCriterionNotLinked)
}

func TestEngine_ToggleCriterion_DeselectAlwaysAllowed(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	// The stored selection references an item that is no longer linked.
	a := testutil.NewTestActivity("Mercat de tardor",
		testutil.WithCriteria("2.1 Identifica polígons."))

	updated, err := e.ToggleCriterion(a, "2.1 Identifica polígons.")
	require.NoError(t, err)
	assert.Empty(t, updated.Criteria)
}

func TestEngine_ApplySuggestedLinks_IdempotentUnion(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	a := testutil.NewTestActivity("Mercat de tardor",
		testutil.WithLinks("mat-ce1"),
		testutil.WithCriteria("1.1 Resol problemes de suma i resta."),
	)

	updated := e.ApplySuggestedLinks(a, []string{"mat-ce1", "med-ce1", "fantasma"})

	assert.Equal(t, []string{"mat-ce1", "med-ce1"}, updated.CurriculumIDs)
	// Criteria are never touched by suggestions.
	assert.Equal(t, []string{"1.1 Resol problemes de suma i resta."}, updated.Criteria)

	// Re-applying the same suggestion changes nothing.
	again := e.ApplySuggestedLinks(updated, []string{"mat-ce1", "med-ce1"})
	assert.Equal(t, updated.CurriculumIDs, again.CurriculumIDs)
}

func TestEngine_Validate_CollectsAllViolations(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	a := testutil.NewTestActivity("",
		testutil.WithLinks("mat-ce1", "mat-ce1", "fantasma"),
		testutil.WithCriteria("2.1 Identifica polígons."),
	)
	a.Grade = ""
	a.Term = 0
	a.AcademicYear = ""

	errs := e.Validate(a)

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	joined := ""
	for _, m := range msgs {
		joined += m + "\n"
	}

	assert.Len(t, errs, 7)
	assert.Contains(t, joined, "title is required")
	assert.Contains(t, joined, "grade is required")
	assert.Contains(t, joined, "term is required")
	assert.Contains(t, joined, "academic year is required")
	assert.Contains(t, joined, "linked more than once")
	assert.Contains(t, joined, "does not exist in the catalog")
	assert.Contains(t, joined, "does not belong to any linked curriculum item")
}

func TestEngine_Validate_OrphanCriterionWithoutLinks(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	a := testutil.NewTestActivity("Sortida",
		testutil.WithCriteria("1.1 Resol problemes de suma i resta."))

	errs := e.Validate(a)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "does not belong to any linked curriculum item")
}

func TestEngine_Validate_OK(t *testing.T) {
	e := NewEngine(testutil.NewTestCatalog())
	a := testutil.NewTestActivity("Sortida al riu",
		testutil.WithLinks("med-ce1"),
		testutil.WithCriteria("1.1 Classifica animals i plantes."),
	)

	assert.Empty(t, e.Validate(a))
}
