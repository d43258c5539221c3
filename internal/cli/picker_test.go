package cli

import (
	"testing"

	"github.com/mvilaseca/eduplan/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDiffToggles_ScopedToArea(t *testing.T) {
	c := testutil.NewTestCatalog()
	a := testutil.NewTestActivity("Mercat", testutil.WithLinks("mat-ce1", "mat-ce2", "med-ce1"))

	// Deselecting everything in the area leaves other areas' links alone.
	toggles := diffToggles(a, "Matemàtiques", "", nil, c)
	assert.ElementsMatch(t, []string{"mat-ce1", "mat-ce2"}, toggles)
}

func TestDiffToggles_ScopedToCompetency(t *testing.T) {
	c := testutil.NewTestCatalog()
	a := testutil.NewTestActivity("Mercat", testutil.WithLinks("mat-ce1", "mat-ce2"))

	// With a competency chosen, links under other codes of the same area
	// are out of scope and must not be unlinked.
	toggles := diffToggles(a, "Matemàtiques", "CE1", nil, c)
	assert.Equal(t, []string{"mat-ce1"}, toggles)
}

func TestDiffToggles_AddsNewSelections(t *testing.T) {
	c := testutil.NewTestCatalog()
	a := testutil.NewTestActivity("Mercat", testutil.WithLinks("med-ce1"))

	toggles := diffToggles(a, "Matemàtiques", "CE2", []string{"mat-ce2"}, c)
	assert.Equal(t, []string{"mat-ce2"}, toggles)
}

func TestDiffToggles_NoChanges(t *testing.T) {
	c := testutil.NewTestCatalog()
	a := testutil.NewTestActivity("Mercat", testutil.WithLinks("mat-ce1"))

	toggles := diffToggles(a, "Matemàtiques", "CE1", []string{"mat-ce1"}, c)
	assert.Empty(t, toggles)
}
