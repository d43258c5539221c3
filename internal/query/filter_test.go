package query

import (
	"testing"

	"github.com/mvilaseca/eduplan/internal/domain"
	"github.com/mvilaseca/eduplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []*domain.Activity {
	return []*domain.Activity{
		testutil.NewTestActivity("Mercat de tardor",
			testutil.WithGrade(domain.Grade3),
			testutil.WithYear("2024-2025"),
			testutil.WithTags("càlcul", "sortida"),
			testutil.WithLinks("mat-ce1"),
		),
		testutil.NewTestActivity("Herbari digital",
			testutil.WithGrade(domain.Grade1),
			testutil.WithYear("2024-2025"),
			testutil.WithDescription("Recollim fulles i les classifiquem."),
			testutil.WithLinks("med-ce1"),
		),
		testutil.NewTestActivity("Fraccions amb plastilina",
			testutil.WithGrade(domain.Grade3),
			testutil.WithYear("2023-2024"),
			testutil.WithLinks("mat-ce2"),
		),
	}
}

func TestFilterActivities_EmptyFilterPassesAll(t *testing.T) {
	c := testutil.NewTestCatalog()
	out := FilterActivities(sample(), ActivityFilter{}, c)
	assert.Len(t, out, 3)
}

func TestFilterActivities_TextMatchesTitleDescriptionTags(t *testing.T) {
	c := testutil.NewTestCatalog()

	byTitle := FilterActivities(sample(), ActivityFilter{Text: "mercat"}, c)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Mercat de tardor", byTitle[0].Title)

	byDesc := FilterActivities(sample(), ActivityFilter{Text: "FULLES"}, c)
	require.Len(t, byDesc, 1)
	assert.Equal(t, "Herbari digital", byDesc[0].Title)

	byTag := FilterActivities(sample(), ActivityFilter{Text: "sortida"}, c)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Mercat de tardor", byTag[0].Title)
}

func TestFilterActivities_FacetsAreANDed(t *testing.T) {
	c := testutil.NewTestCatalog()

	out := FilterActivities(sample(), ActivityFilter{
		Grade: domain.Grade3,
		Year:  "2024-2025",
	}, c)
	require.Len(t, out, 1)
	assert.Equal(t, "Mercat de tardor", out[0].Title)
}

func TestFilterActivities_AreaResolvesThroughCatalog(t *testing.T) {
	c := testutil.NewTestCatalog()

	out := FilterActivities(sample(), ActivityFilter{Area: "Matemàtiques"}, c)
	require.Len(t, out, 2)
	// Input order preserved.
	assert.Equal(t, "Mercat de tardor", out[0].Title)
	assert.Equal(t, "Fraccions amb plastilina", out[1].Title)
}

func TestFilterActivities_StableOrder(t *testing.T) {
	c := testutil.NewTestCatalog()
	in := sample()

	out := FilterActivities(in, ActivityFilter{Year: "2024-2025"}, c)
	require.Len(t, out, 2)
	assert.Same(t, in[0], out[0])
	assert.Same(t, in[1], out[1])
}

func TestFilterCurriculum_DelegatesSearchGate(t *testing.T) {
	c := testutil.NewTestCatalog()

	// Both filters empty: search mode is off.
	assert.Nil(t, FilterCurriculum(c, CurriculumFilter{}))

	out := FilterCurriculum(c, CurriculumFilter{Text: "geometria"})
	require.Len(t, out, 1)
	assert.Equal(t, "mat-ce2", out[0].ID)
}
