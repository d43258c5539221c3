package catalog

import (
	"testing"

	"github.com/mvilaseca/eduplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []domain.CurriculumItem {
	return []domain.CurriculumItem{
		{
			ID: "mat-ce1", Area: "Matemàtiques", CompetencyCode: "CE1",
			Saber: "Numeració i càlcul", Description: "Resoldre problemes amb nombres naturals.",
			PlannedGrades: "",
			Criteria:      []string{"1.1 Resol problemes.", "1.2 Explica estratègies."},
		},
		{
			ID: "mat-ce1b", Area: "Matemàtiques", CompetencyCode: "CE1",
			Saber: "Numeració i càlcul", Description: "Operar amb fraccions senzilles.",
			PlannedGrades: "Cicle Superior",
			Criteria:      []string{"1.3 Compara fraccions."},
		},
		{
			ID: "mat-ce2", Area: "Matemàtiques", CompetencyCode: "CE2",
			Saber: "Geometria", Description: "Reconèixer figures a l'entorn.",
			PlannedGrades: "3r, 4t",
			Criteria:      []string{"2.1 Identifica polígons."},
		},
		{
			ID: "med-ce1", Area: "Coneixement del Medi", CompetencyCode: "CE1",
			Saber: "Éssers vius", Description: "Classificar éssers vius.",
			PlannedGrades: "1r, 2n",
			Criteria:      []string{"1.1 Classifica animals."},
		},
	}
}

func TestCatalog_FindByID(t *testing.T) {
	c := New(testItems())

	item, ok := c.FindByID("mat-ce2")
	require.True(t, ok)
	assert.Equal(t, "Geometria", item.Saber)

	_, ok = c.FindByID("nope")
	assert.False(t, ok)
}

func TestCatalog_ListAreas_FirstSeenOrder(t *testing.T) {
	c := New(testItems())
	assert.Equal(t, []string{"Matemàtiques", "Coneixement del Medi"}, c.ListAreas())
}

func TestCatalog_ListCompetencies_DedupesByCode(t *testing.T) {
	c := New(testItems())

	comps := c.ListCompetencies("Matemàtiques")
	require.Len(t, comps, 2)
	assert.Equal(t, "CE1", comps[0].Code)
	assert.Equal(t, "CE2", comps[1].Code)
	// Representative fields come from the first item with the code.
	assert.Equal(t, "Resoldre problemes amb nombres naturals.", comps[0].Description)
}

func TestCatalog_CompetencyCodesAreScopedByArea(t *testing.T) {
	c := New(testItems())

	// CE1 exists in both areas and must stay independent per area.
	mat := c.ListItems("Matemàtiques", "CE1")
	med := c.ListItems("Coneixement del Medi", "CE1")
	assert.Len(t, mat, 2)
	assert.Len(t, med, 1)
	assert.Equal(t, "med-ce1", med[0].ID)
}

func TestCatalog_ListItems_EmptyCodeReturnsArea(t *testing.T) {
	c := New(testItems())
	assert.Len(t, c.ListItems("Matemàtiques", ""), 3)
	assert.Empty(t, c.ListItems("Inventada", ""))
}

func TestCatalog_Search_GateRequiresAFilter(t *testing.T) {
	c := New(testItems())
	assert.Nil(t, c.Search("", ""))
	assert.Len(t, c.Search("", "Matemàtiques"), 3)
}

func TestCatalog_Search_CaseInsensitiveAcrossFields(t *testing.T) {
	c := New(testItems())

	// Saber match.
	results := c.Search("geometria", "")
	require.Len(t, results, 1)
	assert.Equal(t, "mat-ce2", results[0].ID)

	// Criterion text match.
	results = c.Search("POLÍGONS", "")
	require.Len(t, results, 1)
	assert.Equal(t, "mat-ce2", results[0].ID)

	// Area filter restricts before text matching.
	results = c.Search("CE1", "Coneixement del Medi")
	require.Len(t, results, 1)
	assert.Equal(t, "med-ce1", results[0].ID)
}

func TestCatalog_MatchesGrade(t *testing.T) {
	c := New(testItems())

	all, _ := c.FindByID("mat-ce1")
	upper, _ := c.FindByID("mat-ce1b")
	direct, _ := c.FindByID("med-ce1")

	// An empty tag matches everything.
	assert.True(t, c.MatchesGrade(all, domain.Grade1))
	assert.True(t, c.MatchesGrade(all, domain.Grade6))

	// Stage name resolves through the stage map.
	assert.True(t, c.MatchesGrade(upper, domain.Grade5))
	assert.False(t, c.MatchesGrade(upper, domain.Grade2))

	// Direct grade, plus the sibling grade of the same cycle.
	assert.True(t, c.MatchesGrade(direct, domain.Grade2))
	assert.True(t, c.MatchesGrade(direct, domain.Grade1))
	assert.False(t, c.MatchesGrade(direct, domain.Grade4))
}

func TestDefaultCatalog_Integrity(t *testing.T) {
	c := Default()

	require.Equal(t, 65, c.Len())
	assert.Len(t, c.ListAreas(), 11)

	// Per-area item counts; coverage denominators and zero-filled
	// competency lists depend on these being complete.
	counts := map[string]int{}
	for _, item := range c.Items() {
		counts[item.Area]++
	}
	assert.Equal(t, map[string]int{
		"MEDI NATURAL, SOCIAL I CULTURAL": 10,
		"EDUCACIÓ ARTÍSTICA":              4,
		"EDUCACIÓ FÍSICA":                 5,
		"LLENGÜES":                        10,
		"LLENGUA ESTRANGERA":              7,
		"MATEMÀTIQUES":                    8,
		"VALORS CÍVICS I ÈTICS":           4,
		"COMPETÈNCIA CIUTADANA":           4,
		"COMPETÈNCIA DIGITAL":             5,
		"COMPETÈNCIA EMPRENEDORA":         3,
		"COMPETÈNCIA PERSONAL/SOCIAL":     5,
	}, counts)

	// Every item must be findable by its own id and carry criteria.
	for _, item := range c.Items() {
		found, ok := c.FindByID(item.ID)
		require.True(t, ok, "item %s not indexed", item.ID)
		assert.Equal(t, item.Area, found.Area)
		assert.NotEmpty(t, item.Criteria, "item %s has no criteria", item.ID)
	}

	// Spot-check entries from across the dataset.
	item, ok := c.FindByID("medi-ce10")
	require.True(t, ok)
	assert.Equal(t, "Administració i convivència", item.Saber)

	item, ok = c.FindByID("lleng-ce7")
	require.True(t, ok)
	assert.Equal(t, "Hàbit lector", item.Saber)

	item, ok = c.FindByID("le-ce8")
	require.True(t, ok)
	assert.Equal(t, "3r, 4t, 5è, 6è", item.PlannedGrades)

	item, ok = c.FindByID("comp-pers-ce4")
	require.True(t, ok)
	assert.Equal(t, "CPSAA4", item.CompetencyCode)
}

func TestStageMap_StageOf(t *testing.T) {
	m := DefaultStageMap()
	assert.Equal(t, domain.StageInitial, m.StageOf(domain.Grade2))
	assert.Equal(t, domain.StageMiddle, m.StageOf(domain.Grade3))
	assert.Equal(t, domain.StageUpper, m.StageOf(domain.Grade6))
}
