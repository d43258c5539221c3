package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mvilaseca/eduplan/internal/domain"
	"github.com/mvilaseca/eduplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_HeaderAndRow(t *testing.T) {
	c := testutil.NewTestCatalog()
	a := testutil.NewTestActivity("Mercat de tardor",
		testutil.WithDescription("Comprem i venem amb monedes."),
		testutil.WithLinks("mat-ce1"),
		testutil.WithCriteria("1.1 Resol problemes de suma i resta."),
		testutil.WithTags("càlcul", "joc"),
	)
	a.CreatedAt = 1726137600000 // 12/09/2024 UTC

	out := CSV([]*domain.Activity{a}, c)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"ID,Títol,Descripció,Curs Escolar,Enllaç,Curs,Trimestre,Data,"+
			"Etiquetes,Competències Específiques,Criteris Avaluació,Indicadors/Rúbrica",
		lines[0])

	row := lines[1]
	assert.Contains(t, row, `"Mercat de tardor"`)
	assert.Contains(t, row, `"Comprem i venem amb monedes."`)
	assert.Contains(t, row, "2024-2025")
	assert.Contains(t, row, `"càlcul, joc"`)
	// Linked items render as "CODE - Saber".
	assert.Contains(t, row, `"CE1 - Numeració i càlcul"`)
	assert.Contains(t, row, `"1.1 Resol problemes de suma i resta."`)
}

func TestCSV_DoublesInternalQuotes(t *testing.T) {
	c := testutil.NewTestCatalog()
	a := testutil.NewTestActivity(`El "mercat" del barri`)

	out := CSV([]*domain.Activity{a}, c)
	assert.Contains(t, out, `"El ""mercat"" del barri"`)
}

func TestCSV_UnresolvableLinkKeepsBareID(t *testing.T) {
	c := testutil.NewTestCatalog()
	a := testutil.NewTestActivity("Orfe", testutil.WithLinks("fantasma"))

	out := CSV([]*domain.Activity{a}, c)
	assert.Contains(t, out, `"fantasma"`)
}

func TestCSV_EmptyCollection(t *testing.T) {
	out := CSV(nil, testutil.NewTestCatalog())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestJSON_RoundTrips(t *testing.T) {
	a := testutil.NewTestActivity("Herbari digital",
		testutil.WithLinks("med-ce1"),
		testutil.WithCriteria("1.1 Classifica animals i plantes."),
	)

	out, err := JSON([]*domain.Activity{a})
	require.NoError(t, err)

	var back []*domain.Activity
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	require.Len(t, back, 1)
	assert.Equal(t, a.ID, back[0].ID)
	assert.Equal(t, a.CurriculumIDs, back[0].CurriculumIDs)
	assert.Equal(t, a.Criteria, back[0].Criteria)
}

func TestJSON_NilCollectionIsEmptyArray(t *testing.T) {
	out, err := JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}
