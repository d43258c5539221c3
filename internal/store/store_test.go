package store

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mvilaseca/eduplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivity(id, title string) *domain.Activity {
	return &domain.Activity{
		ID:           id,
		Title:        title,
		Grade:        domain.Grade3,
		Term:         domain.Term1,
		AcademicYear: domain.DefaultAcademicYear,
		CreatedAt:    1700000000000,
	}
}

func TestActivityStore_LoadAll_FirstRun(t *testing.T) {
	s := NewActivityStore(NewMemStorage(), nil)

	activities, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestActivityStore_SaveAndReload(t *testing.T) {
	mem := NewMemStorage()
	s := NewActivityStore(mem, nil)

	_, err := s.Save(newActivity("a1", "Sortida al riu"))
	require.NoError(t, err)

	// A fresh store over the same backend sees the persisted state.
	reloaded := NewActivityStore(mem, nil)
	activities, err := reloaded.LoadAll()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Sortida al riu", activities[0].Title)
}

func TestActivityStore_Save_NewPrependsExistingReplaces(t *testing.T) {
	s := NewActivityStore(NewMemStorage(), nil)

	_, err := s.Save(newActivity("a1", "Primera"))
	require.NoError(t, err)
	_, err = s.Save(newActivity("a2", "Segona"))
	require.NoError(t, err)

	activities, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, activities, 2)
	// Newest first.
	assert.Equal(t, "a2", activities[0].ID)
	assert.Equal(t, "a1", activities[1].ID)

	// Replacing keeps the record's position.
	updated := newActivity("a1", "Primera (editada)")
	_, err = s.Save(updated)
	require.NoError(t, err)

	activities, err = s.LoadAll()
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "a2", activities[0].ID)
	assert.Equal(t, "Primera (editada)", activities[1].Title)
}

func TestActivityStore_Delete(t *testing.T) {
	mem := NewMemStorage()
	s := NewActivityStore(mem, nil)

	_, err := s.Save(newActivity("a1", "Una"))
	require.NoError(t, err)

	require.NoError(t, s.Delete("a1"))
	activities, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, activities)

	// Deleting an absent id is a no-op, not an error.
	require.NoError(t, s.Delete("missing"))
}

func TestActivityStore_CorruptDataRecovers(t *testing.T) {
	mem := NewMemStorage()
	mem.Seed(StorageKey, "{not json")

	var log bytes.Buffer
	s := NewActivityStore(mem, &log)

	activities, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, activities)
	assert.Contains(t, log.String(), "corrupt")

	// The store keeps working after recovery.
	_, err = s.Save(newActivity("a1", "Nova"))
	require.NoError(t, err)
	activities, err = s.LoadAll()
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestActivityStore_MissingYearGetsDefault(t *testing.T) {
	records := []*domain.Activity{newActivity("a1", "Antiga")}
	records[0].AcademicYear = ""
	data, err := json.Marshal(records)
	require.NoError(t, err)

	mem := NewMemStorage()
	mem.Seed(StorageKey, string(data))

	s := NewActivityStore(mem, nil)
	activities, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, domain.DefaultAcademicYear, activities[0].AcademicYear)

	// The fix is in-memory only until the next mutation persists.
	raw, ok, err := mem.Load(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"academicYear":""`)
}

func TestActivityStore_AllTags_FirstSeenDedupe(t *testing.T) {
	s := NewActivityStore(NewMemStorage(), nil)

	a1 := newActivity("a1", "Una")
	a1.Tags = []string{"natura", "grup"}
	a2 := newActivity("a2", "Dues")
	a2.Tags = []string{"grup", "càlcul"}

	_, err := s.Save(a1)
	require.NoError(t, err)
	_, err = s.Save(a2)
	require.NoError(t, err)

	tags, err := s.AllTags()
	require.NoError(t, err)
	// a2 was prepended, so its tags come first.
	assert.Equal(t, []string{"grup", "càlcul", "natura"}, tags)
}
