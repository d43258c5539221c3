package domain

// DefaultAcademicYear is assigned at load time to stored activities
// that predate the academicYear field.
const DefaultAcademicYear = "2024-2025"

// Activity is a teacher-authored lesson or task record. Activities are
// the unit of persistence: the whole collection is re-serialized on
// every mutation.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Grade       Grade  `json:"grade"`
	Term        Term   `json:"term"`
	// AcademicYear is a "YYYY-YYYY" tag, e.g. "2024-2025".
	AcademicYear string `json:"academicYear"`
	// CurriculumIDs are the catalog items this activity claims to
	// address. No duplicates; insertion order is preserved for display.
	CurriculumIDs []string `json:"curriculumIds"`
	// Criteria are the selected evaluation-criterion strings. Each must
	// belong to at least one currently linked curriculum item; the
	// linkage engine enforces this.
	Criteria   []string `json:"criteria"`
	Tags       []string `json:"tags,omitempty"`
	Evaluation string   `json:"evaluation,omitempty"`
	// CreatedAt is epoch milliseconds, set once at creation.
	CreatedAt int64 `json:"createdAt"`
}

// HasCurriculumID reports whether id is already linked.
func (a *Activity) HasCurriculumID(id string) bool {
	for _, cid := range a.CurriculumIDs {
		if cid == id {
			return true
		}
	}
	return false
}

// HasCriterion reports whether text is a selected criterion.
func (a *Activity) HasCriterion(text string) bool {
	for _, crit := range a.Criteria {
		if crit == text {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Engines that produce updated drafts copy
// first so callers never see a half-mutated activity.
func (a *Activity) Clone() *Activity {
	dup := *a
	dup.CurriculumIDs = append([]string(nil), a.CurriculumIDs...)
	dup.Criteria = append([]string(nil), a.Criteria...)
	dup.Tags = append([]string(nil), a.Tags...)
	return &dup
}
