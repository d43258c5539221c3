package domain

// CurriculumItem is one entry of the fixed curriculum reference dataset.
// Items are immutable for the lifetime of the process.
//
// The compound key (Area, CompetencyCode) identifies a specific
// competency: codes like "CE1" recur across areas and mean a different
// competency in each. Never look an item up by code alone.
type CurriculumItem struct {
	ID             string   `json:"id"`
	Area           string   `json:"area"`
	CompetencyCode string   `json:"competencyCode"`
	Saber          string   `json:"saber"`
	Description    string   `json:"description"`
	// PlannedGrades is a free-form tag of the grades the item is
	// normally addressed in, e.g. "1r, 2n" or a stage name. Empty
	// means the item applies to every grade.
	PlannedGrades string    `json:"plannedGrades"`
	Intensity     Intensity `json:"intensity"`
	// Criteria are the evaluation-criterion statements belonging to
	// this item. They are free text, unique within the item, and
	// referenced elsewhere by exact string value.
	Criteria []string `json:"criteria"`
}

// HasCriterion reports whether text is one of the item's criteria.
func (c *CurriculumItem) HasCriterion(text string) bool {
	for _, crit := range c.Criteria {
		if crit == text {
			return true
		}
	}
	return false
}
