package catalog

import (
	"strings"

	"github.com/mvilaseca/eduplan/internal/domain"
)

// Competency is the representative view of one distinct competency code
// within an area. Saber and Description come from the first catalog
// item carrying the code, in catalog order.
type Competency struct {
	Code        string
	Saber       string
	Description string
}

// Catalog holds the fixed curriculum reference dataset and answers
// structural queries over it. It is immutable after construction.
type Catalog struct {
	items  []domain.CurriculumItem
	byID   map[string]int
	areas  []string // distinct areas in first-seen order
	stages StageMap
}

// New builds a Catalog over the given items. Area order, competency
// order and representative fields all derive from the slice order, so
// callers should pass the dataset in its canonical order.
func New(items []domain.CurriculumItem) *Catalog {
	c := &Catalog{
		items:  items,
		byID:   make(map[string]int, len(items)),
		stages: DefaultStageMap(),
	}
	seen := make(map[string]bool)
	for i, item := range items {
		if _, dup := c.byID[item.ID]; !dup {
			c.byID[item.ID] = i
		}
		if !seen[item.Area] {
			seen[item.Area] = true
			c.areas = append(c.areas, item.Area)
		}
	}
	return c
}

// Default returns a Catalog over the built-in Catalan primary
// curriculum dataset.
func Default() *Catalog {
	return New(builtinItems)
}

// WithStageMap returns a copy of the catalog using the given
// stage-to-grade mapping for planned-grade filtering.
func (c *Catalog) WithStageMap(m StageMap) *Catalog {
	dup := *c
	dup.stages = m
	return &dup
}

// Len returns the total number of catalog items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the full dataset in catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Items() []domain.CurriculumItem {
	return c.items
}

// FindByID returns the item with the given id, or false if absent.
func (c *Catalog) FindByID(id string) (*domain.CurriculumItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.items[i], true
}

// ListAreas returns the distinct area names in first-seen catalog
// order. The order is stable and pinned by tests.
func (c *Catalog) ListAreas() []string {
	return c.areas
}

// ListCompetencies returns one entry per distinct competency code in
// the given area, in first-appearance order, with representative saber
// and description taken from the first matching item.
func (c *Catalog) ListCompetencies(area string) []Competency {
	var out []Competency
	seen := make(map[string]bool)
	for _, item := range c.items {
		if item.Area != area || seen[item.CompetencyCode] {
			continue
		}
		seen[item.CompetencyCode] = true
		out = append(out, Competency{
			Code:        item.CompetencyCode,
			Saber:       item.Saber,
			Description: item.Description,
		})
	}
	return out
}

// ListItems returns every item matching the (area, code) compound key,
// in catalog order. An empty code returns all items of the area.
func (c *Catalog) ListItems(area, code string) []domain.CurriculumItem {
	var out []domain.CurriculumItem
	for _, item := range c.items {
		if item.Area != area {
			continue
		}
		if code != "" && item.CompetencyCode != code {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Search returns items matching the query text and/or area filter.
// Matching is a case-insensitive substring test against area, saber,
// description, competency code, and each criterion string. When an
// area filter is given, results are restricted to that area before
// text matching. When both query and area are empty, Search returns
// nil: search mode only activates once at least one filter is set.
func (c *Catalog) Search(query, area string) []domain.CurriculumItem {
	query = strings.TrimSpace(query)
	if query == "" && area == "" {
		return nil
	}

	q := strings.ToLower(query)
	var out []domain.CurriculumItem
	for _, item := range c.items {
		if area != "" && item.Area != area {
			continue
		}
		if q != "" && !itemMatches(&item, q) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// MatchesGrade reports whether the item's planned grades cover the
// given grade, using the catalog's stage map.
func (c *Catalog) MatchesGrade(item *domain.CurriculumItem, grade domain.Grade) bool {
	return c.stages.Matches(item.PlannedGrades, grade)
}

func itemMatches(item *domain.CurriculumItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Area), q) ||
		strings.Contains(strings.ToLower(item.Saber), q) ||
		strings.Contains(strings.ToLower(item.Description), q) ||
		strings.Contains(strings.ToLower(item.CompetencyCode), q) {
		return true
	}
	for _, crit := range item.Criteria {
		if strings.Contains(strings.ToLower(crit), q) {
			return true
		}
	}
	return false
}
