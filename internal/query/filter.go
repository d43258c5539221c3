// Package query filters activities and catalog items for list views.
// Filters are stable: output preserves the input sequence's relative
// order and never sorts.
package query

import (
	"strings"

	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// ActivityFilter holds the four list-view facets. An empty value means
// "match everything" for that facet; non-empty facets are ANDed.
type ActivityFilter struct {
	// Text matches case-insensitively against title, description, or
	// any tag.
	Text string
	// Year and Grade are exact matches.
	Year  string
	Grade domain.Grade
	// Area matches when any linked curriculum item resolves to it.
	Area string
}

// FilterActivities returns the activities passing every facet of the
// filter, in input order.
func FilterActivities(activities []*domain.Activity, f ActivityFilter, c *catalog.Catalog) []*domain.Activity {
	text := strings.ToLower(strings.TrimSpace(f.Text))

	var out []*domain.Activity
	for _, a := range activities {
		if text != "" && !matchesText(a, text) {
			continue
		}
		if f.Year != "" && a.AcademicYear != f.Year {
			continue
		}
		if f.Grade != "" && a.Grade != f.Grade {
			continue
		}
		if f.Area != "" && !matchesArea(a, f.Area, c) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// CurriculumFilter holds the catalog search facets.
type CurriculumFilter struct {
	Text string
	Area string
}

// FilterCurriculum delegates to the catalog's search semantics: empty
// text and area yield no results (search mode gate), and matching is a
// case-insensitive substring test across the item's text fields and
// criteria.
func FilterCurriculum(c *catalog.Catalog, f CurriculumFilter) []domain.CurriculumItem {
	return c.Search(f.Text, f.Area)
}

func matchesText(a *domain.Activity, text string) bool {
	if strings.Contains(strings.ToLower(a.Title), text) ||
		strings.Contains(strings.ToLower(a.Description), text) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), text) {
			return true
		}
	}
	return false
}

func matchesArea(a *domain.Activity, area string, c *catalog.Catalog) bool {
	for _, id := range a.CurriculumIDs {
		if item, ok := c.FindByID(id); ok && item.Area == area {
			return true
		}
	}
	return false
}
