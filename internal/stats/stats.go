// Package stats computes dashboard statistics over a snapshot of the
// activity collection and the curriculum catalog. Every function is
// pure: same inputs, same output, no hidden state.
package stats

import (
	"math"

	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// AllYears passes every activity through FilterByYear.
const AllYears = "ALL"

// Coverage summarizes how much of the catalog the activities touch.
// UniqueLinked counts distinct catalog items: ten activities linking
// one item still contribute 1.
type Coverage struct {
	Percent      int
	UniqueLinked int
	CatalogTotal int
}

// SaberCount is one ranked entry of TopSabers.
type SaberCount struct {
	Saber string
	Count int
}

// CompetencyCount is one entry of CompetencyWeight.
type CompetencyCount struct {
	Code        string
	Count       int
	Description string
}

// AreaCount is one entry of AreaBalance.
type AreaCount struct {
	Area  string
	Count int
}

// FilterByYear returns the activities matching the academic year.
// AllYears or the empty string pass everything through.
func FilterByYear(activities []*domain.Activity, year string) []*domain.Activity {
	if year == "" || year == AllYears {
		return activities
	}
	var out []*domain.Activity
	for _, a := range activities {
		if a.AcademicYear == year {
			out = append(out, a)
		}
	}
	return out
}

// ComputeCoverage measures distinct catalog-item coverage across the
// activities. An empty catalog yields 0% rather than dividing by zero.
func ComputeCoverage(activities []*domain.Activity, c *catalog.Catalog) Coverage {
	unique := make(map[string]bool)
	for _, a := range activities {
		for _, id := range a.CurriculumIDs {
			unique[id] = true
		}
	}

	total := c.Len()
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(len(unique)) / float64(total) * 100))
	}

	return Coverage{Percent: pct, UniqueLinked: len(unique), CatalogTotal: total}
}

// TotalLinks is the raw (activity, linked item) pair count, without
// deduplication. It measures impact, deliberately diverging from
// Coverage.UniqueLinked whenever an item is linked more than once.
func TotalLinks(activities []*domain.Activity) int {
	n := 0
	for _, a := range activities {
		n += len(a.CurriculumIDs)
	}
	return n
}

// TopSabers ranks sabers by how many activity links resolve to them.
// An activity linking N items contributes to N buckets. Ordering is
// descending by count; ties keep first-encountered order from the
// count pass, so the result is deterministic for a given input order.
func TopSabers(activities []*domain.Activity, c *catalog.Catalog, limit int) []SaberCount {
	counts := make(map[string]int)
	var order []string
	for _, a := range activities {
		for _, id := range a.CurriculumIDs {
			item, ok := c.FindByID(id)
			if !ok || item.Saber == "" {
				continue
			}
			if _, seen := counts[item.Saber]; !seen {
				order = append(order, item.Saber)
			}
			counts[item.Saber]++
		}
	}

	out := make([]SaberCount, 0, len(order))
	for _, saber := range order {
		out = append(out, SaberCount{Saber: saber, Count: counts[saber]})
	}

	// Stable insertion sort: equal counts keep encounter order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Count > out[j-1].Count; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CompetencyWeight counts activity links per competency code within an
// area. Every distinct code in the catalog's area appears, zero-filled
// if unused, in catalog first-appearance order. Descriptions are the
// representative ones from the catalog.
func CompetencyWeight(activities []*domain.Activity, c *catalog.Catalog, area string) []CompetencyCount {
	competencies := c.ListCompetencies(area)

	counts := make(map[string]int, len(competencies))
	for _, a := range activities {
		for _, id := range a.CurriculumIDs {
			item, ok := c.FindByID(id)
			if !ok || item.Area != area {
				continue
			}
			counts[item.CompetencyCode]++
		}
	}

	out := make([]CompetencyCount, 0, len(competencies))
	for _, comp := range competencies {
		out = append(out, CompetencyCount{
			Code:        comp.Code,
			Count:       counts[comp.Code],
			Description: comp.Description,
		})
	}
	return out
}

// AreaBalance counts (activity, linked item) pairs per catalog area.
// All areas appear in catalog order, zero-filled if unused.
func AreaBalance(activities []*domain.Activity, c *catalog.Catalog) []AreaCount {
	counts := make(map[string]int)
	for _, a := range activities {
		for _, id := range a.CurriculumIDs {
			item, ok := c.FindByID(id)
			if !ok {
				continue
			}
			counts[item.Area]++
		}
	}

	areas := c.ListAreas()
	out := make([]AreaCount, 0, len(areas))
	for _, area := range areas {
		out = append(out, AreaCount{Area: area, Count: counts[area]})
	}
	return out
}
