package formatter

import (
	"fmt"
	"strings"

	"github.com/mvilaseca/eduplan/internal/stats"
)

const barWidth = 24

// DashboardData bundles the computed statistics for one dashboard view.
type DashboardData struct {
	Year       string
	Activities int
	Coverage   stats.Coverage
	TotalLinks int
	TopSabers  []stats.SaberCount
	Areas      []stats.AreaCount
}

// FormatDashboard renders the statistics dashboard.
func FormatDashboard(d DashboardData) string {
	var b strings.Builder

	title := "Dashboard"
	if d.Year != "" && d.Year != stats.AllYears {
		title += " · " + d.Year
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	pct := d.Coverage.Percent
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		Dim("Coverage "),
		RenderBar(pct, 100, barWidth, CoverageStyle(pct)),
		CoverageStyle(pct).Render(fmt.Sprintf("%d%%", pct))))
	b.WriteString(fmt.Sprintf("  %s %d of %d curriculum items · %d activities · %d links\n",
		Dim("         "),
		d.Coverage.UniqueLinked, d.Coverage.CatalogTotal, d.Activities, d.TotalLinks))

	if len(d.TopSabers) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Most worked sabers"))
		b.WriteString("\n")
		max := d.TopSabers[0].Count
		for _, sc := range d.TopSabers {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				RenderBar(sc.Count, max, barWidth, StyleBlue),
				StyleBlue.Render(fmt.Sprintf("%3d", sc.Count)),
				sc.Saber))
		}
	}

	if len(d.Areas) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Area balance"))
		b.WriteString("\n")
		max := 0
		for _, ac := range d.Areas {
			if ac.Count > max {
				max = ac.Count
			}
		}
		for _, ac := range d.Areas {
			bar := RenderBar(ac.Count, max, barWidth, StyleGreen)
			if max == 0 {
				bar = StyleDim.Render(strings.Repeat("░", barWidth))
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				bar,
				StyleGreen.Render(fmt.Sprintf("%3d", ac.Count)),
				ac.Area))
		}
	}

	return b.String()
}

// FormatCompetencyWeight renders the per-competency link counts of one
// area.
func FormatCompetencyWeight(area string, weights []stats.CompetencyCount) string {
	var b strings.Builder
	b.WriteString(Header(area))
	b.WriteString("\n\n")

	max := 0
	for _, w := range weights {
		if w.Count > max {
			max = w.Count
		}
	}

	for _, w := range weights {
		bar := RenderBar(w.Count, max, barWidth, StyleYellow)
		if max == 0 {
			bar = StyleDim.Render(strings.Repeat("░", barWidth))
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			bar,
			StyleYellow.Render(fmt.Sprintf("%3d", w.Count)),
			Bold(w.Code),
			Dim(truncate(w.Description, 60))))
	}

	return b.String()
}
