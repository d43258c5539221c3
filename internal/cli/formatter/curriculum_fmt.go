package formatter

import (
	"fmt"
	"strings"

	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// FormatAreaList renders the catalog areas as a numbered list.
func FormatAreaList(areas []string) string {
	var b strings.Builder
	b.WriteString(Header("Curriculum areas"))
	b.WriteString("\n\n")
	for i, area := range areas {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), area))
	}
	return b.String()
}

// FormatCompetencyList renders the competencies of one area.
func FormatCompetencyList(area string, competencies []catalog.Competency) string {
	headers := []string{"Code", "Saber", "Description"}

	rows := make([][]string, 0, len(competencies))
	for _, comp := range competencies {
		rows = append(rows, []string{
			StyleYellow.Render(comp.Code),
			comp.Saber,
			truncate(comp.Description, 70),
		})
	}

	return Header(area) + "\n\n" + RenderTable(headers, rows)
}

// FormatItemList renders curriculum items as a table.
func FormatItemList(items []domain.CurriculumItem) string {
	headers := []string{"ID", "Code", "Area", "Saber", "Intensity"}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			Dim(item.ID),
			StyleYellow.Render(item.CompetencyCode),
			item.Area,
			truncate(item.Saber, 40),
			IntensityStyle(item.Intensity).Render(string(item.Intensity)),
		})
	}

	return RenderTable(headers, rows)
}

// FormatItemDetail renders one curriculum item in full, criteria included.
func FormatItemDetail(item *domain.CurriculumItem) string {
	var b strings.Builder

	b.WriteString(Header(item.CompetencyCode + " · " + item.Saber))
	b.WriteString("\n\n")
	b.WriteString(field("ID", Dim(item.ID)))
	b.WriteString(field("Area", item.Area))
	if item.PlannedGrades != "" {
		b.WriteString(field("Grades", item.PlannedGrades))
	}
	if item.Intensity != "" {
		b.WriteString(field("Weight", IntensityStyle(item.Intensity).Render(string(item.Intensity))))
	}

	b.WriteString("\n")
	b.WriteString(item.Description)
	b.WriteString("\n")

	if len(item.Criteria) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Evaluation criteria"))
		b.WriteString("\n")
		for _, crit := range item.Criteria {
			b.WriteString(fmt.Sprintf("  %s %s\n", StylePurple.Render("▪"), crit))
		}
	}

	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
