package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// FormatActivityList renders the activity collection as a table, newest
// first, in the collection's own order.
func FormatActivityList(activities []*domain.Activity) string {
	headers := []string{"ID", "Title", "Grade", "Term", "Year", "Links", "Tags"}

	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			Dim(shortID(a.ID)),
			a.Title,
			string(a.Grade),
			fmt.Sprintf("T%d", a.Term),
			a.AcademicYear,
			StyleBlue.Render(fmt.Sprintf("%d", len(a.CurriculumIDs))),
			Dim(strings.Join(a.Tags, ", ")),
		})
	}

	return RenderTable(headers, rows)
}

// FormatActivityDetail renders one activity in full, resolving its
// curriculum links against the catalog.
func FormatActivityDetail(a *domain.Activity, c *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(Header(a.Title))
	b.WriteString("\n\n")

	b.WriteString(field("ID", Dim(a.ID)))
	b.WriteString(field("Grade", string(a.Grade)))
	b.WriteString(field("Term", fmt.Sprintf("T%d", a.Term)))
	b.WriteString(field("Year", a.AcademicYear))
	if a.Link != "" {
		b.WriteString(field("Link", StyleBlue.Render(a.Link)))
	}
	if len(a.Tags) > 0 {
		b.WriteString(field("Tags", strings.Join(a.Tags, ", ")))
	}
	if a.CreatedAt != 0 {
		b.WriteString(field("Created", time.UnixMilli(a.CreatedAt).Format("02/01/2006")))
	}

	if a.Description != "" {
		b.WriteString("\n")
		b.WriteString(Bold("Description"))
		b.WriteString("\n")
		b.WriteString(a.Description)
		b.WriteString("\n")
	}

	if len(a.CurriculumIDs) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Curriculum links"))
		b.WriteString("\n")
		for _, id := range a.CurriculumIDs {
			item, ok := c.FindByID(id)
			if !ok {
				b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("?"), Dim(id)))
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleGreen.Render("●"),
				StyleYellow.Render(item.CompetencyCode),
				item.Saber))
			b.WriteString(fmt.Sprintf("    %s\n", Dim(item.Area)))
		}
	}

	if len(a.Criteria) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Evaluation criteria"))
		b.WriteString("\n")
		for _, crit := range a.Criteria {
			b.WriteString(fmt.Sprintf("  %s %s\n", StylePurple.Render("▪"), crit))
		}
	}

	if a.Evaluation != "" {
		b.WriteString("\n")
		b.WriteString(Bold("Evaluation notes"))
		b.WriteString("\n")
		b.WriteString(a.Evaluation)
		b.WriteString("\n")
	}

	return b.String()
}

func field(name, value string) string {
	return fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-8s", name+":")), value)
}

// shortID truncates a UUID to its first segment for table display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
