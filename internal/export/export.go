// Package export renders the activity collection for use outside the
// tool: a spreadsheet-friendly CSV and a round-trippable JSON backup.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// csvHeader is the fixed column set, in spreadsheet order. Free-text
// columns are always double-quoted so commas and line breaks inside a
// field survive the trip.
var csvHeader = []string{
	"ID",
	"Títol",
	"Descripció",
	"Curs Escolar",
	"Enllaç",
	"Curs",
	"Trimestre",
	"Data",
	"Etiquetes",
	"Competències Específiques",
	"Criteris Avaluació",
	"Indicadors/Rúbrica",
}

// CSV renders the activities as a comma-separated table. Linked
// curriculum items are resolved against the catalog and rendered as
// "CODE - Saber"; unresolvable ids are rendered as the bare id so the
// row never silently drops a link.
func CSV(activities []*domain.Activity, c *catalog.Catalog) string {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(csvHeader, ","))
	buf.WriteString("\n")

	for _, a := range activities {
		row := []string{
			a.ID,
			quote(a.Title),
			quote(a.Description),
			a.AcademicYear,
			quote(a.Link),
			string(a.Grade),
			fmt.Sprintf("%d", a.Term),
			formatDate(a.CreatedAt),
			quote(strings.Join(a.Tags, ", ")),
			quote(strings.Join(competencyLabels(a, c), "; ")),
			quote(strings.Join(a.Criteria, "; ")),
			quote(a.Evaluation),
		}
		buf.WriteString(strings.Join(row, ","))
		buf.WriteString("\n")
	}

	return buf.String()
}

// JSON renders the activities as an indented JSON array, suitable as a
// full backup that re-imports without loss.
func JSON(activities []*domain.Activity) (string, error) {
	if activities == nil {
		activities = []*domain.Activity{}
	}
	data, err := json.MarshalIndent(activities, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing activities: %w", err)
	}
	return string(data), nil
}

// quote wraps a free-text field in double quotes, doubling any quotes
// inside it.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatDate renders the creation timestamp (epoch milliseconds) as a
// local calendar date.
func formatDate(epochMillis int64) string {
	if epochMillis == 0 {
		return ""
	}
	return time.UnixMilli(epochMillis).Format("02/01/2006")
}

func competencyLabels(a *domain.Activity, c *catalog.Catalog) []string {
	labels := make([]string, 0, len(a.CurriculumIDs))
	for _, id := range a.CurriculumIDs {
		item, ok := c.FindByID(id)
		if !ok {
			labels = append(labels, id)
			continue
		}
		labels = append(labels, fmt.Sprintf("%s - %s", item.CompetencyCode, item.Saber))
	}
	return labels
}
