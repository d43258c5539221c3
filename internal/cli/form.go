package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mvilaseca/eduplan/internal/cli/formatter"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// eduplanHuhTheme returns a custom huh theme using the Gruvbox palette.
func eduplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// activityFormValues holds the string-typed form state for an activity
// create or edit form.
type activityFormValues struct {
	Title       string
	Description string
	Link        string
	Grade       string
	Term        string
	Year        string
	Tags        string
}

// newActivityFormValues seeds form values from an existing activity.
func newActivityFormValues(a *domain.Activity) *activityFormValues {
	return &activityFormValues{
		Title:       a.Title,
		Description: a.Description,
		Link:        a.Link,
		Grade:       string(a.Grade),
		Term:        fmt.Sprintf("%d", a.Term),
		Year:        a.AcademicYear,
		Tags:        strings.Join(a.Tags, ", "),
	}
}

// activityForm builds the interactive create/edit form.
func activityForm(v *activityFormValues) *huh.Form {
	if v.Grade == "" {
		v.Grade = string(domain.Grade1)
	}
	if v.Term == "" {
		v.Term = "1"
	}
	if v.Year == "" {
		v.Year = domain.DefaultAcademicYear
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Sortida al riu").
				Value(&v.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Lines(4).
				Value(&v.Description),
			huh.NewInput().
				Title("Resource link (optional)").
				Placeholder("https://...").
				Value(&v.Link),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Grade").
				Options(
					huh.NewOption("1r", string(domain.Grade1)),
					huh.NewOption("2n", string(domain.Grade2)),
					huh.NewOption("3r", string(domain.Grade3)),
					huh.NewOption("4t", string(domain.Grade4)),
					huh.NewOption("5è", string(domain.Grade5)),
					huh.NewOption("6è", string(domain.Grade6)),
				).
				Value(&v.Grade),
			huh.NewSelect[string]().
				Title("Term").
				Options(
					huh.NewOption("1st trimester", "1"),
					huh.NewOption("2nd trimester", "2"),
					huh.NewOption("3rd trimester", "3"),
				).
				Value(&v.Term),
			huh.NewInput().
				Title("Academic year").
				Placeholder(domain.DefaultAcademicYear).
				Value(&v.Year),
			huh.NewInput().
				Title("Tags (comma separated)").
				Placeholder("natura, treball en grup").
				Value(&v.Tags),
		),
	).WithTheme(eduplanHuhTheme()).WithShowHelp(false)
}

// apply copies the form values back onto the activity.
func (v *activityFormValues) apply(a *domain.Activity) {
	a.Title = strings.TrimSpace(v.Title)
	a.Description = strings.TrimSpace(v.Description)
	a.Link = strings.TrimSpace(v.Link)
	a.Grade = domain.Grade(v.Grade)
	a.Term = parseTerm(v.Term)
	a.AcademicYear = strings.TrimSpace(v.Year)
	a.Tags = splitTags(v.Tags)
}

func parseTerm(s string) domain.Term {
	switch strings.TrimSpace(s) {
	case "2":
		return domain.Term2
	case "3":
		return domain.Term3
	default:
		return domain.Term1
	}
}

func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// areaPicker builds a select over the curriculum areas, the first level
// of the link drill-down.
func areaPicker(app *App, result *string) *huh.Form {
	areas := app.Catalog.ListAreas()

	options := make([]huh.Option[string], 0, len(areas))
	for _, area := range areas {
		options = append(options, huh.NewOption(area, area))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Curriculum area").
				Options(options...).
				Value(result),
		),
	).WithTheme(eduplanHuhTheme()).WithShowHelp(false)
}

// competencyPicker builds a select over the area's competencies, the
// second level of the drill-down. The empty value keeps every
// competency of the area in scope.
func competencyPicker(app *App, area string, result *string) *huh.Form {
	comps := app.Catalog.ListCompetencies(area)

	options := make([]huh.Option[string], 0, len(comps)+1)
	options = append(options, huh.NewOption("All competencies", ""))
	for _, comp := range comps {
		options = append(options, huh.NewOption(fmt.Sprintf("%s - %s", comp.Code, comp.Saber), comp.Code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(area).
				Options(options...).
				Value(result),
		),
	).WithTheme(eduplanHuhTheme()).WithShowHelp(false)
}

// curriculumPicker builds a multi-select over the catalog items of one
// (area, competency) scope, pre-selecting the activity's current links.
func curriculumPicker(app *App, area, code string, selected []string, result *[]string) *huh.Form {
	items := app.Catalog.ListItems(area, code)

	current := make(map[string]bool, len(selected))
	for _, id := range selected {
		current[id] = true
	}

	options := make([]huh.Option[string], 0, len(items))
	for _, item := range items {
		label := fmt.Sprintf("%s - %s", item.CompetencyCode, item.Saber)
		options = append(options, huh.NewOption(label, item.ID).Selected(current[item.ID]))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(area).
				Options(options...).
				Value(result),
		),
	).WithTheme(eduplanHuhTheme()).WithShowHelp(false)
}
