package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/cli/formatter"
	"github.com/mvilaseca/eduplan/internal/domain"
	"github.com/mvilaseca/eduplan/internal/query"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage classroom activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityShowCmd(app),
		newActivityEditCmd(app),
		newActivityRemoveCmd(app),
		newActivityLinkCmd(app),
		newActivityCriterionCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var title, description, link, grade, year, tagsFlag string
	var term int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new activity",
		Long: "Create a new activity. With flags the activity is created " +
			"directly; without --title on an interactive terminal, a form opens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.Activity{
				ID:           uuid.New().String(),
				AcademicYear: domain.DefaultAcademicYear,
				Grade:        domain.Grade1,
				Term:         domain.Term1,
				CreatedAt:    time.Now().UnixMilli(),
			}

			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				v := newActivityFormValues(a)
				if err := activityForm(v).Run(); err != nil {
					return err
				}
				v.apply(a)
			} else {
				a.Title = title
				a.Description = description
				a.Link = link
				if grade != "" {
					a.Grade = domain.Grade(grade)
				}
				if term != 0 {
					a.Term = domain.Term(term)
				}
				if year != "" {
					a.AcademicYear = year
				}
				a.Tags = splitTags(tagsFlag)
			}

			if errs := app.Linkage.Validate(a); len(errs) > 0 {
				return validationError(errs)
			}

			if _, err := app.Store.Save(a); err != nil {
				return err
			}

			fmt.Printf("Created activity %s [%s]\n", a.Title, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Activity title")
	cmd.Flags().StringVar(&description, "description", "", "Activity description")
	cmd.Flags().StringVar(&link, "link", "", "Resource link")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade (1r|2n|3r|4t|5è|6è)")
	cmd.Flags().IntVar(&term, "term", 0, "Trimester (1|2|3)")
	cmd.Flags().StringVar(&year, "year", "", "Academic year (e.g. 2024-2025)")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "Comma-separated tags")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var text, year, grade, area string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Store.LoadAll()
			if err != nil {
				return err
			}

			filtered := query.FilterActivities(activities, query.ActivityFilter{
				Text:  text,
				Year:  year,
				Grade: domain.Grade(grade),
				Area:  area,
			}, app.Catalog)

			if len(filtered) == 0 {
				fmt.Println("No activities found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatActivityList(filtered))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Filter by title, description or tag")
	cmd.Flags().StringVar(&year, "year", "", "Filter by academic year")
	cmd.Flags().StringVar(&grade, "grade", "", "Filter by grade")
	cmd.Flags().StringVar(&area, "area", "", "Filter by linked curriculum area")

	return cmd
}

func newActivityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show activity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatActivityDetail(a, app.Catalog))
			return nil
		},
	}
}

func newActivityEditCmd(app *App) *cobra.Command {
	var title, description, link, grade, year, tagsFlag, evaluation string
	var term int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an activity",
		Long: "Edit an activity. Without field flags on an interactive " +
			"terminal, a form opens pre-filled with the current values.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}
			draft := a.Clone()

			anyFlag := cmd.Flags().NFlag() > 0
			if !anyFlag && app.IsInteractive != nil && app.IsInteractive() {
				v := newActivityFormValues(draft)
				if err := activityForm(v).Run(); err != nil {
					return err
				}
				v.apply(draft)
			} else {
				if cmd.Flags().Changed("title") {
					draft.Title = title
				}
				if cmd.Flags().Changed("description") {
					draft.Description = description
				}
				if cmd.Flags().Changed("link") {
					draft.Link = link
				}
				if cmd.Flags().Changed("grade") {
					draft.Grade = domain.Grade(grade)
				}
				if cmd.Flags().Changed("term") {
					draft.Term = domain.Term(term)
				}
				if cmd.Flags().Changed("year") {
					draft.AcademicYear = year
				}
				if cmd.Flags().Changed("tags") {
					draft.Tags = splitTags(tagsFlag)
				}
				if cmd.Flags().Changed("evaluation") {
					draft.Evaluation = evaluation
				}
			}

			if errs := app.Linkage.Validate(draft); len(errs) > 0 {
				return validationError(errs)
			}

			if _, err := app.Store.Save(draft); err != nil {
				return err
			}

			fmt.Printf("Updated activity %s\n", draft.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Activity title")
	cmd.Flags().StringVar(&description, "description", "", "Activity description")
	cmd.Flags().StringVar(&link, "link", "", "Resource link")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade (1r|2n|3r|4t|5è|6è)")
	cmd.Flags().IntVar(&term, "term", 0, "Trimester (1|2|3)")
	cmd.Flags().StringVar(&year, "year", "", "Academic year")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&evaluation, "evaluation", "", "Evaluation notes")

	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.Delete(a.ID); err != nil {
				return err
			}
			fmt.Printf("Removed activity %s\n", a.Title)
			return nil
		},
	}
}

func newActivityLinkCmd(app *App) *cobra.Command {
	var area string

	cmd := &cobra.Command{
		Use:   "link ID [CURRICULUM_ID...]",
		Short: "Toggle curriculum links on an activity",
		Long: "Toggle the given curriculum item links on the activity. " +
			"Without item ids on an interactive terminal, a drill-down " +
			"picker opens: area, then competency, then the matching items. " +
			"Unlinking an item removes its criteria from the activity " +
			"unless another linked item still covers them.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}

			ids := args[1:]
			if len(ids) == 0 {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("pass curriculum item ids, or run on an interactive terminal")
				}
				if area == "" {
					if err := areaPicker(app, &area).Run(); err != nil {
						return err
					}
				}
				var code string
				if err := competencyPicker(app, area, &code).Run(); err != nil {
					return err
				}
				selected := append([]string(nil), a.CurriculumIDs...)
				if err := curriculumPicker(app, area, code, a.CurriculumIDs, &selected).Run(); err != nil {
					return err
				}
				ids = diffToggles(a, area, code, selected, app.Catalog)
			}

			draft := a
			for _, id := range ids {
				if _, ok := app.Catalog.FindByID(id); !ok {
					return fmt.Errorf("curriculum item not found: %q", id)
				}
				draft = app.Linkage.ToggleCurriculumLink(draft, id)
			}

			if _, err := app.Store.Save(draft); err != nil {
				return err
			}

			fmt.Printf("Activity %s now has %d curriculum links\n", draft.Title, len(draft.CurriculumIDs))
			return nil
		},
	}

	cmd.Flags().StringVar(&area, "area", "", "Pick items interactively from this area")

	return cmd
}

// diffToggles computes which item ids must be toggled so the activity's
// links within the (area, code) picker scope end up equal to the
// selection. Links outside the scope are untouched; an empty code
// scopes to the whole area.
func diffToggles(a *domain.Activity, area, code string, selected []string, c *catalog.Catalog) []string {
	want := make(map[string]bool, len(selected))
	for _, id := range selected {
		want[id] = true
	}

	var toggles []string
	for _, id := range a.CurriculumIDs {
		item, ok := c.FindByID(id)
		if !ok || item.Area != area {
			continue
		}
		if code != "" && item.CompetencyCode != code {
			continue
		}
		if !want[id] {
			toggles = append(toggles, id)
		}
	}
	for _, id := range selected {
		if !a.HasCurriculumID(id) {
			toggles = append(toggles, id)
		}
	}
	return toggles
}

func newActivityCriterionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "criterion ID TEXT",
		Short: "Toggle an evaluation criterion on an activity",
		Long: "Toggle the selection of an evaluation criterion. The " +
			"criterion must belong to a linked curriculum item; deselecting " +
			"is always allowed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}

			draft, err := app.Linkage.ToggleCriterion(a, args[1])
			if err != nil {
				return err
			}

			if _, err := app.Store.Save(draft); err != nil {
				return err
			}

			fmt.Printf("Activity %s now has %d criteria selected\n", draft.Title, len(draft.Criteria))
			return nil
		},
	}
}

// validationError folds a validation error list into one error, one
// violation per line.
func validationError(errs []error) error {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = "  - " + err.Error()
	}
	return fmt.Errorf("activity is not valid:\n%s", strings.Join(msgs, "\n"))
}
