package cli

import (
	"fmt"

	"github.com/mvilaseca/eduplan/internal/cli/formatter"
	"github.com/mvilaseca/eduplan/internal/query"
	"github.com/spf13/cobra"
)

func newCurriculumCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curriculum",
		Short: "Browse the curriculum catalog",
	}

	cmd.AddCommand(
		newCurriculumAreasCmd(app),
		newCurriculumCompetenciesCmd(app),
		newCurriculumItemsCmd(app),
		newCurriculumShowCmd(app),
		newCurriculumSearchCmd(app),
	)

	return cmd
}

func newCurriculumAreasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List curriculum areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s\n", formatter.FormatAreaList(app.Catalog.ListAreas()))
			return nil
		},
	}
}

func newCurriculumCompetenciesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "competencies AREA",
		Short: "List the competencies of an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			competencies := app.Catalog.ListCompetencies(args[0])
			if len(competencies) == 0 {
				return fmt.Errorf("no such area: %q (see `eduplan curriculum areas`)", args[0])
			}
			fmt.Printf("%s\n", formatter.FormatCompetencyList(args[0], competencies))
			return nil
		},
	}
}

func newCurriculumItemsCmd(app *App) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "items AREA",
		Short: "List the curriculum items of an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Catalog.ListItems(args[0], code)
			if len(items) == 0 {
				return fmt.Errorf("no items for area %q", args[0])
			}
			fmt.Printf("%s\n", formatter.FormatItemList(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Restrict to one competency code (e.g. CE2)")

	return cmd
}

func newCurriculumShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one curriculum item with its criteria",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, ok := app.Catalog.FindByID(args[0])
			if !ok {
				return fmt.Errorf("curriculum item not found: %q", args[0])
			}
			fmt.Printf("%s\n", formatter.FormatItemDetail(item))
			return nil
		},
	}
}

func newCurriculumSearchCmd(app *App) *cobra.Command {
	var area string

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search the catalog by text and/or area",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) == 1 {
				text = args[0]
			}

			items := query.FilterCurriculum(app.Catalog, query.CurriculumFilter{
				Text: text,
				Area: area,
			})
			if len(items) == 0 {
				fmt.Println("No matching curriculum items.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatItemList(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&area, "area", "", "Restrict the search to one area")

	return cmd
}
