package cli

import (
	"context"
	"fmt"

	"github.com/mvilaseca/eduplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "suggest ID",
		Short: "Suggest curriculum links for an activity",
		Long: "Ask the assistant which curriculum items match the activity's " +
			"title and description. With --apply the suggested links are " +
			"merged into the activity; existing links are never removed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Suggest == nil {
				return llmDisabledErr()
			}

			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}

			stop := formatter.StartSpinner("Matching against the curriculum...")
			suggestions, err := app.Suggest.SuggestLinks(context.Background(), a.Title, a.Description)
			stop()
			if err != nil {
				return err
			}

			if len(suggestions) == 0 {
				fmt.Println("No matching curriculum items suggested.")
				return nil
			}

			for _, sug := range suggestions {
				item, ok := app.Catalog.FindByID(sug.ID)
				if !ok {
					continue
				}
				fmt.Printf("  %s %s %s\n",
					formatter.StyleGreen.Render("●"),
					formatter.StyleYellow.Render(item.CompetencyCode),
					item.Saber)
				fmt.Printf("    %s\n", formatter.Dim(sug.Reason))
			}

			if !apply {
				fmt.Printf("\n%s\n", formatter.Dim("Re-run with --apply to link them."))
				return nil
			}

			ids := make([]string, len(suggestions))
			for i, sug := range suggestions {
				ids[i] = sug.ID
			}
			draft := app.Linkage.ApplySuggestedLinks(a, ids)
			if _, err := app.Store.Save(draft); err != nil {
				return err
			}

			fmt.Printf("\nActivity %s now has %d curriculum links\n", draft.Title, len(draft.CurriculumIDs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Merge the suggested links into the activity")

	return cmd
}

func llmDisabledErr() error {
	return fmt.Errorf("the assistant is disabled; set EDUPLAN_LLM_ENABLED=true with a running Ollama server")
}
