package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mvilaseca/eduplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft activity texts with the assistant",
	}

	cmd.AddCommand(
		newDraftDescriptionCmd(app),
		newDraftSequenceCmd(app),
		newDraftEvaluationCmd(app),
		newDraftRubricCmd(app),
	)

	return cmd
}

func newDraftDescriptionCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "description ID",
		Short: "Draft a technical description from the activity title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Draft == nil {
				return llmDisabledErr()
			}
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}

			stop := formatter.StartSpinner("Drafting description...")
			text, err := app.Draft.Describe(context.Background(), a.Title, a.Grade)
			stop()
			if err != nil {
				return err
			}

			fmt.Println(text)

			if save {
				draft := a.Clone()
				draft.Description = text
				if _, err := app.Store.Save(draft); err != nil {
					return err
				}
				fmt.Printf("\nSaved description on %s\n", draft.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the draft on the activity")

	return cmd
}

func newDraftSequenceCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "sequence ID",
		Short: "Expand the description into a step-by-step teaching sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Draft == nil {
				return llmDisabledErr()
			}
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}

			stop := formatter.StartSpinner("Expanding activity...")
			text, err := app.Draft.Expand(context.Background(), a.Title, a.Description, a.Grade)
			stop()
			if err != nil {
				return err
			}

			fmt.Println(text)

			if save {
				draft := a.Clone()
				draft.Description = text
				if _, err := app.Store.Save(draft); err != nil {
					return err
				}
				fmt.Printf("\nSaved expanded description on %s\n", draft.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the expanded text as the activity description")

	return cmd
}

func newDraftEvaluationCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "evaluation ID",
		Short: "Draft evaluation indicators and instruments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Draft == nil {
				return llmDisabledErr()
			}
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}

			stop := formatter.StartSpinner("Drafting evaluation...")
			text, err := app.Draft.Evaluation(context.Background(), a.Title, a.Description, a.Grade)
			stop()
			if err != nil {
				return err
			}

			fmt.Println(text)

			if save {
				draft := a.Clone()
				draft.Evaluation = text
				if _, err := app.Store.Save(draft); err != nil {
					return err
				}
				fmt.Printf("\nSaved evaluation on %s\n", draft.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the draft as the activity's evaluation notes")

	return cmd
}

func newDraftRubricCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "rubric ID",
		Short: "Generate an HTML rubric document for the activity",
		Long: "Generate a rubric as an HTML fragment ready to paste into " +
			"Google Docs, built from the activity's selected evaluation criteria.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Rubric == nil {
				return llmDisabledErr()
			}
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}

			stop := formatter.StartSpinner("Generating rubric...")
			html, err := app.Rubric.Generate(context.Background(), a)
			stop()
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Println(html)
				return nil
			}
			if err := os.WriteFile(out, []byte(html+"\n"), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote rubric for %s to %s\n", a.Title, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when omitted)")

	return cmd
}
