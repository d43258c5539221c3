package cli

import (
	"fmt"
	"os"

	"github.com/mvilaseca/eduplan/internal/export"
	"github.com/mvilaseca/eduplan/internal/stats"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export activities for use outside the planner",
	}

	cmd.AddCommand(
		newExportCSVCmd(app),
		newExportJSONCmd(app),
	)

	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	var year, out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export activities as a spreadsheet-friendly CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Store.LoadAll()
			if err != nil {
				return err
			}
			filtered := stats.FilterByYear(activities, year)

			content := export.CSV(filtered, app.Catalog)
			return writeExport(out, content, len(filtered))
		},
	}

	cmd.Flags().StringVar(&year, "year", stats.AllYears, "Academic year filter (ALL for everything)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when omitted)")

	return cmd
}

func newExportJSONCmd(app *App) *cobra.Command {
	var year, out string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Export activities as a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Store.LoadAll()
			if err != nil {
				return err
			}
			filtered := stats.FilterByYear(activities, year)

			content, err := export.JSON(filtered)
			if err != nil {
				return err
			}
			return writeExport(out, content, len(filtered))
		},
	}

	cmd.Flags().StringVar(&year, "year", stats.AllYears, "Academic year filter (ALL for everything)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when omitted)")

	return cmd
}

func writeExport(path, content string, count int) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Exported %d activities to %s\n", count, path)
	return nil
}
