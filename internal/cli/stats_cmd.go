package cli

import (
	"fmt"

	"github.com/mvilaseca/eduplan/internal/cli/formatter"
	"github.com/mvilaseca/eduplan/internal/stats"
	"github.com/spf13/cobra"
)

const topSabersLimit = 10

func newStatsCmd(app *App) *cobra.Command {
	var year, area string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the coverage dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Store.LoadAll()
			if err != nil {
				return err
			}
			filtered := stats.FilterByYear(activities, year)

			if area != "" {
				weights := stats.CompetencyWeight(filtered, app.Catalog, area)
				if len(weights) == 0 {
					return fmt.Errorf("no such area: %q (see `eduplan curriculum areas`)", area)
				}
				fmt.Printf("%s\n", formatter.FormatCompetencyWeight(area, weights))
				return nil
			}

			data := formatter.DashboardData{
				Year:       year,
				Activities: len(filtered),
				Coverage:   stats.ComputeCoverage(filtered, app.Catalog),
				TotalLinks: stats.TotalLinks(filtered),
				TopSabers:  stats.TopSabers(filtered, app.Catalog, topSabersLimit),
				Areas:      stats.AreaBalance(filtered, app.Catalog),
			}

			fmt.Printf("%s\n", formatter.FormatDashboard(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&year, "year", stats.AllYears, "Academic year filter (ALL for everything)")
	cmd.Flags().StringVar(&area, "area", "", "Show per-competency weights for one area instead")

	return cmd
}
