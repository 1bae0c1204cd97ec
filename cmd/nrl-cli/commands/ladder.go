package commands

import (
	"os"

	"nrltips-backend/lib/serviceutil"
	"nrltips-backend/lib/sqliteutil"
	"nrltips-backend/lib/timezone"
	"nrltips-backend/services/results"
	resultsdb "nrltips-backend/services/results/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	ladderSeason *int
	ladderDb     *string
)

func init() {
	ladderSeason = ladderCmd.Flags().Int("season", timezone.Now().Year(), "The season to rank.")
	ladderDb = ladderCmd.Flags().String("db", "nrl.db", "The database to read results from.")
	rootCmd.AddCommand(ladderCmd)
}

var ladderCmd = &cobra.Command{
	Use:   "ladder [--season <year>] [--db <path>]",
	Short: "Prints the season ladder computed from stored results.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database, err := sqliteutil.OpenDB(resultsdb.Schema, *ladderDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		service := results.NewService(database)

		ladder, err := service.Ladder(ctx, *ladderSeason)
		if err != nil {
			serviceutil.Fatal("failed to compute ladder", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Team", "P", "W", "D", "L", "PF", "PA", "+/-", "Pts"})
		for i, e := range ladder {
			t.AppendRow(table.Row{
				i + 1, e.Team, e.Played, e.Wins, e.Draws, e.Losses,
				e.PointsFor, e.PointsAgainst, e.Differential, e.Points,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
