package commands

import (
	"fmt"
	"os"

	"nrltips-backend/lib/serviceutil"
	"nrltips-backend/lib/sqliteutil"
	"nrltips-backend/lib/timezone"
	"nrltips-backend/services/predictor"
	predictordb "nrltips-backend/services/predictor/db"
	"nrltips-backend/services/results"
	resultsdb "nrltips-backend/services/results/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	ratingsSeason *int
	ratingsDb     *string
)

func init() {
	ratingsSeason = ratingsCmd.Flags().Int("season", timezone.Now().Year(), "The season to rate.")
	ratingsDb = ratingsCmd.Flags().String("db", "nrl.db", "The database to read results from.")
	rootCmd.AddCommand(ratingsCmd)
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings [--season <year>] [--db <path>]",
	Short: "Rebuilds team ratings from stored results and prints them.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database, err := sqliteutil.OpenDB(resultsdb.Schema, *ratingsDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		if _, err := database.Exec(predictordb.Schema); err != nil {
			serviceutil.Fatal("failed to apply ratings schema", err)
		}

		resultsService := results.NewService(database)
		service := predictor.NewService(database, resultsService)

		err = service.Rebuild(ctx, *ratingsSeason)
		if err != nil {
			serviceutil.Fatal("failed to rebuild ratings", err)
		}
		ratings, err := service.Ratings(ctx)
		if err != nil {
			serviceutil.Fatal("failed to load ratings", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Team", "Rating", "Played"})
		for i, r := range ratings {
			t.AppendRow(table.Row{i + 1, r.Team, fmt.Sprintf("%.1f", r.Rating), r.Played})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
