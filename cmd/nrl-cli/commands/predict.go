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
	predictSeason *int
	predictRound  *int
	predictHome   *string
	predictAway   *string
	predictDb     *string
)

func init() {
	predictSeason = predictCmd.Flags().Int("season", timezone.Now().Year(), "The season the ratings are built from.")
	predictRound = predictCmd.Flags().Int("round", 0, "Predict every stored fixture of this round.")
	predictHome = predictCmd.Flags().String("home", "", "Home team of a single pairing to predict.")
	predictAway = predictCmd.Flags().String("away", "", "Away team of a single pairing to predict.")
	predictDb = predictCmd.Flags().String("db", "nrl.db", "The database to read results from.")
	rootCmd.AddCommand(predictCmd)
}

var predictCmd = &cobra.Command{
	Use:   "predict [--round <n> | --home <team> --away <team>]",
	Short: "Predicts match outcomes from the current ratings.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		if *predictRound == 0 && (*predictHome == "" || *predictAway == "") {
			serviceutil.Fatal("nothing to predict", fmt.Errorf("pass --round or both --home and --away"))
		}

		database, err := sqliteutil.OpenDB(resultsdb.Schema, *predictDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		if _, err := database.Exec(predictordb.Schema); err != nil {
			serviceutil.Fatal("failed to apply ratings schema", err)
		}

		resultsService := results.NewService(database)
		service := predictor.NewService(database, resultsService)

		err = service.Rebuild(ctx, *predictSeason)
		if err != nil {
			serviceutil.Fatal("failed to rebuild ratings", err)
		}

		var predictions []predictor.Prediction
		if *predictRound > 0 {
			predictions, err = service.PredictRound(ctx, *predictSeason, *predictRound)
			if err != nil {
				serviceutil.Fatal("failed to predict round", err)
			}
		} else {
			prediction, err := service.Predict(ctx, *predictHome, *predictAway)
			if err != nil {
				serviceutil.Fatal("failed to predict", err)
			}
			predictions = []predictor.Prediction{prediction}
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Home", "Away", "Home Win %", "Margin"})
		for _, p := range predictions {
			t.AppendRow(table.Row{
				p.HomeTeam, p.AwayTeam,
				fmt.Sprintf("%.1f", p.HomeWinChance*100),
				fmt.Sprintf("%+.1f", p.ExpectedMargin),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
