package commands

import (
	"nrltips-backend/lib/configutil"
	"nrltips-backend/lib/serviceutil"
	"nrltips-backend/lib/sqliteutil"
	"nrltips-backend/lib/timezone"
	"nrltips-backend/services/digest"
	"nrltips-backend/services/predictor"
	predictordb "nrltips-backend/services/predictor/db"
	"nrltips-backend/services/results"
	resultsdb "nrltips-backend/services/results/db"

	"github.com/spf13/cobra"
)

var (
	digestSeason *int
	digestRound  *int
	digestDb     *string
	digestSmtp   *string
)

func init() {
	digestSeason = digestCmd.Flags().Int("season", timezone.Now().Year(), "The season the predictions are built from.")
	digestRound = digestCmd.Flags().Int("round", 0, "The round to preview.")
	digestDb = digestCmd.Flags().String("db", "nrl.db", "The database to read results from.")
	digestSmtp = digestCmd.Flags().String("smtp", "smtp.json5", "The smtp configuration file.")
	digestCmd.MarkFlagRequired("round")
	rootCmd.AddCommand(digestCmd)
}

var digestCmd = &cobra.Command{
	Use:   "digest --round <n> [--season <year>] [--db <path>] [--smtp <path>]",
	Short: "Emails the round's predictions to the configured recipients.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		smtpConfig, err := configutil.ReadConfig[digest.SmtpConfig](*digestSmtp)
		if err != nil {
			serviceutil.Fatal("failed to read smtp config", err)
		}

		database, err := sqliteutil.OpenDB(resultsdb.Schema, *digestDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		if _, err := database.Exec(predictordb.Schema); err != nil {
			serviceutil.Fatal("failed to apply ratings schema", err)
		}

		resultsService := results.NewService(database)
		predictorService := predictor.NewService(database, resultsService)
		digestService := digest.NewService(smtpConfig, predictorService)

		err = predictorService.Rebuild(ctx, *digestSeason)
		if err != nil {
			serviceutil.Fatal("failed to rebuild ratings", err)
		}

		err = digestService.SendRoundPreview(ctx, *digestSeason, *digestRound)
		if err != nil {
			serviceutil.Fatal("failed to send digest", err)
		}
	},
}
