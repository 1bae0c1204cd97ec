package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"nrltips-backend/lib/serviceutil"
	"nrltips-backend/lib/sqliteutil"
	"nrltips-backend/lib/timezone"
	"nrltips-backend/services/results"
	resultsdb "nrltips-backend/services/results/db"
	"nrltips-backend/services/stats"
	statsdb "nrltips-backend/services/stats/db"

	"github.com/spf13/cobra"
)

var (
	exportSeason *int
	exportDb     *string
	exportOut    *string
)

func init() {
	exportSeason = exportCmd.Flags().Int("season", timezone.Now().Year(), "The season to export.")
	exportDb = exportCmd.Flags().String("db", "nrl.db", "The database to export from.")
	exportOut = exportCmd.Flags().String("out", ".", "The directory to write export files to.")
	rootCmd.AddCommand(exportCmd)
}

func exportFile(name string, write func(*os.File) error) {
	path := filepath.Join(*exportOut, name)
	file, err := os.Create(path)
	if err != nil {
		serviceutil.Fatal("failed to create export file", err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		serviceutil.Fatal("failed to write export file", err)
	}
	slog.Info("wrote export", "file", path)
}

var exportCmd = &cobra.Command{
	Use:   "export [--season <year>] [--db <path>] [--out <dir>]",
	Short: "Exports the stored season as tab-separated tables.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database, err := sqliteutil.OpenDB(resultsdb.Schema, *exportDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		if _, err := database.Exec(statsdb.Schema); err != nil {
			serviceutil.Fatal("failed to apply stats schema", err)
		}

		resultsService := results.NewService(database)
		statsService := stats.NewService(database)

		exportFile("nrl_data.txt", func(f *os.File) error {
			return resultsService.ExportTSV(ctx, f, *exportSeason)
		})
		exportFile("nrl_data_statistics.txt", func(f *os.File) error {
			return statsService.ExportStatisticsTSV(ctx, f, *exportSeason)
		})
		exportFile("nrl_data_detailed.txt", func(f *os.File) error {
			return statsService.ExportDetailedTSV(ctx, f, *exportSeason)
		})
		exportFile("nrl_data_try.txt", func(f *os.File) error {
			return statsService.ExportTryTSV(ctx, f, *exportSeason)
		})
	},
}
