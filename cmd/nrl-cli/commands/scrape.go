package commands

import (
	"log/slog"

	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/lib/serviceutil"
	"nrltips-backend/lib/sqliteutil"
	"nrltips-backend/lib/timezone"
	"nrltips-backend/services/results"
	resultsdb "nrltips-backend/services/results/db"
	"nrltips-backend/services/stats"
	statsdb "nrltips-backend/services/stats/db"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"
)

var (
	scrapeSeason *int
	scrapeRound  *int
	scrapeDb     *string
	scrapeCache  *string
)

func init() {
	scrapeSeason = scrapeCmd.PersistentFlags().Int("season", timezone.Now().Year(), "The season to scrape.")
	scrapeRound = scrapeCmd.PersistentFlags().Int("round", 0, "A single round to scrape, all rounds when unset.")
	scrapeDb = scrapeCmd.PersistentFlags().String("db", "nrl.db", "The database to write scrape results to.")
	scrapeCache = scrapeCmd.PersistentFlags().String("cache", ".cache/pages", "The page cache directory, empty to disable caching.")

	scrapeCmd.AddCommand(scrapeDrawCmd)
	scrapeCmd.AddCommand(scrapeMatchesCmd)
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrapes nrl.com pages into a local database.",
}

func createClient() (nrl.Client, func()) {
	cleanup := func() {}

	var cache *badger.DB
	if *scrapeCache != "" {
		var err error
		cache, err = badger.Open(badger.DefaultOptions(*scrapeCache))
		if err != nil {
			serviceutil.Fatal("failed to open page cache", err)
		}
		cleanup = func() {
			cache.Close()
		}
	}

	client, err := nrl.NewClient(nrl.ClientOptions{Cache: cache})
	if err != nil {
		serviceutil.Fatal("failed to initialize nrl client", err)
	}
	return client, cleanup
}

func scrapeRounds() []int {
	if *scrapeRound > 0 {
		return []int{*scrapeRound}
	}
	rounds := make([]int, 0, nrl.RoundsPerSeason)
	for round := 1; round <= nrl.RoundsPerSeason; round++ {
		rounds = append(rounds, round)
	}
	return rounds
}

var scrapeDrawCmd = &cobra.Command{
	Use:   "draw [--season <year>] [--round <n>] [--db <path>]",
	Short: "Scrapes the draw pages of a season and stores the fixtures.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client, cleanup := createClient()
		defer cleanup()

		database, err := sqliteutil.OpenDB(resultsdb.Schema, *scrapeDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		service := results.NewService(database)

		for _, round := range scrapeRounds() {
			fixtures, err := client.FetchRound(ctx, *scrapeSeason, round)
			if err != nil {
				slog.ErrorContext(ctx, "failed to scrape round, skipping",
					"season", *scrapeSeason, "round", round, "err", err)
				continue
			}
			if len(fixtures) == 0 {
				slog.InfoContext(ctx, "round has no fixtures",
					"season", *scrapeSeason, "round", round)
				continue
			}
			err = service.ImportRound(ctx, *scrapeSeason, round, fixtures)
			if err != nil {
				slog.ErrorContext(ctx, "failed to store round, skipping",
					"season", *scrapeSeason, "round", round, "err", err)
				continue
			}
			slog.InfoContext(ctx, "scraped round",
				"season", *scrapeSeason, "round", round, "fixtures", len(fixtures))
		}
	},
}

var scrapeMatchesCmd = &cobra.Command{
	Use:   "matches [--season <year>] [--round <n>] [--db <path>]",
	Short: "Scrapes the match centre of every stored fixture that has been played.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client, cleanup := createClient()
		defer cleanup()

		database, err := sqliteutil.OpenDB(resultsdb.Schema, *scrapeDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		if _, err := database.Exec(statsdb.Schema); err != nil {
			serviceutil.Fatal("failed to apply stats schema", err)
		}

		resultsService := results.NewService(database)
		statsService := stats.NewService(database)

		var matches []results.Match
		if *scrapeRound > 0 {
			matches, err = resultsService.Round(ctx, *scrapeSeason, *scrapeRound)
		} else {
			matches, err = resultsService.Matches(ctx, *scrapeSeason)
		}
		if err != nil {
			serviceutil.Fatal("failed to load stored fixtures", err)
		}

		for _, m := range matches {
			if !m.Played() {
				continue
			}
			detail, err := client.FetchMatch(ctx, m.Season, m.Round, m.HomeTeam, m.AwayTeam)
			if err != nil {
				slog.ErrorContext(ctx, "failed to scrape match, skipping",
					"season", m.Season, "round", m.Round,
					"home", m.HomeTeam, "away", m.AwayTeam, "err", err)
				continue
			}
			err = statsService.ImportMatch(ctx, m.Season, m.Round, detail)
			if err != nil {
				slog.ErrorContext(ctx, "failed to store match, skipping",
					"season", m.Season, "round", m.Round,
					"home", m.HomeTeam, "away", m.AwayTeam, "err", err)
				continue
			}
			slog.InfoContext(ctx, "scraped match",
				"season", m.Season, "round", m.Round,
				"home", m.HomeTeam, "away", m.AwayTeam)
		}
	},
}
