package main

import (
	"context"
	"log/slog"

	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/services/digest"
	"nrltips-backend/services/predictor"
	"nrltips-backend/services/results"
	"nrltips-backend/services/stats"

	"github.com/robfig/cron/v3"
)

type Daemons struct {
	client    nrl.Client
	results   results.Service
	stats     stats.Service
	predictor predictor.Service
	digest    digest.Service
	config    Config
}

// Start registers the cron jobs and runs them until ctx is cancelled.
func (d Daemons) Start(ctx context.Context) (func(), error) {
	c := cron.New()

	if d.config.Scrape.Schedule != "" {
		_, err := c.AddFunc(d.config.Scrape.Schedule, func() {
			d.Rescrape(ctx)
		})
		if err != nil {
			return nil, err
		}
	}
	if d.config.Digest.Schedule != "" {
		_, err := c.AddFunc(d.config.Digest.Schedule, func() {
			d.SendDigest(ctx)
		})
		if err != nil {
			return nil, err
		}
	}

	c.Start()
	return func() { c.Stop() }, nil
}

// currentRound is the earliest round with an unplayed fixture, or the last
// stored round once the season is done.
func (d Daemons) currentRound(ctx context.Context) (int, error) {
	matches, err := d.results.Matches(ctx, d.config.Scrape.Season)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 1, nil
	}

	last := 1
	for _, m := range matches {
		if !m.Played() {
			return m.Round, nil
		}
		if m.Round > last {
			last = m.Round
		}
	}
	return last, nil
}

// Rescrape refreshes the current round's fixtures, scrapes the match centre
// of any newly completed matches and rebuilds the ratings.
func (d Daemons) Rescrape(ctx context.Context) {
	season := d.config.Scrape.Season

	round, err := d.currentRound(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "rescrape: failed to find current round", "err", err)
		return
	}

	fixtures, err := d.client.FetchRound(ctx, season, round)
	if err != nil {
		slog.ErrorContext(ctx, "rescrape: failed to fetch round",
			"season", season, "round", round, "err", err)
		return
	}
	if len(fixtures) > 0 {
		err = d.results.ImportRound(ctx, season, round, fixtures)
		if err != nil {
			slog.ErrorContext(ctx, "rescrape: failed to store round",
				"season", season, "round", round, "err", err)
			return
		}
	}

	for _, f := range fixtures {
		if !f.Played() {
			continue
		}
		detail, err := d.client.FetchMatch(ctx, season, round, f.HomeTeam, f.AwayTeam)
		if err != nil {
			slog.ErrorContext(ctx, "rescrape: failed to fetch match centre",
				"home", f.HomeTeam, "away", f.AwayTeam, "err", err)
			continue
		}
		err = d.stats.ImportMatch(ctx, season, round, detail)
		if err != nil {
			slog.ErrorContext(ctx, "rescrape: failed to store match detail",
				"home", f.HomeTeam, "away", f.AwayTeam, "err", err)
		}
	}

	err = d.predictor.Rebuild(ctx, season)
	if err != nil {
		slog.ErrorContext(ctx, "rescrape: failed to rebuild ratings", "err", err)
		return
	}
	slog.InfoContext(ctx, "rescrape complete", "season", season, "round", round)
}

// SendDigest emails the upcoming round's predictions.
func (d Daemons) SendDigest(ctx context.Context) {
	if len(d.config.Digest.Smtp.To) == 0 {
		slog.WarnContext(ctx, "digest: no recipients configured, skipping")
		return
	}

	round, err := d.currentRound(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "digest: failed to find current round", "err", err)
		return
	}

	err = d.digest.SendRoundPreview(ctx, d.config.Scrape.Season, round)
	if err != nil {
		slog.ErrorContext(ctx, "digest: failed to send round preview",
			"round", round, "err", err)
		return
	}
	slog.InfoContext(ctx, "digest sent", "round", round)
}
