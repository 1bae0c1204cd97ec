package results

import (
	"context"
	"database/sql"
	"sort"

	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/services/results/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/results")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// Match is a stored fixture. Scores are nil until the match has been played.
type Match struct {
	Season    int
	Round     int
	Title     string
	Kickoff   string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
	Venue     string
}

func (m Match) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

func matchFromRow(r db.Match) Match {
	m := Match{
		Season:   int(r.Season),
		Round:    int(r.Round),
		Title:    r.Title,
		Kickoff:  r.Kickoff,
		HomeTeam: r.HomeTeam,
		AwayTeam: r.AwayTeam,
		Venue:    r.Venue,
	}
	if r.HomeScore.Valid {
		score := int(r.HomeScore.Int64)
		m.HomeScore = &score
	}
	if r.AwayScore.Valid {
		score := int(r.AwayScore.Int64)
		m.AwayScore = &score
	}
	return m
}

func nullScore(score *int) sql.NullInt64 {
	if score == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*score), Valid: true}
}

// ImportRound replaces the stored fixtures for one round with a freshly
// scraped set. The swap happens in a single transaction so readers never
// see a half-written round.
func (s Service) ImportRound(ctx context.Context, season, round int, fixtures []nrl.Fixture) error {
	ctx, span := tracer.Start(ctx, "ImportRound")
	defer span.End()

	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
		attribute.Int("fixtures", len(fixtures)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteRound(ctx, db.DeleteRoundParams{
		Season: int64(season),
		Round:  int64(round),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, f := range fixtures {
		err := txqry.CreateMatch(ctx, db.CreateMatchParams{
			Season:    int64(season),
			Round:     int64(round),
			Title:     f.Title,
			Kickoff:   f.Date,
			HomeTeam:  f.HomeTeam,
			AwayTeam:  f.AwayTeam,
			HomeScore: nullScore(f.HomeScore),
			AwayScore: nullScore(f.AwayScore),
			Venue:     f.Venue,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Matches returns every stored fixture for a season ordered by round.
func (s Service) Matches(ctx context.Context, season int) ([]Match, error) {
	ctx, span := tracer.Start(ctx, "Matches")
	defer span.End()

	span.SetAttributes(attribute.Int("season", season))

	rows, err := s.qry.GetSeasonMatches(ctx, int64(season))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	matches := make([]Match, len(rows))
	for i, r := range rows {
		matches[i] = matchFromRow(r)
	}
	return matches, nil
}

// Round returns the stored fixtures for a single round.
func (s Service) Round(ctx context.Context, season, round int) ([]Match, error) {
	ctx, span := tracer.Start(ctx, "Round")
	defer span.End()

	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
	)

	rows, err := s.qry.GetRoundMatches(ctx, db.GetRoundMatchesParams{
		Season: int64(season),
		Round:  int64(round),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	matches := make([]Match, len(rows))
	for i, r := range rows {
		matches[i] = matchFromRow(r)
	}
	return matches, nil
}

// Completed returns the played matches of a season ordered by round.
func (s Service) Completed(ctx context.Context, season int) ([]Match, error) {
	ctx, span := tracer.Start(ctx, "Completed")
	defer span.End()

	span.SetAttributes(attribute.Int("season", season))

	rows, err := s.qry.GetCompletedMatches(ctx, int64(season))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	matches := make([]Match, len(rows))
	for i, r := range rows {
		matches[i] = matchFromRow(r)
	}
	return matches, nil
}

// Seasons lists the seasons with at least one stored fixture, ascending.
func (s Service) Seasons(ctx context.Context) ([]int, error) {
	ctx, span := tracer.Start(ctx, "Seasons")
	defer span.End()

	rows, err := s.qry.GetSeasons(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	seasons := make([]int, len(rows))
	for i, r := range rows {
		seasons[i] = int(r)
	}
	return seasons, nil
}

// LadderEntry is one team's standing: 2 competition points per win, 1 per
// draw. Differential is points scored minus points conceded.
type LadderEntry struct {
	Team          string
	Played        int
	Wins          int
	Draws         int
	Losses        int
	PointsFor     int
	PointsAgainst int
	Differential  int
	Points        int
}

// Ladder computes the season standings from completed matches, ordered by
// competition points then differential then team name.
func (s Service) Ladder(ctx context.Context, season int) ([]LadderEntry, error) {
	ctx, span := tracer.Start(ctx, "Ladder")
	defer span.End()

	span.SetAttributes(attribute.Int("season", season))

	matches, err := s.Completed(ctx, season)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	entries := map[string]*LadderEntry{}
	entry := func(team string) *LadderEntry {
		e, ok := entries[team]
		if !ok {
			e = &LadderEntry{Team: team}
			entries[team] = e
		}
		return e
	}

	for _, m := range matches {
		home := entry(m.HomeTeam)
		away := entry(m.AwayTeam)

		home.Played++
		away.Played++
		home.PointsFor += *m.HomeScore
		home.PointsAgainst += *m.AwayScore
		away.PointsFor += *m.AwayScore
		away.PointsAgainst += *m.HomeScore

		switch {
		case *m.HomeScore > *m.AwayScore:
			home.Wins++
			away.Losses++
		case *m.HomeScore < *m.AwayScore:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}

	ladder := make([]LadderEntry, 0, len(entries))
	for _, e := range entries {
		e.Differential = e.PointsFor - e.PointsAgainst
		e.Points = e.Wins*2 + e.Draws
		ladder = append(ladder, *e)
	}
	sort.Slice(ladder, func(i, j int) bool {
		if ladder[i].Points != ladder[j].Points {
			return ladder[i].Points > ladder[j].Points
		}
		if ladder[i].Differential != ladder[j].Differential {
			return ladder[i].Differential > ladder[j].Differential
		}
		return ladder[i].Team < ladder[j].Team
	})
	return ladder, nil
}
