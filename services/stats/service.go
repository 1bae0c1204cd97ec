package stats

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/services/stats/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/stats")

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

// TeamStats is one side's numbers for a stored match. Stats carries the
// scraped bar/donut/summary values keyed like nrl.BarStatKeys.
type TeamStats struct {
	Season         int
	Round          int
	HomeTeam       string
	AwayTeam       string
	Team           string
	Side           string
	Possession     float64
	Stats          map[string]float64
	FirstTryScorer string
	FirstTryMinute int
}

type Try struct {
	Season   int
	Round    int
	HomeTeam string
	AwayTeam string
	Team     string
	Side     string
	Scorer   string
	Minute   int
}

// MatchSummary is the match-level detail row: conditions, officials and the
// overall first try.
type MatchSummary struct {
	Season           int
	Round            int
	HomeTeam         string
	AwayTeam         string
	FirstTryScorer   string
	FirstTryMinute   int
	FirstTryTeam     string
	MainReferee      string
	GroundCondition  string
	WeatherCondition string
}

// ImportMatch replaces the stored detail rows for one match with a freshly
// scraped MatchDetail. The swap happens in a single transaction.
func (s Service) ImportMatch(ctx context.Context, season, round int, detail nrl.MatchDetail) error {
	ctx, span := tracer.Start(ctx, "ImportMatch")
	defer span.End()

	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
		attribute.String("home", detail.Home.Team),
		attribute.String("away", detail.Away.Team),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	existing, err := txqry.GetMatchID(ctx, db.GetMatchIDParams{
		Season:   int64(season),
		Round:    int64(round),
		HomeTeam: detail.Home.Team,
		AwayTeam: detail.Away.Team,
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err == nil {
		for _, del := range []func(context.Context, int64) error{
			txqry.DeleteMatchTeamStats,
			txqry.DeleteMatchTries,
			txqry.DeleteMatchOfficials,
			txqry.DeleteMatchDetail,
		} {
			if err := del(ctx, existing); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
		}
	}

	matchId, err := txqry.CreateMatchDetail(ctx, db.CreateMatchDetailParams{
		Season:           int64(season),
		Round:            int64(round),
		HomeTeam:         detail.Home.Team,
		AwayTeam:         detail.Away.Team,
		FirstTryScorer:   detail.FirstTryScorer,
		FirstTryMinute:   int64(detail.FirstTryMinute),
		FirstTryTeam:     detail.FirstTryTeam,
		MainReferee:      detail.MainReferee,
		GroundCondition:  detail.GroundCondition,
		WeatherCondition: detail.WeatherCondition,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, side := range []struct {
		name  string
		stats nrl.SideStats
	}{
		{"home", detail.Home},
		{"away", detail.Away},
	} {
		encoded, err := json.Marshal(side.stats.Stats)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		err = txqry.CreateTeamStat(ctx, db.CreateTeamStatParams{
			MatchID:        matchId,
			Team:           side.stats.Team,
			Side:           side.name,
			Possession:     side.stats.Possession,
			Stats:          string(encoded),
			FirstTryScorer: side.stats.FirstTryScorer,
			FirstTryMinute: int64(side.stats.FirstTryMinute),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		for _, try := range side.stats.Tries {
			err := txqry.CreateTry(ctx, db.CreateTryParams{
				MatchID: matchId,
				Team:    side.stats.Team,
				Side:    side.name,
				Scorer:  try.Scorer,
				Minute:  int64(try.Minute),
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
		}
	}

	for _, official := range detail.Officials {
		err := txqry.CreateOfficial(ctx, db.CreateOfficialParams{
			MatchID:  matchId,
			Name:     official.Name,
			Position: official.Position,
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

// TeamStats returns both sides' stats for every stored match of a round.
func (s Service) TeamStats(ctx context.Context, season, round int) ([]TeamStats, error) {
	ctx, span := tracer.Start(ctx, "TeamStats")
	defer span.End()

	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
	)

	rows, err := s.qry.GetRoundTeamStats(ctx, db.GetRoundTeamStatsParams{
		Season: int64(season),
		Round:  int64(round),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]TeamStats, len(rows))
	for i, r := range rows {
		values := map[string]float64{}
		if err := json.Unmarshal([]byte(r.Stats), &values); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		out[i] = TeamStats{
			Season:         int(r.Season),
			Round:          int(r.Round),
			HomeTeam:       r.HomeTeam,
			AwayTeam:       r.AwayTeam,
			Team:           r.Team,
			Side:           r.Side,
			Possession:     r.Possession,
			Stats:          values,
			FirstTryScorer: r.FirstTryScorer,
			FirstTryMinute: int(r.FirstTryMinute),
		}
	}
	return out, nil
}

// Tries returns every try of a round in scoring order per match.
func (s Service) Tries(ctx context.Context, season, round int) ([]Try, error) {
	ctx, span := tracer.Start(ctx, "Tries")
	defer span.End()

	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
	)

	rows, err := s.qry.GetRoundTries(ctx, db.GetRoundTriesParams{
		Season: int64(season),
		Round:  int64(round),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]Try, len(rows))
	for i, r := range rows {
		out[i] = Try{
			Season:   int(r.Season),
			Round:    int(r.Round),
			HomeTeam: r.HomeTeam,
			AwayTeam: r.AwayTeam,
			Team:     r.Team,
			Side:     r.Side,
			Scorer:   r.Scorer,
			Minute:   int(r.Minute),
		}
	}
	return out, nil
}

// Summaries returns the match-level detail rows for a round.
func (s Service) Summaries(ctx context.Context, season, round int) ([]MatchSummary, error) {
	ctx, span := tracer.Start(ctx, "Summaries")
	defer span.End()

	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
	)

	rows, err := s.qry.GetRoundDetails(ctx, db.GetRoundDetailsParams{
		Season: int64(season),
		Round:  int64(round),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]MatchSummary, len(rows))
	for i, r := range rows {
		out[i] = summaryFromRow(r)
	}
	return out, nil
}

func summaryFromRow(r db.MatchDetail) MatchSummary {
	return MatchSummary{
		Season:           int(r.Season),
		Round:            int(r.Round),
		HomeTeam:         r.HomeTeam,
		AwayTeam:         r.AwayTeam,
		FirstTryScorer:   r.FirstTryScorer,
		FirstTryMinute:   int(r.FirstTryMinute),
		FirstTryTeam:     r.FirstTryTeam,
		MainReferee:      r.MainReferee,
		GroundCondition:  r.GroundCondition,
		WeatherCondition: r.WeatherCondition,
	}
}
