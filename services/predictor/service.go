package predictor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"nrltips-backend/services/predictor/db"
	"nrltips-backend/services/results"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/predictor")

var ErrUnknownTeam = errors.New("no rating for team")

// MatchSource provides the stored fixtures the ratings are built from.
type MatchSource interface {
	Completed(ctx context.Context, season int) ([]results.Match, error)
	Round(ctx context.Context, season, round int) ([]results.Match, error)
}

type Service struct {
	db      *sql.DB
	qry     *db.Queries
	matches MatchSource
}

func NewService(database *sql.DB, matches MatchSource) Service {
	return Service{
		db:      database,
		qry:     db.New(database),
		matches: matches,
	}
}

type TeamRating struct {
	Team   string
	Rating float64
	Played int
}

type Prediction struct {
	HomeTeam       string
	AwayTeam       string
	HomeRating     float64
	AwayRating     float64
	HomeWinChance  float64
	ExpectedMargin float64
}

// Rebuild replays every completed match of a season in played order and
// persists the resulting ratings. Replaying the same stored matches always
// lands on the same ratings.
func (s Service) Rebuild(ctx context.Context, season int) error {
	ctx, span := tracer.Start(ctx, "Rebuild")
	defer span.End()

	span.SetAttributes(attribute.Int("season", season))

	completed, err := s.matches.Completed(ctx, season)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	led := newLedger()
	for _, m := range completed {
		led.apply(m.HomeTeam, m.AwayTeam, *m.HomeScore, *m.AwayScore)
	}

	teams := make([]string, 0, len(led.ratings))
	for team := range led.ratings {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteRatings(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	for _, team := range teams {
		err := txqry.CreateRating(ctx, db.CreateRatingParams{
			Team:   team,
			Rating: led.ratings[team],
			Played: int64(led.played[team]),
			Season: int64(season),
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

// Ratings returns the current table ordered strongest first.
func (s Service) Ratings(ctx context.Context) ([]TeamRating, error) {
	ctx, span := tracer.Start(ctx, "Ratings")
	defer span.End()

	rows, err := s.qry.GetRatings(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	ratings := make([]TeamRating, len(rows))
	for i, r := range rows {
		ratings[i] = TeamRating{
			Team:   r.Team,
			Rating: r.Rating,
			Played: int(r.Played),
		}
	}
	return ratings, nil
}

// Predict returns the home side's win chance and expected margin for a
// pairing. Both teams must have a stored rating.
func (s Service) Predict(ctx context.Context, home, away string) (Prediction, error) {
	ctx, span := tracer.Start(ctx, "Predict")
	defer span.End()

	span.SetAttributes(
		attribute.String("home", home),
		attribute.String("away", away),
	)

	homeRating, err := s.qry.GetRating(ctx, home)
	if errors.Is(err, sql.ErrNoRows) {
		return Prediction{}, fmt.Errorf("%w: %s", ErrUnknownTeam, home)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Prediction{}, err
	}
	awayRating, err := s.qry.GetRating(ctx, away)
	if errors.Is(err, sql.ErrNoRows) {
		return Prediction{}, fmt.Errorf("%w: %s", ErrUnknownTeam, away)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Prediction{}, err
	}

	winChance, margin := predict(homeRating.Rating, awayRating.Rating)
	return Prediction{
		HomeTeam:       home,
		AwayTeam:       away,
		HomeRating:     homeRating.Rating,
		AwayRating:     awayRating.Rating,
		HomeWinChance:  winChance,
		ExpectedMargin: margin,
	}, nil
}

// PredictRound predicts every stored fixture of a round. Teams without a
// stored rating are treated as unrated newcomers at the initial rating.
func (s Service) PredictRound(ctx context.Context, season, round int) ([]Prediction, error) {
	ctx, span := tracer.Start(ctx, "PredictRound")
	defer span.End()

	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
	)

	fixtures, err := s.matches.Round(ctx, season, round)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	predictions := make([]Prediction, len(fixtures))
	for i, f := range fixtures {
		homeRating, err := s.ratingOrInitial(ctx, f.HomeTeam)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		awayRating, err := s.ratingOrInitial(ctx, f.AwayTeam)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		winChance, margin := predict(homeRating, awayRating)
		predictions[i] = Prediction{
			HomeTeam:       f.HomeTeam,
			AwayTeam:       f.AwayTeam,
			HomeRating:     homeRating,
			AwayRating:     awayRating,
			HomeWinChance:  winChance,
			ExpectedMargin: margin,
		}
	}
	return predictions, nil
}

func (s Service) ratingOrInitial(ctx context.Context, team string) (float64, error) {
	r, err := s.qry.GetRating(ctx, team)
	if errors.Is(err, sql.ErrNoRows) {
		return InitialRating, nil
	}
	if err != nil {
		return 0, err
	}
	return r.Rating, nil
}
