package predictor

import (
	"context"
	"testing"
	"time"

	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/lib/testutil"
	"nrltips-backend/services/predictor/db"
	"nrltips-backend/services/results"
	resultsdb "nrltips-backend/services/results/db"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func intptr(v int) *int {
	return &v
}

func setupServices(t *testing.T) (Service, results.Service, func()) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/predictor",
		DbSchema: db.Schema,
	})
	_, err := setup.DB.Exec(resultsdb.Schema)
	if err != nil {
		t.Fatal(err)
	}

	resultsService := results.NewService(setup.DB)
	return NewService(setup.DB, resultsService), resultsService, cleanup
}

// the cli applies the schema on every invocation, so it has to be a
// no-op over an already initialized database
func TestSchemaReapply(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/predictor/schema",
		DbSchema: db.Schema,
	})
	defer cleanup()

	_, err := setup.DB.Exec(db.Schema)
	require.NoError(t, err)
}

func seedSeason(t *testing.T, ctx context.Context, resultsService results.Service) {
	err := resultsService.ImportRound(ctx, 2024, 1, []nrl.Fixture{
		{HomeTeam: "Broncos", AwayTeam: "Roosters", HomeScore: intptr(30), AwayScore: intptr(10)},
		{HomeTeam: "Storm", AwayTeam: "Panthers", HomeScore: intptr(16), AwayScore: intptr(20)},
	})
	require.NoError(t, err)
	err = resultsService.ImportRound(ctx, 2024, 2, []nrl.Fixture{
		{HomeTeam: "Roosters", AwayTeam: "Storm", HomeScore: intptr(24), AwayScore: intptr(12)},
		{HomeTeam: "Panthers", AwayTeam: "Broncos", HomeScore: intptr(18), AwayScore: intptr(18)},
		// unplayed fixtures never move ratings
		{HomeTeam: "Sharks", AwayTeam: "Raiders"},
	})
	require.NoError(t, err)
}

func TestRebuildAndRatings(t *testing.T) {
	service, resultsService, cleanup := setupServices(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	seedSeason(t, ctx, resultsService)

	err := service.Rebuild(ctx, 2024)
	require.NoError(t, err)

	ratings, err := service.Ratings(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 4)

	// Broncos won big then drew, they should top the table
	require.Equal(t, "Broncos", ratings[0].Team)
	require.Greater(t, ratings[0].Rating, float64(InitialRating))
	require.Equal(t, 2, ratings[0].Played)

	for i := 1; i < len(ratings); i++ {
		require.GreaterOrEqual(t, ratings[i-1].Rating, ratings[i].Rating)
	}

	// unplayed fixtures contribute nothing
	for _, r := range ratings {
		require.NotEqual(t, "Sharks", r.Team)
		require.NotEqual(t, "Raiders", r.Team)
	}
}

func TestRebuildIsDeterministic(t *testing.T) {
	service, resultsService, cleanup := setupServices(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	seedSeason(t, ctx, resultsService)

	err := service.Rebuild(ctx, 2024)
	require.NoError(t, err)
	first, err := service.Ratings(ctx)
	require.NoError(t, err)

	err = service.Rebuild(ctx, 2024)
	require.NoError(t, err)
	second, err := service.Ratings(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("ratings differ between rebuilds:\n%s", diff)
	}
}

func TestPredict(t *testing.T) {
	service, resultsService, cleanup := setupServices(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	seedSeason(t, ctx, resultsService)
	err := service.Rebuild(ctx, 2024)
	require.NoError(t, err)

	prediction, err := service.Predict(ctx, "Broncos", "Storm")
	require.NoError(t, err)
	require.Equal(t, "Broncos", prediction.HomeTeam)
	require.Greater(t, prediction.HomeWinChance, 0.5)
	require.Greater(t, prediction.ExpectedMargin, 0.0)

	_, err = service.Predict(ctx, "Broncos", "Dolphins")
	require.ErrorIs(t, err, ErrUnknownTeam)
}

func TestPredictRound(t *testing.T) {
	service, resultsService, cleanup := setupServices(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	seedSeason(t, ctx, resultsService)
	err := service.Rebuild(ctx, 2024)
	require.NoError(t, err)

	predictions, err := service.PredictRound(ctx, 2024, 2)
	require.NoError(t, err)
	require.Len(t, predictions, 3)

	// unrated newcomers fall back to the initial rating
	newcomers := predictions[2]
	require.Equal(t, "Sharks", newcomers.HomeTeam)
	require.Equal(t, float64(InitialRating), newcomers.HomeRating)
	require.Equal(t, float64(InitialRating), newcomers.AwayRating)
	require.Greater(t, newcomers.HomeWinChance, 0.5)
}
