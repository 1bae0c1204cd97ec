package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/lib/testutil"
	predictordb "nrltips-backend/services/predictor/db"
	resultsdb "nrltips-backend/services/results/db"

	"nrltips-backend/services/predictor"
	"nrltips-backend/services/results"

	"github.com/stretchr/testify/require"
)

func intptr(v int) *int {
	return &v
}

func setupServer(t *testing.T) (*httptest.Server, func()) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/api",
		DbSchema: resultsdb.Schema,
	})
	_, err := setup.DB.Exec(predictordb.Schema)
	if err != nil {
		t.Fatal(err)
	}

	resultsService := results.NewService(setup.DB)
	predictorService := predictor.NewService(setup.DB, resultsService)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err = resultsService.ImportRound(ctx, 2024, 1, []nrl.Fixture{
		{
			Season: 2024, Round: 1,
			Title:    "Broncos v Roosters",
			HomeTeam: "Broncos", AwayTeam: "Roosters",
			HomeScore: intptr(30), AwayScore: intptr(10),
			Venue: "Suncorp Stadium",
		},
		{
			Season: 2024, Round: 1,
			HomeTeam: "Storm", AwayTeam: "Panthers",
			HomeScore: intptr(16), AwayScore: intptr(20),
		},
	})
	require.NoError(t, err)
	err = resultsService.ImportRound(ctx, 2024, 2, []nrl.Fixture{
		{HomeTeam: "Broncos", AwayTeam: "Storm"},
	})
	require.NoError(t, err)
	err = predictorService.Rebuild(ctx, 2024)
	require.NoError(t, err)

	server := NewServer(resultsService, predictorService)
	httpServer := httptest.NewServer(server.Router())
	return httpServer, func() {
		httpServer.Close()
		cleanup()
	}
}

func get(t *testing.T, server *httptest.Server, path string, out any) int {
	res, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()

	if out != nil && res.StatusCode == http.StatusOK {
		err = json.NewDecoder(res.Body).Decode(out)
		require.NoError(t, err)
	}
	return res.StatusCode
}

func TestMatches(t *testing.T) {
	server, cleanup := setupServer(t)
	defer cleanup()

	var matches []matchBody
	status := get(t, server, "/api/v1/seasons/2024/matches", &matches)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, matches, 3)
	require.Equal(t, "Broncos", matches[0].HomeTeam)
	require.True(t, matches[0].Played)
	require.False(t, matches[2].Played)
	require.Nil(t, matches[2].HomeScore)

	matches = nil
	status = get(t, server, "/api/v1/seasons/2024/matches?round=2", &matches)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, matches, 1)

	status = get(t, server, "/api/v1/seasons/notayear/matches", nil)
	require.Equal(t, http.StatusBadRequest, status)

	status = get(t, server, "/api/v1/seasons/2024/matches?round=nope", nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestLadder(t *testing.T) {
	server, cleanup := setupServer(t)
	defer cleanup()

	var ladder []results.LadderEntry
	status := get(t, server, "/api/v1/seasons/2024/ladder", &ladder)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, ladder, 4)
	require.Equal(t, "Broncos", ladder[0].Team)
	require.Equal(t, 2, ladder[0].Points)
}

func TestRatings(t *testing.T) {
	server, cleanup := setupServer(t)
	defer cleanup()

	var ratings []predictor.TeamRating
	status := get(t, server, "/api/v1/ratings", &ratings)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, ratings, 4)
	require.Equal(t, "Broncos", ratings[0].Team)
}

func TestPredict(t *testing.T) {
	server, cleanup := setupServer(t)
	defer cleanup()

	var prediction predictor.Prediction
	status := get(t, server, "/api/v1/predict?home=Broncos&away=Storm", &prediction)
	require.Equal(t, http.StatusOK, status)
	require.Greater(t, prediction.HomeWinChance, 0.5)

	status = get(t, server, "/api/v1/predict?home=Broncos", nil)
	require.Equal(t, http.StatusBadRequest, status)

	status = get(t, server, "/api/v1/predict?home=Broncos&away=Dolphins", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestRoundPredictions(t *testing.T) {
	server, cleanup := setupServer(t)
	defer cleanup()

	var predictions []predictor.Prediction
	status := get(t, server, "/api/v1/seasons/2024/rounds/2/predictions", &predictions)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, predictions, 1)
	require.Equal(t, "Broncos", predictions[0].HomeTeam)

	status = get(t, server, "/api/v1/seasons/2024/rounds/25/predictions", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestHealthz(t *testing.T) {
	server, cleanup := setupServer(t)
	defer cleanup()

	var body map[string]string
	status := get(t, server, "/api/v1/healthz", &body)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["status"])
}
