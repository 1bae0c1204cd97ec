package results

import (
	"context"
	"strings"
	"testing"
	"time"

	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/lib/testutil"
	"nrltips-backend/services/results/db"

	"github.com/stretchr/testify/require"
)

func intptr(v int) *int {
	return &v
}

func TestService(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/results",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		matches, err := service.Matches(ctx, 2024)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, matches, 0)
	}
	{
		err := service.ImportRound(ctx, 2024, 1, []nrl.Fixture{
			{
				Season:    2024,
				Round:     1,
				Title:     "Broncos v Roosters",
				Date:      "2024-03-07T20:00:00+10:00",
				HomeTeam:  "Broncos",
				AwayTeam:  "Roosters",
				HomeScore: intptr(28),
				AwayScore: intptr(18),
				Venue:     "Suncorp Stadium",
			},
			{
				Season:   2024,
				Round:    1,
				Title:    "Storm v Panthers",
				Date:     "2024-03-08T20:00:00+11:00",
				HomeTeam: "Storm",
				AwayTeam: "Panthers",
				Venue:    "AAMI Park",
			},
		})
		if err != nil {
			t.Fatal(err)
		}

		matches, err := service.Matches(ctx, 2024)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, matches, 2)
		require.True(t, matches[0].Played())
		require.False(t, matches[1].Played())
		require.Equal(t, 28, *matches[0].HomeScore)

		completed, err := service.Completed(ctx, 2024)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, completed, 1)
	}
	{
		// re-importing the round replaces it, the scraped score update wins
		err := service.ImportRound(ctx, 2024, 1, []nrl.Fixture{
			{
				Season:    2024,
				Round:     1,
				Title:     "Broncos v Roosters",
				Date:      "2024-03-07T20:00:00+10:00",
				HomeTeam:  "Broncos",
				AwayTeam:  "Roosters",
				HomeScore: intptr(28),
				AwayScore: intptr(18),
				Venue:     "Suncorp Stadium",
			},
			{
				Season:    2024,
				Round:     1,
				Title:     "Storm v Panthers",
				Date:      "2024-03-08T20:00:00+11:00",
				HomeTeam:  "Storm",
				AwayTeam:  "Panthers",
				HomeScore: intptr(8),
				AwayScore: intptr(12),
				Venue:     "AAMI Park",
			},
		})
		if err != nil {
			t.Fatal(err)
		}

		round, err := service.Round(ctx, 2024, 1)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, round, 2)
		require.True(t, round[1].Played())
	}
	{
		err := service.ImportRound(ctx, 2024, 2, []nrl.Fixture{
			{
				Season:    2024,
				Round:     2,
				Title:     "Panthers v Broncos",
				Date:      "2024-03-14T20:00:00+11:00",
				HomeTeam:  "Panthers",
				AwayTeam:  "Broncos",
				HomeScore: intptr(22),
				AwayScore: intptr(22),
				Venue:     "BlueBet Stadium",
			},
		})
		if err != nil {
			t.Fatal(err)
		}

		seasons, err := service.Seasons(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, []int{2024}, seasons)
	}
}

func TestLadder(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/results/ladder",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.ImportRound(ctx, 2024, 1, []nrl.Fixture{
		{HomeTeam: "Broncos", AwayTeam: "Roosters", HomeScore: intptr(28), AwayScore: intptr(18)},
		{HomeTeam: "Storm", AwayTeam: "Panthers", HomeScore: intptr(8), AwayScore: intptr(12)},
	})
	require.NoError(t, err)
	err = service.ImportRound(ctx, 2024, 2, []nrl.Fixture{
		{HomeTeam: "Panthers", AwayTeam: "Broncos", HomeScore: intptr(22), AwayScore: intptr(22)},
		{HomeTeam: "Roosters", AwayTeam: "Storm", HomeScore: intptr(30), AwayScore: intptr(6)},
		// unplayed matches never count towards the ladder
		{HomeTeam: "Sharks", AwayTeam: "Raiders"},
	})
	require.NoError(t, err)

	ladder, err := service.Ladder(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, ladder, 4)

	// Broncos and Panthers are tied on 3 points (win + draw each), the
	// Broncos' +10 differential beats the Panthers' +4
	require.Equal(t, "Broncos", ladder[0].Team)
	require.Equal(t, 3, ladder[0].Points)
	require.Equal(t, 10, ladder[0].Differential)
	require.Equal(t, "Panthers", ladder[1].Team)
	require.Equal(t, 3, ladder[1].Points)
	require.Equal(t, 4, ladder[1].Differential)
	require.Equal(t, "Roosters", ladder[2].Team)
	require.Equal(t, 2, ladder[2].Points)

	// Storm lost both
	last := ladder[len(ladder)-1]
	require.Equal(t, "Storm", last.Team)
	require.Equal(t, 0, last.Points)
	require.Equal(t, 2, last.Losses)
}

func TestExportTSV(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/results/export",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.ImportRound(ctx, 2024, 1, []nrl.Fixture{
		{
			Season:    2024,
			Round:     1,
			Title:     "Broncos v Roosters",
			Date:      "2024-03-07T20:00:00+10:00",
			HomeTeam:  "Broncos",
			AwayTeam:  "Roosters",
			HomeScore: intptr(28),
			AwayScore: intptr(18),
			Venue:     "Suncorp Stadium",
		},
		{
			Season:   2024,
			Round:    1,
			Title:    "Storm v Panthers",
			Date:     "2024-03-08T20:00:00+11:00",
			HomeTeam: "Storm",
			AwayTeam: "Panthers",
			Venue:    "AAMI Park",
		},
	})
	require.NoError(t, err)

	var out strings.Builder
	err = service.ExportTSV(ctx, &out, 2024)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t,
		"Competition\tYear\tRound\tDetails\tDate\tHome\tHome_Score\tAway\tAway_Score\tVenue",
		lines[0])
	require.Equal(t,
		"NRL\t2024\t1\tBroncos v Roosters\t2024-03-07T20:00:00+10:00\tBroncos\t28\tRoosters\t18\tSuncorp Stadium",
		lines[1])
	require.Equal(t,
		"NRL\t2024\t1\tStorm v Panthers\t2024-03-08T20:00:00+11:00\tStorm\t\tPanthers\t\tAAMI Park",
		lines[2])
}
