package stats

import (
	"context"
	"strings"
	"testing"
	"time"

	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/lib/testutil"
	"nrltips-backend/services/stats/db"

	"github.com/stretchr/testify/require"
)

// the cli applies the schema on every invocation, so it has to be a
// no-op over an already initialized database
func TestSchemaReapply(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/stats/schema",
		DbSchema: db.Schema,
	})
	defer cleanup()

	_, err := setup.DB.Exec(db.Schema)
	require.NoError(t, err)
}

func testDetail() nrl.MatchDetail {
	return nrl.MatchDetail{
		Home: nrl.SideStats{
			Team:       "Broncos",
			Possession: 52,
			Stats: map[string]float64{
				"all_runs":           180,
				"time_in_possession": 1930,
				"completion_rate":    81,
				"tries":              5,
			},
			Tries: []nrl.TryEvent{
				{Scorer: "Walsh", Minute: 12},
				{Scorer: "Cobbo", Minute: 44},
			},
			FirstTryScorer: "Walsh",
			FirstTryMinute: 12,
		},
		Away: nrl.SideStats{
			Team:       "Roosters",
			Possession: 48,
			Stats: map[string]float64{
				"all_runs":           165,
				"time_in_possession": 1770,
				"completion_rate":    77,
				"tries":              3,
			},
			Tries: []nrl.TryEvent{
				{Scorer: "Tedesco", Minute: 25},
			},
			FirstTryScorer: "Tedesco",
			FirstTryMinute: 25,
		},
		FirstTryScorer: "Walsh",
		FirstTryMinute: 12,
		FirstTryTeam:   "home",
		Officials: []nrl.Official{
			{Name: "A. Gee", Position: "Referee"},
			{Name: "B. Smith", Position: "Touch Judge"},
		},
		MainReferee:      "A. Gee",
		GroundCondition:  "Good",
		WeatherCondition: "Clear Night",
	}
}

func TestService(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/stats",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.ImportMatch(ctx, 2024, 1, testDetail())
	require.NoError(t, err)

	{
		teamStats, err := service.TeamStats(ctx, 2024, 1)
		require.NoError(t, err)
		require.Len(t, teamStats, 2)

		home := teamStats[0]
		require.Equal(t, "Broncos", home.Team)
		require.Equal(t, "home", home.Side)
		require.Equal(t, 52.0, home.Possession)
		require.Equal(t, 1930.0, home.Stats["time_in_possession"])
		require.Equal(t, "Walsh", home.FirstTryScorer)

		away := teamStats[1]
		require.Equal(t, "Roosters", away.Team)
		require.Equal(t, "away", away.Side)
	}
	{
		tries, err := service.Tries(ctx, 2024, 1)
		require.NoError(t, err)
		require.Len(t, tries, 3)
		require.Equal(t, "Walsh", tries[0].Scorer)
		require.Equal(t, 12, tries[0].Minute)
		require.Equal(t, "Tedesco", tries[2].Scorer)
	}
	{
		summaries, err := service.Summaries(ctx, 2024, 1)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		require.Equal(t, "Walsh", summaries[0].FirstTryScorer)
		require.Equal(t, "home", summaries[0].FirstTryTeam)
		require.Equal(t, "A. Gee", summaries[0].MainReferee)
		require.Equal(t, "Clear Night", summaries[0].WeatherCondition)
	}
	{
		// re-importing the same match replaces its rows instead of
		// duplicating them
		updated := testDetail()
		updated.Home.Tries = append(updated.Home.Tries, nrl.TryEvent{Scorer: "Reynolds", Minute: 70})
		err := service.ImportMatch(ctx, 2024, 1, updated)
		require.NoError(t, err)

		tries, err := service.Tries(ctx, 2024, 1)
		require.NoError(t, err)
		require.Len(t, tries, 4)

		summaries, err := service.Summaries(ctx, 2024, 1)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
	}
}

func TestExports(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/stats/export",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.ImportMatch(ctx, 2024, 1, testDetail())
	require.NoError(t, err)

	{
		var out strings.Builder
		err := service.ExportStatisticsTSV(ctx, &out, 2024)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.Len(t, lines, 3)

		header := strings.Split(lines[0], "\t")
		require.Equal(t, "Competition", header[0])
		require.Equal(t, "Home/Away", header[4])
		require.Equal(t, "Time In Possession", header[8])
		require.Equal(t, "Half Time", header[len(header)-1])

		home := strings.Split(lines[1], "\t")
		require.Equal(t, len(header), len(home))
		require.Equal(t, "NRL", home[0])
		require.Equal(t, "Broncos.v.Roosters", home[3])
		require.Equal(t, "home", home[4])
		require.Equal(t, "52", home[5])
		require.Equal(t, "1930", home[8])
		require.Equal(t, "180", home[9])
		// stats the page never carried stay empty
		require.Equal(t, "", home[10])
	}
	{
		var out strings.Builder
		err := service.ExportDetailedTSV(ctx, &out, 2024)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		require.Equal(t,
			"Competition\tYear\tRound\tGame\tOverall First Try Scorer\tOverall First Try Minute\tOverall First Try Round\tMain Ref\tGround Condition\tWeather Condition",
			lines[0])
		require.Equal(t,
			"NRL\t2024\t1\tBroncos.v.Roosters\tWalsh\t12\thome\tA. Gee\tGood\tClear Night",
			lines[1])
	}
	{
		var out strings.Builder
		err := service.ExportTryTSV(ctx, &out, 2024)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		require.Equal(t,
			"Competition\tYear\tRound\tGame\tHome/Away\tTry Names\tTry Minutes",
			lines[0])
		require.Equal(t,
			"NRL\t2024\t1\tBroncos.v.Roosters\thome\tWalsh\t12",
			lines[1])
	}
}
