package nrl

import (
	"context"
	"testing"
	"time"

	"nrltips-backend/lib/configutil"

	"github.com/stretchr/testify/require"
)

type liveConfig struct {
	Season int `json:"season"`
	Round  int `json:"round"`
}

// hits nrl.com for real, so it only runs when a dev config exists.
func TestLiveFetchRound(t *testing.T) {
	config, err := configutil.ReadConfig[liveConfig]("dev/live.json5")
	if err != nil {
		t.Skip("skipping live scrape test because no config was found at dev/live.json5")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := NewClient(ClientOptions{})
	require.NoError(t, err)

	fixtures, err := client.FetchRound(ctx, config.Season, config.Round)
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)

	for _, f := range fixtures {
		require.NotEmpty(t, f.HomeTeam)
		require.NotEmpty(t, f.AwayTeam)
		require.Equal(t, config.Season, f.Season)
		require.Equal(t, config.Round, f.Round)
	}
}
