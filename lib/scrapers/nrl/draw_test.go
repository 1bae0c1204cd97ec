package nrl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nrltips-backend/lib/timezone"

	"github.com/PuerkitoBio/goquery"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

const drawPage = `
<html><body>
<div class="match o-rounded-box o-shadowed-box">
	<h3 class="u-visually-hidden">Match: Broncos vs Storm</h3>
	<p class="match-header__title">Friday 7:50pm</p>
	<p class="match-team__name--home">Broncos</p>
	<div class="match-team__score--home">Scored 24 points</div>
	<p class="match-team__name--away">Storm</p>
	<div class="match-team__score--away">Scored 18 points</div>
	<p class="match-venue o-text">Venue: Suncorp Stadium      Home of the Broncos</p>
</div>
<div class="match o-rounded-box o-shadowed-box">
	<h3 class="u-visually-hidden">Match: Panthers vs Raiders</h3>
	<p class="match-header__title">Saturday 5:30pm</p>
	<p class="match-team__name--home">Penrith Panthers</p>
	<div class="match-team__score--home"></div>
	<p class="match-team__name--away">Raiders</p>
	<div class="match-team__score--away"></div>
	<p class="match-venue o-text">Venue: BlueBet Stadium</p>
</div>
<div class="match o-rounded-box o-shadowed-box">
	<p class="match-team__name--home">Orphan</p>
</div>
</body></html>`

func TestParseDraw(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(drawPage))
	require.NoError(t, err)

	fixtures := ParseDraw(context.Background(), doc, 2024, 5)
	require.Len(t, fixtures, 2)

	played := fixtures[0]
	require.Equal(t, "Broncos vs Storm", played.Title)
	require.Equal(t, "Friday 7:50pm", played.Date)
	require.Equal(t, "Broncos", played.HomeTeam)
	require.Equal(t, "Storm", played.AwayTeam)
	require.Equal(t, "Suncorp Stadium", played.Venue)
	require.True(t, played.Played())
	require.Equal(t, 24, *played.HomeScore)
	require.Equal(t, 18, *played.AwayScore)
	require.Equal(t, 2024, played.Season)
	require.Equal(t, 5, played.Round)

	upcoming := fixtures[1]
	// full club names canonicalize to the registry nickname
	require.Equal(t, "Panthers", upcoming.HomeTeam)
	require.False(t, upcoming.Played())
	require.Nil(t, upcoming.HomeScore)
	require.Nil(t, upcoming.AwayScore)
}

const unknownTeamPage = `
<html><body>
<div class="match o-rounded-box o-shadowed-box">
	<h3 class="u-visually-hidden">Match: PNG Chiefs vs Storm</h3>
	<p class="match-header__title">Friday 7:50pm</p>
	<p class="match-team__name--home">PNG Chiefs</p>
	<div class="match-team__score--home"></div>
	<p class="match-team__name--away">Storm</p>
	<div class="match-team__score--away"></div>
	<p class="match-venue o-text">Venue: Santos National Football Stadium</p>
</div>
</body></html>`

// clubs missing from the registry (expansion sides) keep their scraped
// label instead of losing the fixture
func TestParseDrawKeepsUnknownLabels(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(unknownTeamPage))
	require.NoError(t, err)

	fixtures := ParseDraw(context.Background(), doc, 2028, 1)
	require.Len(t, fixtures, 1)
	require.Equal(t, "PNG Chiefs", fixtures[0].HomeTeam)
	require.Equal(t, "Storm", fixtures[0].AwayTeam)
}

const completedDrawPage = `
<html><body>
<div class="match o-rounded-box o-shadowed-box">
	<h3 class="u-visually-hidden">Match: Broncos vs Storm</h3>
	<p class="match-header__title">Friday 7:50pm</p>
	<p class="match-team__name--home">Broncos</p>
	<div class="match-team__score--home">Scored 24 points</div>
	<p class="match-team__name--away">Storm</p>
	<div class="match-team__score--away">Scored 18 points</div>
	<p class="match-venue o-text">Venue: Suncorp Stadium</p>
</div>
</body></html>`

func fetchThroughCache(t *testing.T, body string, season, round int) (Client, []Fixture) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	cache, err := badger.Open(badger.DefaultOptions("").WithInMemory(true))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	client, err := NewClient(ClientOptions{BaseUrl: server.URL, Cache: cache})
	require.NoError(t, err)

	fixtures, err := client.FetchRound(context.Background(), season, round)
	require.NoError(t, err)
	return client, fixtures
}

func TestFetchRoundCacheLifetimes(t *testing.T) {
	// a round where every match has a score keeps its page for the
	// long lifetime
	client, fixtures := fetchThroughCache(t, completedDrawPage, 2023, 1)
	require.True(t, roundComplete(fixtures))

	cached, err := client.cache.get(context.Background(),
		"/draw/?competition=111&round=1&season=2023")
	require.NoError(t, err)
	require.Greater(t, cached.ExpiresAt, timezone.Now().Unix()+LIVE_PAGE_LIFETIME)

	// a round with an unplayed fixture stays on the live lifetime
	client, fixtures = fetchThroughCache(t, drawPage, 2024, 5)
	require.False(t, roundComplete(fixtures))

	cached, err = client.cache.get(context.Background(),
		"/draw/?competition=111&round=5&season=2024")
	require.NoError(t, err)
	require.LessOrEqual(t, cached.ExpiresAt, timezone.Now().Unix()+LIVE_PAGE_LIFETIME)
}

func TestParseDrawEmptyRound(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)

	fixtures := ParseDraw(context.Background(), doc, 2024, 30)
	require.Empty(t, fixtures)
}
