package nrl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"nrltips-backend/lib/htmlutil"
	"nrltips-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RoundsPerSeason is the largest round number the draw page serves,
// finals included.
const RoundsPerSeason = 31

// FetchRound scrapes the draw page of a single round. Rounds that have
// not been scheduled yet return an empty slice, not an error.
func (c Client) FetchRound(ctx context.Context, season, round int) ([]Fixture, error) {
	ctx, span := tracer.Start(ctx, "client:FetchRound")
	defer span.End()
	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
	)

	endpoint := fmt.Sprintf("/draw/?competition=111&round=%d&season=%d", round, season)
	doc, err := c.page(ctx, endpoint, LIVE_PAGE_LIFETIME)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch draw page")
		return nil, err
	}

	fixtures := ParseDraw(ctx, doc, season, round)

	// once every match has a score the page will not change again, so
	// it can be kept for the long lifetime instead of the live one
	if roundComplete(fixtures) {
		err = c.cache.extend(ctx, endpoint, COMPLETED_PAGE_LIFETIME)
		if err != nil && err != errPageNotFound {
			span.RecordError(err)
		}
	}

	return fixtures, nil
}

func roundComplete(fixtures []Fixture) bool {
	if len(fixtures) == 0 {
		return false
	}
	for _, f := range fixtures {
		if !f.Played() {
			return false
		}
	}
	return true
}

// ParseDraw extracts the fixtures out of a draw page document. Match
// boxes with missing elements are skipped with a warning so one broken
// box never loses the round.
func ParseDraw(ctx context.Context, doc *goquery.Document, season, round int) []Fixture {
	var fixtures []Fixture

	doc.Find("div.match.o-rounded-box.o-shadowed-box").Each(func(_ int, box *goquery.Selection) {
		title := htmlutil.Text(box.Find("h3.u-visually-hidden").First())
		if title == "" {
			slog.WarnContext(ctx, "skipping match box without a title", "season", season, "round", round)
			return
		}
		title = strings.TrimPrefix(title, "Match: ")

		home := htmlutil.Text(box.Find("p.match-team__name--home").First())
		away := htmlutil.Text(box.Find("p.match-team__name--away").First())
		if home == "" || away == "" {
			slog.WarnContext(ctx, "skipping match box without team names", "title", title)
			return
		}
		home = canonicalTeam(ctx, home)
		away = canonicalTeam(ctx, away)

		venue := htmlutil.Text(box.Find("p.match-venue").First())
		venue = textutil.CleanVenue(strings.TrimPrefix(venue, "Venue:"))

		fixtures = append(fixtures, Fixture{
			Season:    season,
			Round:     round,
			Title:     title,
			Date:      htmlutil.Text(box.Find("p.match-header__title").First()),
			HomeTeam:  home,
			AwayTeam:  away,
			HomeScore: parseScore(box.Find("div.match-team__score--home").First()),
			AwayScore: parseScore(box.Find("div.match-team__score--away").First()),
			Venue:     venue,
		})
	})

	return fixtures
}

// canonicalTeam maps a scraped label onto the registry nickname so the
// same club is stored under one name all season. Labels that resolve to
// nothing are kept as scraped.
func canonicalTeam(ctx context.Context, label string) string {
	team, err := ResolveTeam(label)
	if err != nil {
		slog.WarnContext(ctx, "keeping unresolved team label", "label", label)
		return label
	}
	return team.Nickname
}

// parseScore reads a score element like "Scored 24 points". Future
// fixtures have no score element at all.
func parseScore(sel *goquery.Selection) *int {
	text := htmlutil.Text(sel)
	text = strings.ReplaceAll(text, "Scored", "")
	text = strings.ReplaceAll(text, "points", "")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &score
}
