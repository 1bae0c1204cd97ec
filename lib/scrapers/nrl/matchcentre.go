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

// Slug turns a team label into the form used by match centre urls,
// e.g. "Sea Eagles" -> "Sea-Eagles".
func Slug(team string) string {
	return strings.ReplaceAll(strings.TrimSpace(team), " ", "-")
}

// FetchMatch scrapes the match centre page of a single played fixture.
func (c Client) FetchMatch(ctx context.Context, season, round int, home, away string) (MatchDetail, error) {
	ctx, span := tracer.Start(ctx, "client:FetchMatch")
	defer span.End()
	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
		attribute.String("home", home),
		attribute.String("away", away),
	)

	endpoint := fmt.Sprintf(
		"/draw/nrl-premiership/%d/round-%d/%s-v-%s/",
		season, round, Slug(home), Slug(away),
	)
	doc, err := c.page(ctx, endpoint, COMPLETED_PAGE_LIFETIME)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch match centre page")
		return MatchDetail{}, err
	}

	detail := ParseMatch(ctx, doc)
	detail.Home.Team = home
	detail.Away.Team = away
	return detail, nil
}

// ParseMatch extracts everything we keep from a match centre document.
// Each stat group parses independently: a redesigned or missing section
// drops that group and logs, it never fails the match.
func ParseMatch(ctx context.Context, doc *goquery.Document) MatchDetail {
	detail := MatchDetail{
		Home: SideStats{Stats: map[string]float64{}, FirstTryMinute: -1},
		Away: SideStats{Stats: map[string]float64{}, FirstTryMinute: -1},

		FirstTryMinute: -1,
	}

	parsePossession(ctx, doc, &detail)
	parseBars(ctx, doc, &detail)
	parseDonuts(ctx, doc, &detail)
	parseSummary(ctx, doc, &detail)
	parseTries(ctx, doc, &detail)
	parseOfficials(ctx, doc, &detail)
	parseConditions(ctx, doc, &detail)

	resolveFirstTry(&detail)

	return detail
}

// parseStatValue reads a bar label like "1,714", "78%" or "32:10"
// (time in possession, converted to seconds).
func parseStatValue(text string) (float64, error) {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, ",", "")
	text = strings.TrimSuffix(text, "%")

	if minute, second, found := strings.Cut(text, ":"); found {
		m, err := strconv.Atoi(minute)
		if err != nil {
			return 0, err
		}
		s, err := strconv.Atoi(second)
		if err != nil {
			return 0, err
		}
		return float64(m*60 + s), nil
	}

	return strconv.ParseFloat(text, 64)
}

func parsePossession(ctx context.Context, doc *goquery.Document, detail *MatchDetail) {
	home := htmlutil.Text(doc.Find("p.match-centre-card-donut__value--home").First())
	away := htmlutil.Text(doc.Find("p.match-centre-card-donut__value--away").First())
	if home == "" || away == "" {
		slog.WarnContext(ctx, "match centre page is missing the possession donut")
		return
	}

	var err error
	detail.Home.Possession, err = parseStatValue(home)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse home possession", "value", home, "err", err)
	}
	detail.Away.Possession, err = parseStatValue(away)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse away possession", "value", away, "err", err)
	}
}

// parseBars walks the bar chart labels, which appear in BarStatKeys order
// with no machine-readable names attached.
func parseBars(ctx context.Context, doc *goquery.Document, detail *MatchDetail) {
	read := func(selector string, stats map[string]float64) {
		doc.Find(selector).EachWithBreak(func(i int, label *goquery.Selection) bool {
			if i >= len(BarStatKeys) {
				return false
			}
			text := htmlutil.Text(label)
			value, err := parseStatValue(text)
			if err != nil {
				slog.WarnContext(ctx, "failed to parse bar stat", "stat", BarStatKeys[i], "value", text, "err", err)
				return true
			}
			stats[BarStatKeys[i]] = value
			return true
		})
	}

	read("dd.stats-bar-chart__label--home", detail.Home.Stats)
	read("dd.stats-bar-chart__label--away", detail.Away.Stats)
}

// parseDonuts reads the four percentage donuts; values alternate
// home, away, home, away.
func parseDonuts(ctx context.Context, doc *goquery.Document, detail *MatchDetail) {
	var values []float64
	doc.Find("p.donut-chart-stat__value").Each(func(_ int, sel *goquery.Selection) {
		digits := htmlutil.Digits(htmlutil.Text(sel))
		value, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			slog.WarnContext(ctx, "failed to parse donut stat", "value", digits, "err", err)
			value = 0
		}
		values = append(values, value)
	})

	for i := 0; i*2+1 < len(values) && i < len(DonutStatKeys); i++ {
		detail.Home.Stats[DonutStatKeys[i]] = values[i*2]
		detail.Away.Stats[DonutStatKeys[i]] = values[i*2+1]
	}
}

// parseSummary reads the scoreboard summary. Rows are optional (field
// goal rows only appear when one was kicked) so the headings present on
// the page decide which keys the values map onto.
func parseSummary(ctx context.Context, doc *goquery.Document, detail *MatchDetail) {
	var present []string
	doc.Find("span.match-centre-summary-group__name").Each(func(_ int, sel *goquery.Selection) {
		heading := strings.ToUpper(htmlutil.Text(sel))
		if key, ok := summaryHeadings[heading]; ok {
			present = append(present, key)
		}
	})

	var values []string
	doc.Find("span.match-centre-summary-group__value span").Each(func(_ int, sel *goquery.Selection) {
		values = append(values, htmlutil.Text(sel))
	})

	for i, key := range present {
		if i*2+1 >= len(values) {
			break
		}
		home, err := parseStatValue(values[i*2])
		if err != nil {
			slog.WarnContext(ctx, "failed to parse summary stat", "stat", key, "value", values[i*2], "err", err)
			continue
		}
		away, err := parseStatValue(values[i*2+1])
		if err != nil {
			slog.WarnContext(ctx, "failed to parse summary stat", "stat", key, "value", values[i*2+1], "err", err)
			continue
		}
		detail.Home.Stats[key] = home
		detail.Away.Stats[key] = away
	}
}

// parseTryList reads one side's try scorer list, entries look like
// "J. Smith 23'".
func parseTryList(ctx context.Context, doc *goquery.Document, side string) []TryEvent {
	var tries []TryEvent
	doc.Find("ul.match-centre-summary-group__list--" + side).First().Find("li").
		Each(func(_ int, li *goquery.Selection) {
			text := htmlutil.Text(li)
			parts := strings.Fields(text)
			if len(parts) < 2 {
				slog.WarnContext(ctx, "skipping malformed try entry", "side", side, "entry", text)
				return
			}

			minute := -1
			parsed, err := strconv.Atoi(textutil.StripMinute(parts[len(parts)-1]))
			if err == nil {
				minute = parsed
			}

			tries = append(tries, TryEvent{
				Scorer: strings.Join(parts[:len(parts)-1], " "),
				Minute: minute,
			})
		})
	return tries
}

func parseTries(ctx context.Context, doc *goquery.Document, detail *MatchDetail) {
	detail.Home.Tries = parseTryList(ctx, doc, "home")
	detail.Away.Tries = parseTryList(ctx, doc, "away")

	if len(detail.Home.Tries) > 0 {
		detail.Home.FirstTryScorer = detail.Home.Tries[0].Scorer
		detail.Home.FirstTryMinute = detail.Home.Tries[0].Minute
	}
	if len(detail.Away.Tries) > 0 {
		detail.Away.FirstTryScorer = detail.Away.Tries[0].Scorer
		detail.Away.FirstTryMinute = detail.Away.Tries[0].Minute
	}
}

// resolveFirstTry picks the overall first try scorer, earliest minute
// wins and a side without a recorded minute loses the tiebreak.
func resolveFirstTry(detail *MatchDetail) {
	home := detail.Home
	away := detail.Away

	switch {
	case home.FirstTryScorer == "" && away.FirstTryScorer == "":
		return
	case away.FirstTryScorer == "" || away.FirstTryMinute < 0:
		detail.FirstTryScorer = home.FirstTryScorer
		detail.FirstTryMinute = home.FirstTryMinute
		detail.FirstTryTeam = "home"
	case home.FirstTryScorer == "" || home.FirstTryMinute < 0:
		detail.FirstTryScorer = away.FirstTryScorer
		detail.FirstTryMinute = away.FirstTryMinute
		detail.FirstTryTeam = "away"
	case away.FirstTryMinute < home.FirstTryMinute:
		detail.FirstTryScorer = away.FirstTryScorer
		detail.FirstTryMinute = away.FirstTryMinute
		detail.FirstTryTeam = "away"
	default:
		detail.FirstTryScorer = home.FirstTryScorer
		detail.FirstTryMinute = home.FirstTryMinute
		detail.FirstTryTeam = "home"
	}
}

func parseOfficials(ctx context.Context, doc *goquery.Document, detail *MatchDetail) {
	doc.Find("a.card-team-mate").Each(func(_ int, card *goquery.Selection) {
		name := htmlutil.Text(card.Find("h3.card-team-mate__name").First())
		position := htmlutil.Text(card.Find("p.card-team-mate__position").First())
		if name == "" {
			return
		}
		detail.Officials = append(detail.Officials, Official{
			Name:     name,
			Position: position,
		})
	})

	if len(detail.Officials) > 0 {
		detail.MainReferee = detail.Officials[0].Name
	}
}

func parseConditions(ctx context.Context, doc *goquery.Document, detail *MatchDetail) {
	doc.Find("p.match-weather__text").Each(func(_ int, p *goquery.Selection) {
		conditionType, _, _ := strings.Cut(htmlutil.Text(p), ":")
		value := htmlutil.Text(p.Find("span").First())

		switch strings.TrimSpace(conditionType) {
		case "Ground Conditions":
			detail.GroundCondition = value
		case "Weather":
			detail.WeatherCondition = value
		}
	})
}
