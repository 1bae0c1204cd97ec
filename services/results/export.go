package results

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var exportHeader = []string{
	"Competition", "Year", "Round", "Details", "Date",
	"Home", "Home_Score", "Away", "Away_Score", "Venue",
}

const competitionName = "NRL"

func scoreField(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}

// ExportTSV writes the season's fixtures as a tab-separated table, one row
// per match, unplayed matches with empty score fields.
func (s Service) ExportTSV(ctx context.Context, w io.Writer, season int) error {
	ctx, span := tracer.Start(ctx, "ExportTSV")
	defer span.End()

	span.SetAttributes(attribute.Int("season", season))

	matches, err := s.Matches(ctx, season)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	out := csv.NewWriter(w)
	out.Comma = '\t'

	if err := out.Write(exportHeader); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	for _, m := range matches {
		row := []string{
			competitionName,
			strconv.Itoa(m.Season),
			strconv.Itoa(m.Round),
			m.Title,
			m.Kickoff,
			m.HomeTeam,
			scoreField(m.HomeScore),
			m.AwayTeam,
			scoreField(m.AwayScore),
			m.Venue,
		}
		if err := out.Write(row); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	out.Flush()
	if err := out.Error(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
