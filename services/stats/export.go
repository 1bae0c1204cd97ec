package stats

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const competitionName = "NRL"

// statisticsColumns pairs each export header with the stored stat key it
// reads. Order follows the bar charts, then the donuts, then the scoreboard
// summary.
var statisticsColumns = []struct {
	Header string
	Key    string
}{
	{"Time In Possession", "time_in_possession"},
	{"All Runs", "all_runs"},
	{"All Run Metres", "all_run_metres"},
	{"Post Contact Metres", "post_contact_metres"},
	{"Line Breaks", "line_breaks"},
	{"Tackle Breaks", "tackle_breaks"},
	{"Average Set Distance", "average_set_distance"},
	{"Kick Return Metres", "kick_return_metres"},
	{"Offloads", "offloads"},
	{"Receipts", "receipts"},
	{"Total Passes", "total_passes"},
	{"Dummy Passes", "dummy_passes"},
	{"Kicks", "kicks"},
	{"Kicking Metres", "kicking_metres"},
	{"Forced Drop Outs", "forced_drop_outs"},
	{"Bombs", "bombs"},
	{"Grubbers", "grubbers"},
	{"Tackles Made", "tackles_made"},
	{"Missed Tackles", "missed_tackles"},
	{"Intercepts", "intercepts"},
	{"Ineffective Tackles", "ineffective_tackles"},
	{"Errors", "errors"},
	{"Penalties Conceded", "penalties_conceded"},
	{"Ruck Infringements", "ruck_infringements"},
	{"Inside 10 Metres", "inside_10_metres"},
	{"Interchanges Used", "interchanges_used"},
	{"Completion Rate", "completion_rate"},
	{"Average Play Ball Speed", "average_play_ball_speed"},
	{"Kick Defusal", "kick_defusal"},
	{"Effective Tackle", "effective_tackle"},
	{"Tries", "tries"},
	{"Conversions", "conversions"},
	{"Penalty Goals", "penalty_goals"},
	{"Sin Bins", "sin_bins"},
	{"1 Point Field Goals", "one_point_field_goals"},
	{"2 Point Field Goals", "two_point_field_goals"},
	{"Half Time", "half_time"},
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatMinute(minute int) string {
	if minute < 0 {
		return ""
	}
	return strconv.Itoa(minute)
}

func gameLabel(home, away string) string {
	return home + ".v." + away
}

func newTSV(w io.Writer) *csv.Writer {
	out := csv.NewWriter(w)
	out.Comma = '\t'
	return out
}

// ExportStatisticsTSV writes one row per match side with every stored
// statistic, absent stats as empty fields.
func (s Service) ExportStatisticsTSV(ctx context.Context, w io.Writer, season int) error {
	ctx, span := tracer.Start(ctx, "ExportStatisticsTSV")
	defer span.End()

	span.SetAttributes(attribute.Int("season", season))

	rows, err := s.qry.GetSeasonTeamStats(ctx, int64(season))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	out := newTSV(w)
	header := []string{
		"Competition", "Year", "Round", "Game", "Home/Away",
		"Possession", "First Try Scorer", "First Try Time",
	}
	for _, col := range statisticsColumns {
		header = append(header, col.Header)
	}
	if err := out.Write(header); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, r := range rows {
		values := map[string]float64{}
		if err := json.Unmarshal([]byte(r.Stats), &values); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		row := []string{
			competitionName,
			strconv.FormatInt(r.Season, 10),
			strconv.FormatInt(r.Round, 10),
			gameLabel(r.HomeTeam, r.AwayTeam),
			r.Side,
			formatStat(r.Possession),
			r.FirstTryScorer,
			formatMinute(int(r.FirstTryMinute)),
		}
		for _, col := range statisticsColumns {
			v, ok := values[col.Key]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, formatStat(v))
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

// ExportDetailedTSV writes one row per match with the overall first try,
// main referee and conditions.
func (s Service) ExportDetailedTSV(ctx context.Context, w io.Writer, season int) error {
	ctx, span := tracer.Start(ctx, "ExportDetailedTSV")
	defer span.End()

	span.SetAttributes(attribute.Int("season", season))

	rows, err := s.qry.GetSeasonDetails(ctx, int64(season))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	out := newTSV(w)
	err = out.Write([]string{
		"Competition", "Year", "Round", "Game",
		"Overall First Try Scorer", "Overall First Try Minute", "Overall First Try Round",
		"Main Ref", "Ground Condition", "Weather Condition",
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, r := range rows {
		err := out.Write([]string{
			competitionName,
			strconv.FormatInt(r.Season, 10),
			strconv.FormatInt(r.Round, 10),
			gameLabel(r.HomeTeam, r.AwayTeam),
			r.FirstTryScorer,
			formatMinute(int(r.FirstTryMinute)),
			r.FirstTryTeam,
			r.MainReferee,
			r.GroundCondition,
			r.WeatherCondition,
		})
		if err != nil {
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

// ExportTryTSV writes one row per try scored across the season.
func (s Service) ExportTryTSV(ctx context.Context, w io.Writer, season int) error {
	ctx, span := tracer.Start(ctx, "ExportTryTSV")
	defer span.End()

	span.SetAttributes(attribute.Int("season", season))

	rows, err := s.qry.GetSeasonTries(ctx, int64(season))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	out := newTSV(w)
	err = out.Write([]string{
		"Competition", "Year", "Round", "Game", "Home/Away", "Try Names", "Try Minutes",
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, r := range rows {
		err := out.Write([]string{
			competitionName,
			strconv.FormatInt(r.Season, 10),
			strconv.FormatInt(r.Round, 10),
			gameLabel(r.HomeTeam, r.AwayTeam),
			r.Side,
			r.Scorer,
			formatMinute(int(r.Minute)),
		})
		if err != nil {
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
