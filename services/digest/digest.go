package digest

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"nrltips-backend/services/predictor"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/digest")

type SmtpConfig struct {
	Host     string   `json:"host"`
	Port     int      `json:"port"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	From     string   `json:"from"`
	To       []string `json:"to"`
}

type Service struct {
	smtp      SmtpConfig
	predictor predictor.Service
}

func NewService(smtpConfig SmtpConfig, predictorService predictor.Service) Service {
	return Service{
		smtp:      smtpConfig,
		predictor: predictorService,
	}
}

// Render formats a round's predictions as a plaintext digest. It is pure so
// the output can be tested without an SMTP server.
func Render(season, round int, predictions []predictor.Prediction) (subject, body string) {
	subject = fmt.Sprintf("NRL %d round %d predictions", season, round)

	var b strings.Builder
	fmt.Fprintf(&b, "Predictions for round %d of the %d season:\n\n", round, season)
	for _, p := range predictions {
		favourite := p.HomeTeam
		chance := p.HomeWinChance
		margin := p.ExpectedMargin
		if chance < 0.5 {
			favourite = p.AwayTeam
			chance = 1 - chance
			margin = -margin
		}
		fmt.Fprintf(&b, "%s v %s: %s by %.0f (%.0f%%)\n",
			p.HomeTeam, p.AwayTeam, favourite, margin, chance*100)
	}
	return subject, b.String()
}

// SendRoundPreview emails the round's predictions to the configured
// recipients.
func (s Service) SendRoundPreview(ctx context.Context, season, round int) error {
	ctx, span := tracer.Start(ctx, "SendRoundPreview")
	defer span.End()

	span.SetAttributes(
		attribute.Int("season", season),
		attribute.Int("round", round),
	)

	predictions, err := s.predictor.PredictRound(ctx, season, round)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if len(predictions) == 0 {
		return fmt.Errorf("no fixtures stored for season %d round %d", season, round)
	}

	subject, body := Render(season, round, predictions)

	msg := email.NewEmail()
	msg.From = s.smtp.From
	msg.To = s.smtp.To
	msg.Subject = subject
	msg.Text = []byte(body)

	addr := fmt.Sprintf("%s:%d", s.smtp.Host, s.smtp.Port)
	err = msg.Send(addr, smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
