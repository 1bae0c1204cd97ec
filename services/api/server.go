package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"nrltips-backend/services/predictor"
	"nrltips-backend/services/results"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/api")

type Server struct {
	results   results.Service
	predictor predictor.Service
}

func NewServer(resultsService results.Service, predictorService predictor.Service) Server {
	return Server{
		results:   resultsService,
		predictor: predictorService,
	}
}

// Router wires every route under /api/v1.
func (s Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/seasons/{season}/matches", s.handleMatches).Methods(http.MethodGet)
	v1.HandleFunc("/seasons/{season}/ladder", s.handleLadder).Methods(http.MethodGet)
	v1.HandleFunc("/seasons/{season}/rounds/{round}/predictions", s.handleRoundPredictions).Methods(http.MethodGet)
	v1.HandleFunc("/ratings", s.handleRatings).Methods(http.MethodGet)
	v1.HandleFunc("/predict", s.handlePredict).Methods(http.MethodGet)
	v1.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return router
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

type matchBody struct {
	Season    int    `json:"season"`
	Round     int    `json:"round"`
	Title     string `json:"title"`
	Kickoff   string `json:"kickoff"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore *int   `json:"homeScore"`
	AwayScore *int   `json:"awayScore"`
	Venue     string `json:"venue"`
	Played    bool   `json:"played"`
}

func matchToBody(m results.Match) matchBody {
	return matchBody{
		Season:    m.Season,
		Round:     m.Round,
		Title:     m.Title,
		Kickoff:   m.Kickoff,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		Venue:     m.Venue,
		Played:    m.Played(),
	}
}

func (s Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleMatches")
	defer span.End()

	season, err := pathInt(r, "season")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}

	var matches []results.Match
	if roundParam := r.URL.Query().Get("round"); roundParam != "" {
		round, err := strconv.Atoi(roundParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid round")
			return
		}
		matches, err = s.results.Round(ctx, season, round)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			writeError(w, http.StatusInternalServerError, "failed to load matches")
			return
		}
	} else {
		matches, err = s.results.Matches(ctx, season)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			writeError(w, http.StatusInternalServerError, "failed to load matches")
			return
		}
	}

	body := make([]matchBody, len(matches))
	for i, m := range matches {
		body[i] = matchToBody(m)
	}
	writeJSON(w, http.StatusOK, body)
}

func (s Server) handleLadder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleLadder")
	defer span.End()

	season, err := pathInt(r, "season")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}

	ladder, err := s.results.Ladder(ctx, season)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		writeError(w, http.StatusInternalServerError, "failed to compute ladder")
		return
	}
	writeJSON(w, http.StatusOK, ladder)
}

func (s Server) handleRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleRatings")
	defer span.End()

	ratings, err := s.predictor.Ratings(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		writeError(w, http.StatusInternalServerError, "failed to load ratings")
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (s Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handlePredict")
	defer span.End()

	home := r.URL.Query().Get("home")
	away := r.URL.Query().Get("away")
	if home == "" || away == "" {
		writeError(w, http.StatusBadRequest, "home and away query parameters are required")
		return
	}

	prediction, err := s.predictor.Predict(ctx, home, away)
	if errors.Is(err, predictor.ErrUnknownTeam) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		writeError(w, http.StatusInternalServerError, "failed to predict")
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}

func (s Server) handleRoundPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleRoundPredictions")
	defer span.End()

	season, err := pathInt(r, "season")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}
	round, err := pathInt(r, "round")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid round")
		return
	}

	predictions, err := s.predictor.PredictRound(ctx, season, round)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		writeError(w, http.StatusInternalServerError, "failed to predict round")
		return
	}
	if len(predictions) == 0 {
		writeError(w, http.StatusNotFound, "no fixtures stored for round")
		return
	}
	writeJSON(w, http.StatusOK, predictions)
}

func (s Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
