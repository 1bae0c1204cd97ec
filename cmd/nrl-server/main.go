package main

import (
	"flag"
	"log/slog"
	"net/http"
	"strings"

	"nrltips-backend/lib/configutil"
	"nrltips-backend/lib/scrapers/nrl"
	"nrltips-backend/lib/serviceutil"
	"nrltips-backend/lib/sqliteutil"
	"nrltips-backend/services/api"
	"nrltips-backend/services/digest"
	"nrltips-backend/services/predictor"
	predictordb "nrltips-backend/services/predictor/db"
	"nrltips-backend/services/results"
	resultsdb "nrltips-backend/services/results/db"
	"nrltips-backend/services/stats"
	statsdb "nrltips-backend/services/stats/db"

	"github.com/dgraph-io/badger/v4"
	"github.com/mazen160/go-random"
)

type ScrapeConfig struct {
	Season int `json:"season"`
	// cron expression, e.g. "0 * * * *"
	Schedule string `json:"schedule"`
	// page cache directory, empty disables caching
	Cache string `json:"cache"`
}

type DigestConfig struct {
	Schedule string            `json:"schedule"`
	Smtp     digest.SmtpConfig `json:"smtp"`
}

type Config struct {
	Database string       `json:"database"`
	Port     int          `json:"port"`
	Token    string       `json:"token"`
	Scrape   ScrapeConfig `json:"scrape"`
	Digest   DigestConfig `json:"digest"`
}

func authMiddleware(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/healthz") {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	initialScrape := flag.Bool("scrape", false, "Trigger scraping immediately on run.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}

	database, err := sqliteutil.OpenDB(resultsdb.Schema, cfg.Database)
	if err != nil {
		serviceutil.Fatal("open database", err)
	}
	for _, schema := range []string{statsdb.Schema, predictordb.Schema} {
		if _, err := database.Exec(schema); err != nil && !strings.Contains(err.Error(), "already exists") {
			serviceutil.Fatal("apply schema", err)
		}
	}

	var cache *badger.DB
	if cfg.Scrape.Cache != "" {
		cache, err = badger.Open(badger.DefaultOptions(cfg.Scrape.Cache))
		if err != nil {
			serviceutil.Fatal("open page cache", err)
		}
		defer cache.Close()
	}
	client, err := nrl.NewClient(nrl.ClientOptions{Cache: cache})
	if err != nil {
		serviceutil.Fatal("init nrl client", err)
	}

	resultsService := results.NewService(database)
	statsService := stats.NewService(database)
	predictorService := predictor.NewService(database, resultsService)
	digestService := digest.NewService(cfg.Digest.Smtp, predictorService)

	daemons := Daemons{
		client:    client,
		results:   resultsService,
		stats:     statsService,
		predictor: predictorService,
		digest:    digestService,
		config:    cfg,
	}
	if *initialScrape {
		daemons.Rescrape(ctx)
	}
	stop, err := daemons.Start(ctx)
	if err != nil {
		serviceutil.Fatal("start daemons", err)
	}
	defer stop()

	if cfg.Token == "" {
		cfg.Token, err = random.String(32)
		if err != nil {
			serviceutil.Fatal("generate api token", err)
		}
		slog.Info("generated api token", "token", cfg.Token)
	}

	server := api.NewServer(resultsService, predictorService)
	go serviceutil.StartHttpServer(cfg.Port, authMiddleware(cfg.Token, server.Router()))
	<-ctx.Done()
}
