package main

import (
	"context"
	"log/slog"

	"nrltips-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "nrl-server")
	if err != nil {
		slog.WarnContext(ctx, "running without telemetry export", "err", err)
		return
	}
	go func() {
		<-ctx.Done()
		tel.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)
}
