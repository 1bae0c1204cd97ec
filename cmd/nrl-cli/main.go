package main

import (
	"context"

	"nrltips-backend/cmd/nrl-cli/commands"
	"nrltips-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)
	telemetry.SetupFromEnv(context.Background(), "nrl-cli")
	commands.ExecuteContext(context.Background())
}
