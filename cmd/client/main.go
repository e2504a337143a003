package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/TessVincent/prismhealth/internal/cli"
	"github.com/TessVincent/prismhealth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)); err != nil {
		stop()
		os.Exit(1)
	}
}
