package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/app"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/ctxlog"
)

func main() {
	class := flag.String("class", "", "wow class simc name, e.g. mage")
	spec := flag.String("spec", "", "wow spec simc name, e.g. fire")
	profile := flag.String("profile", "", "yaml file holding the base character profile")
	settings := flag.String("settings", "", "settings yaml (defaults to tier_set_config.yaml in the app root)")
	results := flag.String("results", "", "simulated values per job (yaml or filled-in xlsx) to arrange by build and tier")
	exportXLSX := flag.Bool("xlsx", false, "export the batch as an xlsx manifest")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := ctxlog.WithLogger(context.Background(), logger)
	os.Exit(app.RunWithOptions(ctx, app.Options{
		Class:        *class,
		Spec:         *spec,
		ProfilePath:  *profile,
		SettingsPath: *settings,
		ResultsPath:  *results,
		ExportXLSX:   *exportXLSX,
	}))
}
