package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/builds"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/config"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/ctxlog"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/output"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/sim"
)

type Options struct {
	Class       string
	Spec        string
	ProfilePath string
	// SettingsPath overrides the tier_set_config.yaml found in the app root.
	SettingsPath string
	// ResultsPath is a yaml (job name: value) or an xlsx exported earlier
	// with its Result column filled in.
	ResultsPath string
	ExportXLSX  bool

	Stdout io.Writer
}

// RunWithOptions generates the tier set batch and returns the desired process exit code.
func RunWithOptions(ctx context.Context, opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	err := run(ctx, opts)
	if err != nil {
		ctxlog.FromContext(ctx).Error("tier set generation failed", "error", err)
	}
	return exitCode(err)
}

func run(ctx context.Context, opts Options) error {
	log := ctxlog.FromContext(ctx)
	start := time.Now()

	class := strings.TrimSpace(opts.Class)
	spec := strings.TrimSpace(opts.Spec)
	if class == "" || spec == "" {
		return ExitWithError(ExitUsage, fmt.Errorf("-class and -spec are required"))
	}
	if strings.TrimSpace(opts.ProfilePath) == "" {
		return ExitWithError(ExitUsage, fmt.Errorf("-profile is required"))
	}

	appRoot, found, err := FindRoot()
	if err != nil {
		return err
	}
	settingsPath := opts.SettingsPath
	if settingsPath == "" && found {
		settingsPath = filepath.Join(appRoot, ConfigFile)
	}
	cfg, err := config.Load(settingsPath)
	if err != nil {
		return err
	}

	profile, err := config.LoadProfile(opts.ProfilePath)
	if err != nil {
		return err
	}

	var definitions fs.FS = builds.Definitions
	if cfg.DefinitionsPath != "" {
		definitions = os.DirFS(resolvePath(appRoot, cfg.DefinitionsPath))
	}
	auxDir := appRoot
	if cfg.AuxiliaryPath != "" {
		auxDir = resolvePath(appRoot, cfg.AuxiliaryPath)
	}

	simulator := sim.TierSet{
		Settings:    cfg.Settings,
		Definitions: definitions,
		Aux:         os.DirFS(auxDir),
	}
	log.Info("starting simulation", "simulator", simulator.Name(), "class", class, "spec", spec)

	data := &sim.Data{Class: class, Spec: spec, Profile: profile}
	if err := simulator.PreProcess(ctx, data); err != nil {
		return err
	}
	if err := simulator.AddSimulationData(ctx, data); err != nil {
		return err
	}
	log.Info("generated jobs", "jobs", data.Batch.Len())

	var matrix *sim.Matrix
	if opts.ResultsPath != "" {
		results, err := loadResults(opts.ResultsPath)
		if err != nil {
			return err
		}
		m, err := simulator.PostProcess(ctx, data, results)
		if err != nil {
			return err
		}
		matrix = &m
		output.PrintMatrix(opts.Stdout, m)
	} else if err := output.WriteBatchJSON(opts.Stdout, data.Batch); err != nil {
		return fmt.Errorf("write batch: %w", err)
	}

	if opts.ExportXLSX {
		outDir := filepath.Join(appRoot, "output", "tier_set")
		if cfg.OutputPath != "" {
			outDir = resolvePath(appRoot, cfg.OutputPath)
		}
		xlsxPath, err := output.ExportBatchXLSX(outDir, class, spec, data.Batch, matrix)
		if err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		log.Info("exported batch", "path", xlsxPath)
	}

	log.Info("finished", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func loadResults(path string) (map[string]float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return output.ImportResultsXLSX(path)
	}
	return config.LoadResults(path)
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

