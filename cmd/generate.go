package cmd

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/licensegen/application"
	"github.com/rios0rios0/licensegen/config"
	"github.com/rios0rios0/licensegen/infrastructure/report"
)

// runGenerate is the root command: the full scan -> extract -> write pipeline.
func runGenerate(_ *cobra.Command, _ []string) error {
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// CLI overrides
	if scannerCommand != "" {
		cfg.Scanner.Command = scannerCommand
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}
	if formatName != "" {
		cfg.Output.Format = formatName
	}

	return generate(context.Background(), cfg)
}

// generate runs the pipeline for a fully resolved configuration. Any failure
// aborts before the report file is touched.
func generate(ctx context.Context, cfg *config.Config) error {
	container, err := buildContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to assemble pipeline: %w", err)
	}

	var (
		svc      *application.ReportService
		registry *report.Registry
	)
	if invokeErr := container.Invoke(func(s *application.ReportService, r *report.Registry) {
		svc = s
		registry = r
	}); invokeErr != nil {
		return fmt.Errorf("failed to assemble pipeline: %w", invokeErr)
	}

	writer := registry.Get(cfg.Output.Format)
	if writer == nil {
		return fmt.Errorf(
			"unknown report format %q (available: %s)",
			cfg.Output.Format, strings.Join(registry.Names(), ", "),
		)
	}

	records, err := svc.Build(ctx)
	if err != nil {
		return err
	}

	if writeErr := report.WriteFile(cfg.Output.Path, writer, records); writeErr != nil {
		return writeErr
	}

	logger.Infof("Wrote %d dependencies to %s", len(records), cfg.Output.Path)
	return nil
}

// loadConfig resolves the configuration: an explicit --config path, else the
// first file found in the default locations, else the built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		return config.Load(configPath)
	}

	if found, err := config.FindConfigFile(); err == nil {
		logger.Infof("Using config file: %s", found)
		return config.Load(found)
	}

	logger.Debug("No config file found, using built-in defaults")
	return config.Default(), nil
}
