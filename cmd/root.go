package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath     string
	outputPath     string
	formatName     string
	scannerCommand string
	verbose        bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "licensegen",
	Short: "Third-party dependency license report generator",
	Long: `A CLI tool that invokes an external dependency-license scanner
(license-checker by default), extracts license and copyright metadata for
each production dependency, and writes a consolidated report.

Running it with no arguments performs the full pipeline:
scan -> extract -> write LICENSE-3rdparty.csv in the working directory.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "",
		"Report destination path (default: LICENSE-3rdparty.csv)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "",
		"Report format: csv or markdown (default: csv)")
	rootCmd.PersistentFlags().StringVar(&scannerCommand, "scanner", "",
		"Scanner command to invoke (default: license-checker)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
