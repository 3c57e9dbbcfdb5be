package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/licensegen/infrastructure/report"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported report formats",
	Long:  `List the report formats that can be passed to --format or set as output.format in the config file.`,
	Run: func(_ *cobra.Command, _ []string) {
		for _, name := range report.NewDefaultRegistry().Names() {
			fmt.Println(name)
		}
	},
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(formatsCmd)
}
