package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/recordkit/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runApp(cmd, func(_ context.Context, a *app.App) error {
			return a.Version()
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(versionCmd)
}
