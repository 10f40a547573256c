package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/recordkit/internal/app"
	"github.com/oshokin/recordkit/internal/config"
	"github.com/oshokin/recordkit/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "recordkit",
		Short: "Query record lists and convert files to and from data URIs.",
		Long: `Recordkit is a CLI tool for working with lists of records stored in JSON or YAML files.
It supports:
- Grouping, ordering and de-duplicating records by a key
- Summing, searching, checking and removing records by a key value
- Encoding files to base64 data URIs and decoding them back
- Validating files by size, extension and name

Results are printed as JSON or YAML.`,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootFlags := rootCmd.PersistentFlags()

	rootFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootFlags.StringP(
		"format",
		"f",
		"",
		"output format: json or yaml.")

	rootFlags.String(
		"log-level",
		"",
		"logging level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// bindFlagsToConfig copies explicitly set flags over the configuration and validates the result.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("format"); flag != nil && flag.Changed {
		cfg.OutputFormat, _ = flags.GetString("format")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("max-size"); flag != nil && flag.Changed {
		cfg.MaxFileSize, _ = flags.GetString("max-size")
	}

	if flag := flags.Lookup("extensions"); flag != nil && flag.Changed {
		cfg.AllowExtensions, _ = flags.GetStringSlice("extensions")
	}

	return config.ValidateConfig(cfg)
}

// runApp creates the application for cmd and runs action, exiting on failure.
func runApp(cmd *cobra.Command, action func(ctx context.Context, a *app.App) error) {
	ctx := cmd.Context()

	a, err := app.New(appConfig, cmd.OutOrStdout(), cmd.InOrStdin())
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize application: %v", err)
	}

	if err = action(ctx, a); err != nil {
		logger.Fatalf(ctx, "Command '%s' failed: %v", cmd.Name(), err)
	}
}
