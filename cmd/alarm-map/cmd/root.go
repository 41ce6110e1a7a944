package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-map/internal/config"
	"github.com/oshokin/alarm-map/internal/logger"
	"github.com/oshokin/alarm-map/internal/service/alarmmap"
	"github.com/oshokin/alarm-map/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the level from the configuration file.
	logLevel string
	// stateFile overrides the global configuration file.
	stateFile string
	// catalogFile overrides the catalog database.
	catalogFile string

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "alarm-map",
		Short: "Manage location based alarm settings.",
		Long: `Manage the cascading configuration of location based alarms.

Settings are looked up from the most specific tier to the least specific one:
a point of interest falls back to its category, a category falls back to the
global configuration. Targets are written as "global", "category:<name>" and
"poi:<id>".`,
		SilenceUsage: true,
	}
)

// Execute runs the alarm-map CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withService opens the service, runs fn and writes back changes on the way out.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc *alarmmap.Service) error) (err error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// The flag pins this invocation's logger; the settings file sets the global level.
	if ctx, err = logger.WithLevelName(ctx, logLevel); err != nil {
		return err
	}

	svc, err := alarmmap.Open(ctx, &alarmmap.Options{
		ConfigPath:  configPath,
		StateFile:   stateFile,
		CatalogFile: catalogFile,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to open alarm map: %v", err)

		return err
	}

	defer func() {
		err = multierr.Append(err, svc.Close(ctx))
	}()

	if err = fn(ctx, svc); err != nil {
		logger.ErrorKV(ctx, "Command failed", "command", cmd.CommandPath(), "error", err)
	}

	return err
}

// printYAML writes v to the command output.
func printYAML(cmd *cobra.Command, v any) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().
		StringVar(&stateFile, "state-file", "", "path to the global configuration file")
	rootCmd.PersistentFlags().
		StringVar(&catalogFile, "catalog-file", "", "path to the catalog database")

	rootCmd.AddCommand(showCmd, setCmd, resetCmd, categoryCmd, poiCmd)
}
