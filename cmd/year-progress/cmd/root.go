package cmd

import (
	"fmt"
	"io"
	"os"

	"year-progress/internal/config"
	"year-progress/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	settings   = config.New()
	cfg        config.Config
)

// RootCmd shows the graphical widget when run without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "year-progress",
	Short: "Show how much of the current year has elapsed",
	Long: `year-progress displays the fraction of the current calendar year that has
elapsed, refreshed every second, together with the days passed and left.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(settings, configFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI(cmd.Context())
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/"+config.ConfigFile+")")
	flags.String("theme", "system", "colour scheme: system, light or dark")
	flags.Int("year", 0, "track a fixed year instead of the current one")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")
	flags.String("log-file", "", "write logs to this file")

	bindFlags(settings, RootCmd)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for key, flag := range map[string]string{
		config.KeyTheme:     "theme",
		config.KeyYear:      "year",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
		config.KeyLogFile:   "log-file",
	} {
		_ = v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag))
	}
}

func loadConfig(v *viper.Viper, path string) error {
	if err := config.ReadFile(v, path); err != nil {
		return err
	}
	loaded, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded
	return nil
}

// newLogger builds the configured logger. Without a log file it writes to
// fallback.
func newLogger(c config.Config, fallback io.Writer) (logger.Logger, func() error, error) {
	if c.Log.File == "" {
		return logger.New(c.Log.Format, c.Log.Level, fallback), func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger.New(c.Log.Format, c.Log.Level, f), f.Close, nil
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
