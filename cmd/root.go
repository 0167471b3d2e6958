package cmd

import (
	"errors"
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/khimalex/shoedryer/internal/config"
)

const envPrefix = "SHOEDRYER"

var (
	version = "dev"
	cfgFile string
	cfg     = config.NewConfigurationWithOptionsAndDefaults()
)

var rootCmd = &cobra.Command{
	Use:   "shoedryer",
	Short: "Keep every core busy, on demand",
	Long: `shoedryer runs a pool of busy workers, one per core by default, that can be
started and stopped at any time through an HTTP control API.`,
	SilenceUsage: true,
	PersistentPreRunE: cobrautil.CommandStack(
		cobrautil.SyncViperPreRunE(envPrefix),
		loadConfigFile,
		setupLogging,
	),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfigFile applies values from the config file to flags that were set neither on
// the command line nor through the environment.
func loadConfigFile(cmd *cobra.Command, _ []string) error {
	if cfgFile == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("config file key %q: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func newLogger(format, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zcfg zap.Config
	switch format {
	case "json":
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case "console":
		zcfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'console' or 'json'", format)
	}
	zcfg.Level = lvl

	return zcfg.Build()
}
