package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallworld/txstats/cmd/query"
	"github.com/smallworld/txstats/internal/app"
	"github.com/smallworld/txstats/internal/config"
	"github.com/smallworld/txstats/internal/constants"
	"github.com/smallworld/txstats/internal/errhandler"
	"github.com/smallworld/txstats/internal/logging"
	"github.com/smallworld/txstats/internal/service"
)

// runtime carries what commands share: configuration, logger and the lazily
// loaded snapshot.
type runtime struct {
	migrations fs.FS
	cfgFile    string
	cfg        *config.Config
	logger     *slog.Logger

	app     *app.App
	cleanup func()
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rt := &runtime{migrations: migrations}
	rootCmd := NewRootCmd(rt)

	err := rootCmd.Execute()
	rt.close()

	if code := errhandler.HandleError(err); code != 0 {
		os.Exit(code)
	}
}

func NewRootCmd(rt *runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "txstats answers analytical queries over a transaction snapshot",
		Long: `txstats loads a collection of money transfer records once and answers a fixed
set of questions about them: totals, top senders, largest transfers, unique
clients and open compliance issues.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.initConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rt.cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table|json)")
	rootCmd.PersistentFlags().String("source", "", "transactions source driver (json|sqlite)")
	rootCmd.PersistentFlags().String("file", "", "transactions JSON file for the json driver")

	rootCmd.AddCommand(query.NewQueryCmd(rt))
	rootCmd.AddCommand(NewReportCmd(rt))
	rootCmd.AddCommand(NewInfoCmd(rt))
	rootCmd.AddCommand(NewImportCmd(rt))
	rootCmd.AddCommand(NewServeCmd(rt))

	return rootCmd
}

func (rt *runtime) initConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.GetViper()
	setDefaults(v)

	if rt.cfgFile != "" {
		v.SetConfigFile(rt.cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	flags := cmd.Flags()
	for key, name := range map[string]string{
		"output.format": "output",
		"source.driver": "source",
		"source.path":   "file",
	} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if rt.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := validate(cfg); err != nil {
		return err
	}

	rt.cfg = cfg
	rt.logger = logging.New(cfg.Log)
	slog.SetDefault(rt.logger)

	return nil
}

func setDefaults(v *viper.Viper) {
	d := config.NewDefault()

	v.SetDefault("source.driver", d.Source.Driver)
	v.SetDefault("source.path", d.Source.Path)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("report.sender", d.Report.Sender)
	v.SetDefault("report.client", d.Report.Client)
	v.SetDefault("report.top", d.Report.Top)
	v.SetDefault("server.addr", d.Server.Addr)
}

func validate(cfg *config.Config) error {
	switch cfg.Output.Format {
	case constants.FormatTable, constants.FormatJSON:
	default:
		return fmt.Errorf("invalid output format '%s': must be one of [table json]", cfg.Output.Format)
	}

	switch cfg.Source.Driver {
	case constants.DriverJSON, constants.DriverSQLite:
	default:
		return fmt.Errorf("invalid source driver '%s': must be one of [json sqlite]", cfg.Source.Driver)
	}

	if cfg.Report.Top < 0 {
		return fmt.Errorf("invalid report.top %d: must not be negative", cfg.Report.Top)
	}

	return nil
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Service loads the snapshot on first use.
func (rt *runtime) Service(ctx context.Context) (*service.Service, error) {
	if rt.app != nil {
		return rt.app.Service, nil
	}

	a, cleanup, err := app.NewApp(ctx, rt.cfg, rt.migrations, rt.logger)
	if err != nil {
		return nil, err
	}

	rt.app = a
	rt.cleanup = cleanup
	return a.Service, nil
}

func (rt *runtime) OutputFormat() string {
	return rt.cfg.Output.Format
}

func (rt *runtime) close() {
	if rt.cleanup != nil {
		rt.cleanup()
		rt.cleanup = nil
	}
}
