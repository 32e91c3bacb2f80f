package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grovetools/companion/pkg/adapters"
	"github.com/grovetools/companion/pkg/presenter"
	"github.com/grovetools/companion/pkg/reveal"
	"github.com/grovetools/companion/pkg/service"
	"github.com/grovetools/companion/pkg/settings"
	"github.com/grovetools/companion/pkg/vault"
)

// Settings backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var cfgFile string

// App holds everything the subcommands work with. It is built once per
// invocation by InitApp.
type App struct {
	Logger    *logrus.Logger
	Vault     *vault.Disk
	Settings  *settings.Store
	Service   *service.Service
	Adapters  *adapters.Adapters
	Presenter *presenter.Presenter

	// ActiveNote is the note the command and ribbon triggers act on.
	ActiveNote string

	closers []io.Closer
}

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "companion")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("COMPANION")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("vault", ".")
	viper.SetDefault("settings_backend", BackendFile)
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "companion"))
	viper.SetDefault("active_note", "")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("reveal_in_browser", true)

	// A missing config file is fine; defaults and env apply.
	_ = viper.ReadInConfig()
}

// NewLogger builds the logger from the configured level.
func NewLogger(errOut io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(errOut)

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// InitApp opens the vault, loads the settings and wires the service.
func InitApp(out, errOut io.Writer, options ...service.Option) (*App, error) {
	logger := NewLogger(errOut)

	v, err := vault.NewDisk(viper.GetString("vault"))
	if err != nil {
		return nil, err
	}

	app := &App{
		Logger:     logger,
		Vault:      v,
		Presenter:  presenter.New(out, errOut),
		ActiveNote: viper.GetString("active_note"),
	}

	host, err := app.settingsHost()
	if err != nil {
		return nil, err
	}

	app.Settings = settings.NewStore(host, logger.WithField("component", "settings"))
	if err := app.Settings.Load(context.Background()); err != nil {
		// Non-fatal, proceed with defaults.
		logger.WithError(err).Warn("could not load settings, using defaults")
	}

	var revealer reveal.Revealer = reveal.NewSystem(logger.WithField("component", "reveal"))
	if !viper.GetBool("reveal_in_browser") {
		revealer = &reveal.Recorder{}
	}

	opts := []service.Option{
		service.WithLogger(logger.WithField("component", "service")),
		service.WithNotifier(app.Presenter),
		service.WithRevealer(revealer),
	}
	app.Service = service.New(v, app.Settings, append(opts, options...)...)
	app.Adapters = adapters.New(app.Service)

	return app, nil
}

func (a *App) settingsHost() (settings.Host, error) {
	switch backend := viper.GetString("settings_backend"); backend {
	case BackendFile, "":
		return settings.NewVaultFileHost(a.Vault.Root()), nil
	case BackendSQLite:
		host, err := settings.NewSQLiteHost(viper.GetString("data_dir"), a.Vault.Root())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, host)
		return host, nil
	default:
		return nil, fmt.Errorf("unknown settings backend: %s", backend)
	}
}

// Close releases the settings database, if any.
func (a *App) Close() error {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/companion/config.yaml)")
	cmd.PersistentFlags().StringP("vault", "V", "", "Vault directory (default is the current directory)")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	_ = viper.BindPFlag("vault", cmd.PersistentFlags().Lookup("vault"))
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
}
