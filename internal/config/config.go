// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

type (
	// Config holds all configuration settings
	Config struct {
		API           APIConfig
		Settings      SettingsConfig
		Notifications NotificationConfig
		Display       DisplayConfig
		System        SystemConfig
	}

	// APIConfig holds backend connection settings
	APIConfig struct {
		BaseURL string
		// Source is the channel literal attached to every clock event.
		Source string
		// TimeoutSeconds bounds each network call; 0 disables the deadline.
		TimeoutSeconds int
	}

	// SettingsConfig holds general behaviour settings
	SettingsConfig struct {
		// PunchCmd is an arbitrary command executed after a successful punch.
		PunchCmd string
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// SystemConfig holds derived file locations
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "dakoku"
	configFileName = "config.yml"
	dbFileName     = "dakoku.db"
	logFileName    = "dakoku.log"
	configFilePath string
	dbFilePath     string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database, and log file locations
// through XDG. A DAKOKU_ENV value keeps development state separate.
func InitializePaths() error {
	env := strings.TrimSpace(os.Getenv("DAKOKU_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("dakoku_%s.db", env)
		logFileName = fmt.Sprintf("dakoku_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(
		filepath.Join(configDir, configFileName),
	)
	if err != nil {
		return err
	}

	dbFilePath, err = xdg.DataFile(filepath.Join(configDir, dbFileName))
	if err != nil {
		return err
	}

	logFilePath, err = xdg.StateFile(filepath.Join(configDir, logFileName))
	if err != nil {
		return err
	}

	return nil
}

// New builds a Config by applying the provided options in order.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		System: SystemConfig{
			ConfigPath: configFilePath,
			DBPath:     dbFilePath,
			LogPath:    logFilePath,
		},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}
