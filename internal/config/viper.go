package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyAPIBaseURL           = "api.base_url"
	keyAPISource            = "api.source"
	keyAPITimeout           = "api.timeout_seconds"
	keyPunchCmd             = "settings.punch_cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
)

const (
	defaultBaseURL        = "http://localhost:8080"
	defaultSource         = "cli"
	defaultTimeoutSeconds = 10
)

// WithViperConfig returns an Option that loads configuration from the YAML
// config file, writing one with defaults on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		v.SetDefault(keyAPIBaseURL, defaultBaseURL)
		v.SetDefault(keyAPISource, defaultSource)
		v.SetDefault(keyAPITimeout, defaultTimeoutSeconds)
		v.SetDefault(keyPunchCmd, "")
		v.SetDefault(keyNotificationsEnabled, true)
		v.SetDefault(keyDarkTheme, true)
		v.SetDefault(keyTwentyFourHour, true)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

// loadViperConfig transfers Viper values into the config.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.API.BaseURL = v.GetString(keyAPIBaseURL)
	c.API.Source = v.GetString(keyAPISource)
	c.API.TimeoutSeconds = v.GetInt(keyAPITimeout)
	c.Settings.PunchCmd = v.GetString(keyPunchCmd)
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)

	if c.API.BaseURL == "" {
		return errNoBaseURL
	}

	if c.API.TimeoutSeconds < 0 {
		return errInvalidTimeout
	}

	return nil
}

// WithCLIConfig returns an Option that overrides config values from
// command-line flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		if s := ctx.String("api-url"); s != "" {
			c.API.BaseURL = s
		}

		if s := ctx.String("source"); s != "" {
			c.API.Source = s
		}

		if ctx.Bool("disable-notification") {
			c.Notifications.Enabled = false
		}

		return nil
	}
}
