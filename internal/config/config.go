// Package config loads runtime settings for the job portal CLI.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the SQLite file backing the key/value namespace.
//   - AdminEmail: the distinguished address that always resolves to admin.
//   - ResetTokenTTL: how long a password reset token stays redeemable.
type Config struct {
	DatabasePath  string
	AdminEmail    string
	ResetTokenTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "jobportal.db"
	c.AdminEmail = "rzeqiri03@gmail.com"
	c.ResetTokenTTL = time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
