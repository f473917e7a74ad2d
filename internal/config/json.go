package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rzeqiri/jobportal/internal/flagx"
	"github.com/rzeqiri/jobportal/internal/timex"
)

// jsonConfig is the DTO for JSON unmarshalling. timex.Duration lets the
// file specify the TTL either as "1h" or as integer nanoseconds.
type jsonConfig struct {
	DatabasePath  string         `json:"database_path"`
	AdminEmail    string         `json:"admin_email"`
	ResetTokenTTL timex.Duration `json:"reset_token_ttl"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. Absent fields keep their current values. Panics on read or
// unmarshal errors, matching the fail-fast startup path.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.AdminEmail != "" {
		cfg.AdminEmail = jc.AdminEmail
	}
	if jc.ResetTokenTTL.Duration != 0 {
		cfg.ResetTokenTTL = time.Duration(jc.ResetTokenTTL.Duration)
	}
}
