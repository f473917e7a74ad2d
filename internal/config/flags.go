package config

import (
	"flag"
	"os"
	"time"

	"github.com/rzeqiri/jobportal/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the database file (default from Config)
//	-e string   distinguished admin email (default from Config)
//	-t int      reset token TTL in seconds (default from Config)
//
// Only these flags are consumed here; flagx.FilterArgs keeps the rest for
// other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the database file")
	fs.StringVar(&cfg.AdminEmail, "e", cfg.AdminEmail, "distinguished admin email")
	resetTTL := fs.Int("t", int(cfg.ResetTokenTTL.Seconds()), "reset token ttl (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ResetTokenTTL = time.Duration(*resetTTL) * time.Second
}
