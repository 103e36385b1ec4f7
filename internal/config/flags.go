package config

import (
	"flag"
	"os"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend REST API (default from Config)
//	-t string   token store backend: keyring or file
//	-s string   path of the local snapshot cache
//
// Note: The function picks only the flags it knows about out of os.Args,
// via flagx.Pick, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.Pick(os.Args[1:], "-a", "-t", "-s")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend REST API")
	fs.StringVar(&cfg.TokenBackend, "t", cfg.TokenBackend, "token store backend (keyring|file)")
	fs.StringVar(&cfg.CachePath, "s", cfg.CachePath, "path of the local snapshot cache")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
