package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmikhr/stylecart/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the store API (default from Config)
//	-d string   path to the local settings database
//	-t int      request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the store API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local settings database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
