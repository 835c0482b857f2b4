package config

import (
	"flag"
	"os"

	"github.com/mcorbu/shelterdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-r string   store driver: sqlite or pgx
//	-d string   store data source name
//	-s string   session record file path
//	-o string   documents root directory
//	-l string   log format: text or json
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-r", "-d", "-s", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "r", cfg.StoreDriver, "store driver (sqlite or pgx)")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "store data source name")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session record file path")
	fs.StringVar(&cfg.DocumentsDir, "o", cfg.DocumentsDir, "documents root directory")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format (text or json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
