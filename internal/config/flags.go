package config

import (
	"flag"
	"os"

	"github.com/dkurbatov/filevault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   snapshot database DSN (sqlite path or postgres:// URL)
//	-r uint     max snapshot save retries
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "snapshot database DSN")
	fs.Uint64Var(&cfg.PersistMaxRetries, "r", cfg.PersistMaxRetries, "max snapshot save retries")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
