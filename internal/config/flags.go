package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmarquez/tiendita/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-shop string     base URL of the catalog backend
//	-auth string     base URL of the identity endpoint
//	-k string        identity API key
//	-b string        session backend: sqlite | file
//	-d string        sqlite DSN for the session database
//	-dir string      data directory for the file backend
//	-t int           request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-shop", "-auth", "-k", "-b", "-d", "-dir", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ShopBaseURL, "shop", cfg.ShopBaseURL, "base URL of the catalog backend")
	fs.StringVar(&cfg.AuthBaseURL, "auth", cfg.AuthBaseURL, "base URL of the identity endpoint")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "identity API key")
	fs.StringVar(&cfg.SessionBackend, "b", cfg.SessionBackend, "session backend: sqlite | file")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN for the session database")
	fs.StringVar(&cfg.DataDir, "dir", cfg.DataDir, "data directory for the file backend")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
