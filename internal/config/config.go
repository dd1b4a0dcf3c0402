// Package config loads server configuration from environment variables,
// with command-line flags taking precedence.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration. The admin password and token are
// single shared secrets: if left empty, main generates random ones on
// startup and prints them.
type Config struct {
	DBPath        string `env:"IZPOSOJA_DB" envDefault:"izposoja.sqlite3"`
	Addr          string `env:"IZPOSOJA_ADDR" envDefault:":8080"`
	AdminPassword string `env:"IZPOSOJA_ADMIN_PASSWORD"`
	AdminToken    string `env:"IZPOSOJA_ADMIN_TOKEN"`
	LogPath       string `env:"IZPOSOJA_LOG"`
}

// Load parses the environment and then the given command-line arguments.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	fs := flag.NewFlagSet("izposoja", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "")

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "")
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "")

	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "")
	fs.StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "")

	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: izposoja [flags]

Flags:
  -d, -db <path>          SQLite database path (default: izposoja.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -admin-password <pw>    admin login password (default: generated, printed on startup)
  -admin-token <token>    admin console token (default: generated, printed on startup)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit

Environment variables IZPOSOJA_DB, IZPOSOJA_ADDR, IZPOSOJA_ADMIN_PASSWORD,
IZPOSOJA_ADMIN_TOKEN and IZPOSOJA_LOG are read first; flags override them.
`)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	return cfg, nil
}
