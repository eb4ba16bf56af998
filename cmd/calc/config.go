package main

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"remote-calc/internal/calcclient"
)

const envPrefix = "CALC"

type config struct {
	ServerURL string
	Timeout   time.Duration
	LogFile   string
	Trace     bool
}

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("server-url", "http://127.0.0.1:8080", "Base URL of the calculation service")
	flags.Duration("timeout", calcclient.DefaultTimeout, "Per-evaluation timeout (0 disables)")
	flags.String("log-file", "", "Write JSON logs to this file (disabled when empty)")
	flags.Bool("trace", false, "Export client spans over OTLP/HTTP")
}

// loadConfig resolves flags, falling back to CALC_* environment variables
// (CALC_SERVER_URL, CALC_TIMEOUT, ...) for anything not set on the command line.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	cfg := config{
		ServerURL: v.GetString("server-url"),
		Timeout:   v.GetDuration("timeout"),
		LogFile:   v.GetString("log-file"),
		Trace:     v.GetBool("trace"),
	}

	u, err := url.Parse(cfg.ServerURL)
	if err != nil {
		return config{}, fmt.Errorf("server-url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return config{}, fmt.Errorf("server-url: expected http(s)://host[:port], got %q", cfg.ServerURL)
	}

	return cfg, nil
}
