// Package cliconfig loads cmd/leapsql-grammar's configuration the way the
// teacher's internal/cli/config package does: koanf layering defaults,
// an optional YAML file, environment variables, then CLI flags, each
// layer overriding the last.
package cliconfig

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds the grammar CLI's run-time settings.
type Config struct {
	Dialect string `koanf:"dialect"`
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`
}

const envPrefix = "LEAPSQL_GRAMMAR_"

var defaults = map[string]any{
	"dialect": "ansi",
	"output":  "text",
	"verbose": false,
}

// Load builds a Config by layering defaults, an optional YAML file at
// path (skipped if empty or missing), environment variables prefixed
// LEAPSQL_GRAMMAR_, and finally flags — each layer overriding the last
// (spec ambient-stack note: CLI flags always win).
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("cliconfig: loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("cliconfig: loading %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("cliconfig: loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("cliconfig: loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("cliconfig: unmarshalling: %w", err)
	}
	return &cfg, nil
}

type contextKey struct{}

// WithConfig returns a context carrying cfg, for the root command's
// PersistentPreRunE to stash the loaded Config where subcommands (in a
// different package) can retrieve it without importing the root package.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext retrieves the Config stored by WithConfig, or a zero-value
// default if none was stored.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(contextKey{}).(*Config); ok {
		return c
	}
	return &Config{Dialect: "ansi", Output: "text"}
}
