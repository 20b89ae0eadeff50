package cliconfig

import (
	"context"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "ansi", cfg.Dialect)
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.Verbose)
}

func TestLoadFlagOverridesDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "", "")
	require.NoError(t, flags.Set("dialect", "postgres"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Dialect)
}

func TestLoadUnchangedFlagDoesNotClobberDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "", "")

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "ansi", cfg.Dialect)
}

func TestFromContextDefaultsWhenUnset(t *testing.T) {
	cfg := FromContext(context.Background())
	assert.Equal(t, "ansi", cfg.Dialect)
}
