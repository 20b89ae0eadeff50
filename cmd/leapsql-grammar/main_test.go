package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlgrammar/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexCommandPrintsTokenStream(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("select 1"))
	cmd.SetArgs([]string{"lex"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "naked_identifier")
	assert.Contains(t, buf.String(), "numeric_literal")
}

func TestParseCommandJSONOutput(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("select 1"))
	cmd.SetArgs([]string{"parse", "--output", "json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"file"`)
}

func TestParseCommandUnknownDialect(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("select 1"))
	cmd.SetArgs([]string{"parse", "--dialect", "nonesuch"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestFixDemoUppercasesKeywords(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("select 1 from t"))
	cmd.SetArgs([]string{"fix-demo"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "SELECT 1 FROM t\n", buf.String())
}
