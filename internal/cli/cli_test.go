// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/llmchat/internal/config"
	"github.com/jeranaias/llmchat/internal/model"
)

// scriptedReader feeds fixed lines to the session, then io.EOF.
type scriptedReader struct {
	lines  []string
	closed bool
}

func (r *scriptedReader) ReadLine() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

type testEnv struct {
	env    chatEnv
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	reader *scriptedReader
}

func newTestEnv(lines ...string) *testEnv {
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		reader: &scriptedReader{lines: lines},
	}
	te.env = chatEnv{
		stdout:    te.stdout,
		stderr:    te.stderr,
		newReader: func() lineReadCloser { return te.reader },
		width:     DefaultTerminalWidth,
	}
	return te
}

func (te *testEnv) run(args ...string) error {
	cmd := newRootCommand(te.env)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	return cmd.Execute()
}

// isolateEnv keeps the user's real key and config file out of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{config.EnvAPIKey, config.EnvModel} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// =============================================================================
// COMMAND TESTS
// =============================================================================

func TestRoot_NoSubcommandIsNoOp(t *testing.T) {
	isolateEnv(t)
	te := newTestEnv()

	err := te.run()

	assert.NoError(t, err)
	assert.Equal(t, ExitSuccess, GetExitCode(err))
	assert.Empty(t, te.stdout.String())
	assert.Empty(t, te.stderr.String())
}

func TestRoot_UnknownSubcommand(t *testing.T) {
	te := newTestEnv()

	err := te.run("bogus")

	require.Error(t, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestRoot_Version(t *testing.T) {
	te := newTestEnv()

	require.NoError(t, te.run("--version"))
	assert.Contains(t, te.stdout.String(), "llmchat version "+Version)
}

func TestChat_InvalidFlagValue(t *testing.T) {
	te := newTestEnv()

	err := te.run("chat", "--max-tokens", "lots")

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr), "got %T: %v", err, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestChat_OutOfRangeFlagValue(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvAPIKey, "sk-test")
	te := newTestEnv("exit")

	err := te.run("chat", "-p", "2.5")

	assert.Equal(t, ExitUsageError, GetExitCode(err))
	assert.Contains(t, err.Error(), "generation.top_p")
}

func TestChat_MissingAPIKey(t *testing.T) {
	isolateEnv(t)
	te := newTestEnv("Hello")

	err := te.run("chat")

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "got %T: %v", err, err)
	assert.Equal(t, ExitConfigError, GetExitCode(err))
	assert.Equal(t, []string{"Hello"}, te.reader.lines, "no input read before configuration")
}

func TestChat_ExitWithoutRequest(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvAPIKey, "sk-test")
	te := newTestEnv("undo", "exit", "never read")

	err := te.run("chat", "-m", "mistral-7b")

	require.NoError(t, err)
	assert.True(t, te.reader.closed)
	assert.Equal(t, []string{"never read"}, te.reader.lines)
	assert.Contains(t, te.stdout.String(), "Nothing to undo.")
	assert.Empty(t, te.stderr.String())
}

func TestChat_VerboseLogsToStderr(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvAPIKey, "sk-secret-key")
	te := newTestEnv()

	require.NoError(t, te.run("chat", "-v"))

	logs := te.stderr.String()
	assert.Contains(t, logs, "configuration loaded")
	assert.Contains(t, logs, "session=")
	assert.Contains(t, logs, "effective configuration")
	assert.Contains(t, logs, "[generation]")
	assert.NotContains(t, logs, "sk-secret-key")
}

func TestChat_ModelHelpListsAliases(t *testing.T) {
	te := newTestEnv()

	require.NoError(t, te.run("chat", "--help"))

	out := te.stdout.String()
	for _, alias := range model.ModelAliases() {
		assert.Contains(t, out, alias)
	}
}

func TestChat_InteractiveBanner(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvAPIKey, "sk-test")
	te := newTestEnv()
	te.env.interactive = true

	require.NoError(t, te.run("chat", "-t", "0.3"))

	out := te.stdout.String()
	assert.Contains(t, out, "llmchat interactive chat")
	assert.Contains(t, out, "temperature=0.3")
	assert.Contains(t, out, "exit")
	assert.Contains(t, out, "Goodbye!")
}

// =============================================================================
// FLAG TESTS
// =============================================================================

func TestOverridesFromFlags(t *testing.T) {
	t.Run("defaults are not overrides", func(t *testing.T) {
		cmd := newChatCommand(newTestEnv().env, &rootOptions{})
		require.NoError(t, cmd.ParseFlags(nil))

		o := overridesFromFlags(cmd.Flags())
		assert.Equal(t, config.Overrides{}, o)
	})

	t.Run("short flags", func(t *testing.T) {
		cmd := newChatCommand(newTestEnv().env, &rootOptions{})
		require.NoError(t, cmd.ParseFlags([]string{"-m", "haiku", "-t", "0.1", "-x", "50", "-p", "0.9", "-n", "2"}))

		o := overridesFromFlags(cmd.Flags())
		require.NotNil(t, o.Model)
		assert.Equal(t, "haiku", *o.Model)
		require.NotNil(t, o.Temperature)
		assert.Equal(t, 0.1, *o.Temperature)
		require.NotNil(t, o.MaxTokens)
		assert.Equal(t, 50, *o.MaxTokens)
		require.NotNil(t, o.TopP)
		assert.Equal(t, 0.9, *o.TopP)
		require.NotNil(t, o.N)
		assert.Equal(t, 2, *o.N)
	})

	t.Run("long flags", func(t *testing.T) {
		cmd := newChatCommand(newTestEnv().env, &rootOptions{})
		require.NoError(t, cmd.ParseFlags([]string{"--max-tokens", "1200", "--top-p", "0.5"}))

		o := overridesFromFlags(cmd.Flags())
		assert.Nil(t, o.Model)
		require.NotNil(t, o.MaxTokens)
		assert.Equal(t, 1200, *o.MaxTokens)
		require.NotNil(t, o.TopP)
		assert.Equal(t, 0.5, *o.TopP)
	})
}

// =============================================================================
// EXIT CODE TESTS
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"configuration", &config.ConfigurationError{Field: config.EnvAPIKey, Message: "missing"}, ExitConfigError},
		{"wrapped configuration", errors.Join(errors.New("ctx"), &config.ConfigurationError{Field: "config"}), ExitConfigError},
		{"usage", &UsageError{Err: errors.New("bad flag")}, ExitUsageError},
		{"validation", config.ValidateErrors{{Field: "generation.n", Message: "must be >= 1"}}, ExitUsageError},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestDisplayError_MissingKeyHint(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, &config.ConfigurationError{Field: config.EnvAPIKey, Message: "environment variable is not set"})

	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), ".env")

	buf.Reset()
	DisplayError(&buf, nil)
	assert.Empty(t, buf.String())
}
