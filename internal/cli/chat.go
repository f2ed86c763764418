// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for llmchat.
//
// USABILITY: Markdown rendering and line editing for better CLI experience

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/llmchat/internal/cloud"
	"github.com/jeranaias/llmchat/internal/config"
	"github.com/jeranaias/llmchat/internal/model"
	"github.com/jeranaias/llmchat/internal/session"
	"github.com/jeranaias/llmchat/internal/util"
)

// chatPrompt is shown before every input line. liner measures prompt
// width itself, so it carries no color codes.
const chatPrompt = ">>> "

// =============================================================================
// LINE INPUT
// =============================================================================

// LinerReader reads input lines with line editing and in-memory history.
// It implements session.LineReader. History is not written to disk.
// USABILITY: Supports arrow keys for history navigation and line editing.
type LinerReader struct {
	line   *liner.State
	prompt string
}

// NewLinerReader takes over the terminal until Close is called.
func NewLinerReader(prompt string) *LinerReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerReader{line: line, prompt: prompt}
}

// ReadLine reads one line. Ctrl+C and Ctrl+D are reported as io.EOF.
func (r *LinerReader) ReadLine() (string, error) {
	input, err := r.line.Prompt(r.prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (r *LinerReader) Close() error {
	return r.line.Close()
}

// lineReadCloser is what runChat needs from its input.
type lineReadCloser interface {
	session.LineReader
	io.Closer
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// chatEnv holds the process seams runChat touches, so tests can swap them.
type chatEnv struct {
	stdout, stderr io.Writer
	newReader      func() lineReadCloser
	interactive    bool
	width          int
}

// defaultChatEnv wires the real terminal.
func defaultChatEnv(stdout, stderr io.Writer) chatEnv {
	return chatEnv{
		stdout:      stdout,
		stderr:      stderr,
		newReader:   func() lineReadCloser { return NewLinerReader(chatPrompt) },
		interactive: IsTTY() && IsStdoutTTY(),
		width:       GetTerminalWidth(),
	}
}

// runChat loads configuration, then runs one session until exit.
func runChat(ctx context.Context, env chatEnv, root *rootOptions, overrides config.Overrides) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: root.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}

	logger := newLogger(env.stderr, root.verbose)
	client := cloud.NewClient(cfg.APIKey)
	ctrl := session.NewController(client, cfg.Generation)

	logger = logger.With("session", ctrl.Stats().ID)
	client.WithLogger(logger)
	ctrl.WithLogger(logger)
	logger.Debug("configuration loaded", "path", cfg.Path, "model", cfg.Generation.Model,
		"endpoint", client.Endpoint())
	logger.Debug("effective configuration", "config", cfg.String())

	presenter := NewTerminalPresenter(env.stdout, env.interactive, env.width)
	if env.interactive {
		printWelcome(env.stdout, ctrl.Generation(), env.width)
	}

	reader := env.newReader()
	err = session.Run(ctx, ctrl, reader, presenter)
	if cerr := reader.Close(); cerr != nil {
		logger.Debug("closing input", "error", cerr)
	}

	if env.interactive {
		fmt.Fprintln(env.stdout)
		fmt.Fprintln(env.stdout, DimStyle.Render("Goodbye! "+ctrl.Stats().Summary()))
	}
	return err
}

// newLogger builds the session logger. Failure bodies are logged at error
// level, so they show at the default warn level.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// =============================================================================
// WELCOME BANNER
// =============================================================================

// printWelcome prints the banner shown at session start.
func printWelcome(w io.Writer, gen config.GenerationConfig, width int) {
	modelName := gen.Model
	if info, ok := model.GetModelInfo(gen.Model); ok {
		modelName = fmt.Sprintf("%s [%s]", gen.Model, info.DisplayName())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, WelcomeStyle.Render("llmchat interactive chat"))
	fmt.Fprintln(w, InfoStyle.Render(strings.Repeat("─", 30)))
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Model:"),
		util.TruncateWidth(modelName, width-util.StringWidth("Model: ")))
	fmt.Fprintf(w, "%s temperature=%g max_tokens=%d top_p=%g n=%d\n",
		LabelStyle.Render("Params:"), gen.Temperature, gen.MaxTokens, gen.TopP, gen.N)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s, %s, %s\n",
		InfoStyle.Render("Type your message and press Enter. Commands:"),
		CommandStyle.Render(session.CommandExit),
		CommandStyle.Render(session.CommandClear),
		CommandStyle.Render(session.CommandUndo))
	fmt.Fprintln(w)
}
