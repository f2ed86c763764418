// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalPresenter_PlainReply(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf, false, 80)
	assert.False(t, p.Markdown())

	p.Reply("**Hi** there\n")

	assert.Contains(t, buf.String(), ">")
	assert.Contains(t, buf.String(), "**Hi** there", "markdown left untouched when not a TTY")
}

func TestTerminalPresenter_MarkdownReply(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf, true, 100)
	assert.True(t, p.Markdown())

	p.Reply("# Title\n\nSome **bold** text")

	out := buf.String()
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
	assert.NotEqual(t, ">\n# Title\n\nSome **bold** text", out)
}

func TestTerminalPresenter_Failure(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf, false, 80)

	p.Failure(errors.New("request failed with status: 500 Internal Server Error: server error"))

	assert.Contains(t, buf.String(), "Error processing request: request failed with status: 500")
	assert.Contains(t, buf.String(), "Please try again.")
}

func TestTerminalPresenter_Notice(t *testing.T) {
	var buf bytes.Buffer
	NewTerminalPresenter(&buf, false, 80).Notice("Conversation cleared.")
	assert.Contains(t, buf.String(), "Conversation cleared.")
}

func TestDetectColors(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	assert.False(t, detectColors(env(map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "1"}), true))
	assert.True(t, detectColors(env(map[string]string{"FORCE_COLOR": "1"}), false))
	assert.True(t, detectColors(env(nil), true))
	assert.False(t, detectColors(env(nil), false))
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, DefaultTerminalWidth, clampWidth(0, nil))
	assert.Equal(t, DefaultTerminalWidth, clampWidth(120, errors.New("not a terminal")))
	assert.Equal(t, MinTerminalWidth, clampWidth(10, nil))
	assert.Equal(t, 132, clampWidth(132, nil))
}
