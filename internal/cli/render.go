// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Reply and notice output for the chat session.
//
// USABILITY: Renders markdown replies with syntax highlighting and word wrap.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// rendererMargin leaves room for glamour's document margin.
const rendererMargin = 4

// =============================================================================
// TERMINAL PRESENTER
// =============================================================================

// TerminalPresenter writes session output to a terminal or pipe.
// It implements session.Presenter.
type TerminalPresenter struct {
	out      io.Writer
	renderer *glamour.TermRenderer
}

// NewTerminalPresenter creates a presenter writing to out. When markdown is
// true replies are rendered with glamour, wrapped to width; otherwise they
// are written as-is so piped output stays clean.
func NewTerminalPresenter(out io.Writer, markdown bool, width int) *TerminalPresenter {
	p := &TerminalPresenter{out: out}
	if !markdown {
		return p
	}

	wrap := width - rendererMargin
	if wrap < MinTerminalWidth {
		wrap = MinTerminalWidth
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if ColorsEnabled() {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err == nil {
		// Fallback to plain text if renderer initialization fails
		p.renderer = r
	}
	return p
}

// Markdown reports whether replies are rendered.
func (p *TerminalPresenter) Markdown() bool {
	return p.renderer != nil
}

// render converts markdown to terminal output, or returns it unchanged.
func (p *TerminalPresenter) render(content string) string {
	if p.renderer == nil {
		return content
	}
	out, err := p.renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

// Reply writes the reply marker followed by the rendered reply.
func (p *TerminalPresenter) Reply(content string) {
	body := p.render(content)
	if p.renderer == nil {
		fmt.Fprintf(p.out, "%s %s\n", ReplyMarkerStyle.Render(">"), strings.TrimRight(body, "\n"))
		return
	}
	fmt.Fprintln(p.out, ReplyMarkerStyle.Render(">"))
	fmt.Fprint(p.out, body)
}

// Failure writes the inline error notice for a failed turn.
func (p *TerminalPresenter) Failure(err error) {
	fmt.Fprintf(p.out, "%s %s\n",
		ErrorStyle.Render("><"),
		fmt.Sprintf("Error processing request: %v. Please try again.", err))
}

// Notice writes a short status line.
func (p *TerminalPresenter) Notice(text string) {
	fmt.Fprintln(p.out, InfoStyle.Render(text))
}
