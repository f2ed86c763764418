// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// LineReader yields one input line per call. io.EOF ends the session
// cleanly; the reader maps Ctrl+C and Ctrl+D to it.
type LineReader interface {
	ReadLine() (string, error)
}

// Presenter shows session output.
type Presenter interface {
	// Reply shows an assistant message. Content is markdown.
	Reply(content string)
	// Failure shows a failed turn. The session continues.
	Failure(err error)
	// Notice shows a short status line.
	Notice(text string)
}

// Run drives the session until exit or end of input. Lines are handled one
// at a time and each request is waited for before the next line is read.
// It returns nil on a clean exit and the reader's error otherwise.
func Run(ctx context.Context, ctrl *Controller, in LineReader, out Presenter) error {
	for {
		line, err := in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				ctrl.logger.Debug("input closed")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		outcome := ctrl.HandleLine(ctx, line)
		if outcome.Exit {
			return nil
		}
		present(out, outcome)
	}
}

// present maps an outcome to presenter calls.
func present(out Presenter, o Outcome) {
	switch o.Intent.Kind {
	case IntentClear:
		out.Notice("Conversation cleared.")
	case IntentUndo:
		if o.Removed == 0 {
			out.Notice("Nothing to undo.")
		} else {
			out.Notice(fmt.Sprintf("Removed last %d message(s).", o.Removed))
		}
	case IntentSend:
		switch {
		case o.Err != nil:
			out.Failure(o.Err)
		case o.Reply != nil:
			out.Reply(o.Reply.Content)
		}
	}
}
