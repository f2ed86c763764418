// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import "strings"

// Session command words. Matching is exact and case-sensitive.
const (
	CommandExit  = "exit"
	CommandClear = "clear"
	CommandUndo  = "undo"
)

// IntentKind tags an Intent.
type IntentKind int

const (
	// IntentEmpty is a blank line. It is ignored.
	IntentEmpty IntentKind = iota
	// IntentExit ends the session.
	IntentExit
	// IntentClear empties the history.
	IntentClear
	// IntentUndo removes the last turn.
	IntentUndo
	// IntentSend sends Text to the model.
	IntentSend
)

// String returns the kind name for logging.
func (k IntentKind) String() string {
	switch k {
	case IntentEmpty:
		return "empty"
	case IntentExit:
		return "exit"
	case IntentClear:
		return "clear"
	case IntentUndo:
		return "undo"
	case IntentSend:
		return "send"
	default:
		return "unknown"
	}
}

// Intent is the decoded meaning of one input line. Text is only set for
// IntentSend.
type Intent struct {
	Kind IntentKind
	Text string
}

// Send returns an IntentSend carrying text.
func Send(text string) Intent {
	return Intent{Kind: IntentSend, Text: text}
}

// ParseIntent decodes one input line. Surrounding whitespace is trimmed
// before matching; "Exit" or "exit now" are ordinary messages.
func ParseIntent(line string) Intent {
	text := strings.TrimSpace(line)
	switch text {
	case "":
		return Intent{Kind: IntentEmpty}
	case CommandExit:
		return Intent{Kind: IntentExit}
	case CommandClear:
		return Intent{Kind: IntentClear}
	case CommandUndo:
		return Intent{Kind: IntentUndo}
	default:
		return Send(text)
	}
}
