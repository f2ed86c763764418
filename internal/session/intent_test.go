// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		line string
		want Intent
	}{
		{"exit", Intent{Kind: IntentExit}},
		{"clear", Intent{Kind: IntentClear}},
		{"undo", Intent{Kind: IntentUndo}},
		{"  exit  ", Intent{Kind: IntentExit}},
		{"undo\n", Intent{Kind: IntentUndo}},
		{"", Intent{Kind: IntentEmpty}},
		{"   \t ", Intent{Kind: IntentEmpty}},
		{"Exit", Send("Exit")},
		{"CLEAR", Send("CLEAR")},
		{"exit now", Send("exit now")},
		{"undone", Send("undone")},
		{"  Hello world  ", Send("Hello world")},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIntent(tt.line))
		})
	}
}

func TestIntentKind_String(t *testing.T) {
	assert.Equal(t, "send", IntentSend.String())
	assert.Equal(t, "empty", IntentEmpty.String())
	assert.Equal(t, "unknown", IntentKind(99).String())
}
