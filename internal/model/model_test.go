// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_IsKnown(t *testing.T) {
	assert.True(t, RoleUser.IsKnown())
	assert.True(t, RoleAssistant.IsKnown())
	assert.True(t, RoleSystem.IsKnown())
	assert.False(t, Role("").IsKnown())
	assert.False(t, Role("User").IsKnown())
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func newConversationWith(n int) *Conversation {
	conv := NewConversation()
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			conv.Append(NewUserMessage("question"))
		} else {
			conv.Append(NewAssistantMessage("answer"))
		}
	}
	return conv
}

func TestConversation_AppendPreservesOrder(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("Hello"))
	conv.Append(NewAssistantMessage("Hi there"))
	conv.Append(NewUserMessage("How are you?"))

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, Message{Role: RoleUser, Content: "Hello"}, msgs[0])
	assert.Equal(t, Message{Role: RoleAssistant, Content: "Hi there"}, msgs[1])
	assert.Equal(t, Message{Role: RoleUser, Content: "How are you?"}, msgs[2])
}

func TestConversation_Clear(t *testing.T) {
	conv := newConversationWith(5)

	removed := conv.Clear()

	assert.Equal(t, 5, removed)
	assert.Zero(t, conv.Len())
	assert.Equal(t, 0, conv.Clear(), "clearing an empty history removes nothing")
}

func TestConversation_Undo(t *testing.T) {
	tests := []struct {
		length      int
		wantRemoved int
		wantLen     int
	}{
		{length: 0, wantRemoved: 0, wantLen: 0},
		{length: 1, wantRemoved: 1, wantLen: 0},
		{length: 2, wantRemoved: 2, wantLen: 0},
		{length: 3, wantRemoved: 2, wantLen: 1},
		{length: 6, wantRemoved: 2, wantLen: 4},
	}

	for _, tt := range tests {
		conv := newConversationWith(tt.length)
		removed := conv.Undo()
		assert.Equal(t, tt.wantRemoved, removed, "length %d", tt.length)
		assert.Equal(t, tt.wantLen, conv.Len(), "length %d", tt.length)
	}
}

func TestConversation_UndoRemovesTrailingEntries(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("first"))
	conv.Append(NewAssistantMessage("first reply"))
	conv.Append(NewUserMessage("second"))

	conv.Undo()

	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "first", msgs[0].Content)
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	conv := newConversationWith(2)

	msgs := conv.Messages()
	msgs[0].Content = "tampered"

	assert.Equal(t, "question", conv.Messages()[0].Content)
}

// =============================================================================
// MODEL REGISTRY TESTS
// =============================================================================

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"alias", "llama3-8b", DefaultModel},
		{"alias case insensitive", "Mistral-7B", "mistralai/mistral-7b-instruct:free"},
		{"full id", "openai/gpt-4o-mini", "openai/gpt-4o-mini"},
		{"unknown passes through", "qwen/qwen-2-7b-instruct", "qwen/qwen-2-7b-instruct"},
		{"trims whitespace", "  haiku ", "anthropic/claude-3-haiku"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveModel(tt.in))
		})
	}
}

func TestGetModelInfo(t *testing.T) {
	info, ok := GetModelInfo(DefaultModel)
	require.True(t, ok)
	assert.Equal(t, "llama3-8b", info.Alias)
	assert.Equal(t, "llama3-8b (free)", info.DisplayName())

	_, ok = GetModelInfo("does-not-exist")
	assert.False(t, ok)
}

func TestModelAliases_Sorted(t *testing.T) {
	aliases := ModelAliases()
	require.NotEmpty(t, aliases)
	assert.IsIncreasing(t, aliases)
}
