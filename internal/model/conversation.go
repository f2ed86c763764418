// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// UndoDepth is the number of trailing messages removed by Undo: one user
// turn and the reply to it.
const UndoDepth = 2

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered message history of a chat session.
// Insertion order is turn order. Alternation between user and assistant is
// expected but not enforced: a failed request leaves a trailing user turn.
//
// A Conversation is owned by a single session loop and is not safe for
// concurrent use.
type Conversation struct {
	messages []Message
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{
		messages: make([]Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the history.
func (c *Conversation) Append(msg Message) {
	c.messages = append(c.messages, msg)
}

// Clear removes every message and returns how many were removed.
func (c *Conversation) Clear() int {
	n := len(c.messages)
	c.messages = c.messages[:0]
	return n
}

// Undo removes up to UndoDepth trailing messages and returns how many were
// removed. A history of length L becomes max(0, L-2).
func (c *Conversation) Undo() int {
	n := UndoDepth
	if len(c.messages) < n {
		n = len(c.messages)
	}
	c.messages = c.messages[:len(c.messages)-n]
	return n
}

// Len returns the number of messages in the history.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Messages returns a copy of the history in turn order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

