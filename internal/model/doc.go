// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// # Key Types
//
//   - Role: Message role enumeration (user, assistant, system)
//   - Message: Single chat message with role and content
//   - Conversation: Ordered message history for one chat session
//   - ModelInfo: Known OpenRouter model identifiers and their short aliases
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.Append(model.NewUserMessage("Hello!"))
//	conv.Append(model.NewAssistantMessage("Hi there"))
//	conv.Undo() // removes both
package model
