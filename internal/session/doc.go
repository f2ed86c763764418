// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session drives one interactive chat session.
//
// Each input line is decoded into an Intent. Control intents (exit, clear,
// undo) act on the local history only; any other text is sent to the model
// together with the full history and the reply is appended.
//
// # Key Types
//
//   - Intent: Decoded meaning of one input line
//   - Controller: Owns the conversation history and performs one turn per call
//   - Transport: The request/response exchange, satisfied by *cloud.Client
//   - LineReader, Presenter: Input and output seams used by Run
//
// # Concurrency
//
// A session is driven by a single goroutine. At most one request is in
// flight and the history is only touched by that goroutine, so no locking
// is needed.
package session
