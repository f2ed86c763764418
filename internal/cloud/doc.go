// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud provides the OpenRouter chat completions client.
//
// OpenRouter provides access to multiple LLM providers through a single API.
// This package implements the wire codec for chat requests and responses and
// a client that performs one blocking request per call.
//
// # Key Types
//
//   - Client: HTTP client for the chat completions endpoint
//   - ChatMessage: Chat message in the OpenRouter wire format
//   - ChatRequest: Request envelope with optional generation parameters
//   - ChatResponse: Decoded reply; only the first choice is used by callers
//
// # Usage
//
//	client := cloud.NewClient(apiKey)
//	req := cloud.NewChatRequest(model, messages).WithTemperature(0.7)
//	resp, err := client.SendChatRequest(ctx, req)
//
// # Errors
//
// Failures are reported as *RequestFailedError (non-2xx status),
// *MalformedResponseError (body does not decode) or *TransportError
// (network or body read failure). None of them are retried.
//
// # Security
//
// API keys and request bodies are never logged. All requests use TLS 1.2+.
package cloud
