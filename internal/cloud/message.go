// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`    // "user", "assistant", or "system"
	Content string `json:"content"` // The message content
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Role: "user", Content: content}
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: "assistant", Content: content}
}

// ChatRequest represents a request to the chat completions endpoint.
// Generation parameters are pointers so unset values are omitted from the
// body and the service default applies.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
	N           *int          `json:"n,omitempty"`
}

// NewChatRequest creates a request for the given model.
// The message slice is copied so later changes by the caller do not leak
// into a request that is already built.
func NewChatRequest(model string, messages []ChatMessage) *ChatRequest {
	msgs := make([]ChatMessage, len(messages))
	copy(msgs, messages)
	return &ChatRequest{
		Model:    model,
		Messages: msgs,
	}
}

// WithTemperature sets the sampling temperature.
func (r *ChatRequest) WithTemperature(temperature float64) *ChatRequest {
	r.Temperature = &temperature
	return r
}

// WithMaxTokens sets the completion token limit.
func (r *ChatRequest) WithMaxTokens(maxTokens int) *ChatRequest {
	r.MaxTokens = &maxTokens
	return r
}

// WithTopP sets the nucleus sampling threshold.
func (r *ChatRequest) WithTopP(topP float64) *ChatRequest {
	r.TopP = &topP
	return r
}

// WithN sets the number of choices to generate.
func (r *ChatRequest) WithN(n int) *ChatRequest {
	r.N = &n
	return r
}

// Choice is one candidate reply.
type Choice struct {
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

// Usage reports token accounting when the service provides it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse represents a response from the chat completions endpoint.
type ChatResponse struct {
	ID      string   `json:"id,omitempty"`
	Model   string   `json:"model,omitempty"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

// FirstChoice returns the first choice and false if there are none.
func (r *ChatResponse) FirstChoice() (Choice, bool) {
	if r == nil || len(r.Choices) == 0 {
		return Choice{}, false
	}
	return r.Choices[0], true
}

// =============================================================================
// CODEC
// =============================================================================

// EncodeRequest serializes a request to its JSON body.
func EncodeRequest(req *ChatRequest) ([]byte, error) {
	if req == nil {
		return nil, fmt.Errorf("failed to marshal request: nil request")
	}
	if req.Messages == nil {
		// An empty history still encodes as an array.
		req = &ChatRequest{
			Model:       req.Model,
			Messages:    []ChatMessage{},
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
			TopP:        req.TopP,
			N:           req.N,
		}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return body, nil
}

// rawResponse mirrors ChatResponse with pointer fields so that missing and
// null values can be told apart from empty ones.
type rawResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices *[]rawChoice `json:"choices"`
	Usage   *Usage       `json:"usage"`
}

type rawChoice struct {
	Message      *rawMessage `json:"message"`
	FinishReason *string     `json:"finish_reason"`
}

type rawMessage struct {
	Role    *string `json:"role"`
	Content *string `json:"content"`
}

// DecodeResponse parses a response body.
//
// The body must contain a "choices" array whose every element carries a
// "message" object with string "role" and "content" fields. Anything else
// returns a *MalformedResponseError. An empty choices array is valid.
func DecodeResponse(body []byte) (*ChatResponse, error) {
	var raw rawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}
	if raw.Choices == nil {
		return nil, &MalformedResponseError{Reason: `missing "choices" array`}
	}

	resp := &ChatResponse{
		ID:      raw.ID,
		Model:   raw.Model,
		Choices: make([]Choice, 0, len(*raw.Choices)),
		Usage:   raw.Usage,
	}
	for i, c := range *raw.Choices {
		if c.Message == nil {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf(`choice %d: missing "message"`, i)}
		}
		if c.Message.Role == nil {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf(`choice %d: missing "role"`, i)}
		}
		if c.Message.Content == nil {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf(`choice %d: missing "content"`, i)}
		}
		choice := Choice{
			Message: ChatMessage{Role: *c.Message.Role, Content: *c.Message.Content},
		}
		if c.FinishReason != nil {
			choice.FinishReason = *c.FinishReason
		}
		resp.Choices = append(resp.Choices, choice)
	}
	return resp, nil
}
