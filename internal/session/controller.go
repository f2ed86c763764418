// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transport.go -package=mocks github.com/jeranaias/llmchat/internal/session Transport

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jeranaias/llmchat/internal/cloud"
	"github.com/jeranaias/llmchat/internal/config"
	"github.com/jeranaias/llmchat/internal/model"
)

// Transport performs one chat request. *cloud.Client implements it.
type Transport interface {
	SendChatRequest(ctx context.Context, req *cloud.ChatRequest) (*cloud.ChatResponse, error)
}

// Outcome reports what handling one intent did.
type Outcome struct {
	// Intent is the intent that was handled.
	Intent Intent

	// Exit is set when the session should end.
	Exit bool

	// Reply is the assistant message appended by a successful turn.
	Reply *model.Message

	// Err is the request failure of a send turn. The user turn stays in
	// the history.
	Err error

	// Removed is the number of history entries dropped by clear or undo.
	Removed int
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the conversation history of one session and turns
// intents into history changes and requests.
type Controller struct {
	transport  Transport
	generation config.GenerationConfig
	history    *model.Conversation
	stats      *Stats
	logger     *slog.Logger
}

// NewController creates a controller with an empty history.
func NewController(transport Transport, generation config.GenerationConfig) *Controller {
	return &Controller{
		transport:  transport,
		generation: generation,
		history:    model.NewConversation(),
		stats:      NewStats(),
		logger:     slog.Default(),
	}
}

// WithLogger sets the logger.
func (c *Controller) WithLogger(logger *slog.Logger) *Controller {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// History returns a copy of the conversation so far.
func (c *Controller) History() []model.Message {
	return c.history.Messages()
}

// Generation returns the settings sent with every request.
func (c *Controller) Generation() config.GenerationConfig {
	return c.generation
}

// Stats returns the session counters.
func (c *Controller) Stats() *Stats {
	return c.stats
}

// HandleLine decodes one input line and handles it.
func (c *Controller) HandleLine(ctx context.Context, line string) Outcome {
	return c.Handle(ctx, ParseIntent(line))
}

// Handle performs one intent. Only IntentSend calls the transport.
// Send text is trimmed, and a send with nothing left is handled as empty.
func (c *Controller) Handle(ctx context.Context, intent Intent) Outcome {
	if intent.Kind == IntentSend {
		intent.Text = strings.TrimSpace(intent.Text)
		if intent.Text == "" {
			intent = Intent{Kind: IntentEmpty}
		}
	}
	out := Outcome{Intent: intent}

	switch intent.Kind {
	case IntentExit:
		out.Exit = true
	case IntentClear:
		out.Removed = c.history.Clear()
		c.logger.Debug("history cleared", "removed", out.Removed)
	case IntentUndo:
		out.Removed = c.history.Undo()
		c.logger.Debug("history undone", "removed", out.Removed, "remaining", c.history.Len())
	case IntentSend:
		out.Reply, out.Err = c.send(ctx, intent.Text)
	}
	return out
}

// send appends the user turn, sends the whole history and appends the
// first choice on success.
func (c *Controller) send(ctx context.Context, text string) (*model.Message, error) {
	c.history.Append(model.NewUserMessage(text))
	c.stats.RecordTurn()

	resp, err := c.transport.SendChatRequest(ctx, c.buildRequest())
	if err != nil {
		c.stats.RecordFailure()
		c.logger.Debug("turn failed", "error", err, "history", c.history.Len())
		return nil, err
	}

	choice, ok := resp.FirstChoice()
	if !ok {
		c.logger.Debug("response had no choices")
		return nil, nil
	}

	reply := model.NewMessage(model.Role(choice.Message.Role), choice.Message.Content)
	if !reply.Role.IsKnown() {
		c.logger.Debug("reply has unexpected role", "role", reply.Role)
	}
	c.history.Append(reply)
	if resp.Usage != nil {
		c.stats.RecordTokens(resp.Usage.TotalTokens)
	}
	return &reply, nil
}

// buildRequest snapshots the history into a request.
func (c *Controller) buildRequest() *cloud.ChatRequest {
	msgs := c.history.Messages()
	wire := make([]cloud.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		wire = append(wire, cloud.ChatMessage{Role: m.Role.String(), Content: m.Content})
	}

	g := c.generation
	return cloud.NewChatRequest(g.Model, wire).
		WithTemperature(g.Temperature).
		WithMaxTokens(g.MaxTokens).
		WithTopP(g.TopP).
		WithN(g.N)
}
