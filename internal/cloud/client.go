// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Configuration constants for the OpenRouter API.
const (
	// DefaultEndpoint is the chat completions URL.
	DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

	// DefaultSiteURL and DefaultSiteName identify this client to OpenRouter.
	DefaultSiteURL  = "https://github.com/jeranaias/llmchat"
	DefaultSiteName = "llmchat"

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion attacks.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// UserAgent is sent with every request. The cli package sets the version.
var UserAgent = "llmchat/dev"

// newHTTPClient returns the default client. There is no timeout: a turn
// waits as long as the model takes, and the caller's context decides.
// SECURITY: TLS verification required, TLS 1.2 minimum.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a client for the OpenRouter chat completions endpoint.
// A Client holds no per-conversation state.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	siteURL    string
	siteName   string
}

// NewClient creates a client with the given API key.
//
// If the API key is empty the client is still created but every request
// fails with ErrNotConfigured.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		endpoint:   DefaultEndpoint,
		httpClient: newHTTPClient(),
		logger:     slog.Default(),
		siteURL:    DefaultSiteURL,
		siteName:   DefaultSiteName,
	}
}

// WithEndpoint overrides the chat completions URL. Used by tests.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// WithLogger sets the logger used for request and failure logging.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// IsConfigured returns true if the client has an API key configured.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// setHeaders sets the required headers for OpenRouter API requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if c.siteURL != "" {
		req.Header.Set("HTTP-Referer", c.siteURL)
	}
	if c.siteName != "" {
		req.Header.Set("X-Title", c.siteName)
	}
}

// =============================================================================
// CHAT
// =============================================================================

// SendChatRequest posts one chat request and waits for the full reply.
//
// A non-2xx status logs the body at error level and returns a
// *RequestFailedError. A 2xx body that does not decode returns a
// *MalformedResponseError. Network failures return a *TransportError.
// Nothing is retried.
func (c *Client) SendChatRequest(ctx context.Context, chatReq *ChatRequest) (*ChatResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	body, err := EncodeRequest(chatReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	// Headers may contain auth and bodies may contain user data: log neither.
	c.logger.Debug("api request", "method", req.Method, "path", req.URL.Path,
		"model", chatReq.Model, "messages", len(chatReq.Messages))

	start := time.Now()
	resp, err := c.httpClient.Do(req)

	// SECURITY: Clear Authorization header immediately after request
	req.Header.Del("Authorization")

	if err != nil {
		return nil, &TransportError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	respBody, truncated, err := readResponse(resp)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	c.logger.Debug("api response", "status", resp.StatusCode, "duration", time.Since(start))

	// A failed status wins over an oversized body; the capped body is kept.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("chat request failed", "status", resp.StatusCode,
			"body", string(respBody), "truncated", truncated)
		return nil, newRequestFailedError(resp.StatusCode, respBody)
	}

	if truncated {
		return nil, &TransportError{
			Op:  "read response",
			Err: fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize),
		}
	}

	return DecodeResponse(respBody)
}

// readResponse reads at most MaxResponseSize bytes of the body to prevent
// memory exhaustion. truncated reports whether the body was longer.
func readResponse(resp *http.Response) (body []byte, truncated bool, err error) {
	// Read one byte past the limit to tell a full body from a truncated one.
	body, err = io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(body)) > MaxResponseSize {
		return body[:MaxResponseSize], true, nil
	}
	return body, false, nil
}
