// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sort"
	"strings"
)

// DefaultModel is the OpenRouter model used when none is configured.
const DefaultModel = "meta-llama/llama-3-8b-instruct:free"

// =============================================================================
// MODEL INFORMATION
// =============================================================================

// ModelInfo describes a well-known OpenRouter model.
type ModelInfo struct {
	ID       string // Full OpenRouter identifier (provider/name[:variant])
	Alias    string // Short name accepted on the command line
	Provider string // "meta-llama", "mistralai", "google", ...
	Free     bool   // Served on the free tier
}

// DisplayName returns the alias with a free-tier marker when applicable.
func (m ModelInfo) DisplayName() string {
	if m.Free {
		return m.Alias + " (free)"
	}
	return m.Alias
}

// knownModels maps short aliases to OpenRouter identifiers.
var knownModels = []ModelInfo{
	{ID: DefaultModel, Alias: "llama3-8b", Provider: "meta-llama", Free: true},
	{ID: "meta-llama/llama-3-70b-instruct", Alias: "llama3-70b", Provider: "meta-llama"},
	{ID: "mistralai/mistral-7b-instruct:free", Alias: "mistral-7b", Provider: "mistralai", Free: true},
	{ID: "google/gemma-2-9b-it:free", Alias: "gemma2-9b", Provider: "google", Free: true},
	{ID: "anthropic/claude-3-haiku", Alias: "haiku", Provider: "anthropic"},
	{ID: "openai/gpt-4o-mini", Alias: "gpt-4o-mini", Provider: "openai"},
}

// =============================================================================
// LOOKUP
// =============================================================================

// ResolveModel maps a short alias to its full OpenRouter identifier.
// Names that are not a known alias are returned unchanged so any model
// the service supports can be requested directly.
func ResolveModel(name string) string {
	name = strings.TrimSpace(name)
	if info, ok := GetModelInfo(name); ok {
		return info.ID
	}
	return name
}

// GetModelInfo looks up a model by alias or full identifier.
func GetModelInfo(name string) (ModelInfo, bool) {
	for _, m := range knownModels {
		if strings.EqualFold(m.Alias, name) || m.ID == name {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// ModelAliases returns the sorted list of known short names.
func ModelAliases() []string {
	aliases := make([]string, 0, len(knownModels))
	for _, m := range knownModels {
		aliases = append(aliases, m.Alias)
	}
	sort.Strings(aliases)
	return aliases
}
