// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for llmchat.
//
// # Key Types
//
//   - Config: API key plus the generation settings of one session
//   - GenerationConfig: Model and sampling parameters sent with every request
//   - Overrides: Values supplied on the command line
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags
//   - Environment variables (LLM_API_KEY, LLMCHAT_MODEL)
//   - A .env file in the working directory
//   - ~/.llmchat/config.toml
//   - Built-in defaults
//
// Variables already present in the environment win over the .env file.
//
// # Usage
//
//	cfg, err := config.Load(config.LoadOptions{})
//	if err != nil {
//	    return err
//	}
//	model := cfg.Generation.Model
package config
