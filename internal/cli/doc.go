// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the command-line interface for llmchat.
//
// # Commands
//
//	llmchat                 Does nothing and exits 0
//	llmchat chat [flags]    Start an interactive chat session
//	llmchat --version       Print version information
//
// # Chat Flags
//
//	-m, --model NAME         Model identifier or short alias
//	-t, --temperature FLOAT  Sampling temperature (default 0.7)
//	-x, --max-tokens INT     Completion token limit (default 800)
//	-p, --top-p FLOAT        Nucleus sampling threshold (default 0.8)
//	-n, --n INT              Number of choices to request (default 1)
//	    --config PATH        Config file (default ~/.llmchat/config.toml)
//	-v, --verbose            Debug logging on stderr
//
// # Session Commands
//
// Typed on their own line during a chat:
//
//	exit    End the session
//	clear   Forget the conversation
//	undo    Remove the last message and its reply
//
// Ctrl+C and Ctrl+D also end the session.
//
// # Exit Codes
//
//	0  success
//	1  general error
//	2  invalid flag values
//	3  configuration error (missing LLM_API_KEY, bad config file)
package cli
