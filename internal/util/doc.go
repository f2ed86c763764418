// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string helpers shared by the llmchat packages.
//
// All helpers are rune and display-width aware so that multi-byte input
// (CJK, emoji) is never split mid-character when shortened for the terminal.
//
// # Usage
//
//	// Shorten a server error body for a one-line notice
//	notice := util.TruncateWidth(util.SingleLine(body), 120)
package util
