// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for llmchat output.
//
// Colors are disabled for non-TTY output and when NO_COLOR is set.
// FORCE_COLOR overrides detection.

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/llmchat/internal/ui/styles"
)

// init configures lipgloss color profile based on terminal capabilities.
// USABILITY: TTY detection for proper terminal handling
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// WelcomeStyle renders the banner title.
	WelcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// ReplyMarkerStyle renders the ">" before each reply.
	ReplyMarkerStyle = lipgloss.NewStyle().
				Foreground(styles.RoleColor("assistant")).
				Bold(true)

	// ErrorStyle is used for failed turns and fatal errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// CommandStyle highlights session command words.
	CommandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// InfoStyle is used for notices.
	InfoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// LabelStyle is used for banner labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	// DimStyle is used for secondary information and hints.
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)
