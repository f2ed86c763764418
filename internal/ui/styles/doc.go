// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the color palette shared by the llmchat terminal output.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System

  - Purple - banner titles
  - Cyan - banner labels, user role
  - Emerald - assistant reply marker, session command words
  - Amber - system role
  - Rose - request failures

RoleColor maps a chat role to its accent color.

Text colors (TextSecondary, TextMuted) are used for banners and hints.
*/
package styles
