// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleColor(t *testing.T) {
	assert.Equal(t, Cyan, RoleColor("user"))
	assert.Equal(t, Emerald, RoleColor("assistant"))
	assert.Equal(t, Amber, RoleColor("system"))
	assert.Equal(t, TextSecondary, RoleColor("tool"))
}
