// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

// Compile-time check that a profile can back the terminal commands.
var _ interface {
	WhoAmI() string
	Overview() string
	SkillNames() []string
	ContactEmail() string
	KernelBanner() string
} = (*Profile)(nil)
