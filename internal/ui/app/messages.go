// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

// roleTickMsg advances the typed role in the hero.
type roleTickMsg struct{}

// contactResultMsg carries the outcome of a contact submission.
type contactResultMsg struct {
	err error
}

// dismissStatusMsg clears the contact status if it is still the one with seq.
type dismissStatusMsg struct {
	seq int
}
