// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides rendering helpers shared by the TUI and the CLI.

# Components

Highlight (codeblock.go) - Syntax highlighting for TOML and JSON using Chroma.
RenderMarkdown (markdown.go) - Glamour rendering of the biography.
SkillList (skillbar.go) - Skill rows with level bars.

# Usage

	fmt.Println(components.HighlightTOML(source))

	bio := components.RenderMarkdown(p.BioMarkdown(), 72, "auto")

	list := components.SkillList{Skills: p.Filter("CI/CD"), Theme: theme}
	fmt.Println(list.Render())
*/
package components
