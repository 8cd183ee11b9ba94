// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/components"
)

func newAboutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the biography, services and links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.profile()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			style := components.MarkdownNoTTY
			if colorize(out) {
				style = e.cfg.UI.Theme
			}
			printAbout(out, p, components.RenderMarkdown(p.BioMarkdown(), readableWidth(), style))
			return nil
		},
	}
}

// printAbout writes the identity header, the rendered bio, services and
// social links.
func printAbout(out io.Writer, p *profile.Profile, bio string) {
	printTitle(out, fmt.Sprintf("%s - %s", p.Name, p.Title))
	if p.Subtitle != "" {
		fmt.Fprintln(out, paint(out, DimStyle, p.Subtitle))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, bio)

	if len(p.Tags) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, paint(out, DimStyle, strings.Join(p.Tags, " | ")))
	}

	if len(p.Services) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, paint(out, SectionStyle, "What I Do"))
		for _, s := range p.Services {
			fmt.Fprintf(out, "  %s\n    %s\n", paint(out, ValueStyle, s.Title), paint(out, DimStyle, s.Description))
		}
	}

	if len(p.Socials) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, paint(out, SectionStyle, "Links"))
		for _, s := range p.Socials {
			printField(out, s.Label, s.URL)
		}
	}
}
