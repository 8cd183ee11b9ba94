// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/components"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
)

func newSkillsCmd(e *env) *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List skills with their levels",
		Args:  cobra.NoArgs,
		RunE: jsonRunE("skills", &asJSON, func(cmd *cobra.Command, args []string) error {
			p, err := e.profile()
			if err != nil {
				return err
			}

			category, err = resolveCategory(p, category)
			if err != nil {
				return err
			}
			skills := p.Filter(category)

			out := cmd.OutOrStdout()
			if asJSON {
				return NewJSONResponse("skills", SkillsData{Category: category, Skills: skills}).Print(out)
			}

			printTitle(out, "Skills: "+category)
			list := components.SkillList{Skills: skills}
			if colorize(out) {
				list.Theme = styles.NewThemeFor(e.cfg.UI.Theme)
			}
			fmt.Fprintln(out, list.Render())
			return nil
		}),
	}

	cmd.Flags().StringVarP(&category, "category", "c", profile.AllCategories, "only show skills in this category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print skills as JSON")
	return cmd
}

func newCategoriesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List skill categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.profile()
			if err != nil {
				return err
			}
			for _, c := range p.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

// resolveCategory matches name case-insensitively against the profile's
// categories. Empty selects every skill.
func resolveCategory(p *profile.Profile, name string) (string, error) {
	if name == "" {
		return profile.AllCategories, nil
	}
	categories := p.Categories()
	idx := slices.IndexFunc(categories, func(c string) bool {
		return strings.EqualFold(c, name)
	})
	if idx < 0 {
		return "", fmt.Errorf("unknown category %q (available: %s)", name, strings.Join(categories, ", "))
	}
	return categories[idx], nil
}
