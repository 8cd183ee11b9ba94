// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/components"
)

// Output formats for show commands.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

func newProfileCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect and validate portfolio content",
	}
	cmd.AddCommand(newProfileShowCmd(e), newProfileValidateCmd())
	return cmd
}

func newProfileShowCmd(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective profile",
		Long: `Prints the built-in profile merged with the configured profile file.
The TOML output is a valid profile file and a good starting point for your own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.profile()
			if err != nil {
				return err
			}
			data, err := encode(p, format)
			if err != nil {
				return err
			}
			writeSource(cmd.OutOrStdout(), data, format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatTOML, "output format: toml or json")
	return cmd
}

func newProfileValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s is valid (%d skills, %d categories)\n",
				paint(out, SuccessStyle, "[OK]"), args[0], len(p.Skills), len(p.Categories())-1)
			return nil
		},
	}
}

// encode renders v as TOML or JSON.
func encode(v interface{}, format string) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (use toml or json)", format)
	}
}

// writeSource writes TOML or JSON source, highlighted on a color terminal.
func writeSource(out io.Writer, data []byte, format string) {
	if colorize(out) {
		fmt.Fprint(out, components.Highlight(string(data), format))
		return
	}
	_, _ = out.Write(data)
}
