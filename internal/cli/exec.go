// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
)

func newExecCmd(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "exec [--json] <command...>",
		Short: "Run one terminal command and print its output",
		Long: `Runs a single command through the interpreter, exactly as if it had been
typed into the terminal, and prints the lines it produces. Flags must come
before the command; everything after it is command text.

Examples:
  portfolio exec help
  portfolio exec whoami
  portfolio exec uname -a
  portfolio exec --json skills`,
		Args: cobra.MinimumNArgs(1),
		RunE: jsonRunE("exec", &asJSON, func(cmd *cobra.Command, args []string) error {
			p, err := e.profile()
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			interp := e.newInterpreter(p, false)
			normalized := interpreter.Normalize(input)
			_, known := interp.Table().Lookup(normalized)
			lines := newOutput(interp.Submit(input))

			e.logger.Debug("exec",
				zap.String("command", normalized),
				zap.Bool("known", known),
				zap.Int("lines", len(lines)),
			)

			out := cmd.OutOrStdout()
			if asJSON {
				return NewJSONResponse("exec", ExecData{
					Input: normalized,
					Known: known,
					Lines: lines,
				}).Print(out)
			}
			printLines(out, e.cfg.Terminal.Prompt, lines)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the output lines as JSON")
	// Everything after the first word belongs to the command ("uname -a").
	cmd.Flags().SetInterspersed(false)
	return cmd
}
