// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/config"
)

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and edit configuration",
	}
	cmd.AddCommand(
		newConfigShowCmd(e),
		configOptional(newConfigPathCmd(e)),
		configOptional(newConfigInitCmd(e)),
		newConfigGetCmd(e),
		configOptional(newConfigSetCmd(e)),
		configOptional(newConfigKeysCmd()),
	)
	return cmd
}

// configOptional lets cmd run with a --config file that does not exist yet.
func configOptional(cmd *cobra.Command) *cobra.Command {
	cmd.Annotations = map[string]string{annotationConfigOptional: "true"}
	return cmd
}

func newConfigShowCmd(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (secrets redacted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			safe := e.cfg.Redacted()

			var data []byte
			var err error
			if format == FormatTOML {
				data, err = safe.TOML()
			} else {
				data, err = encode(safe, format)
			}
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

func newConfigPathCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := e.configFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCmd(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := e.configFile()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveTOML(config.Default(), path); err != nil {
				return err
			}
			e.logger.Info("config written", zap.String("path", path))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s wrote %s\n", paint(out, SuccessStyle, "[OK]"), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Example: `  portfolio config get server.addr
  portfolio config get terminal.prompt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := e.cfg.Redacted().Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value in the config file",
		Long: `Updates one key in the config file. Environment overrides are not written
back, so the file only ever holds what was set explicitly.`,
		Example: `  portfolio config set server.addr 0.0.0.0:8080
  portfolio config set terminal.greeting false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := e.configFile()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if _, statErr := os.Stat(path); statErr == nil {
				if err := config.LoadTOML(cfg, path); err != nil {
					return err
				}
			} else if !errors.Is(statErr, os.ErrNotExist) {
				return statErr
			}

			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid value for %s: %w", args[0], err)
			}
			if err := config.SaveTOML(cfg, path); err != nil {
				return err
			}

			e.logger.Info("config updated", zap.String("key", args[0]), zap.String("path", path))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s updated\n", paint(out, SuccessStyle, "[OK]"), args[0])
			return nil
		},
	}
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every configuration key",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range config.GetAllKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}
