// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/config"
	"github.com/ayoobkibrahim/portfolio-tui/internal/contact"
	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
	"github.com/ayoobkibrahim/portfolio-tui/internal/logging"
	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/app"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// annotationConfigOptional marks commands that run before a config file exists.
const annotationConfigOptional = "portfolio/config-optional"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	profilePath string
	logLevel    string
	verbose     bool
}

// env is the state resolved once per invocation, before any command runs.
type env struct {
	flags  globalFlags
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the portfolio command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}
	var noAltScreen bool

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "An interactive terminal portfolio",
		Long: `portfolio is a developer portfolio you explore from a terminal.

Run without arguments to open the full-screen interface: a hero terminal
that understands help, whoami, about, skills, contact and clear, an About
section with filterable skills, and a contact form.

The same command interpreter is available line by line (repl), one command
at a time (exec) and over HTTP (serve).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runTUI(e.cfg.UI.AltScreen && !noAltScreen)
		},
	}

	root.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	pf := root.PersistentFlags()
	pf.StringVar(&e.flags.configPath, "config", "", "config file (default ~/.portfolio/config.toml)")
	pf.StringVar(&e.flags.profilePath, "profile", "", "profile TOML overlaid on the built-in profile")
	pf.StringVar(&e.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVarP(&e.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newReplCmd(e),
		newExecCmd(e),
		newSkillsCmd(e),
		newCategoriesCmd(e),
		newAboutCmd(e),
		newContactCmd(e),
		newProfileCmd(e),
		newConfigCmd(e),
		newServeCmd(e),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return reportError(os.Stderr, err)
	}
	return 0
}

// reportError prints err unless a --json command already reported it, and
// returns the exit code.
func reportError(w io.Writer, err error) int {
	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(w, paint(w, ErrorStyle, "Error:"), err)
	}
	return 1
}

// =============================================================================
// SETUP
// =============================================================================

// setup loads configuration, applies flag overrides and builds the logger.
// The TUI owns the screen, so it gets a no-op logger.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := e.loadConfig(cmd)
	if err != nil {
		return err
	}
	if e.flags.profilePath != "" {
		cfg.Profile.Path = e.flags.profilePath
	}
	if e.flags.logLevel != "" {
		cfg.Log.Level = e.flags.logLevel
	}
	if e.flags.verbose {
		cfg.Log.Level = "debug"
	}
	e.cfg = cfg

	if cmd == cmd.Root() {
		e.logger = logging.NewNop()
		return nil
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	e.logger = logger
	return nil
}

// loadConfig reads --config when given, else the default file. Commands
// annotated with annotationConfigOptional accept a --config file that does
// not exist yet.
func (e *env) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := e.flags.configPath
	if path == "" {
		return config.Load()
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && cmd.Annotations[annotationConfigOptional] == "true" {
		cfg := config.Default()
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return config.LoadFromPath(path)
}

// configFile is the file config commands read and write.
func (e *env) configFile() (string, error) {
	if e.flags.configPath != "" {
		return e.flags.configPath, nil
	}
	return config.ConfigPath()
}

// profile loads the configured profile over the built-in one.
func (e *env) profile() (*profile.Profile, error) {
	p, err := profile.Load(e.cfg.Profile.Path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("profile loaded",
		zap.String("path", e.cfg.Profile.Path),
		zap.String("handle", p.Handle),
	)
	return p, nil
}

// newInterpreter builds an interpreter over p, optionally seeded with the
// greeting banner.
func (e *env) newInterpreter(p *profile.Profile, greeting bool) *interpreter.Interpreter {
	opts := []interpreter.Option{interpreter.WithMaxLines(e.cfg.Terminal.MaxTranscriptLines)}
	if greeting {
		opts = append(opts, interpreter.WithGreeting(interpreter.GreetingLines(p.Handle)...))
	}
	return interpreter.New(interpreter.DefaultTable(p), opts...)
}

func (e *env) contactClient() *contact.Client {
	return contact.NewClient(&contact.ClientConfig{
		Endpoint:  e.cfg.Contact.Endpoint,
		AccessKey: e.cfg.Contact.AccessKey,
		Timeout:   e.cfg.ContactTimeout(),
		Rate:      e.cfg.Contact.RatePerMinute,
		Burst:     e.cfg.Contact.Burst,
	})
}

// =============================================================================
// TUI
// =============================================================================

func (e *env) runTUI(altScreen bool) error {
	if err := RequiresTTY("start the interactive portfolio"); err != nil {
		return err
	}
	p, err := e.profile()
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Profile:        p,
		Interpreter:    e.newInterpreter(p, e.cfg.Terminal.Greeting),
		Contact:        e.contactClient(),
		ContactTimeout: e.cfg.ContactTimeout(),
		Theme:          styles.NewThemeFor(e.cfg.UI.Theme),
		Prompt:         e.cfg.Terminal.Prompt,
		RoleInterval:   e.cfg.RoleInterval(),
		MarkdownStyle:  e.cfg.UI.Theme,
	}, altScreen)
}
