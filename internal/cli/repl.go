// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-mode terminal with history and tab completion.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
	"github.com/ayoobkibrahim/portfolio-tui/internal/util"
)

// clearScreen homes the cursor and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// prompter reads one line of input. *liner.State satisfies it.
type prompter interface {
	Prompt(prompt string) (string, error)
}

func newReplCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Explore the portfolio one command per line",
		Long: `Starts a line-mode terminal. Tab completes command names, the arrow keys
walk the input history, and exit, quit or Ctrl+D leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runREPL(cmd.OutOrStdout())
		},
	}
}

func (e *env) runREPL(out io.Writer) error {
	p, err := e.profile()
	if err != nil {
		return err
	}
	interp := e.newInterpreter(p, e.cfg.Terminal.Greeting)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return interp.Table().Candidates(partial)
	})

	histPath, err := e.cfg.HistoryPath()
	if err != nil {
		e.logger.Warn("history disabled", zap.Error(err))
	} else {
		loadHistory(line, histPath)
		defer func() {
			if err := saveHistory(line, histPath, e.cfg.Terminal.HistoryLimit); err != nil {
				e.logger.Warn("failed to save history", zap.String("path", histPath), zap.Error(err))
			}
		}()
	}

	r := &repl{
		interp:  interp,
		prompt:  e.cfg.Terminal.Prompt,
		out:     out,
		clear:   colorize(out),
		onInput: line.AppendHistory,
	}
	return r.run(line)
}

// =============================================================================
// LOOP
// =============================================================================

// repl feeds prompted lines to an interpreter and prints what each adds.
type repl struct {
	interp *interpreter.Interpreter
	prompt string
	out    io.Writer

	// clear erases the screen when the transcript is cleared
	clear bool

	// onInput receives every non-empty line before it is submitted
	onInput func(string)
}

// run loops until exit, EOF or Ctrl+C.
func (r *repl) run(in prompter) error {
	printLines(r.out, r.prompt, r.interp.Transcript())

	for {
		input, err := in.Prompt(r.prompt + " ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		normalized := interpreter.Normalize(input)
		if normalized == "" {
			continue
		}
		if r.onInput != nil {
			r.onInput(strings.TrimSpace(input))
		}
		if normalized == "exit" || normalized == "quit" {
			return nil
		}

		transcript := r.interp.Submit(input)
		if len(transcript) == 0 {
			if r.clear {
				fmt.Fprint(r.out, clearScreen)
			}
			continue
		}
		printLines(r.out, r.prompt, newOutput(transcript))
	}
}

// newOutput returns the output lines that follow the last command line.
func newOutput(transcript []interpreter.Line) []interpreter.Line {
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].IsCommand() {
			return transcript[i+1:]
		}
	}
	return transcript
}

// =============================================================================
// HISTORY
// =============================================================================

func loadHistory(line *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = line.ReadHistory(f)
}

// saveHistory writes at most limit of the newest entries with 0600
// permissions.
func saveHistory(line *liner.State, path string, limit int) error {
	var buf bytes.Buffer
	if _, err := line.WriteHistory(&buf); err != nil {
		return err
	}
	return util.AtomicWriteFile(path, trimHistory(buf.Bytes(), limit), 0600)
}

// trimHistory keeps the last limit lines of a newline-terminated history.
// A limit of zero keeps everything.
func trimHistory(data []byte, limit int) []byte {
	if limit <= 0 {
		return data
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) <= limit {
		return data
	}
	return []byte(strings.Join(lines[len(lines)-limit:], ""))
}
