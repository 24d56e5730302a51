// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell is a line-oriented prompt that dispatches one command per line.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/recipectl/internal/ctxlog"
	"github.com/peterh/liner"
)

// DefaultPrompt is shown before every line.
const DefaultPrompt = "recipectl> "

// ErrReadLine is returned when the prompt fails for a reason other than
// end of input or Ctrl+C.
var ErrReadLine = errors.New("error reading line")

// Prompter reads lines. *liner.State implements it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Dispatcher runs one command given as fields.
type Dispatcher interface {
	Dispatch(ctx context.Context, args []string) int
}

// Shell reads commands until exit, quit, end of input or Ctrl+C.
type Shell struct {
	dispatcher Dispatcher
	names      []string
	out        io.Writer
	prompt     string
}

// New creates a shell that completes the given command names and writes
// its own messages to out.
func New(d Dispatcher, names []string, out io.Writer) *Shell {
	return &Shell{
		dispatcher: d,
		names:      slices.Sorted(slices.Values(names)),
		out:        out,
		prompt:     DefaultPrompt,
	}
}

// Run opens a terminal prompt and loops until the session ends.
func (s *Shell) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.Complete)

	return s.Loop(ctx, line)
}

// Loop reads lines from p and dispatches each one. Blank lines are skipped;
// every dispatched line is added to the history.
func (s *Shell) Loop(ctx context.Context, p Prompter) error {
	fmt.Fprintln(s.out, "Entering interactive mode, type `help` for commands, `quit` or `exit` or Ctrl+C to quit.") //nolint:errcheck

	for {
		if ctx.Err() != nil {
			return nil
		}

		input, err := p.Prompt(s.prompt)

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out) //nolint:errcheck
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(s.out, "Aborted") //nolint:errcheck
			return nil
		default:
			return errors.Join(ErrReadLine, err)
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		p.AppendHistory(input)

		code := s.dispatcher.Dispatch(ctx, fields)
		ctxlog.Debug(ctx, "command finished", "command", fields[0], "exitCode", code)
	}
}

// Complete returns the command names starting with line. Only the first word
// is completed.
func (s *Shell) Complete(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}

	var out []string

	for _, name := range s.names {
		if strings.HasPrefix(name, line) {
			out = append(out, name)
		}
	}

	return out
}
