// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"io"
	"os"

	"github.com/matt-FFFFFF/recipectl/internal/commandregistry"
	"github.com/matt-FFFFFF/recipectl/internal/ctxlog"
	"github.com/matt-FFFFFF/recipectl/internal/result"
	"github.com/matt-FFFFFF/recipectl/internal/usage"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

const none = "None"

// Dispatcher resolves and runs commands from a registry.
type Dispatcher struct {
	registry  *commandregistry.Registry
	formatter *result.Formatter
	program   string
	out       io.Writer
	errOut    io.Writer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets the writers for successes (and help) and for failures.
func WithOutput(out, errOut io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = out
		d.errOut = errOut
	}
}

// WithFormatter sets the result formatter.
func WithFormatter(f *result.Formatter) Option {
	return func(d *Dispatcher) {
		d.formatter = f
	}
}

// WithProgram sets the program name shown in the usage line.
func WithProgram(name string) Option {
	return func(d *Dispatcher) {
		d.program = name
	}
}

// New creates a Dispatcher over registry. By default it writes JSON to
// os.Stdout and os.Stderr.
func New(registry *commandregistry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry:  registry,
		formatter: result.NewFormatter(result.FormatJSON),
		program:   "recipectl",
		out:       os.Stdout,
		errOut:    os.Stderr,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch runs the command named by args[0] with args[1] as its parameter and
// returns the process exit code. Further arguments are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string) int {
	var name, param string
	if len(args) > 0 {
		name = args[0]
	}

	if len(args) > 1 {
		param = args[1]
	}

	logger := ctxlog.Logger(ctx).With("command", orNone(name), "param", orNone(param))
	logger.Info("received command")

	cmd, ok := d.registry.Lookup(name)
	if !ok {
		logger.Error("unknown command")

		if err := d.WriteHelp(); err != nil {
			logger.Error("failed to write usage", "error", err)
		}

		return ExitFailure
	}

	res := d.Invoke(ctx, cmd, param)

	dst := d.out
	if !res.OK() {
		dst = d.errOut
	}

	if err := d.formatter.Write(dst, res); err != nil {
		logger.Error("failed to write result", "error", err)
		return ExitFailure
	}

	if !res.OK() {
		logger.Debug("command failed", "errorName", res.ErrorName)
		return ExitFailure
	}

	logger.Debug("command succeeded")

	return ExitOK
}

// Invoke runs cmd and waits for it to return or for ctx to be done. Errors and
// panics become failure results.
func (d *Dispatcher) Invoke(ctx context.Context, cmd commandregistry.Command, param string) *result.Result {
	type outcome struct {
		response any
		err      error
	}

	// Buffered so the handler goroutine never blocks once ctx is done.
	ch := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.Error(ctx, "command panicked", "command", cmd.Name, "panic", r)
				ch <- outcome{err: newPanicError(r)}
			}
		}()

		resp, err := cmd.Handler(ctx, param)
		ch <- outcome{response: resp, err: err}
	}()

	select {
	case o := <-ch:
		if o.err != nil {
			return result.Failure(cmd.Name, param, o.err)
		}

		return result.Success(cmd.Name, param, o.response)
	case <-ctx.Done():
		return result.Failure(cmd.Name, param, ctx.Err())
	}
}

// HelpText returns the usage table for the registered commands.
func (d *Dispatcher) HelpText() string {
	return usage.Render(d.program, d.registry.Usage())
}

// WriteHelp writes the usage table to the standard writer.
func (d *Dispatcher) WriteHelp() error {
	_, err := io.WriteString(d.out, d.HelpText())
	return err
}

// Registry returns the registry the dispatcher resolves commands from.
func (d *Dispatcher) Registry() *commandregistry.Registry {
	return d.registry
}

func orNone(s string) string {
	if s == "" {
		return none
	}

	return s
}
