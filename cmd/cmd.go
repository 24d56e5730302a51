// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for recipectl.
package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/matt-FFFFFF/recipectl"
	"github.com/matt-FFFFFF/recipectl/internal/api"
	"github.com/matt-FFFFFF/recipectl/internal/commandregistry"
	"github.com/matt-FFFFFF/recipectl/internal/commands"
	"github.com/matt-FFFFFF/recipectl/internal/config"
	"github.com/matt-FFFFFF/recipectl/internal/ctxlog"
	"github.com/matt-FFFFFF/recipectl/internal/dispatch"
	"github.com/matt-FFFFFF/recipectl/internal/result"
	"github.com/matt-FFFFFF/recipectl/internal/shell"
	"github.com/urfave/cli/v3"
)

const (
	programName     = "recipectl"
	configFlag      = "config"
	apiBaseFlag     = "api-base"
	timeoutFlag     = "timeout"
	rateLimitFlag   = "rate-limit"
	concurrencyFlag = "concurrency"
	outputFlag      = "output"
	interactiveFlag = "interactive"
	verboseFlag     = "verbose"
	envPrefix       = "RECIPECTL_"
	cliExitStr      = ""
)

func init() {
	// -v is --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// New returns the root command writing results to stdout and failures and
// logs to stderr.
func New(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      programName,
		Usage:     "call the recipe API from the command line",
		UsageText: programName + " [global options] <command> [param]",
		Description: `recipectl runs one command against the recipe REST API and prints the outcome
as a structured result: successes on standard output, failures on standard error.
Run "recipectl help" for the list of commands, or start a session with --interactive.

Settings are read from defaults, then the --config file, then RECIPECTL_* environment
variables, then flags. Config file URLs use Hashicorp's go-getter syntax.`,
		Version:   recipectl.VersionString(),
		Writer:    stdout,
		ErrWriter: stderr,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      configFlag,
				Aliases:   []string{"c"},
				Usage:     "Config file (.yaml, .yml, .hcl or .json), local path or go-getter URL",
				Sources:   cli.EnvVars(envPrefix + "CONFIG"),
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.StringFlag{
				Name:     apiBaseFlag,
				Usage:    "Base URL of the recipe API",
				Sources:  cli.EnvVars(envPrefix + "API_BASE"),
				OnlyOnce: true,
			},
			&cli.DurationFlag{
				Name:     timeoutFlag,
				Usage:    "Timeout of each API request",
				Sources:  cli.EnvVars(envPrefix + "TIMEOUT"),
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     rateLimitFlag,
				Usage:    "Maximum API requests per second, 0 for unlimited",
				Sources:  cli.EnvVars(envPrefix + "RATE_LIMIT"),
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     concurrencyFlag,
				Usage:    "Maximum parallel API requests within one command",
				Sources:  cli.EnvVars(envPrefix + "CONCURRENCY"),
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     outputFlag,
				Aliases:  []string{"o"},
				Usage:    "Result format: json or yaml",
				Sources:  cli.EnvVars(envPrefix + "OUTPUT"),
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:        interactiveFlag,
				Aliases:     []string{"i"},
				Usage:       "Read commands from an interactive prompt",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        verboseFlag,
				Aliases:     []string{"v"},
				Usage:       "Log at debug level",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action: actionFunc,
		// exit codes are returned by Run rather than by os.Exit inside the framework
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// Run executes the root command with args (including the program name) and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := New(stdout, stderr).Run(ctx, args)
	if err == nil {
		return dispatch.ExitOK
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	ctxlog.Error(ctx, "command execution failed", "error", err)

	return dispatch.ExitFailure
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(verboseFlag) {
		ctxlog.LevelVar.Set(slog.LevelDebug)
	}

	cfg, err := resolveConfig(ctx, cmd)
	if err != nil {
		ctxlog.Error(ctx, "invalid configuration", "error", err)
		return cli.Exit(cliExitStr, dispatch.ExitFailure)
	}

	d, err := newDispatcher(cmd, cfg)
	if err != nil {
		ctxlog.Error(ctx, "failed to set up commands", "error", err)
		return cli.Exit(cliExitStr, dispatch.ExitFailure)
	}

	if cmd.Bool(interactiveFlag) {
		if err := shell.New(d, d.Registry().Names(), cmd.ErrWriter).Run(ctx); err != nil {
			ctxlog.Error(ctx, "interactive session failed", "error", err)
			return cli.Exit(cliExitStr, dispatch.ExitFailure)
		}

		return nil
	}

	if code := d.Dispatch(ctx, cmd.Args().Slice()); code != dispatch.ExitOK {
		return cli.Exit(cliExitStr, code)
	}

	return nil
}

// resolveConfig layers the config file, then environment and flags, over the
// defaults.
func resolveConfig(ctx context.Context, cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(ctx, cmd.String(configFlag))
	if err != nil {
		return cfg, err
	}

	if cmd.IsSet(apiBaseFlag) {
		cfg.APIBase = cmd.String(apiBaseFlag)
	}

	if cmd.IsSet(timeoutFlag) {
		cfg.Timeout = cmd.Duration(timeoutFlag)
	}

	if cmd.IsSet(rateLimitFlag) {
		cfg.RateLimit = cmd.Float(rateLimitFlag)
	}

	if cmd.IsSet(concurrencyFlag) {
		cfg.Concurrency = cmd.Int(concurrencyFlag)
	}

	if cmd.IsSet(outputFlag) {
		cfg.Output = cmd.String(outputFlag)
	}

	return cfg, cfg.Validate()
}

func newDispatcher(cmd *cli.Command, cfg config.Config) (*dispatch.Dispatcher, error) {
	format, err := result.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(cfg.APIBase,
		api.WithTimeout(cfg.Timeout),
		api.WithRateLimit(cfg.RateLimit, cfg.Burst),
	)
	if err != nil {
		return nil, err
	}

	reg, err := commandregistry.New()
	if err != nil {
		return nil, err
	}

	if err := commands.Register(reg, commands.Env{
		Client:      client,
		Program:     cmd.Name,
		Out:         cmd.Writer,
		Concurrency: cfg.Concurrency,
	}); err != nil {
		return nil, err
	}

	return dispatch.New(reg,
		dispatch.WithOutput(cmd.Writer, cmd.ErrWriter),
		dispatch.WithFormatter(result.NewFormatter(format)),
		dispatch.WithProgram(cmd.Name),
	), nil
}
