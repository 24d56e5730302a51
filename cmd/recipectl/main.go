// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the recipectl command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/recipectl/cmd"
	"github.com/matt-FFFFFF/recipectl/internal/ctxlog"
	"github.com/matt-FFFFFF/recipectl/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	code := cmd.Run(ctx, os.Args, os.Stdout, os.Stderr)

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Info("command terminated due to cancellation", "error", ctx.Err())
	}

	cancel()
	signalbroker.Stop(sigCh)
	os.Exit(code)
}
