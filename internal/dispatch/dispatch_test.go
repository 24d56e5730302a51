// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/matt-FFFFFF/recipectl/internal/commandregistry"
	"github.com/matt-FFFFFF/recipectl/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type harness struct {
	d      *Dispatcher
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T, cmds ...commandregistry.Command) *harness {
	t.Helper()

	reg, err := commandregistry.New(cmds...)
	require.NoError(t, err)

	h := &harness{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	h.d = New(reg,
		WithOutput(h.out, h.errOut),
		WithFormatter(&result.Formatter{Format: result.FormatJSON}),
		WithProgram("recipectl"),
	)

	return h
}

func decode(t *testing.T, b *bytes.Buffer) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &m), "output: %s", b.String())

	return m
}

func echo(_ context.Context, param string) (any, error) {
	return map[string]string{"echo": param}, nil
}

func TestDispatch_UnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "empty name", args: []string{""}},
		{name: "unknown", args: []string{"nope", "1"}},
		{name: "wrong case", args: []string{"ECHO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, commandregistry.Command{Name: "echo", Param: "value", Description: "echo it", Handler: echo})

			code := h.d.Dispatch(context.Background(), tt.args)

			assert.Equal(t, ExitFailure, code)
			assert.Contains(t, h.out.String(), "Usage: recipectl [command] [param]")
			assert.Contains(t, h.out.String(), "| echo ")
			assert.Empty(t, h.errOut.String())
		})
	}
}

func TestDispatch_Success(t *testing.T) {
	h := newHarness(t, commandregistry.Command{Name: "echo", Handler: echo})

	code := h.d.Dispatch(context.Background(), []string{"echo", "hello", "ignored"})

	require.Equal(t, ExitOK, code)
	assert.Empty(t, h.errOut.String())

	got := decode(t, h.out)
	assert.Equal(t, "success", got["status"])
	assert.Equal(t, "echo", got["command"])
	assert.Equal(t, "hello", got["param"])
	assert.Equal(t, map[string]any{"echo": "hello"}, got["response"])
}

func TestDispatch_NilResponseIsNone(t *testing.T) {
	h := newHarness(t, commandregistry.Command{
		Name:    "quiet",
		Handler: func(context.Context, string) (any, error) { return nil, nil },
	})

	require.Equal(t, ExitOK, h.d.Dispatch(context.Background(), []string{"quiet"}))

	got := decode(t, h.out)
	assert.Equal(t, result.NoResponse, got["response"])
	assert.NotContains(t, got, "param")
}

func TestDispatch_HandlerError(t *testing.T) {
	h := newHarness(t, commandregistry.Command{
		Name:    "fail",
		Handler: func(context.Context, string) (any, error) { return nil, errors.New("missing recipe ID") },
	})

	code := h.d.Dispatch(context.Background(), []string{"fail"})

	require.Equal(t, ExitFailure, code)
	assert.Empty(t, h.out.String(), "failures go to the error writer")

	got := decode(t, h.errOut)
	assert.Equal(t, "error", got["status"])
	assert.Equal(t, "fail", got["command"])
	assert.Equal(t, "Error", got["errorName"])
	assert.Equal(t, "missing recipe ID", got["errorMessage"])
	assert.NotEmpty(t, got["stack"])
}

func TestDispatch_HandlerPanic(t *testing.T) {
	h := newHarness(t, commandregistry.Command{
		Name: "boom",
		Handler: func(context.Context, string) (any, error) {
			var m map[string]int
			m["x"] = 1 // nil map write

			return nil, nil
		},
	})

	code := h.d.Dispatch(context.Background(), []string{"boom"})

	require.Equal(t, ExitFailure, code)

	got := decode(t, h.errOut)
	assert.Equal(t, "PanicError", got["errorName"])
	assert.Contains(t, got["errorMessage"], "command panic: assignment to entry in nil map")
	assert.Contains(t, got["stack"], "dispatch_test.go", "stack points at the panicking handler")
}

func TestInvoke_PanicWithValue(t *testing.T) {
	h := newHarness(t)

	res := h.d.Invoke(context.Background(), commandregistry.Command{
		Name:    "boom",
		Handler: func(context.Context, string) (any, error) { panic(42) },
	}, "")

	require.False(t, res.OK())

	var pe *PanicError
	require.ErrorAs(t, res.Err, &pe)
	assert.Equal(t, 42, pe.Value)
	assert.Equal(t, "command panic: 42", res.ErrorMessage)
}

func TestInvoke_ContextCancelled(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	go func() {
		<-started
		cancel()
	}()

	res := h.d.Invoke(ctx, commandregistry.Command{
		Name: "slow",
		Handler: func(ctx context.Context, _ string) (any, error) {
			close(started)
			<-ctx.Done()

			return nil, ctx.Err()
		},
	}, "")

	require.False(t, res.OK())
	assert.Equal(t, "CanceledError", res.ErrorName)
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestInvoke_Timeout(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res := h.d.Invoke(ctx, commandregistry.Command{
		Name: "slow",
		Handler: func(ctx context.Context, _ string) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, "")

	require.False(t, res.OK())
	assert.Equal(t, "TimeoutError", res.ErrorName)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDispatch_WriteFailure(t *testing.T) {
	reg, err := commandregistry.New(commandregistry.Command{Name: "echo", Handler: echo})
	require.NoError(t, err)

	d := New(reg, WithOutput(brokenWriter{}, brokenWriter{}), WithFormatter(&result.Formatter{Format: result.FormatJSON}))

	assert.Equal(t, ExitFailure, d.Dispatch(context.Background(), []string{"echo", "x"}))
}

func TestHelpText(t *testing.T) {
	h := newHarness(t,
		commandregistry.Command{Name: "help", Description: "Display this message", Handler: echo},
		commandregistry.Command{Name: "getRecipe", Param: "id: int - id of recipe", Description: "fetch a recipe by id", Handler: echo},
	)

	text := h.d.HelpText()

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 1+1+1+2*2+1)
	assert.Less(t, strings.Index(text, "| help "), strings.Index(text, "| getRecipe "), "registration order")
}
