// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// PanicError is reported when a handler panics.
type PanicError struct {
	Value any
	trace *goerrors.Error
}

// newPanicError must be called from the deferred recover so the captured
// stack includes the panicking frame.
func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, trace: goerrors.Wrap(v, 1)}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	switch x := e.Value.(type) {
	case error:
		return "command panic: " + x.Error()
	default:
		return fmt.Sprintf("command panic: %v", x)
	}
}

// Name is the error class reported in failure results.
func (e *PanicError) Name() string {
	return "PanicError"
}

// Unwrap exposes the traced error so the failure result carries the panic stack.
func (e *PanicError) Unwrap() error {
	return e.trace
}
