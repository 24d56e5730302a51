// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package result holds the outcome of a dispatched command and renders it as
// structured text.
package result

import (
	"context"
	"errors"
	"reflect"

	goerrors "github.com/go-errors/errors"
)

// NoResponse is reported as the response of a command that returned nothing.
const NoResponse = "None"

// Status is the discriminator of a Result.
type Status string

// Result statuses.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the normalized outcome of a command. Exactly one of the success
// fields (Response) or failure fields (ErrorName, ErrorMessage, Stack) is set,
// according to Status.
type Result struct {
	Status       Status `json:"status" yaml:"status"`
	Command      string `json:"command" yaml:"command"`
	Param        string `json:"param,omitempty" yaml:"param,omitempty"`
	Response     any    `json:"response,omitempty" yaml:"response,omitempty"`
	ErrorName    string `json:"errorName,omitempty" yaml:"errorName,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	Stack        string `json:"stack,omitempty" yaml:"stack,omitempty"`

	// Err is the original error of a failure.
	Err error `json:"-" yaml:"-"`
}

// Success builds a successful result. A nil or empty response is replaced by NoResponse.
func Success(command, param string, response any) *Result {
	if isEmpty(response) {
		response = NoResponse
	}

	return &Result{
		Status:   StatusSuccess,
		Command:  command,
		Param:    param,
		Response: response,
	}
}

// Failure builds a failed result from err. The stack is taken from err when it
// carries one (see github.com/go-errors/errors), otherwise it is captured here.
func Failure(command, param string, err error) *Result {
	if err == nil {
		err = errors.New("unknown error")
	}

	var traced *goerrors.Error
	if !errors.As(err, &traced) {
		traced = goerrors.Wrap(err, 1)
	}

	return &Result{
		Status:       StatusError,
		Command:      command,
		Param:        param,
		ErrorName:    ErrorName(err),
		ErrorMessage: err.Error(),
		Stack:        string(traced.Stack()),
		Err:          err,
	}
}

// OK reports whether the result is a success.
func (r *Result) OK() bool {
	return r.Status == StatusSuccess
}

type named interface {
	Name() string
}

// Packages whose error types carry no useful name of their own.
var anonymousErrorPkgs = map[string]struct{}{
	"errors":                             {},
	"fmt":                                {},
	"github.com/go-errors/errors":        {},
	"github.com/hashicorp/go-multierror": {},
}

// ErrorName returns a short class name for err: the Name() of the first error
// in the chain that has one, TimeoutError or CanceledError for context errors,
// the Go type name for other typed errors, and "Error" otherwise.
func ErrorName(err error) string {
	if err == nil {
		return ""
	}

	var n named
	if errors.As(err, &n) {
		return n.Name()
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "TimeoutError"
	case errors.Is(err, context.Canceled):
		return "CanceledError"
	}

	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if _, anon := anonymousErrorPkgs[t.PkgPath()]; anon || t.Name() == "" {
		return "Error"
	}

	return t.Name()
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}

	if s, ok := v.(string); ok {
		return s == ""
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
