// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandregistry

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/recipectl/internal/usage"
)

var (
	// ErrInvalidCommand is returned when a command has no name or no handler.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrDuplicateCommand is returned when a command name is registered twice.
	ErrDuplicateCommand = errors.New("command already registered")
)

// Handler runs a command. param is the optional argument following the
// command name and is empty when none was given. The returned value becomes
// the response of a successful result.
type Handler func(ctx context.Context, param string) (any, error)

// Command describes a registered command.
type Command struct {
	Name        string  // Name typed on the command line
	Param       string  // Human description of the parameter, empty if none
	Description string  // One line description for the usage table
	Handler     Handler // Function invoked by the dispatcher
}

// Registry holds the registered commands.
type Registry struct {
	byName  map[string]*Command
	ordered []*Command
}

// New creates a registry and registers cmds in order.
func New(cmds ...Command) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Command, len(cmds))}

	for _, c := range cmds {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds cmd to the registry.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCommand)
	}

	if cmd.Handler == nil {
		return fmt.Errorf("%w: %s: nil handler", ErrInvalidCommand, cmd.Name)
	}

	if _, exists := r.byName[cmd.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Name)
	}

	c := cmd
	r.byName[c.Name] = &c
	r.ordered = append(r.ordered, &c)

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(cmds ...Command) {
	for _, c := range cmds {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.byName[name]
	if !ok {
		return Command{}, false
	}

	return *c, true
}

// Names returns the command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ordered))
	for _, c := range r.ordered {
		names = append(names, c.Name)
	}

	return names
}

// Commands returns a copy of the registered commands in registration order.
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.ordered))
	for _, c := range r.ordered {
		cmds = append(cmds, *c)
	}

	return cmds
}

// Usage returns one usage row per command, in registration order.
func (r *Registry) Usage() []usage.Row {
	rows := make([]usage.Row, 0, len(r.ordered))
	for _, c := range r.ordered {
		rows = append(rows, usage.Row{Command: c.Name, Param: c.Param, Description: c.Description})
	}

	return rows
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.ordered)
}

