// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package result

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/recipectl/internal/color"
)

var (
	// ErrUnknownFormat is returned for an output format other than json or yaml.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrMarshalResult is returned when a result cannot be serialized.
	ErrMarshalResult = errors.New("failed to marshal result")
	// ErrWriteResult is returned when a serialized result cannot be written.
	ErrWriteResult = errors.New("failed to write result")
)

// Format selects the serialization of results.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const jsonIndent = 2

// ParseFormat validates s as an output format. The empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Formatter serializes results.
type Formatter struct {
	Format Format // Output format
	Color  bool   // Colourize JSON output
}

// NewFormatter returns a formatter for format with colour following the terminal.
func NewFormatter(format Format) *Formatter {
	return &Formatter{Format: format, Color: color.Enabled()}
}

// Marshal serializes r. The output always ends with a single newline.
func (f *Formatter) Marshal(r *Result) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch f.Format {
	case FormatYAML:
		out, err = yaml.Marshal(r)
	case FormatJSON, "":
		if f.Color {
			out, err = colorJSON(r)
		} else {
			out, err = json.MarshalIndent(r, "", strings.Repeat(" ", jsonIndent))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f.Format)
	}

	if err != nil {
		return nil, errors.Join(ErrMarshalResult, err)
	}

	return append(bytes.TrimRight(out, "\n"), '\n'), nil
}

// Write serializes r to w.
func (f *Formatter) Write(w io.Writer, r *Result) error {
	out, err := f.Marshal(r)
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return errors.Join(ErrWriteResult, err)
	}

	return nil
}

// colorJSON renders r through colorjson, which only understands generic
// values, so r is first round-tripped through encoding to a map.
func colorJSON(r *Result) ([]byte, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}

	f := colorjson.NewFormatter()
	f.Indent = jsonIndent

	return f.Marshal(generic)
}
