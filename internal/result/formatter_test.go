// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package result

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "json", want: FormatJSON},
		{in: " JSON ", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_JSONSuccess(t *testing.T) {
	f := &Formatter{Format: FormatJSON}

	out, err := f.Marshal(Success("getRecipe", "1", payload{ID: 1, Name: "Victory Pie"}))
	require.NoError(t, err)

	want := `{
  "status": "success",
  "command": "getRecipe",
  "param": "1",
  "response": {
    "id": 1,
    "name": "Victory Pie"
  }
}
`
	assert.Equal(t, want, string(out))
}

func TestFormatter_JSONOmitsEmptyParam(t *testing.T) {
	f := &Formatter{Format: FormatJSON}

	out, err := f.Marshal(Success("help", "", nil))
	require.NoError(t, err)

	assert.NotContains(t, string(out), `"param"`)
	assert.Contains(t, string(out), `"response": "None"`)
}

func TestFormatter_JSONFailure(t *testing.T) {
	f := &Formatter{Format: FormatJSON}

	out, err := f.Marshal(Failure("getRecipe", "x", errors.New("invalid recipe ID")))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "getRecipe", decoded["command"])
	assert.Equal(t, "x", decoded["param"])
	assert.Equal(t, "Error", decoded["errorName"])
	assert.Equal(t, "invalid recipe ID", decoded["errorMessage"])
	assert.NotEmpty(t, decoded["stack"])
	assert.NotContains(t, decoded, "response")
}

func TestFormatter_YAML(t *testing.T) {
	f := &Formatter{Format: FormatYAML}

	out, err := f.Marshal(Success("getIngredient", "2", payload{ID: 2, Name: "Power"}))
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "status: success\n")
	assert.Contains(t, s, "command: getIngredient\n")
	assert.Contains(t, s, "name: Power")
	assert.True(t, strings.HasSuffix(s, "\n"))
	assert.False(t, strings.HasSuffix(s, "\n\n"))
}

func TestFormatter_ColorJSON(t *testing.T) {
	f := &Formatter{Format: FormatJSON, Color: true}

	out, err := f.Marshal(Success("getAll", "", map[string]any{"recipes": []any{}}))
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "status")
	assert.Contains(t, s, "getAll")
	assert.Contains(t, s, "recipes")
	assert.True(t, strings.HasSuffix(s, "\n"))
}

func TestFormatter_UnknownFormat(t *testing.T) {
	f := &Formatter{Format: "toml"}

	_, err := f.Marshal(Success("x", "", nil))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestFormatter_Write(t *testing.T) {
	f := &Formatter{Format: FormatJSON}

	buf := &bytes.Buffer{}
	require.NoError(t, f.Write(buf, Success("x", "", nil)))
	assert.Contains(t, buf.String(), `"command": "x"`)

	err := f.Write(brokenWriter{}, Success("x", "", nil))
	assert.ErrorIs(t, err, ErrWriteResult)
}
