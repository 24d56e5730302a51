// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package usage renders the fixed-width command table shown by `help` and
// whenever an unknown command is requested.
package usage

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	border    = "|"
	cellLead  = " "
	cellSep   = "."
	ruleSep   = "^"
	ruleFill  = "-"
	frameFill = "="
	ellipsis  = "…"
)

// Widths are the display widths of the command, param and description columns.
var Widths = [3]int{15, 30, 70}

// Row is one line of the usage table.
type Row struct {
	Command     string
	Param       string
	Description string
}

func (r Row) cells() [3]string {
	return [3]string{r.Command, r.Param, r.Description}
}

var header = Row{Command: "Command", Param: "Param", Description: "Description"}

// width measures cells independently of the user's locale so the table lines
// up the same way everywhere.
var width = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false

	return c
}()

// Render returns the usage text for program and rows. Every table line has the
// same display width; cells that do not fit are truncated with an ellipsis.
func Render(program string, rows []Row) string {
	sb := strings.Builder{}

	sb.WriteString("Usage: ")
	sb.WriteString(program)
	sb.WriteString(" [command] [param]\n")

	writeLine(&sb, fillLine(frameFill, frameFill))
	writeLine(&sb, textLine(header))

	for _, r := range rows {
		writeLine(&sb, fillLine(ruleFill, ruleSep))
		writeLine(&sb, textLine(r))
	}

	writeLine(&sb, fillLine(frameFill, frameFill))

	return sb.String()
}

// LineWidth is the display width of every table line produced by Render.
func LineWidth() int {
	w := len(border) * 2

	for i, cw := range Widths {
		if i > 0 {
			w += len(cellSep)
		}

		w += cw
	}

	return w
}

func writeLine(sb *strings.Builder, line string) {
	sb.WriteString(line)
	sb.WriteByte('\n')
}

func fillLine(fill, sep string) string {
	var cells [3]string
	for i, w := range Widths {
		cells[i] = strings.Repeat(fill, w)
	}

	return join(cells, sep)
}

func textLine(r Row) string {
	var cells [3]string
	for i, v := range r.cells() {
		cells[i] = fit(cellLead+v, Widths[i])
	}

	return join(cells, cellSep)
}

func join(cells [3]string, sep string) string {
	return border + strings.Join(cells[:], sep) + border
}

// fit pads or truncates s to exactly w display columns.
func fit(s string, w int) string {
	if width.StringWidth(s) > w {
		s = width.Truncate(s, w, ellipsis)
	}

	return width.FillRight(s, w)
}
