// Package glyph renders short strings as fixed-height blocks of large
// ASCII-art characters.
package glyph

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// Renderer maps a string to a rectangular block of text rows. Every row of a
// block has the same width, so callers can lay blocks out in columns.
type Renderer interface {
	Render(text string) []string
}

// FigureRenderer renders text with a figlet font.
type FigureRenderer struct {
	font string
}

// NewFigureRenderer creates a renderer for the given figlet font name.
func NewFigureRenderer(font string) *FigureRenderer {
	return &FigureRenderer{font: font}
}

// Render returns the text as a rectangular block of rows.
func (r *FigureRenderer) Render(text string) []string {
	rows := figure.NewFigure(text, r.font, false).Slicify()
	return rectangle(rows)
}

// rectangle pads rows with spaces so they all share the widest row's length.
func rectangle(rows []string) []string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row + strings.Repeat(" ", width-len(row))
	}
	return out
}
