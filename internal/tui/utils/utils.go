// Package utils provides small helpers for the terminal UI.
package utils

import (
	"io"
	"os"

	"github.com/arsham/figurine/figurine"
)

// PrintStyledText prints a decorated text banner to the terminal.
func PrintStyledText(text string) error {
	return figurine.Write(os.Stdout, text, "ANSI Regular.flf")
}

// FprintStyledText prints a decorated text banner to the given writer.
func FprintStyledText(w io.Writer, text string) error {
	return figurine.Write(w, text, "ANSI Regular.flf")
}
