// Package ui renders admin API responses for terminal display.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for rendered responses.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// ErrOutput is the destination for error messages.
// Defaults to os.Stderr but can be overridden for testing.
var ErrOutput io.Writer = os.Stderr

// PrintError reports a failure on ErrOutput in the conventional
// "Error: ..." form.
func PrintError(err error) {
	fmt.Fprintf(ErrOutput, "%s %v\n", Red("Error:"), err)
}

// PrintWarning reports a non-fatal condition on ErrOutput.
func PrintWarning(message string) {
	fmt.Fprintf(ErrOutput, "%s %s\n", Yellow("Warning:"), message)
}
