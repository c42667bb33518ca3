package main

import (
	"fmt"

	"github.com/fatih/color"
)

// Color definitions
var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorDim     = color.New(color.Faint).SprintFunc()
)

// Output prefixes
const (
	prefixSaved    = "✓"
	prefixSkipped  = "⚠"
	prefixError    = "✗"
	prefixVisiting = "→"
	prefixInfo     = "ℹ"
)

// logSuccess prints a success message
func logSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", colorSuccess(prefixSaved), msg)
}

// logWarn prints a warning message
func logWarn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", colorWarn(prefixSkipped), msg)
}

// logError prints an error message
func logError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", colorError(prefixError), msg)
}

// logVisit prints a processed-page message
func logVisit(url string) {
	fmt.Printf("%s %s\n", colorInfo(prefixVisiting), colorDim(url))
}

// logInfo prints an informational message
func logInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", colorInfo(prefixInfo), msg)
}
