package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	skema "github.com/reoring/skema"
)

// ErrorLevel represents the severity of a message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level   ErrorLevel
	Context string
	Problem string
	Details []string
	Hints   []string
	NoColor bool
}

// FormatError creates a standardized error message with details and hints.
//
// Example output:
//
//	❌ UNKNOWN_KEY: /2/currencies/BAM/symbol
//	   key:      "symbol"
//	   on:       BAM
//	   expected: nothing
//	   got:      "KM"
//
//	   → Show the schema: skema schema
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	headerColor := color.New(color.FgRed, color.Bold)
	bodyColor := color.New(color.FgRed)
	symbol := "❌"
	if opts.Level == ErrorLevelWarning {
		headerColor = color.New(color.FgYellow, color.Bold)
		bodyColor = color.New(color.FgYellow)
		symbol = "⚠️"
	}
	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(opts.Context), opts.Problem)
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}
	for _, d := range opts.Details {
		bodyColor.Fprintf(&b, "   %s\n", d)
	}

	if len(opts.Hints) > 0 {
		b.WriteString("\n")
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		for _, h := range opts.Hints {
			cyan.Fprintf(&b, "   → %s\n", h)
		}
	}
	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// ViolationOptions renders a *skema.Violation.
func ViolationOptions(v *skema.Violation, level ErrorLevel, noColor bool) ErrorOptions {
	var details []string
	if v.Key != "" {
		details = append(details, fmt.Sprintf("key:      %q", v.Key))
	}
	if v.Enclosing != "" {
		details = append(details, "on:       "+v.Enclosing)
	}
	if v.Expected != "" {
		details = append(details, "expected: "+v.Expected)
		details = append(details, "got:      "+v.Actual.String())
	} else if v.Cause != nil {
		details = append(details, "cause:    "+v.Cause.Error())
	}
	var hints []string
	switch v.Code {
	case skema.CodeUnknownKey, skema.CodeRequired, skema.CodeInvalidType, skema.CodeInvalidEnum, skema.CodeInvalidUnion:
		hints = append(hints, "Show the schema: skema schema")
	case skema.CodeDuplicateKey:
		hints = append(hints, "Relax duplicate handling: --duplicate-keys=ignore")
	case skema.CodeTruncated:
		hints = append(hints, "Raise the limit: --max-bytes / --max-depth")
	}
	path := v.Path
	if path == "" {
		path = "/"
	}
	return ErrorOptions{
		Level:   level,
		Context: v.Code,
		Problem: path,
		Details: details,
		Hints:   hints,
		NoColor: noColor,
	}
}

// FormatViolation renders a violation as an error block.
func FormatViolation(v *skema.Violation, noColor bool) string {
	return FormatError(ViolationOptions(v, ErrorLevelError, noColor))
}

// FormatWarning renders a non-fatal violation (duplicate keys under warn).
func FormatWarning(v *skema.Violation, noColor bool) string {
	return FormatError(ViolationOptions(v, ErrorLevelWarning, noColor))
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}
