package skema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/skema/i18n"
)

// Violation codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidUnion  = "invalid_union"
	CodeInvalidFormat = "invalid_format"
	CodeUnknownKey    = "unknown_key"
	CodeRequired      = "required"
	// Parsing layer
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
)

// Violation is the structured failure of a decode or encode call. It is the
// only error kind data problems surface as.
type Violation struct {
	Code      string
	Path      string // JSON Pointer into the input (for example: /3/currencies/BAM)
	Key       string // offending mapping key; empty when not inside a mapping
	Enclosing string // name of the enclosing registry type; empty when anonymous
	Expected  string // human description of the accepted shape
	Actual    Value  // the offending value
	Cause     error  // optional underlying error (parse failures, temporal parsing)
}

func (v *Violation) Error() string {
	b := &strings.Builder{}
	b.WriteString(i18n.T(v.Code, map[string]string{"key": v.Key, "on": v.Enclosing}))
	if v.Key != "" {
		fmt.Fprintf(b, " for key %q", v.Key)
	}
	if v.Enclosing != "" {
		fmt.Fprintf(b, " on %s", v.Enclosing)
	}
	if v.Path != "" {
		fmt.Fprintf(b, " at %s", v.Path)
	}
	if v.Expected != "" {
		fmt.Fprintf(b, ": expected %s but got %s", v.Expected, v.Actual.String())
	} else if v.Cause != nil {
		fmt.Fprintf(b, ": %v", v.Cause)
	}
	return b.String()
}

func (v *Violation) Unwrap() error { return v.Cause }

// AsViolation extracts a *Violation from an error chain.
func AsViolation(err error) (*Violation, bool) {
	if err == nil {
		return nil, false
	}
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// UnknownReferenceError is the panic value raised when a reference names a
// registry entry that does not exist. It signals a schema bug and is never
// returned as a data error.
type UnknownReferenceError struct {
	Name string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("skema: unknown reference %q", e.Name)
}
