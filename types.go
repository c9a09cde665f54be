package skema

// NumberMode dictates how numbers are represented in decoded Records.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // float64 (JSON.parse semantics; may round).
	NumberJSONNumber                   // json.Number carrying the exact literal text.
)

// Severity expresses the severity level for parse-time findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	// OnDuplicateKey: Ignore keeps the last value in the first key's
	// position (JSON.parse semantics), Warn does the same and reports through
	// ParseOpt.OnWarning, Error fails with CodeDuplicateKey.
	OnDuplicateKey Severity
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // maximum container nesting; 0 means unlimited
	// MaxBytes caps consumed input bytes; 0 means unlimited. The encoding/json
	// driver checks it per token. The go-json driver validates the whole
	// buffered document up front, so it checks the full size at the first token.
	MaxBytes int64
	// OnWarning receives non-fatal findings (duplicate keys under Warn).
	OnWarning func(*Violation)
}

// Options configures a Codec.
type Options struct {
	ParseOpt
	NumberMode NumberMode
	// Compact disables the two-space indentation of encoded output.
	Compact bool
}

// DefaultIndent matches JSON.stringify(value, null, 2).
const DefaultIndent = "  "
