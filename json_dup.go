package skema

import (
	"io"

	eng "github.com/reoring/skema/internal/engine"
)

// DetectJSONDuplicateKeysBytes reports duplicated object keys in JSON data
// without building a value. Under Error it stops at the first duplicate; under
// Warn it reports every one. maxIssues < 0 means unlimited, 0 disables
// reporting, and a positive cap appends a trailing truncated violation.
func DetectJSONDuplicateKeysBytes(data []byte, strict Strictness, maxIssues int) []*Violation {
	return DetectDuplicateKeys(JSONBytes(data), strict, maxIssues)
}

// DetectJSONDuplicateKeysReader is the io.Reader form of
// DetectJSONDuplicateKeysBytes.
func DetectJSONDuplicateKeysReader(r io.Reader, strict Strictness, maxIssues int) []*Violation {
	return DetectDuplicateKeys(JSONReader(r), strict, maxIssues)
}

// DetectDuplicateKeys runs duplicate detection over any Source.
func DetectDuplicateKeys(src Source, strict Strictness, maxIssues int) []*Violation {
	si := eng.DetectDuplicateKeys(src, toEngineDup(strict.OnDuplicateKey), maxIssues)
	if len(si) == 0 {
		return nil
	}
	out := make([]*Violation, len(si))
	for i, s := range si {
		out[i] = fromEngineIssue(s)
	}
	return out
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
