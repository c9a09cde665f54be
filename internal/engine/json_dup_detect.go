package engine

import "io"

// DuplicateStrictness controls duplicate key handling in detection helpers.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// DetectDuplicateKeys walks every token of src and reports duplicated object
// keys with their JSON Pointer. Under DupError it stops at the first
// duplicate. maxIssues < 0 means unlimited; 0 disables reporting; >0 caps the
// result and appends a trailing truncated issue.
func DetectDuplicateKeys(src TokenSource, onDup DuplicateStrictness, maxIssues int) []SimpleIssue {
	if onDup == DupIgnore || maxIssues == 0 {
		return nil
	}
	var issues []SimpleIssue
	stopped := false
	// DupWarn keeps the enforcing source going and hands every duplicate to
	// the sink; DupError surfaces the first one as an IssueError.
	enforced := WrapWithEnforcement(src, EnforceOptions{
		OnDuplicate: onDup,
		IssueSink: func(si SimpleIssue) {
			if stopped {
				return
			}
			issues = append(issues, si)
			if maxIssues > 0 && len(issues) >= maxIssues {
				issues = append(issues, SimpleIssue{Code: CodeTruncated, Path: "/", Message: "max issues reached"})
				stopped = true
			}
		},
	})
	for !stopped {
		_, err := enforced.NextToken()
		if err == nil {
			continue
		}
		if err == io.EOF {
			break
		}
		if ie, ok := err.(IssueError); ok {
			issues = append(issues, ie.SimpleIssue)
			break
		}
		issues = append(issues, SimpleIssue{Code: CodeParseError, Path: "/", Message: err.Error()})
		break
	}
	return issues
}
