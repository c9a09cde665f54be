package engine

import (
	"errors"
	"io"
	"testing"
)

func toks(kinds ...Token) *SliceSource { return NewSliceSource(kinds) }

func key(s string) Token { return Token{Kind: KindKey, String: s, Offset: -1} }
func num(s string) Token { return Token{Kind: KindNumber, Number: s, Offset: -1} }
func kind(k Kind) Token { return Token{Kind: k, Offset: -1} }

func drain(ts TokenSource) error {
	for {
		_, err := ts.NextToken()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func TestWrapWithEnforcement_PassThrough(t *testing.T) {
	src := toks(kind(KindBeginArray), kind(KindEndArray))
	if got := WrapWithEnforcement(src, EnforceOptions{}); got != TokenSource(src) {
		t.Fatalf("disabled enforcement must return the inner source")
	}
}

func TestEnforce_DuplicateError(t *testing.T) {
	src := toks(kind(KindBeginArray), kind(KindBeginObject), key("a"), num("1"), key("a"), num("2"), kind(KindEndObject), kind(KindEndArray))
	err := drain(WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupError}))
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != CodeDuplicateKey || ie.Path != "/0/a" {
		t.Fatalf("unexpected issue: %+v", ie.SimpleIssue)
	}
}

func TestEnforce_DuplicateWarnSink(t *testing.T) {
	var got []SimpleIssue
	src := toks(kind(KindBeginObject), key("x"), num("1"), key("x"), num("2"), kind(KindEndObject))
	err := drain(WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupWarn, IssueSink: func(si SimpleIssue) { got = append(got, si) }}))
	if err != nil {
		t.Fatalf("warn must not fail: %v", err)
	}
	if len(got) != 1 || got[0].Path != "/x" {
		t.Fatalf("sink: %+v", got)
	}
}

func TestEnforce_SameKeyInSiblingObjects(t *testing.T) {
	src := toks(kind(KindBeginArray),
		kind(KindBeginObject), key("a"), num("1"), kind(KindEndObject),
		kind(KindBeginObject), key("a"), num("2"), kind(KindEndObject),
		kind(KindEndArray))
	if err := drain(WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupError})); err != nil {
		t.Fatalf("sibling objects are independent: %v", err)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	src := toks(kind(KindBeginObject), key("a"), kind(KindBeginArray), kind(KindBeginArray), kind(KindEndArray), kind(KindEndArray), kind(KindEndObject))
	err := drain(WrapWithEnforcement(src, EnforceOptions{MaxDepth: 2}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeParseError || ie.Path != "/a/0" {
		t.Fatalf("expected depth issue at /a/0, got %v", err)
	}
}

func TestDetectDuplicateKeys_Unlimited(t *testing.T) {
	src := toks(kind(KindBeginObject), key("a"), num("1"), key("a"), num("2"), key("a"), num("3"), kind(KindEndObject))
	iss := DetectDuplicateKeys(src, DupWarn, -1)
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
}

func TestJoinPointer_Escapes(t *testing.T) {
	if got := JoinPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("got %s", got)
	}
}

func TestKindString(t *testing.T) {
	if KindBeginObject.String() == KindEndObject.String() {
		t.Fatalf("kinds must render distinctly")
	}
}
