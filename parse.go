package skema

import (
	"errors"
	"fmt"
	"io"

	eng "github.com/reoring/skema/internal/engine"
)

// ParseValue consumes every token of src and builds an ordered Value. Mapping
// key order follows the input. A repeated key keeps the first key's position
// and the last value, unless ParseOpt.Strictness rejects duplicates. Failures
// are reported as *Violation (codes parse_error, duplicate_key, truncated).
//
// When several ParseOpt values are given the last one wins.
func ParseValue(src Source, opts ...ParseOpt) (Value, error) {
	if src == nil {
		return Value{}, &Violation{Code: CodeParseError, Path: "/", Cause: errors.New("nil source")}
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	var sink func(eng.SimpleIssue)
	if opt.OnWarning != nil {
		sink = func(si eng.SimpleIssue) { opt.OnWarning(fromEngineIssue(si)) }
	}
	ts := eng.WrapWithEnforcement(src, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   sink,
	})

	tok, err := ts.NextToken()
	if err != nil {
		if err == io.EOF {
			err = errors.New("empty input")
		}
		return Value{}, toViolation(err)
	}
	v, err := buildValue(ts, tok)
	if err != nil {
		return Value{}, toViolation(err)
	}
	if extra, err := ts.NextToken(); err != io.EOF {
		if err != nil {
			return Value{}, toViolation(err)
		}
		return Value{}, toViolation(fmt.Errorf("unexpected trailing %s", extra.Kind))
	}
	return v, nil
}

// ParseJSON is shorthand for ParseValue(JSONBytes(data), opts...).
func ParseJSON(data []byte, opts ...ParseOpt) (Value, error) {
	return ParseValue(JSONBytes(data), opts...)
}

func buildValue(ts eng.TokenSource, tok eng.Token) (Value, error) {
	switch tok.Kind {
	case eng.KindNull:
		return NullValue(), nil
	case eng.KindBool:
		return BoolValue(tok.Bool), nil
	case eng.KindNumber:
		return NumberValue(tok.Number), nil
	case eng.KindString:
		return StringValue(tok.String), nil
	case eng.KindBeginArray:
		items := []Value{}
		for {
			next, err := nextToken(ts)
			if err != nil {
				return Value{}, err
			}
			if next.Kind == eng.KindEndArray {
				return Value{kind: KindSequence, items: items}, nil
			}
			item, err := buildValue(ts, next)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
	case eng.KindBeginObject:
		members := []Member{}
		var index map[string]int
		for {
			next, err := nextToken(ts)
			if err != nil {
				return Value{}, err
			}
			if next.Kind == eng.KindEndObject {
				return Value{kind: KindMapping, members: members}, nil
			}
			if next.Kind != eng.KindKey {
				return Value{}, fmt.Errorf("expected object key, got %s", next.Kind)
			}
			vt, err := nextToken(ts)
			if err != nil {
				return Value{}, err
			}
			mv, err := buildValue(ts, vt)
			if err != nil {
				return Value{}, err
			}
			if index == nil {
				index = make(map[string]int)
			}
			if i, dup := index[next.String]; dup {
				members[i].Value = mv
				continue
			}
			index[next.String] = len(members)
			members = append(members, Member{Key: next.String, Value: mv})
		}
	}
	return Value{}, fmt.Errorf("unexpected %s", tok.Kind)
}

// nextToken treats end of input inside a container as a syntax error.
func nextToken(ts eng.TokenSource) (eng.Token, error) {
	tok, err := ts.NextToken()
	if err == io.EOF {
		return tok, io.ErrUnexpectedEOF
	}
	return tok, err
}

func toViolation(err error) *Violation {
	if v, ok := AsViolation(err); ok {
		return v
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return fromEngineIssue(ie.SimpleIssue)
	}
	return &Violation{Code: CodeParseError, Path: "/", Cause: err}
}

func fromEngineIssue(si eng.SimpleIssue) *Violation {
	return &Violation{Code: si.Code, Path: si.Path, Cause: errors.New(si.Message)}
}
