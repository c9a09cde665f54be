// Package yaml tokenizes YAML documents into the same token stream the JSON
// drivers produce, so YAML payloads go through the same enforcement and value
// building path.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	yamlv3 "gopkg.in/yaml.v3"

	eng "github.com/reoring/skema/internal/engine"
)

// NewReader wraps r as an engine.TokenSource over its first YAML document.
// The document is decoded on the first NextToken call.
func NewReader(r io.Reader) eng.TokenSource { return &source{r: r} }

// NewBytes wraps a byte slice as an engine.TokenSource.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

type source struct {
	r      io.Reader
	loaded bool
	err    error
	toks   *eng.SliceSource
}

func (s *source) NextToken() (eng.Token, error) {
	if !s.loaded {
		s.loaded = true
		s.err = s.load()
	}
	if s.err != nil {
		return eng.Token{}, s.err
	}
	return s.toks.NextToken()
}

func (s *source) Location() int64 {
	if s.toks == nil {
		return -1
	}
	return s.toks.Location()
}

func (s *source) load() error {
	var root yamlv3.Node
	if err := yamlv3.NewDecoder(s.r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	var toks []eng.Token
	if err := appendNode(&toks, &root, 0); err != nil {
		return err
	}
	s.toks = eng.NewSliceSource(toks)
	return nil
}

// maxAliasDepth bounds alias expansion so self-referencing anchors fail
// instead of recursing forever.
const maxAliasDepth = 64

func appendNode(toks *[]eng.Token, n *yamlv3.Node, aliases int) error {
	switch n.Kind {
	case yamlv3.DocumentNode:
		if len(n.Content) == 0 {
			*toks = append(*toks, eng.Token{Kind: eng.KindNull, Offset: -1})
			return nil
		}
		return appendNode(toks, n.Content[0], aliases)
	case yamlv3.MappingNode:
		*toks = append(*toks, eng.Token{Kind: eng.KindBeginObject, Offset: -1})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yamlv3.ScalarNode {
				return fmt.Errorf("yaml: line %d: mapping key must be a scalar", k.Line)
			}
			*toks = append(*toks, eng.Token{Kind: eng.KindKey, String: k.Value, Offset: -1})
			if err := appendNode(toks, n.Content[i+1], aliases); err != nil {
				return err
			}
		}
		*toks = append(*toks, eng.Token{Kind: eng.KindEndObject, Offset: -1})
		return nil
	case yamlv3.SequenceNode:
		*toks = append(*toks, eng.Token{Kind: eng.KindBeginArray, Offset: -1})
		for _, c := range n.Content {
			if err := appendNode(toks, c, aliases); err != nil {
				return err
			}
		}
		*toks = append(*toks, eng.Token{Kind: eng.KindEndArray, Offset: -1})
		return nil
	case yamlv3.AliasNode:
		if aliases >= maxAliasDepth || n.Alias == nil {
			return fmt.Errorf("yaml: line %d: alias nesting too deep", n.Line)
		}
		return appendNode(toks, n.Alias, aliases+1)
	case yamlv3.ScalarNode:
		t, err := scalarToken(n)
		if err != nil {
			return err
		}
		*toks = append(*toks, t)
		return nil
	}
	return fmt.Errorf("yaml: line %d: unsupported node kind %d", n.Line, n.Kind)
}

func scalarToken(n *yamlv3.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindBool, Bool: b, Offset: -1}, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10), Offset: -1}, nil
		}
		fallthrough
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return eng.Token{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return eng.Token{}, fmt.Errorf("yaml: line %d: %q has no JSON representation", n.Line, n.Value)
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64), Offset: -1}, nil
	}
	return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}, nil
}
