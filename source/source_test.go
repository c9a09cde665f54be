package source_test

import (
	"io"
	"reflect"
	"strings"
	"testing"

	skema "github.com/reoring/skema"
	_ "github.com/reoring/skema/source"
	drvgojson "github.com/reoring/skema/source/gojson"
	drvjson "github.com/reoring/skema/source/json"
)

func TestDefaultDriverIsGoJSON(t *testing.T) {
	if got := skema.JSONDriverName(); got != "go-json" {
		t.Fatalf("importing source must select go-json, got %s", got)
	}
}

type tokenSource interface {
	NextToken() (skema.Token, error)
}

func collect(t *testing.T, src tokenSource) []skema.Token {
	t.Helper()
	var out []skema.Token
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		tok.Offset = 0
		out = append(out, tok)
	}
}

func TestDriversAgree(t *testing.T) {
	inputs := []string{
		`{"a":[1,2.5,-3],"b":{"c":null,"d":true},"e":"x\u00e9"}`,
		`[]`,
		`[{"k":"v"},{"k":[{}]}]`,
	}
	for _, in := range inputs {
		a := collect(t, drvjson.NewBytes([]byte(in)))
		b := collect(t, drvgojson.NewBytes([]byte(in)))
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("drivers disagree on %s:\n%v\n%v", in, a, b)
		}
	}
}

func TestParseValueWithGoJSON(t *testing.T) {
	v, err := skema.ParseJSON([]byte(`{"b":1,"a":[true]}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != `{"b":1,"a":[true]}` {
		t.Fatalf("got %s", v)
	}
}

func TestDriversRejectMalformedJSON(t *testing.T) {
	inputs := []string{
		`[1 2]`,
		`{"a" 1}`,
		`{"a":1,}`,
		`[1,]`,
		`{"a":1 "b":2}`,
		`{"a":}`,
		`[1] x`,
	}
	drivers := map[string]func([]byte) skema.Source{
		"encoding/json": func(b []byte) skema.Source { return drvjson.NewBytes(b) },
		"go-json":       func(b []byte) skema.Source { return drvgojson.NewBytes(b) },
		"go-json reader": func(b []byte) skema.Source {
			return drvgojson.NewReader(strings.NewReader(string(b)))
		},
	}
	for name, open := range drivers {
		for _, in := range inputs {
			v, err := skema.ParseValue(open([]byte(in)))
			viol, ok := skema.AsViolation(err)
			if !ok || viol.Code != skema.CodeParseError {
				t.Fatalf("%s accepted %s as %s (err=%v)", name, in, v, err)
			}
		}
	}
}

func TestGoJSONEmptyInput(t *testing.T) {
	_, err := skema.ParseValue(drvgojson.NewBytes([]byte("  \n")))
	v, ok := skema.AsViolation(err)
	if !ok || v.Code != skema.CodeParseError || !strings.Contains(err.Error(), "empty input") {
		t.Fatalf("expected empty input parse_error, got %v", err)
	}
}

func TestGoJSONMaxBytes(t *testing.T) {
	data := []byte(`["` + strings.Repeat("x", 64) + `"]`)
	_, err := skema.ParseValue(drvgojson.NewBytes(data), skema.ParseOpt{MaxBytes: 16})
	v, ok := skema.AsViolation(err)
	if !ok || v.Code != skema.CodeTruncated {
		t.Fatalf("expected truncated violation, got %v", err)
	}
	if _, err := skema.ParseValue(drvgojson.NewBytes(data), skema.ParseOpt{MaxBytes: int64(len(data))}); err != nil {
		t.Fatalf("input at the limit must parse: %v", err)
	}
}
