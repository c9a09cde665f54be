package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == "invalid type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_AllCodesTranslated(t *testing.T) {
	codes := []string{"invalid_type", "invalid_enum", "invalid_union", "invalid_format", "required", "unknown_key", "duplicate_key", "parse_error", "truncated"}
	for _, lang := range []string{"en", "ja"} {
		SetLanguage(lang)
		for _, c := range codes {
			if msg := T(c, nil); msg == c {
				t.Fatalf("%s: code %q has no message", lang, c)
			}
		}
	}
	SetLanguage("en")
}

type prefixTranslator struct{}

func (prefixTranslator) Message(code string, data map[string]string) string { return "X:" + code + ":" + data["key"] }

func TestSetTranslator_Custom(t *testing.T) {
	SetTranslator(prefixTranslator{})
	defer SetTranslator(nil)
	if got := T("required", map[string]string{"key": "name"}); got != "X:required:name" {
		t.Fatalf("got %q", got)
	}
	SetTranslator(nil)
	if got := T("required", nil); got != "required property missing" {
		t.Fatalf("nil must restore english, got %q", got)
	}
}
