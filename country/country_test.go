package country_test

import (
	"bytes"
	"errors"
	"os"
	"reflect"
	"testing"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/country"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/europe.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return b
}

// patch replaces the first occurrence of old in the fixture.
func patch(t *testing.T, data []byte, old, new string) []byte {
	t.Helper()
	if !bytes.Contains(data, []byte(old)) {
		t.Fatalf("fixture does not contain %q", old)
	}
	return bytes.Replace(data, []byte(old), []byte(new), 1)
}

func mustViolation(t *testing.T, err error) *skema.Violation {
	t.Helper()
	v, ok := skema.AsViolation(err)
	if !ok {
		t.Fatalf("expected *Violation, got %T %v", err, err)
	}
	return v
}

func TestDecode_Fixture(t *testing.T) {
	cs, err := country.Decode(loadFixture(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cs) != 3 {
		t.Fatalf("want 3 countries, got %d", len(cs))
	}
	es := cs[0]
	if es.Name.Common != "Spain" || es.CCA3 != "ESP" || es.Region != "Europe" {
		t.Fatalf("unexpected Spain: %+v", es.Name)
	}
	if es.Currencies.EUR == nil || es.Currencies.EUR.Symbol != "€" {
		t.Fatalf("EUR not bound: %+v", es.Currencies)
	}
	if es.Independent == nil || !*es.Independent {
		t.Fatalf("independent not bound")
	}
	if es.Maps == nil || es.Maps.OpenStreetMaps == "" {
		t.Fatalf("maps not bound")
	}
	if es.Gini == nil || (*es.Gini)["2018"] != 34.7 {
		t.Fatalf("gini: %v", es.Gini)
	}
	if es.Demonyms.Fra == nil || es.Demonyms.Fra.F != "Espagnole" {
		t.Fatalf("demonyms.fra: %+v", es.Demonyms)
	}
	bih := cs[2]
	if bih.Currencies.BAM == nil || bih.Currencies.BAM.Name == "" {
		t.Fatalf("BAM not bound: %+v", bih.Currencies)
	}
	if bih.Demonyms.Fra != nil {
		t.Fatalf("absent fra should stay nil")
	}
}

func TestDecode_BAMRejectsSymbol(t *testing.T) {
	data := patch(t, loadFixture(t),
		`"name": "Bosnia and Herzegovina convertible mark"`,
		`"name": "Bosnia and Herzegovina convertible mark", "symbol": "KM"`)
	cs, err := country.Decode(data)
	if err == nil || cs != nil {
		t.Fatalf("expected failure, got %v", cs)
	}
	v := mustViolation(t, err)
	if v.Code != skema.CodeInvalidUnion || v.Key != "BAM" || v.Enclosing != "Currencies" || v.Path != "/2/currencies/BAM" {
		t.Fatalf("unexpected violation: %+v", v)
	}
	var inner *skema.Violation
	if !errors.As(v.Cause, &inner) {
		t.Fatalf("cause should carry the alternative's violation: %v", v.Cause)
	}
	if inner.Code != skema.CodeUnknownKey || inner.Key != "symbol" || inner.Enclosing != "BAM" || inner.Path != "/2/currencies/BAM/symbol" {
		t.Fatalf("unexpected inner violation: %+v", inner)
	}
}

func TestDecode_UnknownTopLevelKey(t *testing.T) {
	data := patch(t, loadFixture(t), `"startOfWeek": "monday",`, `"startOfWeek": "monday", "extra": 1,`)
	_, err := country.Decode(data)
	v := mustViolation(t, err)
	if v.Code != skema.CodeUnknownKey || v.Key != "extra" || v.Enclosing != "Country" || v.Path != "/0/extra" {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestDecode_RegionUsesWireContract(t *testing.T) {
	data := patch(t, loadFixture(t), `"region": "Europe"`, `"region": "Africa"`)
	cs, err := country.Decode(data)
	if err != nil {
		t.Fatalf("Africa must be accepted: %v", err)
	}
	if cs[0].Region != "Africa" {
		t.Fatalf("region: %s", cs[0].Region)
	}

	data = patch(t, loadFixture(t), `"region": "Europe"`, `"region": "europe"`)
	_, err = country.Decode(data)
	v := mustViolation(t, err)
	if v.Code != skema.CodeInvalidEnum || v.Key != "region" || v.Enclosing != "Country" {
		t.Fatalf("unexpected violation: %+v", v)
	}
	if len(country.GeneratedRegionCases) != 2 || len(country.RegionCases) != 5 {
		t.Fatalf("region case sets changed")
	}
}

func TestDecode_OptionalAndRequired(t *testing.T) {
	data := patch(t, loadFixture(t), `"fifa": "POR",`, ``)
	cs, err := country.Decode(data)
	if err != nil {
		t.Fatalf("missing optional fifa must decode: %v", err)
	}
	if cs[1].FIFA != nil {
		t.Fatalf("fifa: %q", *cs[1].FIFA)
	}

	data = patch(t, loadFixture(t), `"flag": "🇵🇹",`, ``)
	_, err = country.Decode(data)
	v := mustViolation(t, err)
	if v.Code != skema.CodeRequired || v.Key != "flag" || v.Path != "/1/flag" {
		t.Fatalf("unexpected violation: %+v", v)
	}

	// explicit null does not satisfy an optional field
	data = patch(t, loadFixture(t), `"tld": [".pt"]`, `"tld": null`)
	_, err = country.Decode(data)
	v = mustViolation(t, err)
	if v.Code != skema.CodeInvalidUnion || v.Key != "tld" {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestDecode_BatchAllOrNothing(t *testing.T) {
	data := patch(t, loadFixture(t), `"population": 3280815`, `"population": "3280815"`)
	cs, err := country.Decode(data)
	if cs != nil {
		t.Fatalf("no records expected on failure, got %d", len(cs))
	}
	v := mustViolation(t, err)
	if v.Path != "/2/population" || v.Expected != "number" {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	cs, err := country.Decode(loadFixture(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := country.Encode(cs)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := country.Decode(out)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if !reflect.DeepEqual(cs, again) {
		t.Fatalf("round trip mismatch")
	}

	want, err := skema.ParseJSON(loadFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	got, err := skema.ParseJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	if !want.Equal(got) {
		t.Fatalf("encoded tree differs from input")
	}
}

func TestEncode_RoundTripKeepsPresentButEmpty(t *testing.T) {
	data := patch(t, loadFixture(t), `"borders": ["ESP"]`, `"borders": []`)
	data = patch(t, data, `"tld": [".pt"]`, `"tld": []`)
	data = patch(t, data, `"fifa": "POR"`, `"fifa": ""`)

	cs, err := country.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	pt := cs[1]
	if pt.Borders == nil || len(*pt.Borders) != 0 {
		t.Fatalf("empty borders must decode as a non-nil empty slice: %v", pt.Borders)
	}
	if pt.TLD == nil || len(*pt.TLD) != 0 {
		t.Fatalf("empty tld must decode as a non-nil empty slice: %v", pt.TLD)
	}
	if pt.FIFA == nil || *pt.FIFA != "" {
		t.Fatalf("empty fifa must decode as a pointer to \"\": %v", pt.FIFA)
	}

	out, err := country.Encode(cs)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want, err := skema.ParseJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := skema.ParseJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	if !want.Equal(got) {
		t.Fatalf("encoded tree differs from input:\n%s", out)
	}
	rec := got.Items()[1]
	for _, key := range []string{"borders", "tld"} {
		if v := rec.Get(key); v.Kind() != skema.KindSequence || v.Len() != 0 {
			t.Fatalf("%s: want [], got %s", key, v)
		}
	}
}

func TestEncode_NilCollectionsOnHandBuiltCountry(t *testing.T) {
	cs, err := country.Decode(loadFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	c := cs[0]
	c.Capital = nil
	c.Timezones = nil
	c.Languages = nil
	c.Car.Signs = nil
	c.Borders = nil
	c.TLD = &[]string{}

	out, err := country.Encode([]country.Country{c})
	if err != nil {
		t.Fatalf("nil required collections must encode as empty: %v", err)
	}
	v, err := skema.ParseJSON(out)
	if err != nil {
		t.Fatal(err)
	}
	rec := v.Items()[0]
	for _, key := range []string{"capital", "timezones", "languages"} {
		if got := rec.Get(key); got.Len() != 0 || got.IsAbsent() {
			t.Fatalf("%s: want empty, got %s", key, got)
		}
	}
	if !rec.Get("borders").IsAbsent() {
		t.Fatalf("nil borders must be omitted")
	}
	if got := rec.Get("tld"); got.Kind() != skema.KindSequence {
		t.Fatalf("tld: want [], got %s", got)
	}
}

func TestEncode_RevalidatesTypedValues(t *testing.T) {
	cs, err := country.Decode(loadFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	cs[0].Car.Side = "middle"
	_, err = country.Encode(cs)
	v := mustViolation(t, err)
	if v.Code != skema.CodeInvalidEnum || v.Path != "/0/car/side" || v.Enclosing != "Car" {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestEncode_Empty(t *testing.T) {
	out, err := country.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[]" {
		t.Fatalf("got %q", out)
	}
}

func TestCodec_RecordsRoundTrip(t *testing.T) {
	c := country.Codec()
	recs, err := c.Decode(loadFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	if recs[2]["currencies"].(skema.Record)["BAM"] == nil {
		t.Fatalf("BAM missing from record")
	}
	if _, ok := recs[2]["postalCode"]; !ok {
		t.Fatalf("postalCode missing")
	}
	out, err := c.Encode(recs)
	if err != nil {
		t.Fatal(err)
	}
	again, err := c.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(recs, again) {
		t.Fatalf("records differ after round trip")
	}
}

func TestJSONSchema(t *testing.T) {
	s, err := country.Schema().JSONSchema("Country")
	if err != nil {
		t.Fatal(err)
	}
	def := s.Defs["Country"]
	if def == nil {
		t.Fatalf("Country def missing")
	}
	required := map[string]bool{}
	for _, r := range def.Required {
		required[r] = true
	}
	if !required["name"] || !required["flag"] || required["tld"] || required["maps"] {
		t.Fatalf("required: %v", def.Required)
	}
	if def.AdditionalProperties != false {
		t.Fatalf("Country must be closed")
	}
	if s.Defs["BAM"] == nil || s.Defs["Region"] == nil {
		t.Fatalf("defs: %v", len(s.Defs))
	}
	if len(s.Defs["Region"].Enum) != 5 {
		t.Fatalf("region enum: %v", s.Defs["Region"].Enum)
	}
}
