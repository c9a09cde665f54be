package benchmarks_test

import (
	"bytes"
	"os"
	"testing"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/country"
)

func countryBatch(tb testing.TB, n int) []byte {
	tb.Helper()
	fixture, err := os.ReadFile("../country/testdata/europe.json")
	if err != nil {
		tb.Fatalf("read fixture: %v", err)
	}
	body := bytes.TrimSpace(fixture)
	body = body[1 : len(body)-1] // strip the outer brackets
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(body)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func Benchmark_Country_Decode_Records(b *testing.B) {
	data := countryBatch(b, 50)
	c := country.Codec()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Country_Decode_Typed(b *testing.B) {
	data := countryBatch(b, 50)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := country.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Country_Transform_Only(b *testing.B) {
	data := countryBatch(b, 50)
	v, err := skema.ParseJSON(data)
	if err != nil {
		b.Fatal(err)
	}
	c := country.Codec()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Transform(v, skema.Decode); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Country_Encode(b *testing.B) {
	recs, err := country.Codec().Decode(countryBatch(b, 50))
	if err != nil {
		b.Fatal(err)
	}
	c := country.Codec()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(recs); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Parse_NumberMode_JSONNumber(b *testing.B) {
	data := countryBatch(b, 50)
	c := country.NewCodec(skema.Options{NumberMode: skema.NumberJSONNumber})
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
