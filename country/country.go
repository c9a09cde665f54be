// Package country holds the restcountries Country schema and a typed binding
// on top of the generic skema codec.
package country

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/go-viper/mapstructure/v2"

	skema "github.com/reoring/skema"
)

// Decode validates a JSON array of countries and binds it to Country values.
// Nothing is returned unless every element is valid.
func Decode(data []byte) ([]Country, error) {
	records, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromRecords(records)
}

// DecodeReader is the io.Reader form of Decode.
func DecodeReader(r io.Reader) ([]Country, error) {
	records, err := codec.DecodeReader(r)
	if err != nil {
		return nil, err
	}
	return FromRecords(records)
}

// FromRecords binds decoded records to Country values. The records must have
// been produced by a Country codec; binding does not validate.
func FromRecords(records []skema.Record) ([]Country, error) {
	out := make([]Country, len(records))
	for i, rec := range records {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:     "json",
			ErrorUnused: true,
			Result:      &out[i],
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(rec); err != nil {
			return nil, fmt.Errorf("country: bind record %d: %w", i, err)
		}
	}
	return out, nil
}

// Encode renders countries in wire form. The typed values are marshalled,
// parsed back and run through the codec, so output is revalidated against
// the schema the same way decoded input is.
func Encode(countries []Country) ([]byte, error) {
	out := make([]Country, len(countries))
	for i, c := range countries {
		out[i] = c.withEmptyCollections()
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	v, err := skema.ParseValue(skema.JSONBytes(b))
	if err != nil {
		return nil, err
	}
	return codec.EncodeValue(v)
}

// withEmptyCollections replaces nil required slices and maps with empty
// ones, so a hand-built Country marshals them as [] or {} rather than null.
func (c Country) withEmptyCollections() Country {
	c.Name.NativeName = emptyMap(c.Name.NativeName)
	c.Capital = emptySlice(c.Capital)
	c.AltSpellings = emptySlice(c.AltSpellings)
	c.Languages = emptyMap(c.Languages)
	c.Translations = emptyMap(c.Translations)
	c.LatLng = emptySlice(c.LatLng)
	c.IDD.Suffixes = emptySlice(c.IDD.Suffixes)
	c.Car.Signs = emptySlice(c.Car.Signs)
	c.Timezones = emptySlice(c.Timezones)
	c.Continents = emptySlice(c.Continents)
	c.CapitalInfo.LatLng = emptySlice(c.CapitalInfo.LatLng)
	if c.TLD != nil && *c.TLD == nil {
		c.TLD = &[]string{}
	}
	if c.Borders != nil && *c.Borders == nil {
		c.Borders = &[]string{}
	}
	if c.Gini != nil && *c.Gini == nil {
		c.Gini = &map[string]float64{}
	}
	return c
}

func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func emptyMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}
