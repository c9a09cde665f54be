package country_test

import (
	"reflect"
	"testing"

	"github.com/reoring/skema/country"
)

func TestFilterByRegion(t *testing.T) {
	cs, err := country.Decode(loadFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	got := country.FilterByRegion(cs, "Europe")
	names := []string{}
	for _, s := range got {
		names = append(names, s.Name)
	}
	want := []string{"Bosnia and Herzegovina", "Portugal", "Spain"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v want %v", names, want)
	}
	if len(country.FilterByRegion(cs, "Asia")) != 0 {
		t.Fatalf("no Asian countries in fixture")
	}
}

func TestBordersOf(t *testing.T) {
	cs, err := country.Decode(loadFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	b, ok := country.BordersOf(cs, "ESP")
	if !ok {
		t.Fatalf("ESP not found")
	}
	if len(b) != 1 || b[0].CCA3 != "PRT" || b[0].Name != "Portugal" {
		t.Fatalf("borders: %+v", b)
	}
	if _, ok := country.BordersOf(cs, "XXX"); ok {
		t.Fatalf("unknown code must report !ok")
	}
}

func TestSmall_NoBorders(t *testing.T) {
	c := country.Country{CCA3: "ISL", Name: country.Name{Common: "Iceland"}}
	s := c.Small()
	if s.Borders == nil || len(s.Borders) != 0 {
		t.Fatalf("borders must be empty non-nil: %#v", s.Borders)
	}
	if !country.IsRegion("Oceania") || country.IsRegion("Antarctica") {
		t.Fatalf("IsRegion")
	}
}
