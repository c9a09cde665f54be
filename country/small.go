package country

import "sort"

// SmallCountry is the reduced projection the region selector works with.
type SmallCountry struct {
	Name    string   `json:"name"`
	CCA3    string   `json:"cca3"`
	Borders []string `json:"borders"`
}

// Small projects c. A country without borders yields an empty, non-nil slice.
func (c Country) Small() SmallCountry {
	borders := []string{}
	if c.Borders != nil && *c.Borders != nil {
		borders = *c.Borders
	}
	return SmallCountry{Name: c.Name.Common, CCA3: c.CCA3, Borders: borders}
}

// IsRegion reports whether s is one of the five wire regions.
func IsRegion(s string) bool {
	for _, r := range RegionCases {
		if r == s {
			return true
		}
	}
	return false
}

// FilterByRegion returns the small projection of every country in region,
// sorted by common name.
func FilterByRegion(countries []Country, region string) []SmallCountry {
	out := []SmallCountry{}
	for _, c := range countries {
		if c.Region == region {
			out = append(out, c.Small())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByCode finds a country by its cca3 (alpha-3) code.
func ByCode(countries []Country, cca3 string) (Country, bool) {
	for _, c := range countries {
		if c.CCA3 == cca3 {
			return c, true
		}
	}
	return Country{}, false
}

// BordersOf resolves the neighbours of the country with code cca3. Border
// codes that do not appear in countries are skipped. ok is false when cca3
// itself is unknown.
func BordersOf(countries []Country, cca3 string) (borders []SmallCountry, ok bool) {
	c, ok := ByCode(countries, cca3)
	if !ok {
		return nil, false
	}
	borders = []SmallCountry{}
	if c.Borders == nil {
		return borders, true
	}
	for _, code := range *c.Borders {
		if n, found := ByCode(countries, code); found {
			borders = append(borders, n.Small())
		}
	}
	return borders, true
}
