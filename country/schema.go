package country

import skema "github.com/reoring/skema"

// RegionCases is the wire contract for "region" and "continents".
var RegionCases = []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}

// GeneratedRegionCases is the Region set the upstream type generator emitted
// from a European sample. It rejects three of the five regions the service
// actually returns and is kept only so the discrepancy stays visible; the
// registry uses RegionCases.
var GeneratedRegionCases = []string{"Asia", "Europe"}

// CurrencyCodes lists the currency fields of the Currencies record in
// declaration order. BAM is the only code without a symbol.
var CurrencyCodes = []string{
	"EUR", "RSD", "MKD", "ALL", "CHF", "DKK", "MDL", "UAH", "GBP", "RUB", "PLN", "BAM", "JEP",
	"BYN", "CZK", "ISK", "IMP", "RON", "GIP", "HUF", "BGN", "SEK", "FOK", "NOK", "GGP",
}

func definitions() map[string]skema.Descriptor {
	str := skema.String()
	num := skema.Number()
	boolean := skema.Boolean()
	strings := skema.ArrayOf(str)
	numbers := skema.ArrayOf(num)

	currencies := make([]skema.FieldSpec, len(CurrencyCodes))
	for i, code := range CurrencyCodes {
		shape := "All"
		if code == "BAM" {
			shape = "BAM"
		}
		currencies[i] = skema.Field(code, skema.Optional(skema.Ref(shape)))
	}

	return map[string]skema.Descriptor{
		"Country": skema.Closed(
			skema.Field("name", skema.Ref("Name")),
			skema.Field("tld", skema.Optional(strings)),
			skema.Field("cca2", str),
			skema.Field("ccn3", skema.Optional(str)),
			skema.Field("cca3", str),
			skema.Field("cioc", skema.Optional(str)),
			skema.Field("independent", skema.Optional(boolean)),
			skema.Field("status", skema.Ref("Status")),
			skema.Field("unMember", boolean),
			skema.Field("currencies", skema.Ref("Currencies")),
			skema.Field("idd", skema.Ref("Idd")),
			skema.Field("capital", strings),
			skema.Field("altSpellings", strings),
			skema.Field("region", skema.Ref("Region")),
			skema.Field("subregion", skema.Ref("Subregion")),
			skema.Field("languages", skema.MapOf(str)),
			skema.Field("translations", skema.MapOf(skema.Ref("Translation"))),
			skema.Field("latlng", numbers),
			skema.Field("landlocked", boolean),
			skema.Field("borders", skema.Optional(strings)),
			skema.Field("area", num),
			skema.Field("demonyms", skema.Ref("Demonyms")),
			skema.Field("flag", str),
			skema.Field("maps", skema.Optional(skema.Ref("Maps"))),
			skema.Field("population", num),
			skema.Field("gini", skema.Optional(skema.MapOf(num))),
			skema.Field("fifa", skema.Optional(str)),
			skema.Field("car", skema.Ref("Car")),
			skema.Field("timezones", strings),
			skema.Field("continents", skema.ArrayOf(skema.Ref("Region"))),
			skema.Field("flags", skema.Ref("Flags")),
			skema.Field("coatOfArms", skema.Ref("CoatOfArms")),
			skema.Field("startOfWeek", skema.Ref("StartOfWeek")),
			skema.Field("capitalInfo", skema.Ref("CapitalInfo")),
			skema.Field("postalCode", skema.Optional(skema.Ref("PostalCode"))),
		),
		"CapitalInfo": skema.Closed(skema.Field("latlng", numbers)),
		"Car": skema.Closed(
			skema.Field("signs", strings),
			skema.Field("side", skema.Ref("Side")),
		),
		"CoatOfArms": skema.Closed(
			skema.Field("png", skema.Optional(str)),
			skema.Field("svg", skema.Optional(str)),
		),
		"Currencies": skema.Closed(currencies...),
		"All": skema.Closed(
			skema.Field("name", str),
			skema.Field("symbol", str),
		),
		"BAM": skema.Closed(skema.Field("name", str)),
		"Demonyms": skema.Closed(
			skema.Field("eng", skema.Ref("Eng")),
			skema.Field("fra", skema.Optional(skema.Ref("Eng"))),
		),
		"Eng": skema.Closed(
			skema.Field("f", str),
			skema.Field("m", str),
		),
		"Flags": skema.Closed(
			skema.Field("png", str),
			skema.Field("svg", str),
			skema.Field("alt", skema.Optional(str)),
		),
		"Idd": skema.Closed(
			skema.Field("root", str),
			skema.Field("suffixes", strings),
		),
		"Maps": skema.Closed(
			skema.Field("googleMaps", str),
			skema.Field("openStreetMaps", str),
		),
		"Name": skema.Closed(
			skema.Field("common", str),
			skema.Field("official", str),
			skema.Field("nativeName", skema.MapOf(skema.Ref("Translation"))),
		),
		"Translation": skema.Closed(
			skema.Field("official", str),
			skema.Field("common", str),
		),
		"PostalCode": skema.Closed(
			skema.Field("format", str),
			skema.Field("regex", str),
		),
		"Side":        skema.Enum("left", "right"),
		"Region":      skema.Enum(RegionCases...),
		"StartOfWeek": skema.Enum("monday"),
		"Status":      skema.Enum("officially-assigned", "user-assigned"),
		"Subregion": skema.Enum(
			"Central Europe",
			"Eastern Europe",
			"Northern Europe",
			"Southeast Europe",
			"Southern Europe",
			"Western Europe",
		),
	}
}

var (
	registry = skema.MustRegistry(definitions())
	codec    = skema.NewCodec(registry, "Country")
)

// Schema returns the registry holding the Country type graph.
func Schema() *skema.Registry { return registry }

// Codec returns the shared codec for Country arrays.
func Codec() *skema.Codec { return codec }

// NewCodec builds a Country codec with custom options.
func NewCodec(opts ...skema.Options) *skema.Codec {
	return skema.NewCodec(registry, "Country", opts...)
}
