package country

// Country is the typed form of one restcountries record. Optional wire
// fields are pointers: nil means the key is absent, a pointer to an empty
// value means the key was present and empty.
type Country struct {
	Name         Name                   `json:"name"`
	TLD          *[]string              `json:"tld,omitempty"`
	CCA2         string                 `json:"cca2"`
	CCN3         *string                `json:"ccn3,omitempty"`
	CCA3         string                 `json:"cca3"`
	CIOC         *string                `json:"cioc,omitempty"`
	Independent  *bool                  `json:"independent,omitempty"`
	Status       string                 `json:"status"`
	UNMember     bool                   `json:"unMember"`
	Currencies   Currencies             `json:"currencies"`
	IDD          IDD                    `json:"idd"`
	Capital      []string               `json:"capital"`
	AltSpellings []string               `json:"altSpellings"`
	Region       string                 `json:"region"`
	Subregion    string                 `json:"subregion"`
	Languages    map[string]string      `json:"languages"`
	Translations map[string]Translation `json:"translations"`
	LatLng       []float64              `json:"latlng"`
	Landlocked   bool                   `json:"landlocked"`
	Borders      *[]string              `json:"borders,omitempty"`
	Area         float64                `json:"area"`
	Demonyms     Demonyms               `json:"demonyms"`
	Flag         string                 `json:"flag"`
	Maps         *Maps                  `json:"maps,omitempty"`
	Population   float64                `json:"population"`
	Gini         *map[string]float64    `json:"gini,omitempty"`
	FIFA         *string                `json:"fifa,omitempty"`
	Car          Car                    `json:"car"`
	Timezones    []string               `json:"timezones"`
	Continents   []string               `json:"continents"`
	Flags        Flags                  `json:"flags"`
	CoatOfArms   CoatOfArms             `json:"coatOfArms"`
	StartOfWeek  string                 `json:"startOfWeek"`
	CapitalInfo  CapitalInfo            `json:"capitalInfo"`
	PostalCode   *PostalCode            `json:"postalCode,omitempty"`
}

type Name struct {
	Common     string                 `json:"common"`
	Official   string                 `json:"official"`
	NativeName map[string]Translation `json:"nativeName"`
}

type Translation struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

// Currency is the {name, symbol} shape shared by every code except BAM.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// BAMCurrency carries no symbol.
type BAMCurrency struct {
	Name string `json:"name"`
}

type Currencies struct {
	EUR *Currency    `json:"EUR,omitempty"`
	RSD *Currency    `json:"RSD,omitempty"`
	MKD *Currency    `json:"MKD,omitempty"`
	ALL *Currency    `json:"ALL,omitempty"`
	CHF *Currency    `json:"CHF,omitempty"`
	DKK *Currency    `json:"DKK,omitempty"`
	MDL *Currency    `json:"MDL,omitempty"`
	UAH *Currency    `json:"UAH,omitempty"`
	GBP *Currency    `json:"GBP,omitempty"`
	RUB *Currency    `json:"RUB,omitempty"`
	PLN *Currency    `json:"PLN,omitempty"`
	BAM *BAMCurrency `json:"BAM,omitempty"`
	JEP *Currency    `json:"JEP,omitempty"`
	BYN *Currency    `json:"BYN,omitempty"`
	CZK *Currency    `json:"CZK,omitempty"`
	ISK *Currency    `json:"ISK,omitempty"`
	IMP *Currency    `json:"IMP,omitempty"`
	RON *Currency    `json:"RON,omitempty"`
	GIP *Currency    `json:"GIP,omitempty"`
	HUF *Currency    `json:"HUF,omitempty"`
	BGN *Currency    `json:"BGN,omitempty"`
	SEK *Currency    `json:"SEK,omitempty"`
	FOK *Currency    `json:"FOK,omitempty"`
	NOK *Currency    `json:"NOK,omitempty"`
	GGP *Currency    `json:"GGP,omitempty"`
}

type IDD struct {
	Root     string   `json:"root"`
	Suffixes []string `json:"suffixes"`
}

type Demonyms struct {
	Eng Demonym  `json:"eng"`
	Fra *Demonym `json:"fra,omitempty"`
}

type Demonym struct {
	F string `json:"f"`
	M string `json:"m"`
}

type Maps struct {
	GoogleMaps     string `json:"googleMaps"`
	OpenStreetMaps string `json:"openStreetMaps"`
}

type Car struct {
	Signs []string `json:"signs"`
	Side  string   `json:"side"`
}

type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt *string `json:"alt,omitempty"`
}

type CoatOfArms struct {
	PNG *string `json:"png,omitempty"`
	SVG *string `json:"svg,omitempty"`
}

type CapitalInfo struct {
	LatLng []float64 `json:"latlng"`
}

type PostalCode struct {
	Format string `json:"format"`
	Regex  string `json:"regex"`
}
