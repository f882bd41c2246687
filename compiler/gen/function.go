package gen

// ReturnKind identifies what a generated function returns.
type ReturnKind int

const (
	// ReturnCountry marks a function returning one country record.
	ReturnCountry ReturnKind = iota + 1
	// ReturnSubdivisions marks a function returning a list of subdivisions.
	ReturnSubdivisions
)

// Function is one generated zero-argument function. The body is kept as
// typed data; every backend renders it in its own language.
type Function struct {
	Name    string
	Doc     string
	Returns ReturnKind

	// Country is set for ReturnCountry functions.
	Country *CountryRecord
	// Subdivisions is set for ReturnSubdivisions functions.
	Subdivisions []SubdivisionRecord
}

// CountryRecord is the body of a country function. Enum fields hold member
// identifiers of the graph enums, Subdivisions holds the name of the
// subdivision function or is empty.
type CountryRecord struct {
	AddressFormat                  string   `yaml:"addressFormat"`
	Alpha2                         string   `yaml:"alpha2"`
	Alpha3                         string   `yaml:"alpha3"`
	Continent                      string   `yaml:"continent"`
	CountryCode                    string   `yaml:"countryCode"`
	CurrencyCode                   string   `yaml:"currencyCode"`
	Emoji                          string   `yaml:"emoji"`
	GEC                            string   `yaml:"gec"`
	InternationalPrefix            string   `yaml:"internationalPrefix"`
	IOC                            string   `yaml:"ioc"`
	LanguagesOfficial              []string `yaml:"languagesOfficial"`
	LanguagesSpoken                []string `yaml:"languagesSpoken"`
	LocalNames                     []string `yaml:"localNames"`
	Name                           string   `yaml:"name"`
	NANPPrefix                     string   `yaml:"nanpPrefix"`
	NationalDestinationCodeLengths []int    `yaml:"nationalDestinationCodeLengths"`
	NationalNumberLengths          []int    `yaml:"nationalNumberLengths"`
	NationalPrefix                 string   `yaml:"nationalPrefix"`
	Nationality                    string   `yaml:"nationality"`
	Number                         string   `yaml:"number"`
	PostalCode                     bool     `yaml:"postalCode"`
	PostalCodeFormat               string   `yaml:"postalCodeFormat"`
	Region                         string   `yaml:"region"`
	StartOfWeek                    string   `yaml:"startOfWeek"`
	Subdivisions                   string   `yaml:"subdivisions"`
	Subregion                      string   `yaml:"subregion"`
	UNLocode                       string   `yaml:"unLocode"`
	UnofficialNames                []string `yaml:"unofficialNames"`
	WorldRegion                    string   `yaml:"worldRegion"`
}

// SubdivisionRecord is one element of a subdivision function body.
type SubdivisionRecord struct {
	Name            string   `yaml:"name"`
	Code            string   `yaml:"code"`
	UnofficialNames []string `yaml:"unofficialNames"`
}
