package load

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Country represents one ISO 3166-1 record as it was loaded from the dataset.
// Field names follow the dataset keys; the loader performs no validation.
type Country struct {
	Alpha2                         string     `yaml:"alpha2"`
	Alpha3                         string     `yaml:"alpha3"`
	Number                         string     `yaml:"number"`
	Name                           string     `yaml:"name"`
	Continent                      string     `yaml:"continent"`
	Region                         string     `yaml:"region"`
	Subregion                      string     `yaml:"subregion"`
	WorldRegion                    string     `yaml:"world_region"`
	CountryCode                    string     `yaml:"country_code"`
	CurrencyCode                   string     `yaml:"currency_code"`
	EmojiFlag                      string     `yaml:"emoji_flag"`
	GEC                            string     `yaml:"gec"`
	IOC                            string     `yaml:"ioc"`
	UNLocode                       string     `yaml:"un_locode"`
	InternationalPrefix            string     `yaml:"international_prefix"`
	NANPPrefix                     string     `yaml:"nanp_prefix"`
	NationalPrefix                 string     `yaml:"national_prefix"`
	NationalDestinationCodeLengths []int      `yaml:"national_destination_code_lengths"`
	NationalNumberLengths          []int      `yaml:"national_number_lengths"`
	LanguagesOfficial              StringList `yaml:"languages_official"`
	LanguagesSpoken                StringList `yaml:"languages_spoken"`
	LocalNames                     StringList `yaml:"local_names"`
	UnofficialNames                StringList `yaml:"unofficial_names"`
	AddressFormat                  string     `yaml:"address_format"`
	PostalCode                     bool       `yaml:"postal_code"`
	PostalCodeFormat               string     `yaml:"postal_code_format"`
	Nationality                    string     `yaml:"nationality"`
	StartOfWeek                    string     `yaml:"start_of_week"`

	// Subdivisions in dataset document order. Filled from the
	// subdivisions/<ALPHA2>.yaml file, not from the country file.
	Subdivisions []*Subdivision `yaml:"-"`
}

// HasSubdivisions reports if the country has at least one subdivision,
// named or not.
func (c *Country) HasSubdivisions() bool {
	return len(c.Subdivisions) > 0
}

// Emoji returns the flag emoji of the country. When the dataset does not
// carry one, it is composed from the regional indicator symbols of alpha2.
func (c *Country) Emoji() string {
	if c.EmojiFlag != "" {
		return c.EmojiFlag
	}
	code := strings.ToUpper(strings.TrimSpace(c.Alpha2))
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + r - 'A')
	}
	return b.String()
}

// Subdivision represents one ISO 3166-2 entry of a country.
type Subdivision struct {
	Code            string     `yaml:"-"`
	Name            string     `yaml:"name"`
	UnofficialNames StringList `yaml:"unofficial_names"`
}

// StringList is a list of strings that also accepts a single scalar
// (a one-element list) or null (an empty list) in the dataset.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" || value.Value == "" {
			*l = nil
			return nil
		}
		*l = StringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var s []string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = s
		return nil
	default:
		return &yaml.TypeError{Errors: []string{"expected a string or a list of strings"}}
	}
}
