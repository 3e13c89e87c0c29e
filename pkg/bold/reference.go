package bold

import (
	"fmt"
	"slices"
	"strings"
)

// Domain is a group of phyla that can be downloaded together.
type Domain int

const (
	Animals Domain = iota
	Plants
	Fungi
	Protists
)

// Domains returns all known domains.
func Domains() []Domain {
	return []Domain{Animals, Plants, Fungi, Protists}
}

// String returns the name of a domain as used on command line.
func (d Domain) String() string {
	switch d {
	case Animals:
		return "animals"
	case Plants:
		return "plants"
	case Fungi:
		return "fungi"
	case Protists:
		return "protists"
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}

// Phyla returns a copy of the phyla that belong to the domain.
func (d Domain) Phyla() []string {
	return slices.Clone(domainPhyla[d])
}

// ParseDomain converts a name to a Domain.
func ParseDomain(s string) (Domain, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range Domains() {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown domain '%s'", s)
}

// ParseDomains converts names to domains. The name "all" expands to
// every domain.
func ParseDomains(ss []string) ([]Domain, error) {
	var res []Domain
	for _, v := range ss {
		if strings.EqualFold(strings.TrimSpace(v), "all") {
			return Domains(), nil
		}
		d, err := ParseDomain(v)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

// Countries returns a copy of geographic locations known to BOLD.
func Countries() []string {
	return slices.Clone(countries)
}

var domainPhyla = map[Domain][]string{
	Animals: {
		"Acanthocephala", "Acoelomorpha", "Annelida", "Arthropoda",
		"Brachiopoda", "Bryozoa", "Chaetognatha", "Chordata", "Cnidaria",
		"Ctenophora", "Cycliophora", "Echinodermata", "Entoprocta",
		"Gastrotricha", "Gnathostomulida", "Hemichordata", "Kinorhyncha",
		"Mollusca", "Nematoda", "Nematomorpha", "Nemertea", "Onychophora",
		"Phoronida", "Placozoa", "Platyhelminthes", "Porifera",
		"Priapulida", "Rhombozoa", "Rotifera", "Sipuncula", "Tardigrada",
		"Xenacoelomorpha",
	},
	Plants: {
		"Bryophyta", "Chlorophyta", "Lycopodiophyta", "Magnoliophyta",
		"Pinophyta", "Pteridophyta", "Rhodophyta",
	},
	Fungi: {
		"Ascomycota", "Basidiomycota", "Chytridiomycota", "Glomeromycota",
		"Myxomycota", "Zygomycota",
	},
	Protists: {
		"Chlorarachniophyta", "Ciliophora", "Heterokontophyta",
		"Pyrrophycophyta",
	},
}

var countries = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola", "Antarctica",
	"Antigua and Barbuda", "Argentina", "Armenia", "Australia", "Austria",
	"Azerbaijan", "Bahamas", "Bangladesh", "Belarus", "Belgium", "Belize",
	"Benin", "Bermuda", "Bhutan", "Bolivia", "Bosnia and Herzegovina",
	"Botswana", "Brazil", "British Virgin Islands", "Brunei", "Bulgaria",
	"Burkina Faso", "Burundi", "Cambodia", "Cameroon", "Canada", "Cape Verde",
	"Caribbean Sea", "Cayman Islands", "Central African Republic", "Chile",
	"China", "Colombia", "Comoros", "Cook Islands", "Costa Rica",
	"Cote d'Ivoire", "Croatia", "Cuba", "Cyprus", "Czech Republic",
	"Democratic Republic of the Congo", "Denmark", "Dominican Republic",
	"Ecuador", "Egypt", "El Salvador", "Equatorial Guinea", "Estonia",
	"Ethiopia", "Faeroe Islands", "Fiji", "Finland", "France",
	"French Guiana", "French Polynesia", "Gabon", "Georgia", "Germany",
	"Ghana", "Greece", "Greenland", "Guadeloupe", "Guatemala", "Guinea",
	"Guinea-Bissau", "Guyana", "Haiti", "Honduras", "Hungary", "Iceland",
	"India", "Indian Ocean", "Indonesia", "Iran", "Iraq", "Ireland", "Israel",
	"Italy", "Jamaica", "Japan", "Jordan", "Kazakhstan", "Kenya", "Kiribati",
	"Kosovo", "Kyrgyzstan", "Laos", "Latvia", "Lebanon", "Lesotho", "Liberia",
	"Libya", "Lithuania", "Luxembourg", "Macedonia", "Madagascar", "Malawi",
	"Malaysia", "Malta", "Marshall Islands", "Mauritius", "Mexico",
	"Micronesia", "Mongolia", "Montenegro", "Morocco", "Mozambique",
	"Myanmar", "Namibia", "Nepal", "Netherlands", "New Caledonia",
	"New Zealand", "Nicaragua", "Niger", "Nigeria", "North Atlantic Ocean",
	"North Korea", "Northern Mariana Islands", "Norway", "Oman",
	"Pacific Ocean", "Pakistan", "Palau", "Panama", "Papua New Guinea",
	"Paraguay", "Peru", "Philippines", "Poland", "Portugal", "Puerto Rico",
	"Republic of the Congo", "Romania", "Russia", "Rwanda",
	"Saint Helena Ascension and Tristan da Cunha", "Saint Kitts and Nevis",
	"Saint Lucia", "Saint Vincent and the Grenadines",
	"Sao Tome and Principe", "Saudi Arabia", "Senegal", "Serbia",
	"Seychelles", "Sierra Leone", "Slovakia", "Slovenia", "Solomon Islands",
	"South Africa", "South Georgia and the South Sandwich Islands",
	"South Korea", "Southern Ocean", "Spain", "Sri Lanka", "Sudan",
	"Suriname", "Swaziland", "Sweden", "Switzerland", "Syria", "Taiwan",
	"Tajikistan", "Tanzania", "Thailand", "Timor-Leste", "Togo", "Tonga",
	"Trinidad and Tobago", "Tunisia", "Turkey", "Turkmenistan", "Uganda",
	"Ukraine", "United Arab Emirates", "United Kingdom", "United States",
	"United States Virgin Islands", "Uruguay", "Uzbekistan", "Vanuatu",
	"Venezuela", "Vietnam", "Yemen", "Zambia", "Zimbabwe",
}
