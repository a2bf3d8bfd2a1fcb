package location

import (
	"fmt"
	"slices"
	"strings"
)

// defaultPhoneHint is shown in the phone field while no country is selected.
const defaultPhoneHint = "+91 98765 43210"

// Country describes one catalog entry as authored.
type Country struct {
	Name        string  `yaml:"name"`
	PhonePrefix string  `yaml:"phone_prefix"`
	States      []State `yaml:"states"`
}

// State lists the cities of a single state or province.
type State struct {
	Name   string   `yaml:"name"`
	Cities []string `yaml:"cities"`
}

// Catalog is an immutable country → state → city lookup table with the
// dialling prefix of every country.
type Catalog struct {
	countries []string
	states    map[string][]string
	cities    map[string]map[string][]string
	prefixes  map[string]string
}

// New builds a catalog from the given countries.
// It rejects empty names, duplicate countries or states, states without
// cities and malformed phone prefixes.
func New(countries ...Country) (*Catalog, error) {
	if len(countries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		countries: make([]string, 0, len(countries)),
		states:    make(map[string][]string, len(countries)),
		cities:    make(map[string]map[string][]string, len(countries)),
		prefixes:  make(map[string]string, len(countries)),
	}

	for _, country := range countries {
		if strings.TrimSpace(country.Name) == "" {
			return nil, ErrEmptyName
		}
		if _, exists := c.prefixes[country.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCountry, country.Name)
		}
		if !validPrefix(country.PhonePrefix) {
			return nil, fmt.Errorf("%w: %s has %q", ErrInvalidPrefix, country.Name, country.PhonePrefix)
		}

		states := make([]string, 0, len(country.States))
		cities := make(map[string][]string, len(country.States))
		for _, state := range country.States {
			if strings.TrimSpace(state.Name) == "" {
				return nil, fmt.Errorf("%w: state of %s", ErrEmptyName, country.Name)
			}
			if _, exists := cities[state.Name]; exists {
				return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateState, state.Name, country.Name)
			}
			if len(state.Cities) == 0 {
				return nil, fmt.Errorf("%w: %s in %s", ErrEmptyState, state.Name, country.Name)
			}

			list := make([]string, 0, len(state.Cities))
			for _, city := range state.Cities {
				if strings.TrimSpace(city) == "" {
					return nil, fmt.Errorf("%w: city of %s, %s", ErrEmptyName, state.Name, country.Name)
				}
				list = append(list, city)
			}
			slices.Sort(list)
			cities[state.Name] = slices.Compact(list)
			states = append(states, state.Name)
		}
		slices.Sort(states)

		c.countries = append(c.countries, country.Name)
		c.states[country.Name] = states
		c.cities[country.Name] = cities
		c.prefixes[country.Name] = country.PhonePrefix
	}
	slices.Sort(c.countries)

	return c, nil
}

// MustNew works like New but panics on invalid input.
// Intended for package-level datasets that are known to be valid.
func MustNew(countries ...Country) *Catalog {
	c, err := New(countries...)
	if err != nil {
		panic(fmt.Sprintf("location: invalid catalog: %v", err))
	}
	return c
}

// Countries returns all country names in ascending order.
func (c *Catalog) Countries() []string {
	return slices.Clone(c.countries)
}

// States returns the states of country in ascending order, or an empty slice
// if the country is unknown.
func (c *Catalog) States(country string) []string {
	states, ok := c.states[country]
	if !ok {
		return []string{}
	}
	return slices.Clone(states)
}

// Cities returns the cities of state in ascending order. The result is empty
// when the country is unknown or the state does not belong to it.
func (c *Catalog) Cities(country, state string) []string {
	cities, ok := c.cities[country][state]
	if !ok {
		return []string{}
	}
	return slices.Clone(cities)
}

// PhonePrefix returns the dialling prefix of country, e.g. "+91".
func (c *Catalog) PhonePrefix(country string) (string, bool) {
	prefix, ok := c.prefixes[country]
	return prefix, ok
}

// PhoneHint returns the placeholder shown in the phone input for country.
func (c *Catalog) PhoneHint(country string) string {
	prefix, ok := c.prefixes[country]
	if !ok {
		return defaultPhoneHint
	}
	return prefix + " XXXXX XXXXX"
}

func (c *Catalog) HasCountry(country string) bool {
	_, ok := c.prefixes[country]
	return ok
}

func (c *Catalog) HasState(country, state string) bool {
	_, ok := c.cities[country][state]
	return ok
}

func (c *Catalog) HasCity(country, state, city string) bool {
	_, found := slices.BinarySearch(c.cities[country][state], city)
	return found
}

func validPrefix(prefix string) bool {
	digits, ok := strings.CutPrefix(prefix, "+")
	if !ok || digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
