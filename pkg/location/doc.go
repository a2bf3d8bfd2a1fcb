// Package location provides the read-only geographic reference data behind the
// registration form's cascading dropdowns: countries, their states, the cities
// of each state, and the international dialling prefix of every country.
//
// A Catalog is built once and never mutated. Every accessor returns a freshly
// allocated, alphabetically sorted slice, so callers may keep or modify the
// result without affecting other readers. Lookups for an unknown country or a
// state that does not belong to the given country yield an empty result rather
// than a default.
//
// # Usage
//
//	cat := location.Default()
//
//	for _, country := range cat.Countries() {
//	    fmt.Println(country)
//	}
//
//	states := cat.States("India")            // [Andhra Pradesh Delhi Gujarat ...]
//	cities := cat.Cities("India", "Gujarat") // [Ahmedabad Bhavnagar Jamnagar ...]
//	prefix, ok := cat.PhonePrefix("India")   // "+91", true
//
// Custom datasets can be supplied with New or loaded from YAML:
//
//	cat, err := location.LoadFile(ctx, "./locations.yaml")
//
// The YAML document is a list of countries:
//
//   - name: India
//     phone_prefix: "+91"
//     states:
//   - name: Gujarat
//     cities: [Ahmedabad, Surat]
//
// # Concurrency
//
// Catalog holds no mutable state; all methods are safe for concurrent use.
package location
