// Package core holds the domain model of the catalog: animal records,
// field resolution, and the filter engine that narrows a record set.
//
// It is agnostic to where records come from (JSON file, YAML file, memory)
// and to how the filtered set is presented.
package core

// Characteristics is the flexible attribute map nested under a record.
// Keys are attribute names (diet, type, skin_type, lifespan, ...).
type Characteristics map[string]string

// Record is one animal's structured attributes. Every field is optional:
// a record with no characteristics or no locations is valid and simply
// renders with the fields it has. Unknown keys in the source data are
// ignored during decoding.
type Record struct {
	Name            string          `json:"name,omitempty" yaml:"name,omitempty"`
	Characteristics Characteristics `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
	Locations       []string        `json:"locations,omitempty" yaml:"locations,omitempty"`
}

// PrimaryLocation returns the first entry of Locations, the only one that
// is ever consulted.
func (r Record) PrimaryLocation() (string, bool) {
	if len(r.Locations) == 0 {
		return "", false
	}
	return r.Locations[0], true
}
