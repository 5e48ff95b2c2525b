package core

import "sort"

// Well-known field names.
const (
	FieldDiet     = "diet"
	FieldType     = "type"
	FieldSkinType = "skin_type"
	FieldLifespan = "lifespan"
	FieldLocation = "location"
)

// FilterableFields lists the fields exposed to the interactive menu, in
// display order.
var FilterableFields = []string{FieldSkinType, FieldDiet, FieldType, FieldLocation}

// accessor resolves one field against a record. The boolean reports true
// presence: false means the record simply does not carry the field.
type accessor func(Record) (string, bool)

// accessors maps the fields that do NOT live under Characteristics to
// their extraction strategy. Everything absent from this table falls back
// to a Characteristics lookup.
var accessors = map[string]accessor{
	FieldLocation: Record.PrimaryLocation,
}

// Value resolves a named field against a record. "location" reads the
// primary location; any other field reads Characteristics[field]. Absence
// is not an error; it is reported through the boolean so callers can skip
// the field entirely.
func Value(r Record, field string) (string, bool) {
	if fn, ok := accessors[field]; ok {
		return fn(r)
	}
	if r.Characteristics == nil {
		return "", false
	}
	v, ok := r.Characteristics[field]
	return v, ok
}

// UniqueValues returns the distinct values observed for a field across all
// records, sorted lexicographically ascending. Records without the field
// contribute nothing.
func UniqueValues(records []Record, field string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range records {
		v, ok := Value(r, field)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
