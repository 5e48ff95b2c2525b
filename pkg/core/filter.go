package core

import "strings"

// Wildcard is the sentinel constraint value meaning "no narrowing". It is
// what the interactive menu stores when the user picks "all". An empty
// value is treated the same way so that unset flags never filter.
const Wildcard = "all"

// Constraint narrows the record set to records whose field equals Value
// exactly (case-sensitive, no trimming).
type Constraint struct {
	Field string
	Value string
}

func (c Constraint) isWildcard() bool {
	return c.Value == "" || c.Value == Wildcard
}

// Filters is an ordered conjunction of constraints. Order never affects
// the resulting set, only the sequence of narrowing passes.
type Filters []Constraint

// Set records a constraint for a field, replacing any earlier constraint
// on the same field while keeping its position.
func (f Filters) Set(field, value string) Filters {
	for i, c := range f {
		if c.Field == field {
			f[i].Value = value
			return f
		}
	}
	return append(f, Constraint{Field: field, Value: value})
}

// Apply narrows records to those matching every non-wildcard constraint,
// preserving the original relative order. A record missing a constrained
// field is excluded: absence never equals a concrete value. An empty
// filter set returns the input unchanged.
func (f Filters) Apply(records []Record) []Record {
	out := records
	for _, c := range f {
		if c.isWildcard() {
			continue
		}
		kept := make([]Record, 0, len(out))
		for _, r := range out {
			if v, ok := Value(r, c.Field); ok && v == c.Value {
				kept = append(kept, r)
			}
		}
		out = kept
	}
	return out
}

// Applied returns the non-wildcard subset of the filters, in order.
func (f Filters) Applied() Filters {
	var applied Filters
	for _, c := range f {
		if !c.isWildcard() {
			applied = append(applied, c)
		}
	}
	return applied
}

// Describe renders the non-wildcard constraints as "field: value" pairs
// joined by ", ", for status messages.
func (f Filters) Describe() string {
	applied := f.Applied()
	parts := make([]string, len(applied))
	for i, c := range applied {
		parts[i] = c.Field + ": " + c.Value
	}
	return strings.Join(parts, ", ")
}
