// Package render turns filtered records into the final HTML page: one card
// fragment per animal, substituted into a template via a fixed placeholder.
package render

import (
	"html"
	"strings"

	"zoogen/pkg/core"
)

// detail is one labelled line of a card body, bound to the field it reads.
type detail struct {
	label string
	field string
}

// details enumerates the card lines in their fixed emission order.
var details = []detail{
	{"Diet", core.FieldDiet},
	{"Location", core.FieldLocation},
	{"Type", core.FieldType},
	{"Skin Type", core.FieldSkinType},
	{"Lifespan", core.FieldLifespan},
}

// Serializer renders one record as an HTML card fragment.
type Serializer struct {
	// EscapeValues controls whether field values are HTML-escaped before
	// insertion. Disable only to reproduce pages generated by the legacy
	// renderer byte for byte.
	EscapeValues bool
}

// NewSerializer returns a Serializer with escaping enabled.
func NewSerializer() Serializer {
	return Serializer{EscapeValues: true}
}

// Fragment renders a record. Lines whose source field the record does not
// carry are skipped entirely; the wrapping item and the details list are
// always emitted. Every input shape is handled by omission, never by error.
func (s Serializer) Fragment(r core.Record) string {
	var b strings.Builder
	b.WriteString("<li class=\"cards__item\">\n")
	if r.Name != "" {
		b.WriteString("<div class=\"card__title\">" + s.escape(r.Name) + "</div>\n")
	}
	b.WriteString("<ul class=\"card__details\">\n")
	for _, d := range details {
		if v, ok := core.Value(r, d.field); ok {
			b.WriteString("<li class=\"card__detail\">" + d.label + ": " + s.escape(v) + "</li>\n")
		}
	}
	b.WriteString("</ul>\n")
	b.WriteString("</li>\n")
	return b.String()
}

func (s Serializer) escape(v string) string {
	if !s.EscapeValues {
		return v
	}
	return html.EscapeString(v)
}
