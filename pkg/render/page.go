package render

import "strings"

// Placeholder is the literal token in the template replaced by the
// concatenated card fragments.
const Placeholder = "__REPLACE_ANIMALS_INFO__"

// Assemble substitutes every occurrence of Placeholder in the template with
// the fragments joined with no separator, in record order.
//
// A template without the placeholder is returned unchanged. Older templates
// rely on this pass-through, so it is not an error here; callers that want
// stricter behavior can check HasPlaceholder first.
func Assemble(tmpl string, fragments []string) string {
	return strings.ReplaceAll(tmpl, Placeholder, strings.Join(fragments, ""))
}

// HasPlaceholder reports whether the template contains the substitution
// token at least once.
func HasPlaceholder(tmpl string) bool {
	return strings.Contains(tmpl, Placeholder)
}
