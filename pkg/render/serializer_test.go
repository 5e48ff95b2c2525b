package render_test

import (
	"strings"
	"testing"

	"zoogen/pkg/core"
	"zoogen/pkg/render"
)

// assertOrder checks that the needles occur in the fragment in the given
// order, each after the end of the previous match.
func assertOrder(t *testing.T, fragment string, needles ...string) {
	t.Helper()
	rest := fragment
	for _, n := range needles {
		idx := strings.Index(rest, n)
		if idx < 0 {
			t.Fatalf("missing %q (in order) in fragment:\n%s", n, fragment)
		}
		rest = rest[idx+len(n):]
	}
}

func TestFragment_FullRecord(t *testing.T) {
	r := core.Record{
		Name:            "Fox",
		Characteristics: core.Characteristics{"diet": "Omnivore", "type": "Mammal"},
		Locations:       []string{"Forest"},
	}

	got := render.NewSerializer().Fragment(r)

	assertOrder(t, got,
		"<li class=\"cards__item\">",
		"Fox",
		"<ul class=\"card__details\">",
		"Diet: Omnivore",
		"Location: Forest",
		"Type: Mammal",
		"</ul>",
		"</li>",
	)
}

func TestFragment_FixedDetailOrder(t *testing.T) {
	r := core.Record{
		Name: "Pangolin",
		Characteristics: core.Characteristics{
			"lifespan":  "20 years",
			"skin_type": "Scales",
			"type":      "Mammal",
			"diet":      "Insectivore",
		},
		Locations: []string{"Savanna"},
	}

	got := render.NewSerializer().Fragment(r)

	assertOrder(t, got,
		"Diet: Insectivore",
		"Location: Savanna",
		"Type: Mammal",
		"Skin Type: Scales",
		"Lifespan: 20 years",
	)
}

func TestFragment_NameOnly(t *testing.T) {
	got := render.NewSerializer().Fragment(core.Record{Name: "Axolotl"})

	assertOrder(t, got,
		"<li class=\"cards__item\">",
		"Axolotl",
		"<ul class=\"card__details\">",
		"</ul>",
		"</li>",
	)
	for _, label := range []string{"Diet:", "Location:", "Type:", "Skin Type:", "Lifespan:"} {
		if strings.Contains(got, label) {
			t.Errorf("unexpected detail line %q for a name-only record", label)
		}
	}
}

func TestFragment_EmptyRecord(t *testing.T) {
	got := render.NewSerializer().Fragment(core.Record{})

	if strings.Contains(got, "card__title") {
		t.Error("empty record must not emit a title line")
	}
	assertOrder(t, got, "<li class=\"cards__item\">", "<ul class=\"card__details\">", "</ul>", "</li>")
}

func TestFragment_EscapesValues(t *testing.T) {
	r := core.Record{
		Name:            "<script>alert(1)</script>",
		Characteristics: core.Characteristics{"diet": "Fish & Chips"},
	}

	got := render.NewSerializer().Fragment(r)
	if strings.Contains(got, "<script>") {
		t.Error("markup-special characters must be escaped by default")
	}
	if !strings.Contains(got, "Diet: Fish &amp; Chips") {
		t.Errorf("expected escaped ampersand, got:\n%s", got)
	}
}

func TestFragment_VerbatimMode(t *testing.T) {
	r := core.Record{Characteristics: core.Characteristics{"diet": "Fish & Chips"}}

	got := render.Serializer{EscapeValues: false}.Fragment(r)
	if !strings.Contains(got, "Diet: Fish & Chips") {
		t.Errorf("verbatim mode must insert values untouched, got:\n%s", got)
	}
}
