package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"zoogen/pkg/core"
)

// phase tracks which list the cursor is moving through.
type phase int

const (
	phaseField phase = iota
	phaseValue
)

// fieldChoice pairs a menu label with the record field it narrows.
type fieldChoice struct {
	label string
	field string
}

// fieldLabels maps record fields to their menu labels.
var fieldLabels = map[string]string{
	core.FieldSkinType: "Skin Type",
	core.FieldDiet:     "Diet",
	core.FieldType:     "Type",
	core.FieldLifespan: "Lifespan",
	core.FieldLocation: "Location",
}

var fieldChoices = buildFieldChoices()

func buildFieldChoices() []fieldChoice {
	choices := make([]fieldChoice, 0, len(core.FilterableFields))
	for _, f := range core.FilterableFields {
		choices = append(choices, fieldChoice{label: fieldLabels[f], field: f})
	}
	return choices
}

// doneLabel terminates the selection loop.
const doneLabel = "Done"

// allLabel is the wildcard entry shown before the concrete values.
const allLabel = "all"

type model struct {
	records []core.Record

	phase  phase
	cursor int

	// state of the value phase
	current fieldChoice
	values  []string

	filters core.Filters
	aborted bool
	styles  styles
}

func newModel(records []core.Record) model {
	return model{
		records: records,
		styles:  defaultStyles(),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// items returns the entries of the active list.
func (m model) items() []string {
	if m.phase == phaseValue {
		return append([]string{allLabel}, m.values...)
	}
	items := make([]string, 0, len(fieldChoices)+1)
	for _, fc := range fieldChoices {
		items = append(items, fc.label)
	}
	return append(items, doneLabel)
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}

	case "enter":
		return m.choose()
	}

	return m, nil
}

// choose applies the entry under the cursor.
func (m model) choose() (tea.Model, tea.Cmd) {
	if m.phase == phaseField {
		if m.cursor == len(fieldChoices) { // Done
			return m, tea.Quit
		}
		m.current = fieldChoices[m.cursor]
		m.values = core.UniqueValues(m.records, m.current.field)
		m.phase = phaseValue
		m.cursor = 0
		return m, nil
	}

	value := core.Wildcard
	if m.cursor > 0 {
		value = m.values[m.cursor-1]
	}
	m.filters = m.filters.Set(m.current.field, value)
	m.phase = phaseField
	m.cursor = 0
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder

	if m.phase == phaseField {
		b.WriteString(m.styles.title.Render("Filter animals by:"))
	} else {
		b.WriteString(m.styles.title.Render("Select a " + m.current.label + " (or \"all\"):"))
	}
	b.WriteString("\n\n")

	for i, item := range m.items() {
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}

	if desc := m.filters.Describe(); desc != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.applied.Render("applied: " + desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("up/down: move • enter: select • q: abort"))
	b.WriteString("\n")
	return b.String()
}
