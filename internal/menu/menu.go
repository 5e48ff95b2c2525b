// Package menu implements the interactive filter picker: a terminal loop
// that lets the user constrain fields one by one before generation.
package menu

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"zoogen/pkg/core"
)

// ErrAborted is returned when the user quits the menu without confirming.
var ErrAborted = errors.New("filter selection aborted")

// Run presents the menu and returns the chosen constraints. The records
// are only consulted for their distinct field values.
func Run(records []core.Record) (core.Filters, error) {
	final, err := tea.NewProgram(newModel(records)).Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(model)
	if !ok || m.aborted {
		return nil, ErrAborted
	}
	return m.filters, nil
}
