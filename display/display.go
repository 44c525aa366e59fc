// Package display renders a TestResults report to a terminal.
package display

import (
	"fmt"
	"strings"
)

// Level controls how much of the report is printed.
type Level int

const (
	// ShowAll prints every note and every test outcome.
	ShowAll Level = iota

	// NotesAndFails prints notes and failing tests only.
	NotesAndFails

	// JustFails prints failing tests only.
	JustFails
)

// ParseLevel maps a flag or config value to a Level. Accepted values
// are "all", "notes", and "fails" (or their first letters).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "a":
		return ShowAll, nil
	case "notes", "n":
		return NotesAndFails, nil
	case "fails", "f":
		return JustFails, nil
	}
	return ShowAll, fmt.Errorf("unknown display level %q: must be all, notes, or fails", s)
}

// String returns the canonical flag spelling of the level.
func (l Level) String() string {
	switch l {
	case NotesAndFails:
		return "notes"
	case JustFails:
		return "fails"
	default:
		return "all"
	}
}

// showsNotes reports whether notes are printed at this level.
func (l Level) showsNotes() bool {
	return l == ShowAll || l == NotesAndFails
}

// showsTest reports whether a test outcome with the given pass flag is
// printed at this level.
func (l Level) showsTest(pass bool) bool {
	return l == ShowAll || !pass
}
