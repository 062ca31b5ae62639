package domain

import "strings"

// Place is a user-supplied name for an origin or destination.
// No validation is applied beyond requiring non-blank text.
type Place string

// Return the place with surrounding whitespace removed.
func (p Place) Trim() Place { return Place(strings.TrimSpace(string(p))) }

// Report whether the place names something.
func (p Place) Valid() bool { return p.Trim() != "" }

func (p Place) String() string { return string(p) }
