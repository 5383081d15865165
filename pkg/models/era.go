package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Era is one of the fixed historical periods articles are grouped under.
type Era string

const (
	Ancient     Era = "ancient"
	MiddleAges  Era = "middle_ages"
	Renaissance Era = "renaissance"
	Modern      Era = "modern"
)

// DefaultEra is shown on page load and when a search is cleared.
const DefaultEra = Ancient

var eras = []Era{Ancient, MiddleAges, Renaissance, Modern}

// Eras returns every era in display order.
func Eras() []Era {
	out := make([]Era, len(eras))
	copy(out, eras)
	return out
}

// ParseEra looks up an era by its key. The second result is false for
// anything outside the enumerated set.
func ParseEra(key string) (Era, bool) {
	for _, e := range eras {
		if string(e) == key {
			return e, true
		}
	}
	return "", false
}

func (e Era) Valid() bool {
	_, ok := ParseEra(string(e))
	return ok
}

// Label is the human readable name, e.g. "middle_ages" -> "Middle Ages".
func (e Era) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(e), "_", " "))
}

func (e Era) String() string {
	return string(e)
}
