package domain

import (
	"unicode"
	"unicode/utf8"
)

// StateDecl marks a field of the target as holding the current state name.
//
// Getter is untyped so that a mistyped accessor can still be declared.
// Any func with no parameters and a single string-kinded result is accepted,
// so named types such as `type Getter func() string` or `func() Color` work.
// Anything else is rejected at construction.
type StateDecl struct {
	Field  string       `json:"field" yaml:"field"`
	Getter any          `json:"-" yaml:"-"`
	Setter func(string) `json:"-" yaml:"-"`
}

// AccessorNames derives the conventional getter and setter names of a field:
// "state" yields "getState" and "setState".
func AccessorNames(field string) (getter, setter string) {
	name := Capitalize(field)
	return GetterPrefix + name, SetterPrefix + name
}

// Capitalize upper-cases the first letter of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Accessor reads and writes the current state of one target.
type Accessor struct {
	Get func() string
	Set func(string)
}

// Declaration is the complete metadata attached to a target.
// Slice order is the discovery order used during resolution.
type Declaration struct {
	Transitions []TransitionDecl `json:"transitions" yaml:"transitions"`
	States      []StateDecl      `json:"states" yaml:"states"`
}
