package xfont

import (
	"slices"

	"github.com/gogpu/xfont/atom"
)

// FontProperty is a FONTPROP: a property name atom and its value. For the
// FONT property the value is also an atom.
type FontProperty struct {
	Name  atom.Atom
	Value atom.Atom
}

// PropertyTable maps property name atoms to values in insertion order.
// It is filled while a font is built and read-only afterwards.
type PropertyTable struct {
	props []FontProperty
}

// add appends a property. A name that is already present keeps its first
// value.
func (t *PropertyTable) add(name, value atom.Atom) bool {
	if _, ok := t.Get(name); ok {
		return false
	}
	t.props = append(t.props, FontProperty{Name: name, Value: value})
	return true
}

// Get returns the value stored for name.
func (t PropertyTable) Get(name atom.Atom) (atom.Atom, bool) {
	for _, p := range t.props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return atom.None, false
}

// Len returns the number of properties.
func (t PropertyTable) Len() int {
	return len(t.props)
}

// All returns a copy of the properties in insertion order.
func (t PropertyTable) All() []FontProperty {
	return slices.Clone(t.props)
}
