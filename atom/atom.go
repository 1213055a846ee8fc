// Package atom interns strings as X11 atoms.
//
// A Table is owned by the server session that creates fonts and is passed to
// font construction explicitly. It comes pre-seeded with the protocol's
// predefined atoms, so FONT is always atom 18.
package atom

import "sync"

// Atom is an interned string identifier. None (0) is never assigned.
type Atom uint32

// None is the reserved zero atom.
const None Atom = 0

// Manager interns atom names. InternAtom is idempotent: the same name always
// yields the same atom.
type Manager interface {
	InternAtom(name string) Atom
}

// Table is the in-memory Manager. It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	ids   map[string]Atom
	names []string // index i holds the name of atom i; names[0] is unused
}

// NewTable returns a table holding the predefined atoms.
func NewTable() *Table {
	t := &Table{
		ids:   make(map[string]Atom, len(predefined)+1),
		names: make([]string, 1, len(predefined)+64),
	}
	for _, name := range predefined {
		t.names = append(t.names, name)
		t.ids[name] = Atom(len(t.names) - 1)
	}
	return t
}

// InternAtom returns the atom for name, allocating the next free id when the
// name is new.
func (t *Table) InternAtom(name string) Atom {
	t.mu.RLock()
	a, ok := t.ids[name]
	t.mu.RUnlock()
	if ok {
		return a
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if a, ok := t.ids[name]; ok {
		return a
	}
	t.names = append(t.names, name)
	a = Atom(len(t.names) - 1)
	t.ids[name] = a
	return a
}

// Lookup returns the atom for name without interning it.
func (t *Table) Lookup(name string) (Atom, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	a, ok := t.ids[name]
	return a, ok
}

// Name returns the name of atom a (GetAtomName).
func (t *Table) Name(a Atom) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if a == None || int(a) >= len(t.names) {
		return "", false
	}
	return t.names[a], true
}

// Len returns the number of interned atoms, predefined ones included.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names) - 1
}
