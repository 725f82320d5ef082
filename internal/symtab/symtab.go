// Package symtab implements the bidirectional symbol table shared by the
// formula model and the prover: a dense integer id space for atomic concept
// names, role names, and individual names, with ids 0 and 1 permanently
// reserved for Top and Bottom.
package symtab

import "fmt"

// ID is a dense non-negative symbol identifier.
type ID int

// Reserved ids, per spec: Top and Bottom always occupy 0 and 1.
const (
	Top    ID = 0
	Bottom ID = 1
)

const notFound = "NotFound"

// Table maps identifier strings to dense ids and back.
type Table struct {
	names []string
	ids   map[string]ID
	next  int
}

// New returns a Table with Top and Bottom pre-registered.
func New() *Table {
	t := &Table{
		names: make([]string, 2, 64),
		ids:   make(map[string]ID, 64),
		next:  2,
	}
	t.names[Top] = "Top"
	t.names[Bottom] = "Bottom"
	t.ids["Top"] = Top
	t.ids["Bottom"] = Bottom
	return t
}

// Intern returns the id for name, allocating a new one if it hasn't been
// seen before. "Top" and "Bottom" always resolve to the reserved ids.
func (t *Table) Intern(name string) ID {
	switch name {
	case "Top":
		return Top
	case "Bottom":
		return Bottom
	}
	if id, ok := t.ids[name]; ok {
		return id
	}
	return t.register(name)
}

// Fresh allocates a new id with a synthetic name (autoname<id>) and no
// caller-supplied text. Used for the unnamed individuals an Exist
// expansion creates.
func (t *Table) Fresh() ID {
	id := ID(t.next)
	name := fmt.Sprintf("autoname%d", int(id))
	t.next++
	t.names = append(t.names, name)
	t.ids[name] = id
	return id
}

func (t *Table) register(name string) ID {
	id := ID(t.next)
	t.next++
	t.names = append(t.names, name)
	t.ids[name] = id
	return id
}

// Lookup returns the id for name without allocating, reporting whether it
// is already registered.
func (t *Table) Lookup(name string) (ID, bool) {
	switch name {
	case "Top":
		return Top, true
	case "Bottom":
		return Bottom, true
	}
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the registered textual name for id, or the "NotFound"
// sentinel if id was never interned.
func (t *Table) Name(id ID) string {
	if int(id) < 0 || int(id) >= len(t.names) {
		return notFound
	}
	return t.names[id]
}

// Len reports how many ids have been issued, including Top and Bottom.
func (t *Table) Len() int { return len(t.names) }

// Snapshot returns a deep copy of the table, so a caller can re-run a
// proof from a copy of the symbol space without mutating the original.
func (t *Table) Snapshot() *Table {
	names := make([]string, len(t.names))
	copy(names, t.names)
	ids := make(map[string]ID, len(t.ids))
	for k, v := range t.ids {
		ids[k] = v
	}
	return &Table{names: names, ids: ids, next: t.next}
}
