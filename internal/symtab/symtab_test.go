package symtab_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrcpq/mytableau/internal/symtab"
)

func TestTopBottomReserved(t *testing.T) {
	tab := symtab.New()
	assert.Equal(t, symtab.Top, tab.Intern("Top"))
	assert.Equal(t, symtab.Bottom, tab.Intern("Bottom"))
	assert.Equal(t, "Top", tab.Name(symtab.Top))
	assert.Equal(t, "Bottom", tab.Name(symtab.Bottom))
}

func TestInternIsIdempotent(t *testing.T) {
	tab := symtab.New()
	a1 := tab.Intern("A")
	a2 := tab.Intern("A")
	assert.Equal(t, a1, a2)

	b := tab.Intern("B")
	assert.NotEqual(t, a1, b)
}

func TestLookupDoesNotAllocate(t *testing.T) {
	tab := symtab.New()
	before := tab.Len()
	_, ok := tab.Lookup("never-seen")
	assert.False(t, ok)
	assert.Equal(t, before, tab.Len())

	tab.Intern("X")
	id, ok := tab.Lookup("X")
	require.True(t, ok)
	assert.Equal(t, "X", tab.Name(id))
}

func TestFreshNamesAreDistinctAndSynthetic(t *testing.T) {
	tab := symtab.New()
	f1 := tab.Fresh()
	f2 := tab.Fresh()
	assert.NotEqual(t, f1, f2)
	assert.Equal(t, "autoname"+strconv.Itoa(int(f1)), tab.Name(f1))
}

func TestSnapshotIsIndependent(t *testing.T) {
	tab := symtab.New()
	tab.Intern("A")
	snap := tab.Snapshot()

	tab.Intern("B")
	_, ok := snap.Lookup("B")
	assert.False(t, ok, "mutating the original must not affect the snapshot")
}
