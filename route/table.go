// Package route holds the frozen route table and the matcher that selects
// exactly one handler for an argument vector.
package route

import (
	"fmt"

	"github.com/routekit/routekit/convert"
	"github.com/routekit/routekit/pattern"
)

// Entry pairs a compiled pattern with an opaque handler reference. The
// matcher never interprets Handler; it is returned as-is on a match.
type Entry struct {
	Pattern *pattern.Compiled
	Handler any
}

// Table is the frozen, ordered route collection. Construction serializes
// and copies the entries; after BuildTable returns, the table and every
// compiled pattern in it are read-only and safe for unsynchronized
// concurrent Match calls. Declaration order is significant: it is the
// deterministic tie-break of last resort.
type Table struct {
	entries  []Entry
	registry *convert.Registry
}

// BuildTable freezes entries into a table. The registry is captured here
// so Match stays a pure function of (args, table); it must be the same
// registry the patterns were validated against. Entries with a nil
// compiled pattern are a programming error and rejected.
func BuildTable(entries []Entry, registry *convert.Registry) (*Table, error) {
	if registry == nil {
		registry = convert.NewRegistry()
	}
	frozen := make([]Entry, len(entries))
	copy(frozen, entries)
	for i, e := range frozen {
		if e.Pattern == nil {
			return nil, fmt.Errorf("entry %d: nil compiled pattern", i)
		}
	}
	return &Table{entries: frozen, registry: registry}, nil
}

// Len returns the number of routes in the table.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the table's entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
