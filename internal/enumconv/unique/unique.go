// Package unique drops payload types which are held by more than one variant.
// An automatic conversion from or to such a type could not know which variant
// to pick.
package unique

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/enumconv/internal/enumconv/variants"
)

// State is the uniqueness state of a payload type.
type State int

const (
	// Unique means exactly one variant holds the type so far.
	Unique State = iota

	// NonUnique means two or more variants hold the type. It is absorbing: a
	// type never becomes unique again.
	NonUnique
)

func (s State) String() string {
	if s == Unique {
		return "unique"
	}
	return "non-unique"
}

// Record is the state of one payload type. Entry is set only while the state
// is [Unique].
type Record struct {
	State State
	Entry variants.Entry
}

// Table maps payload types, keyed by their structural form, to their records.
// Keys keep the order of first occurrence so that the output is stable, but
// callers should not rely on it matching the declaration order.
type Table struct {
	m *linkedhashmap.Map // key: string, value: Record
}

// Resolve reads entries once and builds the table. The first occurrence of a
// payload type inserts a unique record. Any later occurrence overwrites it
// with a non-unique one and the previously held entry is gone.
func Resolve(entries iter.Seq[variants.Entry]) *Table {
	t := &Table{m: linkedhashmap.New()}
	for e := range entries {
		key := e.Field.Type.String()
		if _, ok := t.m.Get(key); ok {
			t.m.Put(key, Record{State: NonUnique})
			continue
		}
		t.m.Put(key, Record{State: Unique, Entry: e})
	}
	return t
}

// Len returns the number of distinct payload types seen.
func (t *Table) Len() int { return t.m.Size() }

// Record returns the record of the payload type with the given key.
func (t *Table) Record(key string) (Record, bool) {
	r, ok := t.m.Get(key)
	if !ok {
		return Record{}, false
	}
	return r.(Record), true
}

// All iterates over every payload type key and its record.
func (t *Table) All() iter.Seq2[string, Record] {
	return func(yield func(string, Record) bool) {
		for it := t.m.Iterator(); it.Next(); {
			if !yield(it.Key().(string), it.Value().(Record)) {
				return
			}
		}
	}
}

// Entries returns the entries whose payload type is still unique.
func (t *Table) Entries() []variants.Entry {
	var entries []variants.Entry
	for _, r := range t.All() {
		if r.State == Unique {
			entries = append(entries, r.Entry)
		}
	}
	return entries
}

// Ambiguous returns the keys of the payload types dropped for being held by
// more than one variant.
func (t *Table) Ambiguous() []string {
	var keys []string
	for key, r := range t.All() {
		if r.State == NonUnique {
			keys = append(keys, key)
		}
	}
	return keys
}
