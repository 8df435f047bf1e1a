package strategy

import (
	"iter"
	"slices"

	"columngen/dtype"
)

// Builder creates a generator on demand for a parametrized family. It
// receives the inner dtype of the requested dtype, or the zero DataType when
// the request carries none.
type Builder func(inner dtype.DataType) (*Generator, error)

type entryTag int

const (
	tagReady entryTag = iota + 1
	tagDeferred
)

// Entry is a lookup binding: either a ready generator or a deferred Builder.
type Entry struct {
	tag   entryTag
	ready *Generator
	build Builder
}

// Ready binds a prebuilt generator.
func Ready(g *Generator) Entry {
	if g == nil {
		panic("strategy: Ready called with a nil generator")
	}

	return Entry{tag: tagReady, ready: g}
}

// Deferred binds a builder that is invoked on every resolution.
func Deferred(build Builder) Entry {
	if build == nil {
		panic("strategy: Deferred called with a nil builder")
	}

	return Entry{tag: tagDeferred, build: build}
}

// IsDeferred reports whether the entry builds its generator on demand.
func (e Entry) IsDeferred() bool { return e.tag == tagDeferred }

// Generator returns the bound generator of a ready entry.
func (e Entry) Generator() (*Generator, bool) {
	return e.ready, e.tag == tagReady
}

// resolve produces the generator for dt from this entry.
func (e Entry) resolve(dt dtype.DataType) (*Generator, error) {
	switch e.tag {
	case tagReady:
		return e.ready, nil
	case tagDeferred:
		inner, _ := dt.Inner()
		return e.build(inner)
	default:
		return nil, &UnsupportedTypeError{DataType: dt}
	}
}

// Lookup maps dtypes to generator entries, keeping insertion order.
//
// Keys compare structurally, so Datetime(ns) and the Datetime family are
// distinct keys. A Lookup is not safe for concurrent mutation.
type Lookup struct {
	keys    []dtype.DataType
	entries map[string]Entry
}

// NewLookup returns an empty lookup.
func NewLookup() *Lookup {
	return &Lookup{entries: make(map[string]Entry)}
}

// Set binds dt to e, replacing any previous binding in place.
func (l *Lookup) Set(dt dtype.DataType, e Entry) {
	key := dt.String()
	if _, ok := l.entries[key]; !ok {
		l.keys = append(l.keys, dt)
	}

	l.entries[key] = e
}

// Delete removes the binding for dt and reports whether one existed.
func (l *Lookup) Delete(dt dtype.DataType) bool {
	key := dt.String()
	if _, ok := l.entries[key]; !ok {
		return false
	}

	delete(l.entries, key)
	l.keys = slices.DeleteFunc(l.keys, func(k dtype.DataType) bool { return k.Equal(dt) })

	return true
}

// Entry returns the exact binding for dt.
func (l *Lookup) Entry(dt dtype.DataType) (Entry, bool) {
	e, ok := l.entries[dt.String()]
	return e, ok
}

// Has reports whether dt has an exact binding.
func (l *Lookup) Has(dt dtype.DataType) bool {
	_, ok := l.entries[dt.String()]
	return ok
}

// Get resolves the exact binding for dt. Deferred entries are invoked with
// dt's inner dtype, so every call builds a fresh generator.
func (l *Lookup) Get(dt dtype.DataType) (*Generator, error) {
	e, ok := l.Entry(dt)
	if !ok {
		return nil, &UnsupportedTypeError{DataType: dt}
	}

	return e.resolve(dt)
}

// Resolve is Get with a fallback to dt's base-type family.
func (l *Lookup) Resolve(dt dtype.DataType) (*Generator, error) {
	if e, ok := l.Entry(dt); ok {
		return e.resolve(dt)
	}

	if e, ok := l.Entry(dt.BaseType()); ok {
		return e.resolve(dt)
	}

	return nil, &UnsupportedTypeError{DataType: dt}
}

// Len returns the number of bindings.
func (l *Lookup) Len() int { return len(l.keys) }

// Keys returns the bound dtypes in insertion order.
func (l *Lookup) Keys() []dtype.DataType {
	return slices.Clone(l.keys)
}

// All iterates over bindings in insertion order.
func (l *Lookup) All() iter.Seq2[dtype.DataType, Entry] {
	return func(yield func(dtype.DataType, Entry) bool) {
		for _, k := range l.keys {
			if !yield(k, l.entries[k.String()]) {
				return
			}
		}
	}
}

// Update copies every binding of other into l, other winning on collision,
// and returns l.
func (l *Lookup) Update(other *Lookup) *Lookup {
	for k, e := range other.All() {
		l.Set(k, e)
	}

	return l
}

// Merge returns a new lookup holding the bindings of l and other; other's
// binding wins for keys present in both.
func (l *Lookup) Merge(other *Lookup) *Lookup {
	return NewLookup().Update(l).Update(other)
}

// Families returns the distinct base types of the bound dtypes, in order of
// first appearance.
func (l *Lookup) Families() []dtype.DataType {
	var out []dtype.DataType
	for _, k := range l.keys {
		base := k.BaseType()
		if !slices.ContainsFunc(out, base.Equal) {
			out = append(out, base)
		}
	}

	return out
}
