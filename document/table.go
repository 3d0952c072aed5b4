package document

import (
	"strings"

	"github.com/LeiYangGH/dxf"
)

// TableObject is a named record shared by the entities of a document.
type TableObject[T any] interface {
	Clone() T
}

type record[T any] struct {
	value  T
	handle dxf.Handle
}

// Table owns the records of one symbol table. Names are case insensitive,
// as in DXF. Reads return clones; the table keeps the only reference to
// the stored record.
type Table[T TableObject[T]] struct {
	name    string
	nameOf  func(T) string
	keys    []string
	records map[string]*record[T]
	handle  dxf.Handle
}

func newTable[T TableObject[T]](name string, nameOf func(T) string) *Table[T] {
	return &Table[T]{
		name:    name,
		nameOf:  nameOf,
		records: make(map[string]*record[T]),
	}
}

func tableKey(name string) string {
	return strings.ToUpper(name)
}

// Add stores a clone of obj. It reports false, leaving the table
// unchanged, when a record with the same name exists.
func (this *Table[T]) Add(obj T) bool {
	key := tableKey(this.nameOf(obj))
	if _, ok := this.records[key]; ok {
		return false
	}
	this.records[key] = &record[T]{value: obj.Clone()}
	this.keys = append(this.keys, key)
	return true
}

// Get returns a clone of the named record.
func (this *Table[T]) Get(name string) (T, bool) {
	r, ok := this.records[tableKey(name)]
	if !ok {
		var zero T
		return zero, false
	}
	return r.value.Clone(), true
}

func (this *Table[T]) Contains(name string) bool {
	_, ok := this.records[tableKey(name)]
	return ok
}

// Names returns the record names in insertion order.
func (this *Table[T]) Names() []string {
	names := make([]string, len(this.keys))
	for i, key := range this.keys {
		names[i] = this.nameOf(this.records[key].value)
	}
	return names
}

func (this *Table[T]) Len() int {
	return len(this.keys)
}

// Handle returns the handle of the named record, zero before the first
// handle pass.
func (this *Table[T]) Handle(name string) dxf.Handle {
	if r, ok := this.records[tableKey(name)]; ok {
		return r.handle
	}
	return 0
}

// TableHandle returns the handle of the table object itself.
func (this *Table[T]) TableHandle() dxf.Handle {
	return this.handle
}

// assignHandles numbers the table, then its records in insertion order.
// Records keep handles from earlier passes.
func (this *Table[T]) assignHandles(next dxf.Handle) dxf.Handle {
	if this.handle == 0 {
		this.handle = next
		next++
	}
	for _, key := range this.keys {
		if r := this.records[key]; r.handle == 0 {
			r.handle = next
			next++
		}
	}
	return next
}

// pendingHandles is the number of handles the next pass consumes.
func (this *Table[T]) pendingHandles() uint64 {
	var n uint64
	if this.handle == 0 {
		n++
	}
	for _, r := range this.records {
		if r.handle == 0 {
			n++
		}
	}
	return n
}
