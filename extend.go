// Package extend provides adapters that map or filter elements on their way
// into an extendable container.
//
// An [Extender] absorbs a sequence of elements into its internal state.
// [MapExtender] and [FilterExtender] wrap one and are Extenders themselves,
// so they can be passed to any code that populates a plain Extender:
//
//	var ids extend.Slice[string]
//	m := extend.NewMap(&ids, strconv.Itoa)
//	fill(m) // fill(dst extend.Extender[int])
//	m.Release()
package extend

import (
	"iter"
	"slices"
)

// Extender is a container that can be extended by a sequence of elements.
//
// Extend absorbs the elements of seq in order. The sequence may be infinite,
// in which case Extend returns only if the container stops pulling.
type Extender[T any] interface {
	Extend(seq iter.Seq[T])
}

// ExtenderFunc adapts an ordinary function to an [Extender].
type ExtenderFunc[T any] func(seq iter.Seq[T])

func (f ExtenderFunc[T]) Extend(seq iter.Seq[T]) {
	f(seq)
}

// ExtendValues extends dst by the given elements.
func ExtendValues[T any](dst Extender[T], elems ...T) {
	dst.Extend(slices.Values(elems))
}

// Slice is a generic slice type that allows operations on slices via pointers.
//
// *Slice[T] implements [Extender].
type Slice[T any] []T

func (a *Slice[T]) Append(elems ...T) {
	*a = append(*a, elems...)
}

// Extend appends the elements of seq one by one, so the ones appended before a
// panic in seq are kept.
func (a *Slice[T]) Extend(seq iter.Seq[T]) {
	for it := range seq {
		*a = append(*a, it)
	}
}

func (a *Slice[T]) Get() []T {
	return *a
}

func releasedPanic(name string) {
	panic("extend: use of released " + name)
}
