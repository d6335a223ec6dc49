package extend

import (
	"iter"

	"github.com/adobaai/extend/collections"
)

// FilterExtender wraps an [Extender] of T and only passes the elements that
// the filter returns true for.
//
// The wrapper has exclusive use of the container until [FilterExtender.Release].
// It is not safe for concurrent use.
type FilterExtender[T any, E Extender[T]] struct {
	container E
	filter    func(T) bool
	released  bool
}

// NewFilter wraps container with filter.
//
// The filter receives a copy of each element and may be stateful;
// it is called once per candidate element, in order.
func NewFilter[T any, E Extender[T]](container E, filter func(T) bool) *FilterExtender[T, E] {
	return &FilterExtender[T, E]{
		container: container,
		filter:    filter,
	}
}

// Extend extends the container by the elements of seq that pass the filter,
// keeping their relative order. Rejected elements are dropped.
//
// A panic in the filter or the container propagates to the caller, elements
// absorbed before it stay in the container.
func (f *FilterExtender[T, E]) Extend(seq iter.Seq[T]) {
	if f.released {
		releasedPanic("FilterExtender")
	}
	f.container.Extend(collections.FilterSeq(seq, f.filter))
}

// Release ends the wrapper and hands the container back to the caller.
// The wrapper must not be used afterwards.
func (f *FilterExtender[T, E]) Release() E {
	if f.released {
		releasedPanic("FilterExtender")
	}
	c := f.container
	var zero E
	f.container, f.filter, f.released = zero, nil, true
	return c
}

// WithFilter calls fn with container wrapped by filter and releases the wrapper
// when fn returns or panics.
func WithFilter[T any, E Extender[T]](container E, filter func(T) bool, fn func(Extender[T])) E {
	f := NewFilter(container, filter)
	defer f.Release()
	fn(f)
	return container
}
