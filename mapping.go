package extend

import (
	"iter"

	"github.com/adobaai/extend/collections"
)

// MapExtender wraps an [Extender] of O and applies a mapper before passing
// elements to it. It is itself an Extender of I.
//
// The wrapper has exclusive use of the container until [MapExtender.Release].
// It is not safe for concurrent use.
type MapExtender[I, O any, E Extender[O]] struct {
	container E
	mapper    func(I) O
	released  bool
}

// NewMap wraps container with mapper.
//
// The mapper may be stateful; it is called once per absorbed element, in order,
// and keeps its state across calls to Extend.
func NewMap[I, O any, E Extender[O]](container E, mapper func(I) O) *MapExtender[I, O, E] {
	return &MapExtender[I, O, E]{
		container: container,
		mapper:    mapper,
	}
}

// Extend maps every element of seq and extends the container by the results.
//
// Elements are mapped on demand while the container pulls, nothing is buffered.
// A panic in the mapper or the container propagates to the caller, elements
// absorbed before it stay in the container.
func (m *MapExtender[I, O, E]) Extend(seq iter.Seq[I]) {
	if m.released {
		releasedPanic("MapExtender")
	}
	m.container.Extend(collections.MapSeq(seq, m.mapper))
}

// Release ends the wrapper and hands the container back to the caller.
// The wrapper must not be used afterwards.
func (m *MapExtender[I, O, E]) Release() E {
	if m.released {
		releasedPanic("MapExtender")
	}
	c := m.container
	var zero E
	m.container, m.mapper, m.released = zero, nil, true
	return c
}

// WithMap calls fn with container wrapped by mapper and releases the wrapper
// when fn returns or panics.
func WithMap[I, O any, E Extender[O]](container E, mapper func(I) O, fn func(Extender[I])) E {
	m := NewMap(container, mapper)
	defer m.Release()
	fn(m)
	return container
}
