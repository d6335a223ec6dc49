// Package collections provides some useful functions for working with data structures
// that contain multiple elements.
//
// Many languages have their own collection library:
//   - C#: https://learn.microsoft.com/en-us/dotnet/csharp/programming-guide/concepts/collections
//   - Rust: https://doc.rust-lang.org/std/collections/index.html
//   - Swift: https://github.com/apple/swift-collections
//   - Kotlin: https://kotlinlang.org/api/latest/jvm/stdlib/kotlin.collections/
//   - Python3: https://docs.python.org/3/library/collections.html
package collections

import (
	"iter"
	"slices"
)

// Filter iterates over items, returning an array of all items predicate returns truthy for.
func Filter[V any](items []V, predicate func(it V) bool) []V {
	return slices.AppendSeq(make([]V, 0, len(items)), FilterSeq(slices.Values(items), predicate))
}

// Map returns a slice containing the results of applying the given transform function
// to each item in the original slice.
func Map[T, R any](items []T, transform func(it T) R) []R {
	return slices.AppendSeq(make([]R, 0, len(items)), MapSeq(slices.Values(items), transform))
}

// FilterSeq returns a sequence yielding the items of seq that predicate returns truthy for.
//
// The predicate is called lazily, once per item, while the result is being ranged over.
func FilterSeq[V any](seq iter.Seq[V], predicate func(it V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := range seq {
			if predicate(it) && !yield(it) {
				return
			}
		}
	}
}

// MapSeq returns a sequence yielding transform applied to each item of seq.
//
// The transform is called lazily, once per item, while the result is being ranged over.
func MapSeq[T, R any](seq iter.Seq[T], transform func(it T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for it := range seq {
			if !yield(transform(it)) {
				return
			}
		}
	}
}
