package goresults

import (
	"golang.org/x/exp/slices"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type MapperFunc[T any, U any] func(elem T, index uint64) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type PredicateFunc[T any] func(elem T, index uint64) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(elem T, _ uint64) U {
		return mapp(elem)
	}
}

// Map returns a producer that calls mapp for each element produced by prod, mapping it to type U.
func Map[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, U]) ProducerFunc[U] {
	index := uint64(0)

	return func() (U, bool) {
		elem, ok := prod()
		if !ok {
			var zero U
			return zero, false
		}

		outElem := mapp(elem, index)
		index++

		return outElem, true
	}
}

// Filter returns a producer that calls filter for each element produced by prod, and only produces elements for which
// filter returns true.
// A single pull may consume any number of upstream elements before one passes the filter.
func Filter[T any](prod ProducerFunc[T], filter PredicateFunc[T]) ProducerFunc[T] {
	index := uint64(0)

	return func() (T, bool) {
		for {
			elem, ok := prod()
			if !ok {
				var zero T
				return zero, false
			}

			filterResult := filter(elem, index)
			index++

			if filterResult {
				return elem, true
			}
		}
	}
}

// Peek returns a producer that calls peek for each element produced by prod, in order, and produces the same elements.
// If peek returns false, the new producer is exhausted without producing the peeked element,
// and prod is not pulled any further.
func Peek[T any](prod ProducerFunc[T], peek ConsumerFunc[T]) ProducerFunc[T] {
	index := uint64(0)

	stopped := false

	return func() (T, bool) {
		if stopped {
			var zero T
			return zero, false
		}

		elem, ok := prod()
		if !ok {
			stopped = true

			var zero T
			return zero, false
		}

		if !peek(elem, index) {
			stopped = true

			var zero T
			return zero, false
		}

		index++

		return elem, true
	}
}

// Limit returns a producer that produces the same elements as prod, in order, up to max elements.
// Once the limit is reached, prod is never pulled again.
func Limit[T any](prod ProducerFunc[T], max uint64) ProducerFunc[T] {
	done := uint64(0)

	return func() (T, bool) {
		if done >= max {
			var zero T
			return zero, false
		}

		elem, ok := prod()
		if !ok {
			done = max

			var zero T
			return zero, false
		}

		done++

		return elem, true
	}
}

// Skip returns a producer that produces the same elements as prod, in order, skipping the first num elements.
// The skipped elements are pulled lazily, on the first pull of the new producer.
// Once prod is exhausted, it is never pulled again.
func Skip[T any](prod ProducerFunc[T], num uint64) ProducerFunc[T] {
	done := uint64(0)

	exhausted := false

	return func() (T, bool) {
		if exhausted {
			var zero T
			return zero, false
		}

		for done < num {
			if _, ok := prod(); !ok {
				exhausted = true
				done = num

				var zero T
				return zero, false
			}

			done++
		}

		elem, ok := prod()
		if !ok {
			exhausted = true
		}

		return elem, ok
	}
}

// Sort returns a producer that consumes all elements from prod on its first pull, sorts them using sort,
// and produces them in sorted order.
func Sort[T any](prod ProducerFunc[T], sort LessFunc[T]) ProducerFunc[T] {
	var sorted ProducerFunc[T]

	return func() (T, bool) {
		if sorted == nil {
			result := []T{}

			for {
				elem, ok := prod()
				if !ok {
					break
				}

				result = append(result, elem)
			}

			slices.SortFunc(result, func(a T, b T) bool {
				return sort(a, b)
			})

			sorted = Produce(result)
		}

		return sorted()
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T, _ uint64) T {
		return elem
	}
}
