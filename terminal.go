package goresults

// ConsumerFunc consumes element elem, returning true to keep the stream going,
// or false to stop it: no further element will be pulled from the upstream producer.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type ConsumerFunc[T any] func(elem T, index uint64) bool

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type AccumulatorFunc[T any, A any] func(elem T, index uint64, acc A) A

// Reduce calls reduce for each element produced by prod, folding it into accumulator acc,
// returning the final accumulator.
func Reduce[T any, A any](prod ProducerFunc[T], acc A, reduce AccumulatorFunc[T, A]) A {
	Each(prod, func(elem T, index uint64) bool {
		acc = reduce(elem, index, acc)

		return true
	})

	return acc
}

// ReduceSlice collects the elements produced by prod into a slice, in order.
func ReduceSlice[T any](prod ProducerFunc[T]) []T {
	return Reduce(prod, nil, CollectSlice[T]())
}

// Each calls each for each element produced by prod, draining it.
// If each returns false, the stream stops and prod is not pulled any further.
func Each[T any](prod ProducerFunc[T], each ConsumerFunc[T]) {
	index := uint64(0)

	for {
		elem, ok := prod()
		if !ok {
			return
		}

		if !each(elem, index) {
			return
		}

		index++
	}
}

// AnyMatch returns true as soon as pred returns true for an element produced by prod, that is, an element matches.
// If an element matches, prod is not pulled any further.
func AnyMatch[T any](prod ProducerFunc[T], pred PredicateFunc[T]) bool {
	index := uint64(0)

	for {
		elem, ok := prod()
		if !ok {
			return false
		}

		if pred(elem, index) {
			return true
		}

		index++
	}
}

// AllMatch returns true if pred returns true for all elements produced by prod, that is, all elements match.
// If an element does not match, prod is not pulled any further.
func AllMatch[T any](prod ProducerFunc[T], pred PredicateFunc[T]) bool {
	index := uint64(0)

	for {
		elem, ok := prod()
		if !ok {
			return true
		}

		if !pred(elem, index) {
			return false
		}

		index++
	}
}

// Count returns the number of elements produced by prod.
func Count[T any](prod ProducerFunc[T]) uint64 {
	count := uint64(0)

	Each(prod, func(_ T, _ uint64) bool {
		count++

		return true
	})

	return count
}

// CollectResults collects the values of the success results produced by prod into a slice, in order,
// stopping at the first failure result and returning its error alongside the values collected so far.
// If no failure is produced, the returned error is nil.
// After a failure, prod is not pulled any further.
func CollectResults[T any](prod ProducerFunc[Result[T]]) ([]T, error) {
	var values []T

	for {
		res, ok := prod()
		if !ok {
			return values, nil
		}

		elem, err := res.Value()
		if err != nil {
			return values, err
		}

		values = append(values, elem)
	}
}
