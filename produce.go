package goresults

// ProducerFunc returns the next element of a stream, and true, or the zero value of T,
// and false, if the stream is exhausted.
// Once a producer reports exhaustion, it keeps reporting exhaustion on every further call.
// A producer is owned by a single consumer and must not be called concurrently,
// or again before the previous call has returned.
type ProducerFunc[T any] func() (T, bool)

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	outer := 0
	inner := 0

	return func() (T, bool) {
		for outer < len(slices) {
			if inner < len(slices[outer]) {
				elem := slices[outer][inner]
				inner++

				return elem, true
			}

			outer++
			inner = 0
		}

		var zero T
		return zero, false
	}
}

// ProduceChannel returns a producer that produces the elements received through the given channels, in order.
// Each pull performs a blocking receive on the current channel; the producer moves on to the
// next channel once the current one is closed, and is exhausted once all channels are closed.
func ProduceChannel[T any](channels ...<-chan T) ProducerFunc[T] {
	current := 0

	return func() (T, bool) {
		for current < len(channels) {
			elem, ok := <-channels[current]
			if ok {
				return elem, true
			}

			current++
		}

		var zero T
		return zero, false
	}
}

// ProduceResults returns a producer that produces the given results, in order.
func ProduceResults[T any](results ...Result[T]) ProducerFunc[Result[T]] {
	return Produce(results)
}

// Join returns a producer that produces the elements produced by the given producers, in order.
// Each producer is drained completely before the next one is pulled.
func Join[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	current := 0

	return func() (T, bool) {
		for current < len(producers) {
			elem, ok := producers[current]()
			if ok {
				return elem, true
			}

			current++
		}

		var zero T
		return zero, false
	}
}
