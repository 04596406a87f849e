package goresults

// ErrorMapperFunc converts an error from one failure domain into a unified error type.
type ErrorMapperFunc func(err error) error

// TryMapperFunc maps element elem to type U, or fails with an error.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type TryMapperFunc[T any, U any] func(elem T, index uint64) (U, error)

// IdentityErrorMapper returns an error mapper that returns the same error it receives.
func IdentityErrorMapper() ErrorMapperFunc {
	return func(err error) error {
		return err
	}
}

// WrapResults returns a producer that produces every element produced by prod wrapped as a success result.
func WrapResults[T any](prod ProducerFunc[T]) ProducerFunc[Result[T]] {
	return func() (Result[T], bool) {
		elem, ok := prod()
		if !ok {
			return Result[T]{}, false
		}

		return Value(elem), true
	}
}

// TryMap returns a producer that calls mapp for each success result produced by prod, mapping its value to type U.
// Failure results are produced unchanged, and an error returned by mapp is produced as a failure result.
// The index counts success results only.
func TryMap[T any, U any](prod ProducerFunc[Result[T]], mapp TryMapperFunc[T, U]) ProducerFunc[Result[U]] {
	index := uint64(0)

	return func() (Result[U], bool) {
		res, ok := prod()
		if !ok {
			return Result[U]{}, false
		}

		elem, err := res.Value()
		if err != nil {
			return Failure[U](err), true
		}

		outElem, err := mapp(elem, index)
		index++

		return Of(outElem, err), true
	}
}

// FlattenResults returns a producer that produces the elements of every sub-producer carried by a success
// result produced by prod, in order, each wrapped as a success result.
// A failure result produced by prod is produced unchanged, in its upstream position, and is never entered;
// failures do not stop the flattening, sub-producers after a failure are still produced.
// An empty sub-producer contributes no elements. No sub-producer is pulled before its elements are needed,
// so prod may be infinite.
// A single pull may consume any number of upstream elements while it skips exhausted sub-producers.
func FlattenResults[T any](prod ProducerFunc[Result[ProducerFunc[T]]]) ProducerFunc[Result[T]] {
	var inner ProducerFunc[T]

	exhausted := false

	return func() (Result[T], bool) {
		for !exhausted {
			if inner != nil {
				elem, ok := inner()
				if ok {
					return Value(elem), true
				}

				inner = nil
			}

			res, ok := prod()
			if !ok {
				exhausted = true
				break
			}

			sub, err := res.Value()
			if err != nil {
				return Failure[T](err), true
			}

			inner = sub
		}

		return Result[T]{}, false
	}
}

// FlattenResultSlices returns a producer that produces the elements of every slice carried by a success
// result produced by prod, in order, each wrapped as a success result.
// It behaves like FlattenResults with each slice as a sub-producer.
func FlattenResultSlices[T any](prod ProducerFunc[Result[[]T]]) ProducerFunc[Result[T]] {
	return FlattenResults(Map(prod, func(res Result[[]T], _ uint64) Result[ProducerFunc[T]] {
		slice, err := res.Value()
		if err != nil {
			return Failure[ProducerFunc[T]](err)
		}

		return Value(Produce(slice))
	}))
}

// UnifyErrors returns a producer that collapses the nested results produced by prod into flat results,
// converting errors from the two failure domains into one using outer and inner, respectively.
// Exactly one element is produced per upstream element:
// an outer failure is produced as a failure converted by outer, a success carrying an inner failure is
// produced as a failure converted by inner, and a success carrying an inner success is produced as a
// success carrying the inner value.
// The outer result is inspected first; an inner result is never looked at unless the outer result is a success.
func UnifyErrors[T any](prod ProducerFunc[Result[Result[T]]], outer ErrorMapperFunc, inner ErrorMapperFunc) ProducerFunc[Result[T]] {
	return func() (Result[T], bool) {
		res, ok := prod()
		if !ok {
			return Result[T]{}, false
		}

		innerRes, err := res.Value()
		if err != nil {
			return Failure[T](outer(err)), true
		}

		elem, err := innerRes.Value()
		if err != nil {
			return Failure[T](inner(err)), true
		}

		return Value(elem), true
	}
}

// StopAfterError returns a producer that produces the same elements as prod, in order,
// up to and including the first failure result, and is exhausted from then on.
// Once a failure has been produced, prod is never pulled again, so an upstream whose
// state is undefined past a failure is safe to wrap.
func StopAfterError[T any](prod ProducerFunc[Result[T]]) ProducerFunc[Result[T]] {
	halted := false

	return func() (Result[T], bool) {
		if halted {
			return Result[T]{}, false
		}

		res, ok := prod()
		if !ok {
			halted = true

			return Result[T]{}, false
		}

		if res.Err() != nil {
			halted = true
		}

		return res, true
	}
}
