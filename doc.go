// Package goresults provides a set of operations on streams of fallible results.
// Streams form a pipeline of operations that elements are being pulled through.
//
// Streams are constructed by creating an initial ProducerFunc, which can produce elements from slices,
// channels, or any arbitrary source. A producer is a plain pull function: calling it returns the next
// element, or reports that the stream is exhausted. Exhaustion is permanent.
//
// Elements may then be operated upon using mapping, filtering, and sorting operations
// (which are intermediate ProducerFuncs). A Result is an element that is exactly one of a success
// value or a failure error, and the result-aware operations control how failures propagate through
// a pipeline: FlattenResults flattens a stream of fallible sub-streams, UnifyErrors collapses nested
// results from different failure domains into one, and StopAfterError halts a stream permanently
// after its first failure.
//
// Finally, the elements are consumed by consumers, such as collecting them into slices or maps,
// checking for matching elements, or simply iterating over them.
//
// Streams are single-consumer and synchronous: a producer owns its upstream exclusively, and a pull
// must complete before the next pull is issued. A consumer abandons a stream by simply not pulling
// it again; there is no cancelation primitive and nothing to clean up.
//
// Streams are always lazy, meaning that producers will produce a new element only after the
// downstream producer or consumer has pulled the previous element.
package goresults
