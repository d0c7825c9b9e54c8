// Package seqx provides lazy, generator-style comprehensions over
// pull-based sequences.
//
// A [Seq] yields values one at a time via [Seq.Next] and reports
// exhaustion with [io.EOF]. Sequences are lazy: nothing is computed
// until pulled. They are single-consumer and cannot be restarted; to
// iterate again, recreate the sequence.
//
// # Sources
//
//   - [FromSlice], [FromChan], [FromFunc], [FromMap]: wrap existing data.
//   - [Range] and [RangeStep]: half-open numeric ranges.
//   - [Repeat]: n copies of one value.
//   - [Generate]: an infinite sequence from a seed and a step function.
//
// # Comprehensions
//
// [Comp], [Comp2], and [Comp3] are the set-builder forms: a transform
// expression, one to three generator clauses, and optional filter
// predicates:
//
//	// [x*2 | x <- 1..10, x even]
//	s := seqx.Comp(seqx.Range(1, 10),
//	    func(x int) int { return x * 2 },
//	    func(x int) bool { return x%2 == 0 })
//
// Nested generators behave like nested loops: the leftmost generator is
// the outermost loop and varies slowest. Inner generators are functions
// of the outer bindings, so dependent ranges work:
//
//	// Pythagorean triples: x <- 1..=n, y <- x..=n, z <- y..=n
//	triples := seqx.Comp3(
//	    seqx.Range(1, n+1),
//	    func(x int) *seqx.Seq[int] { return seqx.Range(x, n+1) },
//	    func(x, y int) *seqx.Seq[int] { return seqx.Range(y, n+1) },
//	    func(x, y, z int) [3]int { return [3]int{x, y, z} },
//	    func(x, y, z int) bool { return x*x+y*y == z*z })
//
// # Adapters and Collectors
//
// [Seq.Filter], [Seq.Take], [Seq.Skip], and [Seq.Peek] chain lazily, as
// do [Map], [FlatMap], [Zip], and [Scan] (functions rather than methods
// because Go does not support generic methods on generic types).
//
// Terminal operations drain the sequence eagerly: [Seq.ToSlice],
// [Seq.ForEach], [Seq.Count], [Reduce], [CollectSet], and [CollectMap].
// Each collector's output equals the lazy sequence fully drained into
// the same container.
//
// All pulls take a [context.Context] so channel-backed and infinite
// sequences stay cancellable.
package seqx
