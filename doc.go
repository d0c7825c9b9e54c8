// Package sugar provides shorthand constructors for standard containers,
// ownership and synchronization cells, and duration helpers.
//
// Every helper is stateless: it expands into a short sequence of calls
// against existing standard-library types and returns an owned value.
// Nothing here persists beyond a single call expression.
//
// # Container Literals
//
// Build pre-populated standard containers from a fixed list of elements
// or key/value pairs:
//
//	m := sugar.MapOf(sugar.E("a", 1), sugar.E("b", 2))
//	s := sugar.SetOf("a", "b")
//	l := sugar.ListOf(1, 2, 3)          // container/list, pushed to the back
//	f := sugar.FrontListOf(1, 2, 3)     // pushed to the front
//	h := sugar.HeapOf(3, 1, 2)          // min-heap over container/heap
//
// Each builder produces a container equal to inserting the same elements
// manually in the same order into an empty one. Building with zero
// elements yields an empty container. Map insertion is last-write-wins,
// matching standard map semantics.
//
// [RepeatList] and [RepeatFrontList] build a list of n copies of a single
// value.
//
// # Wrapper Constructors
//
// Each wraps a single value into a one-argument cell:
//
//   - [Ptr]: a fresh heap cell; [Ptr2] and [Ptr3] wrap several values
//     independently, [Ptrs] wraps a homogeneous list.
//   - [NewAtomic]: a lock-free shared cell with Load/Store/Swap and a
//     value-level [CompareAndSwap].
//   - [NewMutex]: a mutex-guarded cell. Lock returns the guarded value;
//     acquisition discipline is entirely the caller's responsibility.
//   - [NewRWMutex]: the reader/writer variant.
//   - [Borrow] and [Own]: a copy-on-write cell that either references
//     existing data or takes ownership of newly produced data.
//
// # Durations and Timing
//
// [Dur] converts a numeric value plus a [Unit] tag into a
// [time.Duration] using the unit's fixed conversion factor, and [Sleep]
// performs a blocking wait of that duration:
//
//	d := sugar.Dur(10, sugar.Sec)
//	sugar.Sleep(250, sugar.Milli)
//
// [Timed] evaluates a function, writes the wall-clock elapsed time to a
// diagnostic stream (stderr by default), and returns the function's
// value unchanged. [Timed2] and [Timed3] time several expressions and
// return a tuple. [Duration] is a [time.Duration] that marshals as a
// human-readable string in YAML and JSON, for configuration structs.
//
// # Hashing
//
// [Hash] returns a 64-bit hash of any value's printed representation;
// [HashWith] accepts a caller-supplied hasher.
//
// # Comprehensions
//
// The [github.com/baxromumarov/sugar/seqx] subpackage provides lazy,
// generator-style comprehensions over pull-based sequences, with eager
// collectors into slices, sets, and maps.
package sugar
