package sugar

import (
	"fmt"
	"hash"
	"hash/fnv"
)

// Hash returns the 64-bit FNV-1a hash of v's printed representation.
// Two values with identical %#v renderings hash identically; the result
// is stable across runs but not across changes to T's definition.
func Hash[T any](v T) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%#v", v)
	return h.Sum64()
}

// HashWith hashes v's printed representation with the supplied hasher
// instead of the default FNV-1a.
func HashWith[T any](v T, h hash.Hash64) uint64 {
	fmt.Fprintf(h, "%#v", v)
	return h.Sum64()
}
