package rng

import (
	"hash/fnv"
	"math/rand"
)

// Source implements ports.RNGPort. Streams are derived from a base seed and
// the operation name, so the same name and seed always replay the same
// sequence.
type Source struct {
	baseSeed int64
}

// NewSource creates an RNG source with the given base seed
func NewSource(baseSeed int64) *Source {
	return &Source{baseSeed: baseSeed}
}

// SeededStream creates a deterministic random number generator for a named
// operation. Each stream is independent: callers never share a *rand.Rand
// across goroutines.
func (s *Source) SeededStream(name string, seed int64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(s.baseSeed ^ seed ^ int64(h.Sum64())))
}
