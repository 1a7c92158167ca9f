// Package wirefuzz provides round-trip test helpers for the protowire
// codec: value generators in the style of testing/quick, and diffing via
// go-cmp. Generators are the one place this module reaches for the standard
// library over a third-party dependency, since no property-based testing
// library appears anywhere in the retrieval pack; go-cmp (used here and in
// complex_test.go) only diffs two already-produced values, it does not
// generate them.
package wirefuzz

import (
	"math/rand"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
)

// RandBytes returns n pseudo-random bytes drawn from rng.
func RandBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// RandASCII returns a pseudo-random printable ASCII string of length n,
// always valid UTF-8, for exercising length-delimited string round trips.
func RandASCII(rng *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 ,.!"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// Uint64Generator builds a quick.Generator-compatible uint64 source biased
// toward the varint encoding's interesting boundaries (mostly values whose
// encoded length changes at a 7-bit group boundary, plus the 32-bit
// boundary 0xffffffff/0x100000000), so round-trip tests exercise
// more than just small, cheaply-varint-encoded numbers.
func Uint64Generator() func(rng *rand.Rand) uint64 {
	boundaries := []uint64{
		0, 1, 0x7f, 0x80, 0x3fff, 0x4000,
		0x1fffff, 0x200000, 0xffffffff, 0x100000000,
		^uint64(0) >> 1, ^uint64(0),
	}
	return func(rng *rand.Rand) uint64 {
		if rng.Intn(2) == 0 && len(boundaries) > 0 {
			return boundaries[rng.Intn(len(boundaries))]
		}
		return rng.Uint64()
	}
}

// QuickConfig returns a testing/quick.Config seeded deterministically from
// seed, so a failing round-trip property is reproducible across runs.
func QuickConfig(seed int64, maxCount int) *quick.Config {
	return &quick.Config{
		MaxCount: maxCount,
		Rand:     rand.New(rand.NewSource(seed)),
	}
}

// Diff returns a human-readable description of the difference between want
// and got, or "" if they are equal. Tests call this instead of reflect-based
// equality so failures show exactly which field of a nested structure
// diverged.
func Diff(want, got interface{}) string {
	return cmp.Diff(want, got)
}
