package rng

import (
	"math/rand/v2"
)

// Source is the random number source vehicles draw their tire pressures from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed picks a random one.
func New(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Between returns a value in [lo, hi). If hi <= lo it returns lo.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo)
}

// fixed replays a scripted list of offsets, cycling once exhausted
type fixed struct {
	values []int
	next   int
}

// Fixed returns a source that hands out the given offsets in order, wrapping
// around at the end. Each offset is reduced modulo n so the result always stays
// in range.
func Fixed(values ...int) Source {
	return &fixed{values: values}
}

func (f *fixed) IntN(n int) int {
	if len(f.values) == 0 || n <= 0 {
		return 0
	}
	v := f.values[f.next%len(f.values)]
	f.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
