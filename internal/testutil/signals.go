package testutil

import (
	"math"
	"math/rand"
)

// QuantizedTone returns round(amplitude*sin(2*pi*(i+shift)/n + phase)) for
// i in [0, n), rounding half to even. It models one period of an NCO output.
func QuantizedTone(n int, amplitude, phase float64, shift int) []int64 {
	out := make([]int64, n)
	for i := range out {
		theta := 2*math.Pi*float64(i+shift)/float64(n) + phase
		out[i] = int64(math.RoundToEven(amplitude * math.Sin(theta)))
	}
	return out
}

// DeterministicNoise generates integer noise uniform in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed, amplitude int64, length int) []int64 {
	out := make([]int64, length)
	if amplitude <= 0 {
		return out
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Int63n(2*amplitude+1) - amplitude
	}
	return out
}

// WithImpulse returns a copy of x with height added at pos.
func WithImpulse(x []int64, pos int, height int64) []int64 {
	out := append([]int64(nil), x...)
	if pos >= 0 && pos < len(out) {
		out[pos] += height
	}
	return out
}

// Sum returns a[i] + b[i]. Both slices must have the same length.
func Sum(a, b []int64) []int64 {
	out := make([]int64, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}
