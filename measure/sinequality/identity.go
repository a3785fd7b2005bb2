package sinequality

import (
	"fmt"
	"math"
)

// Deviation is an inclusive integer band [Min, Max] of residuals from a
// structural identity, in LSB.
type Deviation struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Exact reports whether the identity holds bit-exactly.
func (d Deviation) Exact() bool { return d.Min == 0 && d.Max == 0 }

// String renders "exactly" or "+ (min .. max)".
func (d Deviation) String() string {
	if d.Exact() {
		return "exactly"
	}
	return fmt.Sprintf("+ (%d .. %d)", d.Min, d.Max)
}

func emptyDeviation() Deviation {
	return Deviation{Min: math.MaxInt64, Max: math.MinInt64}
}

func (d *Deviation) observe(v int64) {
	if v < d.Min {
		d.Min = v
	}
	if v > d.Max {
		d.Max = v
	}
}

// CheckQuarterPeriod measures cos[i] - sin[(i+N/4) mod N] over the record.
// The first 3N/4 cosine samples pair with sin[N/4:], the last N/4 with the
// wrapped head sin[:N/4]. An invalid set yields the zero Deviation.
func CheckQuarterPeriod(s *SampleSet) Deviation {
	if s.valid() != nil {
		return Deviation{}
	}
	n := len(s.sin)
	quarter := n / 4
	split := n - quarter

	d := emptyDeviation()
	for i := range split {
		d.observe(s.cos[i] - s.sin[i+quarter])
	}
	for i := split; i < n; i++ {
		d.observe(s.cos[i] - s.sin[i-split])
	}

	return d
}

// CheckHalfPeriod measures sin[i] + sin[i+N/2] for i in [0, N/2).
// A half-period shift of a correct generator is sign negation.
func CheckHalfPeriod(s *SampleSet) Deviation {
	if s.valid() != nil {
		return Deviation{}
	}
	half := len(s.sin) / 2

	d := emptyDeviation()
	for i := range half {
		d.observe(s.sin[i] + s.sin[i+half])
	}

	return d
}
