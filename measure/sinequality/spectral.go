package sinequality

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Projection is the first-harmonic content of the sine channel.
type Projection struct {
	SinCoeff  float64 // (2/N) * sum x[i]*sin(2*pi*i/N)
	CosCoeff  float64 // (2/N) * sum x[i]*cos(2*pi*i/N)
	Amplitude float64 // LSB
	Phase     float64 // radians
}

// Offset returns the mean of the sine channel in LSB.
// A set that did not come from NewSampleSet, SampleSetFromRows or
// ReadSampleSet yields 0.
func Offset(s *SampleSet) float64 {
	if s.valid() != nil {
		return 0
	}
	return stat.Mean(s.sinFloat(), nil)
}

// Project correlates the sine channel with one cycle of sine and cosine
// over the record and returns the recovered amplitude and phase.
//
// The result is only meaningful if the capture is a single tone at exactly
// one cycle per N samples. An invalid set yields the zero Projection.
func Project(s *SampleSet) Projection {
	if s.valid() != nil {
		return Projection{}
	}
	sinTab, cosTab := referenceTables(len(s.sin))
	return project(s.sinFloat(), sinTab, cosTab)
}

// project folds the record onto its first half before correlating.
// sinTab and cosTab are antisymmetric over N/2, so x[i] - x[i+N/2] carries
// the same first-harmonic content and a constant level cancels exactly.
func project(x, sinTab, cosTab []float64) Projection {
	n := float64(len(x))
	half := len(x) / 2

	folded := make([]float64, half)
	copy(folded, x[:half])
	floats.Sub(folded, x[half:])

	a := floats.Dot(folded, sinTab[:half]) * 2 / n
	b := floats.Dot(folded, cosTab[:half]) * 2 / n

	return Projection{
		SinCoeff:  a,
		CosCoeff:  b,
		Amplitude: math.Sqrt(a*a + b*b),
		Phase:     math.Atan2(b, a),
	}
}

// SFDR returns the spurious-free dynamic range of the sine channel in dB:
// |X[1]| over the largest |X[k]| for k in [2, N/2].
func SFDR(s *SampleSet) (float64, error) {
	if err := s.valid(); err != nil {
		return 0, err
	}
	mag, err := spectrumMagnitude(s.sinFloat())
	if err != nil {
		return 0, err
	}
	return sfdrFromMagnitude(mag), nil
}

// spectrumMagnitude returns |X[k]| for the N/2+1 non-negative frequency bins.
func spectrumMagnitude(x []float64) ([]float64, error) {
	n := len(x)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("sinequality: fft plan for %d samples: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("sinequality: fft of %d samples: %w", n, err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

func sfdrFromMagnitude(mag []float64) float64 {
	// DC is bin 0; the spur search starts past the fundamental.
	return ratioToDB(mag[1], floats.Max(mag[2:]))
}

// referenceTables returns sin and cos of 2*pi*i/n for i in [0, n).
// The first quadrant is evaluated directly and mirrored, so the values at
// 0, n/4, n/2 and 3n/4 are exact and sin[i+n/2] == -sin[i]. n must be a
// multiple of 4.
func referenceTables(n int) (sinTab, cosTab []float64) {
	quarter := n / 4
	half := n / 2
	step := 2 * math.Pi / float64(n)

	sinTab = make([]float64, n)
	for i := 1; i < quarter; i++ {
		sinTab[i] = math.Sin(step * float64(i))
	}
	sinTab[quarter] = 1
	for i := quarter + 1; i <= half; i++ {
		sinTab[i] = sinTab[half-i]
	}
	for i := half + 1; i < n; i++ {
		sinTab[i] = -sinTab[i-half]
	}

	cosTab = make([]float64, n)
	for i := range n {
		cosTab[i] = sinTab[(i+quarter)%n]
	}

	return sinTab, cosTab
}

// ratioToDB returns 20*log10(num/den). A zero numerator yields -Inf and a
// zero denominator with a non-zero numerator yields +Inf.
func ratioToDB(num, den float64) float64 {
	if num <= 0 {
		return math.Inf(-1)
	}
	if den <= 0 {
		return math.Inf(1)
	}
	return 20 * math.Log10(num/den)
}
