package sinequality

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sinequality/internal/testutil"
)

// naiveErrors evaluates the error metrics directly from their definitions.
func naiveErrors(sin []int64, amplitude float64) (peak, rms float64) {
	n := len(sin)
	residual := make([]float64, n)
	mean := 0.0
	for i, v := range sin {
		residual[i] = float64(v) - amplitude*math.Sin(2*math.Pi/float64(n)*float64(i))
		mean += residual[i]
		peak = math.Max(peak, math.Abs(residual[i]))
	}
	mean /= float64(n)

	ss := 0.0
	for _, r := range residual {
		ss += (r - mean) * (r - mean)
	}
	return peak, math.Sqrt(ss / float64(n))
}

func TestComputeErrorsMatchesDefinition(t *testing.T) {
	n := 2048
	sin := testutil.Sum(
		testutil.QuantizedTone(n, 100000, 0, 0),
		testutil.DeterministicNoise(3, 4, n),
	)
	set := sineOnlySet(t, sin)
	amplitude := Project(set).Amplitude

	got := ComputeErrors(set, amplitude)
	wantPeak, wantRMS := naiveErrors(sin, amplitude)

	testutil.RequireNear(t, "peak error", got.PeakError, wantPeak, 1e-9*wantPeak)
	testutil.RequireNear(t, "rms error", got.RMSError, wantRMS, 1e-9*wantRMS)

	wantSINAD := 20 * math.Log10(amplitude*math.Sqrt(0.5)/wantRMS)
	testutil.RequireNear(t, "sinad", got.SINAD, wantSINAD, 1e-8)
	testutil.RequireNear(t, "enob", got.ENOB, (got.SINAD-1.76)/6.02, 1e-12)
}

func TestComputeErrorsQuantizationFloor(t *testing.T) {
	// Rounding alone leaves about 1/sqrt(12) LSB rms, so an 18-bit full
	// scale tone lands close to 18 effective bits.
	n := 4096
	amplitude := float64(1<<17 - 1)
	set := sineOnlySet(t, testutil.QuantizedTone(n, amplitude, 0, 0))

	got := ComputeErrors(set, Project(set).Amplitude)

	testutil.RequireNear(t, "rms error", got.RMSError, 1/math.Sqrt(12), 0.03)
	if got.PeakError > 0.55 {
		t.Fatalf("peak error = %v, want about 0.5", got.PeakError)
	}
	testutil.RequireNear(t, "enob", got.ENOB, 18, 0.2)
}

func TestComputeErrorsIgnoresPhase(t *testing.T) {
	// The reference is amplitude*sin(theta) with no phase term, so a
	// quarter-period shifted tone shows an error of about the amplitude.
	n := 1024
	amplitude := 10000.0
	set := sineOnlySet(t, testutil.QuantizedTone(n, amplitude, math.Pi/2, 0))

	p := Project(set)
	testutil.RequireNear(t, "phase", p.Phase, math.Pi/2, 1e-3)

	got := ComputeErrors(set, p.Amplitude)
	testutil.RequireNear(t, "rms error", got.RMSError, amplitude, 1)
	testutil.RequireNear(t, "peak error", got.PeakError, amplitude*math.Sqrt2, 2)
}

func TestComputeErrorsExactTone(t *testing.T) {
	set, err := NewSampleSet([]int64{0, 1000, 0, -1000}, []int64{1000, 0, -1000, 0})
	if err != nil {
		t.Fatalf("NewSampleSet error: %v", err)
	}

	p := Project(set)
	if p.Amplitude != 1000 || p.Phase != 0 {
		t.Fatalf("projection = %+v, want amplitude 1000 phase 0", p)
	}

	got := ComputeErrors(set, p.Amplitude)
	if got.RMSError != 0 || got.PeakError != 0 {
		t.Fatalf("errors = %+v, want zero", got)
	}
	if !math.IsInf(got.SINAD, 1) || !math.IsInf(got.ENOB, 1) {
		t.Fatalf("SINAD = %v ENOB = %v, want +Inf", got.SINAD, got.ENOB)
	}
}

func TestComputeErrorsZeroAmplitude(t *testing.T) {
	set := sineOnlySet(t, make([]int64, 16))

	got := ComputeErrors(set, 0)
	if !math.IsInf(got.SINAD, -1) || !math.IsInf(got.ENOB, -1) {
		t.Fatalf("SINAD = %v ENOB = %v, want -Inf", got.SINAD, got.ENOB)
	}
}
