package sinequality

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ENOB relation for an ideal converter: SINAD = 6.02*bits + 1.76 dB.
const (
	enobOffsetDB  = 1.76
	enobDBPerBits = 6.02
)

// ErrorMetrics describes how far the sine channel departs from an ideal
// tone of the projected amplitude.
type ErrorMetrics struct {
	PeakError float64 // LSB
	RMSError  float64 // LSB rms
	SINAD     float64 // dB
	ENOB      float64 // bits
}

// ComputeErrors compares the sine channel against amplitude*sin(2*pi*i/N).
//
// The reference carries no phase term: the error is measured against a
// zero-phase tone of the given amplitude. When amplitude is zero SINAD and
// ENOB are -Inf; otherwise a zero RMS error makes them +Inf. An invalid
// set yields the zero ErrorMetrics.
func ComputeErrors(s *SampleSet, amplitude float64) ErrorMetrics {
	if s.valid() != nil {
		return ErrorMetrics{}
	}
	sinTab, _ := referenceTables(len(s.sin))
	return computeErrors(s.sinFloat(), sinTab, amplitude)
}

func computeErrors(x, sinTab []float64, amplitude float64) ErrorMetrics {
	residual := make([]float64, len(x))
	vecmath.ScaleBlock(residual, sinTab, -amplitude)
	vecmath.AddBlockInPlace(residual, x)

	rms := stat.PopStdDev(residual, nil)
	sinad := sinadDB(amplitude, rms)

	return ErrorMetrics{
		PeakError: floats.Norm(residual, math.Inf(1)),
		RMSError:  rms,
		SINAD:     sinad,
		ENOB:      (sinad - enobOffsetDB) / enobDBPerBits,
	}
}

// sinadDB is the fundamental RMS (amplitude/sqrt(2)) over the RMS error.
func sinadDB(amplitude, rmsError float64) float64 {
	return ratioToDB(amplitude*math.Sqrt(0.5), rmsError)
}
