package sinequality

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// Report holds every figure of merit for one capture, in presentation order.
type Report struct {
	CosShift   Deviation // cos[i] - sin[i+N/4], LSB
	HalfPeriod Deviation // sin[i] + sin[i+N/2], LSB
	Offset     float64   // LSB
	Amplitude  float64   // LSB
	Phase      float64   // radians
	PeakError  float64   // LSB
	RMSError   float64   // LSB rms
	SINAD      float64   // dB
	ENOB       float64   // bits
	SFDR       float64   // dB
}

// Analyze runs the identity checks, the spectral analysis and the error
// metrics on one capture. It has no side effects; repeated calls on the
// same SampleSet return identical reports.
func Analyze(s *SampleSet) (Report, error) {
	if err := s.valid(); err != nil {
		return Report{}, err
	}

	x := s.sinFloat()
	sinTab, cosTab := referenceTables(len(x))

	proj := project(x, sinTab, cosTab)
	errs := computeErrors(x, sinTab, proj.Amplitude)

	mag, err := spectrumMagnitude(x)
	if err != nil {
		return Report{}, err
	}

	return Report{
		CosShift:   CheckQuarterPeriod(s),
		HalfPeriod: CheckHalfPeriod(s),
		Offset:     Offset(s),
		Amplitude:  proj.Amplitude,
		Phase:      proj.Phase,
		PeakError:  errs.PeakError,
		RMSError:   errs.RMSError,
		SINAD:      errs.SINAD,
		ENOB:       errs.ENOB,
		SFDR:       sfdrFromMagnitude(mag),
	}, nil
}

// CheckDegenerate returns a *DegenerateSignalError if SINAD, ENOB or SFDR
// hold a sentinel instead of a measurement. The first cause found is
// reported.
func (r Report) CheckDegenerate() error {
	switch {
	case r.Amplitude == 0:
		return &DegenerateSignalError{Reason: "amplitude is zero, SINAD and ENOB are -Inf"}
	case r.RMSError == 0:
		return &DegenerateSignalError{Reason: "rms error is zero, SINAD and ENOB are +Inf"}
	case math.IsInf(r.SFDR, -1):
		return &DegenerateSignalError{Reason: "fundamental bin is zero, SFDR is -Inf"}
	case math.IsInf(r.SFDR, 1):
		return &DegenerateSignalError{Reason: "no spurious bins, SFDR is +Inf"}
	default:
		return nil
	}
}

// String renders the report as text.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "cos(x) == sin(x+pi/2) %s\n", r.CosShift)
	fmt.Fprintf(&b, "sin(x) == - sin(x+pi) %s\n", r.HalfPeriod)
	b.WriteString("\n")
	fmt.Fprintf(&b, "offset =        %20.12f lsb\n", r.Offset)
	fmt.Fprintf(&b, "amplitude =     %20.12f lsb\n", r.Amplitude)
	fmt.Fprintf(&b, "phase offset =  %20.12f rad\n", r.Phase)
	b.WriteString("\n")
	fmt.Fprintf(&b, "peak error =    %20.12f lsb\n", r.PeakError)
	fmt.Fprintf(&b, "rms error =     %20.12f lsb rms\n", r.RMSError)
	fmt.Fprintf(&b, "SINAD =         %12.4f dB\n", r.SINAD)
	fmt.Fprintf(&b, "ENOB =          %12.4f bits\n", r.ENOB)
	fmt.Fprintf(&b, "SFDR =          %12.4f dB\n", r.SFDR)

	return b.String()
}

// WriteText writes the text rendering of the report to w.
func (r Report) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}

// jsonFloat encodes non-finite values as the strings "+Inf", "-Inf" and
// "NaN", which encoding/json otherwise rejects.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	default:
		return json.Marshal(v)
	}
}

// MarshalJSON encodes the report with snake_case keys in presentation order.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CosShift   Deviation `json:"cos_shift_deviation"`
		HalfPeriod Deviation `json:"half_period_deviation"`
		Offset     jsonFloat `json:"offset_lsb"`
		Amplitude  jsonFloat `json:"amplitude_lsb"`
		Phase      jsonFloat `json:"phase_rad"`
		PeakError  jsonFloat `json:"peak_error_lsb"`
		RMSError   jsonFloat `json:"rms_error_lsb"`
		SINAD      jsonFloat `json:"sinad_db"`
		ENOB       jsonFloat `json:"enob_bits"`
		SFDR       jsonFloat `json:"sfdr_db"`
	}{
		CosShift:   r.CosShift,
		HalfPeriod: r.HalfPeriod,
		Offset:     jsonFloat(r.Offset),
		Amplitude:  jsonFloat(r.Amplitude),
		Phase:      jsonFloat(r.Phase),
		PeakError:  jsonFloat(r.PeakError),
		RMSError:   jsonFloat(r.RMSError),
		SINAD:      jsonFloat(r.SINAD),
		ENOB:       jsonFloat(r.ENOB),
		SFDR:       jsonFloat(r.SFDR),
	})
}
