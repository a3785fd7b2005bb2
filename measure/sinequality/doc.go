// Package sinequality evaluates the fidelity of a digitized sine/cosine
// waveform pair, as produced by an NCO or DDS core under test.
//
// A capture is one full period of N samples (N a power of two, N >= 4) of
// raw integer LSB codes. The package reports:
//
//   - Structural identities: cos(x) == sin(x+pi/2) and sin(x) == -sin(x+pi),
//     as exact integer deviation bands
//   - Offset: mean of the sine channel
//   - Amplitude and phase: single-bin DFT projection onto one cycle per record
//   - Peak and RMS error against an amplitude-matched reference tone
//   - SINAD and ENOB derived from the RMS error
//   - SFDR: fundamental bin versus the largest other non-DC bin of the FFT
//
// The projection assumes the sine channel holds exactly one cycle over the
// record. It is not a general-purpose spectral estimator.
//
// # Usage
//
//	set, err := sinequality.ReadSampleSet(f)
//	if err != nil {
//		return err
//	}
//	report, err := sinequality.Analyze(set)
//	if err != nil {
//		return err
//	}
//	fmt.Print(report)
package sinequality
