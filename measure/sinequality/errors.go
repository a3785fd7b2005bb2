package sinequality

import (
	"errors"
	"fmt"
)

// Errors returned by sample validation and analysis.
var (
	ErrMalformedInput   = errors.New("sinequality: malformed input")
	ErrShape            = errors.New("sinequality: invalid record shape")
	ErrDegenerateSignal = errors.New("sinequality: degenerate signal")
)

// MalformedInputError reports a row that does not decode into exactly two
// integers. It matches [ErrMalformedInput] under errors.Is.
type MalformedInputError struct {
	Line   int    // 1-based row or line number
	Fields int    // number of fields found on the row
	Text   string // offending text, empty for in-memory rows
	Err    error  // integer parse failure, if any
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("sinequality: line %d: %q: %v", e.Line, e.Text, e.Err)
	case e.Text != "":
		return fmt.Sprintf("sinequality: line %d: expecting two columns, got %d: %q", e.Line, e.Fields, e.Text)
	default:
		return fmt.Sprintf("sinequality: row %d: expecting two columns, got %d", e.Line, e.Fields)
	}
}

// Is reports whether target is [ErrMalformedInput].
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// Unwrap returns the underlying parse error.
func (e *MalformedInputError) Unwrap() error { return e.Err }

// ShapeError reports a record whose length violates the (N, 2) contract:
// N >= 4, N a power of two, and equal sine and cosine lengths.
type ShapeError struct {
	SinLen int
	CosLen int
}

func (e *ShapeError) Error() string {
	if e.SinLen != e.CosLen {
		return fmt.Sprintf("sinequality: sine/cosine length mismatch: %d != %d", e.SinLen, e.CosLen)
	}
	return fmt.Sprintf("sinequality: expected array of shape (N, 2) with N a power of two >= %d, got (%d, 2)",
		MinSamples, e.SinLen)
}

// Is reports whether target is [ErrShape].
func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// DegenerateSignalError reports that SINAD and ENOB hold a sentinel because
// the amplitude or the RMS error is zero. See [Report.CheckDegenerate].
type DegenerateSignalError struct {
	Reason string
}

func (e *DegenerateSignalError) Error() string {
	return "sinequality: degenerate signal: " + e.Reason
}

// Is reports whether target is [ErrDegenerateSignal].
func (e *DegenerateSignalError) Is(target error) bool { return target == ErrDegenerateSignal }
