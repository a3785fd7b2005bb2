package sinequality_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-sinequality/measure/sinequality"
)

func ExampleAnalyze() {
	n := 1024
	sin := make([]int64, n)
	cos := make([]int64, n)
	for i := range n {
		theta := 2 * math.Pi * float64(i) / float64(n)
		sin[i] = int64(math.Round(1000 * math.Sin(theta+0.3)))
		cos[i] = int64(math.Round(1000 * math.Cos(theta+0.3)))
	}

	set, err := sinequality.NewSampleSet(sin, cos)
	if err != nil {
		fmt.Println(err)
		return
	}

	report, err := sinequality.Analyze(set)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("amplitude: %.0f lsb\n", report.Amplitude)
	fmt.Printf("phase: %.2f rad\n", report.Phase)
	// Output:
	// amplitude: 1000 lsb
	// phase: 0.30 rad
}

func ExampleReadSampleSet() {
	data := "0 1000\n1000 0\n0 -1000\n-1000 0\n"

	set, err := sinequality.ReadSampleSet(strings.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}

	report, err := sinequality.Analyze(set)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("cos(x) == sin(x+pi/2)", report.CosShift)
	fmt.Println("sin(x) == - sin(x+pi)", report.HalfPeriod)
	fmt.Printf("offset: %.3f lsb\n", report.Offset)
	fmt.Printf("amplitude: %.3f lsb\n", report.Amplitude)
	fmt.Println("SINAD:", report.SINAD)
	fmt.Println(report.CheckDegenerate())
	// Output:
	// cos(x) == sin(x+pi/2) exactly
	// sin(x) == - sin(x+pi) exactly
	// offset: 0.000 lsb
	// amplitude: 1000.000 lsb
	// SINAD: +Inf
	// sinequality: degenerate signal: rms error is zero, SINAD and ENOB are +Inf
}

func ExampleNewSampleSet_shapeError() {
	_, err := sinequality.NewSampleSet(make([]int64, 1000), make([]int64, 1000))
	fmt.Println(err)
	// Output:
	// sinequality: expected array of shape (N, 2) with N a power of two >= 4, got (1000, 2)
}
