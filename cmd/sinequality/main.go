// Command sinequality evaluates the quality of a generated sine/cosine
// waveform captured by a testbench.
//
// Usage:
//
//	sinequality [flags] datafile
//
// The data file holds one "sin cos" pair of decimal integers per line, one
// full period of N samples with N a power of two >= 4. Use "-" to read from
// standard input.
//
// Examples:
//
//	sinequality sincos.dat
//	sinequality -json sincos.dat
//	sinequality -strict - < sincos.dat
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-sinequality/measure/sinequality"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sinequality", flag.ContinueOnError)
	fs.SetOutput(stderr)

	jsonOut := fs.Bool("json", false, "write the report as JSON")
	strict := fs.Bool("strict", false, "exit with status 1 if SINAD/ENOB are undefined")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sinequality [flags] datafile\n\n")
		fmt.Fprintf(stderr, "Evaluates quality of a generated sine/cosine waveform.\n")
		fmt.Fprintf(stderr, "The data file holds one \"sin cos\" integer pair per line; \"-\" reads stdin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if fs.NArg() != 1 {
		fs.Usage()
		fmt.Fprintln(stderr, "error: invalid/missing command line arguments")
		return 1
	}

	logger := newLogger(stderr, *verbose)
	defer func() { _ = logger.Sync() }()

	name := fs.Arg(0)
	logger.Info("reading", zap.String("file", name))

	set, err := readSamples(name, stdin)
	if err != nil {
		logger.Error("cannot load samples", zap.String("file", name), zap.Error(err))
		return 1
	}
	logger.Info("got array", zap.Int("rows", set.Len()), zap.Int("columns", 2))

	report, err := sinequality.Analyze(set)
	if err != nil {
		logger.Error("analysis failed", zap.Error(err))
		return 1
	}
	logger.Debug("analysis done",
		zap.Float64("amplitude", report.Amplitude),
		zap.Float64("sinad_db", report.SINAD),
		zap.Float64("sfdr_db", report.SFDR),
	)

	if err := writeReport(stdout, report, *jsonOut); err != nil {
		logger.Error("cannot write report", zap.Error(err))
		return 1
	}

	if err := report.CheckDegenerate(); err != nil {
		logger.Warn("degenerate signal", zap.Error(err))
		if *strict {
			return 1
		}
	}

	return 0
}

func readSamples(name string, stdin io.Reader) (*sinequality.SampleSet, error) {
	if name == "-" {
		return sinequality.ReadSampleSet(stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return sinequality.ReadSampleSet(f)
}

func writeReport(w io.Writer, report sinequality.Report, asJSON bool) error {
	if !asJSON {
		return report.WriteText(w)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// newLogger builds a console logger on w without timestamps.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
