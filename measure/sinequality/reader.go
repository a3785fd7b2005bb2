package sinequality

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineBytes = 1 << 20

// ReadSampleSet parses whitespace-separated "sin cos" decimal integer pairs,
// one per line, and validates the resulting record. Blank lines are skipped.
func ReadSampleSet(r io.Reader) (*SampleSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var sin, cos []int64

	line := 0
	for sc.Scan() {
		line++

		text := sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &MalformedInputError{Line: line, Fields: len(fields), Text: text}
		}

		vs, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, &MalformedInputError{Line: line, Fields: 2, Text: text, Err: err}
		}
		vc, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, &MalformedInputError{Line: line, Fields: 2, Text: text, Err: err}
		}

		sin = append(sin, vs)
		cos = append(cos, vc)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sinequality: reading samples: %w", err)
	}

	if err := validateShape(len(sin), len(cos)); err != nil {
		return nil, err
	}

	return &SampleSet{sin: sin, cos: cos}, nil
}
