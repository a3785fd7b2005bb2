package sinequality

// MinSamples is the shortest record the analysis accepts.
const MinSamples = 4

// SampleSet is a validated, immutable capture of N sine/cosine code pairs.
// Sample index is the time step.
type SampleSet struct {
	sin []int64
	cos []int64
}

// NewSampleSet validates and copies a sine/cosine capture.
func NewSampleSet(sin, cos []int64) (*SampleSet, error) {
	if err := validateShape(len(sin), len(cos)); err != nil {
		return nil, err
	}

	return &SampleSet{
		sin: append([]int64(nil), sin...),
		cos: append([]int64(nil), cos...),
	}, nil
}

// SampleSetFromRows builds a SampleSet from an (N, 2) table of
// (sin, cos) rows. Row arity is checked before the shape.
func SampleSetFromRows(rows [][]int64) (*SampleSet, error) {
	sin := make([]int64, len(rows))
	cos := make([]int64, len(rows))

	for i, row := range rows {
		if len(row) != 2 {
			return nil, &MalformedInputError{Line: i + 1, Fields: len(row)}
		}
		sin[i] = row[0]
		cos[i] = row[1]
	}

	if err := validateShape(len(sin), len(cos)); err != nil {
		return nil, err
	}

	return &SampleSet{sin: sin, cos: cos}, nil
}

func validateShape(sinLen, cosLen int) error {
	if sinLen != cosLen || !validLength(sinLen) {
		return &ShapeError{SinLen: sinLen, CosLen: cosLen}
	}
	return nil
}

func validLength(n int) bool {
	return n >= MinSamples && n&(n-1) == 0
}

// Len returns the number of samples N.
func (s *SampleSet) Len() int { return len(s.sin) }

// Sin returns the sine code at index i.
func (s *SampleSet) Sin(i int) int64 { return s.sin[i] }

// Cos returns the cosine code at index i.
func (s *SampleSet) Cos(i int) int64 { return s.cos[i] }

// SinValues returns a copy of the sine channel.
func (s *SampleSet) SinValues() []int64 { return append([]int64(nil), s.sin...) }

// CosValues returns a copy of the cosine channel.
func (s *SampleSet) CosValues() []int64 { return append([]int64(nil), s.cos...) }

// sinFloat returns the sine channel as a fresh float64 working copy.
func (s *SampleSet) sinFloat() []float64 {
	out := make([]float64, len(s.sin))
	for i, v := range s.sin {
		out[i] = float64(v)
	}
	return out
}

func (s *SampleSet) valid() error {
	if s == nil {
		return &ShapeError{}
	}
	return validateShape(len(s.sin), len(s.cos))
}
