package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{0, 1, 0, -1}, []float64{0, 1, 0, -1}, 0},
		{"single lsb", []float64{3, 5, 7}, []float64{3, 4, 7}, 1},
		{"sign", []float64{-2, 2}, []float64{2, 2}, 4},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxAbsDiff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("MaxAbsDiff error: %v", err)
			}

			if math.Abs(got-tt.want) > 1e-15 {
				t.Fatalf("MaxAbsDiff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff(make([]float64, 4), make([]float64, 8)); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireNearWithinTolerance(t *testing.T) {
	RequireNear(t, "sinad", 108.0, 108.0+1e-10, 1e-9)
	RequireNear(t, "exact", 1000, 1000, 0)
	RequireFinite(t, []float64{0, -1, 1e300})
}
