// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{
			name: "at start returns y1",
			y0:   0.0, y1: 1.0, y2: 2.0, y3: 3.0,
			x:    0.0,
			want: 1.0, tolerance: 0.001,
		},
		{
			name: "at end returns y2",
			y0:   0.0, y1: 1.0, y2: 2.0, y3: 3.0,
			x:    1.0,
			want: 2.0, tolerance: 0.001,
		},
		{
			name: "linear data stays linear",
			y0:   1.0, y1: 2.0, y2: 3.0, y3: 4.0,
			x:    0.25,
			want: 2.25, tolerance: 0.01,
		},
		{
			name: "midpoint of symmetric ramp",
			y0:   -1.0, y1: -0.5, y2: 0.5, y3: 1.0,
			x:    0.5,
			want: 0.0, tolerance: 0.1,
		},
		{
			name: "waveform peak overshoot stays near y1",
			y0:   0.5, y1: 0.9, y2: 0.7, y3: 0.3,
			x:    0.3,
			want: 0.85, tolerance: 0.1,
		},
		{
			name: "all zero",
			y0:   0.0, y1: 0.0, y2: 0.0, y3: 0.0,
			x:    0.5,
			want: 0.0, tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			diff := float32(math.Abs(float64(got - tt.want)))

			if diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (tolerance %v, diff %v)",
					got, tt.want, tt.tolerance, diff)
			}
		})
	}
}

// TestCubicInterpolateBounds verifies the endpoints are exact for any
// window contents.
func TestCubicInterpolateBounds(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+2), float32(i+3)

		if got := CubicInterpolate(y0, y1, y2, y3, 0.0); got != y1 {
			t.Errorf("x=0 should return y1=%v, got %v", y1, got)
		}

		if got := CubicInterpolate(y0, y1, y2, y3, 1.0); got != y2 {
			t.Errorf("x=1 should return y2=%v, got %v", y2, got)
		}
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var result float32
	y0, y1, y2, y3 := float32(0.5), float32(1.0), float32(0.8), float32(0.3)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		x := float32(i%100) / 100.0
		result = CubicInterpolate(y0, y1, y2, y3, x)
	}

	_ = result
}
