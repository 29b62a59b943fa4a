// SPDX-License-Identifier: EPL-2.0

package sched

import (
	"math"
	"math/rand"
	"testing"
)

var kernels = map[string]Kernel{
	"scalar": Scalar,
	"vector": Vector,
}

func TestRetrieveAndMix_BasicInt16(t *testing.T) {
	t.Parallel()

	buf := []int16{10, 20, 30, 40, 50}
	schedule := []uint64{0, 2, 4}

	for name, k := range kernels {
		v, ok := RetrieveAndMix(k, buf, schedule, 0, 3, 4)

		if !ok {
			t.Errorf("%s: RetrieveAndMix() absent, want present", name)
		}

		// Contributions are buf[4], buf[2], buf[0] = 50+30+10
		if v != 90 {
			t.Errorf("%s: RetrieveAndMix() = %d, want 90", name, v)
		}
	}
}

func TestRetrieveAndMix_BasicFloat32(t *testing.T) {
	t.Parallel()

	buf := []float32{0.1, 0.2, 0.3, 0.4, 0.5}
	schedule := []uint64{0, 2, 4}
	want := float32(0.5 + 0.3 + 0.1)

	for name, k := range kernels {
		v, ok := RetrieveAndMix(k, buf, schedule, 0, 3, 4)

		if !ok {
			t.Errorf("%s: RetrieveAndMix() absent, want present", name)
		}

		if math.Abs(float64(v-want)) > 1e-6 {
			t.Errorf("%s: RetrieveAndMix() = %v, want %v", name, v, want)
		}
	}
}

func TestRetrieveAndMix_EmptySchedule(t *testing.T) {
	t.Parallel()

	buf := []float32{1.0, 0.0, -3.0, 0.2, 0.5}

	for name, k := range kernels {
		for _, tick := range []uint64{0, 4, 1 << 40} {
			if _, ok := RetrieveAndMix(k, buf, nil, 0, 0, tick); ok {
				t.Errorf("%s: RetrieveAndMix(empty schedule, tick %d) present, want absent", name, tick)
			}
		}
	}
}

func TestRetrieveAndMix_NonePlayingYet(t *testing.T) {
	t.Parallel()

	// Every entry is in the future relative to the tick: the window is
	// non-empty, so the result is a present zero.
	buf := []float32{1.0, 0.1, 0.2, -4.0, 0.0}
	schedule := []uint64{10, 12, 14}

	for name, k := range kernels {
		v, ok := RetrieveAndMix(k, buf, schedule, 0, 3, 4)

		if !ok {
			t.Errorf("%s: RetrieveAndMix() absent, want present", name)
		}

		if v != 0 {
			t.Errorf("%s: RetrieveAndMix() = %v, want 0", name, v)
		}
	}
}

func TestRetrieveAndMix_OutOfBoundsOffset(t *testing.T) {
	t.Parallel()

	// Offsets past the buffer end contribute nothing; there must be no
	// out-of-bounds access.
	buf := []float32{0.0, 0.1, 0.2}
	schedule := []uint64{0, 5, 10}

	for name, k := range kernels {
		v, ok := RetrieveAndMix(k, buf, schedule, 0, 3, 4)

		if !ok {
			t.Errorf("%s: RetrieveAndMix() absent, want present", name)
		}

		if v != 0 {
			t.Errorf("%s: RetrieveAndMix() = %v, want 0", name, v)
		}
	}
}

func TestRetrieveAndMix_EmptyBuffer(t *testing.T) {
	t.Parallel()

	schedule := []uint64{0, 1}

	for name, k := range kernels {
		v, ok := RetrieveAndMix(k, []float32(nil), schedule, 0, 2, 3)

		if !ok || v != 0 {
			t.Errorf("%s: RetrieveAndMix(empty buffer) = (%v, %v), want (0, true)", name, v, ok)
		}
	}
}

func TestMix_SomeMain(t *testing.T) {
	t.Parallel()

	values := []float32{0.1, 0.2, 0.3}
	want := float32(0.55)

	for name, k := range kernels {
		v, ok := Mix(k, values, -0.05, true)

		if !ok {
			t.Errorf("%s: Mix() absent, want present", name)
		}

		if math.Abs(float64(v-want)) > 1e-6 {
			t.Errorf("%s: Mix() = %v, want %v", name, v, want)
		}
	}
}

func TestMix_NoMain(t *testing.T) {
	t.Parallel()

	values := []float32{0.1, 0.2, 0.3}
	want := float32(0.6)

	for name, k := range kernels {
		v, ok := Mix(k, values, 0, false)

		if !ok {
			t.Errorf("%s: Mix() absent, want present", name)
		}

		if math.Abs(float64(v-want)) > 1e-6 {
			t.Errorf("%s: Mix() = %v, want %v", name, v, want)
		}
	}
}

func TestMix_EmptyValues(t *testing.T) {
	t.Parallel()

	for name, k := range kernels {
		v, ok := Mix(k, []float32(nil), 0.5, true)
		if !ok || v != 0.5 {
			t.Errorf("%s: Mix(no values, main 0.5) = (%v, %v), want (0.5, true)", name, v, ok)
		}

		if _, ok := Mix(k, []float32(nil), 0, false); ok {
			t.Errorf("%s: Mix(no values, no main) present, want absent", name)
		}
	}
}

func TestMix_FinalClamp(t *testing.T) {
	t.Parallel()

	// The composite overshoots badly; the limiter clamps once at the end,
	// not per contribution.
	for name, k := range kernels {
		v, ok := Mix(k, []float32{1.0, 1.0, 23.0}, 1.0, true)
		if !ok || v != 1.0 {
			t.Errorf("%s: Mix() = (%v, %v), want (1.0, true)", name, v, ok)
		}

		v, ok = Mix(k, []float32{-1.0, -1.0, -23.0}, -1.0, true)
		if !ok || v != -1.0 {
			t.Errorf("%s: Mix() = (%v, %v), want (-1.0, true)", name, v, ok)
		}
	}
}

func TestMix_SaturatingInt16(t *testing.T) {
	t.Parallel()

	for name, k := range kernels {
		v, ok := Mix(k, []int16{math.MaxInt16, 1}, 1, true)
		if !ok || v != math.MaxInt16 {
			t.Errorf("%s: Mix() = (%d, %v), want (%d, true)", name, v, ok, math.MaxInt16)
		}

		v, ok = Mix(k, []int16{math.MinInt16, -1}, -1, true)
		if !ok || v != math.MinInt16 {
			t.Errorf("%s: Mix() = (%d, %v), want (%d, true)", name, v, ok, math.MinInt16)
		}
	}
}

func TestKernels_EquivalentOnRandomSchedules(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	buf := make([]int16, 64)
	for i := range buf {
		buf[i] = int16(rng.Intn(2000) - 1000)
	}

	for trial := 0; trial < 200; trial++ {
		schedule := make([]uint64, rng.Intn(12))
		for i := range schedule {
			schedule[i] = uint64(rng.Intn(128))
		}

		low := 0
		high := len(schedule)
		tick := uint64(rng.Intn(192))

		sv, sok := RetrieveAndMix(Scalar, buf, schedule, low, high, tick)
		vv, vok := RetrieveAndMix(Vector, buf, schedule, low, high, tick)

		if sok != vok || sv != vv {
			t.Fatalf("trial %d: scalar = (%d, %v), vector = (%d, %v), schedule %v tick %d",
				trial, sv, sok, vv, vok, schedule, tick)
		}
	}
}

func BenchmarkRetrieveAndMixScalar(b *testing.B) {
	buf, schedule := benchFixture()

	for i := 0; i < b.N; i++ {
		RetrieveAndMix(Scalar, buf, schedule, 0, len(schedule), uint64(i%4096))
	}
}

func BenchmarkRetrieveAndMixVector(b *testing.B) {
	buf, schedule := benchFixture()

	for i := 0; i < b.N; i++ {
		RetrieveAndMix(Vector, buf, schedule, 0, len(schedule), uint64(i%4096))
	}
}

func benchFixture() ([]float32, []uint64) {
	buf := make([]float32, 4096)
	for i := range buf {
		buf[i] = float32(i%200)/100 - 1
	}

	schedule := make([]uint64, 32)
	for i := range schedule {
		schedule[i] = uint64(i * 97)
	}

	return buf, schedule
}
