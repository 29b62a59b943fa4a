// SPDX-License-Identifier: EPL-2.0

package sched

import "math"

// Kernel selects the retrieve-and-mix implementation. Both forms share
// one behavioral contract and are drop-in substitutable; pick at setup
// time via Scheduler.SetKernel.
type Kernel int

const (
	// Scalar walks schedule entries one by one with a branch per entry.
	Scalar Kernel = iota
	// Vector processes schedule entries in fixed four-wide lanes, masking
	// out-of-range and not-yet-started lanes to a neutral zero instead of
	// branching per entry.
	Vector
)

// Value is the set of sample representations the kernel mixes. int16
// values mix with saturating addition; float32 values mix with plain
// addition and a hard clamp of the final composite to [-1, 1].
type Value interface {
	int16 | float32
}

// RetrieveAndMix gathers the contributions of every started, still
// in-range schedule entry in the window [low, high) at the given tick and
// folds them into one sample. The result is absent exactly when the
// window is empty; a non-empty window with no active entries yields a
// present zero.
//
// buf is a flattened interleaved sample buffer; schedule holds ascending
// start offsets in the same flattened domain.
func RetrieveAndMix[T Value](k Kernel, buf []T, schedule []uint64, low, high int, tick uint64) (T, bool) {
	if k == Vector {
		return retrieveAndMixVector(buf, schedule, low, high, tick)
	}

	return retrieveAndMixScalar(buf, schedule, low, high, tick)
}

// Mix folds values, plus main when hasMain is set, into one composite
// sample. Absent only when there is nothing to fold. The float32 clamp
// applies once here, never to intermediate per-source contributions.
func Mix[T Value](k Kernel, values []T, main T, hasMain bool) (T, bool) {
	if k == Vector {
		return mixVector(values, main, hasMain)
	}

	return mixScalar(values, main, hasMain)
}

func retrieveAndMixScalar[T Value](buf []T, schedule []uint64, low, high int, tick uint64) (T, bool) {
	window := schedule[low:high]
	if len(window) == 0 {
		return 0, false
	}

	var acc T

	for _, start := range window {
		if start > tick {
			continue
		}

		offset := tick - start
		if offset >= uint64(len(buf)) {
			continue
		}

		acc = satAdd(acc, buf[offset])
	}

	return acc, true
}

func mixScalar[T Value](values []T, main T, hasMain bool) (T, bool) {
	if len(values) == 0 && !hasMain {
		return 0, false
	}

	var acc T
	if hasMain {
		acc = main
	}

	for _, v := range values {
		acc = satAdd(acc, v)
	}

	return clampUnit(acc), true
}

// satAdd adds two samples. Integer representations saturate at the
// representable extremes instead of wrapping; floating-point ones add
// plainly and rely on the final clamp.
func satAdd[T Value](a, b T) T {
	switch x := any(a).(type) {
	case int16:
		sum := int(x) + int(any(b).(int16))
		if sum > math.MaxInt16 {
			sum = math.MaxInt16
		} else if sum < math.MinInt16 {
			sum = math.MinInt16
		}

		return any(int16(sum)).(T)
	case float32:
		return any(x + any(b).(float32)).(T)
	}

	return a
}

// clampUnit bounds a final composite sample to [-1, 1] for floating-point
// values. Integer values already saturate per addition.
func clampUnit[T Value](v T) T {
	if f, ok := any(v).(float32); ok {
		if f > 1 {
			f = 1
		} else if f < -1 {
			f = -1
		}

		return any(f).(T)
	}

	return v
}
