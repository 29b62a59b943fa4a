// SPDX-License-Identifier: EPL-2.0

package sched

// The vector kernel mirrors the scalar one lane by lane: schedule entries
// load in fixed-width groups, every lane computes an arithmetic 0/1 mask
// instead of branching, masked lanes gather index zero and multiply their
// contribution away, and a horizontal reduction folds the lane
// accumulators at the end. Go has no portable SIMD intrinsics, so the
// lanes are plain arrays shaped for the compiler to keep in registers.

const lanes = 4

// laneUnset marks tail lanes that carry no schedule entry. No real start
// offset can take this value because it can never be <= any tick reached
// in practice together with an in-range buffer offset.
const laneUnset = ^uint64(0)

func retrieveAndMixVector[T Value](buf []T, schedule []uint64, low, high int, tick uint64) (T, bool) {
	window := schedule[low:high]
	if len(window) == 0 {
		return 0, false
	}
	if len(buf) == 0 {
		// Nothing can contribute, but the window is non-empty.
		return 0, true
	}

	span := uint64(len(buf))

	var acc [lanes]T
	var starts [lanes]uint64

	for i := 0; i < len(window); i += lanes {
		for l := range starts {
			starts[l] = laneUnset
		}
		copy(starts[:], window[i:min(i+lanes, len(window))])

		for l := 0; l < lanes; l++ {
			started := oneIf(starts[l] <= tick)
			offset := (tick - starts[l]) * started
			active := started & oneIf(offset < span)

			acc[l] = satAdd(acc[l], buf[offset*active]*T(active))
		}
	}

	return reduce(acc), true
}

func mixVector[T Value](values []T, main T, hasMain bool) (T, bool) {
	if len(values) == 0 && !hasMain {
		return 0, false
	}

	var acc [lanes]T

	for i := 0; i < len(values); i += lanes {
		for l := 0; l < lanes; l++ {
			loaded := oneIf(i+l < len(values))
			idx := uint64(i+l) * loaded

			acc[l] = satAdd(acc[l], values[idx]*T(loaded))
		}
	}

	total := reduce(acc)
	if hasMain {
		total = satAdd(total, main)
	}

	return clampUnit(total), true
}

// reduce folds the lane accumulators horizontally.
func reduce[T Value](acc [lanes]T) T {
	total := acc[0]
	for l := 1; l < lanes; l++ {
		total = satAdd(total, acc[l])
	}

	return total
}

func oneIf(cond bool) uint64 {
	var m uint64
	if cond {
		m = 1
	}

	return m
}
