// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe

import (
	"math"
	"math/bits"

	"code.hybscloud.com/atomix"
)

// log2Buckets is the fixed bucket count of a Log2Histogram.
const log2Buckets = 64

// Log2Histogram is a power-of-two-bucketed latency histogram.
//
// Bucket i holds samples ns such that 2^i <= ns < 2^(i+1), except bucket 0
// which also holds ns == 0, and bucket 63 which is the overflow bucket for
// any ns that would otherwise need a higher index.
//
// Counts are stored as atomics so Add can be called from the measuring
// goroutine while Percentile/Min/Max/Avg are read from a separate
// reporting goroutine, matching the rest of this package's
// atomics-over-mutex style.
type Log2Histogram struct {
	_      pad
	counts [log2Buckets]atomix.Uint64
	total  atomix.Uint64
	sum    atomix.Uint64
	min    atomix.Uint64
	max    atomix.Uint64
}

// NewLog2Histogram returns an empty histogram.
func NewLog2Histogram() *Log2Histogram {
	h := &Log2Histogram{}
	h.min.Store(math.MaxUint64)
	return h
}

// bucketIndex returns the bucket for a nanosecond sample ns.
func bucketIndex(ns uint64) int {
	if ns == 0 {
		return 0
	}
	i := bits.Len64(ns) - 1
	if i > log2Buckets-1 {
		return log2Buckets - 1
	}
	return i
}

// Add records one sample, in nanoseconds.
func (h *Log2Histogram) Add(ns uint64) {
	h.counts[bucketIndex(ns)].Add(1)
	h.total.Add(1)
	h.sum.Add(ns)

	for {
		cur := h.min.Load()
		if ns >= cur || h.min.CompareAndSwapRelaxed(cur, ns) {
			break
		}
	}
	for {
		cur := h.max.Load()
		if ns <= cur || h.max.CompareAndSwapRelaxed(cur, ns) {
			break
		}
	}
}

// Total returns the number of samples recorded.
func (h *Log2Histogram) Total() uint64 {
	return h.total.Load()
}

// Min returns the smallest sample recorded, or 0 if none.
func (h *Log2Histogram) Min() uint64 {
	if h.total.Load() == 0 {
		return 0
	}
	return h.min.Load()
}

// Max returns the largest sample recorded.
func (h *Log2Histogram) Max() uint64 {
	return h.max.Load()
}

// Avg returns the arithmetic mean of all recorded samples, or 0 if none.
func (h *Log2Histogram) Avg() float64 {
	total := h.total.Load()
	if total == 0 {
		return 0
	}
	return float64(h.sum.Load()) / float64(total)
}

// Percentile scans buckets in order, accumulating counts until the
// cumulative count reaches ceil(p*total), and returns 2^(i+1) as an
// upper bound on that bucket's range (or math.MaxUint64 for the top
// bucket). Returns 0 if no samples have been recorded.
func (h *Log2Histogram) Percentile(p float64) uint64 {
	total := h.total.Load()
	if total == 0 {
		return 0
	}

	target := uint64(math.Ceil(p * float64(total)))
	if target == 0 {
		target = 1
	}

	var cumulative uint64
	for i := 0; i < log2Buckets; i++ {
		cumulative += h.counts[i].Load()
		if cumulative >= target {
			if i >= log2Buckets-1 {
				return math.MaxUint64
			}
			return uint64(1) << uint(i+1)
		}
	}
	return math.MaxUint64
}
