// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe_test

import (
	"math"
	"testing"

	"code.hybscloud.com/ringframe"
)

// TestHistogramSamples is scenario S6.
func TestHistogramSamples(t *testing.T) {
	h := ringframe.NewLog2Histogram()
	for _, ns := range []uint64{1, 2, 4, 8, 16, 32, 64, 128} {
		h.Add(ns)
	}

	if got := h.Percentile(1.0); got != 256 {
		t.Fatalf("Percentile(1.0): got %d, want 256", got)
	}

	median := h.Percentile(0.5)
	if median == 0 {
		t.Fatal("Percentile(0.5): got 0")
	}
}

func TestHistogramEmpty(t *testing.T) {
	h := ringframe.NewLog2Histogram()
	if got := h.Percentile(0.5); got != 0 {
		t.Fatalf("Percentile on empty histogram: got %d, want 0", got)
	}
	if got := h.Min(); got != 0 {
		t.Fatalf("Min on empty histogram: got %d, want 0", got)
	}
	if got := h.Max(); got != 0 {
		t.Fatalf("Max on empty histogram: got %d, want 0", got)
	}
}

// TestHistogramPercentileMonotonic is invariant 6.
func TestHistogramPercentileMonotonic(t *testing.T) {
	h := ringframe.NewLog2Histogram()
	for i := uint64(1); i <= 10000; i++ {
		h.Add(i * 37)
	}

	ps := []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999, 1.0}
	var prev uint64
	for _, p := range ps {
		v := h.Percentile(p)
		if v < prev {
			t.Fatalf("percentile(%v)=%d < previous %d: not monotonic", p, v, prev)
		}
		prev = v
	}
}

// TestHistogramBounds is invariant 7: every observed sample is at most
// Percentile(1.0), and Max/Min report the largest and smallest samples.
func TestHistogramBounds(t *testing.T) {
	h := ringframe.NewLog2Histogram()
	samples := []uint64{0, 1, 2, 3, 1000, 1 << 20, math.MaxUint32}
	for _, s := range samples {
		h.Add(s)
	}

	p100 := h.Percentile(1.0)
	for _, s := range samples {
		if s > p100 && p100 != math.MaxUint64 {
			t.Fatalf("sample %d exceeds Percentile(1.0)=%d", s, p100)
		}
	}
	if h.Max() != math.MaxUint32 {
		t.Fatalf("Max: got %d, want %d", h.Max(), uint64(math.MaxUint32))
	}
	if h.Min() != 0 {
		t.Fatalf("Min: got %d, want 0", h.Min())
	}
}
