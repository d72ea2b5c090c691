// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"strings"
	"time"

	"code.hybscloud.com/ringframe"
)

// Results aggregates one run's throughput and latency measurements.
type Results struct {
	Messages uint64
	MsgSize  int
	Elapsed  time.Duration
	Consumed uint64
	Checksum uint64
	Hist     *ringframe.Log2Histogram
}

// Throughput returns messages consumed per second.
func (r *Results) Throughput() float64 {
	secs := r.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(r.Consumed) / secs
}

// BandwidthMiB returns consumed bytes per second, in MiB/s.
func (r *Results) BandwidthMiB() float64 {
	secs := r.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	bytes := float64(r.Consumed) * float64(r.MsgSize)
	return bytes / (1024 * 1024) / secs
}

// String renders the human-readable report format.
func (r *Results) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Messages   : %d\n", r.Messages)
	fmt.Fprintf(&b, "Msg size   : %d bytes\n", r.MsgSize)
	fmt.Fprintf(&b, "Time       : %.3f s\n", r.Elapsed.Seconds())
	fmt.Fprintf(&b, "Throughput : %.0f msg/s\n", r.Throughput())
	fmt.Fprintf(&b, "Bandwidth  : %.2f MiB/s\n", r.BandwidthMiB())
	fmt.Fprintf(&b, "Consumed   : %d\n", r.Consumed)
	fmt.Fprintf(&b, "Checksum   : %d\n", r.Checksum)
	fmt.Fprintf(&b, "Latency (ns) over %d samples:\n", r.Hist.Total())
	fmt.Fprintf(&b, "  min   : %d\n", r.Hist.Min())
	fmt.Fprintf(&b, "  p50~  : %d\n", r.Hist.Percentile(0.50))
	fmt.Fprintf(&b, "  p99~  : %d\n", r.Hist.Percentile(0.99))
	fmt.Fprintf(&b, "  p99.9~: %d\n", r.Hist.Percentile(0.999))
	fmt.Fprintf(&b, "  max   : %d\n", r.Hist.Max())
	fmt.Fprintf(&b, "  avg   : %.1f\n", r.Hist.Avg())
	return b.String()
}
