// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench is the latency-measurement harness that stresses
// [code.hybscloud.com/ringframe]'s SPSC ring: a pinned producer goroutine
// and a pinned consumer goroutine, released from a two-party start
// barrier, exchanging OrderMsg frames at the rates the ring's wait-free
// design is meant to sustain.
//
// Run drives one full measurement and returns aggregated throughput,
// bandwidth, and latency percentiles:
//
//	res, err := bench.Run(bench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res)
package bench
