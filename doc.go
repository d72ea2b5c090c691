// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringframe is a lock-free single-producer/single-consumer
// byte-framed ring buffer for shuttling fixed- and variable-length
// messages between one producer goroutine and one consumer goroutine at
// high message rates.
//
// # Quick Start
//
//	r := ringframe.NewRing(ringframe.DefaultCapacityBytes)
//	p := r.MakeProducer()
//	c := r.MakeConsumer()
//
//	p.Write([]byte("hello"))
//
//	buf := make([]byte, 64)
//	n := c.TryRead(buf)
//	// n > 0: buf[:n] is the payload
//	// n == 0: ring currently empty
//	// n < 0: buf too small, -n is the required size
//
// # Frame Layout
//
// Each enqueued message is stored as a 4-byte signed length prefix
// followed by that many payload bytes, padded up to the ring's
// BlockAlignment. A length of -1 is the in-band wrap marker: it tells the
// consumer that the rest of the ring up to capacity is dead space and
// local_counter should jump to the next capacity-aligned position. See
// ring.go, producer.go, and consumer.go for the exact algorithm.
//
// # Concurrency Model
//
// Ring is wait-free on both the producer and consumer sides. It
// supports exactly one Producer and one Consumer per Ring — MakeProducer
// and MakeConsumer each panic on a second call. There is no lock
// anywhere on the hot path: the two-counter reserve/commit scheme
// (write_reserve published coarsely, write_commit published precisely,
// both via [code.hybscloud.com/atomix] release/acquire operations) is
// the entire publication protocol.
//
// The design does not extend to multiple producers or multiple
// consumers. Doing so safely requires a different algorithm entirely
// (per-slot sequence numbers or CAS on the reserve counter) and is out
// of scope for this package.
//
// # Overrun Is a Programmer Error
//
// The producer never blocks and never fails visibly: the SPSC contract
// requires the consumer to keep up. If it doesn't, Consumer.TryRead
// panics on the next call once write_reserve has outrun the consumer's
// local counter by more than the ring's capacity. This is by design —
// there is no backpressure path in this package; callers needing
// backpressure should size the ring and poll rate accordingly.
//
// # Benchmark Harness
//
// Package [code.hybscloud.com/ringframe/bench] drives a full
// producer/consumer measurement: pinned goroutines, a two-party start
// barrier, a packed OrderMsg payload, and a Log2Histogram reporting
// throughput, bandwidth, and latency percentiles.
package ringframe
