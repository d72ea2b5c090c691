// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

const (
	// DefaultCapacityBytes is the default ring size: 1 MiB.
	DefaultCapacityBytes = 1 << 20
	// DefaultBlockAlignment is the default frame padding granularity.
	DefaultBlockAlignment = 8
	// DefaultReservePublishBlockBytes is the default rounding granularity
	// for the coarse-grained write_reserve publish.
	DefaultReservePublishBlockBytes = 1 << 16

	cacheLine = 64

	// wrapMarker is the in-band sentinel length that tells the consumer
	// the rest of the ring up to capacity is dead space.
	wrapMarker int32 = -1

	frameHeaderBytes = 4
)

// pad is cache-line padding to prevent false sharing between adjacent
// atomics or between an atomic and the buffer header.
type pad [cacheLine]byte

// Ring is a fixed-capacity byte buffer shared by exactly one Producer and
// one Consumer. Capacity must be a power of two; construction panics
// otherwise (a ring is a wiring-time contract, not a runtime-negotiated
// one, so there is no rounding-up behavior here the way queue capacities
// round up elsewhere in this ecosystem).
//
// Ring storage is owned exclusively by the Ring. Producer and Consumer
// hold non-owning references and must not outlive it.
type Ring struct {
	_            pad
	writeReserve atomix.Uint64 // producer-published upper bound
	_            pad
	writeCommit  atomix.Uint64 // producer-published exact ready count
	_            pad

	buf          []byte
	mask         uint64
	blockAlign   uint64
	alignMask    uint64
	reserveBlock uint64

	producerTaken bool
	consumerTaken bool
}

// RingOption configures a Ring at construction time.
type RingOption func(*ringOptions)

type ringOptions struct {
	blockAlignment           int
	reservePublishBlockBytes int
}

// WithBlockAlignment overrides DefaultBlockAlignment. n must be a power
// of two.
func WithBlockAlignment(n int) RingOption {
	return func(o *ringOptions) { o.blockAlignment = n }
}

// WithReservePublishBlock overrides DefaultReservePublishBlockBytes. n
// must be a power of two no greater than the ring's capacity; NewRing
// panics otherwise. Left unset, the block is
// DefaultReservePublishBlockBytes or a quarter of capacity, whichever is
// smaller, so a small ring never panics here.
func WithReservePublishBlock(n int) RingOption {
	return func(o *ringOptions) { o.reservePublishBlockBytes = n }
}

// NewRing allocates a capacityBytes-sized ring, aligned to a cache line.
// capacityBytes must be a power of two and at least 2; NewRing panics
// otherwise.
func NewRing(capacityBytes int, opts ...RingOption) *Ring {
	if capacityBytes < 2 || !isPow2(uint64(capacityBytes)) {
		panic("ringframe: capacityBytes must be a power of two")
	}

	o := ringOptions{
		blockAlignment: DefaultBlockAlignment,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !isPow2(uint64(o.blockAlignment)) {
		panic("ringframe: BlockAlignment must be a power of two")
	}

	// reservePublishBlockBytes must never exceed capacityBytes: the
	// consumer's overrun check (write_reserve - local_counter <= C)
	// assumes write_reserve never leads the ring by more than one
	// capacity, and a reserve block rounds every publish up to its own
	// size before the corresponding bytes are actually committed. Left
	// unclamped, a ring smaller than the default 64 KiB block would
	// overrun on its first write. An explicit WithReservePublishBlock
	// larger than the ring is a caller error, not something to silently
	// clamp.
	//
	// The default goes further than just fitting under capacity: it
	// targets a quarter of capacity, so the rounding overshoot at a wrap
	// boundary (up to one block) still leaves headroom before the
	// overrun check's capacity bound. A block equal to the full capacity
	// can round a single publish almost a whole capacity ahead of the
	// bytes actually written, which trips the overrun check even when
	// the consumer is fully caught up.
	reserveBlock := o.reservePublishBlockBytes
	switch {
	case reserveBlock == 0:
		reserveBlock = DefaultReservePublishBlockBytes
		if quarter := capacityBytes / 4; quarter < 1 {
			reserveBlock = 1
		} else if reserveBlock > quarter {
			reserveBlock = quarter
		}
	case !isPow2(uint64(reserveBlock)):
		panic("ringframe: ReservePublishBlockBytes must be a power of two")
	case reserveBlock > capacityBytes:
		panic("ringframe: ReservePublishBlockBytes must be <= capacityBytes")
	}

	r := &Ring{
		buf:          alignedBytes(capacityBytes, cacheLine),
		mask:         uint64(capacityBytes) - 1,
		blockAlign:   uint64(o.blockAlignment),
		alignMask:    uint64(o.blockAlignment) - 1,
		reserveBlock: uint64(reserveBlock),
	}
	return r
}

// MakeProducer returns the ring's single Producer endpoint. Panics if
// called more than once.
func (r *Ring) MakeProducer() *Producer {
	if r.producerTaken {
		panic("ringframe: MakeProducer called more than once")
	}
	r.producerTaken = true
	return &Producer{ring: r}
}

// MakeConsumer returns the ring's single Consumer endpoint. Panics if
// called more than once.
func (r *Ring) MakeConsumer() *Consumer {
	if r.consumerTaken {
		panic("ringframe: MakeConsumer called more than once")
	}
	r.consumerTaken = true
	return &Consumer{ring: r}
}

// Cap returns the ring's capacity in bytes.
func (r *Ring) Cap() int {
	return int(r.mask + 1)
}

func (r *Ring) roundUpBlock(n uint64) uint64 {
	return (n + r.alignMask) &^ r.alignMask
}

func (r *Ring) roundUpReserve(n uint64) uint64 {
	m := r.reserveBlock - 1
	return (n + m) &^ m
}

// isPow2 reports whether n is a power of two.
func isPow2(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// alignedBytes returns a zeroed byte slice of exactly n bytes whose first
// element starts on an align-byte boundary. align must be a power of two.
func alignedBytes(n, align int) []byte {
	buf := make([]byte, n+align-1)
	off := -int(uintptr(unsafe.Pointer(&buf[0]))) & (align - 1)
	return buf[off : off+n : off+n]
}
