// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe_test

import (
	"bytes"
	"testing"

	"code.hybscloud.com/ringframe"
)

// TestEmptyRing is scenario S1: a fresh ring reports empty and has
// consumed nothing.
func TestEmptyRing(t *testing.T) {
	r := ringframe.NewRing(1024)
	c := r.MakeConsumer()

	buf := make([]byte, 64)
	if n := c.TryRead(buf); n != 0 {
		t.Fatalf("TryRead on empty ring: got %d, want 0", n)
	}
	if got := c.ConsumedBytes(); got != 0 {
		t.Fatalf("ConsumedBytes: got %d, want 0", got)
	}
}

// TestTinyPayload is scenario S2.
func TestTinyPayload(t *testing.T) {
	r := ringframe.NewRing(1024)
	p := r.MakeProducer()
	c := r.MakeConsumer()

	p.Write([]byte("hello\x00"))

	buf := make([]byte, 64)
	n := c.TryRead(buf)
	if n != 6 {
		t.Fatalf("TryRead: got %d, want 6", n)
	}
	if !bytes.Equal(buf[:6], []byte("hello\x00")) {
		t.Fatalf("TryRead payload: got %q", buf[:6])
	}
	if got := p.CommittedBytes(); got != 12 {
		t.Fatalf("CommittedBytes: got %d, want 12", got)
	}
	if got := c.ConsumedBytes(); got != 12 {
		t.Fatalf("ConsumedBytes: got %d, want 12", got)
	}
}

// TestDstTooSmall is scenario S3.
func TestDstTooSmall(t *testing.T) {
	r := ringframe.NewRing(1024)
	p := r.MakeProducer()
	c := r.MakeConsumer()

	payload := bytes.Repeat([]byte{0xAB}, 100)
	p.Write(payload)

	small := make([]byte, 16)
	if n := c.TryRead(small); n != -100 {
		t.Fatalf("TryRead(too small): got %d, want -100", n)
	}
	if got := c.ConsumedBytes(); got != 0 {
		t.Fatalf("ConsumedBytes after too-small read: got %d, want 0", got)
	}

	big := make([]byte, 128)
	if n := c.TryRead(big); n != 100 {
		t.Fatalf("TryRead(retry): got %d, want 100", n)
	}
	if !bytes.Equal(big[:100], payload) {
		t.Fatalf("TryRead(retry) payload mismatch")
	}
}

// TestWrapAround is scenario S4: capacity 1024, 200 frames of 9-byte
// payloads (20-byte frames including the 4-byte header), consumer reads
// all 200 in order with correct contents and the wrap marker fires at
// least once.
func TestWrapAround(t *testing.T) {
	const capacity = 1024
	r := ringframe.NewRing(capacity)
	p := r.MakeProducer()
	c := r.MakeConsumer()

	const n = 200
	payloads := make([][]byte, n)
	for i := range payloads {
		payloads[i] = bytes.Repeat([]byte{byte(i)}, 9)
	}

	buf := make([]byte, 64)
	for i := 0; i < n; i++ {
		p.Write(payloads[i])

		got := c.TryRead(buf)
		if got != 9 {
			t.Fatalf("frame %d: TryRead got %d, want 9", i, got)
		}
		if !bytes.Equal(buf[:9], payloads[i]) {
			t.Fatalf("frame %d: payload mismatch: got %v, want %v", i, buf[:9], payloads[i])
		}
	}

	// 200 frames * 20 bytes/frame = 4000 bytes > capacity, so at least
	// one wrap must have occurred.
	if got := c.ConsumedBytes(); got < capacity {
		t.Fatalf("ConsumedBytes: got %d, want >= capacity (%d) to prove a wrap happened", got, capacity)
	}
}

// TestRoundTripSequence is the round-trip property (invariant 1): for a
// sequence of payloads whose total framed size fits the ring, enqueuing
// then draining yields the same bytes in the same order.
func TestRoundTripSequence(t *testing.T) {
	r := ringframe.NewRing(4096)
	p := r.MakeProducer()
	c := r.MakeConsumer()

	sizes := []int{1, 7, 8, 9, 15, 16, 100, 3, 0, 64}
	var want [][]byte
	for i, sz := range sizes {
		payload := bytes.Repeat([]byte{byte(i + 1)}, sz)
		want = append(want, payload)
		p.Write(payload)
	}

	buf := make([]byte, 256)
	for i, payload := range want {
		n := c.TryRead(buf)
		if int(n) != len(payload) {
			t.Fatalf("frame %d: got len %d, want %d", i, n, len(payload))
		}
		if !bytes.Equal(buf[:n], payload) {
			t.Fatalf("frame %d: payload mismatch", i)
		}
	}
	if n := c.TryRead(buf); n != 0 {
		t.Fatalf("after drain: TryRead got %d, want 0", n)
	}
}

// TestMonotonicCounters is invariant 2: committed/consumed byte counts
// never decrease across operations.
func TestMonotonicCounters(t *testing.T) {
	r := ringframe.NewRing(1024)
	p := r.MakeProducer()
	c := r.MakeConsumer()

	buf := make([]byte, 32)
	var lastCommitted, lastConsumed uint64
	for i := 0; i < 50; i++ {
		p.Write(bytes.Repeat([]byte{1}, 5))

		committed := p.CommittedBytes()
		if committed < lastCommitted {
			t.Fatalf("iteration %d: CommittedBytes went backwards: %d < %d", i, committed, lastCommitted)
		}
		lastCommitted = committed

		if n := c.TryRead(buf); n <= 0 {
			t.Fatalf("iteration %d: expected a frame, got %d", i, n)
		}
		consumed := c.ConsumedBytes()
		if consumed < lastConsumed {
			t.Fatalf("iteration %d: ConsumedBytes went backwards: %d < %d", i, consumed, lastConsumed)
		}
		lastConsumed = consumed
	}
}

// TestNoFalseEmptiness is invariant 5: once the producer has committed a
// frame the consumer hasn't read, TryRead with a sufficiently large dst
// eventually returns a positive length.
func TestNoFalseEmptiness(t *testing.T) {
	r := ringframe.NewRing(1024)
	p := r.MakeProducer()
	c := r.MakeConsumer()

	p.Write([]byte("present"))

	buf := make([]byte, 64)
	for attempt := 0; attempt < 2; attempt++ {
		if n := c.TryRead(buf); n > 0 {
			return
		}
	}
	t.Fatal("TryRead never returned a committed frame within 2 calls")
}

func TestRingCapacityMustBePowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-power-of-two capacity")
		}
	}()
	ringframe.NewRing(100)
}

func TestMakeProducerOnce(t *testing.T) {
	r := ringframe.NewRing(1024)
	r.MakeProducer()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second MakeProducer")
		}
	}()
	r.MakeProducer()
}

func TestMakeConsumerOnce(t *testing.T) {
	r := ringframe.NewRing(1024)
	r.MakeConsumer()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second MakeConsumer")
		}
	}()
	r.MakeConsumer()
}

// TestSmallRingReserveBlockClamped is a regression test: a ring smaller
// than DefaultReservePublishBlockBytes must clamp its reserve-publish
// block down to a quarter of capacity rather than letting the first write publish a
// write_reserve that already exceeds capacity, which would make the very
// next TryRead panic as a false overrun.
func TestSmallRingReserveBlockClamped(t *testing.T) {
	r := ringframe.NewRing(1024)
	p := r.MakeProducer()
	c := r.MakeConsumer()

	p.Write([]byte("x"))

	buf := make([]byte, 64)
	if n := c.TryRead(buf); n != 1 {
		t.Fatalf("TryRead: got %d, want 1", n)
	}
}

// TestReservePublishBlockMustNotExceedCapacity checks that an
// explicit reserve-publish block larger than capacity is a
// misconfiguration NewRing must reject, not silently clamp.
func TestReservePublishBlockMustNotExceedCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for ReservePublishBlockBytes > capacityBytes")
		}
	}()
	ringframe.NewRing(1024, ringframe.WithReservePublishBlock(2048))
}
