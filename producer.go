// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe

import "encoding/binary"

// Producer is the single writer endpoint of a Ring.
//
// Write and WriteWith never block and never fail visibly: the SPSC
// contract requires the Consumer to keep up. An overrun is a programmer
// error, detected only by the Consumer's own assertion.
type Producer struct {
	ring *Ring

	localCounter         uint64
	cachedReservePublish uint64
}

// Write enqueues one frame copying payload into the ring.
func (p *Producer) Write(payload []byte) {
	p.WriteWith(len(payload), func(dst []byte) { copy(dst, payload) })
}

// WriteWith enqueues one frame of the given size, calling fill to
// populate the payload region in place. fill is invoked with a slice of
// exactly size bytes; it must not retain dst past the call.
func (p *Producer) WriteWith(size int, fill func(dst []byte)) {
	r := p.ring
	capacity := r.mask + 1

	padded := r.roundUpBlock(uint64(size))
	frame := uint64(frameHeaderBytes) + padded

	pos := p.localCounter & r.mask

	switch {
	case pos+frameHeaderBytes > capacity:
		// Not even the header fits before the end; the tail bytes are
		// never read because the commit counter skips over them.
		p.localCounter += capacity - pos
		pos = 0
	case pos+frame > capacity:
		p.writeWrapMarker(pos)
		pos = 0
	}

	p.publishReserveIfNeeded(p.localCounter + frame)

	base := p.localCounter & r.mask
	binary.LittleEndian.PutUint32(r.buf[base:], uint32(int32(size)))

	dst := r.buf[base+frameHeaderBytes : base+frameHeaderBytes+uint64(size)]
	fill(dst)

	if padded > uint64(size) {
		clear(r.buf[base+frameHeaderBytes+uint64(size) : base+frameHeaderBytes+padded])
	}

	p.localCounter += frame
	r.writeCommit.StoreRelease(p.localCounter)
}

// writeWrapMarker writes the -1 sentinel at pos and publishes the jump to
// the next capacity-aligned boundary, making the dead tail visible to the
// consumer before any new frame could otherwise be read past it.
func (p *Producer) writeWrapMarker(pos uint64) {
	r := p.ring
	capacity := r.mask + 1

	binary.LittleEndian.PutUint32(r.buf[pos:], uint32(wrapMarker))

	p.localCounter += capacity - pos
	p.publishReserveIfNeeded(p.localCounter)
	r.writeCommit.StoreRelease(p.localCounter)
}

// publishReserveIfNeeded amortizes the write_reserve store across many
// frames: it only stores when the new target exceeds the last published
// value, rounded up to ReservePublishBlockBytes.
func (p *Producer) publishReserveIfNeeded(newCounter uint64) {
	if p.cachedReservePublish < newCounter {
		p.cachedReservePublish = p.ring.roundUpReserve(newCounter)
		p.ring.writeReserve.StoreRelease(p.cachedReservePublish)
	}
}

// CommittedBytes returns the number of bytes this producer has published
// to the ring so far.
func (p *Producer) CommittedBytes() uint64 {
	return p.localCounter
}
