// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe

import "encoding/binary"

// Consumer is the single reader endpoint of a Ring.
type Consumer struct {
	ring *Ring

	localCounter uint64
	cachedCommit uint64
}

// TryRead copies the next frame's payload into dst.
//
// Returns:
//   - >0: the number of payload bytes copied into dst.
//   - 0: the queue is currently empty, or a zero-length frame was
//     consumed.
//   - <0: dst is too small; the magnitude is the required payload size.
//     No state advances.
func (c *Consumer) TryRead(dst []byte) int32 {
	r := c.ring
	capacity := r.mask + 1

	reserve := r.writeReserve.LoadAcquire()
	if reserve-c.localCounter > capacity {
		panic("ringframe: ring overrun, consumer too slow")
	}

	for {
		if c.localCounter == c.cachedCommit {
			c.cachedCommit = r.writeCommit.LoadAcquire()
			if c.localCounter == c.cachedCommit {
				return 0
			}
		}

		pos := c.localCounter & r.mask
		if pos+frameHeaderBytes > capacity {
			c.localCounter += capacity - pos
			continue
		}

		length := int32(binary.LittleEndian.Uint32(r.buf[pos:]))
		if length == wrapMarker {
			c.localCounter += capacity - pos
			c.cachedCommit = r.writeCommit.LoadAcquire()
			continue
		}
		if length < -1 {
			panic("ringframe: invalid frame length")
		}

		if int(length) > len(dst) {
			return -length
		}

		padded := r.roundUpBlock(uint64(length))
		frame := uint64(frameHeaderBytes) + padded

		copy(dst, r.buf[pos+frameHeaderBytes:pos+frameHeaderBytes+uint64(length)])
		c.localCounter += frame
		return length
	}
}

// ConsumedBytes returns the number of bytes this consumer has read so
// far.
func (c *Consumer) ConsumedBytes() uint64 {
	return c.localCounter
}
