// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"time"

	"code.hybscloud.com/ringframe"
)

// Config configures one benchmark run.
type Config struct {
	// Messages is the number of OrderMsg frames the producer generates.
	Messages uint64
	// SampleEvery samples latency every SampleEvery-th consumed frame.
	// 0 or 1 samples every frame.
	SampleEvery uint32
	// EmptyBackoff is how long the consumer sleeps after an empty
	// TryRead before polling again.
	EmptyBackoff time.Duration
	// CapacityBytes is the ring's capacity. 0 uses ringframe.DefaultCapacityBytes.
	CapacityBytes int
	// ProducerCPU and ConsumerCPU are the CPUs the producer and consumer
	// goroutines are pinned to (internal/affinity.Pin, best-effort).
	ProducerCPU int
	ConsumerCPU int
}

// DefaultConfig returns the standard benchmark configuration:
// 5,000,000 messages, sampling every frame, a 10us empty backoff, a
// 1 MiB ring, producer pinned to CPU 0 and consumer to CPU 1.
func DefaultConfig() Config {
	return Config{
		Messages:      5_000_000,
		SampleEvery:   1,
		EmptyBackoff:  10 * time.Microsecond,
		CapacityBytes: ringframe.DefaultCapacityBytes,
		ProducerCPU:   0,
		ConsumerCPU:   1,
	}
}

func (c Config) withDefaults() Config {
	if c.Messages == 0 {
		c.Messages = 5_000_000
	}
	if c.SampleEvery == 0 {
		c.SampleEvery = 1
	}
	if c.EmptyBackoff == 0 {
		c.EmptyBackoff = 10 * time.Microsecond
	}
	if c.CapacityBytes == 0 {
		c.CapacityBytes = ringframe.DefaultCapacityBytes
	}
	return c
}
