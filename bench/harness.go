// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"code.hybscloud.com/ringframe"
	"code.hybscloud.com/ringframe/internal/affinity"
)

// symbols alternates between two fixed instruments.
var symbols = [2]string{"RING0000000000A", "RING0000000000B"}

// Run drives one full producer/consumer measurement and returns the
// aggregated results. The producer and consumer goroutines are each
// pinned to their own OS thread and, best-effort, to the CPUs named in
// cfg; a start barrier ensures both begin their measured interval
// together.
func Run(cfg Config) (res *Results, err error) {
	cfg = cfg.withDefaults()

	ring := ringframe.NewRing(cfg.CapacityBytes)
	producer := ring.MakeProducer()
	consumer := ring.MakeConsumer()

	var barrier startBarrier
	var wg sync.WaitGroup
	wg.Add(2)

	panics := make(chan any, 2)

	go func() {
		defer wg.Done()
		defer func() {
			if p := recover(); p != nil {
				panics <- p
			}
		}()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		_ = affinity.Pin(cfg.ProducerCPU)
		runProducer(producer, cfg, &barrier)
	}()

	var elapsed time.Duration
	var consumed uint64
	var checksum uint64
	hist := ringframe.NewLog2Histogram()

	go func() {
		defer wg.Done()
		defer func() {
			if p := recover(); p != nil {
				panics <- p
			}
		}()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		_ = affinity.Pin(cfg.ConsumerCPU)
		elapsed, consumed, checksum = runConsumer(consumer, cfg, &barrier, hist)
	}()

	wg.Wait()
	close(panics)
	for p := range panics {
		if err == nil {
			err = fmt.Errorf("bench: %v", p)
		}
	}
	if err != nil {
		return nil, err
	}

	return &Results{
		Messages: cfg.Messages,
		MsgSize:  ringframe.OrderMsgSize,
		Elapsed:  elapsed,
		Consumed: consumed,
		Checksum: checksum,
		Hist:     hist,
	}, nil
}

// runProducer generates cfg.Messages OrderMsg frames, alternating
// Buy/Sell by seq parity with qty = 1 + seq%10 and an alternating
// symbol, stamping TSQPC immediately before each enqueue.
func runProducer(p *ringframe.Producer, cfg Config, barrier *startBarrier) {
	barrier.arrive()

	var msg ringframe.OrderMsg
	buf := make([]byte, ringframe.OrderMsgSize)

	for seq := uint64(0); seq < cfg.Messages; seq++ {
		msg.TSQPC = ringframe.NowNanos()
		msg.Seq = seq
		if seq%2 == 0 {
			msg.Action = ringframe.ActionBuy
		} else {
			msg.Action = ringframe.ActionSell
		}
		msg.Qty = uint32(1 + seq%10)
		msg.PutSymbol(symbols[seq%2])

		msg.Encode(buf)
		p.Write(buf)
	}
}

// runConsumer reads cfg.Messages OrderMsg frames, verifying frame size,
// accumulating the anti-dead-code checksum, and sampling latency every
// cfg.SampleEvery-th frame. It returns the elapsed wall-clock time of its
// own measured interval, the number of frames consumed, and the final
// checksum.
func runConsumer(c *ringframe.Consumer, cfg Config, barrier *startBarrier, hist *ringframe.Log2Histogram) (elapsed time.Duration, consumed uint64, checksum uint64) {
	barrier.arrive()
	start := time.Now()

	buf := make([]byte, ringframe.OrderMsgSize)
	backoff := ringframe.FixedBackoff{Duration: cfg.EmptyBackoff}

	for consumed < cfg.Messages {
		n := c.TryRead(buf)
		switch {
		case n > 0:
			if int(n) != ringframe.OrderMsgSize {
				// No producer in this harness writes a frame of a
				// different size, but a future multi-shape producer
				// might; skip rather than assume every frame is an
				// OrderMsg.
				continue
			}
			msg := ringframe.DecodeOrderMsg(buf[:n])
			checksum += (msg.Seq * 1315423911) ^ (uint64(msg.Qty) * 2654435761)
			consumed++

			if cfg.SampleEvery <= 1 || consumed%uint64(cfg.SampleEvery) == 0 {
				now := ringframe.NowNanos()
				var delta uint64
				if now > msg.TSQPC {
					delta = now - msg.TSQPC
				}
				hist.Add(delta)
			}
		case n == 0:
			backoff.Wait()
		default:
			panic("bench: unexpected short destination buffer")
		}
	}

	return time.Since(start), consumed, checksum
}
