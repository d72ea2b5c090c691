// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// startBarrier is a two-party rendezvous: both the producer and the
// consumer goroutine call arrive before either begins its measured work,
// so neither side's clock starts ahead of the other's.
//
// Pairs a shared atomic counter with spin.Wait for a short contended
// wait rather than a sync.WaitGroup, since the expected wait here is
// sub-microsecond.
type startBarrier struct {
	arrived atomix.Int32
}

func (b *startBarrier) arrive() {
	b.arrived.Add(1)
	sw := spin.Wait{}
	for b.arrived.Load() < 2 {
		sw.Once()
	}
}
