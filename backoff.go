// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe

import "time"

// FixedBackoff sleeps a constant duration on every Wait call.
//
// This is deliberately not code.hybscloud.com/iox's Backoff: iox.Backoff
// grows its wait exponentially, tuned for producer/consumer contention on
// a bounded queue. The benchmark harness's empty-poll backoff wants a
// single fixed duration instead, so it gets its own tiny type rather than
// fighting iox.Backoff's growth behavior.
type FixedBackoff struct {
	Duration time.Duration
}

// Wait sleeps for Duration. A zero Duration returns immediately.
func (b FixedBackoff) Wait() {
	if b.Duration > 0 {
		time.Sleep(b.Duration)
	}
}
