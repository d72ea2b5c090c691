// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringframe

import "time"

// clockBase carries the monotonic reading that NowNanos measures from.
var clockBase = time.Now()

// NowNanos returns the current monotonic time in nanoseconds.
//
// A platform high-resolution counter such as QueryPerformanceCounter
// needs a separate frequency query to convert ticks to nanoseconds.
// Go's monotonic clock is already nanosecond-denominated, so there is
// no frequency to query or ticks to convert here. Readings count from
// clockBase, taken when the package is initialized; only differences
// between readings are meaningful.
func NowNanos() uint64 {
	ns := time.Since(clockBase)
	if ns < 0 {
		return 0
	}
	return uint64(ns)
}
