// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affinity pins the calling goroutine's current OS thread to a
// specific CPU, for the benchmark harness's producer/consumer/driver
// thread layout.
//
// Pin must be called after runtime.LockOSThread from a goroutine that
// will not be rescheduled onto another OS thread for the lifetime of the
// pin.
package affinity
