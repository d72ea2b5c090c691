// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

// Pin is a best-effort no-op on platforms without a CPU affinity syscall
// this package wires to. The caller's prior runtime.LockOSThread still
// keeps the goroutine on one OS thread; it just isn't steered to a
// specific core.
func Pin(cpu int) error {
	return nil
}
