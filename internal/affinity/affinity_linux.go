// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import "golang.org/x/sys/unix"

// Pin sets the calling OS thread's CPU affinity mask to the single CPU
// cpu. The caller must have already called runtime.LockOSThread.
func Pin(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
