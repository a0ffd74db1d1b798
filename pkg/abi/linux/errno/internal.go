// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errno

// Kernel-internal errno values from include/linux/errno.h. They must never be
// seen by user space and are therefore not part of the set returned by All.
const (
	ERESTARTSYS           Errno = -512
	ERESTARTNOINTR        Errno = -513
	ERESTARTNOHAND        Errno = -514
	ENOIOCTLCMD           Errno = -515
	ERESTART_RESTARTBLOCK Errno = -516
)

// Return returns e as it is written into a syscall return register: the
// two's complement of the positive errno.
func (e Errno) Return() uintptr {
	return uintptr(e)
}

// FromReturn extracts an Errno from a syscall return register value. ok is
// false if rv does not lie in the errno range [-4095, -1].
func FromReturn(rv uintptr) (e Errno, ok bool) {
	const maxReturnErrno = 4095
	if v := int64(rv); v < 0 && v >= -maxReturnErrno {
		return Errno(v), true
	}
	return NOERRNO, false
}
