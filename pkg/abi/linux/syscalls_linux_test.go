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

//go:build linux && (arm64 || riscv64 || loongarch64)
// +build linux
// +build arm64 riscv64 loongarch64

package linux

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestHostSyscallNumbers(t *testing.T) {
	for _, tc := range []struct {
		ours uintptr
		host uintptr
		name string
	}{
		{SYS_READ, unix.SYS_READ, "read"},
		{SYS_WRITE, unix.SYS_WRITE, "write"},
		{SYS_OPENAT, unix.SYS_OPENAT, "openat"},
		{SYS_CLOSE, unix.SYS_CLOSE, "close"},
		{SYS_EXIT_GROUP, unix.SYS_EXIT_GROUP, "exit_group"},
		{SYS_GETPID, unix.SYS_GETPID, "getpid"},
		{SYS_MREMAP, unix.SYS_MREMAP, "mremap"},
		{SYS_BRK, unix.SYS_BRK, "brk"},
		{SYS_MMAP, unix.SYS_MMAP, "mmap"},
		{SYS_CLONE, unix.SYS_CLONE, "clone"},
		{SYS_EXECVE, unix.SYS_EXECVE, "execve"},
		{SYS_WAIT4, unix.SYS_WAIT4, "wait4"},
		{SYS_PRLIMIT64, unix.SYS_PRLIMIT64, "prlimit64"},
		{SYS_GETRUSAGE, unix.SYS_GETRUSAGE, "getrusage"},
		{SYS_SYSINFO, unix.SYS_SYSINFO, "sysinfo"},
		{SYS_PRCTL, unix.SYS_PRCTL, "prctl"},
		{SYS_EVENTFD2, unix.SYS_EVENTFD2, "eventfd2"},
		{SYS_EPOLL_CREATE1, unix.SYS_EPOLL_CREATE1, "epoll_create1"},
		{SYS_EPOLL_CTL, unix.SYS_EPOLL_CTL, "epoll_ctl"},
		{SYS_EPOLL_PWAIT, unix.SYS_EPOLL_PWAIT, "epoll_pwait"},
		{SYS_PPOLL, unix.SYS_PPOLL, "ppoll"},
		{SYS_PSELECT6, unix.SYS_PSELECT6, "pselect6"},
		{SYS_RT_SIGACTION, unix.SYS_RT_SIGACTION, "rt_sigaction"},
		{SYS_RT_SIGPROCMASK, unix.SYS_RT_SIGPROCMASK, "rt_sigprocmask"},
		{SYS_SHMCTL, unix.SYS_SHMCTL, "shmctl"},
		{SYS_RENAMEAT2, unix.SYS_RENAMEAT2, "renameat2"},
		{SYS_MEMBARRIER, unix.SYS_MEMBARRIER, "membarrier"},
		{SYS_COPY_FILE_RANGE, unix.SYS_COPY_FILE_RANGE, "copy_file_range"},
		{SYS_FACCESSAT2, unix.SYS_FACCESSAT2, "faccessat2"},
	} {
		if tc.ours != tc.host {
			t.Errorf("SYS_%s = %d, host has %d", tc.name, tc.ours, tc.host)
		}
		if got := SyscallName(tc.host); got != tc.name {
			t.Errorf("SyscallName(%d) = %q, want %q", tc.host, got, tc.name)
		}
	}
}
