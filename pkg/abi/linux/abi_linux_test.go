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

//go:build linux
// +build linux

package linux

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

func TestHostStructSizes(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"rlimit", unsafe.Sizeof(RLimit64{}), unsafe.Sizeof(unix.Rlimit{})},
		{"timespec", unsafe.Sizeof(Timespec{}), unsafe.Sizeof(unix.Timespec{})},
		{"timeval", unsafe.Sizeof(Timeval{}), unsafe.Sizeof(unix.Timeval{})},
		{"rusage", unsafe.Sizeof(Rusage{}), unsafe.Sizeof(unix.Rusage{})},
		{"sysinfo", unsafe.Sizeof(Sysinfo{}), unsafe.Sizeof(unix.Sysinfo_t{})},
		{"siginfo", unsafe.Sizeof(SignalInfo{}), unsafe.Sizeof(unix.Siginfo{})},
		{"epoll_event", unsafe.Sizeof(EpollEvent{}), unsafe.Sizeof(unix.EpollEvent{})},
	} {
		if tc.got != tc.want {
			t.Errorf("sizeof(struct %s) = %d, host has %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestHostStructOffsets(t *testing.T) {
	var (
		ru  Rusage
		hru unix.Rusage
		si  Sysinfo
		hsi unix.Sysinfo_t
	)
	for _, tc := range []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"ru_stime", unsafe.Offsetof(ru.STime), unsafe.Offsetof(hru.Stime)},
		{"ru_maxrss", unsafe.Offsetof(ru.MaxRSS), unsafe.Offsetof(hru.Maxrss)},
		{"ru_nivcsw", unsafe.Offsetof(ru.NIvCSw), unsafe.Offsetof(hru.Nivcsw)},
		{"loads", unsafe.Offsetof(si.Loads), unsafe.Offsetof(hsi.Loads)},
		{"freeswap", unsafe.Offsetof(si.FreeSwap), unsafe.Offsetof(hsi.Freeswap)},
		{"procs", unsafe.Offsetof(si.Procs), unsafe.Offsetof(hsi.Procs)},
		{"totalhigh", unsafe.Offsetof(si.TotalHigh), unsafe.Offsetof(hsi.Totalhigh)},
		{"mem_unit", unsafe.Offsetof(si.Unit), unsafe.Offsetof(hsi.Unit)},
	} {
		if tc.got != tc.want {
			t.Errorf("offsetof(%s) = %d, host has %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestHostConstants(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  uint64
		want uint64
	}{
		{"EPOLLIN", uint64(EPOLLIN), unix.EPOLLIN},
		{"EPOLLPRI", uint64(EPOLLPRI), unix.EPOLLPRI},
		{"EPOLLOUT", uint64(EPOLLOUT), unix.EPOLLOUT},
		{"EPOLLERR", uint64(EPOLLERR), unix.EPOLLERR},
		{"EPOLLHUP", uint64(EPOLLHUP), unix.EPOLLHUP},
		{"EPOLLRDNORM", uint64(EPOLLRDNORM), unix.EPOLLRDNORM},
		{"EPOLLRDBAND", uint64(EPOLLRDBAND), unix.EPOLLRDBAND},
		{"EPOLLWRNORM", uint64(EPOLLWRNORM), unix.EPOLLWRNORM},
		{"EPOLLWRBAND", uint64(EPOLLWRBAND), unix.EPOLLWRBAND},
		{"EPOLLMSG", uint64(EPOLLMSG), unix.EPOLLMSG},
		{"EPOLLRDHUP", uint64(EPOLLRDHUP), unix.EPOLLRDHUP},
		{"EPOLLEXCLUSIVE", uint64(EPOLLEXCLUSIVE), unix.EPOLLEXCLUSIVE},
		{"EPOLLWAKEUP", uint64(EPOLLWAKEUP), unix.EPOLLWAKEUP},
		{"EPOLLONESHOT", uint64(EPOLLONESHOT), unix.EPOLLONESHOT},
		{"EPOLLET", uint64(EPOLLET), unix.EPOLLET},
		{"EPOLL_CTL_ADD", EPOLL_CTL_ADD, unix.EPOLL_CTL_ADD},
		{"EPOLL_CTL_DEL", EPOLL_CTL_DEL, unix.EPOLL_CTL_DEL},
		{"EPOLL_CTL_MOD", EPOLL_CTL_MOD, unix.EPOLL_CTL_MOD},
		{"EPOLL_CLOEXEC", EPOLL_CLOEXEC, unix.EPOLL_CLOEXEC},
		{"EFD_SEMAPHORE", uint64(EFD_SEMAPHORE), unix.EFD_SEMAPHORE},
		{"EFD_CLOEXEC", uint64(EFD_CLOEXEC), unix.EFD_CLOEXEC},
		{"EFD_NONBLOCK", uint64(EFD_NONBLOCK), unix.EFD_NONBLOCK},
		{"O_NONBLOCK", O_NONBLOCK, unix.O_NONBLOCK},
		{"O_CLOEXEC", O_CLOEXEC, unix.O_CLOEXEC},
		{"RLIMIT_CPU", RLIMIT_CPU, unix.RLIMIT_CPU},
		{"RLIMIT_FSIZE", RLIMIT_FSIZE, unix.RLIMIT_FSIZE},
		{"RLIMIT_DATA", RLIMIT_DATA, unix.RLIMIT_DATA},
		{"RLIMIT_STACK", RLIMIT_STACK, unix.RLIMIT_STACK},
		{"RLIMIT_CORE", RLIMIT_CORE, unix.RLIMIT_CORE},
		{"RLIMIT_NOFILE", RLIMIT_NOFILE, unix.RLIMIT_NOFILE},
		{"RLIMIT_AS", RLIMIT_AS, unix.RLIMIT_AS},
		{"RLIM_INFINITY", RLimInfinity, unix.RLIM_INFINITY},
		{"RUSAGE_SELF", RUSAGE_SELF, unix.RUSAGE_SELF},
		{"RUSAGE_THREAD", RUSAGE_THREAD, unix.RUSAGE_THREAD},
		{"PR_SET_PDEATHSIG", PR_SET_PDEATHSIG, unix.PR_SET_PDEATHSIG},
		{"PR_SET_NAME", PR_SET_NAME, unix.PR_SET_NAME},
		{"PR_GET_NAME", PR_GET_NAME, unix.PR_GET_NAME},
		{"PR_SET_SECCOMP", PR_SET_SECCOMP, unix.PR_SET_SECCOMP},
		{"PR_SET_MM", PR_SET_MM, unix.PR_SET_MM},
		{"PR_SET_MM_EXE_FILE", PR_SET_MM_EXE_FILE, unix.PR_SET_MM_EXE_FILE},
		{"PR_SET_CHILD_SUBREAPER", PR_SET_CHILD_SUBREAPER, unix.PR_SET_CHILD_SUBREAPER},
		{"PR_SET_NO_NEW_PRIVS", PR_SET_NO_NEW_PRIVS, unix.PR_SET_NO_NEW_PRIVS},
		{"PR_CAP_AMBIENT", PR_CAP_AMBIENT, unix.PR_CAP_AMBIENT},
		{"PR_CAP_AMBIENT_RAISE", PR_CAP_AMBIENT_RAISE, unix.PR_CAP_AMBIENT_RAISE},
		{"PR_SET_SPECULATION_CTRL", PR_SET_SPECULATION_CTRL, unix.PR_SET_SPECULATION_CTRL},
		{"TCGETS", TCGETS, unix.TCGETS},
		{"TIOCGWINSZ", TIOCGWINSZ, unix.TIOCGWINSZ},
		{"TIOCGPTN", TIOCGPTN, unix.TIOCGPTN},
		// x/sys/unix does not export these two; the values are the same on
		// every architecture.
		{"FIONBIO", FIONBIO, 0x5421},
		{"FIOCLEX", FIOCLEX, 0x5451},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %#x, host has %#x", tc.name, tc.got, tc.want)
		}
	}
	if RUSAGE_CHILDREN != unix.RUSAGE_CHILDREN {
		t.Errorf("RUSAGE_CHILDREN = %d, host has %d", RUSAGE_CHILDREN, unix.RUSAGE_CHILDREN)
	}
}

func TestHostSignals(t *testing.T) {
	for _, tc := range []struct {
		sig  Signal
		host unix.Signal
	}{
		{SIGHUP, unix.SIGHUP},
		{SIGINT, unix.SIGINT},
		{SIGKILL, unix.SIGKILL},
		{SIGSEGV, unix.SIGSEGV},
		{SIGTERM, unix.SIGTERM},
		{SIGCHLD, unix.SIGCHLD},
		{SIGSTOP, unix.SIGSTOP},
		{SIGSYS, unix.SIGSYS},
	} {
		if int(tc.sig) != int(tc.host) {
			t.Errorf("%v = %d, host has %d", tc.sig, int(tc.sig), int(tc.host))
		}
		if got, want := tc.sig.String(), unix.SignalName(tc.host); got != want {
			t.Errorf("Signal(%d).String() = %q, host has %q", int(tc.sig), got, want)
		}
	}
}
