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

package linux

import (
	"testing"

	"github.com/abitable/abitable/pkg/bits"
)

var epollSamples = []EpollEventMask{
	0,
	EPOLLIN,
	EPOLLIN | EPOLLOUT,
	EPOLLERR | EPOLLHUP | EPOLLRDHUP,
	EPOLLET | EPOLLONESHOT,
	EPOLLPRI | EPOLLEXCLUSIVE | 0x800,
	^EpollEventMask(0),
}

func TestEpollEventMaskAlgebra(t *testing.T) {
	for _, a := range epollSamples {
		if got := a.Intersect(a); got != a {
			t.Errorf("%v.Intersect(%v) = %v, want %v", a, a, got, a)
		}
		if got := a.Union(a); got != a {
			t.Errorf("%v.Union(%v) = %v, want %v", a, a, got, a)
		}
		if got := a.Difference(a); got != 0 {
			t.Errorf("%v.Difference(%v) = %v, want 0", a, a, got)
		}
		for _, b := range epollSamples {
			if a.Union(b) != b.Union(a) {
				t.Errorf("Union(%v, %v) is not commutative", a, b)
			}
			if a.Intersect(b) != b.Intersect(a) {
				t.Errorf("Intersect(%v, %v) is not commutative", a, b)
			}
			if !a.Union(b).Contains(a) || !a.Union(b).Contains(b) {
				t.Errorf("%v.Union(%v) = %v does not contain both operands", a, b, a.Union(b))
			}
			if d := a.Difference(b); d.ContainsAny(b) {
				t.Errorf("%v.Difference(%v) = %v still holds bits of %v", a, b, d, b)
			}
			for _, c := range epollSamples {
				if a.Union(b).Union(c) != a.Union(b.Union(c)) {
					t.Errorf("Union(%v, %v, %v) is not associative", a, b, c)
				}
			}
		}
	}
}

func TestEpollEventMaskAbsent(t *testing.T) {
	m := EPOLLIN.Union(EPOLLOUT)
	if m.ContainsAny(EPOLLERR | EPOLLHUP | EPOLLET) {
		t.Errorf("%v reports flags that were never added", m)
	}
	if !m.Contains(EPOLLIN) || !m.Contains(EPOLLOUT) {
		t.Errorf("%v lost a flag", m)
	}
	if m.Contains(EPOLLIN | EPOLLPRI) {
		t.Errorf("%v.Contains(EPOLLIN|EPOLLPRI) = true, want false", m)
	}
}

func TestEpollInOutRoundTrip(t *testing.T) {
	m := EPOLLIN | EPOLLOUT
	if n := bits.OnesCount(m); n != 2 {
		t.Errorf("EPOLLIN|EPOLLOUT has %d bits set, want 2", n)
	}
	if uint32(m) != 0x5 {
		t.Errorf("EPOLLIN|EPOLLOUT = %#x, want 0x5", uint32(m))
	}
	names, rest := EpollEventFlags.Names(uint64(m))
	if len(names) != 2 || names[0] != "EPOLLIN" || names[1] != "EPOLLOUT" || rest != 0 {
		t.Errorf("Names(%#x) = %v, %#x, want [EPOLLIN EPOLLOUT], 0", uint32(m), names, rest)
	}
	var back EpollEventMask
	for _, name := range names {
		v, ok := EpollEventFlags.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		back = back.Union(EpollEventMask(v))
	}
	if back != m {
		t.Errorf("round trip of %v gave %v", m, back)
	}
}

func TestEpollEventMaskString(t *testing.T) {
	for _, tc := range []struct {
		mask EpollEventMask
		want string
	}{
		{0, "0x0"},
		{EPOLLIN, "EPOLLIN"},
		{EPOLLIN | EPOLLOUT, "EPOLLIN|EPOLLOUT"},
		{EPOLLET | EPOLLIN, "EPOLLIN|EPOLLET"},
		{EPOLLIN | 0x800, "EPOLLIN|0x800"},
	} {
		if got := tc.mask.String(); got != tc.want {
			t.Errorf("EpollEventMask(%#x).String() = %q, want %q", uint32(tc.mask), got, tc.want)
		}
	}
}

func TestEpollFlagValues(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  EpollEventMask
		want uint32
	}{
		{"EPOLLIN", EPOLLIN, 0x001},
		{"EPOLLPRI", EPOLLPRI, 0x002},
		{"EPOLLOUT", EPOLLOUT, 0x004},
		{"EPOLLERR", EPOLLERR, 0x008},
		{"EPOLLHUP", EPOLLHUP, 0x010},
		{"EPOLLRDNORM", EPOLLRDNORM, 0x040},
		{"EPOLLRDBAND", EPOLLRDBAND, 0x080},
		{"EPOLLWRNORM", EPOLLWRNORM, 0x100},
		{"EPOLLWRBAND", EPOLLWRBAND, 0x200},
		{"EPOLLMSG", EPOLLMSG, 0x400},
		{"EPOLLRDHUP", EPOLLRDHUP, 0x2000},
		{"EPOLLEXCLUSIVE", EPOLLEXCLUSIVE, 1 << 28},
		{"EPOLLWAKEUP", EPOLLWAKEUP, 1 << 29},
		{"EPOLLONESHOT", EPOLLONESHOT, 1 << 30},
		{"EPOLLET", EPOLLET, 1 << 31},
	} {
		if uint32(tc.got) != tc.want {
			t.Errorf("%s = %#x, want %#x", tc.name, uint32(tc.got), tc.want)
		}
	}
	if EPOLL_CTL_ADD != 1 || EPOLL_CTL_DEL != 2 || EPOLL_CTL_MOD != 3 {
		t.Errorf("EPOLL_CTL_{ADD,DEL,MOD} = %d, %d, %d, want 1, 2, 3", EPOLL_CTL_ADD, EPOLL_CTL_DEL, EPOLL_CTL_MOD)
	}
}

func TestEventFdFlags(t *testing.T) {
	if EFD_SEMAPHORE != 1 || EFD_CLOEXEC != 0o2000000 || EFD_NONBLOCK != 0o4000 {
		t.Errorf("EFD_* = %#o, %#o, %#o", EFD_SEMAPHORE, EFD_CLOEXEC, EFD_NONBLOCK)
	}

	f := EFD_CLOEXEC.Union(EFD_NONBLOCK)
	if !f.Contains(EFD_CLOEXEC) || !f.Contains(EFD_NONBLOCK) || f.ContainsAny(EFD_SEMAPHORE) {
		t.Errorf("unexpected membership in %v", f)
	}
	if got := f.Intersect(EFD_NONBLOCK | EFD_SEMAPHORE); got != EFD_NONBLOCK {
		t.Errorf("%v.Intersect(EFD_NONBLOCK|EFD_SEMAPHORE) = %v, want EFD_NONBLOCK", f, got)
	}
	if got := f.Difference(EFD_CLOEXEC); got != EFD_NONBLOCK {
		t.Errorf("%v.Difference(EFD_CLOEXEC) = %v, want EFD_NONBLOCK", f, got)
	}
	if got, want := (EFD_SEMAPHORE | EFD_CLOEXEC).String(), "EFD_SEMAPHORE|EFD_CLOEXEC"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := EventFdFlags(0x10).String(), "0x10"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEpollEventData(t *testing.T) {
	for _, d := range []uint64{0, 1, 0xffffffff, 0x100000000, 0xdeadbeefcafef00d, ^uint64(0)} {
		e := NewEpollEvent(EPOLLIN|EPOLLET, d)
		if got := e.Data64(); got != d {
			t.Errorf("Data64() = %#x, want %#x", got, d)
		}
		if e.Events != EPOLLIN|EPOLLET {
			t.Errorf("Events = %v, want EPOLLIN|EPOLLET", e.Events)
		}
	}
}
