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
	"github.com/abitable/abitable/pkg/abi"
	"github.com/abitable/abitable/pkg/bits"
)

// EpollEventMask is the event mask carried by struct epoll_event.
type EpollEventMask uint32

// Event masks.
const (
	EPOLLIN     EpollEventMask = 0x1
	EPOLLPRI    EpollEventMask = 0x2
	EPOLLOUT    EpollEventMask = 0x4
	EPOLLERR    EpollEventMask = 0x8
	EPOLLHUP    EpollEventMask = 0x10
	EPOLLRDNORM EpollEventMask = 0x40
	EPOLLRDBAND EpollEventMask = 0x80
	EPOLLWRNORM EpollEventMask = 0x100
	EPOLLWRBAND EpollEventMask = 0x200
	EPOLLMSG    EpollEventMask = 0x400
	EPOLLRDHUP  EpollEventMask = 0x2000
)

// Per-file descriptor flags.
const (
	EPOLLEXCLUSIVE EpollEventMask = 1 << 28
	EPOLLWAKEUP    EpollEventMask = 1 << 29
	EPOLLONESHOT   EpollEventMask = 1 << 30
	EPOLLET        EpollEventMask = 1 << 31

	// EP_PRIVATE_BITS is fixed by Linux to the following values.
	EP_PRIVATE_BITS = EPOLLWAKEUP | EPOLLONESHOT | EPOLLET | EPOLLEXCLUSIVE
)

// Operation flags.
const (
	EPOLL_CLOEXEC  = 0x80000
	EPOLL_NONBLOCK = 0x800
)

// Operation codes.
const (
	EPOLL_CTL_ADD = 0x1
	EPOLL_CTL_DEL = 0x2
	EPOLL_CTL_MOD = 0x3
)

// EpollEventFlags is the set of named epoll event bits, in display order.
var EpollEventFlags = abi.FlagSet{
	{Flag: uint64(EPOLLIN), Name: "EPOLLIN"},
	{Flag: uint64(EPOLLPRI), Name: "EPOLLPRI"},
	{Flag: uint64(EPOLLOUT), Name: "EPOLLOUT"},
	{Flag: uint64(EPOLLERR), Name: "EPOLLERR"},
	{Flag: uint64(EPOLLHUP), Name: "EPOLLHUP"},
	{Flag: uint64(EPOLLRDNORM), Name: "EPOLLRDNORM"},
	{Flag: uint64(EPOLLRDBAND), Name: "EPOLLRDBAND"},
	{Flag: uint64(EPOLLWRNORM), Name: "EPOLLWRNORM"},
	{Flag: uint64(EPOLLWRBAND), Name: "EPOLLWRBAND"},
	{Flag: uint64(EPOLLMSG), Name: "EPOLLMSG"},
	{Flag: uint64(EPOLLRDHUP), Name: "EPOLLRDHUP"},
	{Flag: uint64(EPOLLEXCLUSIVE), Name: "EPOLLEXCLUSIVE"},
	{Flag: uint64(EPOLLWAKEUP), Name: "EPOLLWAKEUP"},
	{Flag: uint64(EPOLLONESHOT), Name: "EPOLLONESHOT"},
	{Flag: uint64(EPOLLET), Name: "EPOLLET"},
}

// Union returns the events set in either m or o.
func (m EpollEventMask) Union(o EpollEventMask) EpollEventMask {
	return bits.Union(m, o)
}

// Intersect returns the events set in both m and o.
func (m EpollEventMask) Intersect(o EpollEventMask) EpollEventMask {
	return bits.Intersect(m, o)
}

// Difference returns the events set in m but not in o.
func (m EpollEventMask) Difference(o EpollEventMask) EpollEventMask {
	return bits.Difference(m, o)
}

// Contains returns true if every event in o is set in m.
func (m EpollEventMask) Contains(o EpollEventMask) bool {
	return bits.IsOn(m, o)
}

// ContainsAny returns true if any event in o is set in m.
func (m EpollEventMask) ContainsAny(o EpollEventMask) bool {
	return bits.IsAnyOn(m, o)
}

// String implements fmt.Stringer.String.
func (m EpollEventMask) String() string {
	return EpollEventFlags.Parse(uint64(m))
}

// NewEpollEvent returns an EpollEvent reporting events with the given user
// data.
func NewEpollEvent(events EpollEventMask, data uint64) EpollEvent {
	e := EpollEvent{Events: events}
	e.SetData64(data)
	return e
}

// Data64 returns the user data as a single 64-bit value.
func (e *EpollEvent) Data64() uint64 {
	return uint64(uint32(e.Data[0])) | uint64(uint32(e.Data[1]))<<32
}

// SetData64 stores d as the user data.
func (e *EpollEvent) SetData64(d uint64) {
	e.Data[0] = int32(uint32(d))
	e.Data[1] = int32(uint32(d >> 32))
}
