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

// EventFdFlags are the flags accepted by eventfd2(2).
type EventFdFlags uint32

// Constants for eventfd2(2).
const (
	EFD_SEMAPHORE EventFdFlags = 0x1
	EFD_CLOEXEC   EventFdFlags = O_CLOEXEC
	EFD_NONBLOCK  EventFdFlags = O_NONBLOCK
)

// EventFdFlagSet is the set of named eventfd flags, in display order.
var EventFdFlagSet = abi.FlagSet{
	{Flag: uint64(EFD_SEMAPHORE), Name: "EFD_SEMAPHORE"},
	{Flag: uint64(EFD_NONBLOCK), Name: "EFD_NONBLOCK"},
	{Flag: uint64(EFD_CLOEXEC), Name: "EFD_CLOEXEC"},
}

// Union returns the flags set in either f or o.
func (f EventFdFlags) Union(o EventFdFlags) EventFdFlags {
	return bits.Union(f, o)
}

// Intersect returns the flags set in both f and o.
func (f EventFdFlags) Intersect(o EventFdFlags) EventFdFlags {
	return bits.Intersect(f, o)
}

// Difference returns the flags set in f but not in o.
func (f EventFdFlags) Difference(o EventFdFlags) EventFdFlags {
	return bits.Difference(f, o)
}

// Contains returns true if every flag in o is set in f.
func (f EventFdFlags) Contains(o EventFdFlags) bool {
	return bits.IsOn(f, o)
}

// ContainsAny returns true if any flag in o is set in f.
func (f EventFdFlags) ContainsAny(o EventFdFlags) bool {
	return bits.IsAnyOn(f, o)
}

// String implements fmt.Stringer.String.
func (f EventFdFlags) String() string {
	return EventFdFlagSet.Parse(uint64(f))
}
