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
)

// Resources for getrlimit(2)/setrlimit(2)/prlimit(2).
const (
	RLIMIT_CPU        = 0
	RLIMIT_FSIZE      = 1
	RLIMIT_DATA       = 2
	RLIMIT_STACK      = 3
	RLIMIT_CORE       = 4
	RLIMIT_RSS        = 5
	RLIMIT_NPROC      = 6
	RLIMIT_NOFILE     = 7
	RLIMIT_MEMLOCK    = 8
	RLIMIT_AS         = 9
	RLIMIT_LOCKS      = 10
	RLIMIT_SIGPENDING = 11
	RLIMIT_MSGQUEUE   = 12
	RLIMIT_NICE       = 13
	RLIMIT_RTPRIO     = 14
	RLIMIT_RTTIME     = 15

	// RLIM_NLIMITS is the number of resources.
	RLIM_NLIMITS = 16
)

// RLimInfinity is RLIM_INFINITY on Linux.
const RLimInfinity = ^uint64(0)

// RLimit64 is equivalent to struct rlimit64 in include/uapi/linux/resource.h.
type RLimit64 struct {
	Cur uint64
	Max uint64
}

// SizeOfRLimit64 is the size of an RLimit64 struct in bytes.
const SizeOfRLimit64 = 16

// NewRLimit64 returns an RLimit64 with the given soft and hard limits.
func NewRLimit64(cur, max uint64) RLimit64 {
	return RLimit64{Cur: cur, Max: max}
}

// DefaultRLimit64 returns an unlimited RLimit64.
func DefaultRLimit64() RLimit64 {
	return RLimit64{Cur: RLimInfinity, Max: RLimInfinity}
}

// Unlimited returns true if neither limit is enforced.
func (rl RLimit64) Unlimited() bool {
	return rl.Cur == RLimInfinity && rl.Max == RLimInfinity
}

// Valid returns true if the soft limit does not exceed the hard limit.
func (rl RLimit64) Valid() bool {
	return rl.Cur <= rl.Max
}

// RLimitResources names the resources accepted by prlimit(2).
var RLimitResources = abi.ValueSet{
	RLIMIT_CPU:        "RLIMIT_CPU",
	RLIMIT_FSIZE:      "RLIMIT_FSIZE",
	RLIMIT_DATA:       "RLIMIT_DATA",
	RLIMIT_STACK:      "RLIMIT_STACK",
	RLIMIT_CORE:       "RLIMIT_CORE",
	RLIMIT_RSS:        "RLIMIT_RSS",
	RLIMIT_NPROC:      "RLIMIT_NPROC",
	RLIMIT_NOFILE:     "RLIMIT_NOFILE",
	RLIMIT_MEMLOCK:    "RLIMIT_MEMLOCK",
	RLIMIT_AS:         "RLIMIT_AS",
	RLIMIT_LOCKS:      "RLIMIT_LOCKS",
	RLIMIT_SIGPENDING: "RLIMIT_SIGPENDING",
	RLIMIT_MSGQUEUE:   "RLIMIT_MSGQUEUE",
	RLIMIT_NICE:       "RLIMIT_NICE",
	RLIMIT_RTPRIO:     "RLIMIT_RTPRIO",
	RLIMIT_RTTIME:     "RLIMIT_RTTIME",
}

// Default limits from include/asm-generic/resource.h.
const (
	DefaultStackSoftLimit  = 8 << 20
	DefaultNofileSoftLimit = 1024
	DefaultNofileHardLimit = 4096
	DefaultMemlockLimit    = 8 << 20
	DefaultMsgqueueLimit   = 819200
)

// InitRLimits is a map of initial rlimits set by Linux in
// include/asm-generic/resource.h.
var InitRLimits = map[int]RLimit64{
	RLIMIT_CPU:        {RLimInfinity, RLimInfinity},
	RLIMIT_FSIZE:      {RLimInfinity, RLimInfinity},
	RLIMIT_DATA:       {RLimInfinity, RLimInfinity},
	RLIMIT_STACK:      {DefaultStackSoftLimit, RLimInfinity},
	RLIMIT_CORE:       {0, RLimInfinity},
	RLIMIT_RSS:        {RLimInfinity, RLimInfinity},
	RLIMIT_NPROC:      {0, 0},
	RLIMIT_NOFILE:     {DefaultNofileSoftLimit, DefaultNofileHardLimit},
	RLIMIT_MEMLOCK:    {DefaultMemlockLimit, DefaultMemlockLimit},
	RLIMIT_AS:         {RLimInfinity, RLimInfinity},
	RLIMIT_LOCKS:      {RLimInfinity, RLimInfinity},
	RLIMIT_SIGPENDING: {0, 0},
	RLIMIT_MSGQUEUE:   {DefaultMsgqueueLimit, DefaultMsgqueueLimit},
	RLIMIT_NICE:       {0, 0},
	RLIMIT_RTPRIO:     {0, 0},
	RLIMIT_RTTIME:     {RLimInfinity, RLimInfinity},
}
