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

// Flags that may be used with wait4(2) and getrusage(2).
const (
	// RUSAGE_SELF reports the calling process.
	RUSAGE_SELF = 0

	// RUSAGE_CHILDREN reports the terminated and waited-for children of the
	// calling process.
	RUSAGE_CHILDREN = -1

	// RUSAGE_THREAD reports the calling thread.
	RUSAGE_THREAD = 1

	// RUSAGE_BOTH is used internally by the kernel and is rejected by
	// getrusage(2).
	RUSAGE_BOTH = -2
)

// RusageWhoNames names the targets accepted by getrusage(2).
var RusageWhoNames = map[int32]string{
	RUSAGE_SELF:     "RUSAGE_SELF",
	RUSAGE_CHILDREN: "RUSAGE_CHILDREN",
	RUSAGE_THREAD:   "RUSAGE_THREAD",
}

// Rusage represents the Linux struct rusage.
//
// Only UTime and STime are maintained by a typical implementation. The
// remaining accounting fields hold their place in the layout and are
// reported as zero.
type Rusage struct {
	UTime    Timeval
	STime    Timeval
	MaxRSS   int64
	IXRSS    int64
	IDRSS    int64
	ISRSS    int64
	MinFlt   int64
	MajFlt   int64
	NSwap    int64
	InBlock  int64
	OuBlock  int64
	MsgSnd   int64
	MsgRcv   int64
	NSignals int64
	NVCSw    int64
	NIvCSw   int64
}

// SizeOfRusage is the size of a Rusage struct in bytes.
const SizeOfRusage = 144

// NewRusage returns a Rusage reporting the given user and system CPU time.
func NewRusage(utime, stime Timeval) Rusage {
	return Rusage{UTime: utime, STime: stime}
}
