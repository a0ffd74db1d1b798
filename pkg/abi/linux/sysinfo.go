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

// Sysinfo is the structure provided by sysinfo(2).
//
// Memory and swap sizes are in multiples of Unit bytes.
type Sysinfo struct {
	// Uptime is the number of seconds since boot.
	Uptime int64

	// Loads holds the 1, 5 and 15 minute load averages, scaled by
	// 1 << SI_LOAD_SHIFT.
	Loads [3]uint64

	TotalRAM  uint64
	FreeRAM   uint64
	SharedRAM uint64
	BufferRAM uint64
	TotalSwap uint64
	FreeSwap  uint64

	// Procs is the number of current processes.
	Procs uint16
	_     [6]byte

	TotalHigh uint64
	FreeHigh  uint64

	// Unit is the memory unit size in bytes.
	Unit uint32

	// struct sysinfo::_f is empty on 64-bit platforms, leaving only tail
	// padding.
	_ [4]byte
}

// SizeOfSysinfo is the size of a Sysinfo struct in bytes.
const SizeOfSysinfo = 112

// SI_LOAD_SHIFT is the fixed-point shift applied to Sysinfo.Loads.
const SI_LOAD_SHIFT = 16

// Actions for syslog(2), from include/linux/syslog.h.
const (
	SYSLOG_ACTION_CLOSE         = 0
	SYSLOG_ACTION_OPEN          = 1
	SYSLOG_ACTION_READ          = 2
	SYSLOG_ACTION_READ_ALL      = 3
	SYSLOG_ACTION_READ_CLEAR    = 4
	SYSLOG_ACTION_CLEAR         = 5
	SYSLOG_ACTION_CONSOLE_OFF   = 6
	SYSLOG_ACTION_CONSOLE_ON    = 7
	SYSLOG_ACTION_CONSOLE_LEVEL = 8
	SYSLOG_ACTION_SIZE_UNREAD   = 9
	SYSLOG_ACTION_SIZE_BUFFER   = 10
)
