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
	"math"
	"time"
)

// CLOCKS_PER_SEC is the number of clock ticks per second reported to
// userspace through times(2) and AT_CLKTCK.
const CLOCKS_PER_SEC = 100

// ClockTick is the length of time represented by a single clock tick.
const ClockTick = time.Second / CLOCKS_PER_SEC

// Clock identifiers for use with clock_gettime(2), clock_getres(2),
// clock_nanosleep(2).
const (
	CLOCK_REALTIME           = 0
	CLOCK_MONOTONIC          = 1
	CLOCK_PROCESS_CPUTIME_ID = 2
	CLOCK_THREAD_CPUTIME_ID  = 3
	CLOCK_MONOTONIC_RAW      = 4
	CLOCK_REALTIME_COARSE    = 5
	CLOCK_MONOTONIC_COARSE   = 6
	CLOCK_BOOTTIME           = 7
	CLOCK_REALTIME_ALARM     = 8
	CLOCK_BOOTTIME_ALARM     = 9
)

// TIMER_ABSTIME is a flag for clock_nanosleep(2).
const TIMER_ABSTIME = 1

// The largest number of seconds that still fits in a time.Duration.
const maxSecInDuration = math.MaxInt64 / int64(time.Second)

// Timespec represents struct timespec in <time.h>.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// SizeOfTimespec is the size of a Timespec struct in bytes.
const SizeOfTimespec = 16

// ToNsecCapped returns the nanosecond representation, saturating at
// math.MaxInt64.
func (ts Timespec) ToNsecCapped() int64 {
	if ts.Sec > maxSecInDuration {
		return math.MaxInt64
	}
	return ts.Sec*1e9 + ts.Nsec
}

// ToDuration returns ts as a time.Duration, saturating on overflow.
func (ts Timespec) ToDuration() time.Duration {
	return time.Duration(ts.ToNsecCapped())
}

// Valid returns whether the timespec contains valid values.
func (ts Timespec) Valid() bool {
	return ts.Sec >= 0 && ts.Nsec >= 0 && ts.Nsec < int64(time.Second)
}

// DurationToTimespec translates time.Duration to Timespec.
func DurationToTimespec(dur time.Duration) Timespec {
	nsec := dur.Nanoseconds()
	return Timespec{Sec: nsec / 1e9, Nsec: nsec % 1e9}
}

// SizeOfTimeval is the size of a Timeval struct in bytes.
const SizeOfTimeval = 16

// Timeval represents struct timeval in <time.h>.
type Timeval struct {
	Sec  int64
	Usec int64
}

// ToNsecCapped returns the nanosecond representation, saturating at
// math.MaxInt64.
func (tv Timeval) ToNsecCapped() int64 {
	if tv.Sec > maxSecInDuration {
		return math.MaxInt64
	}
	return tv.Sec*1e9 + tv.Usec*1e3
}

// ToDuration returns tv as a time.Duration, saturating on overflow.
func (tv Timeval) ToDuration() time.Duration {
	return time.Duration(tv.ToNsecCapped())
}

// DurationToTimeval translates time.Duration to Timeval, rounding up to the
// next microsecond.
func DurationToTimeval(dur time.Duration) Timeval {
	nsec := dur.Nanoseconds() + 999
	return Timeval{Sec: nsec / 1e9, Usec: nsec % 1e9 / 1e3}
}

// ClockT represents type clock_t.
type ClockT int64

// ClockTFromDuration converts time.Duration to clock_t.
func ClockTFromDuration(d time.Duration) ClockT {
	return ClockT(d / ClockTick)
}
