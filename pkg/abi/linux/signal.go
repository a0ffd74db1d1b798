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
	"fmt"

	"github.com/abitable/abitable/pkg/abi"
	"github.com/abitable/abitable/pkg/bits"
)

const (
	// SignalMaximum is the highest valid signal number.
	SignalMaximum = 64

	// FirstStdSignal is the lowest standard signal number.
	FirstStdSignal = 1

	// LastStdSignal is the highest standard signal number.
	LastStdSignal = 31

	// FirstRTSignal is the lowest real-time signal number.
	FirstRTSignal = 32

	// LastRTSignal is the highest real-time signal number.
	LastRTSignal = 64
)

// Signal is a signal number.
type Signal int

// IsValid returns true if s is a valid standard or realtime signal. 0 is not
// considered valid.
func (s Signal) IsValid() bool {
	return s > 0 && s <= SignalMaximum
}

// IsStandard returns true if s is a standard signal.
//
// Preconditions: s.IsValid().
func (s Signal) IsStandard() bool {
	return s <= LastStdSignal
}

// IsRealtime returns true if s is a realtime signal.
//
// Preconditions: s.IsValid().
func (s Signal) IsRealtime() bool {
	return s >= FirstRTSignal
}

// Index returns the bit index of s in a SignalSet.
//
// Preconditions: s.IsValid().
func (s Signal) Index() int {
	return int(s - 1)
}

// String implements fmt.Stringer.String.
func (s Signal) String() string {
	if s.IsValid() && s.IsRealtime() {
		return fmt.Sprintf("SIGRTMIN+%d", s-FirstRTSignal)
	}
	return SignalNames.ParseDecimal(uint64(s))
}

// Signals.
const (
	SIGHUP    = Signal(1)
	SIGINT    = Signal(2)
	SIGQUIT   = Signal(3)
	SIGILL    = Signal(4)
	SIGTRAP   = Signal(5)
	SIGABRT   = Signal(6)
	SIGIOT    = Signal(6)
	SIGBUS    = Signal(7)
	SIGFPE    = Signal(8)
	SIGKILL   = Signal(9)
	SIGUSR1   = Signal(10)
	SIGSEGV   = Signal(11)
	SIGUSR2   = Signal(12)
	SIGPIPE   = Signal(13)
	SIGALRM   = Signal(14)
	SIGTERM   = Signal(15)
	SIGSTKFLT = Signal(16)
	SIGCHLD   = Signal(17)
	SIGCLD    = Signal(17)
	SIGCONT   = Signal(18)
	SIGSTOP   = Signal(19)
	SIGTSTP   = Signal(20)
	SIGTTIN   = Signal(21)
	SIGTTOU   = Signal(22)
	SIGURG    = Signal(23)
	SIGXCPU   = Signal(24)
	SIGXFSZ   = Signal(25)
	SIGVTALRM = Signal(26)
	SIGPROF   = Signal(27)
	SIGWINCH  = Signal(28)
	SIGIO     = Signal(29)
	SIGPOLL   = Signal(29)
	SIGPWR    = Signal(30)
	SIGSYS    = Signal(31)
	SIGUNUSED = Signal(31)
)

// SignalNames maps standard signal numbers to their canonical names.
var SignalNames = abi.ValueSet{
	uint64(SIGHUP):    "SIGHUP",
	uint64(SIGINT):    "SIGINT",
	uint64(SIGQUIT):   "SIGQUIT",
	uint64(SIGILL):    "SIGILL",
	uint64(SIGTRAP):   "SIGTRAP",
	uint64(SIGABRT):   "SIGABRT",
	uint64(SIGBUS):    "SIGBUS",
	uint64(SIGFPE):    "SIGFPE",
	uint64(SIGKILL):   "SIGKILL",
	uint64(SIGUSR1):   "SIGUSR1",
	uint64(SIGSEGV):   "SIGSEGV",
	uint64(SIGUSR2):   "SIGUSR2",
	uint64(SIGPIPE):   "SIGPIPE",
	uint64(SIGALRM):   "SIGALRM",
	uint64(SIGTERM):   "SIGTERM",
	uint64(SIGSTKFLT): "SIGSTKFLT",
	uint64(SIGCHLD):   "SIGCHLD",
	uint64(SIGCONT):   "SIGCONT",
	uint64(SIGSTOP):   "SIGSTOP",
	uint64(SIGTSTP):   "SIGTSTP",
	uint64(SIGTTIN):   "SIGTTIN",
	uint64(SIGTTOU):   "SIGTTOU",
	uint64(SIGURG):    "SIGURG",
	uint64(SIGXCPU):   "SIGXCPU",
	uint64(SIGXFSZ):   "SIGXFSZ",
	uint64(SIGVTALRM): "SIGVTALRM",
	uint64(SIGPROF):   "SIGPROF",
	uint64(SIGWINCH):  "SIGWINCH",
	uint64(SIGIO):     "SIGIO",
	uint64(SIGPWR):    "SIGPWR",
	uint64(SIGSYS):    "SIGSYS",
}

// SignalSet is a signal mask with a bit corresponding to each signal.
type SignalSet uint64

// SignalSetSize is the size in bytes of a SignalSet.
const SignalSetSize = 8

// MakeSignalSet returns SignalSet with the bit corresponding to each of the
// given signals set.
func MakeSignalSet(sigs ...Signal) SignalSet {
	indices := make([]int, len(sigs))
	for i, sig := range sigs {
		indices[i] = sig.Index()
	}
	return bits.Mask[SignalSet](indices...)
}

// SignalSetOf returns a SignalSet with a single signal set.
func SignalSetOf(sig Signal) SignalSet {
	return bits.MaskOf[SignalSet](sig.Index())
}

// Contains returns true if sig is in the set.
func (s SignalSet) Contains(sig Signal) bool {
	return bits.IsOn(s, SignalSetOf(sig))
}

// ForEachSignal invokes f for each signal set in the given mask.
func ForEachSignal(mask SignalSet, f func(sig Signal)) {
	bits.ForEachSetBit64(uint64(mask), func(i int) {
		f(Signal(i + 1))
	})
}

// UnblockableSignals contains the set of signals which cannot be blocked.
var UnblockableSignals = MakeSignalSet(SIGKILL, SIGSTOP)

// 'how' values for rt_sigprocmask(2).
const (
	// SIG_BLOCK blocks the signals in the set.
	SIG_BLOCK = 0

	// SIG_UNBLOCK unblocks the signals in the set.
	SIG_UNBLOCK = 1

	// SIG_SETMASK sets the signal mask to set.
	SIG_SETMASK = 2
)

// SigprocmaskHow names the 'how' values accepted by rt_sigprocmask(2).
var SigprocmaskHow = abi.ValueSet{
	SIG_BLOCK:   "SIG_BLOCK",
	SIG_UNBLOCK: "SIG_UNBLOCK",
	SIG_SETMASK: "SIG_SETMASK",
}

// Signal actions for rt_sigaction(2), from uapi/asm-generic/signal-defs.h.
const (
	// SIG_DFL performs the default action.
	SIG_DFL = 0

	// SIG_IGN ignores the signal.
	SIG_IGN = 1
)

// Signal action flags for rt_sigaction(2), from uapi/asm-generic/signal.h.
const (
	SA_NOCLDSTOP = 0x00000001
	SA_NOCLDWAIT = 0x00000002
	SA_SIGINFO   = 0x00000004
	SA_RESTORER  = 0x04000000
	SA_ONSTACK   = 0x08000000
	SA_RESTART   = 0x10000000
	SA_NODEFER   = 0x40000000
	SA_RESETHAND = 0x80000000
	SA_NOMASK    = SA_NODEFER
	SA_ONESHOT   = SA_RESETHAND
)

// SAFlagSet is the set of named rt_sigaction(2) flags.
var SAFlagSet = abi.FlagSet{
	{Flag: SA_NOCLDSTOP, Name: "SA_NOCLDSTOP"},
	{Flag: SA_NOCLDWAIT, Name: "SA_NOCLDWAIT"},
	{Flag: SA_SIGINFO, Name: "SA_SIGINFO"},
	{Flag: SA_RESTORER, Name: "SA_RESTORER"},
	{Flag: SA_ONSTACK, Name: "SA_ONSTACK"},
	{Flag: SA_RESTART, Name: "SA_RESTART"},
	{Flag: SA_NODEFER, Name: "SA_NODEFER"},
	{Flag: SA_RESETHAND, Name: "SA_RESETHAND"},
}
