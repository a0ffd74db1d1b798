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
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/abitable/abitable/pkg/binary"
)

type fieldOffset struct {
	Name   string
	Offset uintptr
	Size   uintptr
}

func offsetsOf(v any) []fieldOffset {
	var fs []fieldOffset
	for _, f := range binary.Layout(v) {
		fs = append(fs, fieldOffset{Name: f.Name, Offset: f.Offset, Size: f.Size})
	}
	return fs
}

func TestLayout(t *testing.T) {
	epoll := []fieldOffset{{"Events", 0, 4}}
	if epollEventPad != 0 {
		epoll = append(epoll, fieldOffset{"_", 4, epollEventPad})
	}
	epoll = append(epoll, fieldOffset{"Data", 4 + epollEventPad, 8})

	for _, tc := range []struct {
		name string
		v    any
		size uintptr
		want []fieldOffset
	}{
		{
			name: "RLimit64",
			v:    &RLimit64{},
			size: SizeOfRLimit64,
			want: []fieldOffset{{"Cur", 0, 8}, {"Max", 8, 8}},
		},
		{
			name: "Timeval",
			v:    &Timeval{},
			size: SizeOfTimeval,
			want: []fieldOffset{{"Sec", 0, 8}, {"Usec", 8, 8}},
		},
		{
			name: "Rusage",
			v:    &Rusage{},
			size: SizeOfRusage,
			want: []fieldOffset{
				{"UTime", 0, 16}, {"STime", 16, 16},
				{"MaxRSS", 32, 8}, {"IXRSS", 40, 8}, {"IDRSS", 48, 8}, {"ISRSS", 56, 8},
				{"MinFlt", 64, 8}, {"MajFlt", 72, 8}, {"NSwap", 80, 8}, {"InBlock", 88, 8},
				{"OuBlock", 96, 8}, {"MsgSnd", 104, 8}, {"MsgRcv", 112, 8}, {"NSignals", 120, 8},
				{"NVCSw", 128, 8}, {"NIvCSw", 136, 8},
			},
		},
		{
			name: "Sysinfo",
			v:    &Sysinfo{},
			size: SizeOfSysinfo,
			want: []fieldOffset{
				{"Uptime", 0, 8}, {"Loads", 8, 24},
				{"TotalRAM", 32, 8}, {"FreeRAM", 40, 8}, {"SharedRAM", 48, 8}, {"BufferRAM", 56, 8},
				{"TotalSwap", 64, 8}, {"FreeSwap", 72, 8},
				{"Procs", 80, 2}, {"_", 82, 6},
				{"TotalHigh", 88, 8}, {"FreeHigh", 96, 8},
				{"Unit", 104, 4}, {"_", 108, 4},
			},
		},
		{
			name: "SignalInfo",
			v:    &SignalInfo{},
			size: SI_MAX_SIZE,
			want: []fieldOffset{{"Signo", 0, 4}, {"Errno", 4, 4}, {"Code", 8, 4}, {"_", 12, 4}, {"Fields", 16, 112}},
		},
		{
			name: "EpollEvent",
			v:    &EpollEvent{},
			size: SizeOfEpollEvent,
			want: epoll,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := binary.Size(tc.v); got != tc.size {
				t.Errorf("binary.Size = %d, want %d", got, tc.size)
			}
			if diff := cmp.Diff(tc.want, offsetsOf(tc.v)); diff != "" {
				t.Errorf("layout mismatch (-want +got):\n%s", diff)
			}
			if !binary.Packed(tc.v) {
				t.Errorf("%s has implicit padding", tc.name)
			}
		})
	}
}

func TestSizeOf(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"RLimit64", unsafe.Sizeof(RLimit64{}), 16},
		{"Timespec", unsafe.Sizeof(Timespec{}), 16},
		{"Timeval", unsafe.Sizeof(Timeval{}), 16},
		{"Rusage", unsafe.Sizeof(Rusage{}), 144},
		{"Sysinfo", unsafe.Sizeof(Sysinfo{}), 112},
		{"SignalInfo", unsafe.Sizeof(SignalInfo{}), 128},
		{"EpollEvent", unsafe.Sizeof(EpollEvent{}), SizeOfEpollEvent},
	} {
		if tc.got != tc.want {
			t.Errorf("unsafe.Sizeof(%s) = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestDefaultRLimit64(t *testing.T) {
	rl := DefaultRLimit64()
	if rl.Cur != RLimInfinity || rl.Max != RLimInfinity || !rl.Unlimited() {
		t.Errorf("DefaultRLimit64() = %+v, want both limits infinite", rl)
	}
	if rl := NewRLimit64(1024, 4096); rl.Cur != 1024 || rl.Max != 4096 || !rl.Valid() || rl.Unlimited() {
		t.Errorf("NewRLimit64(1024, 4096) = %+v", rl)
	}
	if rl := NewRLimit64(2, 1); rl.Valid() {
		t.Errorf("%+v is valid, want invalid", rl)
	}
	if len(InitRLimits) != RLIM_NLIMITS || len(RLimitResources) != RLIM_NLIMITS {
		t.Errorf("got %d initial limits and %d names, want %d", len(InitRLimits), len(RLimitResources), RLIM_NLIMITS)
	}
	for res, rl := range InitRLimits {
		if !rl.Valid() {
			t.Errorf("InitRLimits[%s] = %+v is invalid", RLimitResources.ParseDecimal(uint64(res)), rl)
		}
	}
}

func TestNewSignalInfo(t *testing.T) {
	info := NewSignalInfo(SIGUSR1)
	if info.Signal() != SIGUSR1 || info.Code != SI_TKILL || info.Errno != 0 {
		t.Errorf("NewSignalInfo(SIGUSR1) = {Signo: %d, Errno: %d, Code: %d}", info.Signo, info.Errno, info.Code)
	}
	if SI_TKILL != -6 {
		t.Errorf("SI_TKILL = %d, want -6", SI_TKILL)
	}

	info.SetPID(1234)
	info.SetUID(1000)
	info.SetSigval(0xfeedface)
	if info.PID() != 1234 || info.UID() != 1000 || info.Sigval() != 0xfeedface {
		t.Errorf("kill fields = %d, %d, %#x", info.PID(), info.UID(), info.Sigval())
	}
	// _sigchld overlays _kill.
	info.SetStatus(7)
	if info.Status() != 7 || info.PID() != 1234 {
		t.Errorf("sigchld fields = %d, %d", info.Status(), info.PID())
	}

	var sys SignalInfo
	sys.SetCallAddr(0x400000)
	sys.SetSyscall(SYS_GETPID)
	sys.SetArch(0xc00000b7)
	if sys.Addr() != 0x400000 || sys.Syscall() != SYS_GETPID || sys.Arch() != 0xc00000b7 {
		t.Errorf("sigsys fields = %#x, %d, %#x", sys.CallAddr(), sys.Syscall(), sys.Arch())
	}

	fix := SignalInfo{Code: 0x50005}
	fix.FixSignalCodeForUser()
	if fix.Code != 5 {
		t.Errorf("FixSignalCodeForUser() left Code = %#x, want 5", fix.Code)
	}
}

func TestSignalSet(t *testing.T) {
	set := MakeSignalSet(SIGINT, SIGTERM, FirstRTSignal)
	for _, sig := range []Signal{SIGINT, SIGTERM, FirstRTSignal} {
		if !set.Contains(sig) {
			t.Errorf("%v not in set %#x", sig, uint64(set))
		}
	}
	if set.Contains(SIGKILL) {
		t.Errorf("SIGKILL in set %#x", uint64(set))
	}
	var got []Signal
	ForEachSignal(set, func(sig Signal) { got = append(got, sig) })
	if diff := cmp.Diff([]Signal{SIGINT, SIGTERM, FirstRTSignal}, got); diff != "" {
		t.Errorf("ForEachSignal mismatch (-want +got):\n%s", diff)
	}
	if got, want := SIGTERM.String(), "SIGTERM"; got != want {
		t.Errorf("SIGTERM.String() = %q, want %q", got, want)
	}
	if got, want := Signal(34).String(), "SIGRTMIN+2"; got != want {
		t.Errorf("Signal(34).String() = %q, want %q", got, want)
	}
}
