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

package cmd

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/abitable/abitable/abitable/config"
	"github.com/abitable/abitable/pkg/abi/linux"
	"github.com/abitable/abitable/pkg/abi/linux/errno"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestErrnoTable(t *testing.T) {
	got, err := errnoTable(true, []string{"ENOENT", "2", "-2", "EWOULDBLOCK"})
	if err != nil {
		t.Fatalf("errnoTable() failed: %v", err)
	}
	want := [][]string{
		{"-2", "ENOENT", "No such file or directory"},
		{"-2", "ENOENT", "No such file or directory"},
		{"-2", "ENOENT", "No such file or directory"},
		{"-11", "EAGAIN", "Try again"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("errnoTable() rows mismatch (-want +got):\n%s", diff)
	}
}

func TestErrnoTableAll(t *testing.T) {
	all, err := errnoTable(true, nil)
	if err != nil {
		t.Fatalf("errnoTable() failed: %v", err)
	}
	if got, want := len(all.Rows), len(errno.All()); got != want {
		t.Errorf("errnoTable(all) got %d rows, want %d", got, want)
	}
	if diff := cmp.Diff([]string{"-1", "EPERM", "Operation not permitted"}, all.Rows[0]); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}

	base, err := errnoTable(false, nil)
	if err != nil {
		t.Fatalf("errnoTable() failed: %v", err)
	}
	for _, row := range base.Rows {
		n, err := strconv.Atoi(row[0])
		if err != nil {
			t.Fatalf("bad value %q: %v", row[0], err)
		}
		if -errno.Errno(n) > errno.MaxErrno {
			t.Errorf("base table lists kernel-private errno %v", row)
		}
	}
}

func TestErrnoTableErrors(t *testing.T) {
	for _, arg := range []string{"EFOO", "0", "9999", "x2", "-9223372036854775808", "9223372036854775807"} {
		if _, err := errnoTable(true, []string{arg}); err == nil {
			t.Errorf("errnoTable(%q) succeeded, want error", arg)
		}
	}
}

func TestSyscallTable(t *testing.T) {
	got, err := syscallTable([]string{"64", "write", "0", "99999", "0x38"})
	if err != nil {
		t.Fatalf("syscallTable() failed: %v", err)
	}
	want := [][]string{
		{"64", "write"},
		{"64", "write"},
		{"0", "unknown"},
		{"99999", "unknown"},
		{"56", "openat"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("syscallTable() rows mismatch (-want +got):\n%s", diff)
	}

	if _, err := syscallTable([]string{"sbrk"}); err == nil {
		t.Errorf("syscallTable(sbrk) succeeded, want error")
	}
}

func TestSyscallTableAll(t *testing.T) {
	got, err := syscallTable(nil)
	if err != nil {
		t.Fatalf("syscallTable() failed: %v", err)
	}
	if want := len(linux.SyscallNames()); len(got.Rows) != want {
		t.Errorf("syscallTable() got %d rows, want %d", len(got.Rows), want)
	}
	sorted := sort.SliceIsSorted(got.Rows, func(i, j int) bool {
		a, _ := strconv.Atoi(got.Rows[i][0])
		b, _ := strconv.Atoi(got.Rows[j][0])
		return a < b
	})
	if !sorted {
		t.Errorf("syscallTable() rows are not in numeric order")
	}
}

func TestLayoutTable(t *testing.T) {
	got, err := layoutTable([]string{"rlimit64", "timeval"})
	if err != nil {
		t.Fatalf("layoutTable() failed: %v", err)
	}
	want := [][]string{
		{"rlimit64", "", "0", "16"},
		{"rlimit64", "Cur", "0", "8"},
		{"rlimit64", "Max", "8", "8"},
		{"timeval", "", "0", "16"},
		{"timeval", "Sec", "0", "8"},
		{"timeval", "Usec", "8", "8"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("layoutTable() rows mismatch (-want +got):\n%s", diff)
	}

	if _, err := layoutTable([]string{"stat"}); err == nil {
		t.Errorf("layoutTable(stat) succeeded, want error")
	}
}

func TestLayoutTableSizes(t *testing.T) {
	got, err := layoutTable(nil)
	if err != nil {
		t.Fatalf("layoutTable() failed: %v", err)
	}
	sizes := map[string]string{}
	for _, row := range got.Rows {
		if row[1] == "" {
			sizes[row[0]] = row[3]
		}
	}
	want := map[string]string{
		"rlimit64":    "16",
		"timespec":    "16",
		"timeval":     "16",
		"rusage":      "144",
		"sysinfo":     "112",
		"siginfo":     "128",
		"epoll_event": strconv.Itoa(linux.SizeOfEpollEvent),
	}
	if diff := cmp.Diff(want, sizes); diff != "" {
		t.Errorf("struct sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskTable(t *testing.T) {
	for _, tc := range []struct {
		set  string
		arg  string
		want [][]string
	}{
		{
			set: "epoll",
			arg: "0x5",
			want: [][]string{
				{"EPOLLIN", "0x1"},
				{"EPOLLOUT", "0x4"},
				{"EPOLLIN|EPOLLOUT", "0x5"},
			},
		},
		{
			set: "epoll",
			arg: "EPOLLIN|EPOLLOUT",
			want: [][]string{
				{"EPOLLIN", "0x1"},
				{"EPOLLOUT", "0x4"},
				{"EPOLLIN|EPOLLOUT", "0x5"},
			},
		},
		{
			set: "eventfd",
			arg: "0x80003",
			want: [][]string{
				{"EFD_SEMAPHORE", "0x1"},
				{"EFD_CLOEXEC", "0x80000"},
				{"0x2", "0x2"},
				{"EFD_SEMAPHORE|EFD_CLOEXEC|0x2", "0x80003"},
			},
		},
		{
			set: "eventfd",
			arg: "0",
			want: [][]string{
				{"0x0", "0x0"},
			},
		},
	} {
		t.Run(tc.set+"/"+tc.arg, func(t *testing.T) {
			got, err := maskTable(tc.set, tc.arg)
			if err != nil {
				t.Fatalf("maskTable() failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got.Rows); diff != "" {
				t.Errorf("maskTable() rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMaskTableErrors(t *testing.T) {
	if _, err := maskTable("bogus", "1"); err == nil {
		t.Errorf("maskTable(bogus) succeeded, want error")
	}
	if _, err := maskTable("epoll", "EPOLLIN|EPOLLFOO"); err == nil {
		t.Errorf("maskTable(EPOLLFOO) succeeded, want error")
	}
}

func TestPrctlTable(t *testing.T) {
	got, err := prctlTable([]string{"15", "PR_GET_NAME", "1000"})
	if err != nil {
		t.Fatalf("prctlTable() failed: %v", err)
	}
	want := [][]string{
		{"15", "PR_SET_NAME"},
		{"16", "PR_GET_NAME"},
		{"1000", "1000"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("prctlTable() rows mismatch (-want +got):\n%s", diff)
	}

	all, err := prctlTable(nil)
	if err != nil {
		t.Fatalf("prctlTable() failed: %v", err)
	}
	if len(all.Rows) != len(linux.PrctlOps) {
		t.Errorf("prctlTable() got %d rows, want %d", len(all.Rows), len(linux.PrctlOps))
	}
}

func TestValuesTable(t *testing.T) {
	got, err := valuesTable([]string{"rusage", "sigprocmask"})
	if err != nil {
		t.Fatalf("valuesTable() failed: %v", err)
	}
	want := [][]string{
		{"rusage", "-1", "RUSAGE_CHILDREN"},
		{"rusage", "0", "RUSAGE_SELF"},
		{"rusage", "1", "RUSAGE_THREAD"},
		{"sigprocmask", "0", "SIG_BLOCK"},
		{"sigprocmask", "1", "SIG_UNBLOCK"},
		{"sigprocmask", "2", "SIG_SETMASK"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("valuesTable() rows mismatch (-want +got):\n%s", diff)
	}

	codes, err := valuesTable([]string{"si_code"})
	if err != nil {
		t.Fatalf("valuesTable() failed: %v", err)
	}
	if len(codes.Rows) != len(linux.SignalCodes) {
		t.Fatalf("valuesTable(si_code) got %d rows, want %d", len(codes.Rows), len(linux.SignalCodes))
	}
	if first := codes.Rows[0]; first[1] != "-60" || first[2] != "SI_ASYNCNL" {
		t.Errorf("valuesTable(si_code) first row = %v, want SI_ASYNCNL", first)
	}
	if last := codes.Rows[len(codes.Rows)-1]; last[1] != "128" || last[2] != "SI_KERNEL" {
		t.Errorf("valuesTable(si_code) last row = %v, want SI_KERNEL", last)
	}

	all, err := valuesTable(nil)
	if err != nil {
		t.Fatalf("valuesTable() failed: %v", err)
	}
	n := len(linux.RLimitResources) + len(linux.RusageWhoNames) + len(linux.SignalCodes) + len(linux.SignalNames) + len(linux.SigprocmaskHow)
	if len(all.Rows) != n {
		t.Errorf("valuesTable() got %d rows, want %d", len(all.Rows), n)
	}

	if _, err := valuesTable([]string{"nope"}); err == nil {
		t.Errorf("valuesTable(nope) succeeded, want error")
	}
}

func TestIoctlTable(t *testing.T) {
	got, err := ioctlTable([]string{"TCGETS", "0x80045430", "0xc0106401"})
	if err != nil {
		t.Fatalf("ioctlTable() failed: %v", err)
	}
	want := [][]string{
		{"0x5401", "TCGETS", "none", "0x54", "1", "0"},
		{"0x80045430", "TIOCGPTN", "read", "0x54", "48", "4"},
		{"0xc0106401", "0xc0106401", "read|write", "0x64", "1", "16"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("ioctlTable() rows mismatch (-want +got):\n%s", diff)
	}

	for _, arg := range []string{"TCFOO", "0x100000000"} {
		if _, err := ioctlTable([]string{arg}); err == nil {
			t.Errorf("ioctlTable(%q) succeeded, want error", arg)
		}
	}
}

func TestParseNumber(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want uint64
		ok   bool
	}{
		{in: "42", want: 42, ok: true},
		{in: "0x2a", want: 42, ok: true},
		{in: "052", want: 42, ok: true},
		{in: "-1", want: ^uint64(0), ok: true},
		{in: "ENOENT"},
		{in: "-"},
	} {
		got, ok := parseNumber(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseNumber(%q) = %d, %t, want %d, %t", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestWrite(t *testing.T) {
	tbl := &Table{Header: []string{"Number", "Name"}}
	tbl.Append("63", "read")
	tbl.Append("64", "write")

	for _, tc := range []struct {
		format string
		want   string
	}{
		{
			format: config.FormatText,
			want:   "Number  Name\n63      read\n64      write\n",
		},
		{
			format: config.FormatCSV,
			want:   "Number,Name\n63,read\n64,write\n",
		},
	} {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tbl.Write(&buf, tc.format); err != nil {
				t.Fatalf("Write() failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("Write() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run(config.FormatJSON, func(t *testing.T) {
		var buf bytes.Buffer
		if err := tbl.Write(&buf, config.FormatJSON); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
		var got []map[string]string
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("json.Unmarshal() failed: %v", err)
		}
		want := []map[string]string{
			{"number": "63", "name": "read"},
			{"number": "64", "name": "write"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Write() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run(config.FormatYAML, func(t *testing.T) {
		var buf bytes.Buffer
		if err := tbl.Write(&buf, config.FormatYAML); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
		if want := "- number: \"63\"\n  name: \"read\"\n"; !strings.HasPrefix(buf.String(), want) {
			t.Errorf("Write() = %q, want prefix %q", buf.String(), want)
		}
		var got []map[string]string
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("yaml.Unmarshal() failed: %v", err)
		}
		want := []map[string]string{
			{"number": "63", "name": "read"},
			{"number": "64", "name": "write"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Write() mismatch (-want +got):\n%s", diff)
		}
	})

	if err := tbl.Write(&bytes.Buffer{}, "xml"); err == nil {
		t.Errorf("Write(xml) succeeded, want error")
	}
}
