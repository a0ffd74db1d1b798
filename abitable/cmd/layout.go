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
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/abitable/abitable/abitable/config"
	"github.com/abitable/abitable/pkg/abi/linux"
	"github.com/abitable/abitable/pkg/binary"
	"github.com/abitable/abitable/pkg/marshal"
	"github.com/google/subcommands"
)

// layouts maps the C struct names to the types that describe them, in
// display order.
var layouts = []struct {
	name string
	typ  marshal.Marshallable
}{
	{"rlimit64", &linux.RLimit64{}},
	{"timespec", &linux.Timespec{}},
	{"timeval", &linux.Timeval{}},
	{"rusage", &linux.Rusage{}},
	{"sysinfo", &linux.Sysinfo{}},
	{"siginfo", &linux.SignalInfo{}},
	{"epoll_event", &linux.EpollEvent{}},
}

// Layout implements subcommands.Command for the "layout" command.
type Layout struct{}

// Name implements subcommands.Command.Name.
func (*Layout) Name() string {
	return "layout"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Layout) Synopsis() string {
	return "Print the size and field offsets of ABI structs."
}

// Usage implements subcommands.Command.Usage.
func (*Layout) Usage() string {
	return `layout [struct ...] - Print the size and field offsets of ABI structs.

Known structs: rlimit64, timespec, timeval, rusage, sysinfo, siginfo,
epoll_event. Padding fields are printed as "_".
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Layout) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (l *Layout) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)
	t, err := layoutTable(f.Args())
	return render(l.Name(), conf, t, err)
}

// layoutTable lists each requested struct as a row for the whole struct
// followed by one row per field.
func layoutTable(args []string) (*Table, error) {
	t := &Table{Header: []string{"Struct", "Field", "Offset", "Size"}}
	var ms []int
	if len(args) == 0 {
		for i := range layouts {
			ms = append(ms, i)
		}
	}
	for _, arg := range args {
		i := findLayout(arg)
		if i < 0 {
			return nil, fmt.Errorf("unknown struct %q", arg)
		}
		ms = append(ms, i)
	}
	for _, i := range ms {
		name, m := layouts[i].name, layouts[i].typ
		t.Append(name, "", "0", strconv.Itoa(m.SizeBytes()))
		for _, f := range binary.Layout(m) {
			t.Append(name, f.Name, strconv.FormatUint(uint64(f.Offset), 10), strconv.FormatUint(uint64(f.Size), 10))
		}
	}
	return t, nil
}

func findLayout(name string) int {
	for i, l := range layouts {
		if l.name == name {
			return i
		}
	}
	return -1
}
