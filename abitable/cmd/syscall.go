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
	"github.com/google/subcommands"
)

// Syscall implements subcommands.Command for the "syscall" command.
type Syscall struct{}

// Name implements subcommands.Command.Name.
func (*Syscall) Name() string {
	return "syscall"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Syscall) Synopsis() string {
	return "Print syscall numbers and names."
}

// Usage implements subcommands.Command.Usage.
func (*Syscall) Usage() string {
	return `syscall [number|name ...] - Print syscall numbers and names.

Numbers with no syscall are printed as "unknown". With no arguments, every
syscall is printed in numeric order.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Syscall) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (s *Syscall) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)
	t, err := syscallTable(f.Args())
	return render(s.Name(), conf, t, err)
}

func syscallTable(args []string) (*Table, error) {
	t := &Table{Header: []string{"Number", "Name"}}
	names := linux.SyscallNames()
	if len(args) == 0 {
		for _, sysno := range sortedValues(names) {
			t.Append(strconv.FormatUint(sysno, 10), names[sysno])
		}
		return t, nil
	}
	for _, arg := range args {
		sysno, ok := parseNumber(arg)
		if !ok {
			if sysno, ok = names.Lookup(arg); !ok {
				return nil, fmt.Errorf("unknown syscall %q", arg)
			}
		}
		t.Append(strconv.FormatUint(sysno, 10), linux.SyscallName(uintptr(sysno)))
	}
	return t, nil
}
