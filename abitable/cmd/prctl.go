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

// Prctl implements subcommands.Command for the "prctl" command.
type Prctl struct{}

// Name implements subcommands.Command.Name.
func (*Prctl) Name() string {
	return "prctl"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Prctl) Synopsis() string {
	return "Print prctl(2) operation codes and names."
}

// Usage implements subcommands.Command.Usage.
func (*Prctl) Usage() string {
	return `prctl [option|name ...] - Print prctl(2) operation codes and names.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Prctl) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (p *Prctl) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)
	t, err := prctlTable(f.Args())
	return render(p.Name(), conf, t, err)
}

func prctlTable(args []string) (*Table, error) {
	t := &Table{Header: []string{"Option", "Name"}}
	if len(args) == 0 {
		for _, op := range sortedValues(linux.PrctlOps) {
			t.Append(strconv.FormatUint(op, 10), linux.PrctlOps[op])
		}
		return t, nil
	}
	for _, arg := range args {
		op, ok := parseNumber(arg)
		if !ok {
			if op, ok = linux.PrctlOps.Lookup(arg); !ok {
				return nil, fmt.Errorf("unknown prctl option %q", arg)
			}
		}
		t.Append(strconv.FormatUint(op, 10), linux.PrctlName(op))
	}
	return t, nil
}
