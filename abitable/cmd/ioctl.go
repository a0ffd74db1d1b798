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

// Ioctl implements subcommands.Command for the "ioctl" command.
type Ioctl struct{}

// Name implements subcommands.Command.Name.
func (*Ioctl) Name() string {
	return "ioctl"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Ioctl) Synopsis() string {
	return "Print and decode ioctl(2) request numbers."
}

// Usage implements subcommands.Command.Usage.
func (*Ioctl) Usage() string {
	return `ioctl [request|name ...] - Print and decode ioctl(2) request numbers.

Each request is split into its direction, type, number and argument size.
Requests without a name are decoded all the same.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Ioctl) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (i *Ioctl) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)
	t, err := ioctlTable(f.Args())
	return render(i.Name(), conf, t, err)
}

var ioctlDirs = [...]string{
	linux.IOC_NONE:                   "none",
	linux.IOC_WRITE:                  "write",
	linux.IOC_READ:                   "read",
	linux.IOC_READ | linux.IOC_WRITE: "read|write",
}

func ioctlTable(args []string) (*Table, error) {
	t := &Table{Header: []string{"Request", "Name", "Dir", "Type", "Nr", "Size"}}
	var reqs []uint64
	if len(args) == 0 {
		reqs = sortedValues(linux.IoctlRequests)
	}
	for _, arg := range args {
		req, ok := parseNumber(arg)
		if !ok {
			if req, ok = linux.IoctlRequests.Lookup(arg); !ok {
				return nil, fmt.Errorf("unknown ioctl request %q", arg)
			}
		}
		if req > 0xffffffff {
			return nil, fmt.Errorf("ioctl request %q does not fit in 32 bits", arg)
		}
		reqs = append(reqs, req)
	}
	for _, req := range reqs {
		r := uint32(req)
		t.Append(
			hex(req),
			linux.IoctlName(req),
			ioctlDirs[linux.IOC_DIR(r)],
			hex(uint64(linux.IOC_TYPE(r))),
			strconv.FormatUint(uint64(linux.IOC_NR(r)), 10),
			strconv.FormatUint(uint64(linux.IOC_SIZE(r)), 10),
		)
	}
	return t, nil
}
