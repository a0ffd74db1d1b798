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
	"github.com/abitable/abitable/pkg/abi/linux/errno"
	"github.com/google/subcommands"
)

// Errno implements subcommands.Command for the "errno" command.
type Errno struct{}

// Name implements subcommands.Command.Name.
func (*Errno) Name() string {
	return "errno"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Errno) Synopsis() string {
	return "Print errno values, names and descriptions."
}

// Usage implements subcommands.Command.Usage.
func (*Errno) Usage() string {
	return `errno [name|value ...] - Print errno values, names and descriptions.

Values may be given as negative kernel returns (-2) or positive errno(3)
numbers (2). With no arguments, every errno is printed.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Errno) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (e *Errno) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)
	t, err := errnoTable(conf.Errnos == config.ErrnosAll, f.Args())
	return render(e.Name(), conf, t, err)
}

// errnoTable builds the errno table for args. Kernel-private errnos are only
// listed when all is set, but can always be looked up explicitly.
func errnoTable(all bool, args []string) (*Table, error) {
	t := &Table{Header: []string{"Value", "Name", "Description"}}
	var es []errno.Errno
	if len(args) == 0 {
		for _, e := range errno.All() {
			if all || e >= -errno.MaxErrno {
				es = append(es, e)
			}
		}
	}
	for _, arg := range args {
		e, err := parseErrno(arg)
		if err != nil {
			return nil, err
		}
		es = append(es, e)
	}
	for _, e := range es {
		t.Append(strconv.Itoa(int(e)), e.Name(), e.String())
	}
	return t, nil
}

func parseErrno(arg string) (errno.Errno, error) {
	if e, ok := errno.Lookup(arg); ok {
		return e, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("unknown errno %q", arg)
	}
	e := errno.Errno(n)
	if e > 0 {
		e = -e
	}
	if !e.IsValid() {
		return 0, fmt.Errorf("unknown errno %q", arg)
	}
	return e, nil
}
