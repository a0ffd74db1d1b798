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
	"sort"
	"strconv"
	"strings"

	"github.com/abitable/abitable/abitable/config"
	"github.com/abitable/abitable/pkg/abi/linux"
	"github.com/google/subcommands"
)

type namedValue struct {
	value int64
	name  string
}

func namedValues[K int32 | uint64](m map[K]string) []namedValue {
	vals := make([]namedValue, 0, len(m))
	for v, name := range m {
		vals = append(vals, namedValue{int64(v), name})
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i].value < vals[j].value })
	return vals
}

// valueTables holds the argument tables that are not flag words.
var valueTables = map[string]func() []namedValue{
	"rlimit":      func() []namedValue { return namedValues[uint64](linux.RLimitResources) },
	"rusage":      func() []namedValue { return namedValues(linux.RusageWhoNames) },
	"si_code":     func() []namedValue { return namedValues(linux.SignalCodes) },
	"signal":      func() []namedValue { return namedValues[uint64](linux.SignalNames) },
	"sigprocmask": func() []namedValue { return namedValues[uint64](linux.SigprocmaskHow) },
}

// Values implements subcommands.Command for the "values" command.
type Values struct{}

// Name implements subcommands.Command.Name.
func (*Values) Name() string {
	return "values"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Values) Synopsis() string {
	return "Print named syscall argument values."
}

// Usage implements subcommands.Command.Usage.
func (*Values) Usage() string {
	return fmt.Sprintf(`values [table ...] - Print named syscall argument values.

Known tables: %s. With no arguments, every table is printed.
`, strings.Join(valueTableNames(), ", "))
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Values) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (v *Values) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)
	t, err := valuesTable(f.Args())
	return render(v.Name(), conf, t, err)
}

func valuesTable(args []string) (*Table, error) {
	t := &Table{Header: []string{"Table", "Value", "Name"}}
	if len(args) == 0 {
		args = valueTableNames()
	}
	for _, arg := range args {
		vals, ok := valueTables[arg]
		if !ok {
			return nil, fmt.Errorf("unknown value table %q", arg)
		}
		for _, v := range vals() {
			t.Append(arg, strconv.FormatInt(v.value, 10), v.name)
		}
	}
	return t, nil
}

func valueTableNames() []string {
	names := make([]string, 0, len(valueTables))
	for name := range valueTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
