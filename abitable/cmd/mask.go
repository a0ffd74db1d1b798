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
	"strings"

	"github.com/abitable/abitable/abitable/config"
	"github.com/abitable/abitable/pkg/abi"
	"github.com/abitable/abitable/pkg/abi/linux"
	"github.com/google/subcommands"
)

var flagSets = map[string]abi.FlagSet{
	"epoll":     linux.EpollEventFlags,
	"eventfd":   linux.EventFdFlagSet,
	"sigaction": linux.SAFlagSet,
}

// Mask implements subcommands.Command for the "mask" command.
type Mask struct{}

// Name implements subcommands.Command.Name.
func (*Mask) Name() string {
	return "mask"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Mask) Synopsis() string {
	return "Decode a flag mask into names, or names into a mask."
}

// Usage implements subcommands.Command.Usage.
func (*Mask) Usage() string {
	return fmt.Sprintf(`mask <set> <value|NAME|NAME...> - Decode a flag mask into names, or names into a mask.

Known sets: %s.
`, strings.Join(flagSetNames(), ", "))
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Mask) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (m *Mask) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	t, err := maskTable(f.Arg(0), f.Arg(1))
	return render(m.Name(), conf, t, err)
}

// maskTable lists every flag set in arg followed by a row for the whole
// mask. Bits that no flag covers are listed as a single hex row.
func maskTable(set, arg string) (*Table, error) {
	fs, ok := flagSets[set]
	if !ok {
		return nil, fmt.Errorf("unknown flag set %q", set)
	}
	mask, err := parseMask(fs, arg)
	if err != nil {
		return nil, err
	}
	t := &Table{Header: []string{"Flag", "Value"}}
	names, rest := fs.Names(mask)
	for _, name := range names {
		v, _ := fs.Lookup(name)
		t.Append(name, hex(v))
	}
	if rest != 0 {
		t.Append(hex(rest), hex(rest))
	}
	t.Append(fs.Parse(mask), hex(mask))
	return t, nil
}

// parseMask accepts either a number or names joined by "|".
func parseMask(fs abi.FlagSet, arg string) (uint64, error) {
	if v, ok := parseNumber(arg); ok {
		return v, nil
	}
	var mask uint64
	for _, name := range strings.Split(arg, "|") {
		name = strings.TrimSpace(name)
		if v, ok := fs.Lookup(name); ok {
			mask |= v
			continue
		}
		v, ok := parseNumber(name)
		if !ok {
			return 0, fmt.Errorf("unknown flag %q", name)
		}
		mask |= v
	}
	return mask, nil
}

func flagSetNames() []string {
	names := make([]string, 0, len(flagSets))
	for name := range flagSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
