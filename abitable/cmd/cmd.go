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

// Package cmd holds implementations of the abitable commands.
package cmd

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/abitable/abitable/abitable/cmd/util"
	"github.com/abitable/abitable/abitable/config"
	"github.com/abitable/abitable/pkg/abi"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// render writes the table built by a command to stdout, or reports err.
func render(name string, conf *config.Config, t *Table, err error) subcommands.ExitStatus {
	if err != nil {
		return util.Errorf("%s: %v", name, err)
	}
	logrus.WithFields(logrus.Fields{"command": name, "rows": len(t.Rows)}).Debug("writing table")
	if err := t.Write(os.Stdout, conf.Format); err != nil {
		return util.Errorf("%s: writing output: %v", name, err)
	}
	return subcommands.ExitSuccess
}

// parseNumber parses a decimal, hex (0x) or octal (0) unsigned value. A
// leading minus sign is accepted and yields the two's complement.
func parseNumber(s string) (uint64, bool) {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		v, err := strconv.ParseUint(rest, 0, 64)
		if err != nil {
			return 0, false
		}
		return -v, true
	}
	v, err := strconv.ParseUint(s, 0, 64)
	return v, err == nil
}

// sortedValues returns the values of vs in ascending order.
func sortedValues(vs abi.ValueSet) []uint64 {
	vals := make([]uint64, 0, len(vs))
	for v := range vs {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals
}

func hex(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}
