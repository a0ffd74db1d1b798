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

// Package abi describes the interface between a kernel and userspace, and
// holds the helpers used to render ABI values as text.
package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// A FlagSet is a slice of bit-flags and their name.
type FlagSet []struct {
	Flag uint64
	Name string
}

// Parse returns a pretty version of val, using the flag names for known flags.
// Unknown flags remain numeric.
func (s FlagSet) Parse(val uint64) string {
	var flags []string

	for _, f := range s {
		if f.Flag == 0 {
			continue
		}
		if val&f.Flag == f.Flag {
			flags = append(flags, f.Name)
			val &^= f.Flag
		}
	}

	if val != 0 {
		flags = append(flags, "0x"+strconv.FormatUint(val, 16))
	}

	if len(flags) == 0 {
		// Prefer 0 to an empty string.
		return "0x0"
	}

	return strings.Join(flags, "|")
}

// Names returns the names of the flags set in val, in FlagSet order. The
// second return value holds the bits not covered by any flag.
func (s FlagSet) Names(val uint64) ([]string, uint64) {
	var names []string
	for _, f := range s {
		if f.Flag != 0 && val&f.Flag == f.Flag {
			names = append(names, f.Name)
			val &^= f.Flag
		}
	}
	return names, val
}

// Lookup returns the flag value for name.
func (s FlagSet) Lookup(name string) (uint64, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Flag, true
		}
	}
	return 0, false
}

// Mask returns the union of all flags in the set.
func (s FlagSet) Mask() uint64 {
	var m uint64
	for _, f := range s {
		m |= f.Flag
	}
	return m
}

// ValueSet is a map of syscall values to their name. Parse will use the name
// or the value if unknown.
type ValueSet map[uint64]string

// ParseDecimal returns the name of the value. If it is unknown, returns the
// value as a decimal number.
func (s ValueSet) ParseDecimal(val uint64) string {
	if v, ok := s[val]; ok {
		return v
	}
	return fmt.Sprintf("%d", val)
}

// ParseHex returns the name of the value. If it is unknown, returns the value
// as a hex number.
func (s ValueSet) ParseHex(val uint64) string {
	if v, ok := s[val]; ok {
		return v
	}
	return fmt.Sprintf("%#x", val)
}

// ParseOr returns the name of the value, or def if it is unknown.
func (s ValueSet) ParseOr(val uint64, def string) string {
	if v, ok := s[val]; ok {
		return v
	}
	return def
}

// Lookup returns the value whose name is name. ValueSets are keyed by value,
// so this is a linear scan.
func (s ValueSet) Lookup(name string) (uint64, bool) {
	for k, v := range s {
		if v == name {
			return k, true
		}
	}
	return 0, false
}
