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

package bits

import (
	"reflect"
	"testing"
)

func TestTrailingZeros64(t *testing.T) {
	for i := 0; i <= 64; i++ {
		n := uint64(1) << uint(i)
		if got, want := TrailingZeros64(n), i; got != want {
			t.Errorf("TrailingZeros64(%#x): got %d, wanted %d", n, got, want)
		}
	}

	for i := 0; i < 64; i++ {
		n := ^uint64(0) << uint(i)
		if got, want := TrailingZeros64(n), i; got != want {
			t.Errorf("TrailingZeros64(%#x): got %d, wanted %d", n, got, want)
		}
	}
}

func TestForEachSetBit64(t *testing.T) {
	for _, want := range [][]int{
		{},
		{0},
		{1},
		{63},
		{0, 1},
		{1, 3, 5},
		{0, 63},
	} {
		n := Mask[uint64](want...)
		// "Slice values are deeply equal when ... they are both nil or both
		// non-nil ..."
		got := make([]int, 0)
		ForEachSetBit64(n, func(i int) {
			got = append(got, i)
		})
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ForEachSetBit64(%#x): iterated bits %v, wanted %v", n, got, want)
		}
	}
}

func TestIsOn(t *testing.T) {
	type testCase struct {
		mask uint64
		bits uint64
		any  bool
		all  bool
	}
	for _, s := range []testCase{
		{Mask[uint64](0), Mask[uint64](0), true, true},
		{Mask[uint64](63), Mask[uint64](63), true, true},
		{Mask[uint64](0), Mask[uint64](1), false, false},
		{Mask[uint64](0), Mask[uint64](0, 1), true, false},

		{Mask[uint64](1, 63), Mask[uint64](1), true, true},
		{Mask[uint64](1, 63), Mask[uint64](1, 63), true, true},
		{Mask[uint64](1, 63), Mask[uint64](0, 1, 63), true, false},
		{Mask[uint64](1, 63), Mask[uint64](0, 62), false, false},
	} {
		if ok := IsAnyOn(s.mask, s.bits); ok != s.any {
			t.Errorf("IsAnyOn(%#x, %#x) = %v, wanted: %v", s.mask, s.bits, ok, s.any)
		}
		if ok := IsOn(s.mask, s.bits); ok != s.all {
			t.Errorf("IsOn(%#x, %#x) = %v, wanted: %v", s.mask, s.bits, ok, s.all)
		}
	}
}

type flags32 uint32

func TestSetAlgebra(t *testing.T) {
	vals := []flags32{0, 1, 0x5, 0x80000000, 0xdeadbeef, ^flags32(0)}
	for _, a := range vals {
		if got := Intersect(a, a); got != a {
			t.Errorf("Intersect(%#x, %#x) = %#x, want identity", a, a, got)
		}
		if got := Difference(a, a); got != 0 {
			t.Errorf("Difference(%#x, %#x) = %#x, want 0", a, a, got)
		}
		for _, b := range vals {
			if Union(a, b) != Union(b, a) {
				t.Errorf("Union(%#x, %#x) is not commutative", a, b)
			}
			if Intersect(a, b) != Intersect(b, a) {
				t.Errorf("Intersect(%#x, %#x) is not commutative", a, b)
			}
			if got := Union(Difference(a, b), Intersect(a, b)); got != a {
				t.Errorf("(a-b)|(a&b) = %#x, want %#x", got, a)
			}
			for _, c := range vals {
				if Union(Union(a, b), c) != Union(a, Union(b, c)) {
					t.Errorf("Union(%#x, %#x, %#x) is not associative", a, b, c)
				}
			}
		}
	}
	if got := OnesCount(flags32(0xdeadbeef)); got != 24 {
		t.Errorf("OnesCount(0xdeadbeef) = %d, want 24", got)
	}
}
