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

package hostarch

import (
	"math"
	"testing"
)

func TestAddLength(t *testing.T) {
	for _, tc := range []struct {
		start  Addr
		length uint64
		end    Addr
		ok     bool
	}{
		{0, 0, 0, true},
		{0x1000, 0x10, 0x1010, true},
		{Addr(math.MaxUint64 - 1), 1, Addr(math.MaxUint64), true},
		{Addr(math.MaxUint64), 1, 0, false},
	} {
		end, ok := tc.start.AddLength(tc.length)
		if ok != tc.ok || (ok && end != tc.end) {
			t.Errorf("%v.AddLength(%d) = %v, %t, want %v, %t", tc.start, tc.length, end, ok, tc.end, tc.ok)
		}
	}
}

func TestByteOrder(t *testing.T) {
	if got := ByteOrder.Uint32([]byte{1, 0, 0, 0}); got != 1 {
		t.Errorf("ByteOrder is not little-endian")
	}
}
