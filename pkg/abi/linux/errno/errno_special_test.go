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

//go:build specialerrno
// +build specialerrno

package errno

import "testing"

func TestSpecial(t *testing.T) {
	for _, tc := range []struct {
		e    Errno
		name string
		desc string
	}{
		{DOMAINCRASH, "DOMAINCRASH", "Domain crash"},
		{EBLOCKING, "EBLOCKING", "Blocking"},
	} {
		if !tc.e.IsValid() {
			t.Errorf("%d is not valid", int(tc.e))
		}
		if got := tc.e.Name(); got != tc.name {
			t.Errorf("Name(%d) = %q, want %q", int(tc.e), got, tc.name)
		}
		if got := tc.e.String(); got != tc.desc {
			t.Errorf("String(%d) = %q, want %q", int(tc.e), got, tc.desc)
		}
		if got, ok := Lookup(tc.name); !ok || got != tc.e {
			t.Errorf("Lookup(%q) = %d, %t, want %d, true", tc.name, int(got), ok, int(tc.e))
		}
	}
	all := All()
	if got := all[len(all)-2:]; got[0] != DOMAINCRASH || got[1] != EBLOCKING {
		t.Errorf("All() ends with %v, want DOMAINCRASH, EBLOCKING", got)
	}
}
