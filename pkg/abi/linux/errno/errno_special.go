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

// Kernel-private codes. They are never handed to user space; the kernel uses
// them internally to signal conditions Linux has no errno for.
const (
	// DOMAINCRASH reports that the domain servicing a call has crashed.
	DOMAINCRASH Errno = -255

	// EBLOCKING reports that a call would block and must be parked.
	EBLOCKING Errno = -256
)

var special = map[Errno]entry{
	DOMAINCRASH: {"DOMAINCRASH", "Domain crash"},
	EBLOCKING:   {"EBLOCKING", "Blocking"},
}

var specialOrder = []Errno{DOMAINCRASH, EBLOCKING}
