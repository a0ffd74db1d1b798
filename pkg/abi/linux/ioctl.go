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

package linux

import (
	"github.com/abitable/abitable/pkg/abi"
)

// ioctl(2) requests provided by asm-generic/ioctls.h
//
// These are ordered by request number (low byte).
const (
	TCGETS      = 0x00005401
	TCSETS      = 0x00005402
	TCSETSW     = 0x00005403
	TCSETSF     = 0x00005404
	TCSBRK      = 0x00005409
	TIOCEXCL    = 0x0000540c
	TIOCNXCL    = 0x0000540d
	TIOCSCTTY   = 0x0000540e
	TIOCGPGRP   = 0x0000540f
	TIOCSPGRP   = 0x00005410
	TIOCOUTQ    = 0x00005411
	TIOCSTI     = 0x00005412
	TIOCGWINSZ  = 0x00005413
	TIOCSWINSZ  = 0x00005414
	TIOCMGET    = 0x00005415
	TIOCMBIS    = 0x00005416
	TIOCMBIC    = 0x00005417
	TIOCMSET    = 0x00005418
	TIOCINQ     = 0x0000541b
	FIONREAD    = TIOCINQ
	FIONBIO     = 0x00005421
	TIOCSETD    = 0x00005423
	TIOCNOTTY   = 0x00005422
	TIOCGETD    = 0x00005424
	TCSBRKP     = 0x00005425
	TIOCSBRK    = 0x00005427
	TIOCCBRK    = 0x00005428
	TIOCGSID    = 0x00005429
	TIOCGPTN    = 0x80045430
	TIOCSPTLCK  = 0x40045431
	TIOCGDEV    = 0x80045432
	TIOCVHANGUP = 0x00005437
	TCFLSH      = 0x0000540b
	TIOCCONS    = 0x0000541d
	TIOCSSERIAL = 0x0000541f
	TIOCGEXCL   = 0x80045440
	TIOCGPTPEER = 0x80045441
	TIOCGICOUNT = 0x0000545d
	FIONCLEX    = 0x00005450
	FIOCLEX     = 0x00005451
	FIOASYNC    = 0x00005452
	FIOSETOWN   = 0x00008901
	SIOCSPGRP   = 0x00008902
	FIOGETOWN   = 0x00008903
	SIOCGPGRP   = 0x00008904
)

// Encoding of ioctl(2) request numbers, from uapi/asm-generic/ioctl.h.
const (
	IOC_NRBITS   = 8
	IOC_TYPEBITS = 8
	IOC_SIZEBITS = 14
	IOC_DIRBITS  = 2

	IOC_NRSHIFT   = 0
	IOC_TYPESHIFT = IOC_NRSHIFT + IOC_NRBITS
	IOC_SIZESHIFT = IOC_TYPESHIFT + IOC_TYPEBITS
	IOC_DIRSHIFT  = IOC_SIZESHIFT + IOC_SIZEBITS

	IOC_NONE  = 0
	IOC_WRITE = 1
	IOC_READ  = 2
)

// IOC outputs the result of _IOC macro in asm-generic/ioctl.h.
func IOC(dir, typ, nr, size uint32) uint32 {
	return dir<<IOC_DIRSHIFT | typ<<IOC_TYPESHIFT | nr<<IOC_NRSHIFT | size<<IOC_SIZESHIFT
}

// IO outputs the result of _IO macro in asm-generic/ioctl.h.
func IO(typ, nr uint32) uint32 {
	return IOC(IOC_NONE, typ, nr, 0)
}

// IOR outputs the result of _IOR macro in asm-generic/ioctl.h.
func IOR(typ, nr, size uint32) uint32 {
	return IOC(IOC_READ, typ, nr, size)
}

// IOW outputs the result of _IOW macro in asm-generic/ioctl.h.
func IOW(typ, nr, size uint32) uint32 {
	return IOC(IOC_WRITE, typ, nr, size)
}

// IOWR outputs the result of _IOWR macro in asm-generic/ioctl.h.
func IOWR(typ, nr, size uint32) uint32 {
	return IOC(IOC_READ|IOC_WRITE, typ, nr, size)
}

// IOC_DIR outputs the result of _IOC_DIR macro in asm-generic/ioctl.h.
func IOC_DIR(nr uint32) uint32 {
	return (nr >> IOC_DIRSHIFT) & ((1 << IOC_DIRBITS) - 1)
}

// IOC_TYPE outputs the result of _IOC_TYPE macro in asm-generic/ioctl.h.
func IOC_TYPE(nr uint32) uint32 {
	return (nr >> IOC_TYPESHIFT) & ((1 << IOC_TYPEBITS) - 1)
}

// IOC_NR outputs the result of _IOC_NR macro in asm-generic/ioctl.h.
func IOC_NR(nr uint32) uint32 {
	return (nr >> IOC_NRSHIFT) & ((1 << IOC_NRBITS) - 1)
}

// IOC_SIZE outputs the result of _IOC_SIZE macro in asm-generic/ioctl.h.
func IOC_SIZE(nr uint32) uint32 {
	return (nr >> IOC_SIZESHIFT) & ((1 << IOC_SIZEBITS) - 1)
}

// IoctlRequests names the requests above. FIONREAD is reported as TIOCINQ.
var IoctlRequests = abi.ValueSet{
	TCGETS:      "TCGETS",
	TCSETS:      "TCSETS",
	TCSETSW:     "TCSETSW",
	TCSETSF:     "TCSETSF",
	TCSBRK:      "TCSBRK",
	TIOCEXCL:    "TIOCEXCL",
	TIOCNXCL:    "TIOCNXCL",
	TIOCSCTTY:   "TIOCSCTTY",
	TIOCGPGRP:   "TIOCGPGRP",
	TIOCSPGRP:   "TIOCSPGRP",
	TIOCOUTQ:    "TIOCOUTQ",
	TIOCSTI:     "TIOCSTI",
	TIOCGWINSZ:  "TIOCGWINSZ",
	TIOCSWINSZ:  "TIOCSWINSZ",
	TIOCMGET:    "TIOCMGET",
	TIOCMBIS:    "TIOCMBIS",
	TIOCMBIC:    "TIOCMBIC",
	TIOCMSET:    "TIOCMSET",
	TIOCINQ:     "TIOCINQ",
	FIONBIO:     "FIONBIO",
	TIOCSETD:    "TIOCSETD",
	TIOCNOTTY:   "TIOCNOTTY",
	TIOCGETD:    "TIOCGETD",
	TCSBRKP:     "TCSBRKP",
	TIOCSBRK:    "TIOCSBRK",
	TIOCCBRK:    "TIOCCBRK",
	TIOCGSID:    "TIOCGSID",
	TIOCGPTN:    "TIOCGPTN",
	TIOCSPTLCK:  "TIOCSPTLCK",
	TIOCGDEV:    "TIOCGDEV",
	TIOCVHANGUP: "TIOCVHANGUP",
	TCFLSH:      "TCFLSH",
	TIOCCONS:    "TIOCCONS",
	TIOCSSERIAL: "TIOCSSERIAL",
	TIOCGEXCL:   "TIOCGEXCL",
	TIOCGPTPEER: "TIOCGPTPEER",
	TIOCGICOUNT: "TIOCGICOUNT",
	FIONCLEX:    "FIONCLEX",
	FIOCLEX:     "FIOCLEX",
	FIOASYNC:    "FIOASYNC",
	FIOSETOWN:   "FIOSETOWN",
	SIOCSPGRP:   "SIOCSPGRP",
	FIOGETOWN:   "FIOGETOWN",
	SIOCGPGRP:   "SIOCGPGRP",
}

// IoctlName returns the name of the ioctl(2) request req, or its hex value if
// req is unknown.
func IoctlName(req uint64) string {
	return IoctlRequests.ParseHex(req)
}
