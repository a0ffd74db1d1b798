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

// PR_* operations, from <linux/prctl.h> for prctl(2).
const (
	// PR_SET_PDEATHSIG sets the parent-death signal of the calling process.
	PR_SET_PDEATHSIG = 1

	// PR_GET_PDEATHSIG returns the parent-death signal.
	PR_GET_PDEATHSIG = 2
	PR_GET_DUMPABLE  = 3
	PR_SET_DUMPABLE  = 4
	PR_GET_UNALIGN   = 5
	PR_SET_UNALIGN   = 6
	PR_GET_KEEPCAPS  = 7
	PR_SET_KEEPCAPS  = 8
	PR_GET_FPEMU     = 9
	PR_SET_FPEMU     = 10
	PR_GET_FPEXC     = 11
	PR_SET_FPEXC     = 12
	PR_GET_TIMING    = 13
	PR_SET_TIMING    = 14

	// PR_SET_NAME sets the name of the calling thread.
	PR_SET_NAME                 = 15
	PR_GET_NAME                 = 16
	PR_GET_ENDIAN               = 19
	PR_SET_ENDIAN               = 20
	PR_GET_SECCOMP              = 21
	PR_SET_SECCOMP              = 22
	PR_CAPBSET_READ             = 23
	PR_CAPBSET_DROP             = 24
	PR_GET_TSC                  = 25
	PR_SET_TSC                  = 26
	PR_GET_SECUREBITS           = 27
	PR_SET_SECUREBITS           = 28
	PR_SET_TIMERSLACK           = 29
	PR_GET_TIMERSLACK           = 30
	PR_TASK_PERF_EVENTS_DISABLE = 31
	PR_TASK_PERF_EVENTS_ENABLE  = 32

	// PR_MCE_KILL sets the machine check memory corruption kill policy.
	PR_MCE_KILL     = 33
	PR_MCE_KILL_GET = 34

	// PR_SET_MM modifies kernel memory map descriptor fields of the calling process. arg2 is one of the PR_SET_MM_* options.
	PR_SET_MM              = 35
	PR_SET_CHILD_SUBREAPER = 36
	PR_GET_CHILD_SUBREAPER = 37
	PR_SET_NO_NEW_PRIVS    = 38
	PR_GET_NO_NEW_PRIVS    = 39
	PR_GET_TID_ADDRESS     = 40
	PR_SET_THP_DISABLE     = 41
	PR_GET_THP_DISABLE     = 42

	// PR_MPX_ENABLE_MANAGEMENT is no longer supported by Linux.
	PR_MPX_ENABLE_MANAGEMENT  = 43
	PR_MPX_DISABLE_MANAGEMENT = 44
	PR_SET_FP_MODE            = 45
	PR_GET_FP_MODE            = 46

	// PR_CAP_AMBIENT controls the ambient capability set. arg2 is one of the PR_CAP_AMBIENT_* options.
	PR_CAP_AMBIENT               = 47
	PR_SVE_SET_VL                = 50
	PR_SVE_GET_VL                = 51
	PR_GET_SPECULATION_CTRL      = 52
	PR_SET_SPECULATION_CTRL      = 53
	PR_PAC_RESET_KEYS            = 54
	PR_SET_TAGGED_ADDR_CTRL      = 55
	PR_GET_TAGGED_ADDR_CTRL      = 56
	PR_SET_IO_FLUSHER            = 57
	PR_GET_IO_FLUSHER            = 58
	PR_SET_SYSCALL_USER_DISPATCH = 59
	PR_PAC_SET_ENABLED_KEYS      = 60
	PR_PAC_GET_ENABLED_KEYS      = 61
	PR_SCHED_CORE                = 62
	PR_SME_SET_VL                = 63
	PR_SME_GET_VL                = 64

	// PR_SET_MDWE sets the memory-deny-write-execute policy.
	PR_SET_MDWE                   = 65
	PR_GET_MDWE                   = 66
	PR_SET_MEMORY_MERGE           = 67
	PR_GET_MEMORY_MERGE           = 68
	PR_RISCV_V_SET_CONTROL        = 69
	PR_RISCV_V_GET_CONTROL        = 70
	PR_RISCV_SET_ICACHE_FLUSH_CTX = 71
)

// Options for PR_SET_UNALIGN.
const (
	PR_UNALIGN_NOPRINT = 1
	PR_UNALIGN_SIGBUS  = 2
)

// Options for PR_SET_FPEMU.
const (
	PR_FPEMU_NOPRINT = 1
	PR_FPEMU_SIGFPE  = 2
)

// Options for PR_SET_FPEXC.
const (
	PR_FP_EXC_SW_ENABLE = 0x80
	PR_FP_EXC_DIV       = 0x010000
	PR_FP_EXC_OVF       = 0x020000
	PR_FP_EXC_UND       = 0x040000
	PR_FP_EXC_RES       = 0x080000
	PR_FP_EXC_INV       = 0x100000
	PR_FP_EXC_DISABLED  = 0
	PR_FP_EXC_NONRECOV  = 1
	PR_FP_EXC_ASYNC     = 2
	PR_FP_EXC_PRECISE   = 3
)

// Options for PR_SET_TIMING.
const (
	PR_TIMING_STATISTICAL = 0
	PR_TIMING_TIMESTAMP   = 1
)

// Options for PR_SET_ENDIAN.
const (
	PR_ENDIAN_BIG        = 0
	PR_ENDIAN_LITTLE     = 1
	PR_ENDIAN_PPC_LITTLE = 2
)

// Options for PR_SET_TSC.
const (
	PR_TSC_ENABLE  = 1
	PR_TSC_SIGSEGV = 2
)

// Options for PR_MCE_KILL.
const (
	PR_MCE_KILL_CLEAR   = 0
	PR_MCE_KILL_SET     = 1
	PR_MCE_KILL_LATE    = 0
	PR_MCE_KILL_EARLY   = 1
	PR_MCE_KILL_DEFAULT = 2
)

// Options for PR_SET_MM.
const (
	PR_SET_MM_START_CODE  = 1
	PR_SET_MM_END_CODE    = 2
	PR_SET_MM_START_DATA  = 3
	PR_SET_MM_END_DATA    = 4
	PR_SET_MM_START_STACK = 5
	PR_SET_MM_START_BRK   = 6
	PR_SET_MM_BRK         = 7
	PR_SET_MM_ARG_START   = 8
	PR_SET_MM_ARG_END     = 9
	PR_SET_MM_ENV_START   = 10
	PR_SET_MM_ENV_END     = 11
	PR_SET_MM_AUXV        = 12
	// PR_SET_MM_EXE_FILE will supersede the /proc/pid/exe symbolic link with a
	// new one pointing to a new executable file identified by the file descriptor
	// provided in arg3 argument. See prctl(2) for more information.
	PR_SET_MM_EXE_FILE = 13
	PR_SET_MM_MAP      = 14
	PR_SET_MM_MAP_SIZE = 15
)

// Options for PR_SET_FP_MODE.
const (
	PR_FP_MODE_FR  = 1 << 0
	PR_FP_MODE_FRE = 1 << 1
)

// Options for PR_CAP_AMBIENT.
const (
	PR_CAP_AMBIENT_IS_SET    = 1
	PR_CAP_AMBIENT_RAISE     = 2
	PR_CAP_AMBIENT_LOWER     = 3
	PR_CAP_AMBIENT_CLEAR_ALL = 4
)

// Options for PR_SET_SPECULATION_CTRL.
const (
	PR_SPEC_STORE_BYPASS    = 0
	PR_SPEC_INDIRECT_BRANCH = 1
	PR_SPEC_L1D_FLUSH       = 2
	PR_SPEC_NOT_AFFECTED    = 0
	PR_SPEC_PRCTL           = 1 << 0
	PR_SPEC_ENABLE          = 1 << 1
	PR_SPEC_DISABLE         = 1 << 2
	PR_SPEC_FORCE_DISABLE   = 1 << 3
	PR_SPEC_DISABLE_NOEXEC  = 1 << 4
)

// Options for PR_SET_SYSCALL_USER_DISPATCH.
const (
	PR_SYS_DISPATCH_OFF = 0
	PR_SYS_DISPATCH_ON  = 1
)

// Options for PR_SET_MDWE.
const (
	PR_MDWE_REFUSE_EXEC_GAIN = 1 << 0
	PR_MDWE_NO_INHERIT       = 1 << 1
)

// From <asm/prctl.h>
// Flags are used in syscall arch_prctl(2).
const (
	ARCH_SET_GS    = 0x1001
	ARCH_SET_FS    = 0x1002
	ARCH_GET_FS    = 0x1003
	ARCH_GET_GS    = 0x1004
	ARCH_SET_CPUID = 0x1012
)

// PrctlOps names the prctl(2) operations.
var PrctlOps = abi.ValueSet{
	PR_SET_PDEATHSIG:              "PR_SET_PDEATHSIG",
	PR_GET_PDEATHSIG:              "PR_GET_PDEATHSIG",
	PR_GET_DUMPABLE:               "PR_GET_DUMPABLE",
	PR_SET_DUMPABLE:               "PR_SET_DUMPABLE",
	PR_GET_UNALIGN:                "PR_GET_UNALIGN",
	PR_SET_UNALIGN:                "PR_SET_UNALIGN",
	PR_GET_KEEPCAPS:               "PR_GET_KEEPCAPS",
	PR_SET_KEEPCAPS:               "PR_SET_KEEPCAPS",
	PR_GET_FPEMU:                  "PR_GET_FPEMU",
	PR_SET_FPEMU:                  "PR_SET_FPEMU",
	PR_GET_FPEXC:                  "PR_GET_FPEXC",
	PR_SET_FPEXC:                  "PR_SET_FPEXC",
	PR_GET_TIMING:                 "PR_GET_TIMING",
	PR_SET_TIMING:                 "PR_SET_TIMING",
	PR_SET_NAME:                   "PR_SET_NAME",
	PR_GET_NAME:                   "PR_GET_NAME",
	PR_GET_ENDIAN:                 "PR_GET_ENDIAN",
	PR_SET_ENDIAN:                 "PR_SET_ENDIAN",
	PR_GET_SECCOMP:                "PR_GET_SECCOMP",
	PR_SET_SECCOMP:                "PR_SET_SECCOMP",
	PR_CAPBSET_READ:               "PR_CAPBSET_READ",
	PR_CAPBSET_DROP:               "PR_CAPBSET_DROP",
	PR_GET_TSC:                    "PR_GET_TSC",
	PR_SET_TSC:                    "PR_SET_TSC",
	PR_GET_SECUREBITS:             "PR_GET_SECUREBITS",
	PR_SET_SECUREBITS:             "PR_SET_SECUREBITS",
	PR_SET_TIMERSLACK:             "PR_SET_TIMERSLACK",
	PR_GET_TIMERSLACK:             "PR_GET_TIMERSLACK",
	PR_TASK_PERF_EVENTS_DISABLE:   "PR_TASK_PERF_EVENTS_DISABLE",
	PR_TASK_PERF_EVENTS_ENABLE:    "PR_TASK_PERF_EVENTS_ENABLE",
	PR_MCE_KILL:                   "PR_MCE_KILL",
	PR_MCE_KILL_GET:               "PR_MCE_KILL_GET",
	PR_SET_MM:                     "PR_SET_MM",
	PR_SET_CHILD_SUBREAPER:        "PR_SET_CHILD_SUBREAPER",
	PR_GET_CHILD_SUBREAPER:        "PR_GET_CHILD_SUBREAPER",
	PR_SET_NO_NEW_PRIVS:           "PR_SET_NO_NEW_PRIVS",
	PR_GET_NO_NEW_PRIVS:           "PR_GET_NO_NEW_PRIVS",
	PR_GET_TID_ADDRESS:            "PR_GET_TID_ADDRESS",
	PR_SET_THP_DISABLE:            "PR_SET_THP_DISABLE",
	PR_GET_THP_DISABLE:            "PR_GET_THP_DISABLE",
	PR_MPX_ENABLE_MANAGEMENT:      "PR_MPX_ENABLE_MANAGEMENT",
	PR_MPX_DISABLE_MANAGEMENT:     "PR_MPX_DISABLE_MANAGEMENT",
	PR_SET_FP_MODE:                "PR_SET_FP_MODE",
	PR_GET_FP_MODE:                "PR_GET_FP_MODE",
	PR_CAP_AMBIENT:                "PR_CAP_AMBIENT",
	PR_SVE_SET_VL:                 "PR_SVE_SET_VL",
	PR_SVE_GET_VL:                 "PR_SVE_GET_VL",
	PR_GET_SPECULATION_CTRL:       "PR_GET_SPECULATION_CTRL",
	PR_SET_SPECULATION_CTRL:       "PR_SET_SPECULATION_CTRL",
	PR_PAC_RESET_KEYS:             "PR_PAC_RESET_KEYS",
	PR_SET_TAGGED_ADDR_CTRL:       "PR_SET_TAGGED_ADDR_CTRL",
	PR_GET_TAGGED_ADDR_CTRL:       "PR_GET_TAGGED_ADDR_CTRL",
	PR_SET_IO_FLUSHER:             "PR_SET_IO_FLUSHER",
	PR_GET_IO_FLUSHER:             "PR_GET_IO_FLUSHER",
	PR_SET_SYSCALL_USER_DISPATCH:  "PR_SET_SYSCALL_USER_DISPATCH",
	PR_PAC_SET_ENABLED_KEYS:       "PR_PAC_SET_ENABLED_KEYS",
	PR_PAC_GET_ENABLED_KEYS:       "PR_PAC_GET_ENABLED_KEYS",
	PR_SCHED_CORE:                 "PR_SCHED_CORE",
	PR_SME_SET_VL:                 "PR_SME_SET_VL",
	PR_SME_GET_VL:                 "PR_SME_GET_VL",
	PR_SET_MDWE:                   "PR_SET_MDWE",
	PR_GET_MDWE:                   "PR_GET_MDWE",
	PR_SET_MEMORY_MERGE:           "PR_SET_MEMORY_MERGE",
	PR_GET_MEMORY_MERGE:           "PR_GET_MEMORY_MERGE",
	PR_RISCV_V_SET_CONTROL:        "PR_RISCV_V_SET_CONTROL",
	PR_RISCV_V_GET_CONTROL:        "PR_RISCV_V_GET_CONTROL",
	PR_RISCV_SET_ICACHE_FLUSH_CTX: "PR_RISCV_SET_ICACHE_FLUSH_CTX",
}

// PrctlName returns the name of the prctl(2) operation op, or its decimal
// value if op is unknown.
func PrctlName(op uint64) string {
	return PrctlOps.ParseDecimal(op)
}
