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

// Syscall numbers from include/uapi/asm-generic/unistd.h, the table shared by
// arm64, riscv64 and loongarch64.
//
// Only the entry points a Linux-compatible kernel built on this module
// dispatches are listed; SyscallName reports every other number as unknown.
const (
	SYS_GETCWD             = 17
	SYS_EVENTFD2           = 19
	SYS_EPOLL_CREATE1      = 20
	SYS_EPOLL_CTL          = 21
	SYS_EPOLL_PWAIT        = 22
	SYS_DUP                = 23
	SYS_DUP3               = 24
	SYS_FCNTL              = 25
	SYS_IOCTL              = 29
	SYS_MKNODAT            = 33
	SYS_MKDIRAT            = 34
	SYS_UNLINKAT           = 35
	SYS_LINKAT             = 37
	SYS_UMOUNT2            = 39
	SYS_MOUNT              = 40
	SYS_STATFS             = 43
	SYS_FTRUNCATE          = 46
	SYS_FACCESSAT          = 48
	SYS_CHDIR              = 49
	SYS_FCHMOD             = 52
	SYS_FCHMODAT           = 53
	SYS_FCHOWN             = 55
	SYS_OPENAT             = 56
	SYS_CLOSE              = 57
	SYS_PIPE2              = 59
	SYS_GETDENTS64         = 61
	SYS_LSEEK              = 62
	SYS_READ               = 63
	SYS_WRITE              = 64
	SYS_READV              = 65
	SYS_WRITEV             = 66
	SYS_PREAD64            = 67
	SYS_PWRITE64           = 68
	SYS_SENDFILE           = 71
	SYS_PSELECT6           = 72
	SYS_PPOLL              = 73
	SYS_READLINKAT         = 78
	SYS_FSTATAT            = 79
	SYS_FSTAT              = 80
	SYS_SYNC               = 81
	SYS_FSYNC              = 82
	SYS_UTIMENSAT          = 88
	SYS_EXIT               = 93
	SYS_EXIT_GROUP         = 94
	SYS_SET_TID_ADDRESS    = 96
	SYS_FUTEX              = 98
	SYS_SET_ROBUST_LIST    = 99
	SYS_GET_ROBUST_LIST    = 100
	SYS_NANOSLEEP          = 101
	SYS_GETITIMER          = 102
	SYS_SETITIMER          = 103
	SYS_CLOCK_GETTIME      = 113
	SYS_CLOCK_GETRES       = 114
	SYS_CLOCK_NANOSLEEP    = 115
	SYS_SYSLOG             = 116
	SYS_SCHED_SETPARAM     = 118
	SYS_SCHED_SETSCHEDULER = 119
	SYS_SCHED_GETSCHEDULER = 120
	SYS_SCHED_GETPARAM     = 121
	SYS_SCHED_SETAFFINITY  = 122
	SYS_SCHED_GETAFFINITY  = 123
	SYS_SCHED_YIELD        = 124
	SYS_KILL               = 129
	SYS_TKILL              = 130
	SYS_TGKILL             = 131
	SYS_SIGALTSTACK        = 132
	SYS_RT_SIGSUSPEND      = 133
	SYS_RT_SIGACTION       = 134
	SYS_RT_SIGPROCMASK     = 135
	SYS_RT_SIGPENDING      = 136
	SYS_RT_SIGTIMEDWAIT    = 137
	SYS_RT_SIGRETURN       = 139
	SYS_TIMES              = 153
	SYS_SETPGID            = 154
	SYS_GETPGID            = 155
	SYS_SETSID             = 157
	SYS_UNAME              = 160
	SYS_GETRLIMIT          = 163
	SYS_SETRLIMIT          = 164
	SYS_GETRUSAGE          = 165
	SYS_UMASK              = 166
	SYS_PRCTL              = 167
	SYS_GETTIMEOFDAY       = 169
	SYS_GETPID             = 172
	SYS_GETPPID            = 173
	SYS_GETUID             = 174
	SYS_GETEUID            = 175
	SYS_GETGID             = 176
	SYS_GETEGID            = 177
	SYS_GETTID             = 178
	SYS_SYSINFO            = 179
	SYS_SHMGET             = 194
	SYS_SHMCTL             = 195
	SYS_SHMAT              = 196
	SYS_SHMDT              = 197
	SYS_SOCKET             = 198
	SYS_BIND               = 200
	SYS_LISTEN             = 201
	SYS_ACCEPT             = 202
	SYS_CONNECT            = 203
	SYS_GETSOCKNAME        = 204
	SYS_GETPEERNAME        = 205
	SYS_SENDTO             = 206
	SYS_RECVFROM           = 207
	SYS_SETSOCKOPT         = 208
	SYS_GETSOCKOPT         = 209
	SYS_SHUTDOWN           = 210
	SYS_MREMAP             = 213
	SYS_BRK                = 214
	SYS_MUNMAP             = 215
	SYS_CLONE              = 220
	SYS_EXECVE             = 221
	SYS_MMAP               = 222
	SYS_MPROTECT           = 226
	SYS_MSYNC              = 227
	SYS_MADVISE            = 233
	SYS_WAIT4              = 260
	SYS_PRLIMIT64          = 261
	SYS_RENAMEAT2          = 276
	SYS_MEMBARRIER         = 283
	SYS_COPY_FILE_RANGE    = 285
	SYS_FACCESSAT2         = 439

	// SYS_NEWFSTATAT is the kernel-internal name of SYS_FSTATAT.
	SYS_NEWFSTATAT = SYS_FSTATAT
)

// UnknownSyscall is the name reported for syscall numbers that are not in
// the table.
const UnknownSyscall = "unknown"

// syscallNames maps syscall numbers to the mnemonic used by the kernel's
// syscall table and by strace(1).
var syscallNames = map[uintptr]string{
	SYS_GETCWD:             "getcwd",
	SYS_EVENTFD2:           "eventfd2",
	SYS_EPOLL_CREATE1:      "epoll_create1",
	SYS_EPOLL_CTL:          "epoll_ctl",
	SYS_EPOLL_PWAIT:        "epoll_pwait",
	SYS_DUP:                "dup",
	SYS_DUP3:               "dup3",
	SYS_FCNTL:              "fcntl",
	SYS_IOCTL:              "ioctl",
	SYS_MKNODAT:            "mknodat",
	SYS_MKDIRAT:            "mkdirat",
	SYS_UNLINKAT:           "unlinkat",
	SYS_LINKAT:             "linkat",
	SYS_UMOUNT2:            "umount2",
	SYS_MOUNT:              "mount",
	SYS_STATFS:             "statfs",
	SYS_FTRUNCATE:          "ftruncate",
	SYS_FACCESSAT:          "faccessat",
	SYS_CHDIR:              "chdir",
	SYS_FCHMOD:             "fchmod",
	SYS_FCHMODAT:           "fchmodat",
	SYS_FCHOWN:             "fchown",
	SYS_OPENAT:             "openat",
	SYS_CLOSE:              "close",
	SYS_PIPE2:              "pipe2",
	SYS_GETDENTS64:         "getdents64",
	SYS_LSEEK:              "lseek",
	SYS_READ:               "read",
	SYS_WRITE:              "write",
	SYS_READV:              "readv",
	SYS_WRITEV:             "writev",
	SYS_PREAD64:            "pread64",
	SYS_PWRITE64:           "pwrite64",
	SYS_SENDFILE:           "sendfile",
	SYS_PSELECT6:           "pselect6",
	SYS_PPOLL:              "ppoll",
	SYS_READLINKAT:         "readlinkat",
	SYS_FSTATAT:            "newfstatat",
	SYS_FSTAT:              "fstat",
	SYS_SYNC:               "sync",
	SYS_FSYNC:              "fsync",
	SYS_UTIMENSAT:          "utimensat",
	SYS_EXIT:               "exit",
	SYS_EXIT_GROUP:         "exit_group",
	SYS_SET_TID_ADDRESS:    "set_tid_address",
	SYS_FUTEX:              "futex",
	SYS_SET_ROBUST_LIST:    "set_robust_list",
	SYS_GET_ROBUST_LIST:    "get_robust_list",
	SYS_NANOSLEEP:          "nanosleep",
	SYS_GETITIMER:          "getitimer",
	SYS_SETITIMER:          "setitimer",
	SYS_CLOCK_GETTIME:      "clock_gettime",
	SYS_CLOCK_GETRES:       "clock_getres",
	SYS_CLOCK_NANOSLEEP:    "clock_nanosleep",
	SYS_SYSLOG:             "syslog",
	SYS_SCHED_SETPARAM:     "sched_setparam",
	SYS_SCHED_SETSCHEDULER: "sched_setscheduler",
	SYS_SCHED_GETSCHEDULER: "sched_getscheduler",
	SYS_SCHED_GETPARAM:     "sched_getparam",
	SYS_SCHED_SETAFFINITY:  "sched_setaffinity",
	SYS_SCHED_GETAFFINITY:  "sched_getaffinity",
	SYS_SCHED_YIELD:        "sched_yield",
	SYS_KILL:               "kill",
	SYS_TKILL:              "tkill",
	SYS_TGKILL:             "tgkill",
	SYS_SIGALTSTACK:        "sigaltstack",
	SYS_RT_SIGSUSPEND:      "rt_sigsuspend",
	SYS_RT_SIGACTION:       "rt_sigaction",
	SYS_RT_SIGPROCMASK:     "rt_sigprocmask",
	SYS_RT_SIGPENDING:      "rt_sigpending",
	SYS_RT_SIGTIMEDWAIT:    "rt_sigtimedwait",
	SYS_RT_SIGRETURN:       "rt_sigreturn",
	SYS_TIMES:              "times",
	SYS_SETPGID:            "setpgid",
	SYS_GETPGID:            "getpgid",
	SYS_SETSID:             "setsid",
	SYS_UNAME:              "uname",
	SYS_GETRLIMIT:          "getrlimit",
	SYS_SETRLIMIT:          "setrlimit",
	SYS_GETRUSAGE:          "getrusage",
	SYS_UMASK:              "umask",
	SYS_PRCTL:              "prctl",
	SYS_GETTIMEOFDAY:       "gettimeofday",
	SYS_GETPID:             "getpid",
	SYS_GETPPID:            "getppid",
	SYS_GETUID:             "getuid",
	SYS_GETEUID:            "geteuid",
	SYS_GETGID:             "getgid",
	SYS_GETEGID:            "getegid",
	SYS_GETTID:             "gettid",
	SYS_SYSINFO:            "sysinfo",
	SYS_SHMGET:             "shmget",
	SYS_SHMCTL:             "shmctl",
	SYS_SHMAT:              "shmat",
	SYS_SHMDT:              "shmdt",
	SYS_SOCKET:             "socket",
	SYS_BIND:               "bind",
	SYS_LISTEN:             "listen",
	SYS_ACCEPT:             "accept",
	SYS_CONNECT:            "connect",
	SYS_GETSOCKNAME:        "getsockname",
	SYS_GETPEERNAME:        "getpeername",
	SYS_SENDTO:             "sendto",
	SYS_RECVFROM:           "recvfrom",
	SYS_SETSOCKOPT:         "setsockopt",
	SYS_GETSOCKOPT:         "getsockopt",
	SYS_SHUTDOWN:           "shutdown",
	SYS_MREMAP:             "mremap",
	SYS_BRK:                "brk",
	SYS_MUNMAP:             "munmap",
	SYS_CLONE:              "clone",
	SYS_EXECVE:             "execve",
	SYS_MMAP:               "mmap",
	SYS_MPROTECT:           "mprotect",
	SYS_MSYNC:              "msync",
	SYS_MADVISE:            "madvise",
	SYS_WAIT4:              "wait4",
	SYS_PRLIMIT64:          "prlimit64",
	SYS_RENAMEAT2:          "renameat2",
	SYS_MEMBARRIER:         "membarrier",
	SYS_COPY_FILE_RANGE:    "copy_file_range",
	SYS_FACCESSAT2:         "faccessat2",
}

// SyscallName returns the mnemonic of the syscall numbered sysno, e.g. "write"
// for SYS_WRITE. Numbers that are not in the table yield UnknownSyscall.
func SyscallName(sysno uintptr) string {
	if name, ok := syscallNames[sysno]; ok {
		return name
	}
	return UnknownSyscall
}

// SyscallNames returns a copy of the syscall table, suitable for display.
func SyscallNames() abi.ValueSet {
	vs := make(abi.ValueSet, len(syscallNames))
	for sysno, name := range syscallNames {
		vs[uint64(sysno)] = name
	}
	return vs
}
