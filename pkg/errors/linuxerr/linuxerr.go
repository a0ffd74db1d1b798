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

// Package linuxerr contains syscall error codes exported as error interface
// pointers. This allows for fast comparison and return operations comparable
// to unix.Errno constants.
package linuxerr

import (
	stderrors "errors"

	"github.com/abitable/abitable/pkg/abi/linux/errno"
	"github.com/abitable/abitable/pkg/errors"
	"golang.org/x/sys/unix"
)

// The following errors are semantically identical to Errno of type unix.Errno
// or syscall.Errno. However, since the types are distinct (these are
// *errors.Error), they are not directly comparable. The Errno method returns
// the negated errno; Equals and ToUnix bridge to unix.Errno. Converting
// unix/syscall.Errno to these errors should be done via ErrorFromUnix.
var (
	noError *errors.Error = nil

	EPERM   = newError(errno.EPERM)
	ENOENT  = newError(errno.ENOENT)
	ESRCH   = newError(errno.ESRCH)
	EINTR   = newError(errno.EINTR)
	EIO     = newError(errno.EIO)
	ENXIO   = newError(errno.ENXIO)
	E2BIG   = newError(errno.E2BIG)
	ENOEXEC = newError(errno.ENOEXEC)
	EBADF   = newError(errno.EBADF)
	ECHILD  = newError(errno.ECHILD)
	EAGAIN  = newError(errno.EAGAIN)
	ENOMEM  = newError(errno.ENOMEM)
	EACCES  = newError(errno.EACCES)
	EFAULT  = newError(errno.EFAULT)
	ENOTBLK = newError(errno.ENOTBLK)
	EBUSY   = newError(errno.EBUSY)
	EEXIST  = newError(errno.EEXIST)
	EXDEV   = newError(errno.EXDEV)
	ENODEV  = newError(errno.ENODEV)
	ENOTDIR = newError(errno.ENOTDIR)
	EISDIR  = newError(errno.EISDIR)
	EINVAL  = newError(errno.EINVAL)
	ENFILE  = newError(errno.ENFILE)
	EMFILE  = newError(errno.EMFILE)
	ENOTTY  = newError(errno.ENOTTY)
	ETXTBSY = newError(errno.ETXTBSY)
	EFBIG   = newError(errno.EFBIG)
	ENOSPC  = newError(errno.ENOSPC)
	ESPIPE  = newError(errno.ESPIPE)
	EROFS   = newError(errno.EROFS)
	EMLINK  = newError(errno.EMLINK)
	EPIPE   = newError(errno.EPIPE)
	EDOM    = newError(errno.EDOM)
	ERANGE  = newError(errno.ERANGE)

	// Errno values from include/uapi/asm-generic/errno.h.
	EDEADLK         = newError(errno.EDEADLK)
	ENAMETOOLONG    = newError(errno.ENAMETOOLONG)
	ENOLCK          = newError(errno.ENOLCK)
	ENOSYS          = newError(errno.ENOSYS)
	ENOTEMPTY       = newError(errno.ENOTEMPTY)
	ELOOP           = newError(errno.ELOOP)
	ENOMSG          = newError(errno.ENOMSG)
	EIDRM           = newError(errno.EIDRM)
	ECHRNG          = newError(errno.ECHRNG)
	EL2NSYNC        = newError(errno.EL2NSYNC)
	EL3HLT          = newError(errno.EL3HLT)
	EL3RST          = newError(errno.EL3RST)
	ELNRNG          = newError(errno.ELNRNG)
	EUNATCH         = newError(errno.EUNATCH)
	ENOCSI          = newError(errno.ENOCSI)
	EL2HLT          = newError(errno.EL2HLT)
	EBADE           = newError(errno.EBADE)
	EBADR           = newError(errno.EBADR)
	EXFULL          = newError(errno.EXFULL)
	ENOANO          = newError(errno.ENOANO)
	EBADRQC         = newError(errno.EBADRQC)
	EBADSLT         = newError(errno.EBADSLT)
	EBFONT          = newError(errno.EBFONT)
	ENOSTR          = newError(errno.ENOSTR)
	ENODATA         = newError(errno.ENODATA)
	ETIME           = newError(errno.ETIME)
	ENOSR           = newError(errno.ENOSR)
	ENONET          = newError(errno.ENONET)
	ENOPKG          = newError(errno.ENOPKG)
	EREMOTE         = newError(errno.EREMOTE)
	ENOLINK         = newError(errno.ENOLINK)
	EADV            = newError(errno.EADV)
	ESRMNT          = newError(errno.ESRMNT)
	ECOMM           = newError(errno.ECOMM)
	EPROTO          = newError(errno.EPROTO)
	EMULTIHOP       = newError(errno.EMULTIHOP)
	EDOTDOT         = newError(errno.EDOTDOT)
	EBADMSG         = newError(errno.EBADMSG)
	EOVERFLOW       = newError(errno.EOVERFLOW)
	ENOTUNIQ        = newError(errno.ENOTUNIQ)
	EBADFD          = newError(errno.EBADFD)
	EREMCHG         = newError(errno.EREMCHG)
	ELIBACC         = newError(errno.ELIBACC)
	ELIBBAD         = newError(errno.ELIBBAD)
	ELIBSCN         = newError(errno.ELIBSCN)
	ELIBMAX         = newError(errno.ELIBMAX)
	ELIBEXEC        = newError(errno.ELIBEXEC)
	EILSEQ          = newError(errno.EILSEQ)
	ERESTART        = newError(errno.ERESTART)
	ESTRPIPE        = newError(errno.ESTRPIPE)
	EUSERS          = newError(errno.EUSERS)
	ENOTSOCK        = newError(errno.ENOTSOCK)
	EDESTADDRREQ    = newError(errno.EDESTADDRREQ)
	EMSGSIZE        = newError(errno.EMSGSIZE)
	EPROTOTYPE      = newError(errno.EPROTOTYPE)
	ENOPROTOOPT     = newError(errno.ENOPROTOOPT)
	EPROTONOSUPPORT = newError(errno.EPROTONOSUPPORT)
	ESOCKTNOSUPPORT = newError(errno.ESOCKTNOSUPPORT)
	EOPNOTSUPP      = newError(errno.EOPNOTSUPP)
	EPFNOSUPPORT    = newError(errno.EPFNOSUPPORT)
	EAFNOSUPPORT    = newError(errno.EAFNOSUPPORT)
	EADDRINUSE      = newError(errno.EADDRINUSE)
	EADDRNOTAVAIL   = newError(errno.EADDRNOTAVAIL)
	ENETDOWN        = newError(errno.ENETDOWN)
	ENETUNREACH     = newError(errno.ENETUNREACH)
	ENETRESET       = newError(errno.ENETRESET)
	ECONNABORTED    = newError(errno.ECONNABORTED)
	ECONNRESET      = newError(errno.ECONNRESET)
	ENOBUFS         = newError(errno.ENOBUFS)
	EISCONN         = newError(errno.EISCONN)
	ENOTCONN        = newError(errno.ENOTCONN)
	ESHUTDOWN       = newError(errno.ESHUTDOWN)
	ETOOMANYREFS    = newError(errno.ETOOMANYREFS)
	ETIMEDOUT       = newError(errno.ETIMEDOUT)
	ECONNREFUSED    = newError(errno.ECONNREFUSED)
	EHOSTDOWN       = newError(errno.EHOSTDOWN)
	EHOSTUNREACH    = newError(errno.EHOSTUNREACH)
	EALREADY        = newError(errno.EALREADY)
	EINPROGRESS     = newError(errno.EINPROGRESS)
	ESTALE          = newError(errno.ESTALE)
	EUCLEAN         = newError(errno.EUCLEAN)
	ENOTNAM         = newError(errno.ENOTNAM)
	ENAVAIL         = newError(errno.ENAVAIL)
	EISNAM          = newError(errno.EISNAM)
	EREMOTEIO       = newError(errno.EREMOTEIO)
	EDQUOT          = newError(errno.EDQUOT)
	ENOMEDIUM       = newError(errno.ENOMEDIUM)
	EMEDIUMTYPE     = newError(errno.EMEDIUMTYPE)
	ECANCELED       = newError(errno.ECANCELED)
	ENOKEY          = newError(errno.ENOKEY)
	EKEYEXPIRED     = newError(errno.EKEYEXPIRED)
	EKEYREVOKED     = newError(errno.EKEYREVOKED)
	EKEYREJECTED    = newError(errno.EKEYREJECTED)
	EOWNERDEAD      = newError(errno.EOWNERDEAD)
	ENOTRECOVERABLE = newError(errno.ENOTRECOVERABLE)
	ERFKILL         = newError(errno.ERFKILL)
	EHWPOISON       = newError(errno.EHWPOISON)

	// Errors equivalent to other errors.
	EWOULDBLOCK = EAGAIN
	EDEADLOCK   = EDEADLK
	ENOATTR     = ENODATA
	ENOTSUP     = EOPNOTSUPP
)

// newError returns an *errors.Error whose message is the errno description.
func newError(e errno.Errno) *errors.Error {
	return errors.New(e, e.String())
}

// A nil *errors.Error denotes no error and is placed at the 0 index of
// errorSlice. Thus, any other empty index should not be nil or a valid error.
// This marks that index as an invalid error so any comparison to nil or a
// valid linuxerr fails.
var errNotValidError = errors.New(-errno.MaxErrno-1, "not a valid error")

// The following errorSlice holds errors by positive errno for fast
// translation between errnos (especially uint32(syscall.Errno)) and
// *errors.Error.
var errorSlice = []*errors.Error{
	// Errno values from include/uapi/asm-generic/errno-base.h.
	0: noError,
	-errno.EPERM:           EPERM,
	-errno.ENOENT:          ENOENT,
	-errno.ESRCH:           ESRCH,
	-errno.EINTR:           EINTR,
	-errno.EIO:             EIO,
	-errno.ENXIO:           ENXIO,
	-errno.E2BIG:           E2BIG,
	-errno.ENOEXEC:         ENOEXEC,
	-errno.EBADF:           EBADF,
	-errno.ECHILD:          ECHILD,
	-errno.EAGAIN:          EAGAIN,
	-errno.ENOMEM:          ENOMEM,
	-errno.EACCES:          EACCES,
	-errno.EFAULT:          EFAULT,
	-errno.ENOTBLK:         ENOTBLK,
	-errno.EBUSY:           EBUSY,
	-errno.EEXIST:          EEXIST,
	-errno.EXDEV:           EXDEV,
	-errno.ENODEV:          ENODEV,
	-errno.ENOTDIR:         ENOTDIR,
	-errno.EISDIR:          EISDIR,
	-errno.EINVAL:          EINVAL,
	-errno.ENFILE:          ENFILE,
	-errno.EMFILE:          EMFILE,
	-errno.ENOTTY:          ENOTTY,
	-errno.ETXTBSY:         ETXTBSY,
	-errno.EFBIG:           EFBIG,
	-errno.ENOSPC:          ENOSPC,
	-errno.ESPIPE:          ESPIPE,
	-errno.EROFS:           EROFS,
	-errno.EMLINK:          EMLINK,
	-errno.EPIPE:           EPIPE,
	-errno.EDOM:            EDOM,
	-errno.ERANGE:          ERANGE,

	// Errno values from include/uapi/asm-generic/errno.h.
	-errno.EDEADLK:         EDEADLK,
	-errno.ENAMETOOLONG:    ENAMETOOLONG,
	-errno.ENOLCK:          ENOLCK,
	-errno.ENOSYS:          ENOSYS,
	-errno.ENOTEMPTY:       ENOTEMPTY,
	-errno.ELOOP:           ELOOP,
	-errno.ENOMSG:          ENOMSG,
	-errno.EIDRM:           EIDRM,
	-errno.ECHRNG:          ECHRNG,
	-errno.EL2NSYNC:        EL2NSYNC,
	-errno.EL3HLT:          EL3HLT,
	-errno.EL3RST:          EL3RST,
	-errno.ELNRNG:          ELNRNG,
	-errno.EUNATCH:         EUNATCH,
	-errno.ENOCSI:          ENOCSI,
	-errno.EL2HLT:          EL2HLT,
	-errno.EBADE:           EBADE,
	-errno.EBADR:           EBADR,
	-errno.EXFULL:          EXFULL,
	-errno.ENOANO:          ENOANO,
	-errno.EBADRQC:         EBADRQC,
	-errno.EBADSLT:         EBADSLT,
	-errno.EBFONT:          EBFONT,
	-errno.ENOSTR:          ENOSTR,
	-errno.ENODATA:         ENODATA,
	-errno.ETIME:           ETIME,
	-errno.ENOSR:           ENOSR,
	-errno.ENONET:          ENONET,
	-errno.ENOPKG:          ENOPKG,
	-errno.EREMOTE:         EREMOTE,
	-errno.ENOLINK:         ENOLINK,
	-errno.EADV:            EADV,
	-errno.ESRMNT:          ESRMNT,
	-errno.ECOMM:           ECOMM,
	-errno.EPROTO:          EPROTO,
	-errno.EMULTIHOP:       EMULTIHOP,
	-errno.EDOTDOT:         EDOTDOT,
	-errno.EBADMSG:         EBADMSG,
	-errno.EOVERFLOW:       EOVERFLOW,
	-errno.ENOTUNIQ:        ENOTUNIQ,
	-errno.EBADFD:          EBADFD,
	-errno.EREMCHG:         EREMCHG,
	-errno.ELIBACC:         ELIBACC,
	-errno.ELIBBAD:         ELIBBAD,
	-errno.ELIBSCN:         ELIBSCN,
	-errno.ELIBMAX:         ELIBMAX,
	-errno.ELIBEXEC:        ELIBEXEC,
	-errno.EILSEQ:          EILSEQ,
	-errno.ERESTART:        ERESTART,
	-errno.ESTRPIPE:        ESTRPIPE,
	-errno.EUSERS:          EUSERS,
	-errno.ENOTSOCK:        ENOTSOCK,
	-errno.EDESTADDRREQ:    EDESTADDRREQ,
	-errno.EMSGSIZE:        EMSGSIZE,
	-errno.EPROTOTYPE:      EPROTOTYPE,
	-errno.ENOPROTOOPT:     ENOPROTOOPT,
	-errno.EPROTONOSUPPORT: EPROTONOSUPPORT,
	-errno.ESOCKTNOSUPPORT: ESOCKTNOSUPPORT,
	-errno.EOPNOTSUPP:      EOPNOTSUPP,
	-errno.EPFNOSUPPORT:    EPFNOSUPPORT,
	-errno.EAFNOSUPPORT:    EAFNOSUPPORT,
	-errno.EADDRINUSE:      EADDRINUSE,
	-errno.EADDRNOTAVAIL:   EADDRNOTAVAIL,
	-errno.ENETDOWN:        ENETDOWN,
	-errno.ENETUNREACH:     ENETUNREACH,
	-errno.ENETRESET:       ENETRESET,
	-errno.ECONNABORTED:    ECONNABORTED,
	-errno.ECONNRESET:      ECONNRESET,
	-errno.ENOBUFS:         ENOBUFS,
	-errno.EISCONN:         EISCONN,
	-errno.ENOTCONN:        ENOTCONN,
	-errno.ESHUTDOWN:       ESHUTDOWN,
	-errno.ETOOMANYREFS:    ETOOMANYREFS,
	-errno.ETIMEDOUT:       ETIMEDOUT,
	-errno.ECONNREFUSED:    ECONNREFUSED,
	-errno.EHOSTDOWN:       EHOSTDOWN,
	-errno.EHOSTUNREACH:    EHOSTUNREACH,
	-errno.EALREADY:        EALREADY,
	-errno.EINPROGRESS:     EINPROGRESS,
	-errno.ESTALE:          ESTALE,
	-errno.EUCLEAN:         EUCLEAN,
	-errno.ENOTNAM:         ENOTNAM,
	-errno.ENAVAIL:         ENAVAIL,
	-errno.EISNAM:          EISNAM,
	-errno.EREMOTEIO:       EREMOTEIO,
	-errno.EDQUOT:          EDQUOT,
	-errno.ENOMEDIUM:       ENOMEDIUM,
	-errno.EMEDIUMTYPE:     EMEDIUMTYPE,
	-errno.ECANCELED:       ECANCELED,
	-errno.ENOKEY:          ENOKEY,
	-errno.EKEYEXPIRED:     EKEYEXPIRED,
	-errno.EKEYREVOKED:     EKEYREVOKED,
	-errno.EKEYREJECTED:    EKEYREJECTED,
	-errno.EOWNERDEAD:      EOWNERDEAD,
	-errno.ENOTRECOVERABLE: ENOTRECOVERABLE,
	-errno.ERFKILL:         ERFKILL,
	-errno.EHWPOISON:       EHWPOISON,
}

func init() {
	for i := range errorSlice {
		if i != 0 && errorSlice[i] == noError {
			errorSlice[i] = errNotValidError
		}
	}
}

// ErrorFromUnix returns a linuxerr from a unix.Errno. A zero err yields nil.
// Numbers outside the errno table yield a sentinel that matches no valid
// linuxerr.
func ErrorFromUnix(err unix.Errno) error {
	if err == unix.Errno(0) {
		return nil
	}
	if uint64(err) >= uint64(len(errorSlice)) {
		return errNotValidError
	}
	return errorSlice[err]
}

// FromErrno returns the linuxerr for e, or nil for NOERRNO.
func FromErrno(e errno.Errno) *errors.Error {
	if e == errno.NOERRNO {
		return noError
	}
	if e > 0 || e < -errno.MaxErrno {
		return errNotValidError
	}
	return errorSlice[-e]
}

// ToError converts a linuxerr to an error type.
func ToError(err *errors.Error) error {
	if err == noError {
		return nil
	}
	return err
}

// ToUnix converts a linuxerr to a unix.Errno.
func ToUnix(e *errors.Error) unix.Errno {
	var unixErr unix.Errno
	if e != noError {
		unixErr = unix.Errno(e.Errno().Positive())
	}
	return unixErr
}

// Equals compares a linuxerr to a given error.
func Equals(e *errors.Error, err error) bool {
	var unixErr unix.Errno
	if e != noError {
		unixErr = unix.Errno(e.Errno().Positive())
	}
	if err == nil {
		err = noError
	}
	return e == err || unixErr == err
}

// ToErrno extracts the errno carried by err. It understands *errors.Error,
// errno.Errno, unix.Errno, the internal errors registered in this package and
// any of those wrapped with fmt.Errorf("%w").
func ToErrno(err error) (errno.Errno, bool) {
	if err == nil {
		return errno.NOERRNO, true
	}
	if e, ok := TranslateError(err); ok {
		return e.Errno(), true
	}
	var linuxErr *errors.Error
	if stderrors.As(err, &linuxErr) {
		return linuxErr.Errno(), true
	}
	var en errno.Errno
	if stderrors.As(err, &en) {
		return en, true
	}
	var unixErr unix.Errno
	if stderrors.As(err, &unixErr) {
		return errno.FromPositive(uint32(unixErr)), true
	}
	return errno.NOERRNO, false
}

// SyscallReturn converts err into the value a syscall writes into its return
// register: 0 for nil, the negated errno otherwise. Errors that carry no
// errno are reported as EIO.
func SyscallReturn(err error) uintptr {
	if e, ok := ToErrno(err); ok {
		return e.Return()
	}
	return errno.EIO.Return()
}
