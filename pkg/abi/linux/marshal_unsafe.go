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
	"io"
	"runtime"
	"unsafe"

	"github.com/abitable/abitable/pkg/hostarch"
	"github.com/abitable/abitable/pkg/marshal"
)

// Marshallable types used by this package.
var (
	_ marshal.Marshallable = (*RLimit64)(nil)
	_ marshal.Marshallable = (*Timespec)(nil)
	_ marshal.Marshallable = (*Timeval)(nil)
	_ marshal.Marshallable = (*Rusage)(nil)
	_ marshal.Marshallable = (*Sysinfo)(nil)
	_ marshal.Marshallable = (*SignalInfo)(nil)
	_ marshal.Marshallable = (*EpollEvent)(nil)
)

// epollEventPad is the padding between epoll_event::events and
// epoll_event::data.
const epollEventPad = SizeOfEpollEvent - 12

// bytesOf returns a slice aliasing the memory of *p.
//
// The caller must keep p alive while the slice is in use.
func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// SizeBytes implements marshal.Marshallable.SizeBytes.
func (r *RLimit64) SizeBytes() int {
	return SizeOfRLimit64
}

// MarshalBytes implements marshal.Marshallable.MarshalBytes.
func (r *RLimit64) MarshalBytes(dst []byte) []byte {
	hostarch.ByteOrder.PutUint64(dst[0:8], r.Cur)
	hostarch.ByteOrder.PutUint64(dst[8:16], r.Max)
	return dst[16:]
}

// UnmarshalBytes implements marshal.Marshallable.UnmarshalBytes.
func (r *RLimit64) UnmarshalBytes(src []byte) []byte {
	r.Cur = hostarch.ByteOrder.Uint64(src[0:8])
	r.Max = hostarch.ByteOrder.Uint64(src[8:16])
	return src[16:]
}

// Packed implements marshal.Marshallable.Packed.
//
//go:nosplit
func (r *RLimit64) Packed() bool {
	return true
}

// MarshalUnsafe implements marshal.Marshallable.MarshalUnsafe.
func (r *RLimit64) MarshalUnsafe(dst []byte) []byte {
	size := r.SizeBytes()
	copy(dst[:size], bytesOf(r))
	return dst[size:]
}

// UnmarshalUnsafe implements marshal.Marshallable.UnmarshalUnsafe.
func (r *RLimit64) UnmarshalUnsafe(src []byte) []byte {
	size := r.SizeBytes()
	copy(bytesOf(r), src[:size])
	return src[size:]
}

// CopyOutN implements marshal.Marshallable.CopyOutN.
func (r *RLimit64) CopyOutN(cc marshal.CopyContext, addr hostarch.Addr, limit int) (int, error) {
	length, err := cc.CopyOutBytes(addr, bytesOf(r)[:limit])
	// Since we bypassed the compiler's escape analysis, indicate that r
	// must live until the use above.
	runtime.KeepAlive(r)
	return length, err
}

// CopyOut implements marshal.Marshallable.CopyOut.
func (r *RLimit64) CopyOut(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	return r.CopyOutN(cc, addr, r.SizeBytes())
}

// CopyIn implements marshal.Marshallable.CopyIn.
func (r *RLimit64) CopyIn(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	length, err := cc.CopyInBytes(addr, bytesOf(r))
	runtime.KeepAlive(r)
	return length, err
}

// WriteTo implements io.WriterTo.WriteTo.
func (r *RLimit64) WriteTo(writer io.Writer) (int64, error) {
	length, err := writer.Write(bytesOf(r))
	runtime.KeepAlive(r)
	return int64(length), err
}

// SizeBytes implements marshal.Marshallable.SizeBytes.
func (ts *Timespec) SizeBytes() int {
	return SizeOfTimespec
}

// MarshalBytes implements marshal.Marshallable.MarshalBytes.
func (ts *Timespec) MarshalBytes(dst []byte) []byte {
	hostarch.ByteOrder.PutUint64(dst[0:8], uint64(ts.Sec))
	hostarch.ByteOrder.PutUint64(dst[8:16], uint64(ts.Nsec))
	return dst[16:]
}

// UnmarshalBytes implements marshal.Marshallable.UnmarshalBytes.
func (ts *Timespec) UnmarshalBytes(src []byte) []byte {
	ts.Sec = int64(hostarch.ByteOrder.Uint64(src[0:8]))
	ts.Nsec = int64(hostarch.ByteOrder.Uint64(src[8:16]))
	return src[16:]
}

// Packed implements marshal.Marshallable.Packed.
//
//go:nosplit
func (ts *Timespec) Packed() bool {
	return true
}

// MarshalUnsafe implements marshal.Marshallable.MarshalUnsafe.
func (ts *Timespec) MarshalUnsafe(dst []byte) []byte {
	size := ts.SizeBytes()
	copy(dst[:size], bytesOf(ts))
	return dst[size:]
}

// UnmarshalUnsafe implements marshal.Marshallable.UnmarshalUnsafe.
func (ts *Timespec) UnmarshalUnsafe(src []byte) []byte {
	size := ts.SizeBytes()
	copy(bytesOf(ts), src[:size])
	return src[size:]
}

// CopyOutN implements marshal.Marshallable.CopyOutN.
func (ts *Timespec) CopyOutN(cc marshal.CopyContext, addr hostarch.Addr, limit int) (int, error) {
	length, err := cc.CopyOutBytes(addr, bytesOf(ts)[:limit])
	// Since we bypassed the compiler's escape analysis, indicate that ts
	// must live until the use above.
	runtime.KeepAlive(ts)
	return length, err
}

// CopyOut implements marshal.Marshallable.CopyOut.
func (ts *Timespec) CopyOut(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	return ts.CopyOutN(cc, addr, ts.SizeBytes())
}

// CopyIn implements marshal.Marshallable.CopyIn.
func (ts *Timespec) CopyIn(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	length, err := cc.CopyInBytes(addr, bytesOf(ts))
	runtime.KeepAlive(ts)
	return length, err
}

// WriteTo implements io.WriterTo.WriteTo.
func (ts *Timespec) WriteTo(writer io.Writer) (int64, error) {
	length, err := writer.Write(bytesOf(ts))
	runtime.KeepAlive(ts)
	return int64(length), err
}

// SizeBytes implements marshal.Marshallable.SizeBytes.
func (tv *Timeval) SizeBytes() int {
	return SizeOfTimeval
}

// MarshalBytes implements marshal.Marshallable.MarshalBytes.
func (tv *Timeval) MarshalBytes(dst []byte) []byte {
	hostarch.ByteOrder.PutUint64(dst[0:8], uint64(tv.Sec))
	hostarch.ByteOrder.PutUint64(dst[8:16], uint64(tv.Usec))
	return dst[16:]
}

// UnmarshalBytes implements marshal.Marshallable.UnmarshalBytes.
func (tv *Timeval) UnmarshalBytes(src []byte) []byte {
	tv.Sec = int64(hostarch.ByteOrder.Uint64(src[0:8]))
	tv.Usec = int64(hostarch.ByteOrder.Uint64(src[8:16]))
	return src[16:]
}

// Packed implements marshal.Marshallable.Packed.
//
//go:nosplit
func (tv *Timeval) Packed() bool {
	return true
}

// MarshalUnsafe implements marshal.Marshallable.MarshalUnsafe.
func (tv *Timeval) MarshalUnsafe(dst []byte) []byte {
	size := tv.SizeBytes()
	copy(dst[:size], bytesOf(tv))
	return dst[size:]
}

// UnmarshalUnsafe implements marshal.Marshallable.UnmarshalUnsafe.
func (tv *Timeval) UnmarshalUnsafe(src []byte) []byte {
	size := tv.SizeBytes()
	copy(bytesOf(tv), src[:size])
	return src[size:]
}

// CopyOutN implements marshal.Marshallable.CopyOutN.
func (tv *Timeval) CopyOutN(cc marshal.CopyContext, addr hostarch.Addr, limit int) (int, error) {
	length, err := cc.CopyOutBytes(addr, bytesOf(tv)[:limit])
	// Since we bypassed the compiler's escape analysis, indicate that tv
	// must live until the use above.
	runtime.KeepAlive(tv)
	return length, err
}

// CopyOut implements marshal.Marshallable.CopyOut.
func (tv *Timeval) CopyOut(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	return tv.CopyOutN(cc, addr, tv.SizeBytes())
}

// CopyIn implements marshal.Marshallable.CopyIn.
func (tv *Timeval) CopyIn(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	length, err := cc.CopyInBytes(addr, bytesOf(tv))
	runtime.KeepAlive(tv)
	return length, err
}

// WriteTo implements io.WriterTo.WriteTo.
func (tv *Timeval) WriteTo(writer io.Writer) (int64, error) {
	length, err := writer.Write(bytesOf(tv))
	runtime.KeepAlive(tv)
	return int64(length), err
}

// SizeBytes implements marshal.Marshallable.SizeBytes.
func (ru *Rusage) SizeBytes() int {
	return SizeOfRusage
}

// MarshalBytes implements marshal.Marshallable.MarshalBytes.
func (ru *Rusage) MarshalBytes(dst []byte) []byte {
	dst = ru.UTime.MarshalBytes(dst)
	dst = ru.STime.MarshalBytes(dst)
	hostarch.ByteOrder.PutUint64(dst[0:8], uint64(ru.MaxRSS))
	hostarch.ByteOrder.PutUint64(dst[8:16], uint64(ru.IXRSS))
	hostarch.ByteOrder.PutUint64(dst[16:24], uint64(ru.IDRSS))
	hostarch.ByteOrder.PutUint64(dst[24:32], uint64(ru.ISRSS))
	hostarch.ByteOrder.PutUint64(dst[32:40], uint64(ru.MinFlt))
	hostarch.ByteOrder.PutUint64(dst[40:48], uint64(ru.MajFlt))
	hostarch.ByteOrder.PutUint64(dst[48:56], uint64(ru.NSwap))
	hostarch.ByteOrder.PutUint64(dst[56:64], uint64(ru.InBlock))
	hostarch.ByteOrder.PutUint64(dst[64:72], uint64(ru.OuBlock))
	hostarch.ByteOrder.PutUint64(dst[72:80], uint64(ru.MsgSnd))
	hostarch.ByteOrder.PutUint64(dst[80:88], uint64(ru.MsgRcv))
	hostarch.ByteOrder.PutUint64(dst[88:96], uint64(ru.NSignals))
	hostarch.ByteOrder.PutUint64(dst[96:104], uint64(ru.NVCSw))
	hostarch.ByteOrder.PutUint64(dst[104:112], uint64(ru.NIvCSw))
	return dst[112:]
}

// UnmarshalBytes implements marshal.Marshallable.UnmarshalBytes.
func (ru *Rusage) UnmarshalBytes(src []byte) []byte {
	src = ru.UTime.UnmarshalBytes(src)
	src = ru.STime.UnmarshalBytes(src)
	ru.MaxRSS = int64(hostarch.ByteOrder.Uint64(src[0:8]))
	ru.IXRSS = int64(hostarch.ByteOrder.Uint64(src[8:16]))
	ru.IDRSS = int64(hostarch.ByteOrder.Uint64(src[16:24]))
	ru.ISRSS = int64(hostarch.ByteOrder.Uint64(src[24:32]))
	ru.MinFlt = int64(hostarch.ByteOrder.Uint64(src[32:40]))
	ru.MajFlt = int64(hostarch.ByteOrder.Uint64(src[40:48]))
	ru.NSwap = int64(hostarch.ByteOrder.Uint64(src[48:56]))
	ru.InBlock = int64(hostarch.ByteOrder.Uint64(src[56:64]))
	ru.OuBlock = int64(hostarch.ByteOrder.Uint64(src[64:72]))
	ru.MsgSnd = int64(hostarch.ByteOrder.Uint64(src[72:80]))
	ru.MsgRcv = int64(hostarch.ByteOrder.Uint64(src[80:88]))
	ru.NSignals = int64(hostarch.ByteOrder.Uint64(src[88:96]))
	ru.NVCSw = int64(hostarch.ByteOrder.Uint64(src[96:104]))
	ru.NIvCSw = int64(hostarch.ByteOrder.Uint64(src[104:112]))
	return src[112:]
}

// Packed implements marshal.Marshallable.Packed.
//
//go:nosplit
func (ru *Rusage) Packed() bool {
	return true
}

// MarshalUnsafe implements marshal.Marshallable.MarshalUnsafe.
func (ru *Rusage) MarshalUnsafe(dst []byte) []byte {
	size := ru.SizeBytes()
	copy(dst[:size], bytesOf(ru))
	return dst[size:]
}

// UnmarshalUnsafe implements marshal.Marshallable.UnmarshalUnsafe.
func (ru *Rusage) UnmarshalUnsafe(src []byte) []byte {
	size := ru.SizeBytes()
	copy(bytesOf(ru), src[:size])
	return src[size:]
}

// CopyOutN implements marshal.Marshallable.CopyOutN.
func (ru *Rusage) CopyOutN(cc marshal.CopyContext, addr hostarch.Addr, limit int) (int, error) {
	length, err := cc.CopyOutBytes(addr, bytesOf(ru)[:limit])
	// Since we bypassed the compiler's escape analysis, indicate that ru
	// must live until the use above.
	runtime.KeepAlive(ru)
	return length, err
}

// CopyOut implements marshal.Marshallable.CopyOut.
func (ru *Rusage) CopyOut(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	return ru.CopyOutN(cc, addr, ru.SizeBytes())
}

// CopyIn implements marshal.Marshallable.CopyIn.
func (ru *Rusage) CopyIn(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	length, err := cc.CopyInBytes(addr, bytesOf(ru))
	runtime.KeepAlive(ru)
	return length, err
}

// WriteTo implements io.WriterTo.WriteTo.
func (ru *Rusage) WriteTo(writer io.Writer) (int64, error) {
	length, err := writer.Write(bytesOf(ru))
	runtime.KeepAlive(ru)
	return int64(length), err
}

// SizeBytes implements marshal.Marshallable.SizeBytes.
func (si *Sysinfo) SizeBytes() int {
	return SizeOfSysinfo
}

// MarshalBytes implements marshal.Marshallable.MarshalBytes.
func (si *Sysinfo) MarshalBytes(dst []byte) []byte {
	hostarch.ByteOrder.PutUint64(dst[0:8], uint64(si.Uptime))
	for i, l := range si.Loads {
		hostarch.ByteOrder.PutUint64(dst[8+8*i : 16+8*i], l)
	}
	hostarch.ByteOrder.PutUint64(dst[32:40], si.TotalRAM)
	hostarch.ByteOrder.PutUint64(dst[40:48], si.FreeRAM)
	hostarch.ByteOrder.PutUint64(dst[48:56], si.SharedRAM)
	hostarch.ByteOrder.PutUint64(dst[56:64], si.BufferRAM)
	hostarch.ByteOrder.PutUint64(dst[64:72], si.TotalSwap)
	hostarch.ByteOrder.PutUint64(dst[72:80], si.FreeSwap)
	hostarch.ByteOrder.PutUint16(dst[80:82], si.Procs)
	clear(dst[82:88])
	hostarch.ByteOrder.PutUint64(dst[88:96], si.TotalHigh)
	hostarch.ByteOrder.PutUint64(dst[96:104], si.FreeHigh)
	hostarch.ByteOrder.PutUint32(dst[104:108], si.Unit)
	clear(dst[108:112])
	return dst[112:]
}

// UnmarshalBytes implements marshal.Marshallable.UnmarshalBytes.
func (si *Sysinfo) UnmarshalBytes(src []byte) []byte {
	si.Uptime = int64(hostarch.ByteOrder.Uint64(src[0:8]))
	for i := range si.Loads {
		si.Loads[i] = hostarch.ByteOrder.Uint64(src[8+8*i : 16+8*i])
	}
	si.TotalRAM = hostarch.ByteOrder.Uint64(src[32:40])
	si.FreeRAM = hostarch.ByteOrder.Uint64(src[40:48])
	si.SharedRAM = hostarch.ByteOrder.Uint64(src[48:56])
	si.BufferRAM = hostarch.ByteOrder.Uint64(src[56:64])
	si.TotalSwap = hostarch.ByteOrder.Uint64(src[64:72])
	si.FreeSwap = hostarch.ByteOrder.Uint64(src[72:80])
	si.Procs = hostarch.ByteOrder.Uint16(src[80:82])
	si.TotalHigh = hostarch.ByteOrder.Uint64(src[88:96])
	si.FreeHigh = hostarch.ByteOrder.Uint64(src[96:104])
	si.Unit = hostarch.ByteOrder.Uint32(src[104:108])
	return src[112:]
}

// Packed implements marshal.Marshallable.Packed.
//
//go:nosplit
func (si *Sysinfo) Packed() bool {
	return true
}

// MarshalUnsafe implements marshal.Marshallable.MarshalUnsafe.
func (si *Sysinfo) MarshalUnsafe(dst []byte) []byte {
	size := si.SizeBytes()
	copy(dst[:size], bytesOf(si))
	return dst[size:]
}

// UnmarshalUnsafe implements marshal.Marshallable.UnmarshalUnsafe.
func (si *Sysinfo) UnmarshalUnsafe(src []byte) []byte {
	size := si.SizeBytes()
	copy(bytesOf(si), src[:size])
	return src[size:]
}

// CopyOutN implements marshal.Marshallable.CopyOutN.
func (si *Sysinfo) CopyOutN(cc marshal.CopyContext, addr hostarch.Addr, limit int) (int, error) {
	length, err := cc.CopyOutBytes(addr, bytesOf(si)[:limit])
	// Since we bypassed the compiler's escape analysis, indicate that si
	// must live until the use above.
	runtime.KeepAlive(si)
	return length, err
}

// CopyOut implements marshal.Marshallable.CopyOut.
func (si *Sysinfo) CopyOut(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	return si.CopyOutN(cc, addr, si.SizeBytes())
}

// CopyIn implements marshal.Marshallable.CopyIn.
func (si *Sysinfo) CopyIn(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	length, err := cc.CopyInBytes(addr, bytesOf(si))
	runtime.KeepAlive(si)
	return length, err
}

// WriteTo implements io.WriterTo.WriteTo.
func (si *Sysinfo) WriteTo(writer io.Writer) (int64, error) {
	length, err := writer.Write(bytesOf(si))
	runtime.KeepAlive(si)
	return int64(length), err
}

// SizeBytes implements marshal.Marshallable.SizeBytes.
func (s *SignalInfo) SizeBytes() int {
	return SI_MAX_SIZE
}

// MarshalBytes implements marshal.Marshallable.MarshalBytes.
func (s *SignalInfo) MarshalBytes(dst []byte) []byte {
	hostarch.ByteOrder.PutUint32(dst[0:4], uint32(s.Signo))
	hostarch.ByteOrder.PutUint32(dst[4:8], uint32(s.Errno))
	hostarch.ByteOrder.PutUint32(dst[8:12], uint32(s.Code))
	clear(dst[12:16])
	copy(dst[16:SI_MAX_SIZE], s.Fields[:])
	return dst[SI_MAX_SIZE:]
}

// UnmarshalBytes implements marshal.Marshallable.UnmarshalBytes.
func (s *SignalInfo) UnmarshalBytes(src []byte) []byte {
	s.Signo = int32(hostarch.ByteOrder.Uint32(src[0:4]))
	s.Errno = int32(hostarch.ByteOrder.Uint32(src[4:8]))
	s.Code = int32(hostarch.ByteOrder.Uint32(src[8:12]))
	copy(s.Fields[:], src[16:SI_MAX_SIZE])
	return src[SI_MAX_SIZE:]
}

// Packed implements marshal.Marshallable.Packed.
//
//go:nosplit
func (s *SignalInfo) Packed() bool {
	return true
}

// MarshalUnsafe implements marshal.Marshallable.MarshalUnsafe.
func (s *SignalInfo) MarshalUnsafe(dst []byte) []byte {
	size := s.SizeBytes()
	copy(dst[:size], bytesOf(s))
	return dst[size:]
}

// UnmarshalUnsafe implements marshal.Marshallable.UnmarshalUnsafe.
func (s *SignalInfo) UnmarshalUnsafe(src []byte) []byte {
	size := s.SizeBytes()
	copy(bytesOf(s), src[:size])
	return src[size:]
}

// CopyOutN implements marshal.Marshallable.CopyOutN.
func (s *SignalInfo) CopyOutN(cc marshal.CopyContext, addr hostarch.Addr, limit int) (int, error) {
	length, err := cc.CopyOutBytes(addr, bytesOf(s)[:limit])
	// Since we bypassed the compiler's escape analysis, indicate that s
	// must live until the use above.
	runtime.KeepAlive(s)
	return length, err
}

// CopyOut implements marshal.Marshallable.CopyOut.
func (s *SignalInfo) CopyOut(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	return s.CopyOutN(cc, addr, s.SizeBytes())
}

// CopyIn implements marshal.Marshallable.CopyIn.
func (s *SignalInfo) CopyIn(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	length, err := cc.CopyInBytes(addr, bytesOf(s))
	runtime.KeepAlive(s)
	return length, err
}

// WriteTo implements io.WriterTo.WriteTo.
func (s *SignalInfo) WriteTo(writer io.Writer) (int64, error) {
	length, err := writer.Write(bytesOf(s))
	runtime.KeepAlive(s)
	return int64(length), err
}

// SizeBytes implements marshal.Marshallable.SizeBytes.
func (e *EpollEvent) SizeBytes() int {
	return SizeOfEpollEvent
}

// MarshalBytes implements marshal.Marshallable.MarshalBytes.
func (e *EpollEvent) MarshalBytes(dst []byte) []byte {
	hostarch.ByteOrder.PutUint32(dst[0:4], uint32(e.Events))
	clear(dst[4 : 4+epollEventPad])
	dst = dst[4+epollEventPad:]
	hostarch.ByteOrder.PutUint32(dst[0:4], uint32(e.Data[0]))
	hostarch.ByteOrder.PutUint32(dst[4:8], uint32(e.Data[1]))
	return dst[8:]
}

// UnmarshalBytes implements marshal.Marshallable.UnmarshalBytes.
func (e *EpollEvent) UnmarshalBytes(src []byte) []byte {
	e.Events = EpollEventMask(hostarch.ByteOrder.Uint32(src[0:4]))
	src = src[4+epollEventPad:]
	e.Data[0] = int32(hostarch.ByteOrder.Uint32(src[0:4]))
	e.Data[1] = int32(hostarch.ByteOrder.Uint32(src[4:8]))
	return src[8:]
}

// Packed implements marshal.Marshallable.Packed.
//
//go:nosplit
func (e *EpollEvent) Packed() bool {
	return true
}

// MarshalUnsafe implements marshal.Marshallable.MarshalUnsafe.
func (e *EpollEvent) MarshalUnsafe(dst []byte) []byte {
	size := e.SizeBytes()
	copy(dst[:size], bytesOf(e))
	return dst[size:]
}

// UnmarshalUnsafe implements marshal.Marshallable.UnmarshalUnsafe.
func (e *EpollEvent) UnmarshalUnsafe(src []byte) []byte {
	size := e.SizeBytes()
	copy(bytesOf(e), src[:size])
	return src[size:]
}

// CopyOutN implements marshal.Marshallable.CopyOutN.
func (e *EpollEvent) CopyOutN(cc marshal.CopyContext, addr hostarch.Addr, limit int) (int, error) {
	length, err := cc.CopyOutBytes(addr, bytesOf(e)[:limit])
	// Since we bypassed the compiler's escape analysis, indicate that e
	// must live until the use above.
	runtime.KeepAlive(e)
	return length, err
}

// CopyOut implements marshal.Marshallable.CopyOut.
func (e *EpollEvent) CopyOut(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	return e.CopyOutN(cc, addr, e.SizeBytes())
}

// CopyIn implements marshal.Marshallable.CopyIn.
func (e *EpollEvent) CopyIn(cc marshal.CopyContext, addr hostarch.Addr) (int, error) {
	length, err := cc.CopyInBytes(addr, bytesOf(e))
	runtime.KeepAlive(e)
	return length, err
}

// WriteTo implements io.WriterTo.WriteTo.
func (e *EpollEvent) WriteTo(writer io.Writer) (int64, error) {
	length, err := writer.Write(bytesOf(e))
	runtime.KeepAlive(e)
	return int64(length), err
}
