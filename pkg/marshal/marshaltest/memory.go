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

// Package marshaltest provides an in-memory marshal.CopyContext for tests.
package marshaltest

import (
	"fmt"

	"github.com/abitable/abitable/pkg/errors/linuxerr"
	"github.com/abitable/abitable/pkg/hostarch"
)

// Memory is a flat address space starting at address 0. It implements
// marshal.CopyContext.
type Memory struct {
	Bytes []byte
}

// NewMemory returns a zeroed Memory of the given size.
func NewMemory(size int) *Memory {
	return &Memory{Bytes: make([]byte, size)}
}

// CopyScratchBuffer implements marshal.CopyContext.CopyScratchBuffer.
func (m *Memory) CopyScratchBuffer(size int) []byte {
	return make([]byte, size)
}

// CopyOutBytes implements marshal.CopyContext.CopyOutBytes.
func (m *Memory) CopyOutBytes(addr hostarch.Addr, b []byte) (int, error) {
	rng, err := m.checkRange(addr, len(b))
	if err != nil {
		return 0, err
	}
	return copy(rng, b), nil
}

// CopyInBytes implements marshal.CopyContext.CopyInBytes.
func (m *Memory) CopyInBytes(addr hostarch.Addr, b []byte) (int, error) {
	rng, err := m.checkRange(addr, len(b))
	if err != nil {
		return 0, err
	}
	return copy(b, rng), nil
}

func (m *Memory) checkRange(addr hostarch.Addr, length int) ([]byte, error) {
	end, ok := addr.AddLength(uint64(length))
	if !ok || end > hostarch.Addr(len(m.Bytes)) {
		return nil, fmt.Errorf("range [%v, %v) outside of memory: %w", addr, end, linuxerr.EFAULT)
	}
	return m.Bytes[addr:end], nil
}
