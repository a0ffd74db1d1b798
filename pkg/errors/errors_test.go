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

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/abitable/abitable/pkg/abi/linux/errno"
	"github.com/abitable/abitable/pkg/errors"
)

func TestError(t *testing.T) {
	err := errors.New(errno.ENOENT, "no such thing")
	if got := err.Error(); got != "no such thing" {
		t.Errorf("Error() = %q, want %q", got, "no such thing")
	}
	if got := err.Errno(); got != errno.ENOENT {
		t.Errorf("Errno() = %d, want %d", got, errno.ENOENT)
	}
}

func TestIs(t *testing.T) {
	err := errors.New(errno.EBADF, "bad fd")
	wrapped := fmt.Errorf("close: %w", err)
	if !stderrors.Is(wrapped, err) {
		t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, err)
	}
	if !stderrors.Is(wrapped, errno.EBADF) {
		t.Errorf("errors.Is(%v, EBADF) = false, want true", wrapped)
	}
	if stderrors.Is(wrapped, errno.EINVAL) {
		t.Errorf("errors.Is(%v, EINVAL) = true, want false", wrapped)
	}
	if stderrors.Is(wrapped, errors.New(errno.EBADF, "bad fd")) {
		t.Errorf("distinct *Error values compare equal")
	}
}
