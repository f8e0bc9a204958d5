// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build debug

package debug

import (
	"fmt"
	"os"
)

// Enabled is true if the allocator is being built with the debug tag.
const Enabled = true

// Tracef records one allocator operation. The line goes to the
// goroutine's capture sink if one is installed, to stderr otherwise.
func Tracef(format string, args ...any) {
	line := "deadpool: " + fmt.Sprintf(format, args...)

	if f := sink.Get(); f != nil {
		f(line)
		return
	}

	_, _ = os.Stderr.WriteString(line + "\n")
	_ = os.Stderr.Sync()
}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("deadpool: broken invariant: "+format, args...))
	}
}
