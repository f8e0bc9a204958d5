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

// Package debug carries the allocator's build-tagged tracing hooks.
//
// Without the debug tag, [Tracef] and [Assert] compile to empty functions
// and every trace call site is guarded by the false [Enabled] constant,
// so the heap's hot paths never pay for formatting.
//
// There is no caller attribution and no filtering: the allocator is one
// package, and every line already names its operation and its arena.
package debug

import (
	"testing"

	"github.com/timandy/routine"
)

// sink receives finished trace lines instead of stderr. It is
// goroutine-local so that parallel tests can each capture the traffic of
// their own heap.
var sink = routine.NewThreadLocal[func(string)]()

// Capture routes this goroutine's trace lines to t until the returned
// function is called.
func Capture(t testing.TB) func() {
	t.Helper()

	prev := sink.Get()
	sink.Set(func(line string) { t.Log(line) })
	return func() { sink.Set(prev) }
}
