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

package deadpool

// Logger routes the heap's diagnostics. It is a plain record of four
// printf-style callbacks rather than an interface so a caller can fill in
// only the severities it cares about; nil fields are skipped.
//
// The heap never retains the format string or arguments beyond the call.
type Logger struct {
	Debugf   func(format string, args ...any)
	Infof    func(format string, args ...any)
	Warningf func(format string, args ...any)
	Errorf   func(format string, args ...any)
}
