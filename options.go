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

// Option is a configuration setting for [New].
//
// Not an interface, for symmetry with how the rest of the API avoids
// interface dispatch on anything the allocator touches per-operation.
type Option struct{ apply func(*Heap) }

// WithLogger supplies the callbacks the heap reports through.
//
// The heap stores the record by value for its lifetime; without this
// option nothing is reported. Building with the nolog tag removes the
// dispatch entirely, WithLogger or not.
func WithLogger(l Logger) Option {
	return Option{func(h *Heap) { h.logger = l }}
}
