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

// Package deadpool is a fixed-region heap allocator: it services
// variable-size allocation and deallocation requests entirely within one
// caller-provided byte buffer, and never calls into Go's allocator after
// initialization. It is meant for embedded, real-time, arena-scoped, or
// sandboxed settings where memory is finite and externally owned.
//
// Build a [Heap] over a buffer with [New], then use [Heap.Alloc] and
// [Heap.Free]. Blocks are tracked by headers living inside the buffer
// itself, threaded into a singly-linked free list; allocation is best-fit
// with splitting, and freeing eagerly coalesces physical neighbors, so the
// arena always tiles into alternating runs with no two free blocks
// adjacent.
//
// Every returned pointer is aligned to [Align]. The byte immediately
// before it records the distance back to the block header, which is how
// [Heap.Free] finds its way home; that byte belongs to the allocator.
//
// # Safety
//
// A Heap is strictly single-owner. There are no locks and no atomics;
// callers that share an arena across goroutines must serialize at their
// own layer. The backing buffer must not be touched by anything else for
// the heap's lifetime.
//
// [Heap.Free] validates before it mutates: nil pointers, pointers outside
// the arena, pointers that do not lead back to a live allocation, and
// double frees are all reported as errors without corrupting the arena.
//
// # Build tags
//
//   - debug: verbose internal tracing and assertions.
//   - nolog: compiles out the [Logger] dispatch.
//   - stats: operation counters and the [Heap.Fragmentation] metric.
package deadpool
