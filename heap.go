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

import (
	"unsafe"

	"buf.build/go/deadpool/internal/debug"
	"buf.build/go/deadpool/internal/xunsafe"
)

// Heap manages a caller-owned byte buffer as a region of variable-size
// blocks. It never touches Go's allocator after [New] returns.
//
// A Heap is single-owner: it is not safe for concurrent use, and the
// backing buffer must not be read or written by anything else while the
// heap is live.
type Heap struct {
	_ xunsafe.NoCopy

	base      xunsafe.Addr // aligned start of the managed region
	size      int          // managed bytes, starting at base
	available int          // sum of free block sizes
	freeList  xunsafe.Addr

	// The caller's buffer. The heap does not own it, but holding the
	// slice keeps the region reachable for as long as the heap is.
	buf []byte

	logger Logger
	stats  heapStats
}

// New initializes a heap over buf.
//
// The start of buf is aligned up to [Align], and the bytes before that
// point go unused. A nil buf is rejected with [ErrNilBuffer], and a buffer
// too small to hold a single block with [ErrBufferTooSmall].
func New(buf []byte, opts ...Option) (*Heap, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if len(buf) < HeaderSize {
		return nil, ErrBufferTooSmall
	}

	h := &Heap{buf: buf}
	for _, opt := range opts {
		opt.apply(h)
	}

	base := xunsafe.AddrOf(unsafe.SliceData(buf))
	aligned := base.RoundUpTo(Align)
	size := len(buf) - aligned.Sub(base)
	if size < HeaderSize+1 {
		return nil, ErrBufferTooSmall
	}

	h.base = aligned
	h.size = size
	h.available = size - HeaderSize
	h.freeList = aligned

	first := blockAt(aligned)
	first.next = listEnd
	first.size = h.available
	first.free = true

	h.log("init", "%d bytes, %d usable", len(buf), h.available)
	return h, nil
}

// Available returns the number of bytes currently free.
//
// This counts block payloads only; a request for exactly Available()
// bytes can still be refused, because an allocation also consumes
// alignment padding and the reverse-offset byte.
func (h *Heap) Available() int {
	return h.available
}

// Size returns the number of managed bytes, after the leading alignment
// of the backing buffer.
func (h *Heap) Size() int {
	return h.size
}

// contains reports whether a falls inside the managed region.
func (h *Heap) contains(a xunsafe.Addr) bool {
	return a >= h.base && a < h.base.Add(h.size)
}

// log routes a line to the debug build's tracer, prefixed with the arena
// identity and the operation.
func (h *Heap) log(op, format string, args ...any) {
	if debug.Enabled {
		debug.Tracef("%v+%#x %s: "+format, append([]any{h.base, h.size, op}, args...)...)
	}
}
