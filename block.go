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

	"buf.build/go/deadpool/internal/xunsafe"
)

// Align is the alignment of every pointer returned by [Heap.Alloc]. It is
// the largest alignment any primitive type requires, so any value can be
// stored at the returned address.
const Align = int(unsafe.Sizeof(uintptr(0)))

// HeaderSize is the bookkeeping overhead that prefixes every block in the
// arena, free or allocated.
const HeaderSize = int(unsafe.Sizeof(header{}))

// header is the bookkeeping record at the start of every block.
//
// Free blocks are threaded into a singly-linked list through next. An
// allocated block carries the allocated sentinel there instead; list
// membership and the sentinel are two sides of the same coin. The free
// flag is redundant with membership and exists so that a double free can
// be told apart from a pointer that was never one of ours.
type header struct {
	next xunsafe.Addr
	size int // payload bytes, excluding the header itself
	free bool
}

const (
	// listEnd terminates the free list.
	listEnd xunsafe.Addr = 0

	// allocated marks a block that is not on the free list. All-bits-one
	// is never a real block address, and never listEnd.
	allocated = ^xunsafe.Addr(0)
)

// blockAt asserts that a is the address of a block header.
func blockAt(a xunsafe.Addr) *header {
	return xunsafe.Ptr[header](a)
}

// end returns the address one past b's payload, which is the header of the
// physically next block, or the arena end.
func (b *header) end() xunsafe.Addr {
	return xunsafe.AddrOf(b).Add(HeaderSize + b.size)
}

// payload returns the address of the first byte past b's header.
func (b *header) payload() xunsafe.Addr {
	return xunsafe.AddrOf(b).Add(HeaderSize)
}
