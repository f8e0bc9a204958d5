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
	"buf.build/go/deadpool/internal/debug"
	"buf.build/go/deadpool/internal/xunsafe"
)

// Free returns a block previously handed out by [Heap.Alloc] to the arena,
// eagerly merging it with any physically adjacent free block.
//
// Free validates before it mutates: a nil pointer, a pointer outside the
// arena, a pointer that does not lead back to a live allocation, or a
// block that is already free all produce a [FreeError] and leave the heap
// untouched.
func (h *Heap) Free(p *byte) error {
	if p == nil {
		h.errorf("deadpool: free of nil pointer")
		return &FreeError{code: errCodeNilPointer, off: -1}
	}

	addr := xunsafe.AddrOf(p)
	off := addr.Sub(h.base)
	if !h.contains(addr) {
		h.errorf("deadpool: free of %v outside of arena %v+%#x", addr, h.base, h.size)
		return &FreeError{code: errCodeOutOfRange, off: off}
	}

	// The byte behind the user pointer records how far past the header it
	// sits, which is what lets us find the header at all.
	back := int(xunsafe.ByteLoad[byte](p, -1))
	start := addr.Add(-back - HeaderSize)
	if start < h.base {
		h.errorf("deadpool: free of %v with bogus back-offset %d", addr, back)
		return &FreeError{code: errCodeOutOfRange, off: off}
	}

	b := blockAt(start)
	if b.free {
		h.errorf("deadpool: double free of %v (block %v)", addr, start)
		return &FreeError{code: errCodeDoubleFree, off: off}
	}
	if b.next != allocated {
		h.errorf("deadpool: free of %v: block %v is not a live allocation", addr, start)
		return &FreeError{code: errCodeNotAllocated, off: off}
	}

	payload := b.size
	end := b.end()

	// Tombstone first: if this header gets absorbed into a left neighbor
	// below, a second free through the same pointer must still land on a
	// block that reads as free.
	b.free = true
	b.next = listEnd

	// One pass over the free list to find the physical neighbors. The
	// list is not sorted by address, so both sides have to be searched
	// for; the walk stops as soon as both are in hand.
	left, right := listEnd, listEnd
	prev := listEnd
	for cur := h.freeList; cur != listEnd && (left == listEnd || right == listEnd); {
		c := blockAt(cur)
		next := c.next
		switch {
		case cur == end:
			h.unlink(prev, c)
			right = cur
		case c.end() == start:
			h.unlink(prev, c)
			left = cur
		default:
			prev = cur
		}
		cur = next
	}

	// Each absorbed header turns into payload of the merged block, so
	// available grows by a header per side; the freed payload itself is
	// added once at the end. This keeps available equal to the sum of
	// free block sizes, which is the authoritative invariant.
	merged, mergedAt := b, start
	if left != listEnd {
		l := blockAt(left)
		l.size += HeaderSize + b.size
		h.available += HeaderSize
		merged, mergedAt = l, left
	}
	if right != listEnd {
		merged.size += HeaderSize + blockAt(right).size
		h.available += HeaderSize
	}

	merged.free = true
	merged.next = h.freeList
	h.freeList = mergedAt
	h.available += payload

	debug.Assert(merged.end() <= h.base.Add(h.size), "merged block %v overruns arena", mergedAt)

	h.stats.free()
	h.log("free", "%v: %d bytes (block %v, merged %d)", addr, payload, start, merged.size)
	h.debugf("deadpool: freed %d bytes at %v, %d available", payload, addr, h.available)
	return nil
}

// unlink removes c from the free list, given its predecessor (listEnd for
// the head), and clears its link.
func (h *Heap) unlink(prev xunsafe.Addr, c *header) {
	if prev == listEnd {
		h.freeList = c.next
	} else {
		blockAt(prev).next = c.next
	}
	c.next = listEnd
}
