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

// Alloc returns a pointer to n bytes inside the arena, aligned to [Align],
// or nil if the request cannot be satisfied.
//
// The byte immediately before the returned pointer records the distance
// back to the block header; callers must treat it as out of bounds.
//
// Alloc either succeeds with the heap in a consistent state or returns nil
// having mutated nothing.
func (h *Heap) Alloc(n int) *byte {
	if h == nil || n <= 0 {
		return nil
	}
	if n+Align > h.available || h.freeList == listEnd {
		h.stats.refuse()
		h.debugf("deadpool: refused %d-byte request, %d available", n, h.available)
		return nil
	}

	// Best fit. The cost of a request differs per candidate: the user
	// pointer must land on an aligned byte strictly past the header and
	// the reverse-offset byte, so each block is priced at its own address.
	var (
		best     = listEnd
		bestPrev = listEnd
		bestFit  int
		bestCost int
		prev     = listEnd
	)
	for cur := h.freeList; cur != listEnd; {
		b := blockAt(cur)
		user := b.payload().Add(1).RoundUpTo(Align)
		cost := user.Sub(b.payload()) + n
		if cost <= b.size {
			fit := b.size - cost
			if best == listEnd || fit < bestFit {
				best, bestPrev, bestFit, bestCost = cur, prev, fit, cost
				if fit == 0 {
					break
				}
			}
		}
		prev = cur
		cur = b.next
	}
	if best == listEnd {
		h.stats.refuse()
		h.debugf("deadpool: no free block fits %d bytes, %d available", n, h.available)
		return nil
	}

	b := blockAt(best)

	// Round the allocation out to an aligned boundary so the split
	// remainder starts a properly aligned header. If the remainder could
	// not stand alone as a block, the whole candidate is consumed and the
	// caller gets the slack.
	remStart := b.payload().Add(bestCost).RoundUpTo(Align)
	size := remStart.Sub(b.payload())

	if rest := b.size - size; rest < HeaderSize+1 {
		size = b.size
		if bestPrev == listEnd {
			h.freeList = b.next
		} else {
			blockAt(bestPrev).next = b.next
		}
	} else {
		r := blockAt(remStart)
		r.size = rest - HeaderSize
		r.free = true
		r.next = b.next
		if bestPrev == listEnd {
			h.freeList = remStart
		} else {
			blockAt(bestPrev).next = remStart
		}
		h.available -= HeaderSize
	}

	b.size = size
	b.free = false
	b.next = allocated
	h.available -= size

	user := b.payload().Add(1).RoundUpTo(Align)
	p := xunsafe.Ptr[byte](user)
	xunsafe.ByteStore[byte](p, -1, byte(user.Sub(b.payload())))

	debug.Assert(user.Padding(Align) == 0, "misaligned user pointer %v", user)
	debug.Assert(h.available >= 0, "available underflow: %d", h.available)

	h.stats.alloc()
	h.log("alloc", "%d:%d -> %v, fit %d", n, size, user, bestFit)
	h.infof("deadpool: allocated %d bytes at %v (block %v, size %d, fit %d, %d left)",
		n, user, best, size, bestFit, h.available)
	return p
}
