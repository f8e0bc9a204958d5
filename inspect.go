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

import "iter"

// BlockInfo is a read-only view of one block's header, for tests and
// diagnostics. It carries no reference into the arena.
type BlockInfo struct {
	Offset int // of the block header, from the arena base
	Size   int // payload bytes
	Free   bool
}

// Blocks yields a view of every block in address order, by walking the
// physical tiling of the arena.
func (h *Heap) Blocks() iter.Seq[BlockInfo] {
	return func(yield func(BlockInfo) bool) {
		end := h.base.Add(h.size)
		for a := h.base; a < end; {
			b := blockAt(a)
			if !yield(BlockInfo{Offset: a.Sub(h.base), Size: b.size, Free: b.free}) {
				return
			}
			a = b.end()
		}
	}
}

// FreeBlocks yields a view of every free block in free-list order, by
// walking the links from the list head.
func (h *Heap) FreeBlocks() iter.Seq[BlockInfo] {
	return func(yield func(BlockInfo) bool) {
		for a := h.freeList; a != listEnd; {
			b := blockAt(a)
			if !yield(BlockInfo{Offset: a.Sub(h.base), Size: b.size, Free: b.free}) {
				return
			}
			a = b.next
		}
	}
}
