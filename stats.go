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

//go:build stats

package deadpool

// StatsEnabled is true if the allocator is being built with the stats tag,
// which enables operation counters and the fragmentation metric.
const StatsEnabled = true

type heapStats struct {
	allocs, frees, refused uint64
}

func (s *heapStats) alloc()  { s.allocs++ }
func (s *heapStats) free()   { s.frees++ }
func (s *heapStats) refuse() { s.refused++ }

// Stats are cumulative operation counters for one heap.
type Stats struct {
	Allocs  uint64 // successful allocations
	Frees   uint64 // successful frees
	Refused uint64 // allocation requests returned nil
}

// Stats returns this heap's operation counters.
func (h *Heap) Stats() Stats {
	return Stats{
		Allocs:  h.stats.allocs,
		Frees:   h.stats.frees,
		Refused: h.stats.refused,
	}
}

// Fragmentation reports how badly the free space is scattered, as
// 1 - largest/total over the free blocks: 0 means one contiguous run (or
// no free space at all), values near 1 mean many small shards.
func (h *Heap) Fragmentation() float64 {
	var total, largest int
	for cur := h.freeList; cur != listEnd; {
		b := blockAt(cur)
		total += b.size
		largest = max(largest, b.size)
		cur = b.next
	}
	if total == 0 {
		return 0
	}
	return 1 - float64(largest)/float64(total)
}
