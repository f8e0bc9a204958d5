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

//go:build !stats

package deadpool

// StatsEnabled is true if the allocator is being built with the stats tag,
// which enables operation counters and the fragmentation metric.
const StatsEnabled = false

type heapStats struct{}

func (s *heapStats) alloc()  {}
func (s *heapStats) free()   {}
func (s *heapStats) refuse() {}

// Stats are cumulative operation counters for one heap. Without the stats
// tag nothing is counted and the zero value is returned.
type Stats struct {
	Allocs  uint64 // successful allocations
	Frees   uint64 // successful frees
	Refused uint64 // allocation requests returned nil
}

// Stats returns this heap's operation counters.
func (h *Heap) Stats() Stats {
	return Stats{}
}

// Fragmentation reports how badly the free space is scattered. Without
// the stats tag it always reports 0.
func (h *Heap) Fragmentation() float64 {
	return 0
}
