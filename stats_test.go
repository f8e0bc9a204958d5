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

package deadpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/deadpool"
)

func TestFragmentation(t *testing.T) {
	t.Parallel()

	h := newHeap(t, 1024)
	assert.Equal(t, 0.0, h.Fragmentation())

	// Fill the arena completely, then punch two equal, non-adjacent
	// holes: the largest hole holds exactly half the free space.
	a := h.Alloc(64)
	b := h.Alloc(64)
	c := h.Alloc(64)
	rest := h.Alloc(h.Available() - deadpool.Align)
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.NotNil(t, c)
	require.NotNil(t, rest)
	assert.Equal(t, 0.0, h.Fragmentation())

	require.NoError(t, h.Free(a))
	require.NoError(t, h.Free(c))
	checkInvariants(t, h)

	assert.InDelta(t, 0.5, h.Fragmentation(), 0.01)
}

func TestStatsCounters(t *testing.T) {
	t.Parallel()

	h := newHeap(t, 1024)

	p := h.Alloc(64)
	require.NotNil(t, p)
	require.Nil(t, h.Alloc(1 << 20))
	require.NoError(t, h.Free(p))

	s := h.Stats()
	assert.Equal(t, uint64(1), s.Allocs)
	assert.Equal(t, uint64(1), s.Frees)
	assert.Equal(t, uint64(1), s.Refused)
}
