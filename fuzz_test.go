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

package deadpool_test

import (
	"testing"

	"github.com/bytedance/gopkg/lang/dirtmake"
	"github.com/stretchr/testify/require"

	"buf.build/go/deadpool"
)

// FuzzOps drives a heap with an arbitrary operation stream and checks the
// structural invariants after every step. Each input byte is one
// operation: odd values free a live allocation (or allocate, when nothing
// is live), even values allocate a small request, and the occasional zero
// frees nil.
func FuzzOps(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{2, 4, 6, 1, 3, 8, 5})
	f.Add([]byte{200, 200, 200, 1, 200, 0, 1, 1})

	f.Fuzz(func(t *testing.T, ops []byte) {
		h, err := deadpool.New(dirtmake.Bytes(4096, 4096))
		require.NoError(t, err)

		var live []*byte
		for _, op := range ops {
			switch {
			case op == 0:
				require.Error(t, h.Free(nil))
			case op%2 == 1 && len(live) > 0:
				i := int(op) % len(live)
				require.NoError(t, h.Free(live[i]))
				live[i] = live[len(live)-1]
				live = live[:len(live)-1]
			default:
				n := int(op)/2 + 1
				if p := h.Alloc(n); p != nil {
					live = append(live, p)
				}
			}
			checkInvariants(t, h)
		}

		// Drain, in whatever order the stream left things.
		for _, p := range live {
			require.NoError(t, h.Free(p))
			checkInvariants(t, h)
		}

		n := 0
		for range h.FreeBlocks() {
			n++
		}
		require.Equal(t, 1, n)
		require.Equal(t, h.Size()-deadpool.HeaderSize, h.Available())
	})
}
