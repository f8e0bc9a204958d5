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

	"github.com/bytedance/gopkg/lang/mcache"

	"buf.build/go/deadpool"
)

func BenchmarkAllocFree(b *testing.B) {
	buf := mcache.Malloc(1 << 20)
	defer mcache.Free(buf)

	h, err := deadpool.New(buf)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for range b.N {
		p := h.Alloc(64)
		if p == nil {
			b.Fatal("arena exhausted")
		}
		if err := h.Free(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBestFitFragmented measures the free-list walk with many holes
// on the list, which is the allocator's worst case.
func BenchmarkBestFitFragmented(b *testing.B) {
	buf := mcache.Malloc(1 << 20)
	defer mcache.Free(buf)

	h, err := deadpool.New(buf)
	if err != nil {
		b.Fatal(err)
	}

	var ptrs []*byte
	for {
		p := h.Alloc(128)
		if p == nil {
			break
		}
		ptrs = append(ptrs, p)
	}
	for i := 0; i < len(ptrs); i += 2 {
		if err := h.Free(ptrs[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for range b.N {
		p := h.Alloc(128)
		if p == nil {
			b.Fatal("arena exhausted")
		}
		if err := h.Free(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFill(b *testing.B) {
	buf := mcache.Malloc(1 << 16)
	defer mcache.Free(buf)

	b.ResetTimer()
	for range b.N {
		h, err := deadpool.New(buf)
		if err != nil {
			b.Fatal(err)
		}
		for h.Alloc(48) != nil {
		}
	}
}
