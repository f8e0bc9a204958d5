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

	. "github.com/smartystreets/goconvey/convey"

	"buf.build/go/deadpool"
)

func TestHeapLifecycle(t *testing.T) {
	Convey("Given a 1024-byte arena", t, func() {
		h, err := deadpool.New(make([]byte, 1024))
		So(err, ShouldBeNil)
		before := h.Available()

		Convey("allocating 100 bytes shrinks the pool", func() {
			p := h.Alloc(100)
			So(p, ShouldNotBeNil)
			So(h.Available(), ShouldBeLessThan, before)

			Convey("and freeing restores it exactly", func() {
				So(h.Free(p), ShouldBeNil)
				So(h.Available(), ShouldEqual, before)
			})

			Convey("but freeing twice is refused", func() {
				So(h.Free(p), ShouldBeNil)
				So(h.Free(p), ShouldNotBeNil)
				So(h.Available(), ShouldEqual, before)
			})
		})

		Convey("impossible requests are refused outright", func() {
			So(h.Alloc(0), ShouldBeNil)
			So(h.Alloc(-1), ShouldBeNil)
			So(h.Alloc(1<<20), ShouldBeNil)
			So(h.Available(), ShouldEqual, before)
		})
	})
}
