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

package xunsafe

import (
	"fmt"
	"unsafe"

	"buf.build/go/deadpool/internal/xunsafe/layout"
)

// Addr is a raw, unscaled byte address.
//
// Addresses inside a managed region are compared and offset as plain
// integers; converting one back into a pointer is the caller's assertion
// that it still points into memory it owns.
type Addr uintptr

// AddrOf gets the address of a pointer.
func AddrOf[P ~*E, E any](p P) Addr {
	return Addr(uintptr(unsafe.Pointer(p)))
}

// Ptr asserts that this address is a valid pointer to a T.
//
//go:nosplit
func Ptr[T any](a Addr) *T {
	return (*T)(unsafe.Pointer(uintptr(a))) // Don't worry about it.
}

// Add adds the given byte offset to this address.
func (a Addr) Add(n int) Addr {
	return Addr(uintptr(a) + uintptr(n))
}

// Sub computes the byte distance between two addresses.
func (a Addr) Sub(b Addr) int {
	return int(a - b)
}

// RoundUpTo rounds this address upwards to align, which must be a power of
// two.
func (a Addr) RoundUpTo(align int) Addr {
	return Addr(layout.RoundUp(uintptr(a), uintptr(align)))
}

// Padding returns the number of bytes between this address and the next
// address aligned to align, which must be a power of two.
func (a Addr) Padding(align int) int {
	return int(layout.Padding(uintptr(a), uintptr(align)))
}

// Format implements [fmt.Formatter].
func (a Addr) Format(state fmt.State, verb rune) {
	if verb == 'v' {
		fmt.Fprintf(state, "%#x", uintptr(a))
		return
	}

	fmt.Fprintf(state, fmt.FormatString(state, verb), uintptr(a))
}
