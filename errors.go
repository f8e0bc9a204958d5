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
	"errors"
	"fmt"
)

// Errors returned by [New].
var (
	// ErrNilBuffer means the backing buffer was nil.
	ErrNilBuffer = errors.New("nil backing buffer")

	// ErrBufferTooSmall means the backing buffer cannot hold even one
	// block after alignment.
	ErrBufferTooSmall = errors.New("backing buffer cannot hold a block")
)

const (
	errCodeOk errCode = iota
	errCodeNilPointer
	errCodeOutOfRange
	errCodeNotAllocated
	errCodeDoubleFree
)

type errCode int

var errs = [...]error{
	errCodeOk:           nil,
	errCodeNilPointer:   ErrNilPointer,
	errCodeOutOfRange:   ErrOutOfRange,
	errCodeNotAllocated: ErrNotAllocated,
	errCodeDoubleFree:   ErrDoubleFree,
}

// Errors a [FreeError] unwraps to.
var (
	// ErrNilPointer means [Heap.Free] was handed a nil pointer.
	ErrNilPointer = errors.New("free of nil pointer")

	// ErrOutOfRange means the pointer does not fall inside the arena.
	ErrOutOfRange = errors.New("pointer outside of arena")

	// ErrNotAllocated means the pointer's reconstructed header is not
	// marked as a live allocation: either the pointer never came from
	// this heap, or the header has been overwritten.
	ErrNotAllocated = errors.New("pointer is not a live allocation")

	// ErrDoubleFree means the block behind the pointer is already free.
	ErrDoubleFree = errors.New("block is already free")
)

// FreeError is an error returned by [Heap.Free]. A rejected free never
// mutates the heap.
type FreeError struct {
	code errCode
	off  int // byte offset of the pointer from the arena base; -1 for nil
}

// Offset returns the offset into the arena of the rejected pointer, or -1
// if the pointer was nil.
func (e *FreeError) Offset() int {
	return e.off
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *FreeError) Unwrap() error {
	return errs[e.code]
}

// Error implements [error].
func (e *FreeError) Error() string {
	if e.off < 0 {
		return fmt.Sprintf("deadpool: %v", e.Unwrap())
	}
	return fmt.Sprintf("deadpool: free rejected at offset %d/%#x: %v", e.off, e.off, e.Unwrap())
}
