// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vc

import (
	"fmt"
	"unsafe"
)

// AllocAligned allocates a slice of n elements whose first element is
// aligned to VectorAlignment bytes, so it can be used with Aligned loads and
// stores of every register width.
//
// It allocates slightly more memory than requested; the underlying array is
// kept alive by the returned slice.
func AllocAligned[T Lanes](n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	pad := VectorAlignment / elem
	buf := make([]T, n+pad)

	// Calculate the offset to the first aligned element.
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := int((VectorAlignment-(addr&(VectorAlignment-1)))&(VectorAlignment-1)) / elem
	return buf[offset : offset+n : offset+n]
}

// IsAligned reports whether the first element of p lies on an align-byte
// boundary. An empty slice is considered aligned.
func IsAligned[T Lanes](p []T, align int) bool {
	if len(p) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&p[0]))%uintptr(align) == 0
}

// Memory is an aligned buffer of scalars sized in whole vectors. It is the
// staging area between scalar code and Vector[T, R]:
//
//	m := vc.NewMemory[float32, vc.Reg128]()
//	m.Set(2, 1.5)
//	v := m.VectorAt(0)
//
// Every vector slot starts at a register-aligned address, so VectorAt and
// SetVectorAt use Aligned access.
type Memory[T Lanes, R Register] struct {
	data []T
}

// NewMemory returns a zeroed Memory holding exactly one vector.
func NewMemory[T Lanes, R Register]() *Memory[T, R] {
	return &Memory[T, R]{data: AllocAligned[T](LanesOf[T, R]())}
}

// NewMemoryN returns a zeroed Memory holding at least n scalars, rounded up
// to a whole number of vectors.
func NewMemoryN[T Lanes, R Register](n int) *Memory[T, R] {
	if n < 0 {
		panic(fmt.Sprintf("vc: negative memory size %d", n))
	}
	return &Memory[T, R]{data: AllocAligned[T](AlignedSize[T, R](n))}
}

// Len returns the number of scalars in m.
func (m *Memory[T, R]) Len() int {
	return len(m.data)
}

// Slice returns the scalars of m. The slice aliases m.
func (m *Memory[T, R]) Slice() []T {
	return m.data
}

// At returns scalar i.
func (m *Memory[T, R]) At(i int) T {
	return m.data[i]
}

// Set overwrites scalar i with x.
func (m *Memory[T, R]) Set(i int, x T) {
	m.data[i] = x
}

// VectorsCount returns the number of whole vectors in m.
func (m *Memory[T, R]) VectorsCount() int {
	return len(m.data) / LanesOf[T, R]()
}

// VectorAt loads vector slot i, i.e. scalars [i*Size, (i+1)*Size).
func (m *Memory[T, R]) VectorAt(i int) Vector[T, R] {
	n := LanesOf[T, R]()
	return Load[T, R](m.data[i*n:(i+1)*n], Aligned)
}

// SetVectorAt stores v into vector slot i.
func (m *Memory[T, R]) SetVectorAt(i int, v Vector[T, R]) {
	n := LanesOf[T, R]()
	v.Store(m.data[i*n:(i+1)*n], Aligned)
}

// BlendedStore stores the lanes of v where m is true to dst, leaving the
// elements of dst behind inactive lanes unchanged. dst must hold Size
// elements, unlike MaskStore which never touches them.
func BlendedStore[T Lanes, R Register](v Vector[T, R], m Mask[T, R], dst []T) {
	var cur Vector[T, R]
	cur.Load(dst, Unaligned)
	cur.Masked(m).Set(v)
	cur.Store(dst, Unaligned)
}
