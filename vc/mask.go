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
	"math/bits"
	"strings"
)

// Mask represents the result of a comparison operation: one boolean per lane
// of a Vector[T, R]. It can be used with Vector.Masked, IfThenElse, MaskLoad,
// MaskStore and the masked gather/scatter functions.
//
// Masks are produced by comparisons, by TrueMask, FalseMask and FirstN, or by
// CastMask from a mask of another lane type with the same Size. They are never
// built from raw bit patterns, so bits at or above Size are always clear.
type Mask[T Lanes, R Register] struct {
	// bits stores which lanes are active (true).
	// bit i is set if lane i is active.
	bits uint64
}

// laneBits returns a bitset with the low n bits set.
func laneBits(n int) uint64 {
	if n >= maxLanes {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// TrueMask returns a mask with every lane active.
func TrueMask[T Lanes, R Register]() Mask[T, R] {
	return Mask[T, R]{bits: laneBits(LanesOf[T, R]())}
}

// FalseMask returns a mask with no lane active.
func FalseMask[T Lanes, R Register]() Mask[T, R] {
	return Mask[T, R]{}
}

// FirstN returns a mask with the first n lanes active.
// n is clamped to [0, Size].
func FirstN[T Lanes, R Register](n int) Mask[T, R] {
	size := LanesOf[T, R]()
	n = max(0, min(n, size))
	return Mask[T, R]{bits: laneBits(n)}
}

// CastMask reinterprets m as a mask for U lanes in the same register type.
// The lane counts must match (e.g. float32 and int32); otherwise CastMask
// panics, since the Go type system cannot express that constraint.
func CastMask[U Lanes, T Lanes, R Register](m Mask[T, R]) Mask[U, R] {
	return ConvertMask[U, R](m)
}

// ConvertMask reinterprets m as a mask for U lanes in RU registers, for
// example a Mask[float32, Reg128] as a Mask[float64, Reg256] (4 lanes each).
// It panics if the lane counts differ.
func ConvertMask[U Lanes, RU Register, T Lanes, R Register](m Mask[T, R]) Mask[U, RU] {
	if LanesOf[U, RU]() != LanesOf[T, R]() {
		panic(fmt.Sprintf("vc: cannot convert a %d-lane mask to %d lanes", LanesOf[T, R](), LanesOf[U, RU]()))
	}
	return Mask[U, RU]{bits: m.bits}
}

// Size returns the number of lanes in m.
func (m Mask[T, R]) Size() int {
	return LanesOf[T, R]()
}

// Lane returns whether lane i is active.
func (m Mask[T, R]) Lane(i int) bool {
	checkLane(i, LanesOf[T, R]())
	return m.bits&(1<<uint(i)) != 0
}

// Bits returns the mask as a bitset; bit i is lane i.
func (m Mask[T, R]) Bits() uint64 {
	return m.bits
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T, R]) AllTrue() bool {
	return m.bits == laneBits(LanesOf[T, R]())
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T, R]) AnyTrue() bool {
	return m.bits != 0
}

// NoneTrue returns true if no lane is active.
func (m Mask[T, R]) NoneTrue() bool {
	return m.bits == 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T, R]) CountTrue() int {
	return bits.OnesCount64(m.bits)
}

// FirstTrue returns the index of the first active lane, or -1 if none is.
func (m Mask[T, R]) FirstTrue() int {
	if m.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(m.bits)
}

// And returns the lanes active in both m and o.
func (m Mask[T, R]) And(o Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{bits: m.bits & o.bits}
}

// Or returns the lanes active in m or o.
func (m Mask[T, R]) Or(o Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{bits: m.bits | o.bits}
}

// Xor returns the lanes active in exactly one of m and o.
func (m Mask[T, R]) Xor(o Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{bits: m.bits ^ o.bits}
}

// AndNot returns the lanes active in m but not in o.
func (m Mask[T, R]) AndNot(o Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{bits: m.bits &^ o.bits}
}

// Not returns the inactive lanes of m.
func (m Mask[T, R]) Not() Mask[T, R] {
	return Mask[T, R]{bits: ^m.bits & laneBits(LanesOf[T, R]())}
}

// Equal reports whether m and o select the same lanes.
func (m Mask[T, R]) Equal(o Mask[T, R]) bool {
	return m.bits == o.bits
}

// String formats m as lane flags, lane 0 first, e.g. "[1 1 0 0]".
func (m Mask[T, R]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range LanesOf[T, R]() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if m.bits&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
