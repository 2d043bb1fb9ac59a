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

import "math"

// Construction uses distinct named factories (Zero, One, IndexesFromZero,
// Broadcast) so that "all lanes zero" and "broadcast this value" can never be
// confused by overload resolution.

// Undefined returns a vector whose lanes are unspecified.
// In Go this is a zero-initialized vector, but callers should not rely on
// any specific value.
func Undefined[T Lanes, R Register]() Vector[T, R] {
	return Vector[T, R]{}
}

// Zero returns a vector with all lanes set to 0.
func Zero[T Lanes, R Register]() Vector[T, R] {
	return Vector[T, R]{}
}

// One returns a vector with all lanes set to 1.
func One[T Lanes, R Register]() Vector[T, R] {
	return Broadcast[T, R](1)
}

// IndexesFromZero returns [0, 1, 2, ..., Size-1].
// It only exists for integer lanes.
func IndexesFromZero[T Integers, R Register]() Vector[T, R] {
	var v Vector[T, R]
	for i, lanes := 0, v.lanes(); i < len(lanes); i++ {
		lanes[i] = T(i)
	}
	return v
}

// Broadcast returns a vector with all lanes set to x.
func Broadcast[T Lanes, R Register](x T) Vector[T, R] {
	var v Vector[T, R]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = x
	}
	return v
}

// Load returns a vector whose lane i is src[i].
//
// src must hold at least Size elements. With Aligned, &src[0] must be aligned
// to RegisterBytes[R]().
func Load[T Lanes, R Register](src []T, flags AlignmentFlags) Vector[T, R] {
	var v Vector[T, R]
	v.Load(src, flags)
	return v
}

// Load overwrites every lane of v from src[0:Size].
func (v *Vector[T, R]) Load(src []T, flags AlignmentFlags) {
	checkAligned(src, RegisterBytes[R](), flags)
	lanes := v.lanes()
	copy(lanes, src[:len(lanes)])
}

// Store writes every lane of v to dst[0:Size].
//
// dst must hold at least Size elements. With Aligned, &dst[0] must be aligned
// to RegisterBytes[R]().
func (v Vector[T, R]) Store(dst []T, flags AlignmentFlags) {
	checkAligned(dst, RegisterBytes[R](), flags)
	lanes := v.lanes()
	copy(dst[:len(lanes)], lanes)
}

// Store writes v to dst. This is the function form of Vector.Store.
func Store[T Lanes, R Register](v Vector[T, R], dst []T, flags AlignmentFlags) {
	v.Store(dst, flags)
}

// MakeZero sets all lanes to 0.
func (v *Vector[T, R]) MakeZero() {
	*v = Vector[T, R]{}
}

// MakeZeroMasked sets the lanes selected by m to 0 and leaves the others
// unchanged.
func (v *Vector[T, R]) MakeZeroMasked(m Mask[T, R]) {
	v.Masked(m).Zero()
}

// MaskLoad loads src[i] into the lanes where m is true; the other lanes are
// zero. Elements of src behind inactive lanes are never read, so src may be
// shorter than Size when the tail lanes are masked off.
func MaskLoad[T Lanes, R Register](m Mask[T, R], src []T) Vector[T, R] {
	var v Vector[T, R]
	lanes := v.lanes()
	for i := range lanes {
		if m.bits&(1<<uint(i)) != 0 {
			lanes[i] = src[i]
		}
	}
	return v
}

// MaskStore stores the lanes of v where m is true. Existing values of dst
// behind inactive lanes are preserved and never touched.
func MaskStore[T Lanes, R Register](m Mask[T, R], v Vector[T, R], dst []T) {
	lanes := v.lanes()
	for i := range lanes {
		if m.bits&(1<<uint(i)) != 0 {
			dst[i] = lanes[i]
		}
	}
}

// Add performs element-wise addition.
func Add[T Lanes, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: nativeFor[T, R]().Add(a.reg, b.reg)}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: nativeFor[T, R]().Sub(a.reg, b.reg)}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: nativeFor[T, R]().Mul(a.reg, b.reg)}
}

// Div performs element-wise division.
// Integer lanes follow Go semantics: a zero divisor panics.
// Use Vector.Masked(...).Div to divide only selected lanes.
func Div[T Lanes, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: nativeFor[T, R]().Div(a.reg, b.reg)}
}

// Neg negates all lanes. Unsigned lanes wrap.
func Neg[T Lanes, R Register](v Vector[T, R]) Vector[T, R] {
	var out Vector[T, R]
	dst, src := out.lanes(), v.lanes()
	for i := range dst {
		dst[i] = -src[i]
	}
	return out
}

// Abs computes the absolute value of every lane.
// Float lanes get their sign bit cleared, as math.Abs does, so -0 becomes +0.
// The most negative signed integer maps to itself.
func Abs[T Lanes, R Register](v Vector[T, R]) Vector[T, R] {
	var out Vector[T, R]
	dst, src := out.lanes(), v.lanes()
	if k := kindOf[T](); k == kindFloat32 || k == kindFloat64 {
		for i, x := range src {
			dst[i] = T(math.Abs(float64(x)))
		}
		return out
	}
	for i, x := range src {
		if x < 0 {
			x = -x
		}
		dst[i] = x
	}
	return out
}

// Min returns element-wise minimum.
func Min[T Lanes, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: nativeFor[T, R]().Blend(b.reg, a.reg, Less(a, b).bits)}
}

// Max returns element-wise maximum.
func Max[T Lanes, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: nativeFor[T, R]().Blend(b.reg, a.reg, Greater(a, b).bits)}
}

// Sqrt computes the square root of every lane.
func Sqrt[T Floats, R Register](v Vector[T, R]) Vector[T, R] {
	var out Vector[T, R]
	dst, src := out.lanes(), v.lanes()
	for i, x := range src {
		dst[i] = T(math.Sqrt(float64(x)))
	}
	return out
}

func compare[T Lanes, R Register](op CmpOp, a, b Vector[T, R]) Mask[T, R] {
	return Mask[T, R]{bits: nativeFor[T, R]().Compare(op, a.reg, b.reg)}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes, R Register](a, b Vector[T, R]) Mask[T, R] {
	return compare(CmpEqual, a, b)
}

// NotEqual performs element-wise inequality comparison.
// NaN lanes compare not equal to everything, including themselves.
func NotEqual[T Lanes, R Register](a, b Vector[T, R]) Mask[T, R] {
	return compare(CmpNotEqual, a, b)
}

// Less performs element-wise less-than comparison.
func Less[T Lanes, R Register](a, b Vector[T, R]) Mask[T, R] {
	return compare(CmpLess, a, b)
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes, R Register](a, b Vector[T, R]) Mask[T, R] {
	return compare(CmpLessEqual, a, b)
}

// Greater performs element-wise greater-than comparison.
func Greater[T Lanes, R Register](a, b Vector[T, R]) Mask[T, R] {
	return compare(CmpGreater, a, b)
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes, R Register](a, b Vector[T, R]) Mask[T, R] {
	return compare(CmpGreaterEqual, a, b)
}

// IfThenElse returns a where m is true and b elsewhere.
func IfThenElse[T Lanes, R Register](m Mask[T, R], a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: nativeFor[T, R]().Blend(b.reg, a.reg, m.bits)}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes, R Register](v Vector[T, R]) T {
	var sum T
	for _, x := range v.lanes() {
		sum += x
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes, R Register](v Vector[T, R]) T {
	lanes := v.lanes()
	m := lanes[0]
	for _, x := range lanes[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes, R Register](v Vector[T, R]) T {
	lanes := v.lanes()
	m := lanes[0]
	for _, x := range lanes[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
