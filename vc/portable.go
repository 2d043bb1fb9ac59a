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

// This file provides the pure Go (scalar) backend. It serves every lane type
// and width, and is what remains installed when dispatch finds
// nothing better or VC_NO_SIMD is set.

// portable implements Native with one loop iteration per lane.
type portable[T Lanes, R Register] struct{}

func (portable[T, R]) Name() string { return "portable" }

func (portable[T, R]) Add(a, b R) (out R) {
	dst, x, y := regLanes[T](&out), regLanes[T](&a), regLanes[T](&b)
	for i := range dst {
		dst[i] = x[i] + y[i]
	}
	return out
}

func (portable[T, R]) Sub(a, b R) (out R) {
	dst, x, y := regLanes[T](&out), regLanes[T](&a), regLanes[T](&b)
	for i := range dst {
		dst[i] = x[i] - y[i]
	}
	return out
}

func (portable[T, R]) Mul(a, b R) (out R) {
	dst, x, y := regLanes[T](&out), regLanes[T](&a), regLanes[T](&b)
	for i := range dst {
		dst[i] = x[i] * y[i]
	}
	return out
}

func (portable[T, R]) Div(a, b R) (out R) {
	dst, x, y := regLanes[T](&out), regLanes[T](&a), regLanes[T](&b)
	for i := range dst {
		dst[i] = x[i] / y[i]
	}
	return out
}

func (portable[T, R]) Compare(op CmpOp, a, b R) uint64 {
	x, y := regLanes[T](&a), regLanes[T](&b)
	var bits uint64
	for i := range x {
		if compareLane(op, x[i], y[i]) {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

func (portable[T, R]) Blend(dst, src R, mask uint64) R {
	d, s := regLanes[T](&dst), regLanes[T](&src)
	for i := range d {
		if mask&(1<<uint(i)) != 0 {
			d[i] = s[i]
		}
	}
	return dst
}

// compareLane applies op to one pair of lanes with Go (IEEE 754) semantics:
// every ordered comparison involving NaN is false and NaN != NaN.
func compareLane[T Lanes](op CmpOp, a, b T) bool {
	switch op {
	case CmpEqual:
		return a == b
	case CmpNotEqual:
		return a != b
	case CmpLess:
		return a < b
	case CmpLessEqual:
		return a <= b
	case CmpGreater:
		return a > b
	case CmpGreaterEqual:
		return a >= b
	default:
		return false
	}
}

// portableBits adds the integer-only operations.
type portableBits[T Integers, R Register] struct {
	portable[T, R]
}

func (portableBits[T, R]) And(a, b R) (out R) {
	dst, x, y := regLanes[T](&out), regLanes[T](&a), regLanes[T](&b)
	for i := range dst {
		dst[i] = x[i] & y[i]
	}
	return out
}

func (portableBits[T, R]) Or(a, b R) (out R) {
	dst, x, y := regLanes[T](&out), regLanes[T](&a), regLanes[T](&b)
	for i := range dst {
		dst[i] = x[i] | y[i]
	}
	return out
}

func (portableBits[T, R]) Xor(a, b R) (out R) {
	dst, x, y := regLanes[T](&out), regLanes[T](&a), regLanes[T](&b)
	for i := range dst {
		dst[i] = x[i] ^ y[i]
	}
	return out
}
