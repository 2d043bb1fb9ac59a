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

// Bitwise operations are only defined for integer lanes. The Integers
// constraint turns And(floatVec, floatVec) into a compile error.

// And performs element-wise bitwise AND.
func And[T Integers, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: bitsFor[T, R]().And(a.reg, b.reg)}
}

// Or performs element-wise bitwise OR.
func Or[T Integers, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: bitsFor[T, R]().Or(a.reg, b.reg)}
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers, R Register](a, b Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: bitsFor[T, R]().Xor(a.reg, b.reg)}
}

// Not performs element-wise bitwise NOT (ones complement).
func Not[T Integers, R Register](v Vector[T, R]) Vector[T, R] {
	var out Vector[T, R]
	dst, src := out.lanes(), v.lanes()
	for i := range dst {
		dst[i] = ^src[i]
	}
	return out
}

// AndNot performs element-wise bitwise AND NOT (~a & b).
func AndNot[T Integers, R Register](a, b Vector[T, R]) Vector[T, R] {
	return And(Not(a), b)
}

// ShiftLeft performs element-wise left shift by a constant number of bits.
func ShiftLeft[T Integers, R Register](v Vector[T, R], bits int) Vector[T, R] {
	var out Vector[T, R]
	dst, src := out.lanes(), v.lanes()
	for i := range dst {
		dst[i] = src[i] << bits
	}
	return out
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func ShiftRight[T Integers, R Register](v Vector[T, R], bits int) Vector[T, R] {
	var out Vector[T, R]
	dst, src := out.lanes(), v.lanes()
	for i := range dst {
		dst[i] = src[i] >> bits
	}
	return out
}
