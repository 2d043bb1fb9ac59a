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

// MaskedVector is a write capability on the lanes of a vector selected by a
// mask. It is returned by Vector.Masked and is meant to be consumed in the
// same expression:
//
//	v := vc.Zero[float32, vc.Reg128]()             // v  = [0, 0, 0, 0]
//	idx := vc.IndexesFromZero[int32, vc.Reg128]()  // idx = [0, 1, 2, 3]
//	two := vc.Broadcast[int32, vc.Reg128](2)
//	v.Masked(vc.CastMask[float32](vc.Less(idx, two))).SetScalar(1)  // v = [1, 1, 0, 0]
//
// Every write method updates lane i of the vector only if mask lane i is
// true. Inactive lanes are left bit-for-bit unchanged, and no fault can
// originate in them: operands are evaluated eagerly, but inactive lanes are
// first replaced with neutral values (a divisor of 1 for Div).
//
// Do not keep a MaskedVector in a variable: it aliases the vector it was
// created from and is not comparable.
type MaskedVector[T Lanes, R Register] struct {
	_    [0]func()
	v    *Vector[T, R]
	mask Mask[T, R]
}

// Masked binds v to m for a masked assignment.
func (v *Vector[T, R]) Masked(m Mask[T, R]) MaskedVector[T, R] {
	return MaskedVector[T, R]{v: v, mask: m}
}

// commit blends the lanes of r selected by the mask into the vector.
func (p MaskedVector[T, R]) commit(r Vector[T, R]) {
	p.v.reg = nativeFor[T, R]().Blend(p.v.reg, r.reg, p.mask.bits)
}

// Set assigns rhs to the active lanes.
func (p MaskedVector[T, R]) Set(rhs Vector[T, R]) {
	p.commit(rhs)
}

// SetScalar assigns x to the active lanes.
func (p MaskedVector[T, R]) SetScalar(x T) {
	p.Set(Broadcast[T, R](x))
}

// Zero sets the active lanes to 0.
func (p MaskedVector[T, R]) Zero() {
	p.Set(Vector[T, R]{})
}

// Add adds rhs to the active lanes.
func (p MaskedVector[T, R]) Add(rhs Vector[T, R]) {
	if p.mask.bits == 0 {
		return
	}
	r := Add(*p.v, rhs)
	p.commit(r)
}

// AddScalar adds x to the active lanes.
func (p MaskedVector[T, R]) AddScalar(x T) {
	p.Add(Broadcast[T, R](x))
}

// Sub subtracts rhs from the active lanes.
func (p MaskedVector[T, R]) Sub(rhs Vector[T, R]) {
	if p.mask.bits == 0 {
		return
	}
	r := Sub(*p.v, rhs)
	p.commit(r)
}

// SubScalar subtracts x from the active lanes.
func (p MaskedVector[T, R]) SubScalar(x T) {
	p.Sub(Broadcast[T, R](x))
}

// Mul multiplies the active lanes by rhs.
func (p MaskedVector[T, R]) Mul(rhs Vector[T, R]) {
	if p.mask.bits == 0 {
		return
	}
	r := Mul(*p.v, rhs)
	p.commit(r)
}

// MulScalar multiplies the active lanes by x.
func (p MaskedVector[T, R]) MulScalar(x T) {
	p.Mul(Broadcast[T, R](x))
}

// Div divides the active lanes by rhs. Inactive lanes of rhs may hold any
// value, including an integer zero: they are replaced by 1 before dividing.
func (p MaskedVector[T, R]) Div(rhs Vector[T, R]) {
	if p.mask.bits == 0 {
		return
	}
	divisor := One[T, R]()
	divisor.Masked(p.mask).Set(rhs)
	r := Div(*p.v, divisor)
	p.commit(r)
}

// DivScalar divides the active lanes by x.
func (p MaskedVector[T, R]) DivScalar(x T) {
	p.Div(Broadcast[T, R](x))
}

// Inc adds 1 to the active lanes.
func (p MaskedVector[T, R]) Inc() {
	p.Add(One[T, R]())
}

// Dec subtracts 1 from the active lanes.
func (p MaskedVector[T, R]) Dec() {
	p.Sub(One[T, R]())
}

// Neg negates the active lanes.
func (p MaskedVector[T, R]) Neg() {
	r := Neg(*p.v)
	p.commit(r)
}

// MaskedAnd ANDs rhs into the active lanes of p.
func MaskedAnd[T Integers, R Register](p MaskedVector[T, R], rhs Vector[T, R]) {
	r := And(*p.v, rhs)
	p.commit(r)
}

// MaskedOr ORs rhs into the active lanes of p.
func MaskedOr[T Integers, R Register](p MaskedVector[T, R], rhs Vector[T, R]) {
	r := Or(*p.v, rhs)
	p.commit(r)
}

// MaskedXor XORs rhs into the active lanes of p.
func MaskedXor[T Integers, R Register](p MaskedVector[T, R], rhs Vector[T, R]) {
	r := Xor(*p.v, rhs)
	p.commit(r)
}
