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

import "fmt"

// Convert converts every lane of v to U with Go's numeric conversion rules
// (truncation toward zero for float to integer, wrapping for narrowing
// integers). The result type must have the same lane count:
//
//	f := vc.Broadcast[float32, vc.Reg256](2.5)   // 8 lanes
//	d := vc.Convert[vc.Reg512, float64](f)       // 8 lanes
//
// It panics if the lane counts differ.
func Convert[RU Register, U Lanes, T Lanes, R Register](v Vector[T, R]) Vector[U, RU] {
	if LanesOf[U, RU]() != LanesOf[T, R]() {
		panic(fmt.Sprintf("vc: cannot convert %d lanes to %d lanes", LanesOf[T, R](), LanesOf[U, RU]()))
	}
	var out Vector[U, RU]
	dst := out.lanes()
	for i, x := range v.lanes() {
		dst[i] = U(x)
	}
	return out
}

// Expand converts the lanes of v into the consecutive vectors of dst: lane i
// of v ends up in lane i%n of dst[i/n], where n is the lane count of the
// destination type. This splits a vector into vectors of a wider lane type,
// for example one 8-lane float32 vector into two 4-lane float64 vectors.
//
// len(dst) times the destination lane count must equal the lane count of v;
// otherwise Expand panics.
func Expand[U Lanes, RU Register, T Lanes, R Register](dst []Vector[U, RU], v Vector[T, R]) {
	n := LanesOf[U, RU]()
	if len(dst)*n != LanesOf[T, R]() {
		panic(fmt.Sprintf("vc: cannot expand %d lanes into %d vectors of %d lanes", LanesOf[T, R](), len(dst), n))
	}
	for i, x := range v.lanes() {
		dst[i/n].lanes()[i%n] = U(x)
	}
}

// Combine is the inverse of Expand: it concatenates the lanes of src, in
// order, into a single vector, converting each lane to U.
//
//	parts := make([]vc.Vector[float64, vc.Reg256], 2)
//	vc.Expand(parts, f)
//	back := vc.Combine[vc.Reg256, float32](parts)
//
// The total lane count of src must equal the lane count of the result;
// otherwise Combine panics.
func Combine[RU Register, U Lanes, T Lanes, R Register](src []Vector[T, R]) Vector[U, RU] {
	n := LanesOf[T, R]()
	var out Vector[U, RU]
	dst := out.lanes()
	if len(src)*n != len(dst) {
		panic(fmt.Sprintf("vc: cannot combine %d vectors of %d lanes into %d lanes", len(src), n, len(dst)))
	}
	for i := range src {
		for j, x := range src[i].lanes() {
			dst[i*n+j] = U(x)
		}
	}
	return out
}
