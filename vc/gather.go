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

// This file provides gather and scatter in three addressing forms:
//
//	Gather/Scatter:           base[idx[i]]
//	GatherField/ScatterField: base[idx[i]].member
//	GatherField2/...:         base[idx[i]].member1.member2
//
// Each form has a Masked variant. A masked variant never forms the address of
// an inactive lane, so idx may hold arbitrary values there. The unmasked forms
// require every index to be valid for base.
//
// The index vector may have a different width than the data vector (a
// Vector[int32, Reg128] can index a Vector[float64, Reg128]) but it needs at
// least Size lanes; lanes past Size are ignored.
//
// The register type of the result cannot be inferred from the arguments, so
// it comes first in the type parameter lists:
//
//	v := vc.Gather[vc.Reg128](array, idx)

func gatherLanes[T Lanes, R Register, S any, I Indexes, RI Register](dst *Vector[T, R], base []S, offset uintptr, idx *Vector[I, RI], active uint64) {
	out := dst.lanes()
	addrs := resolve(base, offset, indexLanes(idx, len(out)), active)
	for i, p := range addrs[:len(out)] {
		if p != nil {
			out[i] = *(*T)(p)
		}
	}
}

// scatterLanes writes lanes in ascending order. With duplicate indices the
// surviving value is therefore the highest lane's, but that is an artifact of
// this backend, not a guarantee.
func scatterLanes[T Lanes, R Register, S any, I Indexes, RI Register](src *Vector[T, R], base []S, offset uintptr, idx *Vector[I, RI], active uint64) {
	in := src.lanes()
	addrs := resolve(base, offset, indexLanes(idx, len(in)), active)
	for i, p := range addrs[:len(in)] {
		if p != nil {
			*(*T)(p) = in[i]
		}
	}
}

func allLanes[T Lanes, R Register]() uint64 {
	return laneBits(LanesOf[T, R]())
}

// Gather loads lane i from base[idx[i]].
func Gather[R Register, T Lanes, I Indexes, RI Register](base []T, idx Vector[I, RI]) Vector[T, R] {
	var v Vector[T, R]
	gatherLanes(&v, base, 0, &idx, allLanes[T, R]())
	return v
}

// GatherMasked loads lane i from base[idx[i]] where m is true; the other
// lanes are zero and their indices are never dereferenced.
func GatherMasked[R Register, T Lanes, I Indexes, RI Register](base []T, idx Vector[I, RI], m Mask[T, R]) Vector[T, R] {
	var v Vector[T, R]
	gatherLanes(&v, base, 0, &idx, m.bits)
	return v
}

// GatherInto overwrites every lane of v from base[idx[i]].
func GatherInto[T Lanes, R Register, I Indexes, RI Register](v *Vector[T, R], base []T, idx Vector[I, RI]) {
	gatherLanes(v, base, 0, &idx, allLanes[T, R]())
}

// GatherIntoMasked overwrites the lanes of v where m is true and leaves the
// others unchanged.
func GatherIntoMasked[T Lanes, R Register, I Indexes, RI Register](v *Vector[T, R], base []T, idx Vector[I, RI], m Mask[T, R]) {
	gatherLanes(v, base, 0, &idx, m.bits)
}

// GatherField loads lane i from the member f of base[idx[i]].
func GatherField[R Register, S any, T Lanes, I Indexes, RI Register](base []S, f Field[S, T], idx Vector[I, RI]) Vector[T, R] {
	var v Vector[T, R]
	gatherLanes(&v, base, f.offset, &idx, allLanes[T, R]())
	return v
}

// GatherFieldMasked is GatherField restricted to the lanes where m is true;
// the other lanes are zero.
func GatherFieldMasked[R Register, S any, T Lanes, I Indexes, RI Register](base []S, f Field[S, T], idx Vector[I, RI], m Mask[T, R]) Vector[T, R] {
	var v Vector[T, R]
	gatherLanes(&v, base, f.offset, &idx, m.bits)
	return v
}

// GatherFieldInto overwrites every lane of v from the member f of base[idx[i]].
func GatherFieldInto[T Lanes, R Register, S any, I Indexes, RI Register](v *Vector[T, R], base []S, f Field[S, T], idx Vector[I, RI]) {
	gatherLanes(v, base, f.offset, &idx, allLanes[T, R]())
}

// GatherFieldIntoMasked overwrites the lanes of v where m is true from the
// member f of base[idx[i]] and leaves the others unchanged.
func GatherFieldIntoMasked[T Lanes, R Register, S any, I Indexes, RI Register](v *Vector[T, R], base []S, f Field[S, T], idx Vector[I, RI], m Mask[T, R]) {
	gatherLanes(v, base, f.offset, &idx, m.bits)
}

// GatherField2 loads lane i from base[idx[i]].f1.f2.
func GatherField2[R Register, S1, S2 any, T Lanes, I Indexes, RI Register](base []S1, f1 Field[S1, S2], f2 Field[S2, T], idx Vector[I, RI]) Vector[T, R] {
	return GatherField[R](base, Nest(f1, f2), idx)
}

// GatherField2Masked is GatherField2 restricted to the lanes where m is true.
func GatherField2Masked[R Register, S1, S2 any, T Lanes, I Indexes, RI Register](base []S1, f1 Field[S1, S2], f2 Field[S2, T], idx Vector[I, RI], m Mask[T, R]) Vector[T, R] {
	return GatherFieldMasked(base, Nest(f1, f2), idx, m)
}

// Scatter stores lane i of v to base[idx[i]].
//
// If several lanes carry the same index, the element ends up holding one of
// the values written to it; which one is unspecified.
func Scatter[T Lanes, R Register, I Indexes, RI Register](v Vector[T, R], base []T, idx Vector[I, RI]) {
	scatterLanes(&v, base, 0, &idx, allLanes[T, R]())
}

// ScatterMasked stores lane i of v to base[idx[i]] where m is true.
// Indices of inactive lanes are never dereferenced.
func ScatterMasked[T Lanes, R Register, I Indexes, RI Register](v Vector[T, R], base []T, idx Vector[I, RI], m Mask[T, R]) {
	scatterLanes(&v, base, 0, &idx, m.bits)
}

// ScatterField stores lane i of v to the member f of base[idx[i]].
func ScatterField[T Lanes, R Register, S any, I Indexes, RI Register](v Vector[T, R], base []S, f Field[S, T], idx Vector[I, RI]) {
	scatterLanes(&v, base, f.offset, &idx, allLanes[T, R]())
}

// ScatterFieldMasked is ScatterField restricted to the lanes where m is true.
func ScatterFieldMasked[T Lanes, R Register, S any, I Indexes, RI Register](v Vector[T, R], base []S, f Field[S, T], idx Vector[I, RI], m Mask[T, R]) {
	scatterLanes(&v, base, f.offset, &idx, m.bits)
}

// ScatterField2 stores lane i of v to base[idx[i]].f1.f2.
func ScatterField2[T Lanes, R Register, S1, S2 any, I Indexes, RI Register](v Vector[T, R], base []S1, f1 Field[S1, S2], f2 Field[S2, T], idx Vector[I, RI]) {
	ScatterField(v, base, Nest(f1, f2), idx)
}

// ScatterField2Masked is ScatterField2 restricted to the lanes where m is true.
func ScatterField2Masked[T Lanes, R Register, S1, S2 any, I Indexes, RI Register](v Vector[T, R], base []S1, f1 Field[S1, S2], f2 Field[S2, T], idx Vector[I, RI], m Mask[T, R]) {
	ScatterFieldMasked(v, base, Nest(f1, f2), idx, m)
}

// IndicesStride returns the index vector [start, start+stride, start+2*stride, ...].
func IndicesStride[I Indexes, R Register](start, stride I) Vector[I, R] {
	var v Vector[I, R]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = start + I(i)*stride
	}
	return v
}

// IndicesFromFunc creates an index vector by calling f for each lane.
// This is useful for creating custom gather patterns.
func IndicesFromFunc[I Indexes, R Register](f func(lane int) I) Vector[I, R] {
	var v Vector[I, R]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = f(i)
	}
	return v
}
