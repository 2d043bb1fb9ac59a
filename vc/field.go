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

import "unsafe"

// Field locates a member of type M inside a value of type S, the way a
// pointer-to-member does. It is used to gather and scatter one member of
// every selected element of a []S.
//
//	type particle struct {
//	    pos  struct{ x, y float32 }
//	    mass float32
//	}
//	mass := vc.FieldOf(func(p *particle) *float32 { return &p.mass })
//	pos := vc.FieldOf(func(p *particle) *struct{ x, y float32 } { return &p.pos })
//	y := vc.FieldOf(func(q *struct{ x, y float32 }) *float32 { return &q.y })
//	posY := vc.Nest(pos, y)
type Field[S, M any] struct {
	offset uintptr
}

// FieldOf builds a Field from a selector returning the address of a member of
// its argument. The selector is called once, on a zero S. It panics if the
// returned pointer does not lie inside the argument.
func FieldOf[S, M any](sel func(*S) *M) Field[S, M] {
	s := new(S)
	base := uintptr(unsafe.Pointer(s))
	p := uintptr(unsafe.Pointer(sel(s)))
	if p < base || p-base+unsafe.Sizeof(*new(M)) > unsafe.Sizeof(*s) {
		panic("vc: field selector must return a pointer into its argument")
	}
	return Field[S, M]{offset: p - base}
}

// Nest composes a member of S with a member of that member, the two-level
// form array[i].member1.member2.
func Nest[S, M, N any](outer Field[S, M], inner Field[M, N]) Field[S, N] {
	return Field[S, N]{offset: outer.offset + inner.offset}
}

// Offset returns the byte offset of the member inside S.
func (f Field[S, M]) Offset() uintptr {
	return f.offset
}

// laneAddrs holds the resolved address of every active lane; inactive lanes
// are nil.
type laneAddrs [maxLanes]unsafe.Pointer

// resolve turns indexes into member addresses inside base. Only active lanes
// are resolved: the index of an inactive lane is never used to form an
// address, which is what lets callers leave garbage there.
//
// An out-of-range index in an active lane is a contract violation; here it
// trips Go's bounds check instead of touching foreign memory.
func resolve[S any, I Indexes](base []S, offset uintptr, idx []I, active uint64) (addrs laneAddrs) {
	checkIndexes(idx, active, len(base))
	for i, x := range idx {
		if active&(1<<uint(i)) == 0 {
			continue
		}
		addrs[i] = unsafe.Add(unsafe.Pointer(&base[int(x)]), offset)
	}
	return addrs
}

// indexLanes returns the first n lanes of idx.
func indexLanes[I Indexes, RI Register](idx *Vector[I, RI], n int) []I {
	lanes := idx.lanes()
	if len(lanes) < n {
		panic("vc: index vector has fewer lanes than the data vector")
	}
	return lanes[:n]
}
