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
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

type vec3 struct {
	x, y, z float32
}

type body struct {
	id   int64
	pos  vec3
	mass float64
	tag  uint8
}

var (
	bodyMass = FieldOf(func(b *body) *float64 { return &b.mass })
	bodyPos  = FieldOf(func(b *body) *vec3 { return &b.pos })
	vec3Z    = FieldOf(func(v *vec3) *float32 { return &v.z })
)

func TestFieldOf(t *testing.T) {
	if got, want := bodyMass.Offset(), unsafe.Offsetof(body{}.mass); got != want {
		t.Errorf("mass offset: got %d, want %d", got, want)
	}
	posZ := Nest(bodyPos, vec3Z)
	if got, want := posZ.Offset(), unsafe.Offsetof(body{}.pos)+unsafe.Offsetof(vec3{}.z); got != want {
		t.Errorf("pos.z offset: got %d, want %d", got, want)
	}
}

func TestFieldOfRejectsForeignPointer(t *testing.T) {
	var other float64
	defer func() {
		if recover() == nil {
			t.Errorf("FieldOf with a selector returning a foreign pointer did not panic")
		}
	}()
	FieldOf(func(*body) *float64 { return &other })
}

func TestGatherField(t *testing.T) {
	bodies := []body{
		{id: 1, pos: vec3{1, 2, 3}, mass: 10},
		{id: 2, pos: vec3{4, 5, 6}, mass: 20},
		{id: 3, pos: vec3{7, 8, 9}, mass: 30},
	}
	idx := Load[int32, Reg128]([]int32{2, 0, 1, 2}, Unaligned)

	mass := GatherField[Reg256](bodies, bodyMass, idx)
	if diff := cmp.Diff([]float64{30, 10, 20, 30}, mass.Data()); diff != "" {
		t.Errorf("GatherField mismatch (-want +got):\n%s", diff)
	}

	z := GatherField2[Reg128](bodies, bodyPos, vec3Z, idx)
	if diff := cmp.Diff([]float32{9, 3, 6, 9}, z.Data()); diff != "" {
		t.Errorf("GatherField2 mismatch (-want +got):\n%s", diff)
	}

	// Nest and GatherField2 address the same member.
	nz := GatherField[Reg128](bodies, Nest(bodyPos, vec3Z), idx)
	if nz != z {
		t.Errorf("Nest gather: got %v, want %v", nz.Data(), z.Data())
	}
}

func TestGatherFieldMasked(t *testing.T) {
	bodies := []body{{mass: 1}, {mass: 2}}
	idx := Load[int32, Reg128]([]int32{1, 1000, 0, -3}, Unaligned)
	m := FirstN[float64, Reg256](4).AndNot(ConvertMask[float64, Reg256](
		Equal(Load[int32, Reg128]([]int32{0, 1, 0, 1}, Unaligned), One[int32, Reg128]()),
	))

	got := GatherFieldMasked(bodies, bodyMass, idx, m)
	if diff := cmp.Diff([]float64{2, 0, 1, 0}, got.Data()); diff != "" {
		t.Errorf("GatherFieldMasked mismatch (-want +got):\n%s", diff)
	}

	into := Broadcast[float64, Reg256](-1)
	GatherFieldIntoMasked(&into, bodies, bodyMass, idx, m)
	if diff := cmp.Diff([]float64{2, -1, 1, -1}, into.Data()); diff != "" {
		t.Errorf("GatherFieldIntoMasked mismatch (-want +got):\n%s", diff)
	}

	zm := GatherField2Masked(bodies, bodyPos, vec3Z, idx, CastMask[float32](FirstN[int32, Reg128](1)))
	if diff := cmp.Diff([]float32{0, 0, 0, 0}, zm.Data()); diff != "" {
		t.Errorf("GatherField2Masked mismatch (-want +got):\n%s", diff)
	}
}

func TestGatherFieldInto(t *testing.T) {
	bodies := []body{{mass: 1}, {mass: 2}, {mass: 3}}
	var v Vector[float64, Reg128]
	GatherFieldInto(&v, bodies, bodyMass, Load[int64, Reg128]([]int64{2, 1}, Unaligned))
	if diff := cmp.Diff([]float64{3, 2}, v.Data()); diff != "" {
		t.Errorf("GatherFieldInto mismatch (-want +got):\n%s", diff)
	}
}

func TestScatterField(t *testing.T) {
	bodies := make([]body, 4)
	for i := range bodies {
		bodies[i].id = int64(i)
		bodies[i].tag = 0xAA
	}
	idx := Load[int32, Reg128]([]int32{3, 1, 0, 2}, Unaligned)

	ScatterField(Load[float64, Reg256]([]float64{1, 2, 3, 4}, Unaligned), bodies, bodyMass, idx)
	ScatterField2(Load[float32, Reg128]([]float32{5, 6, 7, 8}, Unaligned), bodies, bodyPos, vec3Z, idx)

	want := []body{
		{id: 0, pos: vec3{z: 7}, mass: 3, tag: 0xAA},
		{id: 1, pos: vec3{z: 6}, mass: 2, tag: 0xAA},
		{id: 2, pos: vec3{z: 8}, mass: 4, tag: 0xAA},
		{id: 3, pos: vec3{z: 5}, mass: 1, tag: 0xAA},
	}
	if diff := cmp.Diff(want, bodies, cmp.AllowUnexported(body{}, vec3{})); diff != "" {
		t.Errorf("ScatterField mismatch (-want +got):\n%s", diff)
	}
}

func TestScatterFieldMasked(t *testing.T) {
	bodies := make([]body, 2)
	idx := Load[int32, Reg128]([]int32{1, -1, 0, 99}, Unaligned)
	m := CastMask[float32](Equal(Load[int32, Reg128]([]int32{1, 0, 1, 0}, Unaligned), One[int32, Reg128]()))

	ScatterField2Masked(Broadcast[float32, Reg128](4), bodies, bodyPos, vec3Z, idx, m)
	ScatterFieldMasked(Broadcast[float64, Reg256](2), bodies, bodyMass, idx, ConvertMask[float64, Reg256](m))

	want := []body{{pos: vec3{z: 4}, mass: 2}, {pos: vec3{z: 4}, mass: 2}}
	if diff := cmp.Diff(want, bodies, cmp.AllowUnexported(body{}, vec3{})); diff != "" {
		t.Errorf("ScatterFieldMasked mismatch (-want +got):\n%s", diff)
	}
}
