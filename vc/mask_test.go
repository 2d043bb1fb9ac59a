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
)

func TestMaskConstructors(t *testing.T) {
	tests := []struct {
		name  string
		mask  Mask[float32, Reg256]
		want  string
		count int
		first int
	}{
		{"TrueMask", TrueMask[float32, Reg256](), "[1 1 1 1 1 1 1 1]", 8, 0},
		{"FalseMask", FalseMask[float32, Reg256](), "[0 0 0 0 0 0 0 0]", 0, -1},
		{"FirstN(3)", FirstN[float32, Reg256](3), "[1 1 1 0 0 0 0 0]", 3, 0},
		{"FirstN(-2)", FirstN[float32, Reg256](-2), "[0 0 0 0 0 0 0 0]", 0, -1},
		{"FirstN(100)", FirstN[float32, Reg256](100), "[1 1 1 1 1 1 1 1]", 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.String(); got != tt.want {
				t.Errorf("String: got %s, want %s", got, tt.want)
			}
			if got := tt.mask.CountTrue(); got != tt.count {
				t.Errorf("CountTrue: got %d, want %d", got, tt.count)
			}
			if got := tt.mask.FirstTrue(); got != tt.first {
				t.Errorf("FirstTrue: got %d, want %d", got, tt.first)
			}
		})
	}
}

func TestMaskReductions(t *testing.T) {
	all := TrueMask[int8, Reg512]()
	if !all.AllTrue() || !all.AnyTrue() || all.NoneTrue() {
		t.Errorf("TrueMask[int8, Reg512]: AllTrue=%v AnyTrue=%v NoneTrue=%v", all.AllTrue(), all.AnyTrue(), all.NoneTrue())
	}
	if all.CountTrue() != 64 {
		t.Errorf("TrueMask[int8, Reg512].CountTrue: got %d, want 64", all.CountTrue())
	}

	none := FalseMask[float64, Reg128]()
	if none.AllTrue() || none.AnyTrue() || !none.NoneTrue() {
		t.Errorf("FalseMask: AllTrue=%v AnyTrue=%v NoneTrue=%v", none.AllTrue(), none.AnyTrue(), none.NoneTrue())
	}

	some := FirstN[int32, Reg128](2)
	if some.AllTrue() || !some.AnyTrue() || some.NoneTrue() {
		t.Errorf("FirstN(2): AllTrue=%v AnyTrue=%v NoneTrue=%v", some.AllTrue(), some.AnyTrue(), some.NoneTrue())
	}
}

func TestMaskLogic(t *testing.T) {
	v := Load[int32, Reg128]([]int32{0, 1, 2, 3}, Unaligned)
	lo := Less(v, Broadcast[int32, Reg128](2))                       // [1 1 0 0]
	odd := Equal(And(v, One[int32, Reg128]()), One[int32, Reg128]()) // [0 1 0 1]

	tests := []struct {
		name string
		got  Mask[int32, Reg128]
		want string
	}{
		{"And", lo.And(odd), "[0 1 0 0]"},
		{"Or", lo.Or(odd), "[1 1 0 1]"},
		{"Xor", lo.Xor(odd), "[1 0 0 1]"},
		{"AndNot", lo.AndNot(odd), "[1 0 0 0]"},
		{"Not", lo.Not(), "[0 0 1 1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
			}
		})
	}

	if !lo.Not().Not().Equal(lo) {
		t.Errorf("Not(Not(m)) != m")
	}
	if lo.Not().Bits() != 0b1100 {
		t.Errorf("Not keeps bits above Size: %#b", lo.Not().Bits())
	}
	if !lo.Lane(1) || lo.Lane(2) {
		t.Errorf("Lane: got %v %v, want true false", lo.Lane(1), lo.Lane(2))
	}
	if lo.Size() != 4 {
		t.Errorf("Size: got %d, want 4", lo.Size())
	}
}

func TestCastMask(t *testing.T) {
	m := FirstN[int32, Reg256](5)
	f := CastMask[float32](m)
	if got := f.String(); got != "[1 1 1 1 1 0 0 0]" {
		t.Errorf("CastMask: got %s", got)
	}

	// float32 in 128 bits and float64 in 256 bits both have 4 lanes.
	d := ConvertMask[float64, Reg256](FirstN[float32, Reg128](3))
	if got := d.String(); got != "[1 1 1 0]" {
		t.Errorf("ConvertMask: got %s", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("CastMask between different lane counts did not panic")
		}
	}()
	CastMask[float64](m)
}
