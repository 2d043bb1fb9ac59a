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

//go:build amd64 && goexperiment.simd

package vc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimdBackendSelection(t *testing.T) {
	lvl := CurrentLevel()
	want256, want512 := "portable", "portable"
	if lvl == DispatchAVX2 || lvl == DispatchAVX512 {
		want256 = "avx2"
	}
	if lvl == DispatchAVX512 {
		want512 = "avx512"
	}
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"float32/256", NativeName[float32, Reg256](), want256},
		{"float64/256", NativeName[float64, Reg256](), want256},
		{"int32/256", NativeName[int32, Reg256](), want256},
		{"float32/512", NativeName[float32, Reg512](), want512},
		{"float64/512", NativeName[float64, Reg512](), want512},
		{"int32/512", NativeName[int32, Reg512](), want512},
		{"int64/512", NativeName[int64, Reg512](), "portable"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s on %s: got %q, want %q", tt.name, lvl, tt.got, tt.want)
		}
	}
}

func TestSimdBackendsMatchPortable(t *testing.T) {
	xs := []int32{-7, 3, 0, 2147483647, -2147483648, 9, -1, 5, 6, -6, 100, 42, 13, -13, 1, 8}
	ys := []int32{2, -3, 5, 1, 1, 9, -1, -5, 7, -6, -100, 6, 13, 4, -1, 2}
	a, b := Load[int32, Reg512](xs, Unaligned), Load[int32, Reg512](ys, Unaligned)
	ref := portableBits[int32, Reg512]{}
	tests := []struct {
		name string
		got  Vector[int32, Reg512]
		want Reg512
	}{
		{"Add", Add(a, b), ref.Add(a.reg, b.reg)},
		{"Sub", Sub(a, b), ref.Sub(a.reg, b.reg)},
		{"Mul", Mul(a, b), ref.Mul(a.reg, b.reg)},
		{"Div", Div(a, b), ref.Div(a.reg, b.reg)},
		{"And", And(a, b), ref.And(a.reg, b.reg)},
		{"Xor", Xor(a, b), ref.Xor(a.reg, b.reg)},
		{"IfThenElse", IfThenElse(Less(a, b), a, b), ref.Blend(b.reg, a.reg, ref.Compare(CmpLess, a.reg, b.reg))},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got.reg); diff != "" {
			t.Errorf("%s on %s mismatch (-want +got):\n%s", tt.name, NativeName[int32, Reg512](), diff)
		}
	}
	for _, op := range []CmpOp{CmpEqual, CmpNotEqual, CmpLess, CmpLessEqual, CmpGreater, CmpGreaterEqual} {
		if got, want := compare(op, a, b).bits, ref.Compare(op, a.reg, b.reg); got != want {
			t.Errorf("Compare %s: got %016b, want %016b", op, got, want)
		}
	}
}
