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

import "simd/archsimd"

// AVX-512 backends for the 512-bit vectors of float32, float64 and int32
// lanes. Other lane types keep the portable backend.

func init() {
	if CurrentLevel() != DispatchAVX512 {
		return
	}
	Install[float32, Reg512](avx512F32{})
	Install[float64, Reg512](avx512F64{})
	Install[int32, Reg512](avx512I32{})
}

func loadF32x16(r *Reg512) archsimd.Float32x16 {
	return archsimd.LoadFloat32x16Slice(regLanes[float32](r))
}

func loadF64x8(r *Reg512) archsimd.Float64x8 {
	return archsimd.LoadFloat64x8Slice(regLanes[float64](r))
}

func loadI32x16(r *Reg512) archsimd.Int32x16 {
	return archsimd.LoadInt32x16Slice(regLanes[int32](r))
}

type avx512F32 struct{}

func (avx512F32) Name() string { return "avx512" }

func (avx512F32) Add(a, b Reg512) (out Reg512) {
	loadF32x16(&a).Add(loadF32x16(&b)).StoreSlice(regLanes[float32](&out))
	return out
}

func (avx512F32) Sub(a, b Reg512) (out Reg512) {
	loadF32x16(&a).Sub(loadF32x16(&b)).StoreSlice(regLanes[float32](&out))
	return out
}

func (avx512F32) Mul(a, b Reg512) (out Reg512) {
	loadF32x16(&a).Mul(loadF32x16(&b)).StoreSlice(regLanes[float32](&out))
	return out
}

func (avx512F32) Div(a, b Reg512) (out Reg512) {
	loadF32x16(&a).Div(loadF32x16(&b)).StoreSlice(regLanes[float32](&out))
	return out
}

func (avx512F32) Compare(op CmpOp, a, b Reg512) uint64 {
	va, vb := loadF32x16(&a), loadF32x16(&b)
	var m archsimd.Mask32x16
	switch op {
	case CmpEqual:
		m = va.Equal(vb)
	case CmpNotEqual:
		m = va.NotEqual(vb)
	case CmpLess:
		m = va.Less(vb)
	case CmpLessEqual:
		m = va.LessEqual(vb)
	case CmpGreater:
		m = va.Greater(vb)
	default:
		m = va.GreaterEqual(vb)
	}
	return uint64(m.ToBits())
}

func (avx512F32) Blend(dst, src Reg512, mask uint64) Reg512 {
	loadF32x16(&src).Merge(loadF32x16(&dst), archsimd.Mask32x16FromBits(uint16(mask))).StoreSlice(regLanes[float32](&dst))
	return dst
}

type avx512F64 struct{}

func (avx512F64) Name() string { return "avx512" }

func (avx512F64) Add(a, b Reg512) (out Reg512) {
	loadF64x8(&a).Add(loadF64x8(&b)).StoreSlice(regLanes[float64](&out))
	return out
}

func (avx512F64) Sub(a, b Reg512) (out Reg512) {
	loadF64x8(&a).Sub(loadF64x8(&b)).StoreSlice(regLanes[float64](&out))
	return out
}

func (avx512F64) Mul(a, b Reg512) (out Reg512) {
	loadF64x8(&a).Mul(loadF64x8(&b)).StoreSlice(regLanes[float64](&out))
	return out
}

func (avx512F64) Div(a, b Reg512) (out Reg512) {
	loadF64x8(&a).Div(loadF64x8(&b)).StoreSlice(regLanes[float64](&out))
	return out
}

func (avx512F64) Compare(op CmpOp, a, b Reg512) uint64 {
	va, vb := loadF64x8(&a), loadF64x8(&b)
	var m archsimd.Mask64x8
	switch op {
	case CmpEqual:
		m = va.Equal(vb)
	case CmpNotEqual:
		m = va.NotEqual(vb)
	case CmpLess:
		m = va.Less(vb)
	case CmpLessEqual:
		m = va.LessEqual(vb)
	case CmpGreater:
		m = va.Greater(vb)
	default:
		m = va.GreaterEqual(vb)
	}
	return uint64(m.ToBits())
}

func (avx512F64) Blend(dst, src Reg512, mask uint64) Reg512 {
	loadF64x8(&src).Merge(loadF64x8(&dst), archsimd.Mask64x8FromBits(uint8(mask))).StoreSlice(regLanes[float64](&dst))
	return dst
}

type avx512I32 struct{}

func (avx512I32) Name() string { return "avx512" }

func (avx512I32) Add(a, b Reg512) (out Reg512) {
	loadI32x16(&a).Add(loadI32x16(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

func (avx512I32) Sub(a, b Reg512) (out Reg512) {
	loadI32x16(&a).Sub(loadI32x16(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

func (avx512I32) Mul(a, b Reg512) (out Reg512) {
	loadI32x16(&a).Mul(loadI32x16(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

// Div has no AVX-512 instruction either; see avx2I32.Div.
func (avx512I32) Div(a, b Reg512) (out Reg512) {
	dst, x, y := regLanes[int32](&out), regLanes[int32](&a), regLanes[int32](&b)
	for i := range dst {
		dst[i] = x[i] / y[i]
	}
	return out
}

func (avx512I32) Compare(op CmpOp, a, b Reg512) uint64 {
	va, vb := loadI32x16(&a), loadI32x16(&b)
	var bits uint16
	switch op {
	case CmpEqual:
		bits = va.Equal(vb).ToBits()
	case CmpNotEqual:
		bits = ^va.Equal(vb).ToBits()
	case CmpLess:
		bits = va.Less(vb).ToBits()
	case CmpLessEqual:
		bits = ^va.Greater(vb).ToBits()
	case CmpGreater:
		bits = va.Greater(vb).ToBits()
	default:
		bits = ^va.Less(vb).ToBits()
	}
	return uint64(bits)
}

func (avx512I32) Blend(dst, src Reg512, mask uint64) Reg512 {
	loadI32x16(&src).Merge(loadI32x16(&dst), archsimd.Mask32x16FromBits(uint16(mask))).StoreSlice(regLanes[int32](&dst))
	return dst
}

func (avx512I32) And(a, b Reg512) (out Reg512) {
	loadI32x16(&a).And(loadI32x16(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

func (avx512I32) Or(a, b Reg512) (out Reg512) {
	loadI32x16(&a).Or(loadI32x16(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

func (avx512I32) Xor(a, b Reg512) (out Reg512) {
	loadI32x16(&a).Xor(loadI32x16(&b)).StoreSlice(regLanes[int32](&out))
	return out
}
